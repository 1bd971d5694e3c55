package server

import (
	"strings"

	"github.com/gin-gonic/gin"
	dealdomain "github.com/relaycrm/relay/internal/deal/domain"
)

func (s *Server) CreateDeal(c *gin.Context) {
	var req dealdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequestError(c)
		return
	}

	resp, err := s.dealSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, resp)
}

func (s *Server) ListDeals(c *gin.Context) {
	resp, err := s.dealSvc.List(c.Request.Context(), dealdomain.ListRequest{
		Stage:   strings.TrimSpace(c.Query("stage")),
		Company: strings.TrimSpace(c.Query("company")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, resp)
}

func (s *Server) GetDealByID(c *gin.Context) {
	resp, err := s.dealSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, resp)
}

func (s *Server) UpdateDeal(c *gin.Context) {
	var req dealdomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequestError(c)
		return
	}
	req.ID = c.Param("id")

	resp, err := s.dealSvc.Update(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, resp)
}

func (s *Server) DeleteDeal(c *gin.Context) {
	if err := s.dealSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, gin.H{"deleted": true})
}
