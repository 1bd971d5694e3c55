package server

import (
	"github.com/gin-gonic/gin"
	revenuedomain "github.com/relaycrm/relay/internal/revenue/domain"
	"github.com/shopspring/decimal"
)

type upsertRevenueItemRequest struct {
	Month    string                 `json:"month"`
	ItemType revenuedomain.ItemType `json:"item_type"`
	Amount   decimal.Decimal        `json:"amount"`
}

func (s *Server) GetDealRevenueSchedule(c *gin.Context) {
	resp, err := s.revenueSvc.GetDealRevenueSchedule(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, resp)
}

func (s *Server) UpsertRevenueItem(c *gin.Context) {
	var req upsertRevenueItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequestError(c)
		return
	}

	resp, err := s.revenueSvc.UpsertRevenueItem(c.Request.Context(), revenuedomain.UpsertItemRequest{
		DealID:   c.Param("id"),
		Month:    req.Month,
		ItemType: req.ItemType,
		Amount:   req.Amount,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, resp)
}

func (s *Server) DeleteRevenueItem(c *gin.Context) {
	err := s.revenueSvc.DeleteRevenueItem(c.Request.Context(), revenuedomain.DeleteItemRequest{
		DealID:   c.Param("id"),
		Month:    c.Param("month"),
		ItemType: revenuedomain.ItemType(c.Param("item_type")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, gin.H{"deleted": true})
}
