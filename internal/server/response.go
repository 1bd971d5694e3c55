package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	dealdomain "github.com/relaycrm/relay/internal/deal/domain"
	revenuedomain "github.com/relaycrm/relay/internal/revenue/domain"
)

func respondData(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"data": data})
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// AbortWithError maps domain sentinels onto the wire: validation failures
// are 400 with a field-level message, unknown deals are 404, anything
// else surfaces as an opaque storage error.
func AbortWithError(c *gin.Context, err error) {
	switch {
	case err == nil:
		return
	case isValidationError(err):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": errorBody{
			Code:    err.Error(),
			Message: validationMessage(err),
		}})
	case err == dealdomain.ErrNotFound || err == revenuedomain.ErrDealNotFound:
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": errorBody{
			Code:    "deal_not_found",
			Message: "Deal does not exist",
		}})
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": errorBody{
			Code:    "storage_error",
			Message: "Internal error",
		}})
	}
}

func isValidationError(err error) bool {
	switch err {
	case dealdomain.ErrInvalidID,
		dealdomain.ErrInvalidName,
		dealdomain.ErrInvalidStage,
		dealdomain.ErrInvalidCurrency,
		dealdomain.ErrInvalidFee,
		dealdomain.ErrInvalidDateRange,
		revenuedomain.ErrInvalidDealID,
		revenuedomain.ErrInvalidMonth,
		revenuedomain.ErrInvalidItemType,
		revenuedomain.ErrInvalidAmount:
		return true
	default:
		return false
	}
}

func validationMessage(err error) string {
	switch err {
	case revenuedomain.ErrInvalidAmount:
		return "Amount must be a non-negative number"
	case revenuedomain.ErrInvalidMonth:
		return "Month must be in YYYY-MM format"
	case revenuedomain.ErrInvalidItemType:
		return "Item type must be retainer, audit_fee or custom_dev_fee"
	case dealdomain.ErrInvalidDateRange:
		return "Revenue end date must not precede the start date"
	case dealdomain.ErrInvalidFee:
		return "Fees must be non-negative numbers"
	default:
		return "Invalid request"
	}
}

func invalidRequestError(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": errorBody{
		Code:    "invalid_request",
		Message: "Request body could not be parsed",
	}})
}
