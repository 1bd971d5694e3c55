package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type Service interface {
	GetDealRevenueSchedule(ctx context.Context, dealID string) (*Schedule, error)
	UpsertRevenueItem(ctx context.Context, req UpsertItemRequest) (*ItemResponse, error)
	DeleteRevenueItem(ctx context.Context, req DeleteItemRequest) error
}

type UpsertItemRequest struct {
	DealID   string
	Month    string
	ItemType ItemType
	Amount   decimal.Decimal
}

type DeleteItemRequest struct {
	DealID   string
	Month    string
	ItemType ItemType
}

type ItemResponse struct {
	ID       string          `json:"id"`
	DealID   string          `json:"deal_id"`
	Month    Month           `json:"month"`
	ItemType ItemType        `json:"item_type"`
	Amount   decimal.Decimal `json:"amount"`
}
