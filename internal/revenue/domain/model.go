// Package domain contains the revenue schedule models: stored per-cell
// amendments and the derived month-by-month projection.
package domain

import (
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

var (
	ErrDealNotFound    = errors.New("deal_not_found")
	ErrInvalidDealID   = errors.New("invalid_deal_id")
	ErrInvalidMonth    = errors.New("invalid_month")
	ErrInvalidItemType = errors.New("invalid_item_type")
	ErrInvalidAmount   = errors.New("invalid_amount")
)

type ItemType string

const (
	ItemTypeRetainer  ItemType = "retainer"
	ItemTypeAuditFee  ItemType = "audit_fee"
	ItemTypeCustomDev ItemType = "custom_dev_fee"
)

func (t ItemType) Valid() bool {
	switch t {
	case ItemTypeRetainer, ItemTypeAuditFee, ItemTypeCustomDev:
		return true
	}
	return false
}

// RevenueItem is a stored amendment: an override for one
// (deal, month, item type) cell. At most one row exists per cell;
// upserting the same cell replaces the prior value.
type RevenueItem struct {
	ID        snowflake.ID    `gorm:"primaryKey" json:"id"`
	DealID    snowflake.ID    `gorm:"not null;uniqueIndex:idx_revenue_cell,priority:1" json:"deal_id"`
	Month     Month           `gorm:"not null;uniqueIndex:idx_revenue_cell,priority:2" json:"month"`
	ItemType  ItemType        `gorm:"type:text;not null;uniqueIndex:idx_revenue_cell,priority:3" json:"item_type"`
	Amount    decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"`
	CreatedAt time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (RevenueItem) TableName() string { return "revenue_items" }
