package domain

import (
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound         = errors.New("deal_not_found")
	ErrInvalidID        = errors.New("invalid_deal_id")
	ErrInvalidName      = errors.New("invalid_name")
	ErrInvalidStage     = errors.New("invalid_stage")
	ErrInvalidCurrency  = errors.New("invalid_currency")
	ErrInvalidFee       = errors.New("invalid_fee")
	ErrInvalidDateRange = errors.New("invalid_date_range")
)

type Stage string

const (
	StageLead      Stage = "lead"
	StageQualified Stage = "qualified"
	StageProposal  Stage = "proposal"
	StageWon       Stage = "won"
	StageLost      Stage = "lost"
)

func (s Stage) Valid() bool {
	switch s {
	case StageLead, StageQualified, StageProposal, StageWon, StageLost:
		return true
	}
	return false
}

// Deal is the CRM deal record. The revenue engine reads only the fee
// fields and the start/end dates; the rest belongs to the pipeline UI.
type Deal struct {
	ID               snowflake.ID    `gorm:"primaryKey" json:"id"`
	Name             string          `gorm:"not null" json:"name"`
	Company          string          `gorm:"type:text" json:"company"`
	Stage            Stage           `gorm:"type:text;not null" json:"stage"`
	Currency         string          `gorm:"type:varchar(3);not null" json:"currency"`
	AuditFee         decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"audit_fee"`
	RetainerMonthly  decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"retainer_monthly"`
	CustomDevFee     decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"custom_dev_fee"`
	RevenueStartDate *time.Time      `json:"revenue_start_date,omitempty"`
	RevenueEndDate   *time.Time      `json:"revenue_end_date,omitempty"`
	CreatedAt        time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Deal) TableName() string { return "deals" }
