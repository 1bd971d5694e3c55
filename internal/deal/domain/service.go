package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	Get(ctx context.Context, id string) (*Response, error)
	List(ctx context.Context, req ListRequest) ([]Response, error)
	Update(ctx context.Context, req UpdateRequest) (*Response, error)
	Delete(ctx context.Context, id string) error
}

type CreateRequest struct {
	Name             string           `json:"name"`
	Company          string           `json:"company"`
	Stage            Stage            `json:"stage"`
	Currency         string           `json:"currency"`
	AuditFee         *decimal.Decimal `json:"audit_fee"`
	RetainerMonthly  *decimal.Decimal `json:"retainer_monthly"`
	CustomDevFee     *decimal.Decimal `json:"custom_dev_fee"`
	RevenueStartDate *time.Time       `json:"revenue_start_date"`
	RevenueEndDate   *time.Time       `json:"revenue_end_date"`
}

type UpdateRequest struct {
	ID               string           `json:"-"`
	Name             *string          `json:"name,omitempty"`
	Company          *string          `json:"company,omitempty"`
	Stage            *Stage           `json:"stage,omitempty"`
	Currency         *string          `json:"currency,omitempty"`
	AuditFee         *decimal.Decimal `json:"audit_fee,omitempty"`
	RetainerMonthly  *decimal.Decimal `json:"retainer_monthly,omitempty"`
	CustomDevFee     *decimal.Decimal `json:"custom_dev_fee,omitempty"`
	RevenueStartDate *time.Time       `json:"revenue_start_date,omitempty"`
	RevenueEndDate   *time.Time       `json:"revenue_end_date,omitempty"`
	// Clear flags distinguish "leave unchanged" from "set to absent".
	ClearRevenueStartDate bool `json:"clear_revenue_start_date,omitempty"`
	ClearRevenueEndDate   bool `json:"clear_revenue_end_date,omitempty"`
}

type ListRequest struct {
	Stage   string
	Company string
}

type Response struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Company          string          `json:"company,omitempty"`
	Stage            Stage           `json:"stage"`
	Currency         string          `json:"currency"`
	AuditFee         decimal.Decimal `json:"audit_fee"`
	RetainerMonthly  decimal.Decimal `json:"retainer_monthly"`
	CustomDevFee     decimal.Decimal `json:"custom_dev_fee"`
	RevenueStartDate *time.Time      `json:"revenue_start_date,omitempty"`
	RevenueEndDate   *time.Time      `json:"revenue_end_date,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}
