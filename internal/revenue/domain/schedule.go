package domain

import "github.com/shopspring/decimal"

// MonthlyRow is one derived row of the schedule. Each cell carries the
// deal's default value or, when an amendment exists for the cell, the
// amended value with the matching flag set.
type MonthlyRow struct {
	Month            Month           `json:"month"`
	Display          string          `json:"display"`
	Retainer         decimal.Decimal `json:"retainer"`
	AuditFee         decimal.Decimal `json:"audit_fee"`
	CustomDevFee     decimal.Decimal `json:"custom_dev_fee"`
	Total            decimal.Decimal `json:"total"`
	RetainerAmended  bool            `json:"is_retainer_amended"`
	AuditFeeAmended  bool            `json:"is_audit_amended"`
	CustomDevAmended bool            `json:"is_custom_dev_amended"`
}

type ScheduleTotals struct {
	Retainer     decimal.Decimal `json:"retainer"`
	AuditFee     decimal.Decimal `json:"audit_fee"`
	CustomDevFee decimal.Decimal `json:"custom_dev_fee"`
	Total        decimal.Decimal `json:"total"`
}

// Schedule is the full projection for one deal. It is recomputed on
// every read and never persisted.
type Schedule struct {
	Currency string         `json:"currency"`
	Months   []MonthlyRow   `json:"months"`
	Totals   ScheduleTotals `json:"totals"`
}

// EmptySchedule is what deals without a revenue start date produce.
func EmptySchedule(currency string) *Schedule {
	return &Schedule{
		Currency: currency,
		Months:   []MonthlyRow{},
		Totals: ScheduleTotals{
			Retainer:     decimal.Zero,
			AuditFee:     decimal.Zero,
			CustomDevFee: decimal.Zero,
			Total:        decimal.Zero,
		},
	}
}
