package schedule

import (
	"github.com/relaycrm/relay/internal/revenue/domain"
	"github.com/shopspring/decimal"
)

type cellKey struct {
	Month domain.Month
	Type  domain.ItemType
}

// Merge overlays stored amendments onto the generated defaults. An
// amendment whose month falls outside the default range is not surfaced;
// it stays stored and reappears if the range is later extended over it.
// Stored amounts pass through as-is so data-integrity problems stay
// visible instead of being corrected here.
func Merge(currency string, defaults []MonthDefaults, items []domain.RevenueItem) *domain.Schedule {
	sched := domain.EmptySchedule(currency)
	if len(defaults) == 0 {
		return sched
	}

	overrides := make(map[cellKey]decimal.Decimal, len(items))
	for _, item := range items {
		overrides[cellKey{Month: item.Month, Type: item.ItemType}] = item.Amount
	}

	rows := make([]domain.MonthlyRow, 0, len(defaults))
	totals := sched.Totals
	for _, def := range defaults {
		row := domain.MonthlyRow{
			Month:        def.Month,
			Display:      def.Month.Display(),
			Retainer:     def.Retainer,
			AuditFee:     def.AuditFee,
			CustomDevFee: def.CustomDevFee,
		}

		if v, ok := overrides[cellKey{Month: def.Month, Type: domain.ItemTypeRetainer}]; ok {
			row.Retainer = v
			row.RetainerAmended = true
		}
		if v, ok := overrides[cellKey{Month: def.Month, Type: domain.ItemTypeAuditFee}]; ok {
			row.AuditFee = v
			row.AuditFeeAmended = true
		}
		if v, ok := overrides[cellKey{Month: def.Month, Type: domain.ItemTypeCustomDev}]; ok {
			row.CustomDevFee = v
			row.CustomDevAmended = true
		}

		row.Total = row.Retainer.Add(row.AuditFee).Add(row.CustomDevFee)
		rows = append(rows, row)

		totals.Retainer = totals.Retainer.Add(row.Retainer)
		totals.AuditFee = totals.AuditFee.Add(row.AuditFee)
		totals.CustomDevFee = totals.CustomDevFee.Add(row.CustomDevFee)
		totals.Total = totals.Total.Add(row.Total)
	}

	sched.Months = rows
	sched.Totals = totals
	return sched
}
