// Package schedule computes the derived revenue projection for a deal.
// Both steps are pure: defaults come from the deal's terms and an explicit
// evaluation time, merging overlays stored amendments. Nothing here writes.
package schedule

import (
	"time"

	"github.com/relaycrm/relay/internal/revenue/domain"
	"github.com/shopspring/decimal"
)

// DealTerms is the revenue-bearing subset of a deal.
type DealTerms struct {
	AuditFee        decimal.Decimal
	RetainerMonthly decimal.Decimal
	CustomDevFee    decimal.Decimal
	StartDate       *time.Time
	EndDate         *time.Time
}

// MonthDefaults holds the unamended values for one month.
type MonthDefaults struct {
	Month        domain.Month
	Retainer     decimal.Decimal
	AuditFee     decimal.Decimal
	CustomDevFee decimal.Decimal
}

// Defaults enumerates every month from the deal's start month through its
// end month inclusive, ascending. Deals without an end date extend through
// the month of now, so their schedule grows as time passes without any
// write. One-time fees land on the first month only; the retainer recurs
// flat across the whole range. No start date, or an inverted range, yields
// no months.
func Defaults(terms DealTerms, now time.Time) []MonthDefaults {
	if terms.StartDate == nil {
		return nil
	}

	start := domain.MonthOf(*terms.StartDate)
	end := domain.MonthOf(now)
	if terms.EndDate != nil {
		end = domain.MonthOf(*terms.EndDate)
	}
	if end.Before(start) {
		return nil
	}

	var out []MonthDefaults
	for m := start; !m.After(end); m = m.Next() {
		d := MonthDefaults{
			Month:        m,
			Retainer:     terms.RetainerMonthly,
			AuditFee:     decimal.Zero,
			CustomDevFee: decimal.Zero,
		}
		if m == start {
			d.AuditFee = terms.AuditFee
			d.CustomDevFee = terms.CustomDevFee
		}
		out = append(out, d)
	}
	return out
}
