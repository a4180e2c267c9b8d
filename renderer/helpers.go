package renderer

import (
	"fmt"

	"github.com/oxal/networth"
)

// amount formats a monetary amount for report tables.
func amount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// signedAmount formats a monetary change with an explicit sign.
func signedAmount(v float64) string {
	return fmt.Sprintf("%+.2f", v)
}

// pct formats an already ×100-scaled percentage.
func pct(p networth.Percent) string { return p.String() }

// signedPct formats an already ×100-scaled percentage with an explicit sign.
func signedPct(p networth.Percent) string { return p.SignedString() }
