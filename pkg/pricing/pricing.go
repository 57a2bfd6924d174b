// Copyright (c) 2026 Argus Intelligence. All rights reserved.
// Author: platform@argusintel.io

/*
Package pricing implements the pricing-tier model shared by the service
catalogue and the admin tier editor.

A service sells up to [MaxTiers] tiers. Each tier carries a monthly price,
an annual price, and a discount percentage that must stay mutually
consistent:

	annual = round(monthly * 12 * (1 - discount/100))

The admin UI derives whichever field the operator did not touch; the server
re-runs the same derivation on every write ([Normalize]) so an inconsistent
triple can never be stored, regardless of what the client submitted.
*/
package pricing

import (
	"errors"
	"math"
)

// MaxTiers is the maximum number of pricing tiers a service may carry.
const MaxTiers = 3

// ErrTooManyTiers is returned when a tier set would exceed [MaxTiers].
var ErrTooManyTiers = errors.New("pricing: a service supports at most 3 tiers")

// Tier is one purchasable plan option (e.g. "Essential", "Enterprise")
// belonging to a service.
type Tier struct {
	Name     string `json:"name"`
	Subtitle string `json:"subtitle,omitempty"`

	// MonthlyPrice and AnnualPrice are nil when the tier has no numeric
	// price yet. Both are ignored entirely when CustomPricing is true.
	MonthlyPrice       *float64 `json:"monthly_price"`
	AnnualPrice        *float64 `json:"annual_price"`
	DiscountPercentage *float64 `json:"discount_percentage"`

	// CustomPricing marks a "Contact for Price" tier.
	CustomPricing bool `json:"custom_pricing"`

	Features      []string `json:"features"`
	CTAText       string   `json:"cta_text,omitempty"`
	IsRecommended bool     `json:"is_recommended"`
}

// # Derivation Rules

// AnnualFromMonthly computes the annual price implied by a monthly price
// and a discount percentage, rounded to the nearest whole unit.
func AnnualFromMonthly(monthly, discountPct float64) float64 {
	return math.Round(monthly * 12 * (1 - discountPct/100))
}

// DiscountFromAnnual computes the discount percentage implied by a monthly
// and an annual price, rounded to the nearest whole percent.
//
// It returns 0 when monthly is not positive, since no meaningful discount
// can be derived from a free or unpriced tier.
func DiscountFromAnnual(monthly, annual float64) float64 {
	yearly := monthly * 12
	if yearly <= 0 {
		return 0
	}
	return math.Round(((yearly - annual) / yearly) * 100)
}

// # Server-Side Consistency

// Normalize rewrites the tier's derived fields in place so the stored
// (monthly, annual, discount) triple always satisfies the derivation rules.
//
// # Precedence
//
//  1. CustomPricing tiers have all numeric fields cleared.
//  2. (monthly, discount) present: annual is recomputed from them.
//  3. (monthly, annual) present: discount is recomputed from them.
//  4. Anything else is left as submitted (a single field alone derives nothing).
func Normalize(tier *Tier) {
	if tier.CustomPricing {
		tier.MonthlyPrice = nil
		tier.AnnualPrice = nil
		tier.DiscountPercentage = nil
		return
	}

	switch {
	case tier.MonthlyPrice != nil && tier.DiscountPercentage != nil:
		annual := AnnualFromMonthly(*tier.MonthlyPrice, *tier.DiscountPercentage)
		tier.AnnualPrice = &annual
	case tier.MonthlyPrice != nil && tier.AnnualPrice != nil:
		discount := DiscountFromAnnual(*tier.MonthlyPrice, *tier.AnnualPrice)
		tier.DiscountPercentage = &discount
	}
}

// NormalizeAll normalizes every tier and enforces the tier cap.
//
// On cap violation the input slice is returned unchanged together with
// [ErrTooManyTiers], matching the "reject, don't truncate" contract of the
// tier editor.
func NormalizeAll(tiers []Tier) ([]Tier, error) {
	if len(tiers) > MaxTiers {
		return tiers, ErrTooManyTiers
	}
	for i := range tiers {
		Normalize(&tiers[i])
	}
	return tiers, nil
}

// # Tier Set Editing

// Add appends a tier to the set, rejecting the addition when the set is
// already at [MaxTiers]. The original set is returned unchanged on rejection.
func Add(tiers []Tier, tier Tier) ([]Tier, error) {
	if len(tiers) >= MaxTiers {
		return tiers, ErrTooManyTiers
	}
	return append(tiers, tier), nil
}

// Swap exchanges two adjacent tiers (the "move up"/"move down" editor
// actions). Out-of-range indices are ignored; tiers have no identity beyond
// their array position, so a positional swap is a complete reorder.
func Swap(tiers []Tier, i, j int) {
	if i < 0 || j < 0 || i >= len(tiers) || j >= len(tiers) {
		return
	}
	tiers[i], tiers[j] = tiers[j], tiers[i]
}
