// Copyright (c) 2026 Argus Intelligence. All rights reserved.
// Author: platform@argusintel.io

package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argusintel/argus/pkg/pricing"
)

func fptr(v float64) *float64 { return &v }

/*
TestAnnualFromMonthly verifies the annual price derivation formula.
*/
func TestAnnualFromMonthly(t *testing.T) {
	tests := []struct {
		name     string
		monthly  float64
		discount float64
		want     float64
	}{
		{"twenty_percent_off", 100, 20, 960},
		{"ten_percent_off", 500, 10, 5400},
		{"no_discount", 100, 0, 1200},
		{"full_discount", 100, 100, 0},
		{"rounding", 99.99, 15, 1020}, // 99.99*12*0.85 = 1019.898
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pricing.AnnualFromMonthly(tt.monthly, tt.discount))
		})
	}
}

/*
TestDiscountFromAnnual verifies the reverse derivation.
*/
func TestDiscountFromAnnual(t *testing.T) {
	assert.Equal(t, 20.0, pricing.DiscountFromAnnual(100, 960))
	assert.Equal(t, 10.0, pricing.DiscountFromAnnual(500, 5400))
	assert.Equal(t, 0.0, pricing.DiscountFromAnnual(100, 1200))

	// Unpriced tiers derive nothing.
	assert.Equal(t, 0.0, pricing.DiscountFromAnnual(0, 960))
}

/*
TestDerivation_RoundTrip checks that deriving annual from (monthly, discount)
and re-deriving the discount from that annual returns the original discount.
*/
func TestDerivation_RoundTrip(t *testing.T) {
	for _, monthly := range []float64{50, 100, 249, 500, 1299} {
		for _, discount := range []float64{0, 5, 10, 20, 33, 50} {
			annual := pricing.AnnualFromMonthly(monthly, discount)
			got := pricing.DiscountFromAnnual(monthly, annual)

			// Whole-unit rounding of the annual price can shift the derived
			// percentage by at most one point.
			assert.InDelta(t, discount, got, 1.0,
				"monthly=%v discount=%v annual=%v", monthly, discount, annual)
		}
	}
}

/*
TestNormalize verifies the server-side consistency rewrite.
*/
func TestNormalize(t *testing.T) {
	t.Run("monthly_and_discount_derive_annual", func(t *testing.T) {
		tier := pricing.Tier{MonthlyPrice: fptr(100), DiscountPercentage: fptr(20)}
		pricing.Normalize(&tier)

		require.NotNil(t, tier.AnnualPrice)
		assert.Equal(t, 960.0, *tier.AnnualPrice)
	})

	t.Run("monthly_and_annual_derive_discount", func(t *testing.T) {
		tier := pricing.Tier{MonthlyPrice: fptr(100), AnnualPrice: fptr(960)}
		pricing.Normalize(&tier)

		require.NotNil(t, tier.DiscountPercentage)
		assert.Equal(t, 20.0, *tier.DiscountPercentage)
	})

	t.Run("custom_pricing_clears_numeric_fields", func(t *testing.T) {
		tier := pricing.Tier{
			MonthlyPrice:       fptr(100),
			AnnualPrice:        fptr(960),
			DiscountPercentage: fptr(20),
			CustomPricing:      true,
		}
		pricing.Normalize(&tier)

		assert.Nil(t, tier.MonthlyPrice)
		assert.Nil(t, tier.AnnualPrice)
		assert.Nil(t, tier.DiscountPercentage)
	})

	t.Run("single_field_left_as_submitted", func(t *testing.T) {
		tier := pricing.Tier{MonthlyPrice: fptr(100)}
		pricing.Normalize(&tier)

		assert.Nil(t, tier.AnnualPrice)
		assert.Nil(t, tier.DiscountPercentage)
	})
}

/*
TestAdd_TierCap checks that adding a 4th tier is rejected and leaves the
set unchanged.
*/
func TestAdd_TierCap(t *testing.T) {
	tiers := []pricing.Tier{{Name: "Essential"}, {Name: "Professional"}, {Name: "Enterprise"}}

	got, err := pricing.Add(tiers, pricing.Tier{Name: "Platinum"})

	assert.ErrorIs(t, err, pricing.ErrTooManyTiers)
	assert.Len(t, got, 3)
	assert.Equal(t, tiers, got)
}

/*
TestNormalizeAll rejects oversized sets before touching any tier.
*/
func TestNormalizeAll(t *testing.T) {
	oversized := make([]pricing.Tier, 4)
	_, err := pricing.NormalizeAll(oversized)
	assert.ErrorIs(t, err, pricing.ErrTooManyTiers)

	tiers := []pricing.Tier{
		{Name: "Essential", MonthlyPrice: fptr(100), DiscountPercentage: fptr(20)},
		{Name: "Enterprise", CustomPricing: true, MonthlyPrice: fptr(999)},
	}
	normalized, err := pricing.NormalizeAll(tiers)
	require.NoError(t, err)

	require.NotNil(t, normalized[0].AnnualPrice)
	assert.Equal(t, 960.0, *normalized[0].AnnualPrice)
	assert.Nil(t, normalized[1].MonthlyPrice)
}

/*
TestSwap covers the adjacent reorder actions of the tier editor.
*/
func TestSwap(t *testing.T) {
	tiers := []pricing.Tier{{Name: "A"}, {Name: "B"}, {Name: "C"}}

	pricing.Swap(tiers, 0, 1)
	assert.Equal(t, "B", tiers[0].Name)
	assert.Equal(t, "A", tiers[1].Name)

	// Out-of-range indices are a no-op.
	pricing.Swap(tiers, 2, 3)
	assert.Equal(t, "C", tiers[2].Name)
}
