package collaborator_test

import (
	"context"
	"testing"

	"github.com/duka-eats/payflow/internal/adapter/collaborator"
	"github.com/duka-eats/payflow/internal/adapter/config"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatCourierFees_Fee(t *testing.T) {
	fees, err := collaborator.NewFlatCourierFees(&config.Fees{
		CourierBaseFee: "100",
		CourierPerKm:   "25",
	})
	require.NoError(t, err)

	type feeTest struct {
		name        string
		distanceKm  float64
		expDistance string
	}

	tests := []feeTest{
		{name: "whole kilometers", distanceKm: 4, expDistance: "100"},
		{name: "started kilometer counts", distanceKm: 3.2, expDistance: "100"},
		{name: "short hop", distanceKm: 0.4, expDistance: "25"},
		{name: "zero distance", distanceKm: 0, expDistance: "0"},
		{name: "negative distance clamps", distanceKm: -2, expDistance: "0"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			base, distance, err := fees.Fee(context.Background(), test.distanceKm)
			require.NoError(t, err)
			assert.True(t, base.Cmp(decimal.MustParse("100")) == 0)
			assert.True(t, distance.Cmp(decimal.MustParse(test.expDistance)) == 0,
				"distance part %s, expected %s", distance, test.expDistance)
		})
	}
}

func TestNewFlatCourierFees_BadConfig(t *testing.T) {
	_, err := collaborator.NewFlatCourierFees(&config.Fees{
		CourierBaseFee: "not-a-number",
		CourierPerKm:   "25",
	})
	assert.Error(t, err)
}

func TestNewAgreementRates_Validation(t *testing.T) {
	type rateTest struct {
		name    string
		rate    string
		wantErr bool
	}

	tests := []rateTest{
		{name: "typical rate", rate: "0.10"},
		{name: "zero rate", rate: "0"},
		{name: "full rate is refused", rate: "1", wantErr: true},
		{name: "negative rate is refused", rate: "-0.1", wantErr: true},
		{name: "garbage is refused", rate: "ten percent", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := collaborator.NewAgreementRates(nil, &config.Fees{CommissionRate: test.rate})
			if test.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
