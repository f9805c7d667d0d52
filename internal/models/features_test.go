package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveFeatures(t *testing.T) {
	tests := []struct {
		name         string
		planName     string
		maxEmployees int
		wantFirst    string
		wantLen      int
	}{
		{name: "basic", planName: "BASIC PLAN", wantFirst: "Payroll processing for 0 - 29 employees", wantLen: 7},
		{name: "professional lower case", planName: "Professional plan", wantFirst: "Payroll processing for 30 - 99 employees", wantLen: 7},
		{name: "legacy misspelling", planName: "PROFRSSIONAL PLAN", wantFirst: "Payroll processing for 30 - 99 employees", wantLen: 7},
		{name: "enterprise", planName: "ENTERPRISE PLAN", wantFirst: "Payroll processing for 100 or more employees", wantLen: 7},
		{name: "custom with limit", planName: "STARTER", maxEmployees: 15, wantFirst: "Payroll processing for up to 15 employees", wantLen: 7},
		{name: "custom without limit", planName: "STARTER", wantFirst: "Automatic salary & deduction calculations", wantLen: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveFeatures(tt.planName, tt.maxEmployees)
			require.Len(t, got, tt.wantLen)
			assert.Equal(t, tt.wantFirst, got[0].Text)
			for _, f := range got {
				assert.True(t, f.Included)
			}
		})
	}
}

func TestListParamsWithDefaults(t *testing.T) {
	assert.Equal(t, ListParams{Page: 1, Limit: 10}, ListParams{}.WithDefaults())
	assert.Equal(t, ListParams{Page: 3, Limit: 25, Search: "acme"}, ListParams{Page: 3, Limit: 25, Search: "acme"}.WithDefaults())
}

func TestSubscriptionStatusValid(t *testing.T) {
	assert.True(t, SubscriptionActive.Valid())
	assert.True(t, SubscriptionPendingActivation.Valid())
	assert.False(t, SubscriptionStatus("PAUSED").Valid())
}
