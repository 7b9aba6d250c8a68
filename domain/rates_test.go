package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindLVRTier_Boundaries(t *testing.T) {
	tests := []struct {
		lvr  float64
		want LVRTier
	}{
		{0, Tier0To50},
		{0.25, Tier0To50},
		{0.50, Tier0To50},
		{0.501, Tier50To60},
		{0.60, Tier50To60},
		{0.6000001, Tier60To70},
		{0.70, Tier60To70},
		{0.7000001, Tier70To80},
		{0.80, Tier70To80},
		{0.8000001, Tier80To85},
		{0.801, Tier80To85},
		{0.85, Tier80To85},
		{0.8500001, TierAbove85},
		{0.851, TierAbove85},
		{0.95, TierAbove85},
		{1.2, TierAbove85},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FindLVRTier(tt.lvr), "lvr %v", tt.lvr)
	}
}

func TestFrequency_Valid(t *testing.T) {
	assert.True(t, Weekly.Valid())
	assert.True(t, Fortnightly.Valid())
	assert.True(t, Monthly.Valid())
	assert.True(t, Yearly.Valid())
	assert.False(t, Frequency("DAILY").Valid())
	assert.False(t, Frequency("").Valid())
}

func TestState_Valid(t *testing.T) {
	assert.True(t, NSW.Valid())
	assert.True(t, NT.Valid())
	assert.False(t, State("NZ").Valid())
}
