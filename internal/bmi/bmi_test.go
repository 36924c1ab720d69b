package bmi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name    string
		weight  string
		height  string
		want    float64
		wantErr bool
	}{
		{name: "typical adult", weight: "70", height: "1.75", want: 22.86},
		{name: "rounds to two decimals", weight: "80", height: "1.8", want: 24.69},
		{name: "decimal weight", weight: "65.5", height: "1.68", want: 23.21},
		{name: "surrounding whitespace", weight: " 70 ", height: " 1.75 ", want: 22.86},
		{name: "non-numeric weight", weight: "seventy", height: "1.75", wantErr: true},
		{name: "non-numeric height", weight: "70", height: "tall", wantErr: true},
		{name: "empty weight", weight: "", height: "1.75", wantErr: true},
		{name: "zero height", weight: "70", height: "0", wantErr: true},
		{name: "negative height", weight: "70", height: "-1.75", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Calculate(tt.weight, tt.height)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{18.49, CategoryUnderweight},
		{18.5, CategoryNormal},
		{22.86, CategoryNormal},
		{24.89, CategoryNormal},
		{25.0, CategoryOverweight},
		{29.89, CategoryOverweight},
		{29.9, CategoryObese},
		{40.0, CategoryObese},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Categorize(tt.value), "bmi=%v", tt.value)
	}
}

// Values in [24.9, 25.0) fall through the ladder to Obese. The gap is part
// of the observable contract and must not be silently closed.
func TestCategorizeGap(t *testing.T) {
	assert.Equal(t, CategoryObese, Categorize(24.9))
	assert.Equal(t, CategoryObese, Categorize(24.95))
	assert.Equal(t, CategoryObese, Categorize(24.99))
}
