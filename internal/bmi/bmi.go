/*
Package bmi computes Body Mass Index values and maps them onto the
category labels shown to the user.
*/
package bmi

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Category labels. These exact strings are part of the response contract.
const (
	CategoryUnderweight = "Underweight 🥺 – Time to bulk up!"
	CategoryNormal      = "Normal weight ✅ – Perfect balance!"
	CategoryOverweight  = "Overweight 😅 – Let's shed a few!"
	CategoryObese       = "Obese 😭 – Let's fix this ASAP!"
)

// ErrInvalidInput is returned when weight or height cannot be parsed as a
// positive number.
var ErrInvalidInput = fmt.Errorf("invalid weight or height")

// Calculate parses weight (kg) and height (m) and returns weight/height²
// rounded to 2 decimal places. Rounding is half-away-from-zero (math.Round),
// which for the positive BMI domain means half-up.
//
// Height must be strictly positive; zero or negative height is rejected
// rather than allowed to divide through.
func Calculate(weight, height string) (float64, error) {
	w, err := strconv.ParseFloat(strings.TrimSpace(weight), 64)
	if err != nil {
		return 0, ErrInvalidInput
	}

	h, err := strconv.ParseFloat(strings.TrimSpace(height), 64)
	if err != nil {
		return 0, ErrInvalidInput
	}

	if h <= 0 {
		return 0, ErrInvalidInput
	}

	value := w / (h * h)
	return math.Round(value*100) / 100, nil
}

// Categorize maps a BMI value onto its label.
//
// The ladder mirrors the product's published thresholds, including the
// quirk that values in [24.9, 25.0) fall through every rung and land on
// Obese. That boundary behavior is an observable contract; do not close
// the gap without a product decision.
func Categorize(value float64) string {
	switch {
	case value < 18.5:
		return CategoryUnderweight
	case value >= 18.5 && value < 24.9:
		return CategoryNormal
	case value >= 25 && value < 29.9:
		return CategoryOverweight
	default:
		return CategoryObese
	}
}
