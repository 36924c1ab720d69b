package recommend

import (
	"strings"
	"testing"

	"nutricoach/internal/bmi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPDF(t *testing.T) {
	data := ReportData{
		BMI:            "22.86",
		BMIStatus:      bmi.CategoryNormal,
		DailyRoutine:   []string{"- Wake up early", "- Stretch for 10 minutes"},
		BreakfastItems: []string{"- Oats with berries"},
		DinnerItems:    []string{"- Lentil soup"},
		WorkoutPlans:   []string{"- 3x10 squats"},
	}

	out, err := RenderPDF(data)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(out), "%PDF-"), "output should start with the PDF magic")
	assert.Greater(t, len(out), 500)
}

// Emoji and other symbols outside CP1252 must not break rendering.
func TestRenderPDF_EmptySectionsAndSymbols(t *testing.T) {
	data := ReportData{
		BMI:          "31.2",
		BMIStatus:    bmi.CategoryObese,
		WorkoutPlans: []string{NoWorkoutPlaceholder},
	}

	out, err := RenderPDF(data)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "%PDF-"))
}
