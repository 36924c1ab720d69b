package recommend

import (
	"regexp"
	"strings"
)

/* =================================================================================
							SECTION EXTRACTION
	The provider answers in free text with four decorated headers in a fixed
	order. Each pattern captures from its header up to the next expected
	header (or end of text for the last section). The matching strategy is
	deliberately confined to this file: callers only see ExtractSections.
=================================================================================*/

// Placeholder lines used when a header is missing from the completion.
// These exact strings are part of the response contract.
const (
	NoRoutinePlaceholder   = "⚠ No routine suggestions!"
	NoBreakfastPlaceholder = "⚠ No breakfast ideas!"
	NoDinnerPlaceholder    = "⚠ No dinner ideas!"
	NoWorkoutPlaceholder   = "⚠ No workouts suggested!"
)

var (
	routinePattern   = regexp.MustCompile(`(?s)💖\s*\*\*Daily Routine:\*\*\s*(.*?)(?:\n🍳|\z)`)
	breakfastPattern = regexp.MustCompile(`(?s)🍳\s*\*\*Breakfast:\*\*\s*(.*?)(?:\n🍽|\z)`)
	dinnerPattern    = regexp.MustCompile(`(?s)🍽\s*\*\*Dinner:\*\*\s*(.*?)(?:\n🏋️‍♀️|\z)`)
	workoutPattern   = regexp.MustCompile(`(?s)🏋️‍♀️\s*\*\*Workout Plan:\*\*\s*(.*?)\z`)
)

// Sections holds the four recommendation blocks split into lines.
type Sections struct {
	DailyRoutine   []string
	BreakfastItems []string
	DinnerItems    []string
	WorkoutPlans   []string
}

// ExtractSections splits a completion into the four expected blocks. It
// never fails: a section whose header is absent degrades to its single
// placeholder line, and the other sections are still extracted.
func ExtractSections(text string) Sections {
	return Sections{
		DailyRoutine:   extractSection(routinePattern, text, NoRoutinePlaceholder),
		BreakfastItems: extractSection(breakfastPattern, text, NoBreakfastPlaceholder),
		DinnerItems:    extractSection(dinnerPattern, text, NoDinnerPlaceholder),
		WorkoutPlans:   extractSection(workoutPattern, text, NoWorkoutPlaceholder),
	}
}

func extractSection(pattern *regexp.Regexp, text, placeholder string) []string {
	match := pattern.FindStringSubmatch(text)
	if match == nil {
		return []string{placeholder}
	}
	return strings.Split(strings.TrimSpace(match[1]), "\n")
}
