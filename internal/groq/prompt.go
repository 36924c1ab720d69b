package groq

import "fmt"

/* =================================================================================
							PROMPT TEMPLATE
	The template the provider receives. The four section headers below are
	the anchors the extractor matches on, so the header tokens here and in
	internal/recommend/extract.go must stay in sync.
=================================================================================*/

const promptTemplate = `
    Hey! Based on your details:
    - Age: %s
    - Weight: %s
    - Height: %s
    - Gender: %s
    - Dietary Preference: %s
    - Medical Condition: %s
    - Allergies: %s
    - Food Type: %s
    - BMI: %.2f (%s)

    Here’s your customized plan:

    💖 **Daily Routine:**
    - [Give 3-5 fun and sassy routine suggestions]

    🍳 **Breakfast:**
    - [List 3-4 delicious but healthy breakfast options]

    🍽 **Dinner:**
    - [Suggest 3-4 tasty yet balanced dinner ideas]

    🏋️‍♀️ **Workout Plan:**
    - [List 3-4 exercises for your fitness goals]
    `

// PromptInput carries the nine values substituted into the template.
type PromptInput struct {
	Age         string
	Weight      string
	Height      string
	Gender      string
	VegOrNonVeg string
	Disease     string
	Allergics   string
	FoodType    string
	BMI         float64
	BMICategory string
}

// BuildPrompt renders the fixed template with the user's details.
func BuildPrompt(in PromptInput) string {
	return fmt.Sprintf(
		promptTemplate,
		in.Age,
		in.Weight,
		in.Height,
		in.Gender,
		in.VegOrNonVeg,
		in.Disease,
		in.Allergics,
		in.FoodType,
		in.BMI,
		in.BMICategory,
	)
}
