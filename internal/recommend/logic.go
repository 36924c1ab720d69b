/*
Package recommend turns a user's health profile into a personalized diet
and workout plan. It validates the input, computes the BMI, prompts the
LLM provider, and scrapes the completion into four labeled sections.
*/
package recommend

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"nutricoach/internal/bmi"
	"nutricoach/internal/groq"
	"nutricoach/internal/telemetry"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog/log"
)

// completionCacheSize bounds the in-process completion cache. Identical
// profiles within a process reuse the provider's answer instead of paying
// for another completion. Nothing outlives the process.
const completionCacheSize = 256

// ErrMissingField is returned when any of the eight required inputs is blank.
var ErrMissingField = errors.New("missing required fields")

// UserProfile carries the eight free-text inputs from the client. Values
// are not interpreted beyond non-emptiness; the provider reads them as-is.
type UserProfile struct {
	Age         string
	Gender      string
	Weight      string
	Height      string
	Disease     string
	VegOrNonVeg string
	Allergics   string
	FoodType    string
}

// Validate checks that all eight required fields are present.
func (p UserProfile) Validate() error {
	fields := []string{
		p.Age, p.Gender, p.Weight, p.Height,
		p.Disease, p.VegOrNonVeg, p.Allergics, p.FoodType,
	}
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			return ErrMissingField
		}
	}
	return nil
}

// Plan is the assembled recommendation returned to the client.
type Plan struct {
	BMI            float64  `json:"bmi"`
	BMIStatus      string   `json:"bmi_status"`
	DailyRoutine   []string `json:"daily_routine"`
	BreakfastItems []string `json:"breakfast_items"`
	DinnerItems    []string `json:"dinner_items"`
	WorkoutPlans   []string `json:"workout_plans"`
}

// Service orchestrates one recommendation request. The provider client is
// injected so tests can substitute a fake; the Service holds no per-request
// state and is safe for concurrent use.
type Service struct {
	provider groq.Completer
	cache    *lru.Cache[string, string]
}

// NewService builds a Service around the given provider client.
func NewService(provider groq.Completer) *Service {
	cache, err := lru.New[string, string](completionCacheSize)
	if err != nil {
		// lru.New only fails on a non-positive size.
		panic(fmt.Sprintf("completion cache: %v", err))
	}
	return &Service{provider: provider, cache: cache}
}

// Generate runs the full chain: validate → BMI → prompt → provider →
// extract → assemble. Validation and BMI errors are the caller's fault
// (ErrMissingField, bmi.ErrInvalidInput); anything else is a provider
// failure and terminal for the request.
func (s *Service) Generate(ctx context.Context, profile UserProfile) (*Plan, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	value, err := bmi.Calculate(profile.Weight, profile.Height)
	if err != nil {
		return nil, err
	}
	status := bmi.Categorize(value)

	prompt := groq.BuildPrompt(groq.PromptInput{
		Age:         profile.Age,
		Weight:      profile.Weight,
		Height:      profile.Height,
		Gender:      profile.Gender,
		VegOrNonVeg: profile.VegOrNonVeg,
		Disease:     profile.Disease,
		Allergics:   profile.Allergics,
		FoodType:    profile.FoodType,
		BMI:         value,
		BMICategory: status,
	})

	completion, err := s.completion(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("provider call failed: %w", err)
	}

	sections := ExtractSections(completion)

	return &Plan{
		BMI:            value,
		BMIStatus:      status,
		DailyRoutine:   sections.DailyRoutine,
		BreakfastItems: sections.BreakfastItems,
		DinnerItems:    sections.DinnerItems,
		WorkoutPlans:   sections.WorkoutPlans,
	}, nil
}

// completion returns the cached answer for this prompt or asks the provider.
func (s *Service) completion(ctx context.Context, prompt string) (string, error) {
	key := promptKey(prompt)

	if cached, ok := s.cache.Get(key); ok {
		log.Info().Msg("Completion served from cache")
		telemetry.ProviderRequestsTotal.WithLabelValues("cache_hit").Inc()
		return cached, nil
	}

	completion, err := s.provider.Complete(ctx, prompt)
	if err != nil {
		telemetry.ProviderRequestsTotal.WithLabelValues("error").Inc()
		return "", err
	}
	telemetry.ProviderRequestsTotal.WithLabelValues("ok").Inc()

	s.cache.Add(key, completion)
	return completion, nil
}

func promptKey(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return hex.EncodeToString(sum[:])
}
