package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPlannerConfig(t *testing.T) {
	cfg := DefaultPlannerConfig()
	assert.Equal(t, 4, cfg.BaseStudyDays)
	assert.Equal(t, 7, cfg.AllocationWindowDays)
	assert.Equal(t, 1, cfg.Variation(PriorityHigh))
	assert.Equal(t, 0, cfg.Variation(PriorityNormal))
	assert.Equal(t, -1, cfg.Variation(PriorityLow))
}

func TestSanitize_ClampsOutOfRange(t *testing.T) {
	cfg := PlannerConfig{BaseStudyDays: 0, AllocationWindowDays: -3}.Sanitize()
	assert.Equal(t, 1, cfg.BaseStudyDays)
	assert.Equal(t, 0, cfg.AllocationWindowDays)
	assert.Equal(t, DefaultPriorityVariations(), cfg.PriorityVariations)
}

func TestSanitize_KeepsKnownVariationsDropsUnknown(t *testing.T) {
	cfg := PlannerConfig{
		BaseStudyDays:        3,
		AllocationWindowDays: 2,
		PriorityVariations: map[Priority]int{
			PriorityHigh: 5,
			"urgent":     9,
		},
	}.Sanitize()

	assert.Equal(t, 5, cfg.Variation(PriorityHigh))
	assert.Equal(t, 0, cfg.Variation(PriorityNormal), "missing key falls back to default")
	assert.Equal(t, -1, cfg.Variation(PriorityLow))
	assert.NotContains(t, cfg.PriorityVariations, Priority("urgent"))
}

func TestSanitize_DoesNotAliasInput(t *testing.T) {
	in := PlannerConfig{BaseStudyDays: 2, PriorityVariations: map[Priority]int{PriorityHigh: 3}}
	out := in.Sanitize()
	out.PriorityVariations[PriorityHigh] = 10
	assert.Equal(t, 3, in.PriorityVariations[PriorityHigh])
}

func TestMinDays_NeverBelowOne(t *testing.T) {
	assert.Equal(t, 1, PlannerConfig{BaseStudyDays: -2}.MinDays())
	assert.Equal(t, 6, PlannerConfig{BaseStudyDays: 6}.MinDays())
}
