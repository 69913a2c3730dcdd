package domain

// PlannerConfig holds the tuning parameters of the study allocator. The
// allocator receives a value copy per run and never mutates it.
type PlannerConfig struct {
	// BaseStudyDays is the minimum study-day count every task starts with.
	BaseStudyDays int
	// PriorityVariations is the signed day delta each priority tier wants
	// on top of the base.
	PriorityVariations map[Priority]int
	// AllocationWindowDays bounds how far past a due-date group the slack
	// distribution may look for beneficiaries.
	AllocationWindowDays int
}

const (
	DefaultBaseStudyDays        = 4
	DefaultAllocationWindowDays = 7
)

// DefaultPriorityVariations returns a fresh copy of the default deltas.
func DefaultPriorityVariations() map[Priority]int {
	return map[Priority]int{
		PriorityHigh:   1,
		PriorityNormal: 0,
		PriorityLow:    -1,
	}
}

func DefaultPlannerConfig() PlannerConfig {
	return PlannerConfig{
		BaseStudyDays:        DefaultBaseStudyDays,
		PriorityVariations:   DefaultPriorityVariations(),
		AllocationWindowDays: DefaultAllocationWindowDays,
	}
}

// Sanitize returns a copy with out-of-range values clamped and missing
// priority deltas filled from the defaults.
func (c PlannerConfig) Sanitize() PlannerConfig {
	out := PlannerConfig{
		BaseStudyDays:        c.BaseStudyDays,
		AllocationWindowDays: c.AllocationWindowDays,
		PriorityVariations:   DefaultPriorityVariations(),
	}
	if out.BaseStudyDays < 1 {
		out.BaseStudyDays = 1
	}
	if out.AllocationWindowDays < 0 {
		out.AllocationWindowDays = 0
	}
	for p, v := range c.PriorityVariations {
		if ValidPriorities[string(p)] {
			out.PriorityVariations[p] = v
		}
	}
	return out
}

// Variation returns the signed desired-extra delta for p, zero when unset.
func (c PlannerConfig) Variation(p Priority) int {
	return c.PriorityVariations[p]
}

// MinDays is the uniform floor applied to every planned task.
func (c PlannerConfig) MinDays() int {
	return max(1, c.BaseStudyDays)
}
