package domain

// Step identifies one stage of the configuration wizard.
type Step string

// The five wizard steps, in chain order.
const (
	StepSelectTrim     Step = "select-trim"
	StepChooseColor    Step = "choose-color"
	StepSelectPackages Step = "select-packages"
	StepAddFeatures    Step = "add-features"
	StepReview         Step = "review"
)

// stepOrder assigns each step its 1-based position in the chain.
var stepOrder = map[Step]int{
	StepSelectTrim:     1,
	StepChooseColor:    2,
	StepSelectPackages: 3,
	StepAddFeatures:    4,
	StepReview:         5,
}

// Adjacency is kept explicit rather than derived from order arithmetic.
// A step missing from these tables has no neighbor, so navigation fails
// closed instead of resolving to a wrong step.
var stepSuccessor = map[Step]Step{
	StepSelectTrim:     StepChooseColor,
	StepChooseColor:    StepSelectPackages,
	StepSelectPackages: StepAddFeatures,
	StepAddFeatures:    StepReview,
}

var stepPredecessor = map[Step]Step{
	StepChooseColor:    StepSelectTrim,
	StepSelectPackages: StepChooseColor,
	StepAddFeatures:    StepSelectPackages,
	StepReview:         StepAddFeatures,
}

// Steps returns the wizard chain in order.
func Steps() []Step {
	return []Step{
		StepSelectTrim,
		StepChooseColor,
		StepSelectPackages,
		StepAddFeatures,
		StepReview,
	}
}

// Valid reports whether s is one of the five wizard steps.
func (s Step) Valid() bool {
	_, ok := stepOrder[s]
	return ok
}

// Order returns the 1-based position of s in the chain, or 0 for an
// unknown step.
func (s Step) Order() int {
	return stepOrder[s]
}

// Next returns the successor of s. ok is false on the terminal step and
// on unknown steps.
func (s Step) Next() (Step, bool) {
	next, ok := stepSuccessor[s]
	return next, ok
}

// Prev returns the predecessor of s. ok is false on the first step and
// on unknown steps.
func (s Step) Prev() (Step, bool) {
	prev, ok := stepPredecessor[s]
	return prev, ok
}
