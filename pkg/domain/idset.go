package domain

// IDSet is an insertion-ordered collection of unique identifiers.
// The zero value is an empty, usable set. All operations return a new
// slice; the receiver is never mutated.
type IDSet []string

// Contains reports whether id is a member.
func (s IDSet) Contains(id string) bool {
	for _, v := range s {
		if v == id {
			return true
		}
	}
	return false
}

// Add appends id if absent, preserving insertion order.
func (s IDSet) Add(id string) IDSet {
	if s.Contains(id) {
		return s
	}
	out := make(IDSet, len(s), len(s)+1)
	copy(out, s)
	return append(out, id)
}

// Remove drops id if present, preserving the order of the rest.
func (s IDSet) Remove(id string) IDSet {
	if !s.Contains(id) {
		return s
	}
	out := make(IDSet, 0, len(s)-1)
	for _, v := range s {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// Toggle removes id when present and appends it when absent.
func (s IDSet) Toggle(id string) IDSet {
	if s.Contains(id) {
		return s.Remove(id)
	}
	return s.Add(id)
}

// Clone returns an independent copy.
func (s IDSet) Clone() IDSet {
	if s == nil {
		return nil
	}
	out := make(IDSet, len(s))
	copy(out, s)
	return out
}

// StepSet is an insertion-ordered set of wizard steps.
type StepSet []Step

// Contains reports whether step is a member.
func (s StepSet) Contains(step Step) bool {
	for _, v := range s {
		if v == step {
			return true
		}
	}
	return false
}

// Add appends step if absent. Adding an existing member is a no-op, so
// marking a step complete is idempotent.
func (s StepSet) Add(step Step) StepSet {
	if s.Contains(step) {
		return s
	}
	out := make(StepSet, len(s), len(s)+1)
	copy(out, s)
	return append(out, step)
}

// Clone returns an independent copy.
func (s StepSet) Clone() StepSet {
	if s == nil {
		return nil
	}
	out := make(StepSet, len(s))
	copy(out, s)
	return out
}
