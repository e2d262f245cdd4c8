package installer

// Summary aggregates the outcomes of a batch run.
type Summary struct {
	Attempted int
	Succeeded int
	Failed    []Outcome // failed outcomes in batch order
}

// FailedCount returns the number of failed items.
func (s Summary) FailedCount() int {
	return len(s.Failed)
}

// Summarize aggregates outcomes into a Summary. Pure, no side effects.
func Summarize(outcomes []Outcome) Summary {
	s := Summary{Attempted: len(outcomes)}
	for _, o := range outcomes {
		if o.Succeeded() {
			s.Succeeded++
		} else {
			s.Failed = append(s.Failed, o)
		}
	}
	return s
}
