package match

import (
	"sort"

	"samm-mapper/internal/common"
	"samm-mapper/internal/model"
)

// Candidate is a potential target for one source property.
type Candidate struct {
	Target   model.Entry
	Evidence Evidence
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by cascade level, then confidence descending, then target
// declaration order.
func (c CandidateList) Less(i, j int) bool {
	li, lj := c[i].Evidence.Method().Level(), c[j].Evidence.Method().Level()
	if li != lj {
		return li < lj
	}

	ci, cj := c[i].Evidence.Confidence(), c[j].Evidence.Confidence()
	if ci != cj {
		return ci > cj
	}

	return c[i].Target.Position < c[j].Target.Position
}

// Rank sorts the list in place and returns it.
func (c CandidateList) Rank() CandidateList {
	sort.Stable(c)

	return c
}

// Best returns the best candidate, or nil if no candidates.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// Tied returns the leading candidates that tie with the first on level and
// confidence. The list must be ranked.
func (c CandidateList) Tied() CandidateList {
	if len(c) == 0 {
		return nil
	}

	n := 1
	for n < len(c) && c[n].Evidence.Method() == c[0].Evidence.Method() &&
		c[n].Evidence.Confidence() == c[0].Evidence.Confidence() {
		n++
	}

	return c[:n]
}

// IsAmbiguous reports whether the two leading candidates tie on level and
// confidence, leaving declaration order as the only tie-breaker.
func (c CandidateList) IsAmbiguous() bool {
	return len(c.Tied()) > 1
}

// AboveThreshold returns candidates with confidence at or above threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	return common.Filter(c, func(cand Candidate) bool {
		return cand.Evidence.Confidence() >= threshold
	})
}

// Paths lists the candidates' document paths.
func (c CandidateList) Paths() []string {
	out := make([]string, 0, len(c))
	for _, cand := range c {
		out = append(out, cand.Target.Property.Path)
	}

	return out
}
