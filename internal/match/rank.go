package match

import (
	"slices"

	"object-builder/internal/schema"
)

// MinScore is the lowest similarity Suggest will return.
const MinScore = 0.5

// Candidate is one option scored against a field name.
type Candidate struct {
	Option schema.FieldPathOption
	Score  float64
}

// CandidateList is ordered best first.
type CandidateList []Candidate

// Rank scores every option's leaf name against name. Ties keep the order of
// opts, which is already locale-sorted.
func Rank(name string, opts []schema.FieldPathOption) CandidateList {
	candidates := make(CandidateList, 0, len(opts))

	for _, opt := range opts {
		candidates = append(candidates, Candidate{
			Option: opt,
			Score:  NameScore(name, opt.Leaf()),
		})
	}

	slices.SortStableFunc(candidates, func(a, b Candidate) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})

	return candidates
}

// Suggest returns up to n option values scoring at least MinScore.
func Suggest(name string, opts []schema.FieldPathOption, n int) []string {
	if name == "" || n <= 0 {
		return nil
	}

	var out []string

	for _, c := range Rank(name, opts).Top(n) {
		if c.Score < MinScore {
			break
		}

		out = append(out, c.Option.Value)
	}

	return out
}

// Top returns the first n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}
