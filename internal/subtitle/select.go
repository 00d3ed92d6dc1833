package subtitle

import (
	"errors"
	"fmt"
	"sort"
)

// SelectionTolerance is how far below the best weight a candidate may
// score and still be offered
const SelectionTolerance = 0.5

// ErrNoChoices is returned when there is nothing to choose from
var ErrNoChoices = errors.New("no choices")

// Candidate is anything that can be ranked and shown to the user
type Candidate interface {
	fmt.Stringer
	Score() float64
}

// ScoredVersion pairs a version with the weight it got for one set of
// preferences
type ScoredVersion struct {
	*Version
	Weight float64
}

// Score returns the weight
func (s ScoredVersion) Score() float64 {
	return s.Weight
}

// SelectBest keeps the candidates whose score is less than
// SelectionTolerance below the highest score and returns them sorted by
// their display string
func SelectBest[C Candidate](items []C) ([]C, error) {
	if len(items) == 0 {
		return nil, ErrNoChoices
	}

	ranked := make([]C, len(items))
	copy(ranked, items)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score() > ranked[j].Score()
	})

	best := ranked[0].Score()
	cut := len(ranked)
	for i := 1; i < len(ranked); i++ {
		if best-ranked[i].Score() >= SelectionTolerance {
			cut = i
			break
		}
	}

	result := ranked[:cut]
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].String() < result[j].String()
	})
	return result, nil
}
