package table

import (
	"fmt"

	"github.com/govalues/fixed"
)

// Snapshot is a serializable copy of a table.
// Numbers are encoded as decimal strings.
type Snapshot[P fixed.Precision] struct {
	Start   fixed.Fixed[P]   `json:"start"`
	End     fixed.Fixed[P]   `json:"end"`
	Step    fixed.Fixed[P]   `json:"step"`
	Samples []fixed.Fixed[P] `json:"samples"`
}

// Snapshot returns a copy of the grid and the samples of t.
func (t *Table[P]) Snapshot() Snapshot[P] {
	return Snapshot[P]{
		Start:   t.start,
		End:     t.end,
		Step:    t.step,
		Samples: append([]fixed.Fixed[P](nil), t.samples...),
	}
}

// FromSnapshot restores a table from its snapshot without evaluating any function.
// The samples are copied.
//
// FromSnapshot returns a domain error if the grid is invalid or the number
// of samples does not match the grid.
func FromSnapshot[P fixed.Precision](s Snapshot[P]) (*Table[P], error) {
	t, err := newTable(s.Start, s.End, s.Step)
	if err != nil {
		return nil, err
	}
	if len(s.Samples) != len(t.samples) {
		return nil, fmt.Errorf("grid [%v, %v) with step %v has %v samples, snapshot has %v: %w", s.Start, s.End, s.Step, len(t.samples), len(s.Samples), fixed.ErrDomain)
	}
	copy(t.samples, s.Samples)
	return t, nil
}
