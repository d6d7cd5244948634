// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package ordering

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	ID  string
	Pos int
}

func (e *entry) GetPosition() int  { return e.Pos }
func (e *entry) SetPosition(p int) { e.Pos = p }

func ids(items []entry) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func positions(items []entry) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.Pos
	}
	return out
}

func sample() []entry {
	return []entry{{"a", 1}, {"b", 2}, {"c", 3}, {"d", 4}}
}

func TestMove_SwapsNeighbours(t *testing.T) {
	got := Move(sample(), 1, Up)
	assert.Equal(t, []string{"b", "a", "c", "d"}, ids(got))
	assert.Equal(t, []int{1, 2, 3, 4}, positions(got))

	got = Move(sample(), 2, Down)
	assert.Equal(t, []string{"a", "b", "d", "c"}, ids(got))
	assert.Equal(t, []int{1, 2, 3, 4}, positions(got))
}

func TestMove_TwoItemScenario(t *testing.T) {
	items := []entry{{"a", 1}, {"b", 2}}

	got := Move(items, 1, Up)

	assert.Equal(t, []entry{{"b", 1}, {"a", 2}}, got)
}

func TestMove_BoundariesAreNoOps(t *testing.T) {
	items := sample()

	assert.Equal(t, items, Move(items, 0, Up))
	assert.Equal(t, items, Move(items, len(items)-1, Down))
	assert.Equal(t, items, Move(items, -1, Down))
	assert.Equal(t, items, Move(items, len(items), Up))
	assert.Equal(t, items, Move(items, 1, Direction("sideways")))
	assert.Empty(t, Move([]entry(nil), 0, Up))
}

func TestMove_SortsByPositionFirst(t *testing.T) {
	shuffled := []entry{{"c", 3}, {"a", 1}, {"d", 4}, {"b", 2}}

	got := Move(shuffled, 3, Up)

	assert.Equal(t, []string{"a", "b", "d", "c"}, ids(got))
	assert.Equal(t, []int{1, 2, 3, 4}, positions(got))
}

func TestMove_DoesNotMutateInput(t *testing.T) {
	items := sample()
	_ = Move(items, 2, Up)
	assert.Equal(t, sample(), items)
}

func TestMove_UpThenDownIsIdentity(t *testing.T) {
	items := sample()
	for i := 1; i < len(items); i++ {
		moved := Move(items, i, Up)
		restored := Move(moved, i-1, Down)
		assert.Equal(t, items, restored, "index %d", i)
	}
}

func TestMove_RandomSequencesStayDense(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 42))
	items := []entry{{"a", 1}, {"b", 2}, {"c", 3}, {"d", 4}, {"e", 5}, {"f", 6}}

	for step := 0; step < 500; step++ {
		dir := Up
		if r.IntN(2) == 0 {
			dir = Down
		}
		// include out-of-range indexes on purpose
		idx := r.IntN(len(items)+2) - 1
		items = Move(items, idx, dir)

		require.True(t, IsDense(items), "step %d: positions %v", step, positions(items))
		require.Len(t, items, 6)
	}
}

func TestAppend(t *testing.T) {
	got := Append(sample(), entry{ID: "e", Pos: 99})

	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, ids(got))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, positions(got))
}

func TestRemoveAt(t *testing.T) {
	got := RemoveAt(sample(), 1)
	assert.Equal(t, []string{"a", "c", "d"}, ids(got))
	assert.Equal(t, []int{1, 2, 3}, positions(got))

	unchanged := RemoveAt(sample(), 10)
	assert.Equal(t, sample(), unchanged)
}

func TestRemoveFunc(t *testing.T) {
	got := RemoveFunc(sample(), func(e entry) bool { return e.ID == "a" || e.ID == "c" })

	assert.Equal(t, []entry{{"b", 1}, {"d", 2}}, got)
}

func TestNormalize(t *testing.T) {
	gappy := []entry{{"x", 10}, {"y", 3}, {"z", 7}}

	got := Normalize(gappy)

	assert.Equal(t, []entry{{"y", 1}, {"z", 2}, {"x", 3}}, got)
}

func TestIndexFunc(t *testing.T) {
	shuffled := []entry{{"c", 3}, {"a", 1}, {"b", 2}}

	assert.Equal(t, 2, IndexFunc(shuffled, func(e entry) bool { return e.ID == "c" }))
	assert.Equal(t, -1, IndexFunc(shuffled, func(e entry) bool { return e.ID == "zz" }))
}

func TestIsDense(t *testing.T) {
	tests := []struct {
		name  string
		items []entry
		want  bool
	}{
		{"empty", nil, true},
		{"dense", sample(), true},
		{"dense unsorted", []entry{{"b", 2}, {"a", 1}}, true},
		{"gap", []entry{{"a", 1}, {"b", 3}}, false},
		{"duplicate", []entry{{"a", 1}, {"b", 1}}, false},
		{"zero based", []entry{{"a", 0}, {"b", 1}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDense(tt.items))
		})
	}
}

func TestDirectionValid(t *testing.T) {
	assert.True(t, Up.Valid())
	assert.True(t, Down.Valid())
	assert.False(t, Direction("left").Valid())
}
