package graph

import (
	"fmt"
	"slices"
)

// Forest holds the unit forest as a flat, insertion-ordered slice.
// Parent/child structure is re-derived on each read; the forest stays
// small (≤ ~15 units) so O(N) scans beat maintaining indices.
type Forest struct {
	units []LearningUnit
}

// New creates a Forest from an insertion-ordered unit slice.
func New(units []LearningUnit) *Forest {
	return &Forest{units: slices.Clone(units)}
}

// Units returns all units in insertion order.
func (f *Forest) Units() []LearningUnit {
	return slices.Clone(f.units)
}

// Len returns the number of units in the forest.
func (f *Forest) Len() int {
	return len(f.units)
}

// Get returns the unit with the given ID.
func (f *Forest) Get(id string) (LearningUnit, bool) {
	for _, u := range f.units {
		if u.ID == id {
			return u, true
		}
	}
	return LearningUnit{}, false
}

// Roots returns all units with no parent, in insertion order.
func (f *Forest) Roots() []LearningUnit {
	var roots []LearningUnit
	for _, u := range f.units {
		if u.IsRoot() {
			roots = append(roots, u)
		}
	}
	return roots
}

// Children returns the direct children of a unit, in insertion order.
func (f *Forest) Children(id string) []LearningUnit {
	var children []LearningUnit
	for _, u := range f.units {
		if u.ParentID == id {
			children = append(children, u)
		}
	}
	return children
}

// Append adds units to the forest. IDs must be unique.
func (f *Forest) Append(units ...LearningUnit) error {
	for _, u := range units {
		if _, exists := f.Get(u.ID); exists {
			return fmt.Errorf("duplicate unit ID: %q", u.ID)
		}
		f.units = append(f.units, u)
	}
	return nil
}

// UnlockChildrenOf unlocks every direct child of the given unit.
// Idempotent: re-unlocking an already-unlocked unit is a no-op. Locks
// only ever transition true → false, never back.
func (f *Forest) UnlockChildrenOf(id string) {
	for i := range f.units {
		if f.units[i].ParentID == id {
			f.units[i].Locked = false
		}
	}
}

// InsertRemedial attaches a remedial unit as a child of anchorID.
// The inserted unit starts locked=false (it exists to be studied
// immediately) and does not affect the locking of its siblings.
func (f *Forest) InsertRemedial(unit LearningUnit, anchorID string) error {
	if _, ok := f.Get(anchorID); !ok {
		return fmt.Errorf("anchor unit not found: %q", anchorID)
	}
	unit.Kind = KindRemedial
	unit.ParentID = anchorID
	unit.Locked = false
	return f.Append(unit)
}

// ForceComplete applies the mercy rule: mark the unit completed without
// incrementing attempts, then unlock its children. The minAttempts policy
// knob gates how many failed attempts must precede the bypass (0 preserves
// the original allow-anytime behavior).
func (f *Forest) ForceComplete(id string, progress map[string]*UnitProgress, minAttempts int) error {
	if _, ok := f.Get(id); !ok {
		return fmt.Errorf("unit not found: %q", id)
	}

	p := progress[id]
	if p == nil {
		p = NewProgress()
		progress[id] = p
	}
	if p.Attempts < minAttempts {
		return fmt.Errorf("mercy rule requires %d attempts, unit %q has %d", minAttempts, id, p.Attempts)
	}

	p.Status = StatusCompleted
	f.UnlockChildrenOf(id)
	return nil
}

// LinearOrder returns a breadth-first traversal starting from all roots.
// Sibling ties are broken by insertion order. Used for previous/next
// navigation.
func (f *Forest) LinearOrder() []LearningUnit {
	var order []LearningUnit
	queue := f.Roots()
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		order = append(order, u)
		queue = append(queue, f.Children(u.ID)...)
	}
	return order
}

// NextAfter returns the unit following id in linear order.
func (f *Forest) NextAfter(id string) (LearningUnit, bool) {
	order := f.LinearOrder()
	for i, u := range order {
		if u.ID == id && i+1 < len(order) {
			return order[i+1], true
		}
	}
	return LearningUnit{}, false
}

// PrevBefore returns the unit preceding id in linear order.
func (f *Forest) PrevBefore(id string) (LearningUnit, bool) {
	order := f.LinearOrder()
	for i, u := range order {
		if u.ID == id && i > 0 {
			return order[i-1], true
		}
	}
	return LearningUnit{}, false
}

// ProgressPercent returns the share of units completed, 0-100.
func (f *Forest) ProgressPercent(progress map[string]*UnitProgress) float64 {
	if len(f.units) == 0 {
		return 0
	}
	completed := 0
	for _, u := range f.units {
		if p := progress[u.ID]; p != nil && p.Status == StatusCompleted {
			completed++
		}
	}
	return float64(completed) / float64(len(f.units)) * 100
}

// AllCompleted reports whether every unit has completed progress.
func (f *Forest) AllCompleted(progress map[string]*UnitProgress) bool {
	for _, u := range f.units {
		p := progress[u.ID]
		if p == nil || p.Status != StatusCompleted {
			return false
		}
	}
	return len(f.units) > 0
}
