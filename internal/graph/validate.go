package graph

import (
	"fmt"
	"strings"
)

// Validate performs all structural checks on the forest.
// Returns a combined error describing all problems found, or nil if valid.
func (f *Forest) Validate() error {
	var errs []string

	idSet := make(map[string]bool, len(f.units))
	for _, u := range f.units {
		if idSet[u.ID] {
			errs = append(errs, fmt.Sprintf("duplicate unit ID: %q", u.ID))
		}
		idSet[u.ID] = true
	}

	// Dangling parents.
	for _, u := range f.units {
		if u.ParentID != "" && !idSet[u.ParentID] {
			errs = append(errs, fmt.Sprintf("unit %q references nonexistent parent %q", u.ID, u.ParentID))
		}
	}

	// Cycle check: walk each unit's parent chain with a bounded step count.
	for _, u := range f.units {
		seen := map[string]bool{u.ID: true}
		cur := u.ParentID
		for cur != "" {
			if seen[cur] {
				errs = append(errs, fmt.Sprintf("parent cycle involving unit %q", u.ID))
				break
			}
			seen[cur] = true
			parent, ok := f.Get(cur)
			if !ok {
				break
			}
			cur = parent.ParentID
		}
	}

	// Exactly one unlocked root anchors the forest.
	unlockedRoots := 0
	for _, u := range f.units {
		if u.IsRoot() && !u.Locked {
			unlockedRoots++
		}
	}
	if len(f.units) > 0 && unlockedRoots != 1 {
		errs = append(errs, fmt.Sprintf("expected exactly one unlocked root, got %d", unlockedRoots))
	}

	// Difficulty range.
	for _, u := range f.units {
		if u.Difficulty < 0 || u.Difficulty > 1 {
			errs = append(errs, fmt.Sprintf("unit %q: difficulty must be in [0, 1], got %f", u.ID, u.Difficulty))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("forest validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// NormalizeLocks enforces the creation invariant on freshly generated
// units: the first root is unlocked, everything else starts locked.
func NormalizeLocks(units []LearningUnit) []LearningUnit {
	out := make([]LearningUnit, len(units))
	copy(out, units)
	rootSeen := false
	for i := range out {
		if out[i].IsRoot() && !rootSeen {
			out[i].Locked = false
			rootSeen = true
			continue
		}
		out[i].Locked = true
	}
	return out
}
