package graph

import (
	"testing"
)

// testForest builds: root (unlocked) → a, b; a → c.
func testForest() *Forest {
	return New([]LearningUnit{
		{ID: "root", Title: "Root", Locked: false, Kind: KindCore},
		{ID: "a", Title: "A", ParentID: "root", Locked: true, Kind: KindCore},
		{ID: "b", Title: "B", ParentID: "root", Locked: true, Kind: KindCore},
		{ID: "c", Title: "C", ParentID: "a", Locked: true, Kind: KindCore},
	})
}

func TestGet(t *testing.T) {
	f := testForest()
	u, ok := f.Get("a")
	if !ok {
		t.Fatal("expected unit a to exist")
	}
	if u.ParentID != "root" {
		t.Errorf("got parent %q, want %q", u.ParentID, "root")
	}
	if _, ok := f.Get("nope"); ok {
		t.Error("expected lookup miss for nonexistent unit")
	}
}

func TestRootsAndChildren(t *testing.T) {
	f := testForest()
	roots := f.Roots()
	if len(roots) != 1 || roots[0].ID != "root" {
		t.Fatalf("got roots %v, want [root]", roots)
	}
	children := f.Children("root")
	if len(children) != 2 || children[0].ID != "a" || children[1].ID != "b" {
		t.Errorf("children of root out of order: %v", children)
	}
}

func TestUnlockChildrenOf(t *testing.T) {
	f := testForest()
	f.UnlockChildrenOf("root")

	for _, id := range []string{"a", "b"} {
		u, _ := f.Get(id)
		if u.Locked {
			t.Errorf("unit %q should be unlocked", id)
		}
	}
	c, _ := f.Get("c")
	if !c.Locked {
		t.Error("grandchild c should remain locked")
	}

	// Idempotent: re-unlocking changes nothing.
	f.UnlockChildrenOf("root")
	a, _ := f.Get("a")
	if a.Locked {
		t.Error("re-unlock must not relock")
	}
}

func TestUnlockMonotonicity(t *testing.T) {
	f := testForest()
	f.UnlockChildrenOf("root")
	f.UnlockChildrenOf("a")
	f.UnlockChildrenOf("missing") // no-op

	// No operation exists that relocks; verify all unlocked stay unlocked.
	for _, id := range []string{"a", "b", "c"} {
		u, _ := f.Get(id)
		if u.Locked {
			t.Errorf("unit %q relocked", id)
		}
	}
}

func TestInsertRemedial(t *testing.T) {
	f := testForest()
	err := f.InsertRemedial(LearningUnit{ID: "rem-1", Title: "Review"}, "a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	u, ok := f.Get("rem-1")
	if !ok {
		t.Fatal("remedial unit not inserted")
	}
	if u.Kind != KindRemedial {
		t.Errorf("got kind %q, want %q", u.Kind, KindRemedial)
	}
	if u.ParentID != "a" {
		t.Errorf("got parent %q, want %q", u.ParentID, "a")
	}
	if u.Locked {
		t.Error("remedial unit should start unlocked")
	}

	// Sibling locking untouched.
	c, _ := f.Get("c")
	if !c.Locked {
		t.Error("sibling c must stay locked")
	}
}

func TestInsertRemedial_MissingAnchor(t *testing.T) {
	f := testForest()
	if err := f.InsertRemedial(LearningUnit{ID: "rem-1"}, "ghost"); err == nil {
		t.Fatal("expected error for missing anchor")
	}
	if _, ok := f.Get("rem-1"); ok {
		t.Error("failed insert must not modify the forest")
	}
}

func TestForceComplete(t *testing.T) {
	f := testForest()
	progress := map[string]*UnitProgress{
		"a": {Status: StatusFailed, Attempts: 3},
	}

	if err := f.ForceComplete("a", progress, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if progress["a"].Status != StatusCompleted {
		t.Errorf("got status %q, want completed", progress["a"].Status)
	}
	if progress["a"].Attempts != 3 {
		t.Errorf("mercy rule must not change attempts: got %d, want 3", progress["a"].Attempts)
	}
	c, _ := f.Get("c")
	if c.Locked {
		t.Error("children of force-completed unit should unlock")
	}
}

func TestForceComplete_MinAttemptsPolicy(t *testing.T) {
	f := testForest()
	progress := map[string]*UnitProgress{
		"a": {Status: StatusFailed, Attempts: 1},
	}
	if err := f.ForceComplete("a", progress, 3); err == nil {
		t.Fatal("expected mercy rule to be gated below min attempts")
	}
	if progress["a"].Status != StatusFailed {
		t.Error("gated mercy rule must not change status")
	}
}

func TestLinearOrder_BFS(t *testing.T) {
	f := testForest()
	order := f.LinearOrder()
	want := []string{"root", "a", "b", "c"}
	if len(order) != len(want) {
		t.Fatalf("got %d units, want %d", len(order), len(want))
	}
	for i, id := range want {
		if order[i].ID != id {
			t.Errorf("position %d: got %q, want %q", i, order[i].ID, id)
		}
	}
}

func TestNextPrevNavigation(t *testing.T) {
	f := testForest()

	next, ok := f.NextAfter("a")
	if !ok || next.ID != "b" {
		t.Errorf("NextAfter(a): got %v, want b", next.ID)
	}
	prev, ok := f.PrevBefore("a")
	if !ok || prev.ID != "root" {
		t.Errorf("PrevBefore(a): got %v, want root", prev.ID)
	}
	if _, ok := f.NextAfter("c"); ok {
		t.Error("NextAfter(last) should report no next unit")
	}
	if _, ok := f.PrevBefore("root"); ok {
		t.Error("PrevBefore(first) should report no previous unit")
	}
}

func TestProgressPercent(t *testing.T) {
	f := testForest()
	progress := map[string]*UnitProgress{
		"root": {Status: StatusCompleted, Attempts: 1},
		"a":    {Status: StatusFailed, Attempts: 2},
	}
	got := f.ProgressPercent(progress)
	if got != 25 {
		t.Errorf("got %.1f%%, want 25.0%%", got)
	}
}

func TestAllCompleted(t *testing.T) {
	f := testForest()
	progress := make(map[string]*UnitProgress)
	if f.AllCompleted(progress) {
		t.Error("empty progress should not count as completed")
	}
	for _, u := range f.Units() {
		progress[u.ID] = &UnitProgress{Status: StatusCompleted, Attempts: 1}
	}
	if !f.AllCompleted(progress) {
		t.Error("all units completed should report true")
	}
}

func TestValidate(t *testing.T) {
	if err := testForest().Validate(); err != nil {
		t.Fatalf("valid forest rejected: %v", err)
	}

	tests := []struct {
		name  string
		units []LearningUnit
	}{
		{"duplicate id", []LearningUnit{
			{ID: "x"}, {ID: "x", ParentID: "x"},
		}},
		{"dangling parent", []LearningUnit{
			{ID: "x"}, {ID: "y", ParentID: "ghost", Locked: true},
		}},
		{"no unlocked root", []LearningUnit{
			{ID: "x", Locked: true},
		}},
		{"two unlocked roots", []LearningUnit{
			{ID: "x"}, {ID: "y"},
		}},
		{"difficulty out of range", []LearningUnit{
			{ID: "x", Difficulty: 1.5},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := New(tt.units).Validate(); err == nil {
				t.Errorf("expected validation failure for %s", tt.name)
			}
		})
	}
}

func TestNormalizeLocks(t *testing.T) {
	units := NormalizeLocks([]LearningUnit{
		{ID: "r1", Locked: true},
		{ID: "a", ParentID: "r1", Locked: false},
		{ID: "r2", Locked: false},
	})
	if units[0].Locked {
		t.Error("first root should be unlocked")
	}
	if !units[1].Locked {
		t.Error("non-root should be locked")
	}
	if !units[2].Locked {
		t.Error("secondary root should be locked")
	}
}
