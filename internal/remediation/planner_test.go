package remediation

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/learnpath/internal/content"
	"github.com/abhisek/learnpath/internal/graph"
	"github.com/abhisek/learnpath/internal/weakness"
)

type fakeSynth struct {
	unit       *graph.LearningUnit
	err        error
	gotAnchor  graph.LearningUnit
	gotWeaknesses []weakness.Weakness
}

func (f *fakeSynth) GenerateRemedialUnit(_ context.Context, anchor graph.LearningUnit, weaknesses []weakness.Weakness, _ content.SourceMaterial) (*graph.LearningUnit, error) {
	f.gotAnchor = anchor
	f.gotWeaknesses = weaknesses
	if f.err != nil {
		return nil, f.err
	}
	return f.unit, nil
}

func failedForest() (*graph.Forest, map[string]*graph.UnitProgress) {
	forest := graph.New([]graph.LearningUnit{
		{ID: "root", Title: "Root", Locked: false},
		{ID: "a", Title: "A", ParentID: "root", Locked: false},
	})
	progress := map[string]*graph.UnitProgress{
		"a": {Status: graph.StatusFailed, Attempts: 3},
	}
	return forest, progress
}

func TestPlan_InsertsRemedialChildOfAnchor(t *testing.T) {
	forest, progress := failedForest()
	synth := &fakeSynth{unit: &graph.LearningUnit{ID: "rem1", Title: "Back to Basics", Kind: graph.KindRemedial}}
	p := NewPlanner(synth)

	unit, err := p.Plan(context.Background(), forest, progress, Input{
		AnchorID:          "a",
		LastFailedAttempt: []weakness.Weakness{{QuestionText: "Q1"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if unit.ParentID != "a" {
		t.Fatalf("expected parent a, got %q", unit.ParentID)
	}
	if unit.Kind != graph.KindRemedial {
		t.Fatalf("expected remedial kind, got %q", unit.Kind)
	}
	if unit.Locked {
		t.Fatal("remedial unit must start unlocked")
	}
	if forest.Len() != 3 {
		t.Fatalf("expected 3 units after insertion, got %d", forest.Len())
	}
}

func TestPlan_PrefersLastFailedAttemptWeaknesses(t *testing.T) {
	forest, progress := failedForest()
	synth := &fakeSynth{unit: &graph.LearningUnit{ID: "rem1"}}
	p := NewPlanner(synth)

	ledger := weakness.NewLedger([]weakness.Weakness{
		{QuestionText: "historic-1"},
		{QuestionText: "historic-2"},
	})
	attempt := []weakness.Weakness{{QuestionText: "fresh"}}

	if _, err := p.Plan(context.Background(), forest, progress, Input{
		AnchorID:          "a",
		LastFailedAttempt: attempt,
		Ledger:            ledger,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(synth.gotWeaknesses) != 1 || synth.gotWeaknesses[0].QuestionText != "fresh" {
		t.Fatalf("expected the fresh attempt's weaknesses, got %+v", synth.gotWeaknesses)
	}
}

func TestPlan_FallsBackToFullLedger(t *testing.T) {
	forest, progress := failedForest()
	synth := &fakeSynth{unit: &graph.LearningUnit{ID: "rem1"}}
	p := NewPlanner(synth)

	ledger := weakness.NewLedger([]weakness.Weakness{
		{QuestionText: "historic-1"},
		{QuestionText: "historic-2"},
	})

	if _, err := p.Plan(context.Background(), forest, progress, Input{
		AnchorID: "a",
		Ledger:   ledger,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(synth.gotWeaknesses) != 2 {
		t.Fatalf("expected full ledger, got %+v", synth.gotWeaknesses)
	}
}

func TestPlan_SynthesisFailureLeavesForestUnmodified(t *testing.T) {
	forest, progress := failedForest()
	synth := &fakeSynth{err: errors.New("oracle down")}
	p := NewPlanner(synth)

	before := forest.Len()
	_, err := p.Plan(context.Background(), forest, progress, Input{
		AnchorID:          "a",
		LastFailedAttempt: []weakness.Weakness{{QuestionText: "Q1"}},
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if forest.Len() != before {
		t.Fatal("forest must be unmodified after synthesis failure")
	}
}

func TestPlan_RequiresFailedStatus(t *testing.T) {
	forest, progress := failedForest()
	progress["a"].Status = graph.StatusCompleted
	p := NewPlanner(&fakeSynth{unit: &graph.LearningUnit{ID: "rem1"}})

	if _, err := p.Plan(context.Background(), forest, progress, Input{
		AnchorID:          "a",
		LastFailedAttempt: []weakness.Weakness{{QuestionText: "Q1"}},
	}); err == nil {
		t.Fatal("expected error for non-failed unit")
	}
}

func TestPlan_RequiresWeaknesses(t *testing.T) {
	forest, progress := failedForest()
	p := NewPlanner(&fakeSynth{unit: &graph.LearningUnit{ID: "rem1"}})

	if _, err := p.Plan(context.Background(), forest, progress, Input{
		AnchorID: "a",
		Ledger:   weakness.NewLedger(nil),
	}); err == nil {
		t.Fatal("expected error when no weaknesses exist")
	}
}
