package assembler

import (
	"testing"

	"github.com/abhisek/learnpath/internal/content"
	"github.com/abhisek/learnpath/internal/graph"
	"github.com/abhisek/learnpath/internal/quiz"
)

func section(body string) content.Section {
	return content.Section{Kind: content.SectionTheory, Body: body}
}

func TestContent_AssemblesInArrivalOrder(t *testing.T) {
	a := New()
	a.StartContent("u1")

	for _, body := range []string{"A", "B", "C"} {
		if err := a.AppendSection("u1", section(body)); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	final, err := a.FinalizeContent("u1")
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if final.Text() != "ABC" {
		t.Fatalf("expected ABC, got %q", final.Text())
	}
}

func TestContent_OutOfOrderArrivalIsNotCorrected(t *testing.T) {
	// Arrival order wins: [A, C, B] assembles to ACB. The assembler
	// concatenates, it does not sort.
	a := New()
	a.StartContent("u1")

	for _, body := range []string{"A", "C", "B"} {
		if err := a.AppendSection("u1", section(body)); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	final, err := a.FinalizeContent("u1")
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if final.Text() != "ACB" {
		t.Fatalf("expected ACB, got %q", final.Text())
	}
}

func TestContent_FinalizePromotesToPermanentStore(t *testing.T) {
	a := New()
	a.StartContent("u1")
	if err := a.AppendSection("u1", section("A")); err != nil {
		t.Fatalf("append: %v", err)
	}

	if _, ok := a.Content("u1"); ok {
		t.Fatal("partial buffer must not be visible in the permanent store")
	}

	if _, err := a.FinalizeContent("u1"); err != nil {
		t.Fatalf("finalize: %v", err)
	}

	got, ok := a.Content("u1")
	if !ok {
		t.Fatal("finalized content missing from permanent store")
	}
	if got.Text() != "A" {
		t.Fatalf("expected A, got %q", got.Text())
	}
	if a.ContentInProgress("u1") {
		t.Fatal("buffer should be cleared after finalize")
	}
}

func TestContent_DiscardDropsPartialOnly(t *testing.T) {
	a := New()
	a.StartContent("u1")
	if err := a.AppendSection("u1", section("old")); err != nil {
		t.Fatalf("append: %v", err)
	}
	if _, err := a.FinalizeContent("u1"); err != nil {
		t.Fatalf("finalize: %v", err)
	}

	// A second stream fails mid-way: the finalized version survives.
	a.StartContent("u1")
	if err := a.AppendSection("u1", section("new-partial")); err != nil {
		t.Fatalf("append: %v", err)
	}
	a.DiscardContent("u1")

	got, ok := a.Content("u1")
	if !ok || got.Text() != "old" {
		t.Fatalf("expected previously finalized content to survive, got %v ok=%v", got, ok)
	}
	if err := a.AppendSection("u1", section("late")); err == nil {
		t.Fatal("append after discard must fail")
	}
}

func TestContent_StartResetsBuffer(t *testing.T) {
	a := New()
	a.StartContent("u1")
	if err := a.AppendSection("u1", section("stale")); err != nil {
		t.Fatalf("append: %v", err)
	}

	// A new stream start for the same artifact resets the buffer; the
	// stale chunk is gone.
	a.StartContent("u1")
	if err := a.AppendSection("u1", section("fresh")); err != nil {
		t.Fatalf("append: %v", err)
	}

	final, err := a.FinalizeContent("u1")
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if final.Text() != "fresh" {
		t.Fatalf("expected fresh, got %q", final.Text())
	}
}

func TestContent_IndependentStreamsDoNotInterfere(t *testing.T) {
	a := New()
	a.StartContent("u1")
	a.StartContent("u2")

	// Interleaved arrival across artifacts: each buffer keeps its own order.
	if err := a.AppendSection("u1", section("1a")); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := a.AppendSection("u2", section("2a")); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := a.AppendSection("u1", section("1b")); err != nil {
		t.Fatalf("append: %v", err)
	}

	c1, err := a.FinalizeContent("u1")
	if err != nil {
		t.Fatalf("finalize u1: %v", err)
	}
	c2, err := a.FinalizeContent("u2")
	if err != nil {
		t.Fatalf("finalize u2: %v", err)
	}
	if c1.Text() != "1a1b" || c2.Text() != "2a" {
		t.Fatalf("cross-artifact interference: %q / %q", c1.Text(), c2.Text())
	}
}

func TestContent_FinalizeEmptyBufferFails(t *testing.T) {
	a := New()
	a.StartContent("u1")
	if _, err := a.FinalizeContent("u1"); err == nil {
		t.Fatal("expected error finalizing empty buffer")
	}
}

func TestQuiz_AppendAndFinalize(t *testing.T) {
	a := New()
	a.StartQuiz("u1", "quiz1", "Quiz: Trees")

	for _, text := range []string{"Q1", "Q2", "Q3"} {
		if err := a.AppendQuestion("u1", quiz.Question{ID: text, Text: text, Points: 1}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	final, err := a.FinalizeQuiz("u1")
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if len(final.Questions) != 3 || final.Questions[0].Text != "Q1" {
		t.Fatalf("unexpected quiz: %+v", final)
	}

	stored, ok := a.Quiz("u1")
	if !ok || stored.ID != "quiz1" {
		t.Fatal("finalized quiz missing from permanent store")
	}
}

func TestQuiz_DiscardLeavesNoTrace(t *testing.T) {
	a := New()
	a.StartQuiz("u1", "quiz1", "Quiz")
	if err := a.AppendQuestion("u1", quiz.Question{ID: "q1"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	a.DiscardQuiz("u1")

	if _, ok := a.Quiz("u1"); ok {
		t.Fatal("discarded quiz must not reach the permanent store")
	}
}

func TestPlan_AssembleAndFinalize(t *testing.T) {
	a := New()
	a.StartPlan()

	units := []graph.LearningUnit{
		{ID: "u1", Title: "Root"},
		{ID: "u2", Title: "Child", ParentID: "u1", Locked: true},
	}
	if err := a.AppendPlanUnits(units, []string{"u1", "u2"}); err != nil {
		t.Fatalf("append units: %v", err)
	}
	if err := a.AppendPreAssessmentQuestion(quiz.Question{ID: "p1", Text: "?"}); err != nil {
		t.Fatalf("append question: %v", err)
	}

	plan, err := a.FinalizePlan("quiz-pre")
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if len(plan.Units) != 2 {
		t.Fatalf("expected 2 units, got %d", len(plan.Units))
	}
	if plan.PreAssessment.UnitID != quiz.PreAssessmentUnitID {
		t.Fatalf("unexpected pre-assessment unit id %q", plan.PreAssessment.UnitID)
	}

	if _, ok := a.Quiz(quiz.PreAssessmentUnitID); !ok {
		t.Fatal("pre-assessment quiz missing from permanent store")
	}

	// Buffer is cleared: further appends fail.
	if err := a.AppendPreAssessmentQuestion(quiz.Question{ID: "p2"}); err == nil {
		t.Fatal("append after finalize must fail")
	}
}

func TestPlan_FinalizeWithoutUnitsFails(t *testing.T) {
	a := New()
	a.StartPlan()
	if _, err := a.FinalizePlan("quiz-pre"); err == nil {
		t.Fatal("expected error finalizing a plan with no units")
	}
}

func TestRestore_SeedsPermanentStoreOnly(t *testing.T) {
	a := Restore(
		map[string]content.Content{"u1": {UnitID: "u1", Sections: []content.Section{section("A")}}},
		map[string]quiz.Quiz{"u1": {ID: "quiz1", UnitID: "u1"}},
	)

	if _, ok := a.Content("u1"); !ok {
		t.Fatal("restored content missing")
	}
	if _, ok := a.Quiz("u1"); !ok {
		t.Fatal("restored quiz missing")
	}
	if a.ContentInProgress("u1") || a.QuizInProgress("u1") {
		t.Fatal("restore must not open in-progress buffers")
	}
}
