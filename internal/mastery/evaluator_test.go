package mastery

import (
	"errors"
	"testing"

	"github.com/abhisek/learnpath/internal/graph"
	"github.com/abhisek/learnpath/internal/quiz"
)

// tenPointQuiz builds a quiz for unit-1 with questions worth 10 points total.
func tenPointQuiz() *quiz.Quiz {
	return &quiz.Quiz{
		ID:     "quiz-1",
		UnitID: "unit-1",
		Questions: []quiz.Question{
			{ID: "q1", Points: 4},
			{ID: "q2", Points: 3},
			{ID: "q3", Points: 3},
		},
	}
}

func TestEvaluate_PassThreshold(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		passed bool
	}{
		{"7 of 10 fails strict threshold", []float64{4, 3, 0}, false},
		{"just above the threshold passes", []float64{4, 3, 0.1}, true},
		{"7.5 of 10 passes", []float64{4, 3, 0.5}, true},
		{"6.9 of 10 fails", []float64{4, 2.9, 0}, false},
		{"zero score fails", []float64{0, 0, 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := tenPointQuiz()
			results := []quiz.GradedResult{
				{QuestionID: "q1", Score: tt.scores[0]},
				{QuestionID: "q2", Score: tt.scores[1]},
				{QuestionID: "q3", Score: tt.scores[2]},
			}
			out, err := Evaluate(q, results)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Passed != tt.passed {
				t.Errorf("total=%.1f: got passed=%v, want %v", out.Total, out.Passed, tt.passed)
			}
		})
	}
}

func TestEvaluate_RewardBoundary(t *testing.T) {
	q := &quiz.Quiz{
		ID:     "quiz-1",
		UnitID: "unit-1",
		Questions: []quiz.Question{
			{ID: "q1", Points: 100000},
		},
	}

	out, err := Evaluate(q, []quiz.GradedResult{{QuestionID: "q1", Score: 85000}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.RewardEligible {
		t.Error("ratio 0.85 exactly should be reward eligible")
	}

	out, err = Evaluate(q, []quiz.GradedResult{{QuestionID: "q1", Score: 84999}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.RewardEligible {
		t.Error("ratio 0.84999 should not be reward eligible")
	}
}

func TestEvaluate_EmptyQuizNeverPasses(t *testing.T) {
	q := &quiz.Quiz{ID: "quiz-1", UnitID: "unit-1"}
	out, err := Evaluate(q, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Passed || out.RewardEligible {
		t.Error("max=0 must never pass or earn a reward")
	}
}

func TestEvaluate_UnknownQuestionAborts(t *testing.T) {
	q := tenPointQuiz()
	_, err := Evaluate(q, []quiz.GradedResult{{QuestionID: "ghost", Score: 10}})
	if err == nil {
		t.Fatal("expected hard error for unknown question id")
	}
	var unknown *ErrUnknownQuestion
	if !errors.As(err, &unknown) {
		t.Fatalf("got %T, want *ErrUnknownQuestion", err)
	}
	if unknown.QuestionID != "ghost" {
		t.Errorf("got question id %q", unknown.QuestionID)
	}
}

func TestApply_PassUnlocksChildren(t *testing.T) {
	f := graph.New([]graph.LearningUnit{
		{ID: "root"},
		{ID: "a", ParentID: "root", Locked: true},
	})
	progress := make(map[string]*graph.UnitProgress)

	q := &quiz.Quiz{ID: "quiz-root", UnitID: "root", Questions: []quiz.Question{{ID: "q1", Points: 10}}}
	out, err := Evaluate(q, []quiz.GradedResult{{QuestionID: "q1", IsCorrect: true, Score: 8}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	Apply(f, out, progress)

	p := progress["root"]
	if p.Status != graph.StatusCompleted || p.Attempts != 1 {
		t.Errorf("got progress %+v, want completed with 1 attempt", p)
	}
	a, _ := f.Get("a")
	if a.Locked {
		t.Error("child should be unlocked after pass")
	}
}

func TestApply_AttemptsMonotonic(t *testing.T) {
	f := graph.New([]graph.LearningUnit{{ID: "a"}})
	progress := make(map[string]*graph.UnitProgress)
	q := &quiz.Quiz{ID: "quiz-a", UnitID: "a", Questions: []quiz.Question{{ID: "q1", Points: 10}}}

	for i := range 3 {
		out, err := Evaluate(q, []quiz.GradedResult{{QuestionID: "q1", Score: 2}})
		if err != nil {
			t.Fatalf("attempt %d: %v", i, err)
		}
		Apply(f, out, progress)
	}

	p := progress["a"]
	if p.Attempts != 3 {
		t.Errorf("got attempts %d, want 3", p.Attempts)
	}
	if p.Status != graph.StatusFailed {
		t.Errorf("got status %q, want failed", p.Status)
	}
}
