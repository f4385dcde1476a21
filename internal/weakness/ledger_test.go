package weakness

import (
	"testing"

	"github.com/abhisek/learnpath/internal/quiz"
)

func testQuiz() *quiz.Quiz {
	return &quiz.Quiz{
		ID:     "quiz-1",
		UnitID: "unit-1",
		Questions: []quiz.Question{
			{ID: "q1", Text: "What is a limit?", Answer: "the value a function approaches", Points: 1},
			{ID: "q2", Text: "What is a derivative?", Answer: "instantaneous rate of change", Points: 1},
		},
	}
}

func TestRecord_AppendsIncorrectOnly(t *testing.T) {
	l := NewLedger(nil)
	q := testQuiz()

	attempt := l.Record(q,
		[]quiz.GradedResult{
			{QuestionID: "q1", IsCorrect: true, Score: 1},
			{QuestionID: "q2", IsCorrect: false, Score: 0},
		},
		[]quiz.Answer{
			{QuestionID: "q1", Value: "the value a function approaches"},
			{QuestionID: "q2", Value: "the slope of a chord"},
		},
	)

	if l.Len() != 1 {
		t.Fatalf("got %d entries, want 1", l.Len())
	}
	entries := l.Entries()
	if entries[0].QuestionText != "What is a derivative?" {
		t.Errorf("got question %q", entries[0].QuestionText)
	}
	if entries[0].IncorrectAnswer != "the slope of a chord" {
		t.Errorf("got incorrect answer %q", entries[0].IncorrectAnswer)
	}
	if entries[0].CorrectAnswer != "instantaneous rate of change" {
		t.Errorf("got correct answer %q", entries[0].CorrectAnswer)
	}
	if len(attempt) != 1 {
		t.Errorf("attempt set: got %d, want 1", len(attempt))
	}
}

func TestRecord_DedupByQuestionText(t *testing.T) {
	l := NewLedger(nil)
	q := testQuiz()
	results := []quiz.GradedResult{{QuestionID: "q2", IsCorrect: false}}
	answers := []quiz.Answer{{QuestionID: "q2", Value: "wrong"}}

	l.Record(q, results, answers)
	attempt := l.Record(q, results, answers)

	if l.Len() != 1 {
		t.Errorf("duplicate question text must not create a second entry: got %d", l.Len())
	}
	// The attempt set still reports the miss even when deduplicated.
	if len(attempt) != 1 {
		t.Errorf("attempt set: got %d, want 1", len(attempt))
	}
}

func TestRecord_UnknownQuestionSkipped(t *testing.T) {
	l := NewLedger(nil)
	attempt := l.Record(testQuiz(), []quiz.GradedResult{{QuestionID: "ghost", IsCorrect: false}}, nil)
	if l.Len() != 0 || len(attempt) != 0 {
		t.Error("results for unknown questions must not mint weaknesses")
	}
}

func TestNewLedger_Seeded(t *testing.T) {
	seed := []Weakness{{QuestionText: "What is a limit?"}}
	l := NewLedger(seed)
	if !l.Has("What is a limit?") {
		t.Error("seeded entry missing")
	}

	l.Record(testQuiz(),
		[]quiz.GradedResult{{QuestionID: "q1", IsCorrect: false}},
		[]quiz.Answer{{QuestionID: "q1", Value: "infinity"}})
	if l.Len() != 1 {
		t.Errorf("seeded entry should dedup new misses: got %d entries", l.Len())
	}
}
