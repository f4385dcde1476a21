package weakness

import (
	"slices"

	"github.com/abhisek/learnpath/internal/quiz"
)

// Weakness records one missed concept. The question text is the
// uniqueness key; entries are never edited or removed.
type Weakness struct {
	QuestionText    string `json:"questionText"`
	IncorrectAnswer string `json:"incorrectAnswer"`
	CorrectAnswer   string `json:"correctAnswer"`
}

// Ledger is the append-only, deduplicated record of missed concepts.
// It grows monotonically for the life of the session.
type Ledger struct {
	entries []Weakness
}

// NewLedger creates a Ledger, optionally seeded from persisted entries.
func NewLedger(entries []Weakness) *Ledger {
	return &Ledger{entries: slices.Clone(entries)}
}

// Entries returns all recorded weaknesses in append order.
func (l *Ledger) Entries() []Weakness {
	return slices.Clone(l.entries)
}

// Len returns the number of recorded weaknesses.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Has reports whether a weakness with the exact question text exists.
func (l *Ledger) Has(questionText string) bool {
	for _, w := range l.entries {
		if w.QuestionText == questionText {
			return true
		}
	}
	return false
}

// Record appends a weakness for every incorrect result whose question
// text is not already present. It returns the weaknesses produced by
// this grading pass (including duplicates of existing entries) so the
// remediation planner can target the most recent failed attempt.
func (l *Ledger) Record(q *quiz.Quiz, results []quiz.GradedResult, answers []quiz.Answer) []Weakness {
	answerByQuestion := make(map[string]string, len(answers))
	for _, a := range answers {
		answerByQuestion[a.QuestionID] = a.Value
	}

	var attempt []Weakness
	for _, r := range results {
		if r.IsCorrect {
			continue
		}
		question, ok := q.Question(r.QuestionID)
		if !ok {
			continue
		}
		w := Weakness{
			QuestionText:    question.Text,
			IncorrectAnswer: answerByQuestion[r.QuestionID],
			CorrectAnswer:   question.Answer,
		}
		attempt = append(attempt, w)
		if !l.Has(w.QuestionText) {
			l.entries = append(l.entries, w)
		}
	}
	return attempt
}
