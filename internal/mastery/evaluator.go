package mastery

import (
	"fmt"

	"github.com/abhisek/learnpath/internal/graph"
	"github.com/abhisek/learnpath/internal/quiz"
)

// PassThreshold is the score ratio that must be strictly exceeded to
// pass a unit's quiz and unlock its children. Exactly 0.70 is not a
// pass.
const PassThreshold = 0.70

// RewardThreshold is the score ratio at which the learner becomes
// eligible for a reward. The reward content itself comes from the Oracle.
const RewardThreshold = 0.85

// ErrUnknownQuestion indicates a graded result references a question id
// absent from the quiz. Evaluation aborts rather than mis-scoring.
type ErrUnknownQuestion struct {
	QuestionID string
	QuizID     string
}

func (e *ErrUnknownQuestion) Error() string {
	return fmt.Sprintf("graded result references unknown question %q in quiz %q", e.QuestionID, e.QuizID)
}

// Outcome is the result of evaluating one quiz attempt.
type Outcome struct {
	UnitID         string
	Total          float64
	Max            float64
	Ratio          float64
	Passed         bool
	RewardEligible bool
}

// Evaluate aggregates graded results into a pass/fail outcome.
// Pure: no progress or graph state is touched. A result referencing a
// question id not in the quiz is a hard error.
func Evaluate(q *quiz.Quiz, results []quiz.GradedResult) (*Outcome, error) {
	out := &Outcome{UnitID: q.UnitID, Max: q.MaxPoints()}

	for _, r := range results {
		if _, ok := q.Question(r.QuestionID); !ok {
			return nil, &ErrUnknownQuestion{QuestionID: r.QuestionID, QuizID: q.ID}
		}
		out.Total += r.Score
	}

	if out.Max > 0 {
		out.Ratio = out.Total / out.Max
	}
	// Pass is strict (exactly at the threshold fails); reward is
	// inclusive (exactly at the threshold earns it).
	out.Passed = out.Max > 0 && out.Ratio > PassThreshold
	out.RewardEligible = out.Max > 0 && out.Ratio >= RewardThreshold
	return out, nil
}

// Apply records an outcome against the unit's progress and, on a pass,
// unlocks the unit's children. Attempts increments on every application
// regardless of pass/fail.
func Apply(f *graph.Forest, out *Outcome, progress map[string]*graph.UnitProgress) {
	p := progress[out.UnitID]
	if p == nil {
		p = graph.NewProgress()
		progress[out.UnitID] = p
	}

	p.Attempts++
	p.Proficiency = out.Ratio
	if out.Passed {
		p.Status = graph.StatusCompleted
		f.UnlockChildrenOf(out.UnitID)
	} else {
		p.Status = graph.StatusFailed
	}
}
