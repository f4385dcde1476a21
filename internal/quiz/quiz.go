package quiz

// QuestionKind distinguishes the two supported question formats.
type QuestionKind string

const (
	KindMultipleChoice QuestionKind = "multiple-choice"
	KindShortAnswer    QuestionKind = "short-answer"
)

// Question is a single quiz question. Questions are immutable once the
// owning quiz is finalized.
type Question struct {
	ID          string       `json:"id"`
	Text        string       `json:"text"`
	Kind        QuestionKind `json:"kind"`
	Options     []string     `json:"options,omitempty"` // multiple-choice only
	Answer      string       `json:"answer"`
	Points      float64      `json:"points"`
	Difficulty  float64      `json:"difficulty"` // 0.0 - 1.0
	Explanation string       `json:"explanation,omitempty"`
}

// Reserved unit IDs for quizzes not bound to a learning unit.
const (
	PreAssessmentUnitID = "pre-assessment"
	FinalExamUnitID     = "final-exam"
)

// Quiz is an ordered sequence of questions bound to a unit (or to the
// pre-assessment / final exam, which use reserved unit IDs).
type Quiz struct {
	ID        string     `json:"id"`
	UnitID    string     `json:"unitId"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// Question returns the question with the given ID.
func (q *Quiz) Question(id string) (Question, bool) {
	for _, qq := range q.Questions {
		if qq.ID == id {
			return qq, true
		}
	}
	return Question{}, false
}

// MaxPoints sums the points across all questions.
func (q *Quiz) MaxPoints() float64 {
	var max float64
	for _, qq := range q.Questions {
		max += qq.Points
	}
	return max
}

// Answer is a learner's response to one question.
type Answer struct {
	QuestionID string `json:"questionId"`
	Value      string `json:"value"`
}

// GradedResult binds a question to its grading outcome.
// Analysis is free-text commentary from the grader.
type GradedResult struct {
	QuestionID string  `json:"questionId"`
	IsCorrect  bool    `json:"isCorrect"`
	Score      float64 `json:"score"`
	Analysis   string  `json:"analysis,omitempty"`
}
