package engine

// Status is the session state machine's current phase. Transitions are
// applied one intent at a time by the dispatch loop; Summary and Error
// return to Idle only through an explicit reset.
type Status string

const (
	StatusIdle                 Status = "idle"
	StatusGenerating           Status = "generating"
	StatusPlanReview           Status = "plan_review"
	StatusPreAssessment        Status = "pre_assessment"
	StatusGradingPreAssessment Status = "grading_pre_assessment"
	StatusAdaptingPlan         Status = "adapting_plan"
	StatusLearning             Status = "learning"
	StatusViewingUnit          Status = "viewing_unit"
	StatusTakingQuiz           Status = "taking_quiz"
	StatusGradingQuiz          Status = "grading_quiz"
	StatusQuizReview           Status = "quiz_review"
	StatusAllUnitsCompleted    Status = "all_units_completed"
	StatusFinalExam            Status = "final_exam"
	StatusGradingFinalExam     Status = "grading_final_exam"
	StatusSummary              Status = "summary"
	StatusError                Status = "error"
)

func (s Status) String() string {
	return string(s)
}

// terminal reports whether the status only exits via reset.
func (s Status) terminal() bool {
	return s == StatusSummary || s == StatusError
}
