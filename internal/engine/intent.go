package engine

import (
	"github.com/abhisek/learnpath/internal/content"
	"github.com/abhisek/learnpath/internal/graph"
	"github.com/abhisek/learnpath/internal/oracle"
	"github.com/abhisek/learnpath/internal/quiz"
)

// Intent is one unit of work for the dispatch loop. User intents come
// from the caller; result intents are dispatched by running commands and
// carry the epoch they were issued under so stale streams can be dropped
// at apply time.
type Intent interface {
	isIntent()
}

// --- user intents ---

// StartSession begins plan generation from fresh source material.
type StartSession struct {
	Material content.SourceMaterial
	Prefs    content.Preferences
}

// AcceptPlan confirms the generated plan. If the plan shipped with
// pre-assessment questions the session moves to the pre-assessment,
// otherwise straight to learning.
type AcceptPlan struct{}

// SkipPreAssessment declines the placement quiz.
type SkipPreAssessment struct{}

// SubmitPreAssessment hands in placement answers for analysis.
type SubmitPreAssessment struct {
	Answers []quiz.Answer
}

// OpenUnit navigates to a unit and triggers content generation if none
// has been finalized yet. Locked units are refused.
type OpenUnit struct {
	UnitID string
}

// NextUnit navigates to the next unlocked unit in linear order.
type NextUnit struct{}

// PrevUnit navigates to the previous unlocked unit in linear order.
type PrevUnit struct{}

// BackToPath returns from a unit view to the path overview.
type BackToPath struct{}

// BeginQuiz starts the current unit's mastery quiz, generating it first
// if no finalized quiz exists.
type BeginQuiz struct{}

// SubmitQuiz hands in answers for the active quiz.
type SubmitQuiz struct {
	Answers []quiz.Answer
}

// CloseReview leaves the quiz review screen.
type CloseReview struct{}

// MercyComplete force-completes a repeatedly failed unit without
// touching its attempt count.
type MercyComplete struct {
	UnitID string
}

// RequestRemediation asks for a remedial unit spliced under a failed
// unit. Never fires automatically.
type RequestRemediation struct {
	UnitID string
}

// BeginFinalExam starts the cumulative exam once every unit is
// completed.
type BeginFinalExam struct{}

// SubmitFinalExam hands in final exam answers.
type SubmitFinalExam struct {
	Answers []quiz.Answer
}

// Reset discards all in-memory session state and returns to Idle. It is
// the only exit from Summary and Error.
type Reset struct{}

func (StartSession) isIntent()        {}
func (AcceptPlan) isIntent()          {}
func (SkipPreAssessment) isIntent()   {}
func (SubmitPreAssessment) isIntent() {}
func (OpenUnit) isIntent()            {}
func (NextUnit) isIntent()            {}
func (PrevUnit) isIntent()            {}
func (BackToPath) isIntent()          {}
func (BeginQuiz) isIntent()           {}
func (SubmitQuiz) isIntent()          {}
func (CloseReview) isIntent()         {}
func (MercyComplete) isIntent()       {}
func (RequestRemediation) isIntent()  {}
func (BeginFinalExam) isIntent()      {}
func (SubmitFinalExam) isIntent()     {}
func (Reset) isIntent()               {}

// --- result intents ---

type planUnitsChunk struct {
	epoch         uint64
	units         []graph.LearningUnit
	suggestedPath []string
}

type planQuestionChunk struct {
	epoch    uint64
	question quiz.Question
}

type planDone struct {
	epoch  uint64
	quizID string
}

type planFailed struct {
	epoch uint64
	err   error
}

type assessmentDone struct {
	epoch      uint64
	assessment *oracle.Assessment
}

type assessmentFailed struct {
	epoch uint64
	err   error
}

type contentSectionChunk struct {
	epoch   uint64
	unitID  string
	section content.Section
}

type contentDone struct {
	epoch  uint64
	unitID string
}

type contentFailed struct {
	epoch  uint64
	unitID string
	err    error
}

type quizQuestionChunk struct {
	epoch    uint64
	unitID   string
	question quiz.Question
}

type quizDone struct {
	epoch  uint64
	unitID string
}

type quizFailed struct {
	epoch  uint64
	unitID string
	err    error
}

type gradesReady struct {
	epoch   uint64
	unitID  string
	answers []quiz.Answer
	results []quiz.GradedResult
}

type gradingFailed struct {
	epoch  uint64
	unitID string
	err    error
}

type remedialReady struct {
	epoch    uint64
	anchorID string
	unit     graph.LearningUnit
}

type remedialFailed struct {
	epoch    uint64
	anchorID string
	err      error
}

func (planUnitsChunk) isIntent()      {}
func (planQuestionChunk) isIntent()   {}
func (planDone) isIntent()            {}
func (planFailed) isIntent()          {}
func (assessmentDone) isIntent()      {}
func (assessmentFailed) isIntent()    {}
func (contentSectionChunk) isIntent() {}
func (contentDone) isIntent()         {}
func (contentFailed) isIntent()       {}
func (quizQuestionChunk) isIntent()   {}
func (quizDone) isIntent()            {}
func (quizFailed) isIntent()          {}
func (gradesReady) isIntent()         {}
func (gradingFailed) isIntent()       {}
func (remedialReady) isIntent()       {}
func (remedialFailed) isIntent()      {}

// resultEpoch extracts the issuing epoch from a result intent. User
// intents have no epoch and always apply.
func resultEpoch(in Intent) (uint64, bool) {
	switch v := in.(type) {
	case planUnitsChunk:
		return v.epoch, true
	case planQuestionChunk:
		return v.epoch, true
	case planDone:
		return v.epoch, true
	case planFailed:
		return v.epoch, true
	case assessmentDone:
		return v.epoch, true
	case assessmentFailed:
		return v.epoch, true
	case contentSectionChunk:
		return v.epoch, true
	case contentDone:
		return v.epoch, true
	case contentFailed:
		return v.epoch, true
	case quizQuestionChunk:
		return v.epoch, true
	case quizDone:
		return v.epoch, true
	case quizFailed:
		return v.epoch, true
	case gradesReady:
		return v.epoch, true
	case gradingFailed:
		return v.epoch, true
	case remedialReady:
		return v.epoch, true
	case remedialFailed:
		return v.epoch, true
	}
	return 0, false
}
