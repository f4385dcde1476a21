// Package assembler accumulates partial asynchronous generation payloads
// into finalized snapshots. Each artifact (the plan, one unit's content,
// one quiz) has an independent in-progress buffer; chunks append in
// arrival order and a terminal finalize freezes the buffer into the
// permanent store. Partial buffers are never promoted: a failed stream
// is discarded wholesale.
//
// The assembler is not safe for concurrent use. The engine's serialized
// dispatch loop is its only caller.
package assembler

import (
	"fmt"

	"github.com/abhisek/learnpath/internal/content"
	"github.com/abhisek/learnpath/internal/graph"
	"github.com/abhisek/learnpath/internal/quiz"
)

// PlanDraft is the in-progress plan buffer.
type PlanDraft struct {
	Units         []graph.LearningUnit
	SuggestedPath []string
	PreAssessment []quiz.Question
}

// Plan is a finalized plan.
type Plan struct {
	Units         []graph.LearningUnit
	SuggestedPath []string
	PreAssessment quiz.Quiz
}

// Assembler owns the in-progress buffers and the permanent store of
// finalized content and quizzes, both keyed by unit ID.
type Assembler struct {
	plan           *PlanDraft
	contentBuffers map[string][]content.Section
	quizBuffers    map[string]*quiz.Quiz

	finalContent map[string]content.Content
	finalQuizzes map[string]quiz.Quiz
}

// New creates an empty Assembler.
func New() *Assembler {
	return &Assembler{
		contentBuffers: make(map[string][]content.Section),
		quizBuffers:    make(map[string]*quiz.Quiz),
		finalContent:   make(map[string]content.Content),
		finalQuizzes:   make(map[string]quiz.Quiz),
	}
}

// Restore seeds the permanent store from persisted state. In-progress
// buffers always start empty; partial streams do not survive a reload.
func Restore(unitContent map[string]content.Content, quizzes map[string]quiz.Quiz) *Assembler {
	a := New()
	for id, c := range unitContent {
		a.finalContent[id] = c
	}
	for id, q := range quizzes {
		a.finalQuizzes[id] = q
	}
	return a
}

// StartPlan opens a fresh plan buffer, dropping any in-progress plan.
// A late result from the dropped stream applies to the new buffer only
// if it arrives after this reset.
func (a *Assembler) StartPlan() {
	a.plan = &PlanDraft{}
}

// AppendPlanUnits records the plan's unit forest and suggested path.
func (a *Assembler) AppendPlanUnits(units []graph.LearningUnit, suggestedPath []string) error {
	if a.plan == nil {
		return fmt.Errorf("no plan stream in progress")
	}
	a.plan.Units = append(a.plan.Units, units...)
	a.plan.SuggestedPath = append(a.plan.SuggestedPath, suggestedPath...)
	return nil
}

// AppendPreAssessmentQuestion appends one pre-assessment question in
// arrival order.
func (a *Assembler) AppendPreAssessmentQuestion(q quiz.Question) error {
	if a.plan == nil {
		return fmt.Errorf("no plan stream in progress")
	}
	a.plan.PreAssessment = append(a.plan.PreAssessment, q)
	return nil
}

// FinalizePlan freezes the plan buffer and clears it. The pre-assessment
// questions become a quiz under the reserved pre-assessment unit ID.
func (a *Assembler) FinalizePlan(quizID string) (*Plan, error) {
	if a.plan == nil {
		return nil, fmt.Errorf("no plan stream in progress")
	}
	if len(a.plan.Units) == 0 {
		return nil, fmt.Errorf("plan stream ended with no units")
	}

	final := &Plan{
		Units:         a.plan.Units,
		SuggestedPath: a.plan.SuggestedPath,
		PreAssessment: quiz.Quiz{
			ID:        quizID,
			UnitID:    quiz.PreAssessmentUnitID,
			Title:     "Pre-assessment",
			Questions: a.plan.PreAssessment,
		},
	}
	a.plan = nil
	a.finalQuizzes[quiz.PreAssessmentUnitID] = final.PreAssessment
	return final, nil
}

// DiscardPlan drops the in-progress plan buffer.
func (a *Assembler) DiscardPlan() {
	a.plan = nil
}

// StartContent opens a fresh section buffer for a unit, dropping any
// in-progress content stream for that unit. Streams for other units are
// unaffected.
func (a *Assembler) StartContent(unitID string) {
	a.contentBuffers[unitID] = []content.Section{}
}

// AppendSection appends one section in arrival order. Sections are never
// reordered; an out-of-order stream assembles out of order.
func (a *Assembler) AppendSection(unitID string, s content.Section) error {
	buf, ok := a.contentBuffers[unitID]
	if !ok {
		return fmt.Errorf("no content stream in progress for unit %s", unitID)
	}
	a.contentBuffers[unitID] = append(buf, s)
	return nil
}

// FinalizeContent freezes the unit's section buffer into the permanent
// store and clears the buffer.
func (a *Assembler) FinalizeContent(unitID string) (content.Content, error) {
	buf, ok := a.contentBuffers[unitID]
	if !ok {
		return content.Content{}, fmt.Errorf("no content stream in progress for unit %s", unitID)
	}
	if len(buf) == 0 {
		return content.Content{}, fmt.Errorf("content stream for unit %s ended empty", unitID)
	}

	final := content.Content{UnitID: unitID, Sections: buf}
	a.finalContent[unitID] = final
	delete(a.contentBuffers, unitID)
	return final, nil
}

// DiscardContent drops the unit's in-progress section buffer. The
// permanent store keeps whatever was previously finalized.
func (a *Assembler) DiscardContent(unitID string) {
	delete(a.contentBuffers, unitID)
}

// StartQuiz opens a fresh question buffer for a unit's quiz.
func (a *Assembler) StartQuiz(unitID, quizID, title string) {
	a.quizBuffers[unitID] = &quiz.Quiz{ID: quizID, UnitID: unitID, Title: title}
}

// AppendQuestion appends one question in arrival order.
func (a *Assembler) AppendQuestion(unitID string, q quiz.Question) error {
	buf, ok := a.quizBuffers[unitID]
	if !ok {
		return fmt.Errorf("no quiz stream in progress for unit %s", unitID)
	}
	buf.Questions = append(buf.Questions, q)
	return nil
}

// FinalizeQuiz freezes the quiz buffer into the permanent store. The
// quiz is immutable from here on.
func (a *Assembler) FinalizeQuiz(unitID string) (quiz.Quiz, error) {
	buf, ok := a.quizBuffers[unitID]
	if !ok {
		return quiz.Quiz{}, fmt.Errorf("no quiz stream in progress for unit %s", unitID)
	}
	if len(buf.Questions) == 0 {
		return quiz.Quiz{}, fmt.Errorf("quiz stream for unit %s ended empty", unitID)
	}

	final := *buf
	a.finalQuizzes[unitID] = final
	delete(a.quizBuffers, unitID)
	return final, nil
}

// DiscardQuiz drops the unit's in-progress question buffer.
func (a *Assembler) DiscardQuiz(unitID string) {
	delete(a.quizBuffers, unitID)
}

// Content returns the finalized content for a unit.
func (a *Assembler) Content(unitID string) (content.Content, bool) {
	c, ok := a.finalContent[unitID]
	return c, ok
}

// Quiz returns the finalized quiz for a unit.
func (a *Assembler) Quiz(unitID string) (quiz.Quiz, bool) {
	q, ok := a.finalQuizzes[unitID]
	return q, ok
}

// AllContent returns the permanent content store keyed by unit ID.
// The returned map is a copy.
func (a *Assembler) AllContent() map[string]content.Content {
	out := make(map[string]content.Content, len(a.finalContent))
	for id, c := range a.finalContent {
		out[id] = c
	}
	return out
}

// AllQuizzes returns the permanent quiz store keyed by unit ID.
// The returned map is a copy.
func (a *Assembler) AllQuizzes() map[string]quiz.Quiz {
	out := make(map[string]quiz.Quiz, len(a.finalQuizzes))
	for id, q := range a.finalQuizzes {
		out[id] = q
	}
	return out
}

// ContentInProgress reports whether a content stream is open for a unit.
func (a *Assembler) ContentInProgress(unitID string) bool {
	_, ok := a.contentBuffers[unitID]
	return ok
}

// QuizInProgress reports whether a quiz stream is open for a unit.
func (a *Assembler) QuizInProgress(unitID string) bool {
	_, ok := a.quizBuffers[unitID]
	return ok
}
