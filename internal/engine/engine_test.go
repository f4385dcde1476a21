package engine

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/learnpath/internal/content"
	"github.com/abhisek/learnpath/internal/graph"
	"github.com/abhisek/learnpath/internal/oracle"
	"github.com/abhisek/learnpath/internal/quiz"
	"github.com/abhisek/learnpath/internal/remediation"
	"github.com/abhisek/learnpath/internal/store"
	"github.com/abhisek/learnpath/internal/weakness"
)

// fakeOracle is a scripted Oracle. Streams are emitted synchronously
// the way the real service does.
type fakeOracle struct {
	planErr      error
	units        []graph.LearningUnit
	path         []string
	preQuestions []quiz.Question

	contentErr error
	sections   []content.Section

	quizErr   error
	questions []quiz.Question

	gradeErr error
	grades   func(q *quiz.Quiz) []quiz.GradedResult

	assessErr  error
	assessment *oracle.Assessment

	contentCalls int
	quizCalls    int
}

func (f *fakeOracle) GeneratePlan(_ context.Context, _ content.SourceMaterial, _ content.Preferences, ev oracle.PlanEvents) (*oracle.Plan, error) {
	if f.planErr != nil {
		return nil, f.planErr
	}
	if ev.UnitsReady != nil {
		ev.UnitsReady(f.units, f.path)
	}
	for _, q := range f.preQuestions {
		if ev.PreAssessmentQuestion != nil {
			ev.PreAssessmentQuestion(q)
		}
	}
	return &oracle.Plan{
		Units:         f.units,
		SuggestedPath: f.path,
		PreAssessment: &quiz.Quiz{ID: "pre-1", UnitID: quiz.PreAssessmentUnitID, Questions: f.preQuestions},
	}, nil
}

func (f *fakeOracle) GenerateUnitContent(_ context.Context, in oracle.ContentInput, ev oracle.ContentEvents) (*content.Content, error) {
	f.contentCalls++
	if f.contentErr != nil {
		return nil, f.contentErr
	}
	for _, s := range f.sections {
		if ev.Section != nil {
			ev.Section(s)
		}
	}
	return &content.Content{UnitID: in.Unit.ID, Sections: f.sections}, nil
}

func (f *fakeOracle) GenerateQuiz(_ context.Context, unit graph.LearningUnit, _ content.Content, _ content.Preferences, ev oracle.QuizEvents) (*quiz.Quiz, error) {
	f.quizCalls++
	if f.quizErr != nil {
		return nil, f.quizErr
	}
	for _, q := range f.questions {
		if ev.Question != nil {
			ev.Question(q)
		}
	}
	return &quiz.Quiz{ID: "quiz-" + unit.ID, UnitID: unit.ID, Questions: f.questions}, nil
}

func (f *fakeOracle) GenerateFinalExam(_ context.Context, _ []graph.LearningUnit, _ content.SourceMaterial, _ content.Preferences, ev oracle.QuizEvents) (*quiz.Quiz, error) {
	if f.quizErr != nil {
		return nil, f.quizErr
	}
	for _, q := range f.questions {
		if ev.Question != nil {
			ev.Question(q)
		}
	}
	return &quiz.Quiz{ID: "final-1", UnitID: quiz.FinalExamUnitID, Questions: f.questions}, nil
}

func (f *fakeOracle) GradeQuiz(_ context.Context, q *quiz.Quiz, _ []quiz.Answer, _ content.SourceMaterial) ([]quiz.GradedResult, error) {
	if f.gradeErr != nil {
		return nil, f.gradeErr
	}
	return f.grades(q), nil
}

func (f *fakeOracle) AnalyzePreAssessment(_ context.Context, _ []quiz.Question, _ []quiz.Answer, _ content.SourceMaterial) (*oracle.Assessment, error) {
	if f.assessErr != nil {
		return nil, f.assessErr
	}
	return f.assessment, nil
}

type fakeSynth struct {
	unit *graph.LearningUnit
	err  error
}

func (f *fakeSynth) GenerateRemedialUnit(_ context.Context, _ graph.LearningUnit, _ []weakness.Weakness, _ content.SourceMaterial) (*graph.LearningUnit, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.unit, nil
}

func newFakeOracle() *fakeOracle {
	return &fakeOracle{
		units: []graph.LearningUnit{
			{ID: "root", Title: "Foundations", Kind: graph.KindCore},
			{ID: "A", Title: "Composition", ParentID: "root", Kind: graph.KindCore, Locked: true},
			{ID: "B", Title: "Applications", ParentID: "A", Kind: graph.KindCore, Locked: true},
		},
		path: []string{"root", "A", "B"},
		preQuestions: []quiz.Question{
			{ID: "pq1", Text: "What is a function?", Kind: quiz.KindShortAnswer, Answer: "a mapping", Points: 1},
			{ID: "pq2", Text: "2+2?", Kind: quiz.KindShortAnswer, Answer: "4", Points: 1},
		},
		sections: []content.Section{
			{Kind: content.SectionIntroduction, Body: "A"},
			{Kind: content.SectionTheory, Body: "B"},
			{Kind: content.SectionConclusion, Body: "C"},
		},
		questions: []quiz.Question{
			{ID: "q1", Text: "Define composition.", Kind: quiz.KindShortAnswer, Answer: "g after f", Points: 4},
			{ID: "q2", Text: "Evaluate (g∘f)(2).", Kind: quiz.KindShortAnswer, Answer: "7", Points: 6},
		},
		grades: func(q *quiz.Quiz) []quiz.GradedResult {
			return passingGrades(q)
		},
		assessment: &oracle.Assessment{
			Summary:          "solid basics",
			Strengths:        []string{"arithmetic"},
			Weaknesses:       []string{"composition"},
			RecommendedLevel: "beginner",
		},
	}
}

// 8 of 10: above the pass threshold, below the reward threshold.
func passingGrades(q *quiz.Quiz) []quiz.GradedResult {
	return []quiz.GradedResult{
		{QuestionID: q.Questions[0].ID, IsCorrect: true, Score: 4},
		{QuestionID: q.Questions[1].ID, IsCorrect: true, Score: 4},
	}
}

// 2 of 10: both questions missed.
func failingGrades(q *quiz.Quiz) []quiz.GradedResult {
	return []quiz.GradedResult{
		{QuestionID: q.Questions[0].ID, IsCorrect: false, Score: 2},
		{QuestionID: q.Questions[1].ID, IsCorrect: false, Score: 0},
	}
}

func newTestEngine(f *fakeOracle, synth remediation.UnitSynthesizer) *Engine {
	if synth == nil {
		synth = &fakeSynth{unit: &graph.LearningUnit{ID: "rem-1", Title: "Composition review"}}
	}
	return New(Config{Oracle: f, Planner: remediation.NewPlanner(synth)}, NewState("owner1"))
}

// drive applies an intent and runs every command it (transitively)
// issues, synchronously and in dispatch order.
func drive(t *testing.T, e *Engine, in Intent) {
	t.Helper()
	queue := []Intent{in}
	for len(queue) > 0 {
		head := queue[0]
		queue = queue[1:]
		for _, cmd := range e.apply(head) {
			cmd(context.Background(), func(next Intent) { queue = append(queue, next) })
		}
	}
}

func startMaterial() content.SourceMaterial {
	return content.SourceMaterial{Title: "Functions", Text: "Chapter on functions and composition."}
}

// toLearning walks a fresh engine through plan generation, plan review
// and pre-assessment skip.
func toLearning(t *testing.T, e *Engine) {
	t.Helper()
	drive(t, e, StartSession{Material: startMaterial()})
	if e.st.Status != StatusPlanReview {
		t.Fatalf("expected plan review, got %s (%s)", e.st.Status, e.st.ErrMsg)
	}
	drive(t, e, AcceptPlan{})
	if e.st.Status == StatusPreAssessment {
		drive(t, e, SkipPreAssessment{})
	}
	if e.st.Status != StatusLearning {
		t.Fatalf("expected learning, got %s", e.st.Status)
	}
}

// passUnit opens a unit, takes its quiz and passes it.
func passUnit(t *testing.T, e *Engine, f *fakeOracle, unitID string) {
	t.Helper()
	f.grades = passingGrades
	drive(t, e, OpenUnit{UnitID: unitID})
	if e.st.Status != StatusViewingUnit {
		t.Fatalf("open %s: got %s (%s)", unitID, e.st.Status, e.st.ErrMsg)
	}
	drive(t, e, BeginQuiz{})
	drive(t, e, SubmitQuiz{Answers: []quiz.Answer{{QuestionID: "q1", Value: "x"}, {QuestionID: "q2", Value: "y"}}})
	if e.st.Status != StatusQuizReview {
		t.Fatalf("pass %s: got %s (%s)", unitID, e.st.Status, e.st.ErrMsg)
	}
	drive(t, e, CloseReview{})
}

func TestStartSession_BuildsPlanForReview(t *testing.T) {
	f := newFakeOracle()
	e := newTestEngine(f, nil)

	drive(t, e, StartSession{Material: startMaterial()})

	if e.st.Status != StatusPlanReview {
		t.Fatalf("expected plan review, got %s (%s)", e.st.Status, e.st.ErrMsg)
	}
	if e.st.Forest.Len() != 3 {
		t.Fatalf("expected 3 units, got %d", e.st.Forest.Len())
	}

	// Exactly one root is unlocked at creation.
	unlocked := 0
	for _, u := range e.st.Forest.Units() {
		if !u.Locked {
			unlocked++
		}
	}
	if unlocked != 1 {
		t.Fatalf("expected exactly one unlocked unit, got %d", unlocked)
	}

	pre, ok := e.st.Assembler.Quiz(quiz.PreAssessmentUnitID)
	if !ok || len(pre.Questions) != 2 {
		t.Fatalf("expected finalized pre-assessment with 2 questions, got %+v", pre)
	}
}

func TestStartSession_EmptyMaterialRefused(t *testing.T) {
	e := newTestEngine(newFakeOracle(), nil)
	drive(t, e, StartSession{})
	if e.st.Status != StatusIdle || e.st.ErrMsg == "" {
		t.Fatalf("expected refusal in idle, got %s", e.st.Status)
	}
}

func TestPreAssessment_AdaptsLevel(t *testing.T) {
	f := newFakeOracle()
	e := newTestEngine(f, nil)

	drive(t, e, StartSession{Material: startMaterial()})
	drive(t, e, AcceptPlan{})
	if e.st.Status != StatusPreAssessment {
		t.Fatalf("expected pre-assessment, got %s", e.st.Status)
	}

	drive(t, e, SubmitPreAssessment{Answers: []quiz.Answer{{QuestionID: "pq1", Value: "a mapping"}}})

	if e.st.Status != StatusLearning {
		t.Fatalf("expected learning after analysis, got %s (%s)", e.st.Status, e.st.ErrMsg)
	}
	if e.st.Assessment == nil || e.st.Assessment.Summary != "solid basics" {
		t.Fatalf("assessment not recorded: %+v", e.st.Assessment)
	}
	if e.st.Prefs.Level != "beginner" {
		t.Fatalf("expected adapted level, got %q", e.st.Prefs.Level)
	}
}

func TestOpenUnit_AssemblesContentInOrder(t *testing.T) {
	f := newFakeOracle()
	e := newTestEngine(f, nil)
	toLearning(t, e)

	drive(t, e, OpenUnit{UnitID: "root"})

	if e.st.Status != StatusViewingUnit || e.st.CurrentUnitID != "root" {
		t.Fatalf("expected viewing root, got %s/%s", e.st.Status, e.st.CurrentUnitID)
	}
	c, ok := e.st.Assembler.Content("root")
	if !ok {
		t.Fatal("expected finalized content")
	}
	if c.Text() != "ABC" {
		t.Fatalf("sections out of order: %q", c.Text())
	}
	if p := e.st.Progress["root"]; p == nil || p.Status != graph.StatusInProgress {
		t.Fatalf("expected in-progress record, got %+v", p)
	}
	if e.st.Behavior.UnitsViewed != 1 {
		t.Fatalf("expected 1 unit view, got %d", e.st.Behavior.UnitsViewed)
	}

	// Re-opening reuses the finalized content.
	drive(t, e, BackToPath{})
	drive(t, e, OpenUnit{UnitID: "root"})
	if f.contentCalls != 1 {
		t.Fatalf("expected one content generation, got %d", f.contentCalls)
	}
}

func TestOpenUnit_LockedRefused(t *testing.T) {
	e := newTestEngine(newFakeOracle(), nil)
	toLearning(t, e)

	drive(t, e, OpenUnit{UnitID: "A"})

	if e.st.Status != StatusLearning || e.st.ErrMsg == "" {
		t.Fatalf("expected locked refusal, got %s (%q)", e.st.Status, e.st.ErrMsg)
	}
}

func TestQuizPass_UnlocksChildAndRecordsAttempt(t *testing.T) {
	f := newFakeOracle()
	e := newTestEngine(f, nil)
	toLearning(t, e)

	drive(t, e, OpenUnit{UnitID: "root"})
	drive(t, e, BeginQuiz{})
	if e.st.Status != StatusTakingQuiz || e.st.ActiveQuiz == nil {
		t.Fatalf("expected active quiz, got %s", e.st.Status)
	}

	drive(t, e, SubmitQuiz{Answers: []quiz.Answer{{QuestionID: "q1", Value: "g after f"}, {QuestionID: "q2", Value: "7"}}})

	if e.st.Status != StatusQuizReview {
		t.Fatalf("expected quiz review, got %s (%s)", e.st.Status, e.st.ErrMsg)
	}
	if !e.st.LastOutcome.Passed || e.st.LastOutcome.Ratio != 0.8 {
		t.Fatalf("expected pass at 0.8, got %+v", e.st.LastOutcome)
	}

	p := e.st.Progress["root"]
	if p == nil || p.Status != graph.StatusCompleted || p.Attempts != 1 {
		t.Fatalf("expected completed with 1 attempt, got %+v", p)
	}
	a, _ := e.st.Forest.Get("A")
	if a.Locked {
		t.Fatal("expected child A unlocked after parent pass")
	}
	b, _ := e.st.Forest.Get("B")
	if !b.Locked {
		t.Fatal("grandchild B must stay locked")
	}
	if e.st.Behavior.QuizzesTaken != 1 || e.st.Behavior.QuizzesPassed != 1 {
		t.Fatalf("unexpected behavior stats: %+v", e.st.Behavior)
	}
}

func TestQuizFailuresThenMercy_KeepsAttempts(t *testing.T) {
	f := newFakeOracle()
	e := newTestEngine(f, nil)
	toLearning(t, e)
	passUnit(t, e, f, "root")

	// Fail A three times.
	f.grades = failingGrades
	for i := 0; i < 3; i++ {
		drive(t, e, OpenUnit{UnitID: "A"})
		drive(t, e, BeginQuiz{})
		drive(t, e, SubmitQuiz{Answers: []quiz.Answer{{QuestionID: "q1", Value: "no"}, {QuestionID: "q2", Value: "no"}}})
		if e.st.Status != StatusQuizReview {
			t.Fatalf("attempt %d: got %s (%s)", i+1, e.st.Status, e.st.ErrMsg)
		}
		drive(t, e, CloseReview{})
	}

	p := e.st.Progress["A"]
	if p == nil || p.Status != graph.StatusFailed || p.Attempts != 3 {
		t.Fatalf("expected 3 failed attempts, got %+v", p)
	}

	drive(t, e, MercyComplete{UnitID: "A"})

	p = e.st.Progress["A"]
	if p.Status != graph.StatusCompleted || p.Attempts != 3 {
		t.Fatalf("mercy must not touch attempts: %+v", p)
	}
	b, _ := e.st.Forest.Get("B")
	if b.Locked {
		t.Fatal("expected B unlocked after mercy completion of A")
	}
	if e.st.Behavior.MercyCompletions != 1 {
		t.Fatalf("expected mercy recorded, got %+v", e.st.Behavior)
	}
}

func TestMercy_GatedByMinAttempts(t *testing.T) {
	f := newFakeOracle()
	e := New(Config{Oracle: f, Planner: remediation.NewPlanner(&fakeSynth{}), MinMercyAttempts: 3}, NewState("owner1"))
	toLearning(t, e)

	drive(t, e, MercyComplete{UnitID: "root"})

	if e.st.ErrMsg == "" {
		t.Fatal("expected mercy refusal below minimum attempts")
	}
	if p := e.st.Progress["root"]; p != nil && p.Status == graph.StatusCompleted {
		t.Fatalf("unit must not complete: %+v", p)
	}
}

func TestRewardEligibilityBoundary(t *testing.T) {
	cases := []struct {
		name    string
		score   float64 // for q2 (6 pts); q1 scores full 4
		rewards int
	}{
		{"at threshold", 4.5, 1},    // 8.5 / 10
		{"below threshold", 4.4, 0}, // 8.4 / 10
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFakeOracle()
			f.grades = func(q *quiz.Quiz) []quiz.GradedResult {
				return []quiz.GradedResult{
					{QuestionID: q.Questions[0].ID, IsCorrect: true, Score: 4},
					{QuestionID: q.Questions[1].ID, IsCorrect: true, Score: tc.score},
				}
			}
			e := newTestEngine(f, nil)
			toLearning(t, e)
			drive(t, e, OpenUnit{UnitID: "root"})
			drive(t, e, BeginQuiz{})
			drive(t, e, SubmitQuiz{})

			if len(e.st.Rewards) != tc.rewards {
				t.Fatalf("expected %d rewards, got %+v", tc.rewards, e.st.Rewards)
			}
		})
	}
}

func TestWeaknessDedup_AcrossAttempts(t *testing.T) {
	f := newFakeOracle()
	e := newTestEngine(f, nil)
	toLearning(t, e)

	f.grades = failingGrades
	for i := 0; i < 2; i++ {
		drive(t, e, OpenUnit{UnitID: "root"})
		drive(t, e, BeginQuiz{})
		drive(t, e, SubmitQuiz{Answers: []quiz.Answer{{QuestionID: "q1", Value: "wrong"}}})
		drive(t, e, CloseReview{})
	}

	// Two questions missed twice each: still two ledger entries.
	if e.st.Ledger.Len() != 2 {
		t.Fatalf("expected 2 deduplicated weaknesses, got %d", e.st.Ledger.Len())
	}
}

func TestStaleStream_DroppedAfterNavigation(t *testing.T) {
	f := newFakeOracle()
	e := newTestEngine(f, nil)
	toLearning(t, e)

	// Issue the content command but hold its results.
	cmds := e.apply(OpenUnit{UnitID: "root"})
	if len(cmds) != 1 {
		t.Fatalf("expected one content command, got %d", len(cmds))
	}
	var held []Intent
	cmds[0](context.Background(), func(in Intent) { held = append(held, in) })

	// Navigate away; the epoch moves on.
	drive(t, e, BackToPath{})

	for _, in := range held {
		drive(t, e, in)
	}

	if e.st.Status == StatusError {
		t.Fatalf("stale stream must not error the session: %s", e.st.ErrMsg)
	}
	if _, ok := e.st.Assembler.Content("root"); ok {
		t.Fatal("stale stream must not finalize content")
	}

	// A fresh open generates under the new epoch.
	drive(t, e, OpenUnit{UnitID: "root"})
	if _, ok := e.st.Assembler.Content("root"); !ok {
		t.Fatal("expected content after fresh open")
	}
}

func TestPlanFailure_ErrorStateUntilReset(t *testing.T) {
	f := newFakeOracle()
	f.planErr = errors.New("oracle unavailable")
	e := newTestEngine(f, nil)

	drive(t, e, StartSession{Material: startMaterial()})

	if e.st.Status != StatusError || e.st.ErrMsg == "" {
		t.Fatalf("expected error state, got %s", e.st.Status)
	}

	// Everything except reset is refused.
	drive(t, e, OpenUnit{UnitID: "root"})
	if e.st.Status != StatusError {
		t.Fatalf("error state must persist, got %s", e.st.Status)
	}

	drive(t, e, Reset{})
	if e.st.Status != StatusIdle {
		t.Fatalf("expected idle after reset, got %s", e.st.Status)
	}
	if e.st.Forest.Len() != 0 || e.st.Ledger.Len() != 0 {
		t.Fatal("reset must discard in-memory state")
	}
}

func TestTerminalStatus_DropsEverythingButReset(t *testing.T) {
	f := newFakeOracle()
	f.planErr = errors.New("oracle unavailable")
	e := newTestEngine(f, nil)

	drive(t, e, StartSession{Material: startMaterial()})
	if e.st.Status != StatusError {
		t.Fatalf("expected error state, got %s", e.st.Status)
	}
	msg := e.st.ErrMsg

	// No intent may leave the error state or clobber its message.
	for _, in := range []Intent{
		StartSession{Material: startMaterial()},
		OpenUnit{UnitID: "root"},
		BeginQuiz{},
		BeginFinalExam{},
		MercyComplete{UnitID: "root"},
		RequestRemediation{UnitID: "root"},
	} {
		drive(t, e, in)
		if e.st.Status != StatusError {
			t.Fatalf("%T moved the session to %s", in, e.st.Status)
		}
		if e.st.ErrMsg != msg {
			t.Fatalf("%T replaced the error message with %q", in, e.st.ErrMsg)
		}
	}

	// The summary screen is just as final.
	e.st.Status = StatusSummary
	e.st.ErrMsg = ""
	drive(t, e, BeginQuiz{})
	if e.st.Status != StatusSummary {
		t.Fatalf("summary must persist, got %s", e.st.Status)
	}

	drive(t, e, Reset{})
	if e.st.Status != StatusIdle {
		t.Fatalf("expected idle after reset, got %s", e.st.Status)
	}
}

func TestContentFailure_DiscardsPartialBuffer(t *testing.T) {
	f := newFakeOracle()
	f.contentErr = errors.New("stream died")
	e := newTestEngine(f, nil)
	toLearning(t, e)

	drive(t, e, OpenUnit{UnitID: "root"})

	if e.st.Status != StatusError {
		t.Fatalf("expected error state, got %s", e.st.Status)
	}
	if _, ok := e.st.Assembler.Content("root"); ok {
		t.Fatal("partial content must never be promoted")
	}
}

func TestGradingIntegrity_AbortsOnUnknownQuestion(t *testing.T) {
	f := newFakeOracle()
	f.grades = func(q *quiz.Quiz) []quiz.GradedResult {
		return []quiz.GradedResult{{QuestionID: "bogus", IsCorrect: true, Score: 10}}
	}
	e := newTestEngine(f, nil)
	toLearning(t, e)

	drive(t, e, OpenUnit{UnitID: "root"})
	drive(t, e, BeginQuiz{})
	drive(t, e, SubmitQuiz{})

	if e.st.Status != StatusError {
		t.Fatalf("expected abort on unknown question, got %s", e.st.Status)
	}
	// No mis-score was applied.
	if p := e.st.Progress["root"]; p != nil && p.Attempts != 0 {
		t.Fatalf("progress must stay untouched, got %+v", p)
	}
}

func TestRemediation_SplicesUnitUnderAnchor(t *testing.T) {
	f := newFakeOracle()
	synth := &fakeSynth{unit: &graph.LearningUnit{ID: "rem-1", Title: "Composition review"}}
	e := newTestEngine(f, synth)
	toLearning(t, e)
	passUnit(t, e, f, "root")

	f.grades = failingGrades
	drive(t, e, OpenUnit{UnitID: "A"})
	drive(t, e, BeginQuiz{})
	drive(t, e, SubmitQuiz{Answers: []quiz.Answer{{QuestionID: "q1", Value: "no"}}})
	drive(t, e, CloseReview{})

	drive(t, e, RequestRemediation{UnitID: "A"})

	if e.st.Status != StatusLearning {
		t.Fatalf("expected learning after remediation, got %s (%s)", e.st.Status, e.st.ErrMsg)
	}
	rem, ok := e.st.Forest.Get("rem-1")
	if !ok {
		t.Fatal("expected remedial unit in forest")
	}
	if rem.ParentID != "A" || rem.Locked || rem.Kind != graph.KindRemedial {
		t.Fatalf("unexpected remedial unit: %+v", rem)
	}
	if e.st.Behavior.RemedialsInserted != 1 {
		t.Fatalf("expected remedial recorded, got %+v", e.st.Behavior)
	}
}

func TestRemediation_FailureRevertsWithoutTouchingForest(t *testing.T) {
	f := newFakeOracle()
	synth := &fakeSynth{err: errors.New("oracle down")}
	e := newTestEngine(f, synth)
	toLearning(t, e)
	passUnit(t, e, f, "root")

	f.grades = failingGrades
	drive(t, e, OpenUnit{UnitID: "A"})
	drive(t, e, BeginQuiz{})
	drive(t, e, SubmitQuiz{Answers: []quiz.Answer{{QuestionID: "q1", Value: "no"}}})
	drive(t, e, CloseReview{})

	before := e.st.Forest.Len()
	drive(t, e, RequestRemediation{UnitID: "A"})

	if e.st.Status != StatusLearning {
		t.Fatalf("expected revert to learning, got %s", e.st.Status)
	}
	if e.st.ErrMsg == "" {
		t.Fatal("expected failure notice")
	}
	if e.st.Forest.Len() != before {
		t.Fatal("forest must be unmodified on remediation failure")
	}
}

func TestRemediation_RequiresFailedUnit(t *testing.T) {
	f := newFakeOracle()
	e := newTestEngine(f, nil)
	toLearning(t, e)

	drive(t, e, RequestRemediation{UnitID: "root"})

	if e.st.Status != StatusLearning || e.st.ErrMsg == "" {
		t.Fatalf("expected refusal, got %s (%q)", e.st.Status, e.st.ErrMsg)
	}
}

func TestFinalExam_RunsToSummaryAndReset(t *testing.T) {
	f := newFakeOracle()
	e := newTestEngine(f, nil)
	toLearning(t, e)

	for _, id := range []string{"root", "A", "B"} {
		passUnit(t, e, f, id)
	}
	if e.st.Status != StatusAllUnitsCompleted {
		t.Fatalf("expected completion screen, got %s", e.st.Status)
	}

	drive(t, e, BeginFinalExam{})
	if e.st.Status != StatusFinalExam || e.st.ActiveQuiz == nil {
		t.Fatalf("expected final exam ready, got %s", e.st.Status)
	}

	drive(t, e, SubmitFinalExam{Answers: []quiz.Answer{{QuestionID: "q1", Value: "g after f"}}})

	if e.st.Status != StatusSummary {
		t.Fatalf("expected summary, got %s (%s)", e.st.Status, e.st.ErrMsg)
	}
	if e.st.LastOutcome == nil || !e.st.LastOutcome.Passed {
		t.Fatalf("expected passing final outcome, got %+v", e.st.LastOutcome)
	}

	// Summary only exits through reset.
	drive(t, e, OpenUnit{UnitID: "root"})
	if e.st.Status != StatusSummary {
		t.Fatalf("summary must persist, got %s", e.st.Status)
	}
	drive(t, e, Reset{})
	if e.st.Status != StatusIdle {
		t.Fatalf("expected idle, got %s", e.st.Status)
	}
}

func TestRestoreState_ResumesOnPath(t *testing.T) {
	f := newFakeOracle()
	e := newTestEngine(f, nil)
	toLearning(t, e)
	passUnit(t, e, f, "root")

	snap := e.st.Snapshot()
	restored := RestoreState(e.st.SessionID, "owner1", snap)

	if restored.Status != StatusLearning {
		t.Fatalf("expected learning, got %s", restored.Status)
	}
	if restored.Forest.Len() != 3 {
		t.Fatalf("forest lost: %d units", restored.Forest.Len())
	}
	if p := restored.Progress["root"]; p == nil || p.Status != graph.StatusCompleted {
		t.Fatalf("progress lost: %+v", p)
	}
	if _, ok := restored.Assembler.Content("root"); !ok {
		t.Fatal("finalized content lost")
	}
}

// memRepo is a minimal in-memory SessionRepo for persistence tests.
type memRepo struct {
	mu       sync.Mutex
	sessions map[string]*store.SavedSession
}

func newMemRepo() *memRepo {
	return &memRepo{sessions: map[string]*store.SavedSession{}}
}

func (m *memRepo) Upsert(_ context.Context, s *store.SavedSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *s
	m.sessions[s.ID] = &cp
	return nil
}

func (m *memRepo) Get(_ context.Context, _, sessionID string) (*store.SavedSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (m *memRepo) ListByOwner(_ context.Context, _ string) ([]*store.SavedSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*store.SavedSession
	for _, s := range m.sessions {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memRepo) MaxLastModified(_ context.Context, _ string) (time.Time, error) {
	return time.Time{}, nil
}

func (m *memRepo) ReplaceAll(_ context.Context, _ string, sessions []*store.SavedSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions = map[string]*store.SavedSession{}
	for _, s := range sessions {
		cp := *s
		m.sessions[s.ID] = &cp
	}
	return nil
}

func (m *memRepo) Delete(_ context.Context, _, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
	return nil
}

func (m *memRepo) DeleteAll(_ context.Context, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions = map[string]*store.SavedSession{}
	return nil
}

func waitFor(t *testing.T, e *Engine, cond func(*State) bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		var ok bool
		e.Inspect(func(st *State) { ok = cond(st) })
		if ok {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not reached before deadline")
}

func TestDispatchLoop_SerializesAndPersists(t *testing.T) {
	f := newFakeOracle()
	repo := newMemRepo()
	manager := store.NewSyncManager(repo, nil)

	st := NewState("owner1")
	e := New(Config{
		Oracle:  f,
		Planner: remediation.NewPlanner(&fakeSynth{}),
		Sync:    manager,
	}, st)
	e.Start()
	defer e.Stop()

	e.Dispatch(StartSession{Material: startMaterial()})
	waitFor(t, e, func(st *State) bool { return st.Status == StatusPlanReview })

	saved, err := repo.Get(context.Background(), "owner1", st.SessionID)
	if err != nil || saved == nil {
		t.Fatalf("expected persisted session after plan finalize, got %v (%v)", saved, err)
	}
	if len(saved.Data.Units) != 3 {
		t.Fatalf("snapshot units lost: %+v", saved.Data.Units)
	}

	e.Dispatch(AcceptPlan{})
	waitFor(t, e, func(st *State) bool { return st.Status == StatusPreAssessment })
	e.Dispatch(SkipPreAssessment{})
	waitFor(t, e, func(st *State) bool { return st.Status == StatusLearning })
}
