package engine

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/learnpath/internal/content"
	"github.com/abhisek/learnpath/internal/graph"
	"github.com/abhisek/learnpath/internal/mastery"
	"github.com/abhisek/learnpath/internal/oracle"
	"github.com/abhisek/learnpath/internal/quiz"
	"github.com/abhisek/learnpath/internal/remediation"
	"github.com/abhisek/learnpath/internal/store"
	"github.com/abhisek/learnpath/internal/weakness"
)

// apply is the transition function: it mutates the state for one intent
// and returns the commands the transition issued. Result intents from an
// older epoch are dropped before they touch anything.
func (e *Engine) apply(in Intent) []Command {
	if ep, ok := resultEpoch(in); ok && ep != e.st.Epoch {
		return nil
	}
	// Terminal statuses only exit via reset. Dropping everything else
	// silently keeps the error message on screen instead of replacing
	// it with a refusal.
	if e.st.Status.terminal() {
		if _, ok := in.(Reset); !ok {
			return nil
		}
	}

	switch v := in.(type) {
	case StartSession:
		return e.startSession(v)
	case AcceptPlan:
		return e.acceptPlan()
	case SkipPreAssessment:
		return e.skipPreAssessment()
	case SubmitPreAssessment:
		return e.submitPreAssessment(v)
	case OpenUnit:
		return e.openUnit(v.UnitID)
	case NextUnit:
		return e.stepUnit(+1)
	case PrevUnit:
		return e.stepUnit(-1)
	case BackToPath:
		return e.backToPath()
	case BeginQuiz:
		return e.beginQuiz()
	case SubmitQuiz:
		return e.submitQuiz(v)
	case CloseReview:
		return e.closeReview()
	case MercyComplete:
		return e.mercyComplete(v.UnitID)
	case RequestRemediation:
		return e.requestRemediation(v.UnitID)
	case BeginFinalExam:
		return e.beginFinalExam()
	case SubmitFinalExam:
		return e.submitFinalExam(v)
	case Reset:
		return e.reset()

	case planUnitsChunk:
		return e.applyPlanUnits(v)
	case planQuestionChunk:
		return e.applyPlanQuestion(v)
	case planDone:
		return e.applyPlanDone(v)
	case planFailed:
		e.st.Assembler.DiscardPlan()
		return e.fail(v.err)
	case assessmentDone:
		return e.applyAssessment(v)
	case assessmentFailed:
		return e.fail(v.err)
	case contentSectionChunk:
		_ = e.st.Assembler.AppendSection(v.unitID, v.section)
		return nil
	case contentDone:
		return e.applyContentDone(v)
	case contentFailed:
		e.st.Assembler.DiscardContent(v.unitID)
		return e.fail(v.err)
	case quizQuestionChunk:
		_ = e.st.Assembler.AppendQuestion(v.unitID, v.question)
		return nil
	case quizDone:
		return e.applyQuizDone(v)
	case quizFailed:
		e.st.Assembler.DiscardQuiz(v.unitID)
		return e.fail(v.err)
	case gradesReady:
		return e.applyGrades(v)
	case gradingFailed:
		return e.fail(v.err)
	case remedialReady:
		return e.applyRemedial(v)
	case remedialFailed:
		// Graph untouched; revert the optimistic generating state.
		e.st.Status = e.st.prevStatus
		e.st.ErrMsg = v.err.Error()
		return nil
	}
	return nil
}

// fail moves the session to the global Error status. Only Reset leaves
// it.
func (e *Engine) fail(err error) []Command {
	e.st.Status = StatusError
	e.st.ErrMsg = err.Error()
	e.st.ActiveQuiz = nil
	return nil
}

// refuse records a transient notice without changing status.
func (e *Engine) refuse(msg string) []Command {
	e.st.ErrMsg = msg
	return nil
}

// navigate bumps the epoch, orphaning every stream issued before it.
func (e *Engine) navigate(to Status) {
	e.st.Epoch++
	e.st.Status = to
	e.st.ErrMsg = ""
}

// --- plan generation ---

func (e *Engine) startSession(v StartSession) []Command {
	if e.st.Status != StatusIdle {
		return e.refuse("a session is already in progress")
	}
	if v.Material.Text == "" {
		return e.refuse("source material is empty")
	}

	e.st.Material = v.Material
	e.st.Prefs = v.Prefs
	if e.st.Prefs == (content.Preferences{}) {
		e.st.Prefs = content.DefaultPreferences()
	}

	e.navigate(StatusGenerating)
	e.st.Assembler.StartPlan()

	ep := e.st.Epoch
	material, prefs := e.st.Material, e.st.Prefs
	return []Command{func(ctx context.Context, dispatch func(Intent)) {
		plan, err := e.cfg.Oracle.GeneratePlan(ctx, material, prefs, oracle.PlanEvents{
			UnitsReady: func(units []graph.LearningUnit, path []string) {
				dispatch(planUnitsChunk{epoch: ep, units: units, suggestedPath: path})
			},
			PreAssessmentQuestion: func(q quiz.Question) {
				dispatch(planQuestionChunk{epoch: ep, question: q})
			},
		})
		if err != nil {
			dispatch(planFailed{epoch: ep, err: err})
			return
		}
		dispatch(planDone{epoch: ep, quizID: plan.PreAssessment.ID})
	}}
}

func (e *Engine) applyPlanUnits(v planUnitsChunk) []Command {
	if e.st.Status != StatusGenerating {
		return nil
	}
	_ = e.st.Assembler.AppendPlanUnits(v.units, v.suggestedPath)
	return nil
}

func (e *Engine) applyPlanQuestion(v planQuestionChunk) []Command {
	if e.st.Status != StatusGenerating {
		return nil
	}
	_ = e.st.Assembler.AppendPreAssessmentQuestion(v.question)
	return nil
}

func (e *Engine) applyPlanDone(v planDone) []Command {
	if e.st.Status != StatusGenerating {
		return nil
	}

	plan, err := e.st.Assembler.FinalizePlan(v.quizID)
	if err != nil {
		return e.fail(err)
	}

	forest := graph.New(graph.NormalizeLocks(plan.Units))
	if err := forest.Validate(); err != nil {
		return e.fail(err)
	}

	e.st.Forest = forest
	e.st.SuggestedPath = plan.SuggestedPath
	e.st.Status = StatusPlanReview
	e.st.markDirty()
	return nil
}

func (e *Engine) acceptPlan() []Command {
	if e.st.Status != StatusPlanReview {
		return e.refuse("no plan awaiting review")
	}

	pre, ok := e.st.Assembler.Quiz(quiz.PreAssessmentUnitID)
	if ok && len(pre.Questions) > 0 {
		e.navigate(StatusPreAssessment)
		e.st.ActiveQuiz = &pre
		return nil
	}
	e.navigate(StatusLearning)
	return nil
}

// --- pre-assessment ---

func (e *Engine) skipPreAssessment() []Command {
	if e.st.Status != StatusPreAssessment {
		return e.refuse("no pre-assessment in progress")
	}
	e.st.ActiveQuiz = nil
	e.navigate(StatusLearning)
	return nil
}

func (e *Engine) submitPreAssessment(v SubmitPreAssessment) []Command {
	if e.st.Status != StatusPreAssessment || e.st.ActiveQuiz == nil {
		return e.refuse("no pre-assessment in progress")
	}

	e.st.Status = StatusGradingPreAssessment
	ep := e.st.Epoch
	questions := append([]quiz.Question(nil), e.st.ActiveQuiz.Questions...)
	answers := append([]quiz.Answer(nil), v.Answers...)
	material := e.st.Material

	return []Command{func(ctx context.Context, dispatch func(Intent)) {
		a, err := e.cfg.Oracle.AnalyzePreAssessment(ctx, questions, answers, material)
		if err != nil {
			dispatch(assessmentFailed{epoch: ep, err: err})
			return
		}
		dispatch(assessmentDone{epoch: ep, assessment: a})
	}}
}

func (e *Engine) applyAssessment(v assessmentDone) []Command {
	if e.st.Status != StatusGradingPreAssessment {
		return nil
	}

	e.st.Status = StatusAdaptingPlan
	e.st.Assessment = v.assessment
	switch v.assessment.RecommendedLevel {
	case "beginner", "intermediate", "advanced":
		e.st.Prefs.Level = v.assessment.RecommendedLevel
	}

	e.st.ActiveQuiz = nil
	e.st.Status = StatusLearning
	e.st.markDirty()
	return nil
}

// --- navigation and content ---

func (e *Engine) openUnit(unitID string) []Command {
	switch e.st.Status {
	case StatusLearning, StatusViewingUnit, StatusAllUnitsCompleted, StatusQuizReview:
	default:
		return e.refuse("cannot open a unit right now")
	}
	return e.enterUnit(unitID)
}

func (e *Engine) enterUnit(unitID string) []Command {
	unit, ok := e.st.Forest.Get(unitID)
	if !ok {
		return e.refuse("unknown unit")
	}
	if unit.Locked {
		return e.refuse("unit is locked: pass its parent's quiz first")
	}

	e.navigate(StatusViewingUnit)
	e.st.CurrentUnitID = unitID
	e.st.ActiveQuiz = nil

	p := e.st.progressFor(unitID)
	if p.Status == graph.StatusNotStarted {
		p.Status = graph.StatusInProgress
	}
	e.st.Behavior.UnitsViewed++
	e.st.recordBehavior(store.BehaviorUnitViewed, unitID, unit.Title)
	e.st.markDirty()

	if _, done := e.st.Assembler.Content(unitID); done {
		return nil
	}
	e.st.Assembler.StartContent(unitID)

	ep := e.st.Epoch
	input := oracle.ContentInput{
		Unit:     unit,
		Material: e.st.Material,
		Prefs:    e.st.Prefs,
	}
	if e.st.Assessment != nil {
		input.Strengths = e.st.Assessment.Strengths
		input.Weaknesses = e.st.Assessment.Weaknesses
	}

	return []Command{func(ctx context.Context, dispatch func(Intent)) {
		_, err := e.cfg.Oracle.GenerateUnitContent(ctx, input, oracle.ContentEvents{
			Section: func(s content.Section) {
				dispatch(contentSectionChunk{epoch: ep, unitID: unitID, section: s})
			},
		})
		if err != nil {
			dispatch(contentFailed{epoch: ep, unitID: unitID, err: err})
			return
		}
		dispatch(contentDone{epoch: ep, unitID: unitID})
	}}
}

func (e *Engine) applyContentDone(v contentDone) []Command {
	if !e.st.Assembler.ContentInProgress(v.unitID) {
		return nil
	}
	if _, err := e.st.Assembler.FinalizeContent(v.unitID); err != nil {
		return e.fail(err)
	}
	e.st.markDirty()
	return nil
}

func (e *Engine) stepUnit(dir int) []Command {
	if e.st.Status != StatusViewingUnit {
		return e.refuse("not viewing a unit")
	}

	id := e.st.CurrentUnitID
	for {
		var next graph.LearningUnit
		var ok bool
		if dir > 0 {
			next, ok = e.st.Forest.NextAfter(id)
		} else {
			next, ok = e.st.Forest.PrevBefore(id)
		}
		if !ok {
			return e.refuse("no more unlocked units in that direction")
		}
		if !next.Locked {
			return e.enterUnit(next.ID)
		}
		id = next.ID
	}
}

func (e *Engine) backToPath() []Command {
	switch e.st.Status {
	case StatusViewingUnit, StatusQuizReview:
	default:
		return e.refuse("already on the path overview")
	}
	e.st.CurrentUnitID = ""
	e.st.ActiveQuiz = nil
	if e.st.Forest.AllCompleted(e.st.Progress) {
		e.navigate(StatusAllUnitsCompleted)
	} else {
		e.navigate(StatusLearning)
	}
	return nil
}

// --- quizzes ---

func (e *Engine) beginQuiz() []Command {
	if e.st.Status != StatusViewingUnit {
		return e.refuse("open a unit before starting its quiz")
	}
	unit, ok := e.st.CurrentUnit()
	if !ok {
		return e.refuse("no unit selected")
	}

	if q, done := e.st.Assembler.Quiz(unit.ID); done {
		e.navigate(StatusTakingQuiz)
		e.st.ActiveQuiz = &q
		return nil
	}

	unitContent, ok := e.st.Assembler.Content(unit.ID)
	if !ok {
		return e.refuse("unit content is still being prepared")
	}

	e.navigate(StatusTakingQuiz)
	e.st.ActiveQuiz = nil
	e.st.Assembler.StartQuiz(unit.ID, uuid.NewString(), "Quiz: "+unit.Title)

	ep := e.st.Epoch
	prefs := e.st.Prefs
	return []Command{func(ctx context.Context, dispatch func(Intent)) {
		_, err := e.cfg.Oracle.GenerateQuiz(ctx, unit, unitContent, prefs, oracle.QuizEvents{
			Question: func(q quiz.Question) {
				dispatch(quizQuestionChunk{epoch: ep, unitID: unit.ID, question: q})
			},
		})
		if err != nil {
			dispatch(quizFailed{epoch: ep, unitID: unit.ID, err: err})
			return
		}
		dispatch(quizDone{epoch: ep, unitID: unit.ID})
	}}
}

func (e *Engine) applyQuizDone(v quizDone) []Command {
	if !e.st.Assembler.QuizInProgress(v.unitID) {
		return nil
	}
	q, err := e.st.Assembler.FinalizeQuiz(v.unitID)
	if err != nil {
		return e.fail(err)
	}
	e.st.markDirty()

	switch {
	case e.st.Status == StatusTakingQuiz && e.st.CurrentUnitID == v.unitID:
		e.st.ActiveQuiz = &q
	case e.st.Status == StatusFinalExam && v.unitID == quiz.FinalExamUnitID:
		e.st.ActiveQuiz = &q
	}
	return nil
}

func (e *Engine) submitQuiz(v SubmitQuiz) []Command {
	if e.st.Status != StatusTakingQuiz {
		return e.refuse("no quiz in progress")
	}
	if e.st.ActiveQuiz == nil {
		return e.refuse("the quiz is still being prepared")
	}

	e.st.Status = StatusGradingQuiz
	e.st.Behavior.QuizzesTaken++
	e.st.recordBehavior(store.BehaviorQuizSubmitted, e.st.ActiveQuiz.UnitID, "")
	return e.gradeCommand(*e.st.ActiveQuiz, v.Answers)
}

func (e *Engine) gradeCommand(q quiz.Quiz, answers []quiz.Answer) []Command {
	ep := e.st.Epoch
	material := e.st.Material
	answers = append([]quiz.Answer(nil), answers...)

	return []Command{func(ctx context.Context, dispatch func(Intent)) {
		results, err := e.cfg.Oracle.GradeQuiz(ctx, &q, answers, material)
		if err != nil {
			dispatch(gradingFailed{epoch: ep, unitID: q.UnitID, err: err})
			return
		}
		dispatch(gradesReady{epoch: ep, unitID: q.UnitID, answers: answers, results: results})
	}}
}

func (e *Engine) applyGrades(v gradesReady) []Command {
	if v.unitID == quiz.FinalExamUnitID {
		return e.applyFinalExamGrades(v)
	}
	if e.st.Status != StatusGradingQuiz {
		return nil
	}

	q, ok := e.st.Assembler.Quiz(v.unitID)
	if !ok {
		return e.fail(fmt.Errorf("no finalized quiz for unit %s", v.unitID))
	}

	// A graded result referencing an unknown question aborts rather than
	// mis-scores.
	outcome, err := mastery.Evaluate(&q, v.results)
	if err != nil {
		return e.fail(err)
	}

	attempt := e.st.Ledger.Record(&q, v.results, v.answers)
	mastery.Apply(e.st.Forest, outcome, e.st.Progress)

	if outcome.Passed {
		e.st.Behavior.QuizzesPassed++
		delete(e.st.LastAttempt, v.unitID)
		e.st.recordBehavior(store.BehaviorQuizPassed, v.unitID, ratioDetail(outcome.Ratio))
	} else {
		e.st.LastAttempt[v.unitID] = attempt
		e.st.recordBehavior(store.BehaviorQuizFailed, v.unitID, ratioDetail(outcome.Ratio))
	}
	if outcome.RewardEligible {
		e.grantReward(v.unitID)
	}

	e.st.LastResults = v.results
	e.st.LastOutcome = outcome
	e.st.Status = StatusQuizReview
	e.st.markDirty()
	return nil
}

func (e *Engine) grantReward(unitID string) {
	unit, _ := e.st.Forest.Get(unitID)
	e.st.Rewards = append(e.st.Rewards, store.Reward{
		UnitID:   unitID,
		Title:    "High score: " + unit.Title,
		EarnedAt: time.Now().UTC(),
	})
}

func (e *Engine) closeReview() []Command {
	if e.st.Status != StatusQuizReview {
		return e.refuse("no review open")
	}
	e.st.ActiveQuiz = nil
	e.st.CurrentUnitID = ""
	if e.st.Forest.AllCompleted(e.st.Progress) {
		e.navigate(StatusAllUnitsCompleted)
	} else {
		e.navigate(StatusLearning)
	}
	return nil
}

func (e *Engine) mercyComplete(unitID string) []Command {
	switch e.st.Status {
	case StatusLearning, StatusViewingUnit, StatusQuizReview:
	default:
		return e.refuse("cannot force-complete right now")
	}

	if err := e.st.Forest.ForceComplete(unitID, e.st.Progress, e.cfg.MinMercyAttempts); err != nil {
		return e.refuse(err.Error())
	}

	e.st.Behavior.MercyCompletions++
	e.st.recordBehavior(store.BehaviorMercyCompleted, unitID, "")
	e.st.ActiveQuiz = nil
	e.st.CurrentUnitID = ""
	if e.st.Forest.AllCompleted(e.st.Progress) {
		e.navigate(StatusAllUnitsCompleted)
	} else {
		e.navigate(StatusLearning)
	}
	e.st.markDirty()
	return nil
}

// --- remediation ---

func (e *Engine) requestRemediation(unitID string) []Command {
	switch e.st.Status {
	case StatusLearning, StatusViewingUnit, StatusQuizReview:
	default:
		return e.refuse("cannot remediate right now")
	}

	anchor, ok := e.st.Forest.Get(unitID)
	if !ok {
		return e.refuse("unknown unit")
	}
	prog := e.st.Progress[unitID]
	if prog == nil || prog.Status != graph.StatusFailed {
		return e.refuse("remediation is only available for a failed unit")
	}

	e.st.prevStatus = e.st.Status
	e.st.Status = StatusAdaptingPlan

	ep := e.st.Epoch
	progCopy := *prog
	input := remediation.Input{
		AnchorID:          unitID,
		LastFailedAttempt: e.st.LastAttempt[unitID],
		Ledger:            weakness.NewLedger(e.st.Ledger.Entries()),
		Material:          e.st.Material,
	}

	return []Command{func(ctx context.Context, dispatch func(Intent)) {
		unit, err := e.cfg.Planner.Synthesize(ctx, anchor, &progCopy, input)
		if err != nil {
			dispatch(remedialFailed{epoch: ep, anchorID: unitID, err: err})
			return
		}
		dispatch(remedialReady{epoch: ep, anchorID: unitID, unit: *unit})
	}}
}

func (e *Engine) applyRemedial(v remedialReady) []Command {
	if e.st.Status != StatusAdaptingPlan {
		return nil
	}
	if err := e.st.Forest.InsertRemedial(v.unit, v.anchorID); err != nil {
		return e.fail(err)
	}

	e.st.Behavior.RemedialsInserted++
	e.st.recordBehavior(store.BehaviorRemedialInserted, v.unit.ID, v.unit.Title)
	e.st.CurrentUnitID = ""
	e.navigate(StatusLearning)
	e.st.markDirty()
	return nil
}

// --- final exam ---

func (e *Engine) beginFinalExam() []Command {
	if e.st.Status != StatusAllUnitsCompleted {
		return e.refuse("the final exam opens when every unit is completed")
	}

	if q, done := e.st.Assembler.Quiz(quiz.FinalExamUnitID); done {
		e.navigate(StatusFinalExam)
		e.st.ActiveQuiz = &q
		return nil
	}

	e.navigate(StatusFinalExam)
	e.st.ActiveQuiz = nil
	e.st.Assembler.StartQuiz(quiz.FinalExamUnitID, uuid.NewString(), "Final exam: "+e.st.Material.Title)

	ep := e.st.Epoch
	units := e.st.Forest.Units()
	material, prefs := e.st.Material, e.st.Prefs
	return []Command{func(ctx context.Context, dispatch func(Intent)) {
		_, err := e.cfg.Oracle.GenerateFinalExam(ctx, units, material, prefs, oracle.QuizEvents{
			Question: func(q quiz.Question) {
				dispatch(quizQuestionChunk{epoch: ep, unitID: quiz.FinalExamUnitID, question: q})
			},
		})
		if err != nil {
			dispatch(quizFailed{epoch: ep, unitID: quiz.FinalExamUnitID, err: err})
			return
		}
		dispatch(quizDone{epoch: ep, unitID: quiz.FinalExamUnitID})
	}}
}

func (e *Engine) submitFinalExam(v SubmitFinalExam) []Command {
	if e.st.Status != StatusFinalExam {
		return e.refuse("no final exam in progress")
	}
	if e.st.ActiveQuiz == nil {
		return e.refuse("the final exam is still being prepared")
	}

	e.st.Status = StatusGradingFinalExam
	e.st.Behavior.QuizzesTaken++
	e.st.recordBehavior(store.BehaviorQuizSubmitted, quiz.FinalExamUnitID, "")
	return e.gradeCommand(*e.st.ActiveQuiz, v.Answers)
}

func (e *Engine) applyFinalExamGrades(v gradesReady) []Command {
	if e.st.Status != StatusGradingFinalExam {
		return nil
	}

	q, ok := e.st.Assembler.Quiz(quiz.FinalExamUnitID)
	if !ok {
		return e.fail(fmt.Errorf("no finalized final exam quiz"))
	}
	outcome, err := mastery.Evaluate(&q, v.results)
	if err != nil {
		return e.fail(err)
	}

	if outcome.Passed {
		e.st.Behavior.QuizzesPassed++
		e.st.recordBehavior(store.BehaviorQuizPassed, quiz.FinalExamUnitID, ratioDetail(outcome.Ratio))
	} else {
		e.st.recordBehavior(store.BehaviorQuizFailed, quiz.FinalExamUnitID, ratioDetail(outcome.Ratio))
	}

	e.st.LastResults = v.results
	e.st.LastOutcome = outcome
	e.st.ActiveQuiz = nil
	e.st.Status = StatusSummary
	e.st.markDirty()
	return nil
}

// --- reset ---

func (e *Engine) reset() []Command {
	e.st.recordBehavior(store.BehaviorSessionReset, "", "")
	pending := e.st.pending
	epoch := e.st.Epoch

	fresh := NewState(e.st.OwnerID)
	fresh.Epoch = epoch + 1
	fresh.pending = pending
	e.st = fresh
	return nil
}

func ratioDetail(ratio float64) string {
	return strconv.FormatFloat(ratio, 'f', 2, 64)
}
