// Package engine is the session state machine. One dispatch goroutine
// owns the mutable session state and applies intents to completion, one
// at a time; asynchronous work (Oracle calls, persistence) runs as
// commands whose results re-enter the loop as epoch-tagged intents.
package engine

import (
	"context"
	"sync"

	"github.com/abhisek/learnpath/internal/content"
	"github.com/abhisek/learnpath/internal/graph"
	"github.com/abhisek/learnpath/internal/oracle"
	"github.com/abhisek/learnpath/internal/quiz"
	"github.com/abhisek/learnpath/internal/remediation"
	"github.com/abhisek/learnpath/internal/store"
)

// Oracle is the slice of the Knowledge Oracle the engine consumes.
type Oracle interface {
	GeneratePlan(ctx context.Context, material content.SourceMaterial, prefs content.Preferences, ev oracle.PlanEvents) (*oracle.Plan, error)
	GenerateUnitContent(ctx context.Context, in oracle.ContentInput, ev oracle.ContentEvents) (*content.Content, error)
	GenerateQuiz(ctx context.Context, unit graph.LearningUnit, unitContent content.Content, prefs content.Preferences, ev oracle.QuizEvents) (*quiz.Quiz, error)
	GenerateFinalExam(ctx context.Context, units []graph.LearningUnit, material content.SourceMaterial, prefs content.Preferences, ev oracle.QuizEvents) (*quiz.Quiz, error)
	GradeQuiz(ctx context.Context, q *quiz.Quiz, answers []quiz.Answer, material content.SourceMaterial) ([]quiz.GradedResult, error)
	AnalyzePreAssessment(ctx context.Context, questions []quiz.Question, answers []quiz.Answer, material content.SourceMaterial) (*oracle.Assessment, error)
}

var _ Oracle = (*oracle.Service)(nil)

// Command is an asynchronous effect issued by a transition. It runs off
// the dispatch goroutine and feeds results back through dispatch.
type Command func(ctx context.Context, dispatch func(Intent))

// Config wires the engine's collaborators. Sync and Events may be nil;
// the engine then runs purely in memory.
type Config struct {
	Oracle  Oracle
	Planner *remediation.Planner
	Sync    *store.SyncManager
	Events  store.EventRepo

	// MinMercyAttempts gates the mercy rule; 0 allows it anytime.
	MinMercyAttempts int
}

// Engine runs the dispatch loop over a single session.
type Engine struct {
	cfg Config
	st  *State

	intents  chan Intent
	quit     chan struct{}
	loopDone chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New creates an engine over the given session state. Call Start to
// begin consuming intents.
func New(cfg Config, st *State) *Engine {
	return &Engine{
		cfg:      cfg,
		st:       st,
		intents:  make(chan Intent, 64),
		quit:     make(chan struct{}),
		loopDone: make(chan struct{}),
	}
}

// Start launches the dispatch goroutine.
func (e *Engine) Start() {
	go e.run()
}

// Dispatch enqueues an intent. It never blocks a stopped engine.
func (e *Engine) Dispatch(in Intent) {
	select {
	case e.intents <- in:
	case <-e.quit:
	}
}

// Inspect runs fn on the dispatch goroutine with exclusive access to the
// session state, blocking until it returns.
func (e *Engine) Inspect(fn func(*State)) {
	req := inspectReq{fn: fn, done: make(chan struct{})}
	select {
	case e.intents <- req:
		<-req.done
	case <-e.quit:
		// Engine stopped; the loop is quiet, read directly.
		fn(e.st)
	}
}

// Stop shuts the loop down and waits for in-flight commands. Results
// they dispatch after this point are dropped.
func (e *Engine) Stop() {
	e.stopOnce.Do(func() { close(e.quit) })
	<-e.loopDone
	e.wg.Wait()
}

func (e *Engine) run() {
	defer close(e.loopDone)
	for {
		select {
		case <-e.quit:
			return
		case in := <-e.intents:
			if req, ok := in.(inspectReq); ok {
				req.fn(e.st)
				close(req.done)
				continue
			}
			for _, cmd := range e.apply(in) {
				e.launch(cmd)
			}
			e.afterApply()
		}
	}
}

func (e *Engine) launch(cmd Command) {
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		cmd(context.Background(), e.Dispatch)
	}()
}

// afterApply persists dirty state and flushes queued behavior events.
// Both are fail-soft: a persistence failure degrades to in-memory
// operation, it never disturbs the session.
func (e *Engine) afterApply() {
	ctx := context.Background()
	if e.st.dirty && e.cfg.Sync != nil {
		_ = e.cfg.Sync.Save(ctx, e.st.savedSession())
	}
	e.st.dirty = false

	if e.cfg.Events != nil {
		for _, ev := range e.st.pending {
			_ = e.cfg.Events.AppendBehavior(ctx, ev)
		}
	}
	e.st.pending = nil
}

// inspectReq rides the intent channel so reads serialize with writes.
type inspectReq struct {
	fn   func(*State)
	done chan struct{}
}

func (inspectReq) isIntent() {}
