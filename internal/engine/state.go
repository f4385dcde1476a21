package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/learnpath/internal/assembler"
	"github.com/abhisek/learnpath/internal/content"
	"github.com/abhisek/learnpath/internal/graph"
	"github.com/abhisek/learnpath/internal/mastery"
	"github.com/abhisek/learnpath/internal/oracle"
	"github.com/abhisek/learnpath/internal/quiz"
	"github.com/abhisek/learnpath/internal/store"
	"github.com/abhisek/learnpath/internal/weakness"
)

// State is the single mutable session object. Only the dispatch loop
// touches it; callers read it through Engine.Inspect.
type State struct {
	SessionID string
	OwnerID   string
	Status    Status

	// Epoch increments on every navigation. Result intents issued under
	// an older epoch are dropped at apply time.
	Epoch uint64

	Material content.SourceMaterial
	Prefs    content.Preferences

	Forest        *graph.Forest
	SuggestedPath []string
	Progress      map[string]*graph.UnitProgress
	Ledger        *weakness.Ledger
	Assembler     *assembler.Assembler

	// LastAttempt holds the weaknesses of the most recent failed grading
	// pass per unit, preferred over the full ledger by remediation.
	LastAttempt map[string][]weakness.Weakness

	CurrentUnitID string
	ActiveQuiz    *quiz.Quiz

	Assessment  *oracle.Assessment
	LastResults []quiz.GradedResult
	LastOutcome *mastery.Outcome

	Behavior store.BehaviorStats
	Rewards  []store.Reward

	// ErrMsg carries the user-facing message in the Error status and
	// transient failure notices elsewhere.
	ErrMsg string

	// prevStatus is where a failed in-place operation (remediation)
	// returns to.
	prevStatus Status

	startedAt time.Time
	dirty     bool
	pending   []store.BehaviorEventData
}

// NewState creates an idle session for an owner.
func NewState(ownerID string) *State {
	return &State{
		SessionID:   uuid.NewString(),
		OwnerID:     ownerID,
		Status:      StatusIdle,
		Forest:      graph.New(nil),
		Progress:    map[string]*graph.UnitProgress{},
		Ledger:      weakness.NewLedger(nil),
		Assembler:   assembler.New(),
		LastAttempt: map[string][]weakness.Weakness{},
		Prefs:       content.DefaultPreferences(),
		startedAt:   time.Now(),
	}
}

// RestoreState rebuilds a session from a persisted snapshot. In-progress
// streams do not survive a reload; the session resumes on the path
// overview (or the completion screen when nothing is left to study).
func RestoreState(sessionID, ownerID string, snap store.SessionSnapshot) *State {
	st := &State{
		SessionID:     sessionID,
		OwnerID:       ownerID,
		Material:      snap.SourceMaterial,
		Prefs:         snap.Preferences,
		Forest:        graph.New(snap.Units),
		SuggestedPath: snap.SuggestedPath,
		Progress:      snap.UnitProgress,
		Ledger:        weakness.NewLedger(snap.Weaknesses),
		Assembler:     assembler.Restore(snap.UnitContent, snap.UnitQuizzes),
		LastAttempt:   map[string][]weakness.Weakness{},
		Behavior:      snap.Behavior,
		Rewards:       snap.Rewards,
		startedAt:     time.Now(),
	}
	if st.Progress == nil {
		st.Progress = map[string]*graph.UnitProgress{}
	}

	switch {
	case st.Forest.Len() == 0:
		st.Status = StatusIdle
	case st.Forest.AllCompleted(st.Progress):
		st.Status = StatusAllUnitsCompleted
	default:
		st.Status = StatusLearning
	}
	return st
}

// Snapshot serializes the durable part of the session.
func (st *State) Snapshot() store.SessionSnapshot {
	return store.SessionSnapshot{
		SchemaVersion:  store.CurrentSchemaVersion,
		SourceMaterial: st.Material,
		Preferences:    st.Prefs,
		Units:          st.Forest.Units(),
		SuggestedPath:  st.SuggestedPath,
		UnitContent:    st.Assembler.AllContent(),
		UnitQuizzes:    st.Assembler.AllQuizzes(),
		UnitProgress:   st.Progress,
		Weaknesses:     st.Ledger.Entries(),
		Behavior:       st.Behavior,
		Rewards:        st.Rewards,
	}
}

// savedSession packages the snapshot for the sync manager.
func (st *State) savedSession() *store.SavedSession {
	snap := st.Snapshot()
	snap.Behavior.TimeSpentSeconds += int64(time.Since(st.startedAt).Seconds())
	return &store.SavedSession{
		ID:              st.SessionID,
		OwnerID:         st.OwnerID,
		Title:           st.Material.Title,
		ProgressPercent: st.Forest.ProgressPercent(st.Progress),
		Data:            snap,
	}
}

// CurrentUnit returns the unit being viewed, if any.
func (st *State) CurrentUnit() (graph.LearningUnit, bool) {
	if st.CurrentUnitID == "" {
		return graph.LearningUnit{}, false
	}
	return st.Forest.Get(st.CurrentUnitID)
}

// markDirty flags the session for persistence after this intent.
func (st *State) markDirty() {
	st.dirty = true
}

// recordBehavior queues a behavior event for the event store.
func (st *State) recordBehavior(kind, unitID, detail string) {
	st.pending = append(st.pending, store.BehaviorEventData{
		OwnerID: st.OwnerID,
		Kind:    kind,
		UnitID:  unitID,
		Detail:  detail,
	})
}

// progressFor returns the unit's progress record, creating it on first
// touch.
func (st *State) progressFor(unitID string) *graph.UnitProgress {
	p := st.Progress[unitID]
	if p == nil {
		p = graph.NewProgress()
		st.Progress[unitID] = p
	}
	return p
}
