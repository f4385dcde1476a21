package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/abhisek/learnpath/internal/content"
	"github.com/abhisek/learnpath/internal/graph"
	"github.com/abhisek/learnpath/internal/quiz"
	"github.com/abhisek/learnpath/internal/weakness"
)

// CurrentSchemaVersion is the snapshot schema written by this build.
// The loader accepts any version ≤ current and migrates forward; newer
// versions are rejected.
const CurrentSchemaVersion = 7

// EarliestSchemaVersion is the version the migration chain starts at.
// Snapshots below it, including ones with no schemaVersion field at
// all, are treated as this shape and lifted through the full chain.
const EarliestSchemaVersion = 4

// SessionSnapshot is the full persisted state of one learning session.
// SchemaVersion only ever grows; every loader fills defaults for fields
// its version predates.
type SessionSnapshot struct {
	SchemaVersion  int                             `json:"schemaVersion"`
	SourceMaterial content.SourceMaterial          `json:"sourceMaterial"`
	Preferences    content.Preferences             `json:"preferences"`
	Units          []graph.LearningUnit            `json:"units"`
	SuggestedPath  []string                        `json:"suggestedPath,omitempty"`
	UnitContent    map[string]content.Content      `json:"unitContent"`
	UnitQuizzes    map[string]quiz.Quiz            `json:"unitQuizzes"`
	UnitProgress   map[string]*graph.UnitProgress  `json:"unitProgress"`
	Weaknesses     []weakness.Weakness             `json:"weaknesses"`
	Behavior       BehaviorStats                   `json:"behavior"`
	Rewards        []Reward                        `json:"rewards"`
}

// BehaviorStats aggregates learner activity over the session.
type BehaviorStats struct {
	QuizzesTaken      int   `json:"quizzesTaken"`
	QuizzesPassed     int   `json:"quizzesPassed"`
	MercyCompletions  int   `json:"mercyCompletions"`
	RemedialsInserted int   `json:"remedialsInserted"`
	UnitsViewed       int   `json:"unitsViewed"`
	TimeSpentSeconds  int64 `json:"timeSpentSeconds"`
}

// Reward is a high-score acknowledgement earned at the reward threshold.
type Reward struct {
	UnitID   string    `json:"unitId"`
	Title    string    `json:"title"`
	Body     string    `json:"body,omitempty"`
	EarnedAt time.Time `json:"earnedAt"`
}

// NewSnapshot returns an empty snapshot at the current schema version.
func NewSnapshot() SessionSnapshot {
	return SessionSnapshot{
		SchemaVersion: CurrentSchemaVersion,
		Preferences:   content.DefaultPreferences(),
		UnitContent:   map[string]content.Content{},
		UnitQuizzes:   map[string]quiz.Quiz{},
		UnitProgress:  map[string]*graph.UnitProgress{},
	}
}

// DecodeSnapshot parses a persisted snapshot and migrates it to the
// current schema version.
func DecodeSnapshot(raw []byte) (SessionSnapshot, error) {
	var snap SessionSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return SessionSnapshot{}, fmt.Errorf("parse snapshot: %w", err)
	}
	return MigrateSnapshot(snap)
}

// MigrateSnapshot walks the snapshot through the migration chain one
// version at a time until it reaches the current schema. Each step is a
// pure function that bumps schemaVersion by one and fills the fields
// its version introduced with defaults.
func MigrateSnapshot(snap SessionSnapshot) (SessionSnapshot, error) {
	if snap.SchemaVersion > CurrentSchemaVersion {
		return SessionSnapshot{}, fmt.Errorf("snapshot schema version %d is newer than supported %d", snap.SchemaVersion, CurrentSchemaVersion)
	}
	if snap.SchemaVersion < EarliestSchemaVersion {
		// Pre-chain snapshots (and ones written before the field existed,
		// which decode as 0) carry the earliest shape. Lift rather than
		// reject; the chain fills every later field with defaults.
		snap.SchemaVersion = EarliestSchemaVersion
	}

	for snap.SchemaVersion < CurrentSchemaVersion {
		step, ok := migrations[snap.SchemaVersion]
		if !ok {
			return SessionSnapshot{}, fmt.Errorf("no migration from snapshot schema version %d", snap.SchemaVersion)
		}
		snap = step(snap)
	}

	// Maps may be nil regardless of version when the stored JSON omitted
	// them; normalize so callers never nil-check.
	if snap.UnitContent == nil {
		snap.UnitContent = map[string]content.Content{}
	}
	if snap.UnitQuizzes == nil {
		snap.UnitQuizzes = map[string]quiz.Quiz{}
	}
	if snap.UnitProgress == nil {
		snap.UnitProgress = map[string]*graph.UnitProgress{}
	}

	return snap, nil
}

// migrations maps a schema version to the step that lifts it one
// version higher.
var migrations = map[int]func(SessionSnapshot) SessionSnapshot{
	4: migrateV4toV5,
	5: migrateV5toV6,
	6: migrateV6toV7,
}

// migrateV4toV5 introduces the weakness ledger.
func migrateV4toV5(snap SessionSnapshot) SessionSnapshot {
	if snap.Weaknesses == nil {
		snap.Weaknesses = []weakness.Weakness{}
	}
	snap.SchemaVersion = 5
	return snap
}

// migrateV5toV6 introduces behavior stats and per-unit quizzes.
func migrateV5toV6(snap SessionSnapshot) SessionSnapshot {
	if snap.UnitQuizzes == nil {
		snap.UnitQuizzes = map[string]quiz.Quiz{}
	}
	snap.Behavior = normalizeBehavior(snap.Behavior)
	snap.SchemaVersion = 6
	return snap
}

// migrateV6toV7 introduces rewards and the suggested path. Older
// snapshots fall back to linear BFS order, which the engine re-derives,
// so the path defaults to empty rather than being synthesized here.
func migrateV6toV7(snap SessionSnapshot) SessionSnapshot {
	if snap.Rewards == nil {
		snap.Rewards = []Reward{}
	}
	snap.SchemaVersion = 7
	return snap
}

func normalizeBehavior(b BehaviorStats) BehaviorStats {
	// Zero values are already the defaults the version introduced.
	return b
}

// EncodeSnapshot serializes a snapshot at the current schema version.
func EncodeSnapshot(snap SessionSnapshot) ([]byte, error) {
	snap.SchemaVersion = CurrentSchemaVersion
	return json.Marshal(snap)
}
