package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit    int       // max results (0 = unlimited)
	After    int64     // sequence > After
	Purpose  string    // filter by purpose label
	Provider string    // filter by provider name
	From     time.Time // timestamp >= From
	To       time.Time // timestamp <= To
}

// SavedSession is one persisted learning session. LastModified is
// stamped on every save and is the sole conflict-resolution signal
// for sync.
type SavedSession struct {
	ID              string          `json:"id"`
	OwnerID         string          `json:"ownerId"`
	Title           string          `json:"title"`
	LastModified    time.Time       `json:"lastModifiedTimestamp"`
	ProgressPercent float64         `json:"progressPercent"`
	Data            SessionSnapshot `json:"data"`
}

// SessionRepo manages locally stored sessions, keyed by owner.
type SessionRepo interface {
	// Upsert creates the session if absent (by owner+session id), else
	// updates it in place.
	Upsert(ctx context.Context, s *SavedSession) error

	// Get returns one session, or nil if absent.
	Get(ctx context.Context, ownerID, sessionID string) (*SavedSession, error)

	// ListByOwner returns all of an owner's sessions, most recently
	// modified first.
	ListByOwner(ctx context.Context, ownerID string) ([]*SavedSession, error)

	// MaxLastModified returns the newest LastModified across the owner's
	// sessions, or the zero time when none exist.
	MaxLastModified(ctx context.Context, ownerID string) (time.Time, error)

	// ReplaceAll atomically replaces the owner's entire session
	// collection. Used by last-write-wins sync and backup import.
	ReplaceAll(ctx context.Context, ownerID string, sessions []*SavedSession) error

	// Delete removes one session.
	Delete(ctx context.Context, ownerID, sessionID string) error

	// DeleteAll removes every session of the owner.
	DeleteAll(ctx context.Context, ownerID string) error
}

// OracleRequestEventData captures the data for a single Oracle request event.
type OracleRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// OracleRequestEvent is a stored Oracle request event.
type OracleRequestEvent struct {
	Sequence  int64
	Timestamp time.Time
	OracleRequestEventData
}

// OracleUsage aggregates Oracle consumption for reporting.
type OracleUsage struct {
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
	// ByModel holds per-model token totals keyed by model ID.
	ByModel map[string]ModelUsage
}

// ModelUsage is the per-model slice of OracleUsage.
type ModelUsage struct {
	Requests     int
	InputTokens  int
	OutputTokens int
}

// BehaviorEventData captures one learner action.
type BehaviorEventData struct {
	OwnerID string
	Kind    string
	UnitID  string
	Detail  string
}

// Behavior event kinds.
const (
	BehaviorQuizSubmitted    = "quiz_submitted"
	BehaviorQuizPassed       = "quiz_passed"
	BehaviorQuizFailed       = "quiz_failed"
	BehaviorMercyCompleted   = "mercy_completed"
	BehaviorRemedialInserted = "remedial_inserted"
	BehaviorUnitViewed       = "unit_viewed"
	BehaviorSessionReset     = "session_reset"
)

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendOracleRequest records a Knowledge Oracle call.
	AppendOracleRequest(ctx context.Context, data OracleRequestEventData) error

	// ListOracleRequests returns stored Oracle events, newest first.
	ListOracleRequests(ctx context.Context, opts QueryOpts) ([]*OracleRequestEvent, error)

	// GetOracleRequest returns one event by sequence, or nil if absent.
	GetOracleRequest(ctx context.Context, sequence int64) (*OracleRequestEvent, error)

	// OracleUsage aggregates token consumption over the matched events.
	OracleUsage(ctx context.Context, opts QueryOpts) (*OracleUsage, error)

	// AppendBehavior records one learner action.
	AppendBehavior(ctx context.Context, data BehaviorEventData) error
}
