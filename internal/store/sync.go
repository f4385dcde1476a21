package store

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// SyncStatus reflects the outcome of the most recent remote operation.
type SyncStatus string

const (
	SyncLocalOnly SyncStatus = "local-only" // no remote configured
	SyncPending   SyncStatus = "pending"    // push in flight
	SyncOK        SyncStatus = "synced"
	SyncFailed    SyncStatus = "failed" // degraded to local-only until the next explicit sync
)

// Remote operation budgets. Both fail soft: an expired budget flips the
// status flag and nothing else.
const (
	savePushBudget = 8 * time.Second
	loadBudget     = 10 * time.Second
)

// SyncManager owns local session persistence plus the asynchronous
// remote mirror. The local store is always the write path; the remote
// copy is best-effort and reconciled whole-collection last-write-wins.
type SyncManager struct {
	sessions SessionRepo
	remote   RemoteClient // nil = local-only
	now      func() time.Time

	mu     sync.Mutex
	status SyncStatus
	wg     sync.WaitGroup
}

// NewSyncManager creates a SyncManager. remote may be nil for
// local-only operation.
func NewSyncManager(sessions SessionRepo, remote RemoteClient) *SyncManager {
	status := SyncLocalOnly
	if remote != nil {
		status = SyncOK
	}
	return &SyncManager{
		sessions: sessions,
		remote:   remote,
		now:      time.Now,
		status:   status,
	}
}

// Status returns the current sync status.
func (m *SyncManager) Status() SyncStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

func (m *SyncManager) setStatus(s SyncStatus) {
	m.mu.Lock()
	m.status = s
	m.mu.Unlock()
}

// Save stamps the session, writes it locally, then pushes the owner's
// collection to the remote in the background under the 8-second budget.
// Remote failure never blocks or reverts the local write.
func (m *SyncManager) Save(ctx context.Context, s *SavedSession) error {
	s.LastModified = m.now()

	if err := m.sessions.Upsert(ctx, s); err != nil {
		return fmt.Errorf("local save: %w", err)
	}

	if m.remote == nil {
		return nil
	}

	m.setStatus(SyncPending)
	m.wg.Add(1)
	go func(ownerID string) {
		defer m.wg.Done()
		pushCtx, cancel := context.WithTimeout(context.Background(), savePushBudget)
		defer cancel()
		if err := m.Push(pushCtx, ownerID); err != nil {
			m.setStatus(SyncFailed)
			return
		}
		m.setStatus(SyncOK)
	}(s.OwnerID)

	return nil
}

// Push synchronously uploads the owner's whole session collection.
// Used by the background save path and by explicit user-triggered sync,
// which is the only retry mechanism after a failure.
func (m *SyncManager) Push(ctx context.Context, ownerID string) error {
	if m.remote == nil {
		return fmt.Errorf("no remote configured")
	}

	sessions, err := m.sessions.ListByOwner(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("collect sessions: %w", err)
	}

	bundle := &RemoteBundle{Sessions: sessions}
	for _, s := range sessions {
		if s.LastModified.After(bundle.LastModified) {
			bundle.LastModified = s.LastModified
		}
		bundle.Behavior = mergeBehavior(bundle.Behavior, s.Data.Behavior)
	}

	if err := m.remote.Save(ctx, ownerID, bundle); err != nil {
		return err
	}
	m.setStatus(SyncOK)
	return nil
}

// Load reconciles the local collection against the remote bundle under
// the 10-second budget. If the remote bundle is strictly newer than
// every local session, the entire local collection is replaced;
// otherwise local wins and the remote copy is left for the next push.
// Returns the resulting local collection. Remote failure degrades to
// local-only and is non-fatal.
func (m *SyncManager) Load(ctx context.Context, ownerID string) ([]*SavedSession, error) {
	if m.remote == nil {
		return m.sessions.ListByOwner(ctx, ownerID)
	}

	loadCtx, cancel := context.WithTimeout(ctx, loadBudget)
	defer cancel()

	bundle, err := m.remote.Load(loadCtx, ownerID)
	if err != nil {
		m.setStatus(SyncFailed)
		return m.sessions.ListByOwner(ctx, ownerID)
	}
	m.setStatus(SyncOK)

	if bundle == nil {
		return m.sessions.ListByOwner(ctx, ownerID)
	}

	localMax, err := m.sessions.MaxLastModified(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("local newest timestamp: %w", err)
	}

	// Strictly newer replaces everything. T2 == T1 keeps local.
	if bundle.LastModified.After(localMax) {
		if err := m.sessions.ReplaceAll(ctx, ownerID, bundle.Sessions); err != nil {
			return nil, fmt.Errorf("adopt remote collection: %w", err)
		}
	}

	return m.sessions.ListByOwner(ctx, ownerID)
}

// Wait blocks until in-flight background pushes complete. Used on
// shutdown and in tests.
func (m *SyncManager) Wait() {
	m.wg.Wait()
}

// mergeBehavior sums per-session behavior stats into the bundle-level
// aggregate the remote stores alongside the sessions.
func mergeBehavior(a, b BehaviorStats) BehaviorStats {
	return BehaviorStats{
		QuizzesTaken:      a.QuizzesTaken + b.QuizzesTaken,
		QuizzesPassed:     a.QuizzesPassed + b.QuizzesPassed,
		MercyCompletions:  a.MercyCompletions + b.MercyCompletions,
		RemedialsInserted: a.RemedialsInserted + b.RemedialsInserted,
		UnitsViewed:       a.UnitsViewed + b.UnitsViewed,
		TimeSpentSeconds:  a.TimeSpentSeconds + b.TimeSpentSeconds,
	}
}
