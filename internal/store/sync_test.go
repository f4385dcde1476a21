package store

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"
)

// memSessionRepo is an in-memory SessionRepo for sync and backup tests.
type memSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]map[string]*SavedSession // owner → id → session
	failNext error
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{sessions: make(map[string]map[string]*SavedSession)}
}

func (m *memSessionRepo) Upsert(_ context.Context, s *SavedSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failNext != nil {
		err := m.failNext
		m.failNext = nil
		return err
	}
	if m.sessions[s.OwnerID] == nil {
		m.sessions[s.OwnerID] = make(map[string]*SavedSession)
	}
	cp := *s
	m.sessions[s.OwnerID][s.ID] = &cp
	return nil
}

func (m *memSessionRepo) Get(_ context.Context, ownerID, sessionID string) (*SavedSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[ownerID][sessionID]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (m *memSessionRepo) ListByOwner(_ context.Context, ownerID string) ([]*SavedSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*SavedSession
	for _, s := range m.sessions[ownerID] {
		cp := *s
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LastModified.After(out[j].LastModified) })
	return out, nil
}

func (m *memSessionRepo) MaxLastModified(_ context.Context, ownerID string) (time.Time, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var max time.Time
	for _, s := range m.sessions[ownerID] {
		if s.LastModified.After(max) {
			max = s.LastModified
		}
	}
	return max, nil
}

func (m *memSessionRepo) ReplaceAll(_ context.Context, ownerID string, sessions []*SavedSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failNext != nil {
		err := m.failNext
		m.failNext = nil
		return err
	}
	next := make(map[string]*SavedSession, len(sessions))
	for _, s := range sessions {
		cp := *s
		next[s.ID] = &cp
	}
	m.sessions[ownerID] = next
	return nil
}

func (m *memSessionRepo) Delete(_ context.Context, ownerID, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions[ownerID], sessionID)
	return nil
}

func (m *memSessionRepo) DeleteAll(_ context.Context, ownerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, ownerID)
	return nil
}

// fakeRemote is a scriptable RemoteClient.
type fakeRemote struct {
	mu      sync.Mutex
	bundle  *RemoteBundle
	loadErr error
	saveErr error
	saved   []*RemoteBundle
}

func (f *fakeRemote) Load(_ context.Context, _ string) (*RemoteBundle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.bundle, nil
}

func (f *fakeRemote) Save(_ context.Context, _ string, bundle *RemoteBundle) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, bundle)
	return nil
}

func session(id, owner string, modified time.Time) *SavedSession {
	return &SavedSession{
		ID:           id,
		OwnerID:      owner,
		Title:        id,
		LastModified: modified,
		Data:         NewSnapshot(),
	}
}

func TestSave_StampsTimestampAndWritesLocally(t *testing.T) {
	repo := newMemSessionRepo()
	m := NewSyncManager(repo, nil)

	stamp := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return stamp }

	s := session("s1", "owner1", time.Time{})
	if err := m.Save(context.Background(), s); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, _ := repo.Get(context.Background(), "owner1", "s1")
	if got == nil || !got.LastModified.Equal(stamp) {
		t.Fatalf("expected stamped local write, got %+v", got)
	}
	if m.Status() != SyncLocalOnly {
		t.Fatalf("expected local-only status, got %s", m.Status())
	}
}

func TestSave_PushesCollectionToRemote(t *testing.T) {
	repo := newMemSessionRepo()
	remote := &fakeRemote{}
	m := NewSyncManager(repo, remote)

	if err := m.Save(context.Background(), session("s1", "owner1", time.Time{})); err != nil {
		t.Fatalf("save: %v", err)
	}
	m.Wait()

	if m.Status() != SyncOK {
		t.Fatalf("expected synced status, got %s", m.Status())
	}
	remote.mu.Lock()
	defer remote.mu.Unlock()
	if len(remote.saved) != 1 || len(remote.saved[0].Sessions) != 1 {
		t.Fatalf("expected one pushed bundle with one session, got %+v", remote.saved)
	}
}

func TestSave_RemoteFailureIsFailSoft(t *testing.T) {
	repo := newMemSessionRepo()
	remote := &fakeRemote{saveErr: errors.New("remote down")}
	m := NewSyncManager(repo, remote)

	if err := m.Save(context.Background(), session("s1", "owner1", time.Time{})); err != nil {
		t.Fatalf("save must not surface remote failure: %v", err)
	}
	m.Wait()

	// Local write survived, status flag flipped.
	got, _ := repo.Get(context.Background(), "owner1", "s1")
	if got == nil {
		t.Fatal("local write must survive remote failure")
	}
	if m.Status() != SyncFailed {
		t.Fatalf("expected failed status, got %s", m.Status())
	}

	// Explicit user-triggered sync is the retry path.
	remote.mu.Lock()
	remote.saveErr = nil
	remote.mu.Unlock()
	if err := m.Push(context.Background(), "owner1"); err != nil {
		t.Fatalf("push: %v", err)
	}
	if m.Status() != SyncOK {
		t.Fatalf("expected synced after explicit push, got %s", m.Status())
	}
}

func TestLoad_RemoteStrictlyNewerReplacesWholeCollection(t *testing.T) {
	repo := newMemSessionRepo()
	t1 := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	seedOwnerSessions(t, repo, "owner1", session("local-a", "owner1", t1), session("local-b", "owner1", t1.Add(-time.Hour)))

	remote := &fakeRemote{bundle: &RemoteBundle{
		Sessions:     []*SavedSession{session("remote-only", "owner1", t2)},
		LastModified: t2,
	}}
	m := NewSyncManager(repo, remote)

	got, err := m.Load(context.Background(), "owner1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(got) != 1 || got[0].ID != "remote-only" {
		t.Fatalf("expected whole-collection replacement, got %+v", got)
	}
}

func TestLoad_RemoteEqualOrOlderKeepsLocal(t *testing.T) {
	t1 := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	for _, remoteTS := range []time.Time{t1, t1.Add(-time.Minute)} {
		repo := newMemSessionRepo()
		seedOwnerSessions(t, repo, "owner1", session("local-a", "owner1", t1))

		remote := &fakeRemote{bundle: &RemoteBundle{
			Sessions:     []*SavedSession{session("remote-only", "owner1", remoteTS)},
			LastModified: remoteTS,
		}}
		m := NewSyncManager(repo, remote)

		got, err := m.Load(context.Background(), "owner1")
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if len(got) != 1 || got[0].ID != "local-a" {
			t.Fatalf("remote %v: expected local collection retained, got %+v", remoteTS, got)
		}
	}
}

func TestLoad_RemoteAbsentKeepsLocal(t *testing.T) {
	repo := newMemSessionRepo()
	seedOwnerSessions(t, repo, "owner1", session("local-a", "owner1", time.Now()))

	m := NewSyncManager(repo, &fakeRemote{bundle: nil})
	got, err := m.Load(context.Background(), "owner1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 1 || got[0].ID != "local-a" {
		t.Fatalf("expected local collection, got %+v", got)
	}
}

func TestLoad_RemoteFailureDegradesToLocal(t *testing.T) {
	repo := newMemSessionRepo()
	seedOwnerSessions(t, repo, "owner1", session("local-a", "owner1", time.Now()))

	m := NewSyncManager(repo, &fakeRemote{loadErr: errors.New("timeout")})
	got, err := m.Load(context.Background(), "owner1")
	if err != nil {
		t.Fatalf("load must degrade, not fail: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected local collection, got %+v", got)
	}
	if m.Status() != SyncFailed {
		t.Fatalf("expected failed status, got %s", m.Status())
	}
}

func seedOwnerSessions(t *testing.T, repo SessionRepo, ownerID string, sessions ...*SavedSession) {
	t.Helper()
	for _, s := range sessions {
		s.OwnerID = ownerID
		if err := repo.Upsert(context.Background(), s); err != nil {
			t.Fatalf("seed %s: %v", s.ID, err)
		}
	}
}
