package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSessionUpsertAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	// Absent session reads as nil.
	got, err := repo.Get(ctx, "owner1", "s1")
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if got != nil {
		t.Fatal("expected nil for absent session")
	}

	now := time.Now().UTC().Truncate(time.Second)
	sess := &SavedSession{
		ID:              "s1",
		OwnerID:         "owner1",
		Title:           "Graph Theory",
		LastModified:    now,
		ProgressPercent: 25,
		Data:            NewSnapshot(),
	}
	if err := repo.Upsert(ctx, sess); err != nil {
		t.Fatalf("upsert (create): %v", err)
	}

	got, err = repo.Get(ctx, "owner1", "s1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Title != "Graph Theory" || got.ProgressPercent != 25 {
		t.Fatalf("unexpected session: %+v", got)
	}
	if got.Data.SchemaVersion != CurrentSchemaVersion {
		t.Fatalf("expected schema version %d, got %d", CurrentSchemaVersion, got.Data.SchemaVersion)
	}

	// Upsert again updates in place, no duplicate row.
	sess.Title = "Graph Theory II"
	sess.ProgressPercent = 50
	if err := repo.Upsert(ctx, sess); err != nil {
		t.Fatalf("upsert (update): %v", err)
	}

	all, err := repo.ListByOwner(ctx, "owner1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 session after update, got %d", len(all))
	}
	if all[0].Title != "Graph Theory II" {
		t.Fatalf("update not applied: %+v", all[0])
	}
}

func TestSessionListOrderAndMaxLastModified(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i, id := range []string{"old", "mid", "new"} {
		err := repo.Upsert(ctx, &SavedSession{
			ID:           id,
			OwnerID:      "owner1",
			Title:        id,
			LastModified: base.Add(time.Duration(i) * time.Minute),
			Data:         NewSnapshot(),
		})
		if err != nil {
			t.Fatalf("upsert %s: %v", id, err)
		}
	}

	all, err := repo.ListByOwner(ctx, "owner1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 || all[0].ID != "new" || all[2].ID != "old" {
		t.Fatalf("expected newest-first order, got %+v", all)
	}

	max, err := repo.MaxLastModified(ctx, "owner1")
	if err != nil {
		t.Fatalf("max: %v", err)
	}
	if !max.Equal(base.Add(2 * time.Minute)) {
		t.Fatalf("expected max %v, got %v", base.Add(2*time.Minute), max)
	}

	// Unknown owner: zero time, no error.
	max, err = repo.MaxLastModified(ctx, "nobody")
	if err != nil {
		t.Fatalf("max (empty): %v", err)
	}
	if !max.IsZero() {
		t.Fatalf("expected zero time, got %v", max)
	}
}

func TestSessionReplaceAll(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	for _, id := range []string{"a", "b"} {
		if err := repo.Upsert(ctx, &SavedSession{
			ID: id, OwnerID: "owner1", Title: id, LastModified: now, Data: NewSnapshot(),
		}); err != nil {
			t.Fatalf("seed %s: %v", id, err)
		}
	}
	// A second owner must be untouched by ReplaceAll.
	if err := repo.Upsert(ctx, &SavedSession{
		ID: "z", OwnerID: "owner2", Title: "z", LastModified: now, Data: NewSnapshot(),
	}); err != nil {
		t.Fatalf("seed owner2: %v", err)
	}

	replacement := []*SavedSession{
		{ID: "c", OwnerID: "owner1", Title: "c", LastModified: now, Data: NewSnapshot()},
	}
	if err := repo.ReplaceAll(ctx, "owner1", replacement); err != nil {
		t.Fatalf("replace: %v", err)
	}

	all, err := repo.ListByOwner(ctx, "owner1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 || all[0].ID != "c" {
		t.Fatalf("expected only session c, got %+v", all)
	}

	other, err := repo.ListByOwner(ctx, "owner2")
	if err != nil {
		t.Fatalf("list owner2: %v", err)
	}
	if len(other) != 1 {
		t.Fatalf("other owner's sessions must survive, got %+v", other)
	}
}

func TestOracleEventAppendAndUsage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []OracleRequestEventData{
		{Provider: "anthropic", Model: "m1", Purpose: "plan", InputTokens: 100, OutputTokens: 50, Success: true},
		{Provider: "anthropic", Model: "m1", Purpose: "quiz", InputTokens: 10, OutputTokens: 5, Success: true},
		{Provider: "anthropic", Model: "m2", Purpose: "plan", InputTokens: 1, OutputTokens: 1, Success: false, ErrorMessage: "boom"},
	}
	for i, e := range events {
		if err := repo.AppendOracleRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	listed, err := repo.ListOracleRequests(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 3 {
		t.Fatalf("expected 3 events, got %d", len(listed))
	}
	// Newest first.
	if listed[0].Model != "m2" {
		t.Fatalf("expected newest event first, got %+v", listed[0])
	}

	byPurpose, err := repo.ListOracleRequests(ctx, QueryOpts{Purpose: "plan"})
	if err != nil {
		t.Fatalf("list by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("expected 2 plan events, got %d", len(byPurpose))
	}

	usage, err := repo.OracleUsage(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if usage.Requests != 3 || usage.Failures != 1 {
		t.Fatalf("unexpected usage: %+v", usage)
	}
	if usage.InputTokens != 111 || usage.OutputTokens != 56 {
		t.Fatalf("unexpected token totals: %+v", usage)
	}
	if usage.ByModel["m1"].Requests != 2 {
		t.Fatalf("unexpected per-model usage: %+v", usage.ByModel)
	}
}

func TestBehaviorEventAppend(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendBehavior(ctx, BehaviorEventData{
		OwnerID: "owner1",
		Kind:    BehaviorQuizPassed,
		UnitID:  "u1",
		Detail:  "0.80",
	})
	if err != nil {
		t.Fatalf("append behavior: %v", err)
	}

	count, err := s.Client().BehaviorEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 behavior event, got %d", count)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	for i := 1; i < len(seqs); i++ {
		if seqs[i] != seqs[i-1]+1 {
			t.Errorf("seq[%d] = %d, want %d", i, seqs[i], seqs[i-1]+1)
		}
	}
}
