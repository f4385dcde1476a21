package store

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"
)

func TestBackup_RoundTrip(t *testing.T) {
	repo := newMemSessionRepo()
	ctx := context.Background()

	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	seedOwnerSessions(t, repo, "owner1", session("s1", "owner1", now), session("s2", "owner1", now.Add(time.Minute)))

	payload, err := ExportBackup(ctx, repo, "owner1")
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	// Import into a fresh store.
	fresh := newMemSessionRepo()
	backup, err := ImportBackup(ctx, fresh, payload)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if backup.Owner != "owner1" {
		t.Fatalf("unexpected owner %q", backup.Owner)
	}

	restored, _ := fresh.ListByOwner(ctx, "owner1")
	if len(restored) != 2 {
		t.Fatalf("expected 2 restored sessions, got %d", len(restored))
	}
}

func TestImportBackup_RejectsMalformedPayloads(t *testing.T) {
	encode := func(s string) string { return base64.StdEncoding.EncodeToString([]byte(s)) }

	cases := []struct {
		name    string
		payload string
	}{
		{"not base64", "%%% not base64 %%%"},
		{"not json", encode(`{broken`)},
		{"missing owner", encode(`{"sessions":[]}`)},
		{"missing sessions", encode(`{"owner":"owner1"}`)},
		{"null session entry", encode(`{"owner":"owner1","sessions":[null]}`)},
		{"future schema", encode(`{"owner":"owner1","sessions":[{"id":"s1","data":{"schemaVersion":99}}]}`)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newMemSessionRepo()
			seedOwnerSessions(t, repo, "owner1", session("keep", "owner1", time.Now()))

			_, err := ImportBackup(context.Background(), repo, tc.payload)
			if !errors.Is(err, ErrMalformedBackup) {
				t.Fatalf("expected ErrMalformedBackup, got %v", err)
			}

			// State untouched.
			remaining, _ := repo.ListByOwner(context.Background(), "owner1")
			if len(remaining) != 1 || remaining[0].ID != "keep" {
				t.Fatalf("state modified by rejected import: %+v", remaining)
			}
		})
	}
}

func TestImportBackup_EmptySessionsIsValid(t *testing.T) {
	repo := newMemSessionRepo()
	seedOwnerSessions(t, repo, "owner1", session("old", "owner1", time.Now()))

	payload := base64.StdEncoding.EncodeToString([]byte(`{"owner":"owner1","sessions":[]}`))
	backup, err := ImportBackup(context.Background(), repo, payload)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(backup.Sessions) != 0 {
		t.Fatalf("expected empty collection, got %+v", backup.Sessions)
	}

	remaining, _ := repo.ListByOwner(context.Background(), "owner1")
	if len(remaining) != 0 {
		t.Fatalf("expected old sessions replaced by empty collection, got %+v", remaining)
	}
}

func TestImportBackup_MigratesOldSnapshots(t *testing.T) {
	repo := newMemSessionRepo()

	payload := base64.StdEncoding.EncodeToString([]byte(`{
		"owner": "owner1",
		"sessions": [{"id": "s1", "title": "Graphs", "data": {"schemaVersion": 4}}]
	}`))

	backup, err := ImportBackup(context.Background(), repo, payload)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if backup.Sessions[0].Data.SchemaVersion != CurrentSchemaVersion {
		t.Fatalf("expected migrated snapshot, got version %d", backup.Sessions[0].Data.SchemaVersion)
	}
	if backup.Sessions[0].OwnerID != "owner1" {
		t.Fatalf("expected owner applied to sessions, got %q", backup.Sessions[0].OwnerID)
	}
}
