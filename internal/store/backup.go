package store

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedBackup marks any rejected import payload. The local
// collection is untouched when it is returned.
var ErrMalformedBackup = errors.New("malformed backup payload")

// Backup is the portable export format: base64 of this struct's JSON.
type Backup struct {
	Owner    string          `json:"owner"`
	Sessions []*SavedSession `json:"sessions"`
	Behavior BehaviorStats   `json:"behavior"`
}

// ExportBackup serializes the owner's full session collection into a
// portable base64 payload.
func ExportBackup(ctx context.Context, repo SessionRepo, ownerID string) (string, error) {
	sessions, err := repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return "", fmt.Errorf("collect sessions: %w", err)
	}

	var behavior BehaviorStats
	for _, s := range sessions {
		behavior = mergeBehavior(behavior, s.Data.Behavior)
	}

	b, err := json.Marshal(Backup{
		Owner:    ownerID,
		Sessions: sessions,
		Behavior: behavior,
	})
	if err != nil {
		return "", fmt.Errorf("marshal backup: %w", err)
	}

	return base64.StdEncoding.EncodeToString(b), nil
}

// ImportBackup validates a backup payload and replaces the owner's
// local session collection with its contents. Any malformed payload
// (bad base64, bad JSON, missing owner or sessions) is rejected before
// the first write, leaving local state completely untouched.
func ImportBackup(ctx context.Context, repo SessionRepo, payload string) (*Backup, error) {
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: bad encoding: %v", ErrMalformedBackup, err)
	}

	var backup rawBackup
	if err := json.Unmarshal(raw, &backup); err != nil {
		return nil, fmt.Errorf("%w: bad JSON: %v", ErrMalformedBackup, err)
	}
	if backup.Owner == "" {
		return nil, fmt.Errorf("%w: owner is missing", ErrMalformedBackup)
	}
	if backup.Sessions == nil {
		return nil, fmt.Errorf("%w: sessions is missing", ErrMalformedBackup)
	}

	// Migrate every snapshot before touching the store so a single bad
	// session rejects the whole import.
	sessions := make([]*SavedSession, 0, len(backup.Sessions))
	for i, s := range backup.Sessions {
		if s == nil || s.ID == "" {
			return nil, fmt.Errorf("%w: session %d is malformed", ErrMalformedBackup, i)
		}
		snap, err := MigrateSnapshot(s.Data)
		if err != nil {
			return nil, fmt.Errorf("%w: session %s: %v", ErrMalformedBackup, s.ID, err)
		}
		migrated := *s
		migrated.OwnerID = backup.Owner
		migrated.Data = snap
		sessions = append(sessions, &migrated)
	}

	if err := repo.ReplaceAll(ctx, backup.Owner, sessions); err != nil {
		return nil, fmt.Errorf("import sessions: %w", err)
	}

	return &Backup{Owner: backup.Owner, Sessions: sessions, Behavior: backup.Behavior}, nil
}

// rawBackup distinguishes an absent sessions key (reject) from an empty
// collection (accept) during validation.
type rawBackup struct {
	Owner    string          `json:"owner"`
	Sessions []*SavedSession `json:"sessions"`
	Behavior BehaviorStats   `json:"behavior"`
}
