package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/abhisek/learnpath/ent"
	"github.com/abhisek/learnpath/ent/savedsession"
)

// sessionRepo implements SessionRepo using the ent client.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Upsert(ctx context.Context, s *SavedSession) error {
	dataMap, err := snapshotToMap(s.Data)
	if err != nil {
		return fmt.Errorf("marshal session data: %w", err)
	}

	existing, err := r.client.SavedSession.Query().
		Where(
			savedsession.OwnerID(s.OwnerID),
			savedsession.SessionID(s.ID),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query session: %w", err)
	}

	if existing == nil {
		_, err = r.client.SavedSession.Create().
			SetSessionID(s.ID).
			SetOwnerID(s.OwnerID).
			SetTitle(s.Title).
			SetLastModified(s.LastModified).
			SetProgressPercent(s.ProgressPercent).
			SetData(dataMap).
			Save(ctx)
	} else {
		_, err = existing.Update().
			SetTitle(s.Title).
			SetLastModified(s.LastModified).
			SetProgressPercent(s.ProgressPercent).
			SetData(dataMap).
			Save(ctx)
	}
	if err != nil {
		return fmt.Errorf("upsert session: %w", err)
	}
	return nil
}

func (r *sessionRepo) Get(ctx context.Context, ownerID, sessionID string) (*SavedSession, error) {
	row, err := r.client.SavedSession.Query().
		Where(
			savedsession.OwnerID(ownerID),
			savedsession.SessionID(sessionID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query session: %w", err)
	}
	return entToSavedSession(row)
}

func (r *sessionRepo) ListByOwner(ctx context.Context, ownerID string) ([]*SavedSession, error) {
	rows, err := r.client.SavedSession.Query().
		Where(savedsession.OwnerID(ownerID)).
		Order(ent.Desc(savedsession.FieldLastModified)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	out := make([]*SavedSession, 0, len(rows))
	for _, row := range rows {
		s, err := entToSavedSession(row)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *sessionRepo) MaxLastModified(ctx context.Context, ownerID string) (time.Time, error) {
	row, err := r.client.SavedSession.Query().
		Where(savedsession.OwnerID(ownerID)).
		Order(ent.Desc(savedsession.FieldLastModified)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("query newest session: %w", err)
	}
	return row.LastModified, nil
}

func (r *sessionRepo) ReplaceAll(ctx context.Context, ownerID string, sessions []*SavedSession) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if _, err := tx.SavedSession.Delete().
		Where(savedsession.OwnerID(ownerID)).
		Exec(ctx); err != nil {
		tx.Rollback()
		return fmt.Errorf("clear sessions: %w", err)
	}

	for _, s := range sessions {
		dataMap, err := snapshotToMap(s.Data)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("marshal session data: %w", err)
		}
		if _, err := tx.SavedSession.Create().
			SetSessionID(s.ID).
			SetOwnerID(ownerID).
			SetTitle(s.Title).
			SetLastModified(s.LastModified).
			SetProgressPercent(s.ProgressPercent).
			SetData(dataMap).
			Save(ctx); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert session %s: %w", s.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace: %w", err)
	}
	return nil
}

func (r *sessionRepo) Delete(ctx context.Context, ownerID, sessionID string) error {
	_, err := r.client.SavedSession.Delete().
		Where(
			savedsession.OwnerID(ownerID),
			savedsession.SessionID(sessionID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (r *sessionRepo) DeleteAll(ctx context.Context, ownerID string) error {
	_, err := r.client.SavedSession.Delete().
		Where(savedsession.OwnerID(ownerID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete sessions: %w", err)
	}
	return nil
}

// snapshotToMap converts a SessionSnapshot to map[string]any for ent
// JSON storage.
func snapshotToMap(snap SessionSnapshot) (map[string]any, error) {
	b, err := EncodeSnapshot(snap)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// entToSavedSession converts an ent row, migrating the stored snapshot
// to the current schema version.
func entToSavedSession(row *ent.SavedSession) (*SavedSession, error) {
	b, err := json.Marshal(row.Data)
	if err != nil {
		return nil, fmt.Errorf("marshal ent data: %w", err)
	}
	snap, err := DecodeSnapshot(b)
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", row.SessionID, err)
	}
	return &SavedSession{
		ID:              row.SessionID,
		OwnerID:         row.OwnerID,
		Title:           row.Title,
		LastModified:    row.LastModified,
		ProgressPercent: row.ProgressPercent,
		Data:            snap,
	}, nil
}
