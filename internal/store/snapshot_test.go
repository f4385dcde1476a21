package store

import (
	"encoding/json"
	"testing"

	"github.com/abhisek/learnpath/internal/graph"
)

func TestMigrateSnapshot_V4ToCurrent(t *testing.T) {
	raw := []byte(`{
		"schemaVersion": 4,
		"sourceMaterial": {"title": "Graphs", "text": "..."},
		"units": [{"id": "u1", "title": "Root", "locked": false, "difficulty": 0.2, "kind": "core"}],
		"unitProgress": {"u1": {"status": "completed", "attempts": 2, "proficiency": 0.9}}
	}`)

	snap, err := DecodeSnapshot(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if snap.SchemaVersion != CurrentSchemaVersion {
		t.Fatalf("expected version %d, got %d", CurrentSchemaVersion, snap.SchemaVersion)
	}
	// Fields introduced after v4 are filled with defaults.
	if snap.Weaknesses == nil {
		t.Fatal("expected weaknesses default")
	}
	if snap.UnitQuizzes == nil || snap.UnitContent == nil || snap.UnitProgress == nil {
		t.Fatal("expected map defaults")
	}
	if snap.Rewards == nil {
		t.Fatal("expected rewards default")
	}
	// Existing data survives untouched.
	if snap.SourceMaterial.Title != "Graphs" {
		t.Fatalf("source material lost: %+v", snap.SourceMaterial)
	}
	if p := snap.UnitProgress["u1"]; p == nil || p.Attempts != 2 || p.Status != graph.StatusCompleted {
		t.Fatalf("progress lost: %+v", p)
	}
}

func TestMigrateSnapshot_EachIntermediateVersion(t *testing.T) {
	for v := EarliestSchemaVersion; v <= CurrentSchemaVersion; v++ {
		snap, err := MigrateSnapshot(SessionSnapshot{SchemaVersion: v})
		if err != nil {
			t.Fatalf("version %d: %v", v, err)
		}
		if snap.SchemaVersion != CurrentSchemaVersion {
			t.Fatalf("version %d migrated to %d, want %d", v, snap.SchemaVersion, CurrentSchemaVersion)
		}
	}
}

func TestMigrateSnapshot_RejectsNewerVersion(t *testing.T) {
	_, err := MigrateSnapshot(SessionSnapshot{SchemaVersion: CurrentSchemaVersion + 1})
	if err == nil {
		t.Fatal("expected error for newer schema version")
	}
}

func TestDecodeSnapshot_LiftsPreChainVersions(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"explicit old version", `{"schemaVersion": 3, "units": []}`},
		{"version field absent", `{"units": []}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap, err := DecodeSnapshot([]byte(tt.raw))
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if snap.SchemaVersion != CurrentSchemaVersion {
				t.Fatalf("expected version %d, got %d", CurrentSchemaVersion, snap.SchemaVersion)
			}
			if snap.Weaknesses == nil || snap.Rewards == nil {
				t.Fatal("expected slice defaults filled by migration chain")
			}
			if snap.UnitQuizzes == nil || snap.UnitContent == nil || snap.UnitProgress == nil {
				t.Fatal("expected map defaults")
			}
		})
	}
}

func TestEncodeSnapshot_StampsCurrentVersion(t *testing.T) {
	b, err := EncodeSnapshot(SessionSnapshot{SchemaVersion: 5})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	var out map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if v, _ := out["schemaVersion"].(float64); int(v) != CurrentSchemaVersion {
		t.Fatalf("expected version %d on the wire, got %v", CurrentSchemaVersion, out["schemaVersion"])
	}
}

func TestDecodeSnapshot_RejectsMalformedJSON(t *testing.T) {
	if _, err := DecodeSnapshot([]byte(`{broken`)); err == nil {
		t.Fatal("expected error")
	}
}
