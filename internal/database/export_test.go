package database

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/akyairhashvil/calmtide/internal/testutil"
)

func TestExportSessions(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if err := db.RecordSession(ctx, testutil.NewSession().WithID("exp-1").WithTechnique("calm", "Calm Exhale").Build()); err != nil {
		t.Fatalf("RecordSession failed: %v", err)
	}

	var buf bytes.Buffer
	if err := db.ExportSessions(ctx, &buf, nil); err != nil {
		t.Fatalf("ExportSessions failed: %v", err)
	}
	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if data.Version != exportVersion {
		t.Fatalf("version = %d", data.Version)
	}
	if len(data.Sessions) != 1 || data.Sessions[0].ID != "exp-1" || data.Sessions[0].TechniqueID != "calm" {
		t.Fatalf("unexpected sessions: %+v", data.Sessions)
	}
	if data.Sessions[0].StartedAt != "2026-10-18T07:30:00Z" {
		t.Fatalf("unexpected start %q", data.Sessions[0].StartedAt)
	}
}

func TestExportEmptyHistory(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	var buf bytes.Buffer
	if err := db.ExportSessions(ctx, &buf, nil); err != nil {
		t.Fatalf("ExportSessions failed: %v", err)
	}
	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if data.Sessions == nil || len(data.Sessions) != 0 {
		t.Fatalf("expected empty, non-null sessions array")
	}
}

func TestExportSessionsAppliesQuery(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	for _, s := range []struct{ id, technique string }{{"a", "box"}, {"b", "calm"}, {"c", "box"}} {
		if err := db.RecordSession(ctx, testutil.NewSession().WithID(s.id).WithTechnique(s.technique, s.technique).Build()); err != nil {
			t.Fatalf("RecordSession failed: %v", err)
		}
	}

	var buf bytes.Buffer
	if err := db.ExportSessions(ctx, &buf, NewSessionQuery().WhereTechnique("box").Limit(1)); err != nil {
		t.Fatalf("ExportSessions failed: %v", err)
	}
	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if len(data.Sessions) != 1 || data.Sessions[0].TechniqueID != "box" {
		t.Fatalf("expected one box session, got %+v", data.Sessions)
	}
}
