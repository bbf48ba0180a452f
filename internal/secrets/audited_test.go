package secrets

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/benaskins/scfg/internal/audit"
	"github.com/benaskins/scfg/internal/codec"
)

func setupAuditedBackend(t *testing.T) (*AuditedBackend, *MemoryKeychain, string) {
	t.Helper()
	auditPath := filepath.Join(t.TempDir(), "audit.log")

	auditLog, err := audit.NewLogger(auditPath)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	t.Cleanup(func() { auditLog.Close() })

	kc := NewMemoryKeychain()
	backend := NewAuditedBackend(NewKeychainBackend(kc), auditLog, "cli")

	return backend, kc, auditPath
}

func readAuditEntries(t *testing.T, path string) []audit.Entry {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	entries := make([]audit.Entry, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}
		var e audit.Entry
		json.Unmarshal([]byte(line), &e)
		entries = append(entries, e)
	}
	return entries
}

func TestAuditedStoreLogsWrite(t *testing.T) {
	backend, _, auditPath := setupAuditedBackend(t)

	path := filepath.Join(t.TempDir(), "doc.json")
	os.WriteFile(path, []byte(`{"a":1}`), 0600)

	if err := backend.Store("alice", "svc", path); err != nil {
		t.Fatalf("Store: %v", err)
	}

	entries := readAuditEntries(t, auditPath)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Action != audit.ActionConfigStore {
		t.Errorf("expected config_store, got %v", entries[0].Action)
	}
	if entries[0].Account != "alice" || entries[0].Service != "svc" {
		t.Errorf("expected alice/svc, got %s/%s", entries[0].Account, entries[0].Service)
	}
	if entries[0].Actor != "cli" {
		t.Errorf("expected cli, got %q", entries[0].Actor)
	}
}

func TestAuditedStoreBytesLogsWrite(t *testing.T) {
	backend, _, auditPath := setupAuditedBackend(t)

	if err := backend.StoreBytes("alice", "svc", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("StoreBytes: %v", err)
	}

	entries := readAuditEntries(t, auditPath)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Action != audit.ActionConfigStore {
		t.Errorf("expected config_store, got %v", entries[0].Action)
	}
}

func TestAuditedLoadLogsReadWithMirror(t *testing.T) {
	backend, kc, auditPath := setupAuditedBackend(t)
	kc.Set("alice", "SC-svc", codec.Encode([]byte(`{"a":1}`)))

	mirror := filepath.Join(t.TempDir(), "config.json")
	if _, err := backend.Load("alice", "svc", LoadOptions{MirrorPath: mirror}); err != nil {
		t.Fatalf("Load: %v", err)
	}

	entries := readAuditEntries(t, auditPath)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Action != audit.ActionConfigLoad {
		t.Errorf("expected config_load, got %v", entries[0].Action)
	}
	if entries[0].Mirror != mirror {
		t.Errorf("expected mirror %q, got %q", mirror, entries[0].Mirror)
	}
}

func TestAuditedFailedLoadNotLogged(t *testing.T) {
	backend, _, auditPath := setupAuditedBackend(t)

	_, err := backend.Load("alice", "missing", LoadOptions{})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	data, _ := os.ReadFile(auditPath)
	if len(strings.TrimSpace(string(data))) != 0 {
		t.Errorf("expected empty audit log, got %q", data)
	}
}

func TestAuditedDeleteAndListLogged(t *testing.T) {
	backend, kc, auditPath := setupAuditedBackend(t)
	kc.Set("alice", "SC-svc", codec.Encode([]byte(`{}`)))

	if _, err := backend.List("alice"); err != nil {
		t.Fatalf("List: %v", err)
	}
	if err := backend.Delete("alice", "svc"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	entries := readAuditEntries(t, auditPath)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Action != audit.ActionConfigList {
		t.Errorf("expected config_list, got %v", entries[0].Action)
	}
	if entries[1].Action != audit.ActionConfigDelete {
		t.Errorf("expected config_delete, got %v", entries[1].Action)
	}
}
