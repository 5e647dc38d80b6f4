package system

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestBackupAndRestore(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "sshd_config")
	original := []byte("Port 22\nPermitRootLogin no\n")
	if err := os.WriteFile(source, original, 0644); err != nil {
		t.Fatal(err)
	}

	mgr := NewBackupManager(filepath.Join(dir, "backups"), false, zap.NewNop().Sugar())

	backupPath, err := mgr.Backup(source)
	if err != nil {
		t.Fatalf("Backup() error = %v", err)
	}
	if backupPath == "" {
		t.Fatal("Backup() returned empty path for existing file")
	}

	// Corrupt the source, then restore
	if err := os.WriteFile(source, []byte("Port garbage\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := mgr.Restore(backupPath, source); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}

	restored, err := os.ReadFile(source)
	if err != nil {
		t.Fatal(err)
	}
	if string(restored) != string(original) {
		t.Errorf("restored content = %q, want %q", restored, original)
	}
}

func TestBackupMissingSourceIsNoop(t *testing.T) {
	dir := t.TempDir()
	mgr := NewBackupManager(filepath.Join(dir, "backups"), false, zap.NewNop().Sugar())

	backupPath, err := mgr.Backup(filepath.Join(dir, "does-not-exist"))
	if err != nil {
		t.Fatalf("Backup() error = %v, want nil for missing source", err)
	}
	if backupPath != "" {
		t.Errorf("Backup() = %q, want empty path for missing source", backupPath)
	}
}

func TestBackupDryRunWritesNothing(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "hosts")
	if err := os.WriteFile(source, []byte("127.0.0.1 localhost\n"), 0644); err != nil {
		t.Fatal(err)
	}

	backupDir := filepath.Join(dir, "backups")
	mgr := NewBackupManager(backupDir, true, zap.NewNop().Sugar())

	backupPath, err := mgr.Backup(source)
	if err != nil {
		t.Fatalf("Backup() error = %v", err)
	}
	if backupPath != "" {
		t.Errorf("Backup() = %q, want empty path in dry-run", backupPath)
	}
	if _, err := os.Stat(backupDir); !os.IsNotExist(err) {
		t.Error("backup directory created in dry-run mode")
	}
}

func TestBackupsNeverOverwrite(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "hosts")
	if err := os.WriteFile(source, []byte("first\n"), 0644); err != nil {
		t.Fatal(err)
	}

	mgr := NewBackupManager(filepath.Join(dir, "backups"), false, zap.NewNop().Sugar())
	ts := time.Unix(1700000000, 0)
	mgr.now = func() time.Time { ts = ts.Add(time.Second); return ts }

	first, err := mgr.Backup(source)
	if err != nil {
		t.Fatal(err)
	}
	second, err := mgr.Backup(source)
	if err != nil {
		t.Fatal(err)
	}
	if first == second {
		t.Errorf("consecutive backups share the same path: %s", first)
	}
}
