package system

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// BackupManager copies config files into the backup directory before they
// are mutated. Backups accumulate for the operator to manage; nothing is
// pruned automatically.
type BackupManager struct {
	dir    string
	dryRun bool
	log    *zap.SugaredLogger

	// now is overridable in tests
	now func() time.Time
}

// NewBackupManager creates a BackupManager rooted at dir
func NewBackupManager(dir string, dryRun bool, log *zap.SugaredLogger) *BackupManager {
	return &BackupManager{dir: dir, dryRun: dryRun, log: log, now: time.Now}
}

// Backup copies path into the backup directory with a Unix timestamp suffix
// and returns the backup path. An absent source is a no-op returning "".
// Nothing is written in dry-run mode.
func (b *BackupManager) Backup(path string) (string, error) {
	src, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("cannot open %s for backup: %w", path, err)
	}
	defer src.Close()

	if b.dryRun {
		return "", nil
	}

	if err := os.MkdirAll(b.dir, 0755); err != nil {
		return "", fmt.Errorf("cannot create backup directory %s: %w", b.dir, err)
	}

	backupPath := filepath.Join(b.dir, fmt.Sprintf("%s.%d", filepath.Base(path), b.now().Unix()))
	dst, err := os.Create(backupPath)
	if err != nil {
		return "", fmt.Errorf("cannot create backup file %s: %w", backupPath, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write backup %s: %w", backupPath, err)
	}

	b.log.Infow("backed up", "file", path, "backup", backupPath)
	return backupPath, nil
}

// Restore copies a backup over dest, byte for byte
func (b *BackupManager) Restore(backupPath, dest string) error {
	data, err := os.ReadFile(backupPath)
	if err != nil {
		return fmt.Errorf("cannot read backup %s: %w", backupPath, err)
	}

	if err := os.WriteFile(dest, data, 0644); err != nil {
		return fmt.Errorf("cannot restore %s to %s: %w", backupPath, dest, err)
	}

	b.log.Infow("restored", "file", dest, "backup", backupPath)
	return nil
}
