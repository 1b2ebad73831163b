package backup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gallery-archive/drive"

	"github.com/google/uuid"
)

const nameLayout = "20060102-150405"

// RunOnce takes one snapshot, uploads it and prunes old copies. The outcome
// is recorded in Status.
func (w *Worker) RunOnce(ctx context.Context) error {
	started := w.now().UTC()

	fileID, err := w.backup(ctx, started)

	w.mu.Lock()
	defer w.mu.Unlock()

	w.status.LastAttemptAt = &started
	if err != nil {
		w.status.LastError = err.Error()
		w.status.ConsecutiveFailures++
		w.logger.Error("backup failed", "error", err, "failures", w.status.ConsecutiveFailures)
		return err
	}

	w.status.LastSuccessAt = &started
	w.status.LastFileID = fileID
	w.status.LastError = ""
	w.status.ConsecutiveFailures = 0
	return nil
}

func (w *Worker) backup(ctx context.Context, started time.Time) (string, error) {
	tempPath := filepath.Join(w.opts.TempDir, "snapshot-"+uuid.New().String()+".db")
	if err := w.db.Snapshot(ctx, tempPath); err != nil {
		return "", err
	}
	defer func() {
		if err := os.Remove(tempPath); err != nil && !os.IsNotExist(err) {
			w.logger.Warn("failed to remove snapshot file", "path", tempPath, "error", err)
		}
	}()

	f, err := os.Open(tempPath)
	if err != nil {
		return "", fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer f.Close()

	name := SnapshotName(started)
	fileID, err := w.uploader.Upload(ctx, name, f)
	if err != nil {
		return "", fmt.Errorf("failed to upload snapshot: %w", err)
	}
	w.logger.Info("uploaded database snapshot", "name", name, "file_id", fileID)

	if w.opts.Keep > 0 {
		removed, err := w.uploader.Prune(ctx, w.opts.Keep)
		if err != nil {
			// The new copy is safe, old ones get another chance next run
			w.logger.Warn("failed to prune old snapshots", "error", err)
		} else if removed > 0 {
			w.logger.Info("pruned old snapshots", "removed", removed)
		}
	}

	return fileID, nil
}

// SnapshotName is the remote file name used for a snapshot taken at t
func SnapshotName(t time.Time) string {
	return drive.BackupPrefix + t.UTC().Format(nameLayout) + ".db"
}
