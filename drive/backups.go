package drive

import (
	"context"
	"io"
	"strings"
	"sync"
)

const (
	// BackupPrefix starts the name of every uploaded snapshot
	BackupPrefix = "archive-"

	sqliteMimeType = "application/vnd.sqlite3"
)

// BackupStore keeps database snapshots in a single Drive folder
type BackupStore struct {
	folders    *FolderManager
	files      *FileManager
	folderName string

	mu       sync.Mutex
	folderID string
}

// NewBackupStore creates a backup store rooted at folderName in the user's Drive
func NewBackupStore(client *Client, folderName string) *BackupStore {
	return &BackupStore{
		folders:    NewFolderManager(client),
		files:      NewFileManager(client),
		folderName: folderName,
	}
}

func (s *BackupStore) folder(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.folderID != "" {
		return s.folderID, nil
	}
	id, err := s.folders.GetOrCreate(ctx, s.folderName, "")
	if err != nil {
		return "", err
	}
	s.folderID = id
	return id, nil
}

// Upload stores content as a new snapshot file and returns its Drive ID
func (s *BackupStore) Upload(ctx context.Context, name string, content io.Reader) (string, error) {
	folderID, err := s.folder(ctx)
	if err != nil {
		return "", err
	}

	file, err := s.files.Create(ctx, name, folderID, sqliteMimeType, content)
	if err != nil {
		return "", err
	}
	return file.Id, nil
}

// Prune deletes all but the newest keep snapshots and returns how many were removed
func (s *BackupStore) Prune(ctx context.Context, keep int) (int, error) {
	if keep <= 0 {
		return 0, nil
	}

	folderID, err := s.folder(ctx)
	if err != nil {
		return 0, err
	}

	files, err := s.files.ListInFolder(ctx, folderID, BackupPrefix, "createdTime desc", 1000)
	if err != nil {
		return 0, err
	}

	removed := 0
	kept := 0
	for _, f := range files {
		if !strings.HasPrefix(f.Name, BackupPrefix) {
			continue
		}
		if kept < keep {
			kept++
			continue
		}
		if err := s.files.Delete(ctx, f.Id); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}
