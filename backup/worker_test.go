package backup

import (
	"context"
	"errors"
	"gallery-archive/database"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUploader struct {
	mock.Mock
	uploaded []byte
}

func (m *MockUploader) Upload(ctx context.Context, name string, content io.Reader) (string, error) {
	data, err := io.ReadAll(content)
	if err != nil {
		return "", err
	}
	m.uploaded = data
	args := m.Called(ctx, name)
	return args.String(0), args.Error(1)
}

func (m *MockUploader) Prune(ctx context.Context, keep int) (int, error) {
	args := m.Called(ctx, keep)
	return args.Int(0), args.Error(1)
}

var _ Uploader = (*MockUploader)(nil)

type failingSnapshotter struct{}

func (failingSnapshotter) Snapshot(ctx context.Context, path string) error {
	return errors.New("disk full")
}

func setupTestDB(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "archive.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate(context.Background()))
	return db
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestRunOnceUploadsSnapshot(t *testing.T) {
	db := setupTestDB(t)
	tempDir := t.TempDir()
	uploader := new(MockUploader)

	at := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	uploader.On("Upload", mock.Anything, "archive-20240506-070809.db").Return("file-1", nil)
	uploader.On("Prune", mock.Anything, 3).Return(2, nil)

	w := NewWorker(db, uploader, Options{Keep: 3, TempDir: tempDir}, nil)
	w.now = fixedClock(at)

	require.NoError(t, w.RunOnce(context.Background()))

	uploader.AssertExpectations(t)
	assert.NotEmpty(t, uploader.uploaded)
	assert.Equal(t, "SQLite format 3\x00", string(uploader.uploaded[:16]))

	// Temp snapshot is removed after upload
	entries, err := os.ReadDir(tempDir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	status := w.Status()
	assert.True(t, status.Enabled)
	assert.False(t, status.Running)
	assert.Equal(t, "file-1", status.LastFileID)
	assert.Empty(t, status.LastError)
	assert.Zero(t, status.ConsecutiveFailures)
	require.NotNil(t, status.LastSuccessAt)
	assert.Equal(t, at, *status.LastSuccessAt)
}

func TestRunOnceSkipsPruneWhenKeepIsZero(t *testing.T) {
	db := setupTestDB(t)
	uploader := new(MockUploader)
	uploader.On("Upload", mock.Anything, mock.Anything).Return("file-2", nil)

	w := NewWorker(db, uploader, Options{TempDir: t.TempDir()}, nil)

	require.NoError(t, w.RunOnce(context.Background()))
	uploader.AssertNotCalled(t, "Prune", mock.Anything, mock.Anything)
}

func TestRunOncePruneFailureKeepsSuccess(t *testing.T) {
	db := setupTestDB(t)
	uploader := new(MockUploader)
	uploader.On("Upload", mock.Anything, mock.Anything).Return("file-3", nil)
	uploader.On("Prune", mock.Anything, 5).Return(0, errors.New("quota"))

	w := NewWorker(db, uploader, Options{Keep: 5, TempDir: t.TempDir()}, nil)

	require.NoError(t, w.RunOnce(context.Background()))
	assert.Equal(t, "file-3", w.Status().LastFileID)
}

func TestRunOnceRecordsFailures(t *testing.T) {
	db := setupTestDB(t)
	tempDir := t.TempDir()
	uploader := new(MockUploader)
	uploader.On("Upload", mock.Anything, mock.Anything).Return("", errors.New("503 backend error"))

	w := NewWorker(db, uploader, Options{Keep: 2, TempDir: tempDir}, nil)

	require.Error(t, w.RunOnce(context.Background()))
	require.Error(t, w.RunOnce(context.Background()))

	status := w.Status()
	assert.Equal(t, 2, status.ConsecutiveFailures)
	assert.Contains(t, status.LastError, "failed to upload snapshot")
	assert.Nil(t, status.LastSuccessAt)
	require.NotNil(t, status.LastAttemptAt)
	uploader.AssertNotCalled(t, "Prune", mock.Anything, mock.Anything)

	entries, err := os.ReadDir(tempDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRunOnceSnapshotFailure(t *testing.T) {
	uploader := new(MockUploader)
	w := NewWorker(failingSnapshotter{}, uploader, Options{TempDir: t.TempDir()}, nil)

	err := w.RunOnce(context.Background())
	require.Error(t, err)
	assert.Equal(t, "disk full", w.Status().LastError)
	uploader.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

func TestWorkerStartStop(t *testing.T) {
	db := setupTestDB(t)
	uploader := new(MockUploader)
	uploaded := make(chan struct{}, 1)
	uploader.On("Upload", mock.Anything, mock.Anything).Return("file-4", nil).Run(func(args mock.Arguments) {
		select {
		case uploaded <- struct{}{}:
		default:
		}
	})

	w := NewWorker(db, uploader, Options{Interval: time.Hour, TempDir: t.TempDir()}, nil)
	w.Start()
	w.Start()
	assert.True(t, w.Status().Running)

	select {
	case <-uploaded:
	case <-time.After(5 * time.Second):
		t.Fatal("backup did not run on start")
	}

	w.Stop()
	w.Stop()
	assert.False(t, w.Status().Running)
	uploader.AssertNumberOfCalls(t, "Upload", 1)
}

func TestRetryDelay(t *testing.T) {
	tests := []struct {
		failures int
		want     time.Duration
	}{
		{0, time.Minute},
		{1, time.Minute},
		{2, 2 * time.Minute},
		{3, 4 * time.Minute},
		{10, time.Hour},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, retryDelay(tt.failures, time.Minute, time.Hour), "failures=%d", tt.failures)
	}
}

func TestIsTokenExpiredError(t *testing.T) {
	assert.False(t, isTokenExpiredError(nil))
	assert.True(t, isTokenExpiredError(errors.New("oauth2: cannot fetch token: invalid_grant")))
	assert.True(t, isTokenExpiredError(errors.New("googleapi: Error 401: Invalid Credentials")))
	assert.False(t, isTokenExpiredError(errors.New("disk full")))
}

func TestSnapshotName(t *testing.T) {
	at := time.Date(2024, 12, 31, 23, 59, 58, 0, time.FixedZone("x", 3600))
	assert.Equal(t, "archive-20241231-225958.db", SnapshotName(at))
}
