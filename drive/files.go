package drive

import (
	"context"
	"fmt"
	"io"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
)

// FileManager handles generic file operations in Google Drive
type FileManager struct {
	client *Client
}

// NewFileManager creates a new file manager
func NewFileManager(client *Client) *FileManager {
	return &FileManager{client: client}
}

// Create creates a new file with the given content
func (fm *FileManager) Create(ctx context.Context, name, parentID, mimeType string, content io.Reader) (*drive.File, error) {
	fileMetadata := &drive.File{
		Name:     name,
		Parents:  []string{parentID},
		MimeType: mimeType,
	}

	return fm.client.Service().Files.Create(fileMetadata).
		Media(content).
		Fields("id, name, createdTime").
		Context(ctx).
		Do()
}

// Delete moves a file to trash
func (fm *FileManager) Delete(ctx context.Context, fileID string) error {
	return fm.client.Service().Files.Delete(fileID).Context(ctx).Do()
}

// List returns all files matching a query
func (fm *FileManager) List(ctx context.Context, query string, fields string, orderBy string, pageSize int64) ([]*drive.File, error) {
	call := fm.client.Service().Files.List().Q(query).Context(ctx)

	if fields != "" {
		call.Fields(googleapi.Field(fields))
	}
	if orderBy != "" {
		call.OrderBy(orderBy)
	}
	if pageSize > 0 {
		call.PageSize(pageSize)
	}

	fileList, err := call.Do()
	if err != nil {
		return nil, err
	}

	return fileList.Files, nil
}

// ListInFolder returns all files in a specific folder
func (fm *FileManager) ListInFolder(ctx context.Context, parentID, pattern string, orderBy string, limit int) ([]*drive.File, error) {
	query := fmt.Sprintf("'%s' in parents and trashed=false", escapeQuery(parentID))
	if pattern != "" {
		query += fmt.Sprintf(" and name contains '%s'", escapeQuery(pattern))
	}

	fields := "files(id, name, createdTime, modifiedTime)"
	pageSize := int64(limit)
	if pageSize == 0 {
		pageSize = 100
	}

	return fm.List(ctx, query, fields, orderBy, pageSize)
}
