package drive

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/drive/v3"
)

const folderMimeType = "application/vnd.google-apps.folder"

// FolderManager handles folder operations in Google Drive
type FolderManager struct {
	client *Client
}

// NewFolderManager creates a new folder manager
func NewFolderManager(client *Client) *FolderManager {
	return &FolderManager{client: client}
}

// GetOrCreate returns the ID of a folder, creating it if it doesn't exist
func (fm *FolderManager) GetOrCreate(ctx context.Context, name string, parentID string) (string, error) {
	// If no parent is specified, use "root" for the user's main Drive folder
	if parentID == "" {
		parentID = "root"
	}

	query := fmt.Sprintf("name='%s' and mimeType='%s' and trashed=false and '%s' in parents",
		escapeQuery(name), folderMimeType, escapeQuery(parentID))

	fileList, err := fm.client.Service().Files.List().
		Q(query).
		Fields("files(id, name)").
		Context(ctx).
		Do()
	if err != nil {
		return "", err
	}

	if len(fileList.Files) > 0 {
		return fileList.Files[0].Id, nil
	}

	fileMetadata := &drive.File{
		Name:     name,
		MimeType: folderMimeType,
		Parents:  []string{parentID},
	}

	file, err := fm.client.Service().Files.Create(fileMetadata).
		Fields("id").
		Context(ctx).
		Do()
	if err != nil {
		return "", err
	}

	return file.Id, nil
}

// escapeQuery escapes a literal for use inside a Drive search query
func escapeQuery(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `'`, `\'`)
}
