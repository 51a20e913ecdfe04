package ay32

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/laixingyu123/ay32-client-go/internal/validate"
)

// MaxUploadSize is the largest file content accepted by UploadFile.
const MaxUploadSize = 10 << 20

// UploadResult describes a stored file.
type UploadResult struct {
	FileID string `json:"fileId"`
	URL    string `json:"url"`
	Size   int64  `json:"size"`
}

// UploadFileParams are the parameters for UploadFile. Content travels
// base64-encoded inside the JSON body.
type UploadFileParams struct {
	FileName    string `json:"file_name" validate:"required,max=255"`
	Content     []byte `json:"content" validate:"required,max=10485760"`
	ContentType string `json:"content_type,omitempty" validate:"omitempty,max=128"`
}

// UploadFile stores a file on the backend and returns its handle.
func (c *Client) UploadFile(ctx context.Context, params UploadFileParams) (*UploadResult, error) {
	if err := validate.Struct(params); err != nil {
		return nil, wrapError(err)
	}

	var out UploadResult
	if err := c.api.Do(ctx, http.MethodPost, "/api/file/upload", params, &out); err != nil {
		return nil, wrapError(err)
	}
	return &out, nil
}

// UploadFileFromPath reads a local file and uploads it, deriving the
// file name and content type from the path.
func (c *Client) UploadFileFromPath(ctx context.Context, path string) (*UploadResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return c.UploadFile(ctx, UploadFileParams{
		FileName:    filepath.Base(path),
		Content:     data,
		ContentType: mime.TypeByExtension(filepath.Ext(path)),
	})
}
