package object

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"path"

	"github.com/google/uuid"

	"resume-analytics/internal/shared/util"
)

// ObjectStore defines the contract for saving and retrieving binary objects.
// Uploaded resumes go through Save; derived artifacts such as rendered
// reports are written with SaveWithKey under a caller-chosen key.
type ObjectStore interface {
	Save(ctx context.Context, ownerID string, fileName string, r io.Reader) (storageKey string, sizeBytes int64, mimeType string, err error)
	SaveWithKey(ctx context.Context, storageKey string, contentType string, r io.Reader) (int64, error)
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
}

// Sniff reads up to 512 bytes to detect the content type and returns a
// reader that replays them ahead of the rest of r.
func Sniff(r io.Reader) (io.Reader, string, error) {
	var head [512]byte
	n, err := io.ReadFull(r, head[:])
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, "", fmt.Errorf("read sniff: %w", err)
	}
	buf := append([]byte(nil), head[:n]...)
	return io.MultiReader(bytes.NewReader(buf), r), http.DetectContentType(buf), nil
}

const (
	resumePrefix = "resumes"
	reportPrefix = "reports"
)

// ResumeKey allocates a fresh key for an uploaded resume owned by ownerID.
// The original file name is kept as a suffix so downloads stay readable.
func ResumeKey(ownerID, fileName string) (string, error) {
	name, err := util.SanitizeFileName(fileName)
	if err != nil {
		return "", fmt.Errorf("sanitize file name: %w", err)
	}
	return path.Join(resumePrefix, util.HashUserKey(ownerID), uuid.NewString()+"_"+name), nil
}

// ReportKey is the storage key of a rendered analysis report.
func ReportKey(ownerKey, analysisID string) string {
	return path.Join(reportPrefix, ownerKey, analysisID+".docx")
}
