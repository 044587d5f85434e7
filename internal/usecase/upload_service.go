package usecase

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/kwucouncil/council-api/internal/domain/storage"
	"github.com/kwucouncil/council-api/internal/platform/resilience"
)

const (
	uploadMissingFileMessage = "파일이 없습니다."
	uploadFailedMessage      = "Storage 업로드 실패"
	uploadPrefix             = "images/"
)

// UploadService stores announcement images in object storage.
type UploadService struct {
	uploader storage.Uploader
	now      func() time.Time
}

func NewUploadService(uploader storage.Uploader) *UploadService {
	return &UploadService{uploader: uploader, now: time.Now}
}

// UploadFile is one multipart file. A nil Body means the field was absent.
type UploadFile struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

type UploadResult struct {
	URL  string
	Path string
}

func (s *UploadService) Upload(ctx context.Context, file UploadFile) (UploadResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UploadService.Upload")
	defer span.End()

	if file.Body == nil {
		return UploadResult{}, UserError(ErrInvalidInput, uploadMissingFileMessage)
	}

	key := fmt.Sprintf("%s%d_%s", uploadPrefix, s.now().UnixMilli(), sanitizeFileName(file.Name))
	url, err := s.uploader.Upload(ctx, storage.Object{
		Key:         key,
		ContentType: file.ContentType,
		Size:        file.Size,
		Body:        file.Body,
	})
	if err != nil {
		kind := error(err)
		if crerr.Is(err, resilience.ErrCircuitOpen) {
			kind = crerr.Mark(err, ErrDependencyUnavailable)
		}
		return UploadResult{}, crerr.WithHint(crerr.Wrap(kind, "upload object"), uploadFailedMessage)
	}

	return UploadResult{URL: url, Path: key}, nil
}

// sanitizeFileName keeps the base name and replaces anything outside
// [A-Za-z0-9._-] with an underscore.
func sanitizeFileName(name string) string {
	name = path.Base(strings.ReplaceAll(strings.TrimSpace(name), `\`, "/"))
	if name == "." || name == "/" || name == "" {
		return "file"
	}

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
