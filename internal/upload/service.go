// AngelaMos | 2026
// service.go

package upload

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"mime/multipart"
	"path"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/cricketacademy/academy-api/internal/core"
)

var (
	errEmptyFile  = core.ValidationError("empty file")
	errNotMedia   = core.ValidationError("only image and video files are allowed")
	errFileTooBig = core.ValidationError("file too large")
)

var knownExtensions = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/webp":      ".webp",
	"image/gif":       ".gif",
	"image/svg+xml":   ".svg",
	"video/mp4":       ".mp4",
	"video/webm":      ".webm",
	"video/quicktime": ".mov",
}

type Service struct {
	store   Store
	fetcher *Fetcher
	maxSize int64
	logger  *slog.Logger
}

func NewService(store Store, fetcher *Fetcher, maxSize int64, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:   store,
		fetcher: fetcher,
		maxSize: maxSize,
		logger:  logger.With("component", "upload"),
	}
}

func mediaType(contentType string) string {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(contentType))
	}
	return mt
}

func isMedia(mt string) bool {
	return strings.HasPrefix(mt, "image/") || strings.HasPrefix(mt, "video/")
}

// sniff falls back to content detection when the declared type is
// missing or generic.
func sniff(declared string, data []byte) string {
	mt := mediaType(declared)
	if mt == "" || mt == "application/octet-stream" {
		mt = mediaType(mimetype.Detect(data).String())
	}
	return mt
}

func extOf(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "." || strings.ContainsAny(ext, `/\`) {
		return ""
	}
	return ext
}

func extForType(mt string) string {
	if ext, ok := knownExtensions[mt]; ok {
		return ext
	}
	if exts, err := mime.ExtensionsByType(mt); err == nil && len(exts) > 0 {
		return exts[0]
	}
	return ""
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ".bin"
}

func (s *Service) save(ctx context.Context, ext string, data []byte, source string) (*Response, error) {
	name := uuid.NewString() + ext
	if err := s.store.Save(name, data); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "file stored",
		"name", name,
		"bytes", len(data),
		"source", source,
	)
	return &Response{URL: PublicPrefix + name}, nil
}

func (s *Service) SaveMultipart(ctx context.Context, file multipart.File, header *multipart.FileHeader) (*Response, error) {
	if header.Size == 0 {
		return nil, errEmptyFile
	}
	if header.Size > s.maxSize {
		return nil, errFileTooBig
	}

	data, err := io.ReadAll(io.LimitReader(file, s.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if len(data) == 0 {
		return nil, errEmptyFile
	}
	if int64(len(data)) > s.maxSize {
		return nil, errFileTooBig
	}

	mt := sniff(header.Header.Get("Content-Type"), data)
	if !isMedia(mt) {
		return nil, errNotMedia
	}

	return s.save(ctx, firstNonEmpty(extOf(header.Filename), extForType(mt)), data, "multipart")
}

// SaveFromURL returns already-stored paths untouched.
func (s *Service) SaveFromURL(ctx context.Context, req FromURLRequest) (*Response, error) {
	raw := strings.TrimSpace(req.URL)
	if strings.HasPrefix(raw, PublicPrefix) {
		return &Response{URL: raw}, nil
	}

	target, err := s.fetcher.Check(raw)
	if err != nil {
		return nil, err
	}
	dl, err := s.fetcher.Fetch(ctx, target)
	if err != nil {
		s.logger.WarnContext(ctx, "url fetch failed", "host", target.Hostname(), "error", err)
		return nil, err
	}

	mt := sniff(dl.ContentType, dl.Data)
	if !isMedia(mt) {
		return nil, core.ValidationError("only image and video content types are allowed; received " + mt)
	}

	ext := extForType(mt)
	if ext == "" {
		ext = extOf(req.Filename)
	}
	if ext == "" {
		ext = extOf(path.Base(target.Path))
	}
	return s.save(ctx, firstNonEmpty(ext), dl.Data, "url")
}
