package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"dacosta-backend/internal/domains/upload"
	"dacosta-backend/internal/infrastructure/media"
	"dacosta-backend/internal/infrastructure/storage"
	"dacosta-backend/internal/shared/utils"
	"dacosta-backend/pkg/logger"
)

// MaxAudioSize caps audio uploads at 50MB; full live sets are linked, not
// hosted.
const MaxAudioSize = 50 * 1024 * 1024

type uploadService struct {
	storage   *storage.MinIOStorage
	processor *storage.ImageProcessor
	prober    *media.Prober
}

func NewUploadService(st *storage.MinIOStorage, processor *storage.ImageProcessor, prober *media.Prober) upload.Service {
	return &uploadService{
		storage:   st,
		processor: processor,
		prober:    prober,
	}
}

// UploadImage stores the original plus the resize variants. Keys look
// like artists/<uuid>-<slugged-name>/large.jpg so one prefix delete
// removes the whole set.
func (s *uploadService) UploadImage(ctx context.Context, folder, filename string, data []byte) (*upload.ImageResult, error) {
	if len(data) == 0 {
		return nil, upload.ErrEmptyFile
	}

	if err := s.processor.ValidateImage(data); err != nil {
		if int64(len(data)) > s.processor.MaxSize {
			return nil, upload.ErrTooLarge
		}
		return nil, upload.ErrInvalidImage
	}

	variants, err := s.processor.ProcessImage(data)
	if err != nil {
		return nil, upload.ErrInvalidImage
	}

	prefix := fmt.Sprintf("%s/%s-%s", folder, uuid.New().String(), baseSlug(filename))

	urls := map[string]string{}

	originalKey := prefix + "/original" + strings.ToLower(filepath.Ext(filename))
	originalURL, err := s.storage.Upload(ctx, originalKey, data, contentTypeFor(filename))
	if err != nil {
		return nil, fmt.Errorf("upload original: %w", err)
	}
	urls["original"] = originalURL

	for name, body := range variants {
		key := fmt.Sprintf("%s/%s.jpg", prefix, name)
		url, err := s.storage.Upload(ctx, key, body, "image/jpeg")
		if err != nil {
			return nil, fmt.Errorf("upload %s variant: %w", name, err)
		}
		urls[name] = url
	}

	logger.Info("Image uploaded", map[string]interface{}{
		"prefix":   prefix,
		"variants": len(urls),
	})

	return &upload.ImageResult{URLs: urls}, nil
}

// UploadAudio stores the file and probes its playback length. Probe
// failures are not fatal: the admin can type the duration by hand.
func (s *uploadService) UploadAudio(ctx context.Context, folder, filename string, data []byte) (*upload.AudioResult, error) {
	if len(data) == 0 {
		return nil, upload.ErrEmptyFile
	}
	if len(data) > MaxAudioSize {
		return nil, upload.ErrTooLarge
	}
	if !s.prober.CanProbe(filename) {
		return nil, upload.ErrInvalidAudio
	}

	duration, err := s.prober.Duration(filename, data)
	if err != nil {
		logger.Error("Audio probe failed", err)
		duration = 0
	}

	key := fmt.Sprintf("%s/%s-%s%s",
		folder, uuid.New().String(), baseSlug(filename), strings.ToLower(filepath.Ext(filename)))

	url, err := s.storage.Upload(ctx, key, data, contentTypeFor(filename))
	if err != nil {
		return nil, fmt.Errorf("upload audio: %w", err)
	}

	logger.Info("Audio uploaded", map[string]interface{}{
		"key":      key,
		"duration": duration,
	})

	return &upload.AudioResult{URL: url, Duration: duration}, nil
}

// baseSlug turns "Final Mix (v2).mp3" into "final-mix-v2".
func baseSlug(filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	slug := utils.GenerateSlug(base)
	if slug == "" {
		slug = "file"
	}
	return slug
}

func contentTypeFor(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".mp3":
		return "audio/mpeg"
	case ".flac":
		return "audio/flac"
	case ".aac", ".m4a":
		return "audio/aac"
	case ".ogg", ".opus":
		return "audio/ogg"
	case ".wav":
		return "audio/wav"
	default:
		return "application/octet-stream"
	}
}
