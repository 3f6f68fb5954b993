package backend

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"flatacuties/core/storage"
	"flatacuties/feature/characters/models"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

var (
	// ErrReadOnly is returned for writes while the backend is read-only.
	ErrReadOnly = errors.New("backend is read-only")
	// ErrImagesDisabled is returned when no image storage is configured.
	ErrImagesDisabled = errors.New("images are disabled")
	// ErrImageNotFound is returned when an image key does not exist.
	ErrImageNotFound = errors.New("image not found")
)

// Service implements the backend operations.
type Service struct {
	repo   *Repository
	images storage.Client
	bucket string
	cfg    Config
	logger *zap.Logger
}

// NewService creates a backend service. images may be nil when image serving is disabled.
func NewService(repo *Repository, images storage.Client, bucket string, cfg Config, logger *zap.Logger) *Service {
	if !cfg.ImagesEnabled {
		images = nil
	}
	return &Service{repo: repo, images: images, bucket: bucket, cfg: cfg, logger: logger}
}

// ReadOnly reports whether writes are rejected.
func (s *Service) ReadOnly() bool {
	return s.cfg.ReadOnly
}

// Prepare migrates the schema and applies the seed file when configured.
func (s *Service) Prepare(ctx context.Context) error {
	if err := s.repo.Migrate(ctx); err != nil {
		return err
	}
	if s.cfg.SeedFile == "" {
		return nil
	}

	records, err := LoadSeed(s.cfg.SeedFile)
	if err != nil {
		return err
	}
	n, err := s.repo.Seed(ctx, records)
	if err != nil {
		return err
	}
	if n > 0 {
		s.logger.Info("Seeded characters", zap.Int("count", n), zap.String("file", s.cfg.SeedFile))
	}
	return nil
}

// List returns every character.
func (s *Service) List(ctx context.Context) ([]models.Character, error) {
	return s.repo.List(ctx)
}

// Get returns one character.
func (s *Service) Get(ctx context.Context, id int) (models.Character, error) {
	return s.repo.Get(ctx, id)
}

// UpdateVotes stores a new vote count.
func (s *Service) UpdateVotes(ctx context.Context, id int, votes int) (models.Character, error) {
	if s.cfg.ReadOnly {
		return models.Character{}, ErrReadOnly
	}
	return s.repo.UpdateVotes(ctx, id, votes)
}

// Create stores a new character.
func (s *Service) Create(ctx context.Context, rec models.Character) (models.Character, error) {
	if s.cfg.ReadOnly {
		return models.Character{}, ErrReadOnly
	}
	return s.repo.Create(ctx, rec)
}

func (s *Service) imageKey(name string) (string, error) {
	name = strings.TrimPrefix(path.Clean("/"+name), "/")
	if name == "" {
		return "", ErrImageNotFound
	}
	return path.Join(s.cfg.ImagesPrefix, name), nil
}

// Image opens the image stored under name.
func (s *Service) Image(ctx context.Context, name string) (io.ReadCloser, minio.ObjectInfo, error) {
	if s.images == nil {
		return nil, minio.ObjectInfo{}, ErrImagesDisabled
	}
	key, err := s.imageKey(name)
	if err != nil {
		return nil, minio.ObjectInfo{}, err
	}

	info, err := s.images.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, minio.ObjectInfo{}, ErrImageNotFound
		}
		return nil, minio.ObjectInfo{}, fmt.Errorf("failed to stat image %s: %w", key, err)
	}

	obj, err := s.images.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, minio.ObjectInfo{}, fmt.Errorf("failed to get image %s: %w", key, err)
	}
	return obj, info, nil
}

// PutImage uploads data under name and returns the object key.
func (s *Service) PutImage(ctx context.Context, name string, contentType string, data []byte) (string, error) {
	if s.images == nil {
		return "", ErrImagesDisabled
	}
	if s.cfg.ReadOnly {
		return "", ErrReadOnly
	}
	key, err := s.imageKey(name)
	if err != nil {
		return "", err
	}

	_, err = s.images.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image %s: %w", key, err)
	}
	return key, nil
}
