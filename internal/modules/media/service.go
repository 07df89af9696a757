package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// ErrUpload wraps any provider-side upload failure.
var ErrUpload = errors.New("media upload failed")

// Asset is a stored media file.
type Asset struct {
	PublicID string `json:"publicId"`
	URL      string `json:"url"`
}

// Service stores and removes media assets.
type Service interface {
	Upload(ctx context.Context, file io.Reader, filename string) (*Asset, error)
	Remove(ctx context.Context, publicID string) error
}

// ── Cloudinary-backed implementation ─────────────────────────────────────────

type cloudinaryService struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryService builds a Service from a CLOUDINARY_URL style DSN.
func NewCloudinaryService(cloudinaryURL, folder string) (Service, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return &cloudinaryService{cld: cld, folder: folder}, nil
}

func (s *cloudinaryService) Upload(ctx context.Context, file io.Reader, filename string) (*Asset, error) {
	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{Folder: s.folder})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUpload, err)
	}
	return &Asset{PublicID: result.PublicID, URL: result.SecureURL}, nil
}

func (s *cloudinaryService) Remove(ctx context.Context, publicID string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("%w: %s", ErrUpload, err)
	}
	return nil
}

// ── Dev placeholder implementation ───────────────────────────────────────────

type devService struct{}

// NewDevService returns a Service that fabricates placeholder URLs. Used
// when no Cloudinary credentials are configured.
func NewDevService() Service {
	return devService{}
}

func (devService) Upload(ctx context.Context, file io.Reader, filename string) (*Asset, error) {
	// Drain so multipart readers finish cleanly.
	if _, err := io.Copy(io.Discard, file); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUpload, err)
	}
	id := "dev/" + uuid.New().String()
	ext := ""
	if i := strings.LastIndexByte(filename, '.'); i >= 0 {
		ext = filename[i:]
	}
	return &Asset{
		PublicID: id,
		URL:      "https://media.local/" + id + ext,
	}, nil
}

func (devService) Remove(ctx context.Context, publicID string) error { return nil }
