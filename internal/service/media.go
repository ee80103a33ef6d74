package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/nfnt/resize"

	"cookit/internal/domain"
	"cookit/internal/security"
)

// DefaultMaxPixels bounds the decoded size of an image, whatever its
// compressed size.
const DefaultMaxPixels = 40_000_000

type MediaConfig struct {
	MaxHeight      uint
	JPEGQuality    int
	MaxUploadBytes int64
	MaxPixels      int64
	KeyPrefix      string
}

// Image is a stored recipe image.
type Image struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

type MediaService struct {
	store  ObjectStore
	client *http.Client
	cfg    MediaConfig
	logger *slog.Logger
	newID  func() string
}

// NewMediaService builds the service. client is used for imports by URL
// and should refuse internal addresses.
func NewMediaService(store ObjectStore, client *http.Client, cfg MediaConfig, logger *slog.Logger) *MediaService {
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = "recipes"
	}
	if cfg.MaxPixels <= 0 {
		cfg.MaxPixels = DefaultMaxPixels
	}
	return &MediaService{
		store:  store,
		client: client,
		cfg:    cfg,
		logger: logger.With("service", "media"),
		newID:  uuid.NewString,
	}
}

// UploadImage decodes a JPEG or PNG, scales it down to the configured
// height and stores it as JPEG.
func (s *MediaService) UploadImage(ctx context.Context, r io.Reader) (*Image, error) {
	data, err := readLimited(r, s.cfg.MaxUploadBytes)
	if err != nil {
		return nil, err
	}

	// The header is checked first so oversized images are never allocated.
	header, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUnsupportedImage, err)
	}
	if pixels := int64(header.Width) * int64(header.Height); pixels > s.cfg.MaxPixels {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels",
			domain.ErrImageTooLarge, header.Width, header.Height, s.cfg.MaxPixels)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUnsupportedImage, err)
	}

	img = s.downscale(img)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: s.cfg.JPEGQuality}); err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}

	key := fmt.Sprintf("%s/%s.jpg", s.cfg.KeyPrefix, s.newID())
	url, err := s.store.Put(ctx, key, "image/jpeg", &buf)
	if err != nil {
		return nil, fmt.Errorf("store image: %w", err)
	}

	bounds := img.Bounds()
	s.logger.Info("image uploaded",
		"key", key,
		"source_format", format,
		"width", bounds.Dx(),
		"height", bounds.Dy(),
	)
	return &Image{Key: key, URL: url}, nil
}

// ImportImage downloads an image from a public URL and uploads it.
func (s *MediaService) ImportImage(ctx context.Context, rawURL string) (*Image, error) {
	if err := security.ValidateURL(rawURL); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUnsupportedImage, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "image/jpeg, image/png")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch image: %w: unexpected status %d", domain.ErrNoData, resp.StatusCode)
	}

	return s.UploadImage(ctx, resp.Body)
}

func (s *MediaService) DeleteImage(ctx context.Context, key string) error {
	if !strings.HasPrefix(key, s.cfg.KeyPrefix+"/") || strings.Contains(key, "..") {
		return fmt.Errorf("%w: %s", domain.ErrInvalidImageKey, key)
	}
	if err := s.store.Delete(ctx, key); err != nil {
		return fmt.Errorf("delete image: %w", err)
	}
	return nil
}

// downscale keeps the aspect ratio. Images already within the limit are
// returned unchanged.
func (s *MediaService) downscale(img image.Image) image.Image {
	if s.cfg.MaxHeight == 0 || uint(img.Bounds().Dy()) <= s.cfg.MaxHeight {
		return img
	}
	return resize.Resize(0, s.cfg.MaxHeight, img, resize.Lanczos3)
}

func readLimited(r io.Reader, limit int64) ([]byte, error) {
	if limit <= 0 {
		return io.ReadAll(r)
	}
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: over %d bytes", domain.ErrImageTooLarge, limit)
	}
	return data, nil
}
