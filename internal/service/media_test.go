package service

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"cookit/internal/domain"
	"cookit/internal/service/mocks"
)

type MediaServiceTestSuite struct {
	suite.Suite
	ctrl  *gomock.Controller
	store *mocks.MockObjectStore

	service *MediaService
}

func (s *MediaServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = mocks.NewMockObjectStore(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.service = NewMediaService(s.store, http.DefaultClient, MediaConfig{
		MaxHeight:      50,
		JPEGQuality:    80,
		MaxUploadBytes: 1 << 20,
	}, logger)
	s.service.newID = func() string { return "img-1" }
}

func (s *MediaServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestMediaServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MediaServiceTestSuite))
}

func pngImage(w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 100, A: 255})
		}
	}
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

// pngHeaderOnly returns a tiny PNG whose header claims w x h pixels. Decoding
// the header succeeds; decoding the pixels would allocate the full image.
func pngHeaderOnly(w, h uint32) []byte {
	data := pngImage(1, 1)
	// signature(8) | length(4) | "IHDR"(4) | width(4) | height(4) | ... | crc(4)
	binary.BigEndian.PutUint32(data[16:20], w)
	binary.BigEndian.PutUint32(data[20:24], h)
	binary.BigEndian.PutUint32(data[29:33], crc32.ChecksumIEEE(data[12:29]))
	return data
}

// expectPut captures the uploaded JPEG and returns its dimensions through the
// returned function.
func (s *MediaServiceTestSuite) expectPut(ctx context.Context) func() image.Config {
	var body []byte
	s.store.EXPECT().Put(ctx, "recipes/img-1.jpg", "image/jpeg", gomock.Any()).DoAndReturn(
		func(_ context.Context, key, _ string, r io.Reader) (string, error) {
			body, _ = io.ReadAll(r)
			return "https://bucket.s3.us-east-1.amazonaws.com/" + key, nil
		},
	)
	return func() image.Config {
		cfg, err := jpeg.DecodeConfig(bytes.NewReader(body))
		s.Require().NoError(err)
		return cfg
	}
}

func (s *MediaServiceTestSuite) TestUploadImage_Downscales() {
	ctx := context.Background()
	dims := s.expectPut(ctx)

	img, err := s.service.UploadImage(ctx, bytes.NewReader(pngImage(200, 100)))

	s.Require().NoError(err)
	s.Equal("recipes/img-1.jpg", img.Key)
	s.Equal("https://bucket.s3.us-east-1.amazonaws.com/recipes/img-1.jpg", img.URL)

	cfg := dims()
	s.Equal(50, cfg.Height)
	s.Equal(100, cfg.Width)
}

func (s *MediaServiceTestSuite) TestUploadImage_SmallImageKeepsSize() {
	ctx := context.Background()
	dims := s.expectPut(ctx)

	_, err := s.service.UploadImage(ctx, bytes.NewReader(pngImage(30, 20)))

	s.Require().NoError(err)
	cfg := dims()
	s.Equal(30, cfg.Width)
	s.Equal(20, cfg.Height)
}

func (s *MediaServiceTestSuite) TestUploadImage_Unsupported() {
	_, err := s.service.UploadImage(context.Background(), strings.NewReader("GIF89a not really"))
	s.ErrorIs(err, domain.ErrUnsupportedImage)
}

func (s *MediaServiceTestSuite) TestUploadImage_TooLarge() {
	s.service.cfg.MaxUploadBytes = 10

	_, err := s.service.UploadImage(context.Background(), bytes.NewReader(pngImage(10, 10)))
	s.ErrorIs(err, domain.ErrImageTooLarge)
}

func (s *MediaServiceTestSuite) TestUploadImage_RejectsHugeDimensions() {
	data := pngHeaderOnly(12000, 12000)
	s.Require().Less(len(data), 1024)

	_, err := s.service.UploadImage(context.Background(), bytes.NewReader(data))

	s.ErrorIs(err, domain.ErrImageTooLarge)
}

func (s *MediaServiceTestSuite) TestUploadImage_PixelBudget() {
	s.service.cfg.MaxPixels = 20 * 20

	_, err := s.service.UploadImage(context.Background(), bytes.NewReader(pngImage(30, 20)))
	s.ErrorIs(err, domain.ErrImageTooLarge)
}

func (s *MediaServiceTestSuite) TestImportImage_RejectsHugeDimensions() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(pngHeaderOnly(20000, 20000))
	}))
	defer srv.Close()

	_, err := s.service.ImportImage(context.Background(), srv.URL)
	s.ErrorIs(err, domain.ErrImageTooLarge)
}

func (s *MediaServiceTestSuite) TestUploadImage_StoreError() {
	ctx := context.Background()
	s.store.EXPECT().Put(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("denied"))

	_, err := s.service.UploadImage(ctx, bytes.NewReader(pngImage(10, 10)))
	s.ErrorContains(err, "store image")
}

func (s *MediaServiceTestSuite) TestImportImage() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(pngImage(80, 80))
	}))
	defer srv.Close()

	// The test server is on loopback, so the suite uses http.DefaultClient
	// instead of the SSRF-safe client.
	ctx := context.Background()
	dims := s.expectPut(ctx)

	img, err := s.service.ImportImage(ctx, srv.URL)

	s.Require().NoError(err)
	s.Equal("recipes/img-1.jpg", img.Key)
	s.Equal(50, dims().Height)
}

func (s *MediaServiceTestSuite) TestImportImage_BadStatus() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := s.service.ImportImage(context.Background(), srv.URL)
	s.ErrorIs(err, domain.ErrNoData)
}

func (s *MediaServiceTestSuite) TestImportImage_RejectsScheme() {
	_, err := s.service.ImportImage(context.Background(), "file:///etc/passwd")
	s.ErrorIs(err, domain.ErrUnsupportedImage)
}

func (s *MediaServiceTestSuite) TestDeleteImage() {
	ctx := context.Background()
	s.store.EXPECT().Delete(ctx, "recipes/img-1.jpg").Return(nil)

	s.NoError(s.service.DeleteImage(ctx, "recipes/img-1.jpg"))
	s.ErrorIs(s.service.DeleteImage(ctx, "avatars/x.jpg"), domain.ErrInvalidImageKey)
	s.ErrorIs(s.service.DeleteImage(ctx, "recipes/../secrets"), domain.ErrInvalidImageKey)
}
