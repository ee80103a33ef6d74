package api

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/gorilla/mux"

	"cookit/internal/domain"
)

type importImageRequest struct {
	URL string `json:"url"`
}

// handleUploadImage accepts either a raw image body or a multipart form with
// an "image" file field.
func (s *Server) handleUploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	body, closeBody, err := imageBody(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	defer closeBody()

	img, err := s.media.UploadImage(r.Context(), body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			err = fmt.Errorf("%w: %w", domain.ErrImageTooLarge, err)
		}
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, img)
}

func imageBody(r *http.Request) (io.Reader, func(), error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		return r.Body, func() {}, nil
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, nil, fmt.Errorf("%w: %w", domain.ErrImageTooLarge, err)
		}
		return nil, nil, fmt.Errorf("%w: missing image field: %w", errBadRequest, err)
	}
	return file, func() { file.Close() }, nil
}

func (s *Server) handleImportImage(w http.ResponseWriter, r *http.Request) {
	var req importImageRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	if req.URL == "" {
		s.fail(w, r, fmt.Errorf("%w: url is required", errBadRequest))
		return
	}

	img, err := s.media.ImportImage(r.Context(), req.URL)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, img)
}

func (s *Server) handleDeleteImage(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	if err := s.media.DeleteImage(r.Context(), key); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
