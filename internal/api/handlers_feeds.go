package api

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"cookit/internal/domain"
	"cookit/internal/feed"
)

type createFeedRequest struct {
	Mode      string `json:"mode"`
	Category  string `json:"category"`
	PageSize  int    `json:"page_size"`
	SimilarTo string `json:"similar_to"`
}

// nextPageRequest keeps the feed's current filter when Category is omitted.
type nextPageRequest struct {
	Category *string `json:"category"`
}

type feedResponse struct {
	ID       string          `json:"id"`
	Mode     feed.Mode       `json:"mode"`
	Category domain.Category `json:"category,omitempty"`
	Cursor   domain.Cursor   `json:"cursor,omitempty"`
	State    string          `json:"state"`
	Recipes  []domain.Recipe `json:"recipes"`
	// Status reports the first page load done on creation.
	Status feed.Status `json:"status,omitempty"`
}

type pageResponse struct {
	Status  feed.Status     `json:"status"`
	Recipes []domain.Recipe `json:"recipes"`
	Total   int             `json:"total"`
}

const maxFeedPageSize = 50

func (s *Server) handleCreateFeed(w http.ResponseWriter, r *http.Request) {
	var req createFeedRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	mode, err := feed.ParseMode(req.Mode)
	if err != nil {
		s.fail(w, r, fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}
	category, err := domain.ParseCategory(req.Category)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if req.PageSize < 0 || req.PageSize > maxFeedPageSize {
		s.fail(w, r, fmt.Errorf("%w: page_size must be between 1 and %d", errBadRequest, maxFeedPageSize))
		return
	}

	opts := []feed.Option{
		feed.WithMode(mode),
		feed.WithLogger(s.logger),
	}
	if s.recorder != nil {
		opts = append(opts, feed.WithRecorder(s.recorder))
	}

	var f *feed.Feed
	if req.SimilarTo != "" {
		seed, err := s.recipes.GetRecipe(r.Context(), req.SimilarTo, "")
		if err != nil {
			s.fail(w, r, err)
			return
		}
		opts = append(opts, feed.WithPageSize(pageSizeOr(req.PageSize, s.cfg.SimilarPageSize)))
		f = feed.NewSimilar(s.lister, seed.Recipe, opts...)
	} else {
		opts = append(opts, feed.WithPageSize(pageSizeOr(req.PageSize, s.cfg.PageSize)))
		f = feed.New(s.lister, opts...)
	}

	id := s.feeds.Add(f)

	page := f.LoadNextPage(r.Context(), category)
	if page.Status == feed.StatusFailed {
		s.logger.Warn("first page load failed", "feed_id", id, "error", page.Err)
	}

	resp := newFeedResponse(id, f.Snapshot())
	resp.Status = page.Status
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleGetFeed(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	f, err := s.feeds.Get(id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newFeedResponse(id, f.Snapshot()))
}

func (s *Server) handleNextPage(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req nextPageRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	f, err := s.feeds.Get(id)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	var category domain.Category
	if req.Category == nil {
		category = f.Snapshot().Filter
	} else if category, err = domain.ParseCategory(*req.Category); err != nil {
		s.fail(w, r, err)
		return
	}

	page := f.LoadNextPage(r.Context(), category)
	switch page.Status {
	case feed.StatusLoaded:
		recipes := page.Recipes
		if recipes == nil {
			recipes = []domain.Recipe{}
		}
		writeJSON(w, http.StatusOK, pageResponse{
			Status:  page.Status,
			Recipes: recipes,
			Total:   len(f.Snapshot().Recipes),
		})
	case feed.StatusBusy:
		writeError(w, http.StatusConflict, "busy", "a page is already loading")
	case feed.StatusClosed:
		s.fail(w, r, domain.ErrFeedNotFound)
	default:
		if r.Context().Err() != nil {
			s.logger.Debug("client gave up on page load", "feed_id", id)
			return
		}
		s.logger.Error("feed page load failed", "feed_id", id, "error", page.Err)
		writeError(w, http.StatusBadGateway, "feed_failed", "failed to load recipes")
	}
}

func (s *Server) handleDeleteFeed(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := s.feeds.Delete(id); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func newFeedResponse(id string, snap feed.Snapshot) feedResponse {
	recipes := snap.Recipes
	if recipes == nil {
		recipes = []domain.Recipe{}
	}
	return feedResponse{
		ID:       id,
		Mode:     snap.Mode,
		Category: snap.Filter,
		Cursor:   snap.Cursor,
		State:    snap.State.String(),
		Recipes:  recipes,
	}
}

func pageSizeOr(requested, fallback int) int {
	if requested > 0 {
		return requested
	}
	return fallback
}
