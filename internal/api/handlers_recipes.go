package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"cookit/internal/domain"
)

type recipeListResponse struct {
	Recipes    []domain.Recipe `json:"recipes"`
	NextCursor domain.Cursor   `json:"nextCursor,omitempty"`
}

func (s *Server) handleListRecipes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	category, err := domain.ParseCategory(q.Get("category"))
	if err != nil {
		s.fail(w, r, err)
		return
	}

	limit := 0
	if raw := q.Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			s.fail(w, r, fmt.Errorf("%w: invalid limit %q", errBadRequest, raw))
			return
		}
	}

	page, err := s.recipes.ListPage(r.Context(), category, domain.Cursor(q.Get("cursor")), limit)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	resp := recipeListResponse{Recipes: page.Recipes, NextCursor: page.Last}
	if resp.Recipes == nil {
		resp.Recipes = []domain.Recipe{}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetRecipe(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	detail, err := s.recipes.GetRecipe(r.Context(), id, userID(r.Context()))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (s *Server) handleCreateRecipe(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())

	var input domain.Recipe
	if err := decodeJSON(w, r, &input); err != nil {
		s.fail(w, r, err)
		return
	}

	recipe, err := s.recipes.CreateRecipe(r.Context(), *user, input)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, recipe)
}

func (s *Server) handleRecordView(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := s.recipes.RecordView(r.Context(), id, userID(r.Context())); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListFavorites(w http.ResponseWriter, r *http.Request) {
	recipes, err := s.recipes.ListFavorites(r.Context(), userID(r.Context()))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if recipes == nil {
		recipes = []domain.Recipe{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"recipes": recipes})
}

func (s *Server) handleSaveRecipe(w http.ResponseWriter, r *http.Request) {
	recipeID := mux.Vars(r)["recipeID"]

	user, _ := userFromContext(r.Context())

	if err := s.recipes.SaveRecipe(r.Context(), *user, recipeID); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleUnsaveRecipe(w http.ResponseWriter, r *http.Request) {
	recipeID := mux.Vars(r)["recipeID"]

	if err := s.recipes.UnsaveRecipe(r.Context(), userID(r.Context()), recipeID); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"sections": s.home.Home(r.Context())})
}
