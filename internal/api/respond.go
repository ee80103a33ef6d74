package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"cookit/internal/domain"
)

var errBadRequest = errors.New("bad request")

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorBody{Error: message, Code: code})
}

// errorStatus maps an error to the HTTP status, error code and the message
// safe to show to clients.
func errorStatus(err error) (int, string, string) {
	switch {
	case errors.Is(err, domain.ErrRecipeNotFound),
		errors.Is(err, domain.ErrFeedNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "not_found", err.Error()
	case errors.Is(err, domain.ErrInvalidRecipe),
		errors.Is(err, domain.ErrInvalidCategory),
		errors.Is(err, domain.ErrNoEmailOrPassword),
		errors.Is(err, domain.ErrUnsupportedImage),
		errors.Is(err, domain.ErrInvalidImageKey),
		errors.Is(err, errBadRequest):
		return http.StatusBadRequest, "invalid_request", err.Error()
	case errors.Is(err, domain.ErrImageTooLarge):
		return http.StatusRequestEntityTooLarge, "too_large", err.Error()
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, "unauthenticated", "authentication required"
	case errors.Is(err, domain.ErrSignInFailed),
		errors.Is(err, domain.ErrGoogleSignInFailed),
		errors.Is(err, domain.ErrAppleSignInFailed):
		return http.StatusUnauthorized, "sign_in_failed", rootSentinel(err).Error()
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "timeout", "upstream timeout"
	default:
		return http.StatusBadGateway, "upstream_failure", "upstream service failed"
	}
}

// rootSentinel hides provider details behind the sign-in sentinel.
func rootSentinel(err error) error {
	for _, s := range []error{domain.ErrGoogleSignInFailed, domain.ErrAppleSignInFailed, domain.ErrSignInFailed} {
		if errors.Is(err, s) {
			return s
		}
	}
	return err
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, code, message := errorStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"error", err,
		)
	} else {
		s.logger.Debug("request rejected",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"error", err,
		)
	}
	writeError(w, status, code, message)
}

// decodeJSON reads a JSON body into v. An empty body leaves v untouched.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: malformed JSON body: %w", errBadRequest, err)
	}
	return nil
}
