package api

import (
	"net/http"

	"cookit/internal/domain"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type idTokenRequest struct {
	IDToken string `json:"id_token"`
	Nonce   string `json:"nonce"`
}

type emailRequest struct {
	Email string `json:"email"`
}

type passwordRequest struct {
	Password string `json:"password"`
}

// sessionHandler decodes a request body of type T and answers with the
// session returned by call.
func sessionHandler[T any](s *Server, status int, call func(r *http.Request, req T) (*domain.Session, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req T
		if err := decodeJSON(w, r, &req); err != nil {
			s.fail(w, r, err)
			return
		}

		session, err := call(r, req)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		writeJSON(w, status, session)
	}
}

func (s *Server) handleSignUp(w http.ResponseWriter, r *http.Request) {
	sessionHandler(s, http.StatusCreated, func(r *http.Request, req credentialsRequest) (*domain.Session, error) {
		return s.accounts.SignUp(r.Context(), req.Email, req.Password)
	})(w, r)
}

func (s *Server) handleSignIn(w http.ResponseWriter, r *http.Request) {
	sessionHandler(s, http.StatusOK, func(r *http.Request, req credentialsRequest) (*domain.Session, error) {
		return s.accounts.SignIn(r.Context(), req.Email, req.Password)
	})(w, r)
}

func (s *Server) handleSignInAnonymously(w http.ResponseWriter, r *http.Request) {
	sessionHandler(s, http.StatusOK, func(r *http.Request, _ struct{}) (*domain.Session, error) {
		return s.accounts.SignInAnonymously(r.Context())
	})(w, r)
}

func (s *Server) handleSignInWithGoogle(w http.ResponseWriter, r *http.Request) {
	sessionHandler(s, http.StatusOK, func(r *http.Request, req idTokenRequest) (*domain.Session, error) {
		return s.accounts.SignInWithGoogle(r.Context(), req.IDToken)
	})(w, r)
}

func (s *Server) handleSignInWithApple(w http.ResponseWriter, r *http.Request) {
	sessionHandler(s, http.StatusOK, func(r *http.Request, req idTokenRequest) (*domain.Session, error) {
		return s.accounts.SignInWithApple(r.Context(), req.IDToken, req.Nonce)
	})(w, r)
}

func (s *Server) handlePasswordReset(w http.ResponseWriter, r *http.Request) {
	var req emailRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	if err := s.accounts.SendPasswordReset(r.Context(), req.Email); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func (s *Server) handleLinkEmail(w http.ResponseWriter, r *http.Request) {
	sessionHandler(s, http.StatusOK, func(r *http.Request, req credentialsRequest) (*domain.Session, error) {
		return s.accounts.LinkEmail(r.Context(), tokenFromContext(r.Context()), req.Email, req.Password)
	})(w, r)
}

func (s *Server) handleLinkGoogle(w http.ResponseWriter, r *http.Request) {
	sessionHandler(s, http.StatusOK, func(r *http.Request, req idTokenRequest) (*domain.Session, error) {
		return s.accounts.LinkGoogle(r.Context(), tokenFromContext(r.Context()), req.IDToken)
	})(w, r)
}

func (s *Server) handleLinkApple(w http.ResponseWriter, r *http.Request) {
	sessionHandler(s, http.StatusOK, func(r *http.Request, req idTokenRequest) (*domain.Session, error) {
		return s.accounts.LinkApple(r.Context(), tokenFromContext(r.Context()), req.IDToken, req.Nonce)
	})(w, r)
}

func (s *Server) handleUpdateEmail(w http.ResponseWriter, r *http.Request) {
	sessionHandler(s, http.StatusOK, func(r *http.Request, req emailRequest) (*domain.Session, error) {
		return s.accounts.UpdateEmail(r.Context(), tokenFromContext(r.Context()), req.Email)
	})(w, r)
}

func (s *Server) handleUpdatePassword(w http.ResponseWriter, r *http.Request) {
	sessionHandler(s, http.StatusOK, func(r *http.Request, req passwordRequest) (*domain.Session, error) {
		return s.accounts.UpdatePassword(r.Context(), tokenFromContext(r.Context()), req.Password)
	})(w, r)
}

func (s *Server) handleCurrentUser(w http.ResponseWriter, r *http.Request) {
	account, err := s.accounts.CurrentUser(r.Context(), tokenFromContext(r.Context()))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, account)
}

func (s *Server) handleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	if err := s.accounts.DeleteAccount(r.Context(), tokenFromContext(r.Context())); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
