package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"cookit/internal/domain"
)

// Account is the signed-in user together with the stored profile.
type Account struct {
	User    domain.AuthUser     `json:"user"`
	Profile *domain.UserProfile `json:"profile"`
}

type AccountService struct {
	auth      Authenticator
	users     UserStore
	favorites FavoriteStore
	recipes   RecipeStore
	txManager TransactionManager
	logger    *slog.Logger
}

func NewAccountService(
	auth Authenticator,
	users UserStore,
	favorites FavoriteStore,
	recipes RecipeStore,
	txManager TransactionManager,
	logger *slog.Logger,
) *AccountService {
	return &AccountService{
		auth:      auth,
		users:     users,
		favorites: favorites,
		recipes:   recipes,
		txManager: txManager,
		logger:    logger.With("service", "accounts"),
	}
}

// Authenticate resolves a bearer token to its user.
func (s *AccountService) Authenticate(ctx context.Context, idToken string) (*domain.AuthUser, error) {
	return s.auth.Lookup(ctx, idToken)
}

func (s *AccountService) SignUp(ctx context.Context, email, password string) (*domain.Session, error) {
	return s.establish(ctx, "sign_up", func() (*domain.Session, error) {
		return s.auth.SignUp(ctx, email, password)
	})
}

func (s *AccountService) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	return s.establish(ctx, "sign_in", func() (*domain.Session, error) {
		return s.auth.SignIn(ctx, email, password)
	})
}

func (s *AccountService) SignInAnonymously(ctx context.Context) (*domain.Session, error) {
	return s.establish(ctx, "anonymous", func() (*domain.Session, error) {
		return s.auth.SignInAnonymously(ctx)
	})
}

func (s *AccountService) SignInWithGoogle(ctx context.Context, googleIDToken string) (*domain.Session, error) {
	return s.establish(ctx, "google", func() (*domain.Session, error) {
		return s.auth.SignInWithGoogle(ctx, googleIDToken)
	})
}

func (s *AccountService) SignInWithApple(ctx context.Context, appleIDToken, nonce string) (*domain.Session, error) {
	return s.establish(ctx, "apple", func() (*domain.Session, error) {
		return s.auth.SignInWithApple(ctx, appleIDToken, nonce)
	})
}

func (s *AccountService) LinkEmail(ctx context.Context, idToken, email, password string) (*domain.Session, error) {
	return s.establish(ctx, "link_email", func() (*domain.Session, error) {
		return s.auth.LinkEmail(ctx, idToken, email, password)
	})
}

func (s *AccountService) LinkGoogle(ctx context.Context, idToken, googleIDToken string) (*domain.Session, error) {
	return s.establish(ctx, "link_google", func() (*domain.Session, error) {
		return s.auth.LinkGoogle(ctx, idToken, googleIDToken)
	})
}

func (s *AccountService) LinkApple(ctx context.Context, idToken, appleIDToken, nonce string) (*domain.Session, error) {
	return s.establish(ctx, "link_apple", func() (*domain.Session, error) {
		return s.auth.LinkApple(ctx, idToken, appleIDToken, nonce)
	})
}

func (s *AccountService) UpdateEmail(ctx context.Context, idToken, email string) (*domain.Session, error) {
	return s.establish(ctx, "update_email", func() (*domain.Session, error) {
		return s.auth.UpdateEmail(ctx, idToken, email)
	})
}

func (s *AccountService) UpdatePassword(ctx context.Context, idToken, password string) (*domain.Session, error) {
	return s.auth.UpdatePassword(ctx, idToken, password)
}

func (s *AccountService) SendPasswordReset(ctx context.Context, email string) error {
	return s.auth.SendPasswordReset(ctx, email)
}

// CurrentUser returns the user of idToken and the stored profile, creating
// the profile if an earlier sign-in did not.
func (s *AccountService) CurrentUser(ctx context.Context, idToken string) (*Account, error) {
	user, err := s.auth.Lookup(ctx, idToken)
	if err != nil {
		return nil, err
	}

	profile, err := s.users.Get(ctx, user.UID)
	if errors.Is(err, domain.ErrUserNotFound) {
		profile = domain.NewUserProfile(*user)
		if err := s.users.Upsert(ctx, profile); err != nil {
			return nil, fmt.Errorf("create profile: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	return &Account{User: *user, Profile: profile}, nil
}

// DeleteAccount removes the user's favorites and profile and then the
// auth user itself.
func (s *AccountService) DeleteAccount(ctx context.Context, idToken string) error {
	user, err := s.auth.Lookup(ctx, idToken)
	if err != nil {
		return err
	}

	var favorites []domain.Favorite
	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		favorites, err = s.favorites.ListByUser(txCtx, user.UID)
		if err != nil {
			return err
		}
		if err := s.favorites.DeleteByUser(txCtx, user.UID); err != nil {
			return err
		}
		return s.users.Delete(txCtx, user.UID)
	})
	if err != nil {
		return fmt.Errorf("delete user data: %w", err)
	}

	for _, f := range favorites {
		if err := s.recipes.AdjustSavedCount(ctx, f.RecipeID, -1); err != nil && !errors.Is(err, domain.ErrRecipeNotFound) {
			s.logger.Warn("failed to adjust saved count",
				"recipe_id", f.RecipeID,
				"error", err,
			)
		}
	}

	if err := s.auth.Delete(ctx, idToken); err != nil {
		return fmt.Errorf("delete auth user: %w", err)
	}

	s.logger.Info("account deleted", "user_id", user.UID, "favorites", len(favorites))
	return nil
}

// establish runs an auth flow and keeps the stored profile in step with
// the resulting user.
func (s *AccountService) establish(ctx context.Context, flow string, authenticate func() (*domain.Session, error)) (*domain.Session, error) {
	session, err := authenticate()
	if err != nil {
		s.logger.Debug("auth flow failed", "flow", flow, "error", err)
		return nil, err
	}

	if err := s.users.Upsert(ctx, domain.NewUserProfile(session.User)); err != nil {
		return nil, fmt.Errorf("store profile: %w", err)
	}

	s.logger.Info("auth flow completed",
		"flow", flow,
		"user_id", session.User.UID,
		"anonymous", session.User.IsAnonymous,
	)
	return session, nil
}
