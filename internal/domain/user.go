package domain

import "time"

type AuthProvider string

const (
	ProviderEmail  AuthProvider = "password"
	ProviderGoogle AuthProvider = "google.com"
	ProviderApple  AuthProvider = "apple.com"
)

// AuthUser is the identity reported by the auth provider.
type AuthUser struct {
	UID         string         `json:"uid"`
	Email       string         `json:"email,omitempty"`
	IsAnonymous bool           `json:"isAnonymous"`
	Providers   []AuthProvider `json:"providers"`
}

type Session struct {
	User         AuthUser `json:"user"`
	IDToken      string   `json:"idToken"`
	RefreshToken string   `json:"refreshToken"`
	ExpiresIn    int      `json:"expiresIn"`
}

type UserProfile struct {
	UserID      string    `db:"user_id" json:"userId"`
	Email       *string   `db:"email" json:"email,omitempty"`
	IsAnonymous bool      `db:"is_anonymous" json:"isAnonymous"`
	IsPremium   bool      `db:"is_premium" json:"isPremium"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// NewUserProfile builds the stored profile for a freshly authenticated user.
func NewUserProfile(u AuthUser) *UserProfile {
	p := &UserProfile{
		UserID:      u.UID,
		IsAnonymous: u.IsAnonymous,
	}
	if u.Email != "" {
		email := u.Email
		p.Email = &email
	}
	return p
}

type Favorite struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"userId"`
	RecipeID  string    `db:"recipe_id" json:"recipeId"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
