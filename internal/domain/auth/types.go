package auth

import "time"

// Config drives access token verification.
type Config struct {
	// Secret is the HS256 signing secret shared with the identity provider.
	Secret string
	// Audience, when set, must appear in the token's aud claim.
	Audience string
	// Leeway tolerates clock skew on exp and nbf.
	Leeway time.Duration
}

// Claims is the verified identity extracted from an access token.
type Claims struct {
	UserID    string    `json:"userId"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}
