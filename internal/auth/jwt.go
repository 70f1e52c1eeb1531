package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenType discriminates access tokens from refresh tokens so that one can
// never be used where the other is required.
type TokenType string

const (
	TypeAccess  TokenType = "access"
	TypeRefresh TokenType = "refresh"
)

var (
	// ErrInvalidSignature is returned when the token signature does not verify.
	ErrInvalidSignature = errors.New("token signature verification failed")
	// ErrInvalidToken is returned for malformed tokens and type mismatches.
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired is returned when the token is past its expiry.
	ErrTokenExpired = errors.New("token has expired")
	// ErrFreshRequired is returned when a fresh token is required but the
	// presented access token was minted through a refresh.
	ErrFreshRequired = errors.New("fresh token required")
)

// Claims is the JWT payload carried by both token types. Fresh is only
// meaningful on access tokens: true when the token came straight from login.
type Claims struct {
	UserID    int64     `json:"user_id"`
	TokenType TokenType `json:"token_type"`
	Fresh     bool      `json:"fresh,omitempty"`
	jwt.RegisteredClaims
}

// TokenConfig holds signing parameters for the TokenManager.
type TokenConfig struct {
	SecretKey  string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
	Issuer     string
}

// TokenManager issues and validates HS256-signed access and refresh tokens.
// Tokens are stateless: everything needed for validation is embedded in the
// token itself, nothing is persisted server-side.
type TokenManager struct {
	cfg TokenConfig
	now func() time.Time
}

func NewTokenManager(cfg TokenConfig) *TokenManager {
	if cfg.AccessTTL == 0 {
		cfg.AccessTTL = 15 * time.Minute
	}
	if cfg.RefreshTTL == 0 {
		cfg.RefreshTTL = 7 * 24 * time.Hour
	}
	return &TokenManager{cfg: cfg, now: time.Now}
}

// IssueAccess mints an access token for userID. fresh must be true only for
// tokens issued directly at login; tokens minted via /refresh are not fresh.
func (m *TokenManager) IssueAccess(userID int64, fresh bool) (string, error) {
	return m.issue(userID, TypeAccess, fresh, m.cfg.AccessTTL)
}

// IssueRefresh mints a long-lived refresh token for userID.
func (m *TokenManager) IssueRefresh(userID int64) (string, error) {
	return m.issue(userID, TypeRefresh, false, m.cfg.RefreshTTL)
}

func (m *TokenManager) issue(userID int64, typ TokenType, fresh bool, ttl time.Duration) (string, error) {
	now := m.now()
	claims := Claims{
		UserID:    userID,
		TokenType: typ,
		Fresh:     fresh,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.cfg.Issuer,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(m.cfg.SecretKey))
}

// Validate checks tokenString and returns the embedded user id. Checks run
// in a fixed order: signature, then type discriminator, then expiry, then
// freshness (only when requireFresh is set). The first failing check wins.
func (m *TokenManager) Validate(tokenString string, required TokenType, requireFresh bool) (int64, error) {
	claims := &Claims{}
	// Expiry is validated by hand below so that a wrong-type token reports a
	// type error even when it is also expired.
	_, err := jwt.ParseWithClaims(tokenString, claims, m.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return 0, ErrInvalidSignature
		}
		return 0, ErrInvalidToken
	}

	if claims.TokenType != required {
		return 0, ErrInvalidToken
	}

	if claims.ExpiresAt == nil || !m.now().Before(claims.ExpiresAt.Time) {
		return 0, ErrTokenExpired
	}

	if requireFresh && !claims.Fresh {
		return 0, ErrFreshRequired
	}

	return claims.UserID, nil
}

func (m *TokenManager) keyFunc(token *jwt.Token) (any, error) {
	return []byte(m.cfg.SecretKey), nil
}
