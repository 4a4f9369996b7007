package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Default token issuer
const DefaultTokenIssuer = "simple-notes-service"

// IdentityKey is the gin context key the auth middleware stores the
// authenticated identity under.
const IdentityKey = "auth_user"

// TokenConfig configures the token manager.
type TokenConfig struct {
	SecretKey string        `yaml:"secret-key"` // JWT signing key
	Expiry    time.Duration `yaml:"expiry"`     // token lifetime, defaults to 7 days
	Issuer    string        `yaml:"issuer"`     // token issuer
}

// TokenManager issues and parses user tokens.
type TokenManager interface {
	Generate(user string, ip string) (string, error)
	Parse(token string) (*UserEntity, error)
	GetSecretKey() string
}

type tokenManager struct {
	config TokenConfig
}

// NewTokenManager creates a TokenManager.
func NewTokenManager(cfg TokenConfig) TokenManager {
	if cfg.Expiry == 0 {
		cfg.Expiry = 7 * 24 * time.Hour
	}
	if cfg.Issuer == "" {
		cfg.Issuer = DefaultTokenIssuer
	}
	return &tokenManager{config: cfg}
}

// UserEntity is the identity stored in the JWT.
type UserEntity struct {
	User string `json:"user"`
	IP   string `json:"ip"`
	jwt.RegisteredClaims
}

// Generate issues a new signed JWT for the given user identity.
func (t *tokenManager) Generate(user string, ip string) (string, error) {
	expirationTime := time.Now().Add(t.config.Expiry)
	claims := &UserEntity{
		User: user,
		IP:   ip,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    t.config.Issuer,
			Subject:   "user-token",
			ID:        user,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(t.config.SecretKey))
}

// Parse validates the JWT and returns the identity it carries.
func (t *tokenManager) Parse(token string) (*UserEntity, error) {
	return ParseTokenWithKey(token, t.config.SecretKey)
}

// GetSecretKey returns the signing key.
func (t *tokenManager) GetSecretKey() string {
	return t.config.SecretKey
}

// ParseTokenWithKey parses a token with an explicit key.
func ParseTokenWithKey(tokenString string, secretKey string) (*UserEntity, error) {
	claims := &UserEntity{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secretKey), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// GetUser extracts the authenticated identity from the request context.
// Empty means the auth middleware did not run or rejected the request.
func GetUser(ctx *gin.Context) (out string) {
	if user, exist := ctx.Get(IdentityKey); exist {
		if s, ok := user.(string); ok {
			out = s
		}
	}
	return
}
