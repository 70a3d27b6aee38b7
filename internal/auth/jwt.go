package auth

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"autoledger/internal/models"
)

const issuer = "autoledger-api"

// Claims represents the claims in the JWT
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// TokenService signs access tokens and resolves them back into identities.
type TokenService struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

// NewTokenService creates a TokenService using an HMAC secret.
func NewTokenService(secret string, expiry time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), expiry: expiry, now: time.Now}
}

// Issue generates a signed access token for a user.
func (s *TokenService) Issue(user *models.User) (string, error) {
	now := s.now()
	claims := &Claims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   user.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse validates a token string and returns its claims.
func (s *TokenService) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(issuer), jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.UserID == "" {
		return nil, fmt.Errorf("token has no subject")
	}
	return claims, nil
}

// Resolve reads a "Bearer <token>" Authorization header. Missing, malformed
// and expired tokens all resolve to Anonymous.
func (s *TokenService) Resolve(r *http.Request) Identity {
	header := r.Header.Get("Authorization")
	if header == "" {
		return Anonymous
	}

	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return Anonymous
	}

	claims, err := s.Parse(parts[1])
	if err != nil {
		return Anonymous
	}

	return Identity{
		Authenticated: true,
		UserID:        claims.UserID,
		Name:          claims.Name,
		Email:         claims.Email,
	}
}
