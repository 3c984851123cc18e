package token

import (
	"errors"
	"time"

	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
)

const sessionClaim = "sid"

var (
	ErrInvalidToken = errors.New("invalid token")
)

// JwtService issues HMAC-signed session tokens.
// Implements i.Tokenizer.
type JwtService struct {
	secretKey string
	issuer    string
}

// NewJwtService creates a new JWT Service with the provided configuration.
func NewJwtService(secretKey, issuer string) i.Tokenizer {
	return &JwtService{
		secretKey: secretKey,
		issuer:    issuer,
	}
}

// Issue creates a JWT bound to the given session.
func (s *JwtService) Issue(sessionID uuid.UUID, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		sessionClaim: sessionID.String(),
		"iss":        s.issuer,
		"exp":        time.Now().UTC().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// SessionID parses and validates a JWT and returns the session it grants.
func (s *JwtService) SessionID(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, s.getSigningKey)
	if err != nil {
		return uuid.Nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid || !claims.VerifyIssuer(s.issuer, true) {
		return uuid.Nil, ErrInvalidToken
	}

	sid, ok := claims[sessionClaim].(string)
	if !ok {
		return uuid.Nil, ErrInvalidToken
	}
	id, err := uuid.Parse(sid)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}
	return id, nil
}

// getSigningKey returns the signing key for token validation.
func (s *JwtService) getSigningKey(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, errors.New("unexpected signing method")
	}
	return []byte(s.secretKey), nil
}
