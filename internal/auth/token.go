package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims carried in a signed access token.
type Claims struct {
	UserID  int64
	IsStaff bool
}

// TokenManager issues and verifies HS256 access tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the user and returns it with its expiry.
func (m *TokenManager) Issue(userID int64, isStaff bool) (token string, exp time.Time, err error) {
	const op = "auth.TokenManager.Issue"

	now := time.Now().UTC()
	exp = now.Add(m.ttl)

	claims := jwt.MapClaims{
		"sub":   strconv.FormatInt(userID, 10),
		"staff": isStaff,
		"iat":   now.Unix(),
		"exp":   exp.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, err = t.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%s: %w", op, err)
	}
	return token, exp, nil
}

// Verify parses the token string and returns its claims. Any signature,
// expiry or format problem comes back as ErrInvalidToken.
func (m *TokenManager) Verify(token string) (Claims, error) {
	const op = "auth.TokenManager.Verify"

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return Claims{}, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	mc, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	sub, _ := mc["sub"].(string)
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return Claims{}, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}
	staff, _ := mc["staff"].(bool)

	return Claims{UserID: userID, IsStaff: staff}, nil
}
