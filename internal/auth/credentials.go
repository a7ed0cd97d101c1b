package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/staffdesk/apiserver/types"
)

const DefaultTokenTTL = 7 * 24 * time.Hour

var (
	// ErrTokenExpired is returned when a token's expiry has passed.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenInvalid is returned for malformed tokens and signature failures.
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims is the payload embedded in issued tokens.
type Claims struct {
	UserID string     `json:"user_id"`
	Email  string     `json:"email"`
	Role   types.Role `json:"role"`
	jwt.RegisteredClaims
}

// Credentials signs tokens and hashes passwords. The signing secret and
// bcrypt cost are fixed at construction; there is no package-level state.
type Credentials struct {
	secret   []byte
	tokenTTL time.Duration
	cost     int
}

// NewCredentials constructs a Credentials service with the given signing
// secret, the default 7-day token TTL, and the default bcrypt cost.
func NewCredentials(secret string) *Credentials {
	return &Credentials{
		secret:   []byte(secret),
		tokenTTL: DefaultTokenTTL,
		cost:     bcrypt.DefaultCost,
	}
}

// HashPassword produces a salted, one-way hash of the plaintext. Two calls
// with the same input yield different hashes.
func (c *Credentials) HashPassword(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), c.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword reports whether the plaintext matches the stored hash.
// A wrong password is a plain false, never an error.
func (c *Credentials) VerifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// IssueToken signs a token carrying the user's id, email, and role with an
// absolute expiry.
func (c *Credentials) IssueToken(user types.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// DecodeToken verifies the signature and expiry and returns the embedded
// claims. Expired tokens fail with ErrTokenExpired; anything else that does
// not verify fails with ErrTokenInvalid.
func (c *Credentials) DecodeToken(tokenString string) (Claims, error) {
	claims := Claims{}
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrTokenInvalid
	}
	if !token.Valid {
		return Claims{}, ErrTokenInvalid
	}
	return claims, nil
}
