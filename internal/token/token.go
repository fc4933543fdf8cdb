package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/urbanbarber/api/internal/models"
)

const TTL = time.Hour

// Issuer signs access tokens for authenticated users. Issuance is a pure
// function of the user record and the server-held signing config.
type Issuer struct {
	secret   []byte
	issuer   string
	audience string
}

func NewIssuer(secret, issuer, audience string) *Issuer {
	return &Issuer{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
	}
}

type Claims struct {
	UserID   uint
	Username string
	Email    string
	Role     string
}

func (i *Issuer) Issue(user *models.User, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"email":    user.Email,
		"role":     user.Role,
		"iss":      i.issuer,
		"aud":      i.audience,
		"iat":      now.Unix(),
		"exp":      now.Add(TTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.secret)
}

// Parse validates the signature and expiry and extracts the caller identity.
func (i *Issuer) Parse(tokenString string) (*Claims, error) {
	t, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return i.secret, nil
	})
	if err != nil || !t.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	mc, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}

	sub, ok := mc["sub"].(float64)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}

	username, _ := mc["username"].(string)
	email, _ := mc["email"].(string)
	role, _ := mc["role"].(string)

	return &Claims{
		UserID:   uint(sub),
		Username: username,
		Email:    email,
		Role:     role,
	}, nil
}
