package identity

import (
	"errors"
	"time"

	userDomain "agrimarket-backend/internal/domain/user"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "agrimarket"

// Claims holds the typed JWT payload.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWT issues and verifies HS256 bearer tokens.
type JWT struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWT(secret string, ttl time.Duration) *JWT {
	return &JWT{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (j *JWT) Issue(p userDomain.Principal) (string, time.Time, error) {
	now := j.now()
	exp := now.Add(j.ttl)
	claims := Claims{
		Role: string(p.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.UserID,
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

func (j *JWT) Verify(token string) (userDomain.Principal, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return j.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		return userDomain.Principal{}, errors.Join(userDomain.ErrInvalidToken, err)
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return userDomain.Principal{}, userDomain.ErrInvalidToken
	}
	role := userDomain.Role(claims.Role)
	if !role.Valid() {
		return userDomain.Principal{}, userDomain.ErrInvalidToken
	}
	return userDomain.Principal{UserID: claims.Subject, Role: role}, nil
}
