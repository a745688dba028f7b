package token

import (
	"errors"
	"time"

	jwtx "github.com/golang-jwt/jwt/v4"
)

// Manager handles token creation and verification using a secret key and token duration.
type Manager struct {
	secretKey     string
	tokenDuration time.Duration
}

// NewManager creates a new token Manager with the given secret key and token duration.
func NewManager(secretKey string, tokenDuration time.Duration) *Manager {
	return &Manager{
		secretKey:     secretKey,
		tokenDuration: tokenDuration,
	}
}

// Generate creates a signed token string using the provided parameters.
func (m *Manager) Generate(params CreateTokenParams) (string, error) {
	claims := &Claims{
		Email:             params.Email,
		Name:              params.Name,
		Nickname:          params.Nickname,
		PreferredUsername: params.PreferredUsername,
		Picture:           params.Picture,
		RegisteredClaims: jwtx.RegisteredClaims{
			Subject:   params.Subject,
			ExpiresAt: jwtx.NewNumericDate(time.Now().Add(m.tokenDuration)),
			IssuedAt:  jwtx.NewNumericDate(time.Now()),
		},
	}
	token := jwtx.NewWithClaims(jwtx.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.secretKey))
}

// Verify parses and validates a token string, returning the claims if valid.
// A syntactically valid token whose claims carry no subject is rejected:
// every downstream consumer keys on the subject identifier.
func (m *Manager) Verify(tokenStr string) (*Claims, error) {
	token, err := jwtx.ParseWithClaims(tokenStr, &Claims{}, func(token *jwtx.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwtx.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected token signing method")
		}
		return []byte(m.secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwtx.ErrTokenInvalidClaims
	}
	if claims.Subject == "" {
		return nil, jwtx.ErrTokenInvalidClaims
	}
	return claims, nil
}
