package jwt

import (
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
)

func TestToken(t *testing.T) {
	jwtAuth := jwtauth.New("HS256", []byte("secret"), nil)
	tok, err := NewToken(jwtAuth, time.Hour)
	assert.NoError(t, err)

	_, err = VerifyToken(jwtAuth, tok)
	assert.NoError(t, err)
}

func TestTokenWithSubject(t *testing.T) {
	jwtAuth := jwtauth.New("HS256", []byte("secret"), nil)
	tok, err := NewTokenWithSubject(jwtAuth, time.Hour, "admin")
	assert.NoError(t, err)

	sub, err := VerifyToken(jwtAuth, tok)
	assert.NoError(t, err)
	assert.Equal(t, "admin", sub)
}

func TestExpiredToken(t *testing.T) {
	jwtAuth := jwtauth.New("HS256", []byte("secret"), nil)
	tok, err := NewToken(jwtAuth, -time.Minute)
	assert.NoError(t, err)

	_, err = VerifyToken(jwtAuth, tok)
	assert.Error(t, err)
}

func TestWrongSecret(t *testing.T) {
	tok, err := NewToken(jwtauth.New("HS256", []byte("secret"), nil), time.Hour)
	assert.NoError(t, err)

	_, err = VerifyToken(jwtauth.New("HS256", []byte("other"), nil), tok)
	assert.Error(t, err)
}
