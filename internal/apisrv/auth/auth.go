package auth

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/sellora/storefront-manager/internal/auth/jwt"
	"github.com/sellora/storefront-manager/internal/auth/pwhash"
)

// ErrUnauthenticated is returned by Login on a password mismatch.
var ErrUnauthenticated = fmt.Errorf("not authenticated")

// Server issues and verifies admin access tokens.
type Server struct {
	pwhash     *pwhash.PasswordHasher
	JwtAuth    *jwtauth.JWTAuth
	jwtTTL     time.Duration
	masterHash string
}

// Config contains the configuration for the auth server.
type Config struct {
	JWTSecret                string `mapstructure:"jwtSecret"`
	MasterPassword           string `mapstructure:"masterPassword"`
	PasswordHasherSaltSize   int    `mapstructure:"passwordHasherSaltSize"`
	PasswordHasherIterations int    `mapstructure:"passwordHasherIterations"`
	JWTTTL                   string `mapstructure:"jwtttl"`
}

// New creates a new auth server.
func New(c *Config) (*Server, error) {
	ph, err := pwhash.New(c.PasswordHasherSaltSize, c.PasswordHasherIterations)
	if err != nil {
		return nil, err
	}
	hash, err := ph.HashPassword(c.MasterPassword)
	if err != nil {
		return nil, err
	}

	if err := ph.Validate(c.MasterPassword, hash); err != nil {
		return nil, err
	}

	ttl, err := time.ParseDuration(c.JWTTTL)
	if err != nil {
		return nil, err
	}

	return &Server{
		pwhash:     ph,
		JwtAuth:    jwtauth.New("HS256", []byte(c.JWTSecret), nil),
		jwtTTL:     ttl,
		masterHash: hash,
	}, nil
}

// Login exchanges the master password for an auth token.
func (s *Server) Login(password string) (string, error) {
	if err := s.pwhash.Validate(password, s.masterHash); err != nil {
		return "", ErrUnauthenticated
	}

	token, err := jwt.NewToken(s.JwtAuth, s.jwtTTL)
	if err != nil {
		return "", err
	}
	return token, nil
}

// WithAuth middleware checks if the request carries a valid bearer token.
func (s *Server) WithAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		_, err := jwt.VerifyToken(s.JwtAuth, token)
		if err != nil {
			http.Error(w, fmt.Sprintf("invalid token %v", err.Error()), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
