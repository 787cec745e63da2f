package admin

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidPassword = errors.New("invalid admin password")
)

// tokenTTL bounds how long an admin session token stays valid; there is no
// renewal, the admin signs in again after expiry.
const tokenTTL = 12 * time.Hour

// Service authenticates the single admin account and mints session tokens.
type Service struct {
	passwordHash []byte
	jwtSecret    []byte
}

// NewService accepts either a bcrypt hash or a plain password (hashed here so
// the comparison path is uniform) plus the JWT signing secret.
func NewService(password, jwtSecret string) (*Service, error) {
	hash := []byte(password)
	if !looksLikeBcrypt(password) {
		var err error
		hash, err = bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
	}
	return &Service{passwordHash: hash, jwtSecret: []byte(jwtSecret)}, nil
}

// Authenticate verifies the admin password and returns a signed session
// token carrying the admin role and an expiry.
func (s *Service) Authenticate(password string) (string, error) {
	if bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)) != nil {
		return "", ErrInvalidPassword
	}

	claims := jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func looksLikeBcrypt(value string) bool {
	return len(value) > 4 && value[0:2] == "$2"
}
