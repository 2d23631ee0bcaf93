package services

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"navmind/internal/domain"
	"navmind/internal/domain/models"
	"navmind/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// UserStore is the persistence the account service needs.
type UserStore interface {
	Create(u models.User) (int64, error)
	GetByEmail(email string) (models.User, error)
}

// AccountService registers API users and issues bearer tokens.
type AccountService struct {
	Users     UserStore
	JWTSecret []byte
	RequestID string
	Now       func() time.Time
}

var errBadCredentials = domain.UnauthorizedError{Msg: "invalid email or password"}

func (s AccountService) Register(name, email, password string) (models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" {
		return models.User{}, domain.ValidationError{Field: "name", Msg: "is required"}
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return models.User{}, domain.ValidationError{Field: "email", Msg: "is not a valid address", Err: err}
	}
	if len(password) < 8 {
		return models.User{}, domain.ValidationError{Field: "password", Msg: "must be at least 8 characters"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, domain.InternalError{Msg: "failed to hash password", Err: err}
	}

	u := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         "user",
		Status:       "active",
		CreatedAt:    s.now(),
	}
	id, err := s.Users.Create(u)
	if err != nil {
		return models.User{}, err
	}
	u.ID = id
	utils.LogEvent(s.RequestID, "auth", "register", fmt.Sprintf("user_id=%d", id))
	return u, nil
}

// Login checks the password and returns a signed HS256 token.
func (s AccountService) Login(email, password string) (string, models.User, error) {
	u, err := s.Users.GetByEmail(email)
	if err != nil {
		if domain.IsNotFound(err) {
			return "", models.User{}, errBadCredentials
		}
		return "", models.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", models.User{}, errBadCredentials
	}
	if u.Status != "" && u.Status != "active" {
		return "", models.User{}, domain.UnauthorizedError{Msg: "account is not active"}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": u.ID,
		"role":    u.Role,
		"exp":     s.now().Add(tokenTTL).Unix(),
	})
	signed, err := token.SignedString(s.JWTSecret)
	if err != nil {
		return "", models.User{}, domain.InternalError{Msg: "failed to sign token", Err: err}
	}
	utils.LogEvent(s.RequestID, "auth", "login", fmt.Sprintf("user_id=%d", u.ID))
	return signed, u, nil
}

// ParseToken validates a bearer token and returns the caller's identity.
func ParseToken(secret []byte, raw string) (domain.RequestContext, error) {
	var rc domain.RequestContext
	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return rc, domain.UnauthorizedError{Msg: "invalid token", Err: err}
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return rc, domain.UnauthorizedError{Msg: "invalid token claims"}
	}
	id, ok := claims["user_id"].(float64)
	if !ok {
		return rc, domain.UnauthorizedError{Msg: "invalid token claims", Err: errors.New("user_id missing")}
	}
	rc.UserID = domain.ID(id)
	rc.Role, _ = claims["role"].(string)
	return rc, nil
}

func (s AccountService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
