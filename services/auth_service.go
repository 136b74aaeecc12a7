package services

import (
	"errors"
	"strings"

	"socialapp/apperrors"
	"socialapp/auth"
	"socialapp/models"
	"socialapp/repositories"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// ErrBadCredentials is returned on login with an unknown account or a wrong
// password; the handler maps it to 401 without saying which.
var ErrBadCredentials = errors.New("bad credentials")

// AuthService handles registration and login. Password hashing and token
// issuance happen here; everything downstream only ever sees the resolved
// principal.
type AuthService struct {
	users  repositories.UserRepository
	tokens *auth.Manager
}

func NewAuthService(users repositories.UserRepository, tokens *auth.Manager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register creates an account with a bcrypt-hashed password. Username and
// email must both be free.
func (s *AuthService) Register(username, email, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	taken, err := s.users.ExistsByUsername(username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.NewConflict("username already taken: %s", username)
	}

	taken, err = s.users.ExistsByEmail(email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.NewConflict("email already taken: %s", email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	logrus.WithField("username", username).Info("account registered")
	return user, nil
}

// Login resolves the account by username or email, checks the password, and
// returns a signed token.
func (s *AuthService) Login(usernameOrEmail, password string) (string, error) {
	login := strings.TrimSpace(usernameOrEmail)

	user, err := s.users.FindByUsername(login)
	if err != nil {
		return "", err
	}
	if user == nil {
		user, err = s.users.FindByEmail(strings.ToLower(login))
		if err != nil {
			return "", err
		}
	}
	if user == nil {
		return "", ErrBadCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", ErrBadCredentials
	}

	return s.tokens.Generate(user.Username)
}
