package services

import (
	"errors"
	"strings"
	"time"

	"quickbite-backend/entity"
	"quickbite-backend/pkg/apperr"
	"quickbite-backend/pkg/latency"
	"quickbite-backend/pkg/session"
	"quickbite-backend/repository"
	"quickbite-backend/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles login/logout and the single persisted session.
type AuthService struct {
	userRepo  *repository.UserRepository
	sessions  session.Store
	delay     latency.Delayer
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, sessions session.Store, d latency.Delayer, secret string, ttl time.Duration) *AuthService {
	if d == nil {
		d = latency.None
	}
	return &AuthService{
		userRepo:  repo,
		sessions:  sessions,
		delay:     d,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

// Login checks credentials, persists the user (password never leaves the DB
// row) as the current session and issues a JWT for the HTTP layer.
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	s.delay.Wait()
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperr.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperr.ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Email, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}

	// Overwrites whatever session existed before; one session at a time.
	if err := s.sessions.Set(sessionUser(user)); err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// Logout clears the persisted session. Succeeds when no session exists.
func (s *AuthService) Logout() error {
	s.delay.Wait()
	return s.sessions.Clear()
}

// CurrentUser reads the persisted session. Absent or malformed content means
// signed out, not an error.
func (s *AuthService) CurrentUser() (*entity.User, bool) {
	var u entity.User
	ok, err := s.sessions.Get(&u)
	if err != nil || !ok {
		return nil, false
	}
	return &u, true
}

func (s *AuthService) IsAuthenticated() bool {
	_, ok := s.CurrentUser()
	return ok
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	u, err := s.userRepo.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	return u, err
}

// sessionUser strips everything the session file shouldn't hold. The
// password hash in particular never reaches disk.
func sessionUser(u *entity.User) map[string]any {
	return map[string]any{
		"id":     u.ID,
		"name":   u.Name,
		"email":  u.Email,
		"phone":  u.Phone,
		"avatar": u.Avatar,
	}
}
