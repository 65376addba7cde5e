package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"triptix/internal/config"
	"triptix/internal/errs"
	"triptix/internal/metrics"
	"triptix/internal/models"
	"triptix/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Matches the simple local@domain.tld shape the registration form
// accepts. Not a full RFC 5322 validator on purpose.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthService owns the single demo account, the per-email login
// attempt records and the logged-in session marker.
type AuthService struct {
	userRepo     *repository.UserRepository
	attemptsRepo *repository.AttemptsRepository
	sessionRepo  *repository.SessionRepository
	cfg          config.AuthConfig

	now func() time.Time
}

func NewAuthService(userRepo *repository.UserRepository, attemptsRepo *repository.AttemptsRepository, sessionRepo *repository.SessionRepository, cfg config.AuthConfig) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		attemptsRepo: attemptsRepo,
		sessionRepo:  sessionRepo,
		cfg:          cfg,
		now:          time.Now,
	}
}

// Register validates the form and stores the account. Validation rules
// fail in form order; the first violated rule wins. The store keeps at
// most one account, so a successful registration overwrites any
// previous one.
func (s *AuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.RegisterResponse, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	phone := strings.TrimSpace(req.Phone)

	if len(name) < 2 {
		return nil, errs.Validation("please enter a valid full name")
	}
	if !emailPattern.MatchString(email) {
		return nil, errs.Validation("please enter a valid email address")
	}
	if len(phone) < 10 {
		return nil, errs.Validation("please enter a valid phone number")
	}
	if len(req.Password) < 6 {
		return nil, errs.Validation("password must be at least 6 characters long")
	}
	if req.Password != req.ConfirmPassword {
		return nil, errs.Validation("passwords do not match")
	}
	if !req.TermsAccepted {
		return nil, errs.Validation("please accept the terms and conditions to continue")
	}

	existing, err := s.userRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}
	if existing != nil && strings.EqualFold(existing.Email, email) {
		return nil, errs.ErrDuplicateAccount
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &models.UserAccount{
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: string(hash),
		RegisteredAt: s.now().UTC(),
	}
	if err := s.userRepo.Save(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	return &models.RegisterResponse{Name: account.Name, Email: account.Email, Phone: account.Phone}, nil
}

// Login checks credentials against the stored account, tracking
// consecutive failures per email and locking the email after the
// configured threshold. The lock expiry is checked lazily on each
// attempt; there is no background timer.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	email := strings.TrimSpace(req.Email)
	now := s.now()

	attempts, err := s.attemptsRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load login attempts: %w", err)
	}

	if record, ok := attempts[email]; ok && record.LockedUntil != nil && now.Before(*record.LockedUntil) {
		return nil, &errs.LockedError{RetryAfter: record.LockedUntil.Sub(now)}
	}

	if email == "" || len(req.Password) < 6 {
		return nil, errs.ErrInvalidInput
	}

	account, err := s.userRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	if account == nil {
		return nil, errs.ErrNoAccount
	}

	match := account.Email == email &&
		bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)) == nil

	if !match {
		record := attempts[email]
		record.Count++
		record.LastAttempt = now

		if record.Count >= s.cfg.LockThreshold {
			lockedUntil := now.Add(s.cfg.LockDuration)
			record.LockedUntil = &lockedUntil
			attempts[email] = record
			if err := s.attemptsRepo.SaveAll(ctx, attempts); err != nil {
				return nil, fmt.Errorf("failed to save login attempts: %w", err)
			}
			metrics.LoginLockouts.Inc()
			return nil, &errs.LockedError{RetryAfter: s.cfg.LockDuration}
		}

		attempts[email] = record
		if err := s.attemptsRepo.SaveAll(ctx, attempts); err != nil {
			return nil, fmt.Errorf("failed to save login attempts: %w", err)
		}
		return nil, &errs.CredentialsError{AttemptsLeft: s.cfg.LockThreshold - record.Count}
	}

	if _, ok := attempts[email]; ok {
		delete(attempts, email)
		if err := s.attemptsRepo.SaveAll(ctx, attempts); err != nil {
			return nil, fmt.Errorf("failed to save login attempts: %w", err)
		}
	}

	if err := s.sessionRepo.Save(ctx, &models.Session{Email: email, LoggedInAt: now.UTC()}); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	token, err := s.issueToken(email, now)
	if err != nil {
		return nil, fmt.Errorf("failed to create session token: %w", err)
	}

	return &models.LoginResponse{Token: token, Email: email}, nil
}

// Logout clears the logged-in marker. Issued tokens stay valid until
// they expire; only the stored session state is dropped.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.sessionRepo.Delete(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func (s *AuthService) issueToken(email string, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(s.cfg.SessionTTL).Unix(),
	})
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// CurrentUser resolves a session token back to the stored account.
func (s *AuthService) CurrentUser(ctx context.Context, tokenString string) (*models.UserAccount, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, errs.ErrInvalidInput
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errs.ErrInvalidInput
	}
	email, _ := claims["email"].(string)

	account, err := s.userRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	if account == nil || account.Email != email {
		return nil, errs.ErrNoAccount
	}
	return account, nil
}
