package authservice

//go:generate mockgen -source=authservice.go -destination=mock_authservice.go -package=authservice

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/GlebRadaev/skillswap/internal/apperror"
	"github.com/GlebRadaev/skillswap/internal/config"
	"github.com/GlebRadaev/skillswap/internal/domain"
	"github.com/GlebRadaev/skillswap/internal/events"
	"github.com/GlebRadaev/skillswap/internal/metrics"
	"github.com/GlebRadaev/skillswap/internal/pg"
	"github.com/GlebRadaev/skillswap/pkg/auth"
	"github.com/GlebRadaev/skillswap/pkg/validate"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const MinPasswordLength = 6

// NextPage is where the client goes after a successful sign-in or sign-up.
const NextPage = "dashboard"

type CredentialRepo interface {
	FindByEmail(ctx context.Context, email string) (*domain.Credential, error)
	Create(ctx context.Context, cred *domain.Credential) error
}

type AccountRepo interface {
	Get(ctx context.Context, userID string) (*domain.Account, error)
	Create(ctx context.Context, userID string, balance int64) (*domain.Account, error)
}

type DemoAccount struct {
	Email       string
	Password    string
	DisplayName string
}

var DemoAccounts = []DemoAccount{
	{Email: "demo@skillswap.com", Password: "demo123", DisplayName: "Demo User"},
	{Email: "sarah@example.com", Password: "password123", DisplayName: "Sarah Chen"},
	{Email: "john@example.com", Password: "password123", DisplayName: "John Smith"},
	{Email: "emily@skillswap.com", Password: "password123", DisplayName: "Emily Rodriguez"},
	{Email: "carlos@skillswap.com", Password: "password123", DisplayName: "Carlos Mendez"},
}

type Service struct {
	credentials     CredentialRepo
	accounts        AccountRepo
	txManager       pg.TXManager
	hashService     auth.HashServiceInterface
	jwtService      auth.JWTServiceInterface
	publisher       events.Publisher
	startingCredits int64
	tokenTTL        time.Duration
	now             func() time.Time
}

func New(
	cfg *config.Config,
	credentials CredentialRepo,
	accounts AccountRepo,
	txManager pg.TXManager,
	hashService auth.HashServiceInterface,
	jwtService auth.JWTServiceInterface,
	publisher events.Publisher,
) *Service {
	return &Service{
		credentials:     credentials,
		accounts:        accounts,
		txManager:       txManager,
		hashService:     hashService,
		jwtService:      jwtService,
		publisher:       publisher,
		startingCredits: cfg.StartingCredits,
		tokenTTL:        cfg.TokenTTL,
		now:             time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateSignUp(email, password, displayName string) error {
	switch {
	case email == "":
		return apperror.MissingField("email")
	case strings.TrimSpace(password) == "":
		return apperror.MissingField("password")
	case displayName == "":
		return apperror.MissingField("displayName")
	}
	if !validate.IsEmail(email) {
		return apperror.InvalidEmail()
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return apperror.WeakPassword(MinPasswordLength)
	}
	return nil
}

// SignUp registers a credential and opens its account with the starting
// grant in one transaction. Input is validated before the store is touched.
func (s *Service) SignUp(ctx context.Context, email, password, displayName string) (res *domain.AuthResult, err error) {
	defer func() {
		metrics.AuthAttempts.WithLabelValues("signup", apperror.Kind(err)).Inc()
	}()

	email = normalizeEmail(email)
	displayName = strings.TrimSpace(displayName)
	if err := validateSignUp(email, password, displayName); err != nil {
		return nil, err
	}

	existing, err := s.credentials.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperror.Wrap(err)
	}
	if existing != nil {
		zap.L().Info("account already exists", zap.String("email", email))
		return nil, apperror.DuplicateAccount(email)
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, apperror.Wrap(err)
	}

	cred := &domain.Credential{
		UserID:       uuid.NewString(),
		Email:        email,
		PasswordHash: hashedPassword,
		DisplayName:  displayName,
		CreatedAt:    s.now().UTC(),
	}
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.credentials.Create(ctx, cred); err != nil {
			return err
		}
		_, err := s.accounts.Create(ctx, cred.UserID, s.startingCredits)
		return err
	})
	if err != nil {
		zap.L().Error("can't register account", zap.String("email", email), zap.Error(err))
		return nil, apperror.Wrap(err)
	}

	res, err = s.issue(cred)
	if err != nil {
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("userID", cred.UserID))
	s.publisher.Publish(ctx, events.Event{
		Type:   events.UserSignedUp,
		UserID: cred.UserID,
		Data:   map[string]any{"display_name": cred.DisplayName, "next_page": NextPage},
	})
	return res, nil
}

// SignIn never tells an unknown email apart from a wrong password.
func (s *Service) SignIn(ctx context.Context, email, password string) (res *domain.AuthResult, err error) {
	defer func() {
		metrics.AuthAttempts.WithLabelValues("signin", apperror.Kind(err)).Inc()
	}()

	email = normalizeEmail(email)
	cred, err := s.credentials.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperror.Wrap(err)
	}
	if cred == nil || !s.hashService.ComparePassword(cred.PasswordHash, password) {
		zap.L().Info("invalid credentials", zap.String("email", email))
		return nil, apperror.InvalidCredentials()
	}

	res, err = s.issue(cred)
	if err != nil {
		return nil, err
	}

	zap.L().Info("user successfully authenticated", zap.String("userID", cred.UserID))
	s.publisher.Publish(ctx, events.Event{
		Type:   events.UserSignedIn,
		UserID: cred.UserID,
		Data:   map[string]any{"next_page": NextPage},
	})
	return res, nil
}

func (s *Service) issue(cred *domain.Credential) (*domain.AuthResult, error) {
	token, err := s.jwtService.GenerateJWT(cred.UserID, s.now().Add(s.tokenTTL))
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return nil, apperror.Wrap(err)
	}
	return &domain.AuthResult{Token: token, UserID: cred.UserID, DisplayName: cred.DisplayName}, nil
}

func (s *Service) Validate(_ context.Context, token string) (string, error) {
	if token == "" {
		return "", apperror.Unauthorized(nil)
	}
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return "", apperror.Unauthorized(err)
	}
	return claims.UserID, nil
}

// SeedDemo stores the demo accounts that are missing. Existing credentials
// and accounts are never touched, so running it again is a no-op.
func (s *Service) SeedDemo(ctx context.Context) error {
	creds := make([]*domain.Credential, 0, len(DemoAccounts))
	for _, demo := range DemoAccounts {
		hashedPassword, err := s.hashService.HashPassword(demo.Password)
		if err != nil {
			return err
		}
		creds = append(creds, &domain.Credential{
			UserID:       uuid.NewString(),
			Email:        normalizeEmail(demo.Email),
			PasswordHash: hashedPassword,
			DisplayName:  demo.DisplayName,
			CreatedAt:    s.now().UTC(),
		})
	}

	seeded := 0
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		for _, cred := range creds {
			existing, err := s.credentials.FindByEmail(ctx, cred.Email)
			if err != nil {
				return err
			}
			if existing != nil {
				cred = existing
			} else {
				if err := s.credentials.Create(ctx, cred); err != nil {
					return err
				}
				seeded++
			}

			account, err := s.accounts.Get(ctx, cred.UserID)
			if err != nil {
				return err
			}
			if account == nil {
				if _, err := s.accounts.Create(ctx, cred.UserID, s.startingCredits); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't seed demo accounts", zap.Error(err))
		return err
	}

	zap.L().Info("demo accounts seeded", zap.Int("created", seeded), zap.Int("total", len(creds)))
	return nil
}
