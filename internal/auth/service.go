package auth

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"

	"github.com/aliyacapital/seriesdash/internal/errors"
	"github.com/aliyacapital/seriesdash/internal/services"
)

const (
	MsgInvalidCredentials = "Invalid email or password."
	MsgWeakPassword       = "Password must be at least 6 characters and include a symbol, uppercase and lowercase letters."
	MsgConfirmationResent = "Confirmation link resent, check your inbox!"
	MsgConfirmEmail       = "Account created. Check your inbox to confirm your email."
)

// LoginResult reports what LoginOrRegister did.
type LoginResult struct {
	Email string `json:"email"`
	// Created is true when the account did not exist or is still unconfirmed.
	Created   bool      `json:"created"`
	Confirmed bool      `json:"confirmed"`
	Token     string    `json:"token,omitempty"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
	Message   string    `json:"message,omitempty"`
}

type Service struct {
	provider IdentityProvider
	jwt      JWT
	prefs    services.PreferencesService
	domain   string
	log      *zap.Logger
}

func NewService(provider IdentityProvider, jwt JWT, prefs services.PreferencesService, allowedDomain string, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		provider: provider,
		jwt:      jwt,
		prefs:    prefs,
		domain:   strings.ToLower(strings.TrimPrefix(strings.TrimSpace(allowedDomain), "@")),
		log:      log,
	}
}

// LoginOrRegister signs the user in, or registers them when the sign-in did
// not fail on bad credentials. User-facing failures are errors.FieldErrors.
func (s *Service) LoginOrRegister(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, errors.FieldErrors{"email": "Email is required."}
	}
	if s.domain != "" && !strings.HasSuffix(email, "@"+s.domain) {
		return nil, errors.FieldErrors{"email": fmt.Sprintf("Use an @%s email", s.domain)}
	}

	_, err := s.provider.SignIn(ctx, email, password)
	if err == nil {
		return s.startSession(ctx, email)
	}
	var pe *ProviderError
	if errors.As(err, &pe) && pe.Status == 400 && strings.Contains(strings.ToLower(pe.Message), "invalid login credentials") {
		return nil, ClassifyError(MsgInvalidCredentials)
	}
	s.log.Debug("sign-in failed, trying sign-up", zap.String("email", email), zap.Error(err))

	if !StrongPassword(password) {
		return nil, errors.FieldErrors{"password": MsgWeakPassword}
	}

	if _, err := s.provider.SignUp(ctx, email, password); err != nil {
		if errors.As(err, &pe) && pe.Status >= 400 && pe.Status < 500 && strings.Contains(pe.Message, "User already registered") {
			if rerr := s.provider.ResendConfirmation(ctx, email); rerr != nil {
				return nil, ClassifyError("Couldn't resend confirmation link: " + providerMessage(rerr))
			}
			return &LoginResult{Email: email, Created: true, Message: MsgConfirmationResent}, nil
		}
		return nil, ClassifyError(providerMessage(err))
	}
	return &LoginResult{Email: email, Created: true, Message: MsgConfirmEmail}, nil
}

func (s *Service) startSession(ctx context.Context, email string) (*LoginResult, error) {
	token, expiresAt, err := s.jwt.Sign(Claims{Email: email})
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}
	if err := s.prefs.StartSession(ctx, email); err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}
	s.log.Info("user signed in", zap.String("email", email))
	return &LoginResult{Email: email, Confirmed: true, Token: token, ExpiresAt: expiresAt}, nil
}

// Logout ends the stored session.
func (s *Service) Logout(ctx context.Context, email string) error {
	return s.prefs.EndSession(ctx, email)
}

// StrongPassword requires six characters including a lowercase letter, an
// uppercase letter and a symbol.
func StrongPassword(p string) bool {
	if len([]rune(p)) < 6 {
		return false
	}
	var lower, upper, symbol bool
	for _, r := range p {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case r == '_' || unicode.IsDigit(r) || unicode.IsLetter(r):
		default:
			symbol = true
		}
	}
	return lower && upper && symbol
}

// ClassifyError files msg under the form fields it mentions, or under "form"
// when it mentions neither.
func ClassifyError(msg string) errors.FieldErrors {
	lower := strings.ToLower(msg)
	fe := errors.FieldErrors{}
	if strings.Contains(lower, "email") {
		fe["email"] = msg
	}
	if strings.Contains(lower, "password") {
		fe["password"] = msg
	}
	if len(fe) == 0 {
		fe["form"] = msg
	}
	return fe
}

func providerMessage(err error) string {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Message
	}
	return err.Error()
}
