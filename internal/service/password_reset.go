package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"art-collector/internal/domain/users"
	"art-collector/internal/logger"
	"art-collector/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const ResetTokenTTL = 15 * time.Minute

const resetBody = `Hi,

It seems that you have requested a password reset.
If you want to proceed: click the link below and follow the instructions.
The link will be available for 15 minutes only.

%s

Take care,
artCollector team
`

type resetClaims struct {
	Email string `json:"email"`
	ID    string `json:"id"`
	jwt.RegisteredClaims
}

// PasswordResetService issues and checks reset tokens. A token is signed with
// the server secret plus the account's current password hash, so setting a
// new password invalidates every token issued before.
type PasswordResetService struct {
	users  UserRepository
	mailer Mailer
	secret string
	now    func() time.Time
	log    *logger.Logger
}

func NewPasswordResetService(users UserRepository, mailer Mailer, secret string, log *logger.Logger) *PasswordResetService {
	return &PasswordResetService{
		users:  users,
		mailer: mailer,
		secret: secret,
		now:    time.Now,
		log:    log,
	}
}

// Request mails a reset link rooted at origin to the owner of email.
func (s *PasswordResetService) Request(ctx context.Context, email, origin string) error {
	u, err := s.users.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("password reset request: %w", err)
	}

	token, err := s.IssueToken(*u)
	if err != nil {
		return err
	}

	link := fmt.Sprintf("%s/password_reset/%s/%s", strings.TrimRight(origin, "/"), u.ID, token)
	if err := s.mailer.Send(ctx, u.Email, "Password Reset", fmt.Sprintf(resetBody, link)); err != nil {
		return fmt.Errorf("send reset email: %w", err)
	}

	s.log.Info().Str("user_id", u.ID).Msg("password reset requested")
	return nil
}

func (s *PasswordResetService) IssueToken(u users.User) (string, error) {
	now := s.now()
	claims := resetClaims{
		Email: u.Email,
		ID:    u.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ResetTokenTTL)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key(u))
	if err != nil {
		return "", fmt.Errorf("sign reset token: %w", err)
	}
	return signed, nil
}

// Verify returns the account a token was issued for. Any failure, including
// an unknown id, is reported as ErrInvalidResetToken.
func (s *PasswordResetService) Verify(ctx context.Context, id, token string) (*users.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidResetToken
	}
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidResetToken
		}
		return nil, fmt.Errorf("verify reset token: %w", err)
	}

	var claims resetClaims
	_, err = jwt.ParseWithClaims(token, &claims,
		func(*jwt.Token) (any, error) { return s.key(*u), nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		s.log.Debug().Err(err).Str("user_id", id).Msg("reset token rejected")
		return nil, ErrInvalidResetToken
	}
	if claims.ID != u.ID || claims.Email != u.Email {
		return nil, ErrInvalidResetToken
	}
	return u, nil
}

func (s *PasswordResetService) Reset(ctx context.Context, id, token, newPassword string) error {
	u, err := s.Verify(ctx, id, token)
	if err != nil {
		return err
	}
	if err := setPassword(ctx, s.users, u.ID, newPassword); err != nil {
		return err
	}
	s.log.Info().Str("user_id", u.ID).Msg("password reset")
	return nil
}

func (s *PasswordResetService) key(u users.User) []byte {
	return []byte(s.secret + u.Password)
}
