package service

import (
	"context"
	"errors"
	"fmt"

	"art-collector/internal/domain/users"
	"art-collector/internal/logger"
	"art-collector/internal/repository"

	"github.com/go-playground/validator/v10"
)

const welcomeBody = `Hi,
Welcome to our site!

Just wanted to let you know:
if you're having any problems or want to report a bug, reply to this e-mail address.

This should be the first and the last automatic message you'll ever get from us.

We wish you all the best,
artCollector team
`

type collectionPurger interface {
	PurgeUser(ctx context.Context, userID string) error
}

type AccountService struct {
	users      UserRepository
	collection collectionPurger
	mailer     Mailer
	validate   *validator.Validate
	log        *logger.Logger
}

func NewAccountService(users UserRepository, collection collectionPurger, mailer Mailer, log *logger.Logger) *AccountService {
	return &AccountService{
		users:      users,
		collection: collection,
		mailer:     mailer,
		validate:   newValidator(),
		log:        log,
	}
}

type RegisterForm struct {
	Username string `form:"username" validate:"required,alphanum,min=3,max=32"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,strongpassword"`
}

type ProfileForm struct {
	Username    string `form:"username" validate:"required,alphanum,min=3,max=32"`
	Email       string `form:"email" validate:"required,email"`
	ShowName    string `form:"show_name" validate:"max=100"`
	ContactInfo string `form:"contact_info" validate:"max=500"`
}

func (s *AccountService) Register(ctx context.Context, form RegisterForm) (*users.User, error) {
	if err := validationError(s.validate.Struct(form)); err != nil {
		return nil, err
	}

	hashed, err := hashPassword(form.Password)
	if err != nil {
		return nil, err
	}

	u := &users.User{
		Username: form.Username,
		Email:    form.Email,
		Password: hashed,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("register: %w", err)
	}

	if err := s.mailer.Send(ctx, u.Email, "Welcome to artCollector", welcomeBody); err != nil {
		s.log.Warn().Err(err).Str("user_id", u.ID).Msg("failed to send welcome email")
	}

	s.log.Info().Str("user_id", u.ID).Msg("user registered")
	return u, nil
}

func (s *AccountService) Authenticate(ctx context.Context, username, password string) (*users.User, error) {
	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("authenticate: %w", err)
	}
	if !checkPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *AccountService) Get(ctx context.Context, id string) (*users.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (s *AccountService) UpdateProfile(ctx context.Context, userID string, form ProfileForm) error {
	if err := validationError(s.validate.Struct(form)); err != nil {
		return err
	}
	return s.update(ctx, userID, map[string]any{
		"username":     form.Username,
		"email":        form.Email,
		"show_name":    form.ShowName,
		"contact_info": form.ContactInfo,
	})
}

// UpdateCustomTable stores the user's collection table layout as sent.
func (s *AccountService) UpdateCustomTable(ctx context.Context, userID, table string) error {
	return s.update(ctx, userID, map[string]any{"custom_table": table})
}

func (s *AccountService) ChangePassword(ctx context.Context, userID, current, next string) error {
	u, err := s.Get(ctx, userID)
	if err != nil {
		return err
	}
	if !checkPassword(u.Password, current) {
		return ErrInvalidCredentials
	}
	return setPassword(ctx, s.users, u.ID, next)
}

// DeleteAccount re-checks the password, removes every piece (releasing the
// images) and finally the user.
func (s *AccountService) DeleteAccount(ctx context.Context, userID, password string) error {
	u, err := s.Get(ctx, userID)
	if err != nil {
		return err
	}
	if !checkPassword(u.Password, password) {
		return ErrInvalidCredentials
	}

	if err := s.collection.PurgeUser(ctx, u.ID); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	if err := s.users.Delete(ctx, u.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("delete account: %w", err)
	}

	s.log.Info().Str("user_id", u.ID).Msg("account deleted")
	return nil
}

func (s *AccountService) update(ctx context.Context, userID string, columns map[string]any) error {
	if err := s.users.Update(ctx, userID, columns); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return ErrUserNotFound
		case errors.Is(err, repository.ErrDuplicate):
			return ErrUserAlreadyExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

func setPassword(ctx context.Context, repo UserRepository, userID, plain string) error {
	if !isPasswordStrong(plain) {
		return ErrWeakPassword
	}
	hashed, err := hashPassword(plain)
	if err != nil {
		return err
	}
	if err := repo.Update(ctx, userID, map[string]any{"password": hashed}); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("set password: %w", err)
	}
	return nil
}
