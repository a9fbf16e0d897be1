package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shuleni/kazi/core"
)

var (
	// errors
	ErrEmailExists = errors.New("a user with this email already exists")

	errInvalidCredentials = "Invalid credentials"
	errEmailRegistered    = "Email already registered"
)

type (
	// Repository abstracts the users collection. Lookups that find nothing
	// return (nil, nil); only store faults are errors.
	Repository interface {
		CreateUser(ctx context.Context, usr User) (User, error)
		FindUsers(ctx context.Context, opts core.ListOptions) ([]User, error)
		GetUserByID(ctx context.Context, id string, project ...core.Projection) (*User, error)
		GetUserByEmail(ctx context.Context, email string) (*User, error)
		UpdateUser(ctx context.Context, uu UpdateUser) (*User, error)
		DeleteUserByID(ctx context.Context, id string) (*User, error)
		CountUsers(ctx context.Context) (int64, error)
	}

	Service struct {
		repo    Repository
		mailSvc core.EmailService
		logger  core.Logger
	}
)

func NewService(repo Repository, mailSvc core.EmailService, logger core.Logger) *Service {
	return &Service{repo: repo, mailSvc: mailSvc, logger: logger}
}

func (svc *Service) Create(ctx context.Context, nu NewUser) (User, error) {
	now := time.Now().UTC()
	usr := User{
		Name:      nu.Name,
		Email:     nu.Email,
		Password:  nu.Password,
		Class:     nu.Class,
		Role:      nu.Role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	usr, err := svc.repo.CreateUser(ctx, usr)
	if err == ErrEmailExists {
		return User{}, core.NewValidationError(err, core.FieldError{Field: "email", Error: err.Error()})
	}
	return usr, err
}

func (svc *Service) Find(ctx context.Context, opts core.ListOptions) ([]User, error) {
	return svc.repo.FindUsers(ctx, opts)
}

func (svc *Service) GetByID(ctx context.Context, id string, project ...core.Projection) (*User, error) {
	return svc.repo.GetUserByID(ctx, id, project...)
}

func (svc *Service) GetByEmail(ctx context.Context, email string) (*User, error) {
	return svc.repo.GetUserByEmail(ctx, core.CleanString(email, true /* lower */))
}

func (svc *Service) Update(ctx context.Context, uu UpdateUser) (*User, error) {
	usr, err := svc.repo.UpdateUser(ctx, uu)
	if err == ErrEmailExists {
		return nil, core.NewValidationError(err, core.FieldError{Field: "email", Error: err.Error()})
	}
	return usr, err
}

func (svc *Service) Delete(ctx context.Context, id string) (*User, error) {
	return svc.repo.DeleteUserByID(ctx, id)
}

func (svc *Service) Count(ctx context.Context) (int64, error) {
	return svc.repo.CountUsers(ctx)
}

// Authenticate matches an email/password pair against the stored account.
// Both a missing account and a password mismatch yield the same message.
func (svc *Service) Authenticate(ctx context.Context, email, pwd string) (User, error) {
	usr, err := svc.GetByEmail(ctx, email)
	if err != nil {
		return User{}, err
	}
	if usr == nil || !usr.CheckPassword(pwd) {
		return User{}, core.NewAuthError(errInvalidCredentials)
	}
	return *usr, nil
}

// Register creates a student account from the self-registration flow.
// The class is left unset; an admin assigns it later via users.update.
func (svc *Service) Register(ctx context.Context, name, email, pwd string) (User, error) {
	existing, err := svc.GetByEmail(ctx, email)
	if err != nil {
		return User{}, err
	}
	if existing != nil {
		return User{}, core.NewAuthError(errEmailRegistered)
	}

	now := time.Now().UTC()
	usr := User{
		Name:      strings.ToUpper(core.CleanString(name)),
		Email:     core.CleanString(email, true /* lower */),
		Password:  core.CleanString(pwd),
		Role:      core.RoleStudent,
		CreatedAt: now,
		UpdatedAt: now,
	}
	usr, err = svc.repo.CreateUser(ctx, usr)
	if err != nil {
		if err == ErrEmailExists {
			return User{}, core.NewAuthError(errEmailRegistered)
		}
		return User{}, err
	}

	svc.sendWelcomeMail(usr)
	return usr, nil
}

func (svc *Service) sendWelcomeMail(usr User) {
	if svc.mailSvc == nil {
		return
	}
	svc.mailSvc.SendMessages(core.NewWelcomeEmail(usr.Name, usr.Email))
}
