package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/shopline/storefront/internal/domain/errors"
	"github.com/shopline/storefront/internal/domain/model"
	"github.com/shopline/storefront/internal/domain/repository"
	pkgAuth "github.com/shopline/storefront/internal/pkg/auth"
)

// DirectoryUseCase is the plain user-directory CRUD consumed by staff
// tooling and by invoice bill-to resolution.
type DirectoryUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
}

// NewDirectoryUseCase constructs DirectoryUseCase.
func NewDirectoryUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher) *DirectoryUseCase {
	return &DirectoryUseCase{users: users, hasher: hasher}
}

// CreateUserInput carries new user attributes supplied by staff.
type CreateUserInput struct {
	Name     string
	Email    string
	Phone    string
	Role     model.Role
	Password string
}

// Create registers a user with an explicit role.
func (u *DirectoryUseCase) Create(ctx context.Context, input CreateUserInput) (*model.User, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if name == "" || email == "" || input.Password == "" {
		return nil, domainErrors.ErrValidation
	}

	hash, err := u.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	return u.users.Create(ctx, model.User{
		Name:         name,
		Email:        email,
		Phone:        strings.TrimSpace(input.Phone),
		Role:         input.Role,
		PasswordHash: hash,
	})
}

// Get fetches one user.
func (u *DirectoryUseCase) Get(ctx context.Context, id string) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}

// List returns all users, newest first.
func (u *DirectoryUseCase) List(ctx context.Context) ([]model.User, error) {
	return u.users.List(ctx)
}

// UpdateUserInput carries mutable user attributes.
type UpdateUserInput struct {
	Name  string
	Email string
	Phone string
	Role  model.Role
}

// Update replaces user profile fields.
func (u *DirectoryUseCase) Update(ctx context.Context, id string, input UpdateUserInput) (*model.User, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if name == "" || email == "" {
		return nil, domainErrors.ErrValidation
	}
	return u.users.Update(ctx, model.User{
		ID:    id,
		Name:  name,
		Email: email,
		Phone: strings.TrimSpace(input.Phone),
		Role:  input.Role,
	})
}

// Delete removes a user.
func (u *DirectoryUseCase) Delete(ctx context.Context, id string) error {
	return u.users.Delete(ctx, id)
}
