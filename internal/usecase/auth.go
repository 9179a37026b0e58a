package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/coiffly/coiffly/internal/domain/errors"
	"github.com/coiffly/coiffly/internal/domain/model"
	"github.com/coiffly/coiffly/internal/domain/repository"
	pkgAuth "github.com/coiffly/coiffly/internal/pkg/auth"
)

// AuthUseCase handles profile lifecycle and token management.
type AuthUseCase struct {
	profiles repository.ProfileRepository
	hasher   pkgAuth.PasswordHasher
	tokens   pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(profiles repository.ProfileRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{profiles: profiles, hasher: hasher, tokens: strategy}
}

// Register creates a new profile with login/password and returns auth token.
// The display name falls back to the login when absent.
func (u *AuthUseCase) Register(ctx context.Context, login, password, name string) (*model.Profile, string, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}
	if name = strings.TrimSpace(name); name == "" {
		name = login
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	profile, err := u.profiles.Create(ctx, login, hash, name)
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, "", domainErrors.ErrAlreadyExists
		}
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(profile.ID)
	if err != nil {
		return nil, "", err
	}

	return profile, token, nil
}

// Authenticate validates credentials and returns auth token.
func (u *AuthUseCase) Authenticate(ctx context.Context, login, password string) (*model.Profile, string, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	profile, err := u.profiles.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(profile.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(profile.ID)
	if err != nil {
		return nil, "", err
	}

	return profile, token, nil
}

// ParseToken extracts profile ID from provided token.
func (u *AuthUseCase) ParseToken(token string) (int64, error) {
	if token == "" {
		return 0, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// GetByID fetches profile by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.Profile, error) {
	return u.profiles.GetByID(ctx, id)
}

// AssignRole records which side of the marketplace the profile acts on.
func (u *AuthUseCase) AssignRole(ctx context.Context, id int64, role model.Role) error {
	if !model.ValidRole(role) {
		return domainErrors.ErrInvalidRole
	}
	return u.profiles.SetRole(ctx, id, role)
}
