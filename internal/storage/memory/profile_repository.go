package memory

import (
	"context"
	"sync"
	"time"

	domainErrors "github.com/coiffly/coiffly/internal/domain/errors"
	"github.com/coiffly/coiffly/internal/domain/model"
)

// ProfileRepository stores registered identities in-memory. This is the
// auth shim of the marketplace: profiles, credentials and roles, nothing
// more.
type ProfileRepository struct {
	mu      sync.Mutex
	byLogin map[string]*model.Profile
	byID    map[int64]*model.Profile
	nextID  int64

	now func() time.Time
}

// NewProfileRepository constructs an empty profile repository.
func NewProfileRepository() *ProfileRepository {
	return &ProfileRepository{
		byLogin: make(map[string]*model.Profile),
		byID:    make(map[int64]*model.Profile),
		nextID:  1,
		now:     time.Now,
	}
}

// Create registers a profile unless the login is taken. The role starts as
// none until assigned.
func (r *ProfileRepository) Create(ctx context.Context, login, passwordHash, name string) (*model.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byLogin[login]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}

	profile := &model.Profile{
		ID:           r.nextID,
		Login:        login,
		PasswordHash: passwordHash,
		Name:         name,
		Role:         model.RoleNone,
		CreatedAt:    r.now(),
	}
	r.nextID++
	r.byLogin[login] = profile
	r.byID[profile.ID] = profile

	result := *profile
	return &result, nil
}

// GetByLogin fetches a profile by login or returns not found.
func (r *ProfileRepository) GetByLogin(ctx context.Context, login string) (*model.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if profile, ok := r.byLogin[login]; ok {
		result := *profile
		return &result, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches a profile by identifier or returns not found.
func (r *ProfileRepository) GetByID(ctx context.Context, id int64) (*model.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if profile, ok := r.byID[id]; ok {
		result := *profile
		return &result, nil
	}
	return nil, domainErrors.ErrNotFound
}

// SetRole assigns the profile role or returns not found.
func (r *ProfileRepository) SetRole(ctx context.Context, id int64, role model.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	profile, ok := r.byID[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	profile.Role = role
	return nil
}
