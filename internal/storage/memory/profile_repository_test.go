package memory

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/coiffly/coiffly/internal/domain/errors"
	"github.com/coiffly/coiffly/internal/domain/model"
)

func TestProfileCreateAndLookup(t *testing.T) {
	repo := NewProfileRepository()
	ctx := context.Background()

	profile, err := repo.Create(ctx, "fatou", "hash", "Fatou")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if profile.ID == 0 {
		t.Fatal("expected profile to receive an id")
	}
	if profile.Role != model.RoleNone {
		t.Fatalf("expected role to start as none, got %s", profile.Role)
	}

	byLogin, err := repo.GetByLogin(ctx, "fatou")
	if err != nil || byLogin.ID != profile.ID {
		t.Fatalf("get by login: %v", err)
	}
	byID, err := repo.GetByID(ctx, profile.ID)
	if err != nil || byID.Login != "fatou" {
		t.Fatalf("get by id: %v", err)
	}
}

func TestProfileCreateRejectsDuplicateLogin(t *testing.T) {
	repo := NewProfileRepository()
	ctx := context.Background()

	if _, err := repo.Create(ctx, "fatou", "hash", "Fatou"); err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err := repo.Create(ctx, "fatou", "other", "Fatou B")
	if !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected already exists, got %v", err)
	}
}

func TestProfileLookupMisses(t *testing.T) {
	repo := NewProfileRepository()
	ctx := context.Background()

	if _, err := repo.GetByLogin(ctx, "missing"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := repo.GetByID(ctx, 99); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestProfileSetRole(t *testing.T) {
	repo := NewProfileRepository()
	ctx := context.Background()

	profile, err := repo.Create(ctx, "awa", "hash", "Awa")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.SetRole(ctx, profile.ID, model.RoleCoiffeur); err != nil {
		t.Fatalf("set role: %v", err)
	}
	updated, err := repo.GetByID(ctx, profile.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if updated.Role != model.RoleCoiffeur {
		t.Fatalf("expected coiffeur role, got %s", updated.Role)
	}

	if err := repo.SetRole(ctx, 42, model.RoleClient); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found for unknown profile, got %v", err)
	}
}
