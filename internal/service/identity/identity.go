package identity

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tenangapp/tenang_backend/internal/repo"
	entpsy "github.com/tenangapp/tenang_backend/internal/repo/psychologist"
	entuser "github.com/tenangapp/tenang_backend/internal/repo/user"
)

// Role tags which collection an account id was found in.
type Role string

const (
	RolePsychologist Role = "psychologist"
	RolePatient      Role = "patient"
)

// Label returns the generic display label used when an actor has no name.
func (r Role) Label() string {
	switch r {
	case RolePsychologist:
		return "Psikolog"
	default:
		return "Pasien"
	}
}

// Actor is a role-tagged account identity.
type Actor struct {
	ID          uuid.UUID
	Role        Role
	DisplayName string
}

// Service resolves an account id to a role-tagged actor by probing the
// psychologist collection first, then the user collection.
type Service interface {
	Resolve(ctx context.Context, id uuid.UUID) (*Actor, error)
}

type identityService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &identityService{db: db}
}

func (s *identityService) Resolve(ctx context.Context, id uuid.UUID) (*Actor, error) {
	psy, err := s.db.Psychologist.Query().
		Where(entpsy.ID(id)).
		Only(ctx)
	if err == nil {
		return &Actor{ID: id, Role: RolePsychologist, DisplayName: psy.DisplayName}, nil
	}
	if !repo.IsNotFound(err) {
		return nil, fmt.Errorf("probe psychologists: %w", err)
	}

	u, err := s.db.User.Query().
		Where(entuser.ID(id)).
		Only(ctx)
	if err == nil {
		return &Actor{ID: id, Role: RolePatient, DisplayName: u.DisplayName}, nil
	}
	if !repo.IsNotFound(err) {
		return nil, fmt.Errorf("probe users: %w", err)
	}

	return nil, ErrUnknownActor
}
