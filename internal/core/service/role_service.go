package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog"

	"github.com/soaeast/crm-api/internal/core/domain"
	"github.com/soaeast/crm-api/internal/core/ports"
)

// RoleService manages roles and guards deletion: a role still assigned to
// team members cannot be removed.
type RoleService struct {
	roles  ports.RoleRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewRoleService(roles ports.RoleRepository, users ports.UserRepository, logger zerolog.Logger) *RoleService {
	return &RoleService{roles: roles, users: users, logger: logger}
}

func (s *RoleService) Create(ctx context.Context, input ports.CreateRoleInput) (*domain.Role, error) {
	role := &domain.Role{
		ID:          uuid.Must(uuid.NewV4()).String(),
		Name:        input.Name,
		Description: input.Description,
		Permissions: input.Permissions,
		CreatedAt:   time.Now().UTC(),
	}
	if role.Permissions == nil {
		role.Permissions = []string{}
	}
	if err := s.roles.Create(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}

func (s *RoleService) Get(ctx context.Context, id string) (*domain.Role, error) {
	return s.roles.FindByID(ctx, id)
}

func (s *RoleService) List(ctx context.Context) ([]*domain.Role, error) {
	return s.roles.List(ctx)
}

func (s *RoleService) Update(ctx context.Context, id string, patch domain.RolePatch) (*domain.Role, error) {
	if patch.IsEmpty() {
		return nil, domain.ErrNoFieldsToUpdate
	}
	return s.roles.UpdateFields(ctx, id, patch)
}

// Delete removes a role only when no team member holds it; otherwise the
// caller gets a count-bearing rejection.
func (s *RoleService) Delete(ctx context.Context, id string) error {
	role, err := s.roles.FindByID(ctx, id)
	if err != nil {
		return err
	}

	assigned, err := s.users.CountByRole(ctx, role.Name)
	if err != nil {
		return err
	}
	if assigned > 0 {
		return &domain.RoleInUseError{Count: assigned}
	}

	if err := s.roles.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("role", role.Name).Msg("role deleted")
	return nil
}
