package repository

import (
	"context"

	"github.com/Black-png/trackers-api/internal/entity"
)

var (
	nameColumns         = []string{"id", "name"}
	userAreaRoleColumns = []string{"id", "role_id", "area_id", "can_view", "can_create", "can_edit", "can_delete"}
)

func (r *Repository) HasParentFactory(ctx context.Context) (bool, error) {
	var exists bool

	q := `SELECT EXISTS (SELECT 1 FROM factory_configuration WHERE is_parent)`

	err := r.db.QueryRow(ctx, q).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (r *Repository) Roles(ctx context.Context) ([]entity.Role, error) {
	return list[entity.Role](ctx, r.db, "roles", nameColumns...)
}

func (r *Repository) InsertRoles(ctx context.Context, roles []entity.Role) error {
	return insert(ctx, r.db, "roles", nameColumns, roles, func(v entity.Role) []any {
		return []any{v.ID, v.Name}
	})
}

func (r *Repository) UserAreas(ctx context.Context) ([]entity.UserArea, error) {
	return list[entity.UserArea](ctx, r.db, "user_areas", nameColumns...)
}

func (r *Repository) InsertUserAreas(ctx context.Context, areas []entity.UserArea) error {
	return insert(ctx, r.db, "user_areas", nameColumns, areas, func(v entity.UserArea) []any {
		return []any{v.ID, v.Name}
	})
}

func (r *Repository) UserAreaRoles(ctx context.Context) ([]entity.UserAreaRole, error) {
	return list[entity.UserAreaRole](ctx, r.db, "user_area_roles", userAreaRoleColumns...)
}

func (r *Repository) InsertUserAreaRoles(ctx context.Context, grants []entity.UserAreaRole) error {
	return insert(ctx, r.db, "user_area_roles", userAreaRoleColumns, grants, func(v entity.UserAreaRole) []any {
		return []any{v.ID, v.RoleID, v.AreaID, v.CanView, v.CanCreate, v.CanEdit, v.CanDelete}
	})
}
