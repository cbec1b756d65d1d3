package seeder

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/Black-png/trackers-api/internal/catalog"
	"github.com/Black-png/trackers-api/internal/entity"
)

type rolePair struct {
	roleID uuid.UUID
	areaID uuid.UUID
}

func grantKey(g entity.UserAreaRole) rolePair {
	return rolePair{roleID: g.RoleID, areaID: g.AreaID}
}

func (s *Seeder) seedRoles(ctx context.Context) (int, error) {
	hasParent, err := s.store.HasParentFactory(ctx)
	if err != nil {
		return 0, err
	}

	names := catalog.Roles(hasParent)
	desired := make([]entity.Role, 0, len(names))

	for _, name := range names {
		desired = append(desired, entity.Role{ID: s.newID(), Name: name})
	}

	return reconcile(ctx, s.store.Roles, s.store.InsertRoles, desired, func(r entity.Role) string { return r.Name })
}

func (s *Seeder) seedUserAreas(ctx context.Context) (int, error) {
	names := catalog.Areas()
	desired := make([]entity.UserArea, 0, len(names))

	for _, name := range names {
		desired = append(desired, entity.UserArea{ID: s.newID(), Name: name})
	}

	return reconcile(ctx, s.store.UserAreas, s.store.InsertUserAreas, desired, func(a entity.UserArea) string { return a.Name })
}

// seedUserAreaRoles fills the role x area matrix with default grants.
func (s *Seeder) seedUserAreaRoles(ctx context.Context) (int, error) {
	roles, err := s.store.Roles(ctx)
	if err != nil {
		return 0, err
	}

	areas, err := s.store.UserAreas(ctx)
	if err != nil {
		return 0, err
	}

	desired := make([]entity.UserAreaRole, 0, len(roles)*len(areas))

	for _, role := range roles {
		for _, area := range areas {
			desired = append(desired, s.grant(role, area, catalog.DefaultPermissions(role.Name, area.Name)))
		}
	}

	return reconcile(ctx, s.store.UserAreaRoles, s.store.InsertUserAreaRoles, desired, grantKey)
}

// backfillAreaRoles makes sure every role can at least view the areas that
// operators need to classify stops and rejects.
func (s *Seeder) backfillAreaRoles(ctx context.Context) (int, error) {
	roles, err := s.store.Roles(ctx)
	if err != nil {
		return 0, err
	}

	areas, err := s.store.UserAreas(ctx)
	if err != nil {
		return 0, err
	}

	byName := make(map[string]entity.UserArea, len(areas))
	for _, a := range areas {
		byName[a.Name] = a
	}

	var desired []entity.UserAreaRole

	for _, name := range catalog.BackfillAreas() {
		area, ok := byName[name]
		if !ok {
			return 0, missingRef("user area " + name)
		}

		for _, role := range roles {
			desired = append(desired, s.grant(role, area, catalog.BackfillPermissions(role.Name, area.Name)))
		}
	}

	return reconcile(ctx, s.store.UserAreaRoles, s.store.InsertUserAreaRoles, desired, grantKey)
}

func (s *Seeder) grant(role entity.Role, area entity.UserArea, p entity.Permissions) entity.UserAreaRole {
	return entity.UserAreaRole{
		ID:        s.newID(),
		RoleID:    role.ID,
		AreaID:    area.ID,
		CanView:   p.View,
		CanCreate: p.Create,
		CanEdit:   p.Edit,
		CanDelete: p.Delete,
	}
}
