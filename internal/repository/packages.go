package repository

import (
	"context"
	"fmt"

	"github.com/Black-png/trackers-api/internal/entity"
)

var (
	packageColumns          = []string{"id", "name", "level"}
	packageOperationColumns = []string{"id", "package_id", "operation_id"}
)

func (r *Repository) Packages(ctx context.Context) ([]entity.Package, error) {
	return list[entity.Package](ctx, r.db, "packages", packageColumns...)
}

func (r *Repository) InsertPackages(ctx context.Context, items []entity.Package) error {
	return insert(ctx, r.db, "packages", packageColumns, items, func(v entity.Package) []any {
		return []any{v.ID, v.Name, v.Level}
	})
}

func (r *Repository) Operations(ctx context.Context) ([]entity.Operation, error) {
	return list[entity.Operation](ctx, r.db, "operations", nameColumns...)
}

func (r *Repository) InsertOperations(ctx context.Context, items []entity.Operation) error {
	return insert(ctx, r.db, "operations", nameColumns, items, func(v entity.Operation) []any {
		return []any{v.ID, v.Name}
	})
}

func (r *Repository) PackageOperations(ctx context.Context) ([]entity.PackageOperation, error) {
	return list[entity.PackageOperation](ctx, r.db, "package_operations", packageOperationColumns...)
}

func (r *Repository) InsertPackageOperations(ctx context.Context, items []entity.PackageOperation) error {
	return insert(ctx, r.db, "package_operations", packageOperationColumns, items, func(v entity.PackageOperation) []any {
		return []any{v.ID, v.PackageID, v.OperationID}
	})
}

// PackagesWithOperations returns packages ordered by level with the names of
// the operations they unlock.
func (r *Repository) PackagesWithOperations(ctx context.Context) ([]entity.PackageWithOperations, error) {
	sqlQuery, args, err := psql.
		Select("p.name", "p.level", "COALESCE(array_agg(o.name ORDER BY o.name) FILTER (WHERE o.name IS NOT NULL), '{}')").
		From("packages p").
		LeftJoin("package_operations po ON po.package_id = p.id").
		LeftJoin("operations o ON o.id = po.operation_id").
		GroupBy("p.id", "p.name", "p.level").
		OrderBy("p.level").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("select packages: %w", err)
	}
	defer rows.Close()

	var packages []entity.PackageWithOperations

	for rows.Next() {
		var p entity.PackageWithOperations

		err = rows.Scan(&p.Name, &p.Level, &p.Operations)
		if err != nil {
			return nil, err
		}

		packages = append(packages, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return packages, nil
}
