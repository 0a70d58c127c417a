package repository

import (
	"context"

	"film-backend/internal/database"
	"film-backend/internal/models"
)

type RoleRepository interface {
	List(ctx context.Context, opts ListOptions) ([]models.Role, int64, error)
	FindByName(ctx context.Context, name string) (*models.Role, error)
	// Promote moves the user to the named role.
	Promote(ctx context.Context, userID uint, name string) error
}

type roleRepository struct {
	crudRepository[models.Role]
}

func NewRoleRepository(db *database.Database) RoleRepository {
	return &roleRepository{
		crudRepository: newCRUD[models.Role](db, "Role"),
	}
}

func (r *roleRepository) FindByName(ctx context.Context, name string) (*models.Role, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var role models.Role
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&role).Error; err != nil {
		return nil, notFound(err, r.entity, 0)
	}
	return &role, nil
}

func (r *roleRepository) Promote(ctx context.Context, userID uint, name string) error {
	role, err := r.FindByName(ctx, name)
	if err != nil {
		return err
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	res := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).Update("role_id", role.ID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Entity: "User", ID: userID}
	}
	return nil
}
