package repository

import (
	"context"
	"errors"
	"fmt"

	"film-backend/internal/database"
	"film-backend/internal/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	// Create inserts the user with the named role. Usernames are unique and
	// compared case-sensitively.
	Create(ctx context.Context, username, passwordHash, role string) (*models.User, error)
	FindByID(ctx context.Context, id uint) (*models.User, error)
	// FindByUsername returns nil without error when no user matches.
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	Count(ctx context.Context) (int64, error)
}

type userRepository struct {
	crudRepository[models.User]
}

func NewUserRepository(db *database.Database) UserRepository {
	return &userRepository{
		crudRepository: newCRUD[models.User](db, "User", "Role"),
	}
}

func (r *userRepository) Create(ctx context.Context, username, passwordHash, roleName string) (*models.User, error) {
	var created *models.User
	err := r.transaction(ctx, func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return &DuplicateError{Entity: "User", Field: "username", Value: username}
		}

		var role models.Role
		if err := tx.Where("name = ?", roleName).First(&role).Error; err != nil {
			return fmt.Errorf("failed to load role %q: %w", roleName, err)
		}

		user := models.User{Username: username, PasswordHash: passwordHash, RoleID: &role.ID}
		if err := tx.Create(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return &DuplicateError{Entity: "User", Field: "username", Value: username}
			}
			return err
		}

		var err error
		created, err = r.findInTx(tx, user.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var user models.User
	err := r.preloaded(r.db.WithContext(ctx)).Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
