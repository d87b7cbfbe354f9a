package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/anisurarzu/FTB-Server-Demo/internal/domain/user"
	"github.com/anisurarzu/FTB-Server-Demo/internal/infrastructure/persistence/mappers"
	"github.com/anisurarzu/FTB-Server-Demo/internal/infrastructure/persistence/models"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/db"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/errors"
)

type UserRepository struct {
	db     *gorm.DB
	mapper *mappers.UserMapper
}

var _ user.Repository = (*UserRepository)(nil)

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{
		db:     database,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	model, err := r.mapper.ToModel(u)
	if err != nil {
		return err
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return err
	}
	u.SetID(model.ID)
	return nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	model, err := r.mapper.ToModel(u)
	if err != nil {
		return err
	}
	return db.GetTxFromContext(ctx, r.db).Save(model).Error
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("user not found")
		}
		return nil, err
	}
	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.getByField(ctx, "email", email)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	return r.getByField(ctx, "username", username)
}

func (r *UserRepository) GetByPhone(ctx context.Context, phone string) (*user.User, error) {
	return r.getByField(ctx, "phone", phone)
}

func (r *UserRepository) getByField(ctx context.Context, field, value string) (*user.User, error) {
	var model models.UserModel
	err := db.GetTxFromContext(ctx, r.db).
		Where(field+" = ?", value).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("user not found")
		}
		return nil, err
	}
	return r.mapper.ToDomain(&model)
}
