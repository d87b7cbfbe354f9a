package mappers

import (
	"encoding/json"
	"fmt"

	"github.com/anisurarzu/FTB-Server-Demo/internal/domain/user"
	"github.com/anisurarzu/FTB-Server-Demo/internal/infrastructure/persistence/models"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToModel(u *user.User) (*models.UserModel, error) {
	history, err := marshalJSON(u.LoginHistory())
	if err != nil {
		return nil, err
	}
	return &models.UserModel{
		ID:           u.ID(),
		LoginID:      u.LoginID(),
		FirstName:    u.FirstName(),
		LastName:     u.LastName(),
		Username:     u.Username(),
		Phone:        u.Phone(),
		Address:      u.Address(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		LoginHistory: history,
		CreatedAt:    u.CreatedAt(),
		UpdatedAt:    u.UpdatedAt(),
	}, nil
}

func (m *UserMapper) ToDomain(model *models.UserModel) (*user.User, error) {
	var history []user.LoginRecord
	if len(model.LoginHistory) > 0 {
		if err := json.Unmarshal(model.LoginHistory, &history); err != nil {
			return nil, fmt.Errorf("failed to unmarshal login history: %w", err)
		}
	}
	return user.ReconstructUser(user.UserReconstructParams{
		ID:           model.ID,
		LoginID:      model.LoginID,
		FirstName:    model.FirstName,
		LastName:     model.LastName,
		Username:     model.Username,
		Phone:        model.Phone,
		Address:      model.Address,
		Email:        model.Email,
		PasswordHash: model.PasswordHash,
		LoginHistory: history,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}), nil
}
