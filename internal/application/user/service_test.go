package user

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anisurarzu/FTB-Server-Demo/internal/domain/user"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/errors"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/logger"
)

type memUserRepo struct {
	users  map[uint]*user.User
	nextID uint
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uint]*user.User), nextID: 1}
}

func (r *memUserRepo) Create(_ context.Context, u *user.User) error {
	u.SetID(r.nextID)
	r.nextID++
	r.users[u.ID()] = u
	return nil
}

func (r *memUserRepo) Update(_ context.Context, u *user.User) error {
	r.users[u.ID()] = u
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id uint) (*user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errors.NewNotFoundError("user not found")
	}
	return u, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range r.users {
		if u.Email() == email {
			return u, nil
		}
	}
	return nil, errors.NewNotFoundError("user not found")
}

func (r *memUserRepo) GetByUsername(_ context.Context, username string) (*user.User, error) {
	for _, u := range r.users {
		if u.Username() == username {
			return u, nil
		}
	}
	return nil, errors.NewNotFoundError("user not found")
}

func (r *memUserRepo) GetByPhone(_ context.Context, phone string) (*user.User, error) {
	for _, u := range r.users {
		if u.Phone() == phone {
			return u, nil
		}
	}
	return nil, errors.NewNotFoundError("user not found")
}

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (fakeHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return fmt.Errorf("mismatch")
	}
	return nil
}

type fakeIssuer struct{}

func (fakeIssuer) Issue(userID uint) (string, error) {
	return fmt.Sprintf("token-%d", userID), nil
}

func validRegisterCommand() RegisterCommand {
	return RegisterCommand{
		FirstName: "Anisur",
		LastName:  "Rahman",
		Username:  "anisur",
		Phone:     "01711112222",
		Address:   "Dhaka",
		Email:     "anisur@example.com",
		Password:  "secret123",
	}
}

func newTestService(repo *memUserRepo) *Service {
	svc := NewService(repo, fakeHasher{}, fakeIssuer{}, logger.NewNop())
	svc.randFn = func(int) int { return 821 }
	return svc
}

func TestRegister(t *testing.T) {
	repo := newMemUserRepo()
	svc := newTestService(repo)

	result, err := svc.Register(context.Background(), validRegisterCommand())
	require.NoError(t, err)
	assert.Equal(t, "token-1", result.Token)
	assert.Equal(t, "FTB-1821", result.User.LoginID())
	assert.Equal(t, "hashed:secret123", result.User.PasswordHash())
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newMemUserRepo()
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), validRegisterCommand())
	require.NoError(t, err)

	cmd := validRegisterCommand()
	cmd.Username = "other"
	cmd.Phone = "01899998888"
	_, err = svc.Register(context.Background(), cmd)
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	repo := newMemUserRepo()
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), validRegisterCommand())
	require.NoError(t, err)

	cmd := validRegisterCommand()
	cmd.Email = "other@example.com"
	cmd.Phone = "01899998888"
	_, err = svc.Register(context.Background(), cmd)
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestLogin(t *testing.T) {
	repo := newMemUserRepo()
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), validRegisterCommand())
	require.NoError(t, err)

	result, err := svc.Login(context.Background(), LoginCommand{
		Username: "anisur",
		Password: "secret123",
		Latitude: "23.8103",
		PublicIP: "103.4.145.1",
	})
	require.NoError(t, err)
	assert.Equal(t, "token-1", result.Token)
	require.Len(t, result.User.LoginHistory(), 1)
	assert.Equal(t, "23.8103", result.User.LoginHistory()[0].Latitude)
	assert.False(t, result.User.LoginHistory()[0].LoginTime.IsZero())
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newMemUserRepo()
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), validRegisterCommand())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), LoginCommand{Username: "anisur", Password: "wrong"})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := newTestService(newMemUserRepo())

	_, err := svc.Login(context.Background(), LoginCommand{Username: "ghost", Password: "x"})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
}

func TestProfile(t *testing.T) {
	repo := newMemUserRepo()
	svc := newTestService(repo)

	result, err := svc.Register(context.Background(), validRegisterCommand())
	require.NoError(t, err)

	u, err := svc.Profile(context.Background(), result.User.ID())
	require.NoError(t, err)
	assert.Equal(t, "anisur", u.Username())

	_, err = svc.Profile(context.Background(), 999)
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
