package user

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/anisurarzu/FTB-Server-Demo/internal/domain/user"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/errors"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/logger"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/utils"
)

// PasswordHasher abstracts the bcrypt dependency for tests.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer issues access tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID uint) (string, error)
}

type RegisterCommand struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Username  string `json:"username" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Address   string `json:"address" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
}

type LoginCommand struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
	PublicIP  string `json:"publicIP"`
	PrivateIP string `json:"privateIP"`
}

type AuthResult struct {
	User  *user.User
	Token string
}

// Service handles back-office account registration and login.
type Service struct {
	repo   user.Repository
	hasher PasswordHasher
	tokens TokenIssuer
	logger logger.Interface
	randFn func(n int) int
}

func NewService(repo user.Repository, hasher PasswordHasher, tokens TokenIssuer, log logger.Interface) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
		logger: log,
		randFn: rand.Intn,
	}
}

func (s *Service) Register(ctx context.Context, cmd RegisterCommand) (*AuthResult, error) {
	if err := utils.ValidateStruct(cmd); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByEmail(ctx, cmd.Email); err == nil {
		return nil, errors.NewConflictError("user already exists", cmd.Email)
	} else if !errors.IsNotFoundError(err) {
		return nil, err
	}
	if _, err := s.repo.GetByUsername(ctx, cmd.Username); err == nil {
		return nil, errors.NewConflictError("username already taken", cmd.Username)
	} else if !errors.IsNotFoundError(err) {
		return nil, err
	}
	if _, err := s.repo.GetByPhone(ctx, cmd.Phone); err == nil {
		return nil, errors.NewConflictError("phone number already registered", cmd.Phone)
	} else if !errors.IsNotFoundError(err) {
		return nil, err
	}

	hash, err := s.hasher.Hash(cmd.Password)
	if err != nil {
		return nil, errors.NewInternalError("failed to hash password")
	}

	u, err := user.NewUser(s.generateLoginID(), cmd.FirstName, cmd.LastName, cmd.Username, cmd.Phone, cmd.Address, cmd.Email, hash)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.repo.Create(ctx, u); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("user already exists")
		}
		s.logger.Errorw("failed to create user", "username", cmd.Username, "error", err)
		return nil, errors.NewInternalError("failed to create user")
	}

	token, err := s.tokens.Issue(u.ID())
	if err != nil {
		return nil, errors.NewInternalError("failed to issue token")
	}

	s.logger.Infow("user registered", "userID", u.ID(), "loginID", u.LoginID(), "username", u.Username())
	return &AuthResult{User: u, Token: token}, nil
}

func (s *Service) Login(ctx context.Context, cmd LoginCommand) (*AuthResult, error) {
	if err := utils.ValidateStruct(cmd); err != nil {
		return nil, err
	}

	u, err := s.repo.GetByUsername(ctx, cmd.Username)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewUnauthorizedError("invalid username or password")
		}
		return nil, err
	}

	if err := s.hasher.Compare(u.PasswordHash(), cmd.Password); err != nil {
		return nil, errors.NewUnauthorizedError("invalid username or password")
	}

	u.RecordLogin(user.LoginRecord{
		Latitude:  cmd.Latitude,
		Longitude: cmd.Longitude,
		PublicIP:  cmd.PublicIP,
		PrivateIP: cmd.PrivateIP,
	})
	if err := s.repo.Update(ctx, u); err != nil {
		// login still succeeds when only the history write fails
		s.logger.Warnw("failed to record login history", "userID", u.ID(), "error", err)
	}

	token, err := s.tokens.Issue(u.ID())
	if err != nil {
		return nil, errors.NewInternalError("failed to issue token")
	}

	s.logger.Infow("user logged in", "userID", u.ID(), "username", u.Username())
	return &AuthResult{User: u, Token: token}, nil
}

func (s *Service) Profile(ctx context.Context, userID uint) (*user.User, error) {
	return s.repo.GetByID(ctx, userID)
}

// generateLoginID produces a display ID like FTB-4821.
func (s *Service) generateLoginID() string {
	return fmt.Sprintf("FTB-%d", 1000+s.randFn(9000))
}
