package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/config"
)

// BcryptHasher hashes passwords with a configurable cost.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cfg config.PasswordConfig) *BcryptHasher {
	cost := cfg.BcryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (h *BcryptHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
