package user

import (
	"fmt"
	"time"

	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/biztime"
)

// LoginRecord is one entry in a user's login history. Coordinates come
// from the client and are stored as reported.
type LoginRecord struct {
	Latitude  string    `json:"latitude,omitempty"`
	Longitude string    `json:"longitude,omitempty"`
	PublicIP  string    `json:"publicIP,omitempty"`
	PrivateIP string    `json:"privateIP,omitempty"`
	LoginTime time.Time `json:"loginTime"`
}

// User is a back-office account. Email, username and phone are each
// unique. PasswordHash is always a bcrypt hash, never plaintext.
type User struct {
	id           uint
	loginID      string
	firstName    string
	lastName     string
	username     string
	phone        string
	address      string
	email        string
	passwordHash string
	loginHistory []LoginRecord
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(loginID, firstName, lastName, username, phone, address, email, passwordHash string) (*User, error) {
	if firstName == "" || lastName == "" {
		return nil, fmt.Errorf("first and last name are required")
	}
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if phone == "" {
		return nil, fmt.Errorf("phone is required")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	now := biztime.NowUTC()
	return &User{
		loginID:      loginID,
		firstName:    firstName,
		lastName:     lastName,
		username:     username,
		phone:        phone,
		address:      address,
		email:        email,
		passwordHash: passwordHash,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// RecordLogin appends a login history entry.
func (u *User) RecordLogin(record LoginRecord) {
	if record.LoginTime.IsZero() {
		record.LoginTime = biztime.NowUTC()
	}
	u.loginHistory = append(u.loginHistory, record)
	u.updatedAt = biztime.NowUTC()
}

func (u *User) ID() uint                    { return u.id }
func (u *User) LoginID() string             { return u.loginID }
func (u *User) FirstName() string           { return u.firstName }
func (u *User) LastName() string            { return u.lastName }
func (u *User) Username() string            { return u.username }
func (u *User) Phone() string               { return u.phone }
func (u *User) Address() string             { return u.address }
func (u *User) Email() string               { return u.email }
func (u *User) PasswordHash() string        { return u.passwordHash }
func (u *User) LoginHistory() []LoginRecord { return u.loginHistory }
func (u *User) CreatedAt() time.Time        { return u.createdAt }
func (u *User) UpdatedAt() time.Time        { return u.updatedAt }

func (u *User) SetID(id uint) {
	u.id = id
}

type UserReconstructParams struct {
	ID           uint
	LoginID      string
	FirstName    string
	LastName     string
	Username     string
	Phone        string
	Address      string
	Email        string
	PasswordHash string
	LoginHistory []LoginRecord
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func ReconstructUser(params UserReconstructParams) *User {
	return &User{
		id:           params.ID,
		loginID:      params.LoginID,
		firstName:    params.FirstName,
		lastName:     params.LastName,
		username:     params.Username,
		phone:        params.Phone,
		address:      params.Address,
		email:        params.Email,
		passwordHash: params.PasswordHash,
		loginHistory: params.LoginHistory,
		createdAt:    params.CreatedAt,
		updatedAt:    params.UpdatedAt,
	}
}
