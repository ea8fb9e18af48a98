package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is a customer or staff identity. Guest checkouts become users on first payment.
type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	firstName    string
	lastName     string
	role         Role
	lastLogin    *time.Time
	isActive     bool
	createdAt    time.Time
}

func NewUser(email Email, passwordHash string, role Role, firstName, lastName string) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		firstName:    strings.TrimSpace(firstName),
		lastName:     strings.TrimSpace(lastName),
		role:         role,
		isActive:     true,
	}
}

// NewGuestCustomer builds the account created for a paid guest order.
// The full name is split on the first space.
func NewGuestCustomer(email Email, fullName, passwordHash string) *User {
	first, last := SplitName(fullName)
	return NewUser(email, passwordHash, RoleCustomer, first, last)
}

func SplitName(fullName string) (first, last string) {
	parts := strings.Fields(fullName)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Email() Email          { return u.email }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) FirstName() string     { return u.firstName }
func (u *User) LastName() string      { return u.lastName }
func (u *User) Role() Role            { return u.role }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) IsActive() bool        { return u.isActive }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
