package domain

import "context"

// User represents a person who can register for events.
// swagger:model User
type User struct {
	ID        int64  `json:"user_id"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email"`
	Address   string `json:"address"`
}

// NewUser returns a new User with the given fields. ID is set by the repository on create.
func NewUser(firstName, lastName, email, address string) *User {
	return &User{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Address:   address,
	}
}

// UserRepository defines the interface for user storage.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	// Update replaces all four mutable fields of the user identified by
	// user.ID and returns the stored row.
	Update(ctx context.Context, user *User) (*User, error)
	Delete(ctx context.Context, id int64) error
}

// UserService defines the business operations on users.
type UserService interface {
	CreateUser(ctx context.Context, user *User) error
	GetUser(ctx context.Context, id int64) (*User, error)
	UpdateUser(ctx context.Context, user *User) (*User, error)
	DeleteUser(ctx context.Context, id int64) error
}
