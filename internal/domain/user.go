// internal/domain/user.go
package domain

import (
	"regexp"
	"strings"
)

// AdultAge is the age from which a user counts as an adult.
const AdultAge = 18

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// User represents a user of the system.
// ID is zero until the store assigns one on save and never changes afterwards.
type User struct {
	ID    int64  `db:"id" json:"id"`       // Primary key, BIGSERIAL in DB
	Email string `db:"email" json:"email"` // Unique email
	Name  string `db:"name" json:"name"`
	Age   int    `db:"age" json:"age"`
}

// NewUser creates a new, not yet persisted User instance.
func NewUser(email, name string, age int) *User {
	return &User{
		Email: email,
		Name:  name,
		Age:   age,
	}
}

// IsPersisted reports whether the store has assigned an ID.
func (u *User) IsPersisted() bool {
	return u.ID != 0
}

// IsAdult reports whether the user is at least AdultAge years old.
func (u *User) IsAdult() bool {
	return u.Age >= AdultAge
}

// ValidEmail reports whether email has the local@domain.tld shape.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidName reports whether name has content after trimming whitespace.
func ValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

// ValidAge reports whether age is strictly positive.
func ValidAge(age int) bool {
	return age > 0
}
