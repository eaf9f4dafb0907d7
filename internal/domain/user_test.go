// internal/domain/user_test.go
package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUser(t *testing.T) {
	user := NewUser("john@example.com", "John", 30)

	assert.Equal(t, int64(0), user.ID)
	assert.False(t, user.IsPersisted())
	assert.Equal(t, "john@example.com", user.Email)
	assert.Equal(t, "John", user.Name)
	assert.Equal(t, 30, user.Age)
}

func TestIsAdult(t *testing.T) {
	tests := []struct {
		age  int
		want bool
	}{
		{age: 17, want: false},
		{age: 18, want: true},
		{age: 65, want: true},
	}
	for _, tt := range tests {
		user := &User{ID: 1, Email: "a@b.com", Name: "A", Age: tt.age}
		assert.Equal(t, tt.want, user.IsAdult(), "age %d", tt.age)
	}
}

func TestValidEmail(t *testing.T) {
	valid := []string{
		"a@b.com",
		"john.doe+tag@mail.example.org",
		"x_y%z-w@sub-domain.io",
	}
	for _, email := range valid {
		assert.True(t, ValidEmail(email), email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"missing-at.com",
		"user@nodot",
		"user@domain.c",
		"user@domain.c0m",
		"us er@domain.com",
		"@domain.com",
	}
	for _, email := range invalid {
		assert.False(t, ValidEmail(email), email)
	}
}

func TestValidNameAndAge(t *testing.T) {
	assert.True(t, ValidName("A"))
	assert.True(t, ValidName("  Jane  "))
	assert.False(t, ValidName(""))
	assert.False(t, ValidName(" \t\n"))

	assert.True(t, ValidAge(1))
	assert.False(t, ValidAge(0))
	assert.False(t, ValidAge(-5))
}
