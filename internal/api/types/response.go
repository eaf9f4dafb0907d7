// internal/api/types/response.go
package types

import "userservice/internal/domain"

// UserResponse is the JSON representation of a stored user.
type UserResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Age   int    `json:"age"`
}

// NewUserResponse maps a domain user onto its response body.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Age:   user.Age,
	}
}

// UserListResponse is one page of users. Total counts the users in this page.
type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
	Skip  int            `json:"skip"`
	Limit int            `json:"limit"`
}

// NewUserListResponse maps a page of domain users onto its response body.
func NewUserListResponse(users []domain.User, skip, limit int) UserListResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, NewUserResponse(&users[i]))
	}
	return UserListResponse{
		Users: out,
		Total: len(out),
		Skip:  skip,
		Limit: limit,
	}
}

// ErrorResponse carries a human-readable failure message.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
