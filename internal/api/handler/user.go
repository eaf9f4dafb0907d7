// internal/api/handler/user.go
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"userservice/internal/api/types"
	"userservice/internal/service"
	"userservice/internal/util"
)

// DefaultTimeout bounds the handling time of a single request.
const DefaultTimeout = 30 * time.Second

// UseCases groups the user use cases served over HTTP.
type UseCases struct {
	Create service.CreateUserUseCase
	Get    service.GetUserUseCase
	GetAll service.GetAllUsersUseCase
	Update service.UpdateUserUseCase
	Delete service.DeleteUserUseCase
}

// UserHandler handles HTTP requests for the users resource.
type UserHandler struct {
	useCases UseCases
	validate *validator.Validate
	logger   *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(useCases UseCases, logger *slog.Logger) *UserHandler {
	validate := validator.New()
	// Report JSON field names in validation messages.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &UserHandler{
		useCases: useCases,
		validate: validate,
		logger:   logger,
	}
}

// CreateUserRequest represents the request body for creating a user.
type CreateUserRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required,min=1"`
	Age   int    `json:"age" validate:"gt=0"`
}

// UpdateUserRequest represents the request body for updating a user.
// Absent or null fields are left unchanged.
type UpdateUserRequest struct {
	Email *string `json:"email" validate:"omitempty,email"`
	Name  *string `json:"name" validate:"omitempty,min=1"`
	Age   *int    `json:"age" validate:"omitempty,gt=0"`
}

// Helper function to send JSON responses.
func (h *UserHandler) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondWithError maps use-case errors onto status codes. Unexpected errors
// are logged and reported without internal details.
func (h *UserHandler) respondWithError(w http.ResponseWriter, r *http.Request, err error) {
	statusCode := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case util.IsError(err, util.ErrInvalidInput), util.IsError(err, util.ErrConflict):
		statusCode = http.StatusBadRequest
		message = err.Error()
	case util.IsError(err, util.ErrNotFound):
		statusCode = http.StatusNotFound
		message = err.Error()
	default:
		h.logger.Error("Unhandled service error", "error", err, "method", r.Method, "path", r.URL.Path)
	}

	h.respondWithJSON(w, statusCode, types.ErrorResponse{Detail: message})
}

// respondUnprocessable reports a request that failed schema checks.
func (h *UserHandler) respondUnprocessable(w http.ResponseWriter, message string) {
	h.respondWithJSON(w, http.StatusUnprocessableEntity, types.ErrorResponse{Detail: message})
}

// decodeAndValidate reads a JSON body into dst and runs its validate tags.
func (h *UserHandler) decodeAndValidate(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("malformed request body: %w", err)
	}
	if err := h.validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag()))
			}
			return errors.New("invalid request body: " + strings.Join(fields, "; "))
		}
		return err
	}
	return nil
}

func parseUserID(r *http.Request) (int64, error) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		return 0, errors.New("user_id must be an integer")
	}
	return userID, nil
}

// queryInt reads an integer query parameter, falling back when it is absent.
func queryInt(r *http.Request, key string, fallback int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", key)
	}
	return n, nil
}

// CreateUser handles the create user request.
// POST /api/v1/users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.respondUnprocessable(w, err.Error())
		return
	}

	user, err := h.useCases.Create.Execute(r.Context(), req.Email, req.Name, req.Age)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	h.respondWithJSON(w, http.StatusCreated, types.NewUserResponse(user))
}

// GetUser handles the get user request.
// GET /api/v1/users/{userID}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, err := parseUserID(r)
	if err != nil {
		h.respondUnprocessable(w, err.Error())
		return
	}

	user, err := h.useCases.Get.Execute(r.Context(), userID)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, types.NewUserResponse(user))
}

// GetAllUsers handles the paginated list request.
// GET /api/v1/users?skip=0&limit=100
func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	skip, err := queryInt(r, "skip", service.DefaultSkip)
	if err != nil {
		h.respondUnprocessable(w, err.Error())
		return
	}
	limit, err := queryInt(r, "limit", service.DefaultLimit)
	if err != nil {
		h.respondUnprocessable(w, err.Error())
		return
	}

	users, err := h.useCases.GetAll.Execute(r.Context(), skip, limit)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, types.NewUserListResponse(users, skip, limit))
}

// UpdateUser handles the update user request.
// PUT /api/v1/users/{userID}
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID, err := parseUserID(r)
	if err != nil {
		h.respondUnprocessable(w, err.Error())
		return
	}

	var req UpdateUserRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.respondUnprocessable(w, err.Error())
		return
	}

	user, err := h.useCases.Update.Execute(r.Context(), userID, service.UpdateUserInput{
		Email: req.Email,
		Name:  req.Name,
		Age:   req.Age,
	})
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, types.NewUserResponse(user))
}

// DeleteUser handles the delete user request.
// DELETE /api/v1/users/{userID}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, err := parseUserID(r)
	if err != nil {
		h.respondUnprocessable(w, err.Error())
		return
	}

	if _, err := h.useCases.Delete.Execute(r.Context(), userID); err != nil {
		h.respondWithError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
