package controller

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/api-sage/user-registry/internal/adapter/http/models"
	"github.com/api-sage/user-registry/internal/commons"
	"github.com/api-sage/user-registry/internal/domain"
)

type UserService interface {
	CreateUser(ctx context.Context, req models.CreateUserRequest) (models.CreateUserResponse, error)
	GetUsers(ctx context.Context, req models.GetUsersRequest) (models.GetUsersResponse, error)
	DeleteUser(ctx context.Context, req models.DeleteUserRequest) error
	UpdateUsers(ctx context.Context, req models.UpdateUserRequest) error
}

type UserController struct {
	service UserService
}

func NewUserController(service UserService) *UserController {
	return &UserController{service: service}
}

func (c *UserController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	wrap := func(h http.HandlerFunc) http.Handler {
		if authMiddleware != nil {
			return authMiddleware(h)
		}
		return h
	}

	mux.Handle("/create_user", wrap(c.createUser))
	mux.Handle("/get_users", wrap(c.getUsers))
	mux.Handle("/delete_user", wrap(c.deleteUser))
	mux.Handle("/update_user", wrap(c.updateUser))
}

func (c *UserController) createUser(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if r.Method != http.MethodPost {
		response := commons.NewErrorResponse("method not allowed")
		writeJSON(w, http.StatusMethodNotAllowed, response)
		logResponse(r, http.StatusMethodNotAllowed, response, start)
		return
	}

	var req models.CreateUserRequest
	if !decodeBody(w, r, &req, start) {
		return
	}
	logRequest(r, req)

	response, err := c.service.CreateUser(r.Context(), req)
	if err != nil {
		c.writeError(w, r, err, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *UserController) getUsers(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	switch r.Method {
	case http.MethodGet:
		// The GET variant takes no filter and returns the bare array.
		response, err := c.service.GetUsers(r.Context(), models.GetUsersRequest{})
		if err != nil {
			c.writeError(w, r, err, start)
			return
		}
		writeJSON(w, http.StatusOK, response.Users)
		logResponse(r, http.StatusOK, response, start)
	case http.MethodPost:
		var req models.GetUsersRequest
		if !decodeBody(w, r, &req, start) {
			return
		}
		logRequest(r, req)

		response, err := c.service.GetUsers(r.Context(), req)
		if err != nil {
			c.writeError(w, r, err, start)
			return
		}
		writeJSON(w, http.StatusOK, response)
		logResponse(r, http.StatusOK, response, start)
	default:
		response := commons.NewErrorResponse("method not allowed")
		writeJSON(w, http.StatusMethodNotAllowed, response)
		logResponse(r, http.StatusMethodNotAllowed, response, start)
	}
}

func (c *UserController) deleteUser(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if r.Method != http.MethodPost {
		response := commons.NewErrorResponse("method not allowed")
		writeJSON(w, http.StatusMethodNotAllowed, response)
		logResponse(r, http.StatusMethodNotAllowed, response, start)
		return
	}

	var req models.DeleteUserRequest
	if !decodeBody(w, r, &req, start) {
		return
	}
	logRequest(r, req)

	if err := c.service.DeleteUser(r.Context(), req); err != nil {
		c.writeError(w, r, err, start)
		return
	}

	response := commons.NewMessageResponse("User deleted successfully")
	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *UserController) updateUser(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if r.Method != http.MethodPost {
		response := commons.NewErrorResponse("method not allowed")
		writeJSON(w, http.StatusMethodNotAllowed, response)
		logResponse(r, http.StatusMethodNotAllowed, response, start)
		return
	}

	var req models.UpdateUserRequest
	if !decodeBody(w, r, &req, start) {
		return
	}
	logRequest(r, req)

	if err := c.service.UpdateUsers(r.Context(), req); err != nil {
		c.writeError(w, r, err, start)
		return
	}

	response := commons.NewMessageResponse("User(s) updated successfully")
	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *UserController) writeError(w http.ResponseWriter, r *http.Request, err error, start time.Time) {
	status := http.StatusInternalServerError
	message := commons.InternalErrorMessage

	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case domain.IsClientError(err):
		status = http.StatusBadRequest
		message = err.Error()
	}

	logError(r, err, nil)
	response := commons.NewErrorResponse(message)
	writeJSON(w, status, response)
	logResponse(r, status, response, start)
}

// decodeBody tolerates an empty body so that required-field errors, not
// decode errors, surface for bare requests. Returns false after writing a
// response on malformed JSON.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any, start time.Time) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		logError(r, err, nil)
		response := commons.NewErrorResponse("invalid request body")
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return false
	}

	return true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
