package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/api-sage/user-registry/internal/adapter/http/controller"
	"github.com/api-sage/user-registry/internal/adapter/http/router"
	"github.com/api-sage/user-registry/internal/adapter/repository/memory"
	"github.com/api-sage/user-registry/internal/domain"
	"github.com/api-sage/user-registry/internal/usecase/services"
)

func newTestMux() *http.ServeMux {
	userRepo := memory.NewUserRepository()
	managerRepo := memory.NewManagerRepository(domain.Manager{ManagerID: "m-1", IsActive: true})
	svc := services.NewUserService(userRepo, managerRepo)

	return router.New(controller.NewUserController(svc), nil)
}

func doJSON(t *testing.T, mux *http.ServeMux, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	return rr
}

func TestCreateUserEndpoint(t *testing.T) {
	mux := newTestMux()

	rr := doJSON(t, mux, http.MethodPost, "/create_user", `{
		"full_name": "Asha Rao",
		"mob_num": "+919876543210",
		"pan_num": "abcde1234f",
		"manager_id": "m-1"
	}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d (%s)", http.StatusOK, rr.Code, rr.Body.String())
	}

	var created struct {
		Message string `json:"message"`
		UserID  string `json:"user_id"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.Message != "User created successfully" || created.UserID == "" {
		t.Fatalf("unexpected create response: %+v", created)
	}
}

func TestCreateUserEndpointMissingField(t *testing.T) {
	mux := newTestMux()

	rr := doJSON(t, mux, http.MethodPost, "/create_user", `{
		"full_name": "Asha Rao",
		"mob_num": "9876543210",
		"manager_id": "m-1"
	}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Error != "Missing required field: pan_num" {
		t.Fatalf("unexpected error message %q", body.Error)
	}
}

func TestGetUsersEndpointReturnsBareArrayOnGet(t *testing.T) {
	mux := newTestMux()

	doJSON(t, mux, http.MethodPost, "/create_user", `{
		"full_name": "Asha Rao",
		"mob_num": "9876543210",
		"pan_num": "ABCDE1234F",
		"manager_id": "m-1"
	}`)

	rr := doJSON(t, mux, http.MethodGet, "/get_users", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var users []map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &users); err != nil {
		t.Fatalf("expected a bare JSON array, got %q: %v", rr.Body.String(), err)
	}
	if len(users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(users))
	}
}

func TestGetUsersEndpointEnvelopesOnPost(t *testing.T) {
	mux := newTestMux()

	rr := doJSON(t, mux, http.MethodPost, "/get_users", `{}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var body struct {
		Users []map[string]any `json:"users"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Users == nil {
		t.Fatal("expected a users array in the POST response")
	}
}

func TestDeleteUserEndpointErrors(t *testing.T) {
	mux := newTestMux()

	rr := doJSON(t, mux, http.MethodPost, "/delete_user", `{}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}

	rr = doJSON(t, mux, http.MethodPost, "/delete_user", `{"user_id": "missing"}`)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rr.Code)
	}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Error != "User not found" {
		t.Fatalf("unexpected error message %q", body.Error)
	}
}

func TestUpdateUserEndpointMissingPayload(t *testing.T) {
	mux := newTestMux()

	rr := doJSON(t, mux, http.MethodPost, "/update_user", `{"user_ids": ["u-1"]}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Error != "Missing user_ids or update_data" {
		t.Fatalf("unexpected error message %q", body.Error)
	}
}

func TestEndpointsRejectWrongMethod(t *testing.T) {
	mux := newTestMux()

	rr := doJSON(t, mux, http.MethodGet, "/create_user", "")
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status %d, got %d", http.StatusMethodNotAllowed, rr.Code)
	}
}
