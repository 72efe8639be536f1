package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"imageshare/internal/models"
)

func postJSON(t *testing.T, handlerFunc http.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(data))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	handlerFunc(rr, req)
	return rr
}

func TestRegisterHandler_Success(t *testing.T) {
	mockAuth := new(MockAuthService)
	handler := createTestHandler(mockAuth, new(MockMediaService), new(MockCommentService))

	mockAuth.On("Register", mock.Anything, models.CreateUserRequest{
		Username: "alice",
		Password: "pw",
		Role:     "creator",
	}).Return(&models.User{
		UserID:   "user-1",
		Username: "alice",
		Role:     models.RoleCreator,
	}, nil)

	rr := postJSON(t, handler.Register, "/register", map[string]string{
		"username": "alice",
		"password": "pw",
		"role":     "creator",
	})

	assertJSONMessage(t, rr, http.StatusOK, "User registered successfully")
	mockAuth.AssertExpectations(t)
}

func TestRegisterHandler_DuplicateUsername(t *testing.T) {
	mockAuth := new(MockAuthService)
	handler := createTestHandler(mockAuth, new(MockMediaService), new(MockCommentService))

	mockAuth.On("Register", mock.Anything, mock.Anything).
		Return(nil, models.ErrConflict)

	rr := postJSON(t, handler.Register, "/register", map[string]string{
		"username": "alice",
		"password": "pw",
	})

	assertJSONMessage(t, rr, http.StatusBadRequest, "User already exists")
}

func TestRegisterHandler_InvalidRole(t *testing.T) {
	mockAuth := new(MockAuthService)
	handler := createTestHandler(mockAuth, new(MockMediaService), new(MockCommentService))

	rr := postJSON(t, handler.Register, "/register", map[string]string{
		"username": "alice",
		"password": "pw",
		"role":     "admin",
	})

	// the validator rejects it before the service is reached
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockAuth.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestRegisterHandler_MissingFields(t *testing.T) {
	mockAuth := new(MockAuthService)
	handler := createTestHandler(mockAuth, new(MockMediaService), new(MockCommentService))

	rr := postJSON(t, handler.Register, "/register", map[string]string{
		"username": "alice",
	})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockAuth.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestLoginHandler_Success(t *testing.T) {
	mockAuth := new(MockAuthService)
	handler := createTestHandler(mockAuth, new(MockMediaService), new(MockCommentService))

	mockAuth.On("Login", mock.Anything, "alice", "pw").
		Return("access-token-123", nil)

	rr := postJSON(t, handler.Login, "/login", map[string]string{
		"username": "alice",
		"password": "pw",
	})

	assert.Equal(t, http.StatusOK, rr.Code)

	var response map[string]string
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "access-token-123", response["access_token"])
}

func TestLoginHandler_WrongPassword(t *testing.T) {
	mockAuth := new(MockAuthService)
	handler := createTestHandler(mockAuth, new(MockMediaService), new(MockCommentService))

	mockAuth.On("Login", mock.Anything, "alice", "wrong").
		Return("", models.ErrUnauthorized)

	rr := postJSON(t, handler.Login, "/login", map[string]string{
		"username": "alice",
		"password": "wrong",
	})

	assertJSONMessage(t, rr, http.StatusUnauthorized, "Invalid credentials")
}

func TestLoginHandler_InvalidBody(t *testing.T) {
	mockAuth := new(MockAuthService)
	handler := createTestHandler(mockAuth, new(MockMediaService), new(MockCommentService))

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString("{not json"))
	rr := httptest.NewRecorder()

	handler.Login(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockAuth.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
}
