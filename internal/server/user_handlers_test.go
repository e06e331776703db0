package server

import (
	"net/http"
	"testing"

	"github.com/FletchFFletchGT/sample-app/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func tokenFor(t *testing.T, s *Server, userID uint) string {
	t.Helper()
	token, err := s.generateToken(userID)
	require.NoError(t, err)
	return token
}

func TestGetUserProfile_Public(t *testing.T) {
	app, _, deps := newTestServer(t)
	deps.users.On("GetByIDWithMicroposts", mock.Anything, uint(1), 30).
		Return(&models.User{ID: 1, Name: "Alice"}, nil)
	deps.posts.On("CountByUserID", mock.Anything, uint(1)).Return(int64(3), nil)

	// No token at all; profiles are world-readable.
	resp, body := doJSON(t, app, http.MethodGet, "/api/users/1", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(3), body["micropost_count"])
}

func TestGetUserProfile_NotFound(t *testing.T) {
	app, _, deps := newTestServer(t)
	deps.users.On("GetByIDWithMicroposts", mock.Anything, uint(99), 30).
		Return(nil, models.NewNotFoundError("User", 99))

	resp, _ := doJSON(t, app, http.MethodGet, "/api/users/99", nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetAllUsers_RequiresSignIn(t *testing.T) {
	app, s, deps := newTestServer(t)

	resp, body := doJSON(t, app, http.MethodGet, "/api/users/", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "signin", body["redirect"])

	deps.users.On("GetByID", mock.Anything, uint(1)).
		Return(&models.User{ID: 1, Name: "Alice"}, nil)
	deps.users.On("List", mock.Anything, 30, 0).
		Return([]models.User{{ID: 1, Name: "Alice"}}, nil)
	deps.users.On("Count", mock.Anything).Return(int64(1), nil)

	resp, body = doJSON(t, app, http.MethodGet, "/api/users/", nil, tokenFor(t, s, 1))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), body["total"])
}

func TestUpdateUser_OwnerOnly(t *testing.T) {
	payload := map[string]string{
		"name":  "New Name",
		"email": "new@example.com",
	}

	t.Run("anonymous is pointed at sign-in", func(t *testing.T) {
		app, _, _ := newTestServer(t)
		resp, body := doJSON(t, app, http.MethodPut, "/api/users/1", payload, "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "signin", body["redirect"])
	})

	t.Run("another user is pointed home", func(t *testing.T) {
		app, s, deps := newTestServer(t)
		deps.users.On("GetByID", mock.Anything, uint(2)).
			Return(&models.User{ID: 2, Name: "Mallory"}, nil)

		resp, body := doJSON(t, app, http.MethodPut, "/api/users/1", payload, tokenFor(t, s, 2))
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.Equal(t, "home", body["redirect"])
		deps.users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("admin cannot edit someone else either", func(t *testing.T) {
		app, s, deps := newTestServer(t)
		deps.users.On("GetByID", mock.Anything, uint(3)).
			Return(&models.User{ID: 3, Name: "Root", Admin: true}, nil)

		resp, _ := doJSON(t, app, http.MethodPut, "/api/users/1", payload, tokenFor(t, s, 3))
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("owner succeeds", func(t *testing.T) {
		app, s, deps := newTestServer(t)
		deps.users.On("GetByID", mock.Anything, uint(1)).
			Return(&models.User{ID: 1, Name: "Old", Email: "old@example.com"}, nil)
		deps.users.On("GetByEmail", mock.Anything, "new@example.com").Return(nil, nil)
		deps.users.On("Update", mock.Anything, mock.Anything).Return(nil)

		resp, _ := doJSON(t, app, http.MethodPut, "/api/users/1", payload, tokenFor(t, s, 1))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		deps.users.AssertExpectations(t)
	})

	t.Run("owner with invalid input gets violations", func(t *testing.T) {
		app, s, deps := newTestServer(t)
		deps.users.On("GetByID", mock.Anything, uint(1)).
			Return(&models.User{ID: 1, Name: "Old", Email: "old@example.com"}, nil)

		resp, body := doJSON(t, app, http.MethodPut, "/api/users/1", map[string]string{
			"name":  "",
			"email": "bad",
		}, tokenFor(t, s, 1))
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		got := violationsOf(body)
		assert.Contains(t, got, "name_invalid")
		assert.Contains(t, got, "email_invalid")
	})
}

func TestDeleteUser_AdminOnly(t *testing.T) {
	t.Run("anonymous is pointed at sign-in", func(t *testing.T) {
		app, _, _ := newTestServer(t)
		resp, body := doJSON(t, app, http.MethodDelete, "/api/users/1", nil, "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "signin", body["redirect"])
	})

	t.Run("non-admin is pointed home", func(t *testing.T) {
		app, s, deps := newTestServer(t)
		deps.users.On("GetByID", mock.Anything, uint(2)).
			Return(&models.User{ID: 2, Name: "Regular"}, nil)

		resp, body := doJSON(t, app, http.MethodDelete, "/api/users/1", nil, tokenFor(t, s, 2))
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.Equal(t, "home", body["redirect"])
		deps.users.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("admin succeeds", func(t *testing.T) {
		app, s, deps := newTestServer(t)
		deps.users.On("GetByID", mock.Anything, uint(3)).
			Return(&models.User{ID: 3, Name: "Root", Admin: true}, nil)
		deps.users.On("Delete", mock.Anything, uint(1)).Return(nil)

		resp, _ := doJSON(t, app, http.MethodDelete, "/api/users/1", nil, tokenFor(t, s, 3))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		deps.users.AssertExpectations(t)
	})
}

func TestPromoteToAdmin(t *testing.T) {
	t.Run("non-admin is rejected by middleware", func(t *testing.T) {
		app, s, deps := newTestServer(t)
		deps.users.On("GetByID", mock.Anything, uint(2)).
			Return(&models.User{ID: 2}, nil)

		resp, _ := doJSON(t, app, http.MethodPost, "/api/users/1/promote-admin", nil, tokenFor(t, s, 2))
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("admin promotes", func(t *testing.T) {
		app, s, deps := newTestServer(t)
		deps.users.On("GetByID", mock.Anything, uint(3)).
			Return(&models.User{ID: 3, Admin: true}, nil)
		deps.users.On("GetByID", mock.Anything, uint(1)).
			Return(&models.User{ID: 1}, nil)
		deps.users.On("Update", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			return u.ID == 1 && u.Admin
		})).Return(nil)

		resp, _ := doJSON(t, app, http.MethodPost, "/api/users/1/promote-admin", nil, tokenFor(t, s, 3))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		deps.users.AssertExpectations(t)
	})
}
