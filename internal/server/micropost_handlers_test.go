package server

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/FletchFFletchGT/sample-app/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateMicropost(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		app, s, deps := newTestServer(t)
		deps.users.On("GetByID", mock.Anything, uint(1)).
			Return(&models.User{ID: 1}, nil)
		deps.posts.On("Create", mock.Anything, mock.MatchedBy(func(p *models.Micropost) bool {
			return p.UserID == 1 && p.Content == "Hello world"
		})).Return(nil)

		resp, _ := doJSON(t, app, http.MethodPost, "/api/microposts/", map[string]string{
			"content": "Hello world",
		}, tokenFor(t, s, 1))
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		deps.posts.AssertExpectations(t)
	})

	t.Run("blank content", func(t *testing.T) {
		app, s, deps := newTestServer(t)
		deps.users.On("GetByID", mock.Anything, uint(1)).
			Return(&models.User{ID: 1}, nil)

		resp, _ := doJSON(t, app, http.MethodPost, "/api/microposts/", map[string]string{
			"content": "   ",
		}, tokenFor(t, s, 1))
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		deps.posts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("content too long", func(t *testing.T) {
		app, s, deps := newTestServer(t)
		deps.users.On("GetByID", mock.Anything, uint(1)).
			Return(&models.User{ID: 1}, nil)

		resp, _ := doJSON(t, app, http.MethodPost, "/api/microposts/", map[string]string{
			"content": strings.Repeat("a", 141),
		}, tokenFor(t, s, 1))
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		deps.posts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("anonymous", func(t *testing.T) {
		app, _, _ := newTestServer(t)
		resp, _ := doJSON(t, app, http.MethodPost, "/api/microposts/", map[string]string{
			"content": "Hello",
		}, "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestDeleteMicropost(t *testing.T) {
	t.Run("owner deletes", func(t *testing.T) {
		app, s, deps := newTestServer(t)
		deps.posts.On("GetByID", mock.Anything, uint(10)).
			Return(&models.Micropost{ID: 10, UserID: 1}, nil)
		deps.posts.On("Delete", mock.Anything, uint(10)).Return(nil)

		resp, _ := doJSON(t, app, http.MethodDelete, "/api/microposts/10", nil, tokenFor(t, s, 1))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("someone else's post", func(t *testing.T) {
		app, s, deps := newTestServer(t)
		deps.posts.On("GetByID", mock.Anything, uint(10)).
			Return(&models.Micropost{ID: 10, UserID: 1}, nil)

		resp, _ := doJSON(t, app, http.MethodDelete, "/api/microposts/10", nil, tokenFor(t, s, 2))
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		deps.posts.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("missing post", func(t *testing.T) {
		app, s, deps := newTestServer(t)
		deps.posts.On("GetByID", mock.Anything, uint(99)).
			Return(nil, models.NewNotFoundError("Micropost", 99))

		resp, _ := doJSON(t, app, http.MethodDelete, "/api/microposts/99", nil, tokenFor(t, s, 1))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestGetUserMicroposts_Public(t *testing.T) {
	app, _, deps := newTestServer(t)
	now := time.Now()
	deps.posts.On("GetByUserID", mock.Anything, uint(1), 30, 0).
		Return([]*models.Micropost{
			{ID: 2, UserID: 1, Content: "newer", CreatedAt: now},
			{ID: 1, UserID: 1, Content: "older", CreatedAt: now.Add(-time.Hour)},
		}, nil)
	deps.posts.On("CountByUserID", mock.Anything, uint(1)).Return(int64(2), nil)

	resp, body := doJSON(t, app, http.MethodGet, "/api/users/1/microposts", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(2), body["total"])
}

func TestGetFeed_Pagination(t *testing.T) {
	app, s, deps := newTestServer(t)
	deps.posts.On("Feed", mock.Anything, uint(1), 10, 20).
		Return([]*models.Micropost{}, nil)

	resp, body := doJSON(t, app, http.MethodGet, "/api/feed?limit=10&offset=20", nil, tokenFor(t, s, 1))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(10), body["limit"])
	assert.Equal(t, float64(20), body["offset"])
	deps.posts.AssertExpectations(t)
}
