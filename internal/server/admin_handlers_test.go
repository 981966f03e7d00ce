package server

import (
	"net/http"
	"testing"

	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminRoutes_ForbiddenForNonAdmin(t *testing.T) {
	app, _ := newTestApp(t)
	registerUser(t, app, "admin")
	token, _ := registerUser(t, app, "alice")

	for _, path := range []string{"/api/admin/users", "/api/admin/posts"} {
		resp := doJSON(t, app, http.MethodGet, path, token, nil)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode, path)
	}
}

func TestAdminGetUsers(t *testing.T) {
	app, _ := newTestApp(t)
	adminToken, _ := registerUser(t, app, "admin")
	registerUser(t, app, "alice")

	resp := doJSON(t, app, http.MethodGet, "/api/admin/users", adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var users []models.User
	decodeBody(t, resp, &users)
	assert.Len(t, users, 2)
}

func TestAdminGetPosts_IncludesCounts(t *testing.T) {
	app, _ := newTestApp(t)
	adminToken, _ := registerUser(t, app, "admin")
	aliceToken, _ := registerUser(t, app, "alice")

	post := createPost(t, app, aliceToken, "hello")
	resp := doJSON(t, app, http.MethodPost, fmtPath("/api/posts/%d/like", post.ID), aliceToken, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp = doJSON(t, app, http.MethodPost, fmtPath("/api/posts/%d/comments", post.ID), aliceToken,
		map[string]string{"content": "nice"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/admin/posts", adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var posts []models.PostWithCounts
	decodeBody(t, resp, &posts)
	require.Len(t, posts, 1)
	assert.Equal(t, 1, posts[0].LikesCount)
	assert.Equal(t, 1, posts[0].CommentsCount)
	assert.Equal(t, "alice", posts[0].Author.Username)
}

func TestAdminDeleteUser_Cascades(t *testing.T) {
	app, srv := newTestApp(t)
	adminToken, _ := registerUser(t, app, "admin")
	aliceToken, aliceID := registerUser(t, app, "alice")
	createPost(t, app, aliceToken, "soon gone")

	resp := doJSON(t, app, http.MethodDelete, fmtPath("/api/admin/users/%d", aliceID), adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Nil(t, srv.Store().GetUser(aliceID))
	assert.Empty(t, srv.Store().Posts())

	// Alice's token no longer resolves to an account.
	resp = doJSON(t, app, http.MethodGet, "/api/auth/me", aliceToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAdminDeleteUser_ProtectsAdminAccount(t *testing.T) {
	app, _ := newTestApp(t)
	adminToken, adminID := registerUser(t, app, "admin")

	resp := doJSON(t, app, http.MethodDelete, fmtPath("/api/admin/users/%d", adminID), adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAdminDeletePost(t *testing.T) {
	app, srv := newTestApp(t)
	adminToken, _ := registerUser(t, app, "admin")
	aliceToken, _ := registerUser(t, app, "alice")
	post := createPost(t, app, aliceToken, "hello")

	resp := doJSON(t, app, http.MethodDelete, fmtPath("/api/admin/posts/%d", post.ID), adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Nil(t, srv.Store().GetPost(post.ID))

	resp = doJSON(t, app, http.MethodDelete, fmtPath("/api/admin/posts/%d", post.ID), adminToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAdminToggleBan(t *testing.T) {
	app, _ := newTestApp(t)
	adminToken, _ := registerUser(t, app, "admin")
	_, aliceID := registerUser(t, app, "alice")

	resp := doJSON(t, app, http.MethodPut, fmtPath("/api/admin/users/%d/ban", aliceID), adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var banned models.User
	decodeBody(t, resp, &banned)
	assert.True(t, banned.IsBanned)

	// Banned users cannot log in.
	resp = doJSON(t, app, http.MethodPost, "/api/auth/login", "",
		map[string]string{"username": "alice", "password": "password123"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Toggling again lifts the ban.
	resp = doJSON(t, app, http.MethodPut, fmtPath("/api/admin/users/%d/ban", aliceID), adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &banned)
	assert.False(t, banned.IsBanned)
}

func TestAdminToggleBan_ProtectsAdminAccount(t *testing.T) {
	app, _ := newTestApp(t)
	adminToken, adminID := registerUser(t, app, "admin")

	resp := doJSON(t, app, http.MethodPut, fmtPath("/api/admin/users/%d/ban", adminID), adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
