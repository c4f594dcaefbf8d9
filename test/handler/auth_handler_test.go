package handler_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LourceDev/3pages/test/testutil"
)

func TestRootEndpoint(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	resp := doJSON(t, router, http.MethodGet, "/api", "", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	require.JSONEq(t, `{"status":"works"}`, resp.Body.String())
}

func TestSignupValidation(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	cases := []map[string]string{
		{"email": "not-an-email", "name": "x", "password": "password123"},
		{"email": "a@b.com", "name": "", "password": "password123"},
		{"email": "a@b.com", "name": "x", "password": "short"},
		{"email": "a@b.com", "name": "x"},
		{},
	}
	for _, body := range cases {
		resp := doJSON(t, router, http.MethodPost, "/api/auth/signup", "", body)
		require.Equal(t, http.StatusBadRequest, resp.Code, "body: %v", body)
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	email := testutil.RandomEmail(t)
	body := map[string]string{"email": email, "name": "tester", "password": "password123"}
	resp := doJSON(t, router, http.MethodPost, "/api/auth/signup", "", body)
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = doJSON(t, router, http.MethodPost, "/api/auth/signup", "", body)
	require.Equal(t, http.StatusConflict, resp.Code)
}

func TestLogin(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	email := testutil.RandomEmail(t)
	resp := doJSON(t, router, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"email": email, "name": "tester", "password": "password123",
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = doJSON(t, router, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": email, "password": "password123",
	})
	require.Equal(t, http.StatusOK, resp.Code)

	var login struct {
		Token string `json:"token"`
		User  map[string]json.RawMessage
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &login))
	require.NotEmpty(t, login.Token)
	require.Contains(t, login.User, "id")
	require.Contains(t, login.User, "email")
	require.Contains(t, login.User, "name")
	require.Contains(t, login.User, "createdAt")
	require.NotContains(t, login.User, "passwordHash")
	require.NotContains(t, login.User, "password_hash")

	// Unknown email and wrong password look the same.
	resp = doJSON(t, router, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": email, "password": "wrongpassword",
	})
	require.Equal(t, http.StatusUnauthorized, resp.Code)
	resp = doJSON(t, router, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": testutil.RandomEmail(t), "password": "password123",
	})
	require.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestLoginEmailNormalized(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	email := testutil.RandomEmail(t)
	resp := doJSON(t, router, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"email": email, "name": "tester", "password": "password123",
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = doJSON(t, router, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": strings.ToUpper(email), "password": "password123",
	})
	require.Equal(t, http.StatusOK, resp.Code)
}
