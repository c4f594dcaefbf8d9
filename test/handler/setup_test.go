package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/xxxsen/common/webapi"

	"github.com/LourceDev/3pages/internal/handler"
	"github.com/LourceDev/3pages/internal/middleware"
	"github.com/LourceDev/3pages/internal/repo"
	"github.com/LourceDev/3pages/internal/service"
	"github.com/LourceDev/3pages/test/testutil"
)

var testJWTSecret = []byte("test-secret")

func setupRouter(t *testing.T) (http.Handler, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	conn, cleanup := testutil.OpenTestDB(t)
	userRepo := repo.NewUserRepo(conn)
	entryRepo := repo.NewEntryRepo(conn)

	authService := service.NewAuthService(userRepo, testJWTSecret, time.Hour)
	entryService := service.NewEntryService(entryRepo)

	deps := handler.RouterDeps{
		Auth:          handler.NewAuthHandler(authService),
		Entries:       handler.NewEntryHandler(entryService),
		Users:         userRepo,
		JWTSecret:     testJWTSecret,
		UserCacheSize: 16,
		UserCacheTTL:  time.Minute,
	}

	engine, err := webapi.NewEngine(
		"/api",
		"",
		webapi.WithRegister(func(group *gin.RouterGroup) {
			handler.RegisterRoutes(group, deps)
		}),
		webapi.WithExtraMiddlewares(
			middleware.RequestID(),
			middleware.CORS(nil),
		),
	)
	require.NoError(t, err)

	return engine, cleanup
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func signupAndLogin(t *testing.T, router http.Handler) (string, string) {
	t.Helper()
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
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &login))
	require.NotEmpty(t, login.Token)
	return email, login.Token
}
