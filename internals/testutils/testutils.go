// Package testutils carries the shared sqlite fixture the handler tests run
// against, plus small HTTP helpers for driving a Fiber app in-process.
package testutils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"luctreports_backend/internals/configs"
	database "luctreports_backend/internals/databases"
	authService "luctreports_backend/internals/features/users/auth/service"
	userModel "luctreports_backend/internals/features/users/user/model"
)

func init() {
	// The token service reads the secret from configs at signing time.
	configs.JWTSecret = "test-secret"
}

// SetupDB opens a fresh in-memory sqlite database with FK enforcement on and
// the full schema migrated.
func SetupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection keeps the shared-cache memory DB alive for the test
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

// CreateUser inserts a user with a real bcrypt hash of "password123!".
func CreateUser(t *testing.T, db *gorm.DB, username, role string) userModel.UserModel {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123!"), bcrypt.MinCost)
	require.NoError(t, err)

	user := userModel.UserModel{
		Username: username,
		Email:    username + "@luct.ac.ls",
		Password: string(hashed),
		Role:     role,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

// Token issues a real access token for the given user.
func Token(t *testing.T, user *userModel.UserModel) string {
	t.Helper()
	token, err := authService.GenerateAccessToken(user)
	require.NoError(t, err)
	return token
}

// DoJSON performs a request against the app and decodes the JSON response
// body into a generic map. body may be nil.
func DoJSON(t *testing.T, app *fiber.App, method, path string, body interface{}, token string) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()

	var decoded map[string]interface{}
	if len(raw) > 0 && strings.HasPrefix(resp.Header.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(raw, &decoded), "body: %s", raw)
	}
	return resp, decoded
}

// RawBody re-runs a GET and returns the exact bytes, for idempotence checks.
func RawBody(t *testing.T, app *fiber.App, path, token string) []byte {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()
	return raw
}
