package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"travelblog/internal/config"
	"travelblog/internal/database"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestApp spins up the full route table against an in-memory sqlite
// database. No Redis, so caching and rate limiting are disabled.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		Port:            "3005",
		Env:             "test",
		DefaultPageSize: 10,
		MaxPageSize:     100,
	}

	srv, err := NewServerWithDeps(cfg, db, nil)
	require.NoError(t, err)

	app := fiber.New()
	srv.SetupRoutes(app)
	return app
}

type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func createTestPost(t *testing.T, app *fiber.App, title, topic, author string) uint {
	t.Helper()

	status, env := doJSON(t, app, http.MethodPost, "/api/posts", map[string]string{
		"title":      title,
		"content":    "這是一篇測試文章的內容，長度絕對超過二十個字，描述了一段美好的旅程。",
		"topic":      topic,
		"authorName": author,
	})
	require.Equal(t, http.StatusCreated, status)

	var post struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &post))
	require.NotZero(t, post.ID)
	return post.ID
}
