package controllers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fluidos/backend/config"
	"fluidos/backend/repository"
	"fluidos/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type testEnv struct {
	app   *fiber.App
	store *repository.MemoryStore
	cfg   *config.Config
	clock *fakeClock
}

type fakeClock struct {
	now time.Time
}

// Now returns the current fake time and advances it by one second.
func (f *fakeClock) Now() time.Time {
	t := f.now
	f.now = f.now.Add(time.Second)
	return t
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{
		JWTSecret:  "testsecret",
		BcryptCost: bcrypt.MinCost,
	}
	store := repository.NewMemoryStore()
	clock := &fakeClock{now: time.Date(2025, 5, 4, 9, 30, 0, 0, time.Local)}

	auth := NewAuthController(store.Users(), cfg)
	results := NewResultsController(store.Results(), cfg)
	results.Now = clock.Now

	app := fiber.New(fiber.Config{ErrorHandler: utils.ErrorHandler})
	app.Post("/registro", auth.Register)
	app.Post("/login", auth.Login)
	app.Post("/guardar_resultado/", results.SaveResult)
	app.Get("/resultados/", results.ListResults)
	app.Get("/ejercicios/", results.ListExercises)

	return &testEnv{app: app, store: store, cfg: cfg, clock: clock}
}

func (e *testEnv) postJSON(t *testing.T, path string, body interface{}) (int, []byte) {
	t.Helper()
	jsonData, err := json.Marshal(body)
	require.NoError(t, err)
	return e.do(t, http.MethodPost, path, jsonData)
}

func (e *testEnv) do(t *testing.T, method, path string, body []byte) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func decodeMap(t *testing.T, data []byte) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &result), string(data))
	return result
}
