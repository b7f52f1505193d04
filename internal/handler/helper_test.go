package handler_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/holocron/catalog-api/internal/config"
	"github.com/holocron/catalog-api/internal/handler"
	"github.com/holocron/catalog-api/internal/repository"
	"github.com/holocron/catalog-api/internal/router"
)

const testSecret = "test-secret"

// testSchema mirrors the production schema in sqlite dialect.
var testSchema = []string{
	`CREATE TABLE users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		is_active BOOLEAN NOT NULL
	);`,
	`CREATE TABLE people (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		height REAL NOT NULL,
		birthdate TEXT NOT NULL,
		gender TEXT NOT NULL,
		eyes TEXT NOT NULL,
		skin TEXT NOT NULL
	);`,
	`CREATE TABLE planets (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		gravity TEXT NOT NULL,
		terrain TEXT NOT NULL,
		climate TEXT NOT NULL,
		orbital_period TEXT NOT NULL,
		population TEXT NOT NULL,
		diameter TEXT NOT NULL
	);`,
	`CREATE TABLE vehicles (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		model TEXT NOT NULL,
		length TEXT NOT NULL,
		max_speed TEXT NOT NULL,
		cargo_capacity TEXT NOT NULL,
		manufacturer TEXT NOT NULL
	);`,
	`CREATE TABLE favorite_people (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		people_id INTEGER NOT NULL REFERENCES people(id) ON DELETE CASCADE,
		UNIQUE(user_id, people_id)
	);`,
	`CREATE TABLE favorite_planets (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		planet_id INTEGER NOT NULL REFERENCES planets(id) ON DELETE CASCADE,
		UNIQUE(user_id, planet_id)
	);`,
	`CREATE TABLE favorite_vehicles (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		vehicle_id INTEGER NOT NULL REFERENCES vehicles(id) ON DELETE CASCADE,
		UNIQUE(user_id, vehicle_id)
	);`,
	`CREATE TABLE token_blocked_list (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		token TEXT NOT NULL UNIQUE,
		created_at TIMESTAMP NOT NULL,
		email TEXT
	);`,
}

// testEnv wires the full HTTP surface over an in-memory sqlite database so
// endpoint tests exercise routing, middleware, handlers and repositories
// together.
type testEnv struct {
	e     *echo.Echo
	db    *sql.DB
	users *repository.UserRepo
	favs  *repository.FavoriteRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := sql.Open("sqlite3", "file::memory:?_foreign_keys=on")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	for _, stmt := range testSchema {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}
	t.Cleanup(func() { _ = db.Close() })

	cfg := config.Config{
		Env:          "test",
		JWTSecret:    testSecret,
		AccessTTLMin: 15,
		BcryptCost:   bcrypt.MinCost,
	}

	users := repository.NewUserRepo(db)
	people := repository.NewPeopleRepo(db)
	planets := repository.NewPlanetRepo(db)
	vehicles := repository.NewVehicleRepo(db)
	favorites := repository.NewFavoriteRepo(db)
	tokens := repository.NewTokenRepo(db)

	h := router.Handlers{
		Auth:      handler.NewAuthHandler(cfg, users, tokens),
		Users:     handler.NewUserHandler(users),
		People:    handler.NewPeopleHandler(people),
		Planets:   handler.NewPlanetHandler(planets),
		Vehicles:  handler.NewVehicleHandler(vehicles),
		Favorites: handler.NewFavoriteHandler(favorites, users, people, planets, vehicles),
	}

	e := echo.New()
	router.Register(e, h, cfg.JWTSecret, tokens)
	return &testEnv{e: e, db: db, users: users, favs: favorites}
}

// do performs a request against the test server.  A non-empty token is sent
// as a bearer Authorization header.
func (env *testEnv) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

// decode unmarshals a JSON response body into a generic map.
func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

// registerUser creates an account through the API and returns its id.
func (env *testEnv) registerUser(t *testing.T, email, name, password string) uint64 {
	t.Helper()
	rec := env.do(t, http.MethodPost, "/register", map[string]any{
		"email": email, "name": name, "password": password, "is_active": true,
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	u, err := env.users.GetByEmail(context.Background(), email)
	require.NoError(t, err)
	return u.ID
}

// login exchanges credentials for an access token through the API.
func (env *testEnv) login(t *testing.T, email, password string) string {
	t.Helper()
	rec := env.do(t, http.MethodPost, "/login", map[string]any{
		"email": email, "password": password,
	}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	token, _ := decode(t, rec)["token"].(string)
	require.NotEmpty(t, token)
	return token
}
