package handler_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lukePayload() map[string]any {
	return map[string]any{
		"name": "Luke", "height": 172.0, "birthdate": "19BBY",
		"gender": "male", "eyes": "blue", "skin": "fair",
	}
}

func hothPayload() map[string]any {
	return map[string]any{
		"name": "Hoth", "gravity": "1.1", "terrain": "ice", "climate": "frozen",
		"orbital_period": "549", "population": "unknown", "diameter": "7200",
	}
}

func atatPayload() map[string]any {
	return map[string]any{
		"name": "AT-AT", "model": "All Terrain Armored Transport", "length": "20",
		"max_speed": "60", "cargo_capacity": "1000", "manufacturer": "Kuat Drive Yards",
	}
}

// createEntity posts a payload to a catalog collection and returns the new id.
func createEntity(t *testing.T, env *testEnv, path string, payload map[string]any) uint64 {
	t.Helper()
	rec := env.do(t, http.MethodPost, path, payload, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	id, ok := decode(t, rec)["id"].(float64)
	require.True(t, ok, "created entity carries its assigned id")
	require.NotZero(t, id)
	return uint64(id)
}

func TestPeopleCreateValidatesBeforeInsert(t *testing.T) {
	env := newTestEnv(t)

	body := lukePayload()
	delete(body, "height")
	rec := env.do(t, http.MethodPost, "/people", body, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "You need to specify the height", decode(t, rec)["error"])

	// Nothing was written.
	rec = env.do(t, http.MethodGet, "/people", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode(t, rec)["people"])
}

func TestPeopleCrudRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	id := createEntity(t, env, "/people", lukePayload())

	rec := env.do(t, http.MethodGet, fmt.Sprintf("/people/%d", id), nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode(t, rec)
	assert.Equal(t, "Luke", got["name"])
	assert.Equal(t, 172.0, got["height"])

	// Payload-addressed lookup returns the same row.
	rec = env.do(t, http.MethodPost, "/people-with-post", map[string]any{"id": id}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Luke", decode(t, rec)["name"])

	// Full-replace edit.
	update := lukePayload()
	update["id"] = id
	update["name"] = "Luke Skywalker"
	rec = env.do(t, http.MethodPut, "/people", update, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	rec = env.do(t, http.MethodGet, fmt.Sprintf("/people/%d", id), nil, "")
	assert.Equal(t, "Luke Skywalker", decode(t, rec)["name"])

	rec = env.do(t, http.MethodDelete, "/people", map[string]any{"id": id}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Deleted character", decode(t, rec)["msg"])

	rec = env.do(t, http.MethodGet, fmt.Sprintf("/people/%d", id), nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Character not found", decode(t, rec)["error"])
}

func TestPeopleUpdateRejectsPartialEdit(t *testing.T) {
	env := newTestEnv(t)
	id := createEntity(t, env, "/people", lukePayload())

	// Edits must carry every declared attribute, not just the changed one.
	rec := env.do(t, http.MethodPut, "/people", map[string]any{"id": id, "name": "Annie"}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "You need to specify the birthdate", decode(t, rec)["error"])

	rec = env.do(t, http.MethodGet, fmt.Sprintf("/people/%d", id), nil, "")
	assert.Equal(t, "Luke", decode(t, rec)["name"], "rejected edit leaves the row untouched")
}

func TestPlanetEndpoints(t *testing.T) {
	env := newTestEnv(t)

	body := hothPayload()
	delete(body, "orbital_period")
	rec := env.do(t, http.MethodPost, "/planets", body, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "You need to specify the orbital_period", decode(t, rec)["error"])

	id := createEntity(t, env, "/planets", hothPayload())

	rec = env.do(t, http.MethodPost, "/planet-with-post", map[string]any{"id": id}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode(t, rec)
	assert.Equal(t, "Hoth", got["name"])
	assert.Equal(t, "549", got["orbital_period"])

	rec = env.do(t, http.MethodDelete, "/planets", map[string]any{"id": id + 1}, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Planet not found", decode(t, rec)["error"])

	rec = env.do(t, http.MethodDelete, "/planets", map[string]any{"id": id}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Planet deleted", decode(t, rec)["msg"])
}

func TestVehicleEndpoints(t *testing.T) {
	env := newTestEnv(t)
	id := createEntity(t, env, "/vehicles", atatPayload())

	rec := env.do(t, http.MethodGet, fmt.Sprintf("/vehicles/%d", id), nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "All Terrain Armored Transport", decode(t, rec)["model"])

	rec = env.do(t, http.MethodGet, fmt.Sprintf("/vehicles/%d", id+1), nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Vehicle not found", decode(t, rec)["error"])

	rec = env.do(t, http.MethodDelete, "/vehicles", map[string]any{"id": id}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Vehicle deleted", decode(t, rec)["msg"])
}

func TestUserEndpoints(t *testing.T) {
	env := newTestEnv(t)
	id := env.registerUser(t, "mara@example.com", "Mara", "jade")

	rec := env.do(t, http.MethodGet, fmt.Sprintf("/user/%d", id), nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Mara", decode(t, rec)["name"])

	rec = env.do(t, http.MethodPut, "/user", map[string]any{"id": id, "name": "Mara Jade"}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Mara Jade", decode(t, rec)["name"])

	rec = env.do(t, http.MethodPost, "/user-with-post", map[string]any{"id": id}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Mara Jade", decode(t, rec)["name"])

	rec = env.do(t, http.MethodDelete, "/user", map[string]any{"id": id}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "User deleted", decode(t, rec)["msg"])

	rec = env.do(t, http.MethodGet, fmt.Sprintf("/user/%d", id), nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", decode(t, rec)["error"])
}
