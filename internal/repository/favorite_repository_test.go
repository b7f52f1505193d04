package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holocron/catalog-api/internal/model"
)

// seedCatalog inserts one user, one character, one planet and one vehicle
// and returns their ids.
func seedCatalog(t *testing.T, ctx context.Context, users *UserRepo, people *PeopleRepo, planets *PlanetRepo, vehicles *VehicleRepo) (userID, peopleID, planetID, vehicleID uint64) {
	t.Helper()
	u, err := users.Create(ctx, "fan@example.com", "Fan", "hash", true)
	require.NoError(t, err)

	p := newLuke()
	require.NoError(t, people.Create(ctx, p))

	pl := &model.Planet{Name: "Hoth", Gravity: "1.1", Terrain: "ice", Climate: "frozen",
		OrbitalPeriod: "549", Population: "unknown", Diameter: "7200"}
	require.NoError(t, planets.Create(ctx, pl))

	v := &model.Vehicle{Name: "AT-AT", Model: "All Terrain Armored Transport", Length: "20",
		MaxSpeed: "60", CargoCapacity: "1000", Manufacturer: "Kuat Drive Yards"}
	require.NoError(t, vehicles.Create(ctx, v))

	return u.ID, p.ID, pl.ID, v.ID
}

func TestFavoriteRepoAddHasRemove(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	users, people := NewUserRepo(db), NewPeopleRepo(db)
	planets, vehicles := NewPlanetRepo(db), NewVehicleRepo(db)
	favs := NewFavoriteRepo(db)

	userID, peopleID, _, _ := seedCatalog(t, ctx, users, people, planets, vehicles)

	has, err := favs.HasPeople(ctx, userID, peopleID)
	require.NoError(t, err)
	assert.False(t, has)

	row, err := favs.AddPeople(ctx, userID, peopleID)
	require.NoError(t, err)
	assert.NotZero(t, row.ID)

	has, err = favs.HasPeople(ctx, userID, peopleID)
	require.NoError(t, err)
	assert.True(t, has)

	require.NoError(t, favs.RemovePeople(ctx, userID, peopleID))
	assert.ErrorIs(t, favs.RemovePeople(ctx, userID, peopleID), ErrFavoriteNotFound)
}

func TestFavoriteRepoDuplicatePair(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	users, people := NewUserRepo(db), NewPeopleRepo(db)
	planets, vehicles := NewPlanetRepo(db), NewVehicleRepo(db)
	favs := NewFavoriteRepo(db)

	userID, peopleID, _, _ := seedCatalog(t, ctx, users, people, planets, vehicles)

	_, err := favs.AddPeople(ctx, userID, peopleID)
	require.NoError(t, err)

	// The unique index rejects the second insert even without a prior
	// existence check, which is what guards the concurrent-add race.
	_, err = favs.AddPeople(ctx, userID, peopleID)
	assert.ErrorIs(t, err, ErrFavoriteExists)

	items, err := favs.ListAllByUser(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, items, 1, "duplicate add must not create a second row")
}

func TestFavoriteRepoListOrder(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	users, people := NewUserRepo(db), NewPeopleRepo(db)
	planets, vehicles := NewPlanetRepo(db), NewVehicleRepo(db)
	favs := NewFavoriteRepo(db)

	userID, peopleID, planetID, vehicleID := seedCatalog(t, ctx, users, people, planets, vehicles)

	// Insert in scrambled kind order; the listing still concatenates
	// people, then planets, then vehicles.
	_, err := favs.AddVehicle(ctx, userID, vehicleID)
	require.NoError(t, err)
	_, err = favs.AddPeople(ctx, userID, peopleID)
	require.NoError(t, err)
	_, err = favs.AddPlanet(ctx, userID, planetID)
	require.NoError(t, err)

	items, err := favs.ListAllByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "people", items[0].Category)
	assert.Equal(t, "Luke", items[0].Name)
	assert.Equal(t, peopleID, items[0].EntityID)
	assert.Equal(t, "planets", items[1].Category)
	assert.Equal(t, "Hoth", items[1].Name)
	assert.Equal(t, "vehicles", items[2].Category)
	assert.Equal(t, "AT-AT", items[2].Name)
}

func TestFavoriteRowsCascadeWithUser(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	users, people := NewUserRepo(db), NewPeopleRepo(db)
	planets, vehicles := NewPlanetRepo(db), NewVehicleRepo(db)
	favs := NewFavoriteRepo(db)

	userID, peopleID, planetID, _ := seedCatalog(t, ctx, users, people, planets, vehicles)
	_, err := favs.AddPeople(ctx, userID, peopleID)
	require.NoError(t, err)
	_, err = favs.AddPlanet(ctx, userID, planetID)
	require.NoError(t, err)

	require.NoError(t, users.Delete(ctx, userID))

	has, err := favs.HasPeople(ctx, userID, peopleID)
	require.NoError(t, err)
	assert.False(t, has, "deleting the user cascades away its favorites")
	has, err = favs.HasPlanet(ctx, userID, planetID)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestFavoriteRowsCascadeWithEntity(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	users, people := NewUserRepo(db), NewPeopleRepo(db)
	planets, vehicles := NewPlanetRepo(db), NewVehicleRepo(db)
	favs := NewFavoriteRepo(db)

	userID, peopleID, _, _ := seedCatalog(t, ctx, users, people, planets, vehicles)
	_, err := favs.AddPeople(ctx, userID, peopleID)
	require.NoError(t, err)

	require.NoError(t, people.Delete(ctx, peopleID))

	items, err := favs.ListAllByUser(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, items, "deleting the character cascades away the join row")
}
