package model

// Favorite join rows link one user to one catalog entity.  Each table carries
// a unique index on the (user_id, entity_id) pair so a user can favorite a
// given entity at most once; the index is the source of truth when two adds
// race each other.

// FavoritePeople is a row in `favorite_people`.
type FavoritePeople struct {
	ID       uint64 `json:"id"`        // favorite_people.id
	UserID   uint64 `json:"user_id"`   // favorite_people.user_id
	PeopleID uint64 `json:"people_id"` // favorite_people.people_id
}

// FavoritePlanet is a row in `favorite_planets`.
type FavoritePlanet struct {
	ID       uint64 `json:"id"`        // favorite_planets.id
	UserID   uint64 `json:"user_id"`   // favorite_planets.user_id
	PlanetID uint64 `json:"planet_id"` // favorite_planets.planet_id
}

// FavoriteVehicle is a row in `favorite_vehicles`.
type FavoriteVehicle struct {
	ID        uint64 `json:"id"`         // favorite_vehicles.id
	UserID    uint64 `json:"user_id"`    // favorite_vehicles.user_id
	VehicleID uint64 `json:"vehicle_id"` // favorite_vehicles.vehicle_id
}

// FavoriteItem is a listing projection used when returning a user's
// favorites.  Category identifies the catalog the row belongs to ("people",
// "planets" or "vehicles"); it is derived from the source table, never
// stored.  Clients use it to build navigation links.
type FavoriteItem struct {
	Name     string `json:"name"`     // display name of the referenced entity
	EntityID uint64 `json:"id"`       // id of the referenced entity
	Category string `json:"category"` // catalog tag: people | planets | vehicles
}
