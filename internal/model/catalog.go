package model

// The three catalog entities are independent schemas with a uniform CRUD
// shape.  Every declared attribute is required on create and on edit; partial
// updates are not supported.

// People represents a character row in the `people` table.
type People struct {
	ID        uint64  `json:"id"`        // people.id
	Name      string  `json:"name"`      // people.name
	Height    float64 `json:"height"`    // people.height
	Birthdate string  `json:"birthdate"` // people.birthdate
	Gender    string  `json:"gender"`    // people.gender
	Eyes      string  `json:"eyes"`      // people.eyes
	Skin      string  `json:"skin"`      // people.skin
}

// Planet represents a row in the `planets` table.
type Planet struct {
	ID            uint64 `json:"id"`             // planets.id
	Name          string `json:"name"`           // planets.name
	Gravity       string `json:"gravity"`        // planets.gravity
	Terrain       string `json:"terrain"`        // planets.terrain
	Climate       string `json:"climate"`        // planets.climate
	OrbitalPeriod string `json:"orbital_period"` // planets.orbital_period
	Population    string `json:"population"`     // planets.population
	Diameter      string `json:"diameter"`       // planets.diameter
}

// Vehicle represents a row in the `vehicles` table.
type Vehicle struct {
	ID            uint64 `json:"id"`             // vehicles.id
	Name          string `json:"name"`           // vehicles.name
	Model         string `json:"model"`          // vehicles.model
	Length        string `json:"length"`         // vehicles.length
	MaxSpeed      string `json:"max_speed"`      // vehicles.max_speed
	CargoCapacity string `json:"cargo_capacity"` // vehicles.cargo_capacity
	Manufacturer  string `json:"manufacturer"`   // vehicles.manufacturer
}
