package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/holocron/catalog-api/internal/handler"    // handlers that implement business logic
	"github.com/holocron/catalog-api/internal/middleware" // middleware for JWT authentication
	"github.com/holocron/catalog-api/internal/repository" // repositories injected into the JWT middleware
)

// Handlers groups every handler the router wires up.  All of them are
// constructed in main with their repositories injected, so the router only
// maps paths to methods.
type Handlers struct {
	Auth      *handler.AuthHandler
	Users     *handler.UserHandler
	People    *handler.PeopleHandler
	Planets   *handler.PlanetHandler
	Vehicles  *handler.VehicleHandler
	Favorites *handler.FavoriteHandler
}

// Register wires every route of the API onto the provided Echo instance.
// Catalog CRUD and the payload-addressed favorite endpoints are public;
// logout, the demo protected route and the per-user favorites listing sit
// behind the JWT middleware, which also consults the revocation ledger.
func Register(e *echo.Echo, h Handlers, jwtSecret string, tokens *repository.TokenRepo) {
	// Health check for load balancers and monitoring.
	e.GET("/healthz", handler.Health)

	// Session endpoints.  Register and login issue no middleware; logout and
	// the demo protected route require a live (non-revoked) access token.
	e.POST("/register", h.Auth.Register)
	e.POST("/login", h.Auth.Login)

	guarded := e.Group("")
	guarded.Use(middleware.JWTAuth(jwtSecret, tokens))
	guarded.POST("/logout", h.Auth.Logout)
	guarded.GET("/protected", h.Auth.Protected)

	// Users.  Edit and delete address the target by payload id.
	e.GET("/user", h.Users.List)
	e.GET("/user/:id", h.Users.GetByID)
	e.POST("/user-with-post", h.Users.GetWithPost)
	e.PUT("/user", h.Users.Update)
	e.DELETE("/user", h.Users.Delete)

	// People catalog.
	e.GET("/people", h.People.List)
	e.POST("/people", h.People.Create)
	e.GET("/people/:id", h.People.GetByID)
	e.POST("/people-with-post", h.People.GetWithPost)
	e.PUT("/people", h.People.Update)
	e.DELETE("/people", h.People.Delete)

	// Planets catalog.
	e.GET("/planets", h.Planets.List)
	e.POST("/planets", h.Planets.Create)
	e.GET("/planets/:id", h.Planets.GetByID)
	e.POST("/planet-with-post", h.Planets.GetWithPost)
	e.PUT("/planets", h.Planets.Update)
	e.DELETE("/planets", h.Planets.Delete)

	// Vehicles catalog.
	e.GET("/vehicles", h.Vehicles.List)
	e.POST("/vehicles", h.Vehicles.Create)
	e.GET("/vehicles/:id", h.Vehicles.GetByID)
	e.POST("/vehicles-with-post", h.Vehicles.GetWithPost)
	e.PUT("/vehicles", h.Vehicles.Update)
	e.DELETE("/vehicles", h.Vehicles.Delete)

	// Favorites.  Add/remove are payload-addressed and public; the GET
	// listing is scoped to the authenticated user.
	e.POST("/favorite/people", h.Favorites.AddPeople)
	e.DELETE("/favorite/people", h.Favorites.RemovePeople)
	e.POST("/favorite/planet", h.Favorites.AddPlanet)
	e.DELETE("/favorite/planet", h.Favorites.RemovePlanet)
	e.POST("/favorite/vehicle", h.Favorites.AddVehicle)
	e.DELETE("/favorite/vehicle", h.Favorites.RemoveVehicle)
	e.POST("/favorites", h.Favorites.ListWithPost)
	guarded.GET("/favorites/:user_id", h.Favorites.ListForUser)
}
