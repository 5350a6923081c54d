// Package handlers implements the HTTP API layer of jogos.
//
// Handlers expose the catalog over a local REST API served by the serve
// command. They delegate to the services layer and only deal with request
// binding, response formatting and HTTP semantics.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────┐
//	│                     HTTP Request (Gin)                          │
//	└─────────────────────────────────────────────────────────────────┘
//	                              │
//	                              ▼
//	┌─────────────────────────────────────────────────────────────────┐
//	│                      Handler (this package)                     │
//	│  - Parameter parsing (scope, sort)                              │
//	│  - Error mapping to HTTP status codes                           │
//	│  - Model-to-API conversion                                      │
//	└─────────────────────────────────────────────────────────────────┘
//	                              │
//	                              ▼
//	┌─────────────────────────────────────────────────────────────────┐
//	│                      Services Layer                             │
//	│  CatalogService │ MetadataService                               │
//	└─────────────────────────────────────────────────────────────────┘
//
// The Handler implements the ServerInterface generated from
// api/v1/openapi.yaml and is registered with:
//
//	v1.RegisterHandlers(router, handler)
//
// # API Endpoints
//
// Game Endpoints (games.go):
//
//	┌────────┬──────────────────────┬────────────────────────────────────┐
//	│ Method │ Endpoint             │ Description                        │
//	├────────┼──────────────────────┼────────────────────────────────────┤
//	│ GET    │ /games               │ Derived view of a scope            │
//	│ POST   │ /games               │ Create a game                      │
//	│ GET    │ /games/export        │ Derived view as an xlsx workbook   │
//	│ GET    │ /games/{id}          │ Get a game                         │
//	│ PUT    │ /games/{id}          │ Replace a game                     │
//	│ DELETE │ /games/{id}          │ Delete a game and its cover        │
//	│ POST   │ /games/{id}/favorite │ Flip the favorite flag             │
//	│ GET    │ /platforms           │ Platforms of owned games           │
//	└────────┴──────────────────────┴────────────────────────────────────┘
//
// Metadata Endpoints (metadata.go):
//
//	┌────────┬──────────────────────┬────────────────────────────────────┐
//	│ Method │ Endpoint             │ Description                        │
//	├────────┼──────────────────────┼────────────────────────────────────┤
//	│ GET    │ /metadata/search     │ Search IGDB for record seeds       │
//	│ POST   │ /games/{id}/cover    │ Download a cover for a game        │
//	└────────┴──────────────────────┴────────────────────────────────────┘
//
// # Games Handler
//
// GET /games - Returns the derived view of a scope.
//
// Query Parameters:
//
//	┌────────┬────────┬─────────────────────────────────────────────────┐
//	│ Param  │ Type   │ Description                                     │
//	├────────┼────────┼─────────────────────────────────────────────────┤
//	│ scope  │ string │ ALL_GAMES (default), RECENTS, FAVORITES,        │
//	│        │        │ WISHLIST or a platform code                     │
//	│ search │ string │ Case-insensitive title substring                │
//	│ sort   │ string │ <field>_asc or <field>_desc, e.g. title_asc     │
//	└────────┴────────┴─────────────────────────────────────────────────┘
//
// Response:
//
//	{
//	    "scope": "NINTENDO_SWITCH",
//	    "search": "",
//	    "sort": "title_asc",
//	    "state": "no-games-for-platform",
//	    "platformIcon": "nintendo-switch",
//	    "presentation": "grid",
//	    "games": []
//	}
//
// Every request runs on its own pipeline, so API clients never move the
// session view of another client.
//
// # Error Handling
//
// Handlers use a consistent error response format:
//
//	{ "error": "error message" }
//
// HTTP Status Code Mapping:
//
//	┌─────────────────────────────┬────────┬──────────────────────────────┐
//	│ Error Type                  │ Status │ When                         │
//	├─────────────────────────────┼────────┼──────────────────────────────┤
//	│ Binding / parse error       │ 400    │ Bad JSON, scope or sort      │
//	│ InvalidGameError            │ 400    │ Form validation failed       │
//	│ ResourceNotFoundError       │ 404    │ Game doesn't exist           │
//	│ StaleSearchError            │ 409    │ Newer search superseded it   │
//	│ Cover download failure      │ 502    │ Remote image unavailable     │
//	│ MetadataUnavailableError    │ 503    │ IGDB not configured/refused  │
//	│ Internal error              │ 500    │ Unexpected service errors    │
//	└─────────────────────────────┴────────┴──────────────────────────────┘
//
// # Model Conversion
//
// Handlers convert between internal models and API types using extension
// functions defined in api/v1/extension.go:
//
//   - v1.NewGameFromModel(models.Game, CoverLookup) → v1.Game
//   - v1.GameInput.ToModel() → models.Game
//   - v1.NewGameListResponse(view.Result, CoverLookup) → v1.GameListResponse
//   - v1.NewCandidateFromModel(igdb.Candidate) → v1.Candidate
package handlers
