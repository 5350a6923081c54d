// Package services implements the business logic layer of jogos.
//
// Services sit between the outer surfaces (the cobra commands and the HTTP
// handlers) and the catalog store. They own the session view, run the
// mutation flows end to end and push slow remote work onto the scheduler.
//
// # Service Dependency Graph
//
//	Handlers / Commands
//	    │
//	    ▼
//	Services Layer
//	    ├── CatalogService ───► GameStore, ViewPreferences, view.Pipeline
//	    └── MetadataService ──► Scheduler, Searcher (IGDB), CoverSaver
//
// # CatalogService
//
// CatalogService holds one view.Pipeline for the session. Every scope change
// re-queries the store and reloads the pipeline; search, sort and selection
// are applied to the loaded snapshot without touching the store.
//
// Mutation flows:
//
//	Create / Update
//	    validate ──► round price ──► store write ──► clear search
//	        ──► show platform (or wishlist) ──► select record
//
//	ToggleFavorite / Delete
//	    store write ──► reload current scope ──► keep selection if visible
//
// Key behaviors:
//   - Validation failures are returned as InvalidGameError and nothing is written
//   - Update keeps the stored creation date whatever the caller sends
//   - The last shown scope is saved to preferences; a failed save is logged only
//   - Browse runs a throwaway pipeline so HTTP requests never disturb the session
//
// Usage:
//
//	catalog := services.NewCatalogService(st.Game(), prefs, language.English)
//	res, err := catalog.Open(ctx)
//	res = catalog.Search("zelda")
//	game, res, err := catalog.Create(ctx, form)
//
// # MetadataService
//
// MetadataService looks games up on IGDB and downloads their covers. Both
// run through the shared scheduler with a per-call timeout.
//
// Only the latest search is live. Each call takes a new token and stops the
// previous future; when a result arrives for a token that is no longer
// current it is discarded and the caller gets a StaleSearchError.
//
//	Search("zel") ─────► token 1 ──► (stopped) ──► StaleSearchError
//	Search("zelda") ───► token 2 ──► candidates
//
// Key behaviors:
//   - An empty term supersedes the running search and returns no candidates
//   - Without client credentials Search returns MetadataUnavailableError
//   - The platform hint is the IGDB id of the form's platform, when known
//
// # Thread Safety
//
// CatalogService serializes every session operation with a mutex. Browse,
// Get, Count and Platforms do not touch the session and run unlocked.
// MetadataService guards the token and current future with a mutex and
// waits for results outside of it.
package services
