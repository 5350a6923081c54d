// Package view derives what the games list shows from a loaded record set.
//
//	Query(scope) ──► Pipeline.Load ──► FilterSet ──► Sorter ──► Selection
//	                                                    │
//	                                                    ▼
//	                                    DeriveState(scope, len(search), n)
//
// Scopes configure the filters when loaded:
//
//	┌────────────┬──────────┬──────────────┬───────────────┬──────────────────────┐
//	│  Scope     │ Platform │ Favorite     │ Wishlist      │ Sort                 │
//	├────────────┼──────────┼──────────────┼───────────────┼──────────────────────┤
//	│  all       │ any      │ any          │ owned         │ title, or user key   │
//	│  recents   │ any      │ any          │ owned         │ modification desc    │
//	│  favorites │ any      │ only         │ owned         │ title, or user key   │
//	│  wishlist  │ any      │ any          │ only          │ title, or user key   │
//	│  platform  │ code     │ any          │ owned         │ title, or user key   │
//	└────────────┴──────────┴──────────────┴───────────────┴──────────────────────┘
//
// The title filter is independent of scope and survives a reload. The
// selection does not: Load clears it and callers reselect by id after a
// mutation. Search and SortBy keep the selection when the game is still
// visible.
package view
