// Package igdb is a small client for the IGDB v4 games API.
//
// Authentication uses a Twitch app token (client credentials grant). The
// token and its expiration are kept in a TokenCache so that a new process
// does not authenticate again while the token is still valid:
//
//	client := igdb.NewClient(clientID, clientSecret, igdb.WithTokenCache(prefs))
//	games, err := client.Search(ctx, "chrono trigger", 19)
//
// Search authenticates first when the cached token is missing or expired.
// Network errors, 429 and 5xx responses are retried with exponential
// backoff; 401 and 403 drop the token and return a MetadataUnavailableError.
// Without client credentials every call returns MetadataUnavailableError.
package igdb
