// Package lemmy provides an HTTP implementation of the domain.Client
// interface against the Lemmy v3 API.
//
// Supported operations:
//   - Logging in (credentials for a session token).
//   - Listing the user's subscribed communities, page by page.
//   - Resolving a community reference to its numeric id.
//   - Following a community.
//
// All requests are JSON over HTTPS. Non-2xx statuses are returned as
// errors wrapping the relevant domain error kind.
package lemmy
