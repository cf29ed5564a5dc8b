// Package export fetches a user's subscribed communities and writes them
// to an OPML file.
package export
