package domain

import "errors"

// Error kinds, matched with errors.Is. Everything except ErrSubscribe
// aborts the run; a subscribe failure is logged and the loop moves on.
var (
	ErrAuthentication = errors.New("authentication failed")
	ErrFetch          = errors.New("fetching subscriptions failed")
	ErrParse          = errors.New("malformed OPML document")
	ErrWrite          = errors.New("writing OPML document failed")
	ErrSubscribe      = errors.New("subscribe failed")
)
