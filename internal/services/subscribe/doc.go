// Package subscribe follows a list of communities one at a time, pausing a
// fixed interval between calls to stay inside the instance's rate limits.
package subscribe
