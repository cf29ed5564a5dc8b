// Package commands defines the lemmyopml CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - export  Write your subscribed communities to an OPML file
//   - import  Subscribe to every community listed in an OPML file
//
// # Implementation
//
// Each subcommand merges flags over the optional defaults file, builds the
// dependency graph (HTTP client, API client, credential source, services),
// logs in once, and runs its operation. The session token lives only for
// the duration of the invocation.
package commands
