// Package app wires the dependency graph for one CLI invocation: HTTP
// client, API client, credential source, services, and logger.
package app
