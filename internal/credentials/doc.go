// Package credentials supplies the login password from one of three
// sources: the command line, a password file, or a hidden terminal prompt.
// Precedence is fixed: argument, then file, then prompt.
package credentials
