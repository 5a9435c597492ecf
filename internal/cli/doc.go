// Package cli turns the command-line arguments of the courses program into a
// validated config.Config.
package cli
