// Package app wires the courses program together: it builds the logger from the
// configuration, owns the catalog, and runs the interactive menu session.
package app
