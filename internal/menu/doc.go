// Package menu runs the interactive session of the courses program: it loads the
// course file on request and prints the catalog or single courses with their
// prerequisites.
package menu
