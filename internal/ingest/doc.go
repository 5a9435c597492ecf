// Package ingest reads course records from comma-delimited text.
//
// Each line holds a course code, a title, and any number of prerequisite codes:
//
//	CSCI300,Introduction to Algorithms,CSCI200,MATH201
//
// Fields are trimmed of surrounding whitespace. Blank lines and lines starting with
// "//" or "#" are skipped, and so are lines with fewer than two fields. Empty
// prerequisite fields are dropped. There is no quoting: a comma always ends a field.
package ingest
