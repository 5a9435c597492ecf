// Package config defines the settings of the courses program, their defaults,
// and how an optional HCL file and command-line flags are layered over them.
//
// An HCL config file looks like:
//
//	data_file  = "courses.csv"
//	log_level  = "info"
//	log_format = "json"
//
// A relative data_file is resolved against the directory of the config file.
package config
