// Package config builds a logger.Logger from a YAML file and the
// environment.
//
// A minimal file:
//
//	backend: zap
//	syslog:
//	  enabled: false
//	output: stdout
//	error_output: stderr
//	filter: -1
//
// Keys left out keep the values of Default. The TEXTLOG_FILTER
// environment variable overrides filter.
package config
