// Package config parses and validates workload run configurations.
//
// A run configuration describes a synthetic workload (worker count,
// iterations, value distribution), the reservoir strategy to use, and what
// to include in the report. Files may be YAML or JSON; the format is
// chosen by file extension. Every document is validated against an
// embedded JSON Schema before semantic checks run.
package config
