// Package info renders build information (release version, build metadata
// and the resolved Maven artifact) as text, JSON or YAML.
package info
