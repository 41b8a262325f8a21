// Package config defines the feathr-version settings and provides helpers to
// load, validate and save them in YAML format.
//
// The Config type holds the gRPC server address, the call timeout, the log
// level and an optional artifact version override.
package config
