// Package common holds helpers shared by several services.
//
// It provides a lightweight gRPC client for the version service with
// per-call timeouts and the precedence chain used to resolve the artifact
// version override (command line, environment, configuration file).
//
//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common
