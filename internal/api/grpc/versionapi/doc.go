// Package versionapi implements the gRPC transport for the version service.
//
// The service is described by hand with protobuf well-known types
// (google.protobuf.Empty in, google.protobuf.StringValue out), so no
// generated stubs are required. Server answers from a provided Provider.
package versionapi
