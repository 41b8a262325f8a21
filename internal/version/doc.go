// Package version exposes release metadata for the Feathr SDK.
//
// Version is the SDK release string. Commit and BuildTime are injected at
// build time via Go ldflags and default to sensible values for local builds.
//
// MavenArtifactFullname derives the Maven coordinate of the Feathr Spark
// runtime. Its version segment can be overridden through the
// MAVEN_ARTIFACT_VERSION environment variable so the runtime can be released
// independently of the SDK.
package version
