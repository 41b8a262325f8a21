// Package checker validates release metadata before publishing: the release
// version and the resolved Maven artifact version must both be strict
// semantic versions, and the artifact version may be pinned to an expected value.
package checker
