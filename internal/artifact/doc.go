// Package artifact models Maven coordinates of the form group:artifact:version
// and builds the coordinate of the Feathr Spark runtime.
package artifact
