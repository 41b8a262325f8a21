// Package client queries a running version server and prints what it reports.
package client
