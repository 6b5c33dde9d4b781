// Package services holds the shared error taxonomy for pipeline stages and
// the clients for external annotation tooling.
package services
