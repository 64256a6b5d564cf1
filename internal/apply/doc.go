// Package apply evaluates generated transformations against instance
// documents.
package apply
