// Package signature holds the Signature Descriptor: an immutable value
// describing the parameters, results and yielded values of a callable.
//
// Descriptors are produced outside the renderer, by reflection over a
// func value or by go/types analysis of source code, and may also be
// written by hand. The renderer only reads them.
package signature
