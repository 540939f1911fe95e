// Package render is the Section Renderer: it combines a docfields.Model
// with a signature.Descriptor and produces numpydoc text.
//
// # Layout
//
// Sections are emitted in fixed order, each separated by one blank line:
//
//	Summary, deprecation directive, Extended Summary, Parameters, Returns,
//	Yields, Receives, Other Parameters, Raises, Warns, Warnings, See Also,
//	Notes, References, Examples
//
// Headed sections start with the title and a line of dashes of the same
// length. Free-form text is de-indented and stripped of trailing
// whitespace, so callers can write it as an indented raw string.
//
// # Type information
//
// Parameter headers take their type label and default from the
// descriptor, never from the prose:
//
//	name : string
//	language : string, optional, default: "en"
//
// A parameter the descriptor does not know, or knows without a type,
// renders as its bare name. Return headers use the descriptor's result
// labels; when none are known the ":" separator is left out.
//
// Rendering is deterministic and has no side effects; a Renderer can be
// shared between goroutines.
package render
