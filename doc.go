// Package numpydoc attaches numpy-style documentation to Go functions.
//
// A function is documented once, usually in a package-level variable, by
// pairing it with a docfields.Fields value:
//
//	var Greet = numpydoc.MustDoc(greet, docfields.Fields{
//		Summary: "Say hello to someone.",
//		Parameters: docfields.NewParams(
//			docfields.Arg("name", "The name of the person to greet."),
//		),
//		Returns: docfields.Text("A pleasant greeting."),
//	}, numpydoc.WithNames("name"))
//
// Doc validates the fields, derives a signature.Descriptor from the
// function by reflection and renders the docstring with the render
// package. The result is a Documented value that still calls through to
// the original function and exposes the rendered text through Doc.
//
// Go reflection does not expose parameter names, so they are passed with
// WithNames, or read from the declaring package's source with WithSource
// (see SourceSignature). Defaults do not exist in Go either; WithDefault records the
// value a caller gets when passing the zero value or omitting an option.
//
// Registry keeps documented functions addressable by name, and Check
// reports documentation that has drifted away from the signature.
package numpydoc
