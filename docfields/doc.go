// Package docfields is the Field Model of a numpy-style docstring.
//
// Callers describe what they want documented in a Fields struct and turn
// it into an immutable Model with New. Validation is eager: a blank
// summary, or any section supplied without entries, is rejected with a
// *ConfigurationError (errors.Is(err, ErrConfiguration) holds) listing
// every problem found.
//
// All keyed sections use OrderedMap, so the order in which entries are
// declared is the order in which they are rendered:
//
//	m, err := docfields.New(docfields.Fields{
//		Summary: "Say hello to someone.",
//		Parameters: docfields.NewParams(
//			docfields.Arg("name", "The name of the person to greet."),
//			docfields.Arg("language", "The language in which to greet as an ISO 639-1 code."),
//		),
//		Returns: docfields.Text("A pleasant greeting."),
//		Raises: docfields.NewDescriptions(
//			docfields.Item("ErrNotImplemented", "If the requested language has not been implemented yet."),
//		),
//	})
//
// A Model can be exported with MarshalYAML for inspection; key order is
// preserved.
package docfields
