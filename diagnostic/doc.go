// Package diagnostic provides structured problems and advisories raised
// while validating and cross-checking documentation.
//
// Key capabilities:
//   - Errors that make a Field Model invalid (empty summary, empty sections)
//   - Warnings about documentation that disagrees with a signature
//   - "Did you mean" suggestions attached to a diagnostic
package diagnostic
