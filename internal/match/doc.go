// Package match provides identifier normalisation and edit-distance
// scoring used to suggest the intended name when documentation refers to
// a parameter the signature does not declare.
//
// Key functions:
//   - NormalizeIdent: folds case, separators and variadic markers
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks candidate names by similarity
package match
