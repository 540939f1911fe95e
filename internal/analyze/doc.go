// Package analyze loads Go packages and describes their functions.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to build
// an index of every function and method declared in the loaded packages,
// with real parameter names and type labels, from which a
// signature.Descriptor can be produced without reflection.
//
// Key types:
//   - FuncID: package import path + function name ("Func" or "Type.Method")
//   - FuncInfo: parameters, results and the declaration's doc comment
//   - Index: all functions found in the loaded packages
package analyze
