package analyze

import (
	"go/types"
	"slices"
	"strings"

	"numpydoc/internal/common"
)

// FuncID uniquely identifies a function or method by its package path
// and name. Methods are named "Type.Method".
type FuncID struct {
	PkgPath string // e.g., "numpydoc/examples/greet"
	Name    string // e.g., "Greeter.Greet"
}

// String returns a human-readable representation of the FuncID.
func (id FuncID) String() string {
	if id.PkgPath == "" {
		return id.Name
	}

	return id.PkgPath + "." + id.Name
}

// IsMethod reports whether the ID names a method.
func (id FuncID) IsMethod() bool {
	return strings.Contains(id.Name, ".")
}

// ResultKind classifies what a function hands back.
type ResultKind int

const (
	ResultNone     ResultKind = iota
	ResultValues              // ordinary results
	ResultIterator            // a single iter.Seq or iter.Seq2 result
)

// String returns a human-readable representation of the ResultKind.
func (k ResultKind) String() string {
	switch k {
	case ResultNone:
		return "none"
	case ResultValues:
		return "values"
	case ResultIterator:
		return "iterator"
	default:
		return common.UnknownStr
	}
}

// VarInfo describes one parameter or result.
type VarInfo struct {
	Name  string     // declared name; empty when unnamed
	Label string     // type as written relative to the declaring package
	Type  types.Type // the original go/types.Type
}

// FuncInfo describes a declared function or method.
type FuncInfo struct {
	ID       FuncID
	Receiver string    // receiver type label, empty for functions
	Params   []VarInfo // receiver excluded
	Results  []VarInfo
	Variadic bool
	Kind     ResultKind
	Yields   []VarInfo // element types when Kind is ResultIterator
	Comment  string    // doc comment text
}

// ParamNames returns the parameter names in declaration order.
func (f *FuncInfo) ParamNames() []string {
	names := make([]string, len(f.Params))
	for i, p := range f.Params {
		names[i] = p.Name
	}

	return names
}

// Index holds all functions from loaded packages.
type Index struct {
	// Funcs maps FuncID to FuncInfo for every declared function.
	Funcs map[FuncID]*FuncInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewIndex creates a new empty Index.
func NewIndex() *Index {
	return &Index{
		Funcs:    make(map[FuncID]*FuncInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetFunc returns the FuncInfo for a given FuncID, or nil if not found.
func (x *Index) GetFunc(id FuncID) *FuncInfo {
	return x.Funcs[id]
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Funcs []FuncID // Functions declared in this package, in source order
}

// FuncNames returns the names of the package's functions, sorted.
func (p *PackageInfo) FuncNames() []string {
	names := make([]string, len(p.Funcs))
	for i, id := range p.Funcs {
		names[i] = id.Name
	}

	slices.Sort(names)

	return names
}
