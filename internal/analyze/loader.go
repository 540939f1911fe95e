package analyze

import (
	"fmt"
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/packages"

	"numpydoc/signature"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and indexes their functions.
type Analyzer struct {
	index *Index
	dir   string
}

// NewAnalyzer creates a new Analyzer that resolves patterns relative to
// the current directory.
func NewAnalyzer() *Analyzer {
	return &Analyzer{index: NewIndex()}
}

// NewAnalyzerIn creates an Analyzer that resolves patterns relative to
// dir.
func NewAnalyzerIn(dir string) *Analyzer {
	return &Analyzer{index: NewIndex(), dir: dir}
}

// LoadPackages loads the specified packages and indexes their functions.
// Patterns are standard Go package patterns (e.g., "./examples/greet",
// "numpydoc/examples/greet").
func (a *Analyzer) LoadPackages(patterns ...string) (*Index, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	for _, pkg := range pkgs {
		a.processPackage(pkg)
	}

	return a.index, nil
}

// Index returns the current function index.
func (a *Analyzer) Index() *Index {
	return a.index
}

// processPackage indexes every function and method declared in the
// package's source files, exported or not.
func (a *Analyzer) processPackage(pkg *packages.Package) {
	pkgInfo := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}

	stringer := NewTypeStringer(pkg.Types)

	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			fd, ok := decl.(*ast.FuncDecl)
			if !ok {
				continue
			}

			fn, ok := pkg.TypesInfo.Defs[fd.Name].(*types.Func)
			if !ok {
				continue
			}

			info := a.analyzeFunc(fn, stringer)
			info.ID.PkgPath = pkg.PkgPath

			if fd.Doc != nil {
				info.Comment = fd.Doc.Text()
			}

			a.index.Funcs[info.ID] = info
			pkgInfo.Funcs = append(pkgInfo.Funcs, info.ID)
		}
	}

	a.index.Packages[pkg.PkgPath] = pkgInfo
}

// analyzeFunc describes one function from its go/types signature.
func (a *Analyzer) analyzeFunc(fn *types.Func, s *TypeStringer) *FuncInfo {
	sig := fn.Signature()
	info := &FuncInfo{
		ID:       FuncID{Name: fn.Name()},
		Variadic: sig.Variadic(),
	}

	if recv := sig.Recv(); recv != nil {
		info.Receiver = s.TypeString(recv.Type())
		info.ID.Name = receiverBase(recv.Type(), s) + "." + fn.Name()
	}

	params := sig.Params()
	for i := range params.Len() {
		v := params.At(i)

		label := s.TypeString(v.Type())
		if info.Variadic && i == params.Len()-1 {
			label = s.Variadic(v.Type())
		}

		info.Params = append(info.Params, VarInfo{Name: v.Name(), Label: label, Type: v.Type()})
	}

	results := sig.Results()
	for i := range results.Len() {
		v := results.At(i)
		info.Results = append(info.Results, VarInfo{Name: v.Name(), Label: s.TypeString(v.Type()), Type: v.Type()})
	}

	switch {
	case len(info.Results) == 0:
		info.Kind = ResultNone
	case len(info.Results) == 1:
		info.Kind = ResultValues

		if elems, ok := iteratorElems(info.Results[0].Type); ok {
			info.Kind = ResultIterator
			for _, e := range elems {
				info.Yields = append(info.Yields, VarInfo{Label: s.TypeString(e), Type: e})
			}
		}
	default:
		info.Kind = ResultValues
	}

	return info
}

// receiverBase returns the receiver's type name without pointer or type
// parameters.
func receiverBase(t types.Type, s *TypeStringer) string {
	if p, ok := t.(*types.Pointer); ok {
		t = p.Elem()
	}

	if named, ok := types.Unalias(t).(*types.Named); ok {
		return named.Obj().Name()
	}

	return s.TypeString(t)
}

// Func returns the FuncInfo for a function or "Type.Method" in a loaded
// package.
func (a *Analyzer) Func(pkgPath, name string) (*FuncInfo, error) {
	id := FuncID{PkgPath: pkgPath, Name: name}

	if _, ok := a.index.Packages[pkgPath]; !ok {
		return nil, fmt.Errorf("package %s not loaded", pkgPath)
	}

	info := a.index.GetFunc(id)
	if info == nil {
		return nil, fmt.Errorf("function %s not found", id)
	}

	return info, nil
}

// Descriptor returns the signature.Descriptor for a function or
// "Type.Method" in a loaded package. Unnamed and blank parameters are
// named by position ("arg0", "arg1", ...).
func (a *Analyzer) Descriptor(pkgPath, name string) (signature.Descriptor, error) {
	info, err := a.Func(pkgPath, name)
	if err != nil {
		return signature.Descriptor{}, err
	}

	return info.Descriptor(), nil
}

// Descriptor converts the function description into a
// signature.Descriptor.
func (f *FuncInfo) Descriptor() signature.Descriptor {
	var d signature.Descriptor

	for i, p := range f.Params {
		name := p.Name
		if name == "" || name == "_" {
			name = fmt.Sprintf("arg%d", i)
		}

		sp := signature.Param{Name: name, TypeLabel: p.Label}
		if f.Variadic && i == len(f.Params)-1 {
			sp.Kind = signature.KindVarPositional
		}

		d.Params = append(d.Params, sp)
	}

	switch f.Kind {
	case ResultValues:
		d.Returns = outputs(f.Results)
	case ResultIterator:
		d.Yields = outputs(f.Yields)
	case ResultNone:
	}

	return d
}

func outputs(vars []VarInfo) signature.Outputs {
	values := make([]signature.Value, len(vars))
	for i, v := range vars {
		values[i] = signature.Value{Name: v.Name, TypeLabel: v.Label}
	}

	return signature.Outputs{Label: signature.TupleLabel(values), Values: values}
}
