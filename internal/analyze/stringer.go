package analyze

import (
	"go/types"
	"strings"
)

// TypeStringer renders go/types types the way they are written inside
// one package: types from that package unqualified, others by package
// name.
type TypeStringer struct {
	pkg *types.Package
}

// NewTypeStringer creates a TypeStringer relative to pkg. A nil pkg
// qualifies every named type.
func NewTypeStringer(pkg *types.Package) *TypeStringer {
	return &TypeStringer{pkg: pkg}
}

// TypeString returns the label for t. The empty interface is spelled
// "any".
func (s *TypeStringer) TypeString(t types.Type) string {
	if t == nil {
		return "<nil>"
	}

	label := types.TypeString(t, s.qualify)

	return strings.ReplaceAll(label, "interface{}", "any")
}

// Variadic returns the label of a variadic parameter's slice type,
// written with the "..." marker.
func (s *TypeStringer) Variadic(t types.Type) string {
	if sl, ok := t.Underlying().(*types.Slice); ok {
		return "..." + s.TypeString(sl.Elem())
	}

	return s.TypeString(t)
}

func (s *TypeStringer) qualify(other *types.Package) string {
	if s.pkg != nil && other.Path() == s.pkg.Path() {
		return ""
	}

	return other.Name()
}

// iteratorElems reports whether t is an instantiation of iter.Seq or
// iter.Seq2 and, if so, returns the types passed to its yield function.
func iteratorElems(t types.Type) ([]types.Type, bool) {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return nil, false
	}

	obj := named.Obj()
	if obj.Pkg() == nil || obj.Pkg().Path() != "iter" || !strings.HasPrefix(obj.Name(), "Seq") {
		return nil, false
	}

	sig, ok := named.Underlying().(*types.Signature)
	if !ok || sig.Params().Len() != 1 {
		return nil, false
	}

	yield, ok := sig.Params().At(0).Type().Underlying().(*types.Signature)
	if !ok {
		return nil, false
	}

	elems := make([]types.Type, yield.Params().Len())
	for i := range elems {
		elems[i] = yield.Params().At(i).Type()
	}

	return elems, true
}
