package numpydoc

import (
	"fmt"
	"reflect"
	"strings"

	"numpydoc/docfields"
	"numpydoc/signature"
)

// SignatureOf describes fn, which must be a function value. names gives
// the parameter names in declaration order; when it is empty the
// descriptor has no parameters and only describes the results.
//
// A variadic final parameter is reported as signature.KindVarPositional
// with a "...T" type label. When the only result is an iter.Seq or
// iter.Seq2, the element types are reported as Yields rather than
// Returns.
func SignatureOf(fn any, names ...string) (signature.Descriptor, error) {
	if fn == nil {
		return signature.Descriptor{}, invalidSignature("nil is not a function")
	}

	t := reflect.TypeOf(fn)
	if t.Kind() != reflect.Func {
		return signature.Descriptor{}, invalidSignature(fmt.Sprintf("%s is not a function", t))
	}

	var sig signature.Descriptor

	if len(names) > 0 {
		if len(names) != t.NumIn() {
			return signature.Descriptor{}, invalidSignature(fmt.Sprintf(
				"%d parameter names given for %s, which takes %d", len(names), t, t.NumIn()))
		}

		params, err := reflectParams(t, names)
		if err != nil {
			return signature.Descriptor{}, err
		}

		sig.Params = params
	}

	results := make([]reflect.Type, t.NumOut())
	for i := range results {
		results[i] = t.Out(i)
	}

	if len(results) == 1 && isSeq(results[0]) {
		sig.Yields = outputsOf(seqElems(results[0]))
	} else {
		sig.Returns = outputsOf(results)
	}

	return sig, nil
}

func reflectParams(t reflect.Type, names []string) ([]signature.Param, error) {
	params := make([]signature.Param, t.NumIn())
	seen := make(map[string]struct{}, len(names))

	for i := range params {
		name := strings.TrimSpace(names[i])
		if name == "" {
			return nil, invalidSignature(fmt.Sprintf("parameter %d has a blank name", i))
		}

		if _, dup := seen[name]; dup {
			return nil, invalidSignature(fmt.Sprintf("parameter name %q given twice", name))
		}

		seen[name] = struct{}{}

		p := signature.Param{Name: name, TypeLabel: typeLabel(t.In(i))}
		if t.IsVariadic() && i == t.NumIn()-1 {
			p.Kind = signature.KindVarPositional
			p.TypeLabel = "..." + typeLabel(t.In(i).Elem())
		}

		params[i] = p
	}

	return params, nil
}

func outputsOf(types []reflect.Type) signature.Outputs {
	if len(types) == 0 {
		return signature.Outputs{}
	}

	values := make([]signature.Value, len(types))
	for i, rt := range types {
		values[i] = signature.Value{TypeLabel: typeLabel(rt)}
	}

	return signature.Outputs{Label: signature.TupleLabel(values), Values: values}
}

// isSeq reports whether t is an instantiation of iter.Seq or iter.Seq2.
func isSeq(t reflect.Type) bool {
	return t.Kind() == reflect.Func && t.PkgPath() == "iter" && strings.HasPrefix(t.Name(), "Seq")
}

// seqElems returns the types an iterator passes to its yield function.
func seqElems(t reflect.Type) []reflect.Type {
	yield := t.In(0)

	elems := make([]reflect.Type, yield.NumIn())
	for i := range elems {
		elems[i] = yield.In(i)
	}

	return elems
}

// typeLabel renders a reflected type. Unnamed interface{} is shown as
// "any".
func typeLabel(t reflect.Type) string {
	if t.Kind() == reflect.Interface && t.Name() == "" && t.NumMethod() == 0 {
		return "any"
	}

	return t.String()
}

func invalidSignature(msg string) error {
	return docfields.NewConfigurationError(docfields.CodeInvalidSignature, msg, -1, "")
}
