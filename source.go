package numpydoc

import (
	"fmt"
	"reflect"
	"sync"

	"numpydoc/internal/analyze"
	"numpydoc/signature"
)

type sourceKey struct {
	dir     string
	pkgPath string
}

// sourceCache keeps one loaded Analyzer per package so that documenting
// several functions of a package loads it once.
type sourceCache struct {
	mu        sync.Mutex
	analyzers map[sourceKey]*analyze.Analyzer
}

var sources = &sourceCache{analyzers: make(map[sourceKey]*analyze.Analyzer)}

func (c *sourceCache) load(dir, pkgPath string) (*analyze.Analyzer, error) {
	key := sourceKey{dir: dir, pkgPath: pkgPath}

	c.mu.Lock()
	defer c.mu.Unlock()

	if a, ok := c.analyzers[key]; ok {
		return a, nil
	}

	a := analyze.NewAnalyzerIn(dir)
	if _, err := a.LoadPackages(pkgPath); err != nil {
		return nil, fmt.Errorf("numpydoc: loading %s: %w", pkgPath, err)
	}

	c.analyzers[key] = a

	return a, nil
}

// SourceSignature describes the function or "Type.Method" name declared
// in package pkgPath by type-checking its source. The package is
// resolved relative to dir; an empty dir means the current directory.
//
// Unlike SignatureOf, parameter names come from the declaration, and
// unnamed parameters are called arg0, arg1 and so on. A name the package
// does not declare is a *docfields.ConfigurationError; failing to load
// the package is reported as a wrapped error.
func SourceSignature(dir, pkgPath, name string) (signature.Descriptor, error) {
	a, err := sources.load(dir, pkgPath)
	if err != nil {
		return signature.Descriptor{}, err
	}

	info := a.Index().GetFunc(analyze.FuncID{PkgPath: pkgPath, Name: name})
	if info == nil {
		return signature.Descriptor{}, invalidSignature(fmt.Sprintf("%s declares no function %s", pkgPath, name))
	}

	return info.Descriptor(), nil
}

// sourceSignatureFor is SourceSignature for a function value, checked
// against the value's own arity.
func sourceSignatureFor(fn any, src sourceRef) (signature.Descriptor, error) {
	sig, err := SourceSignature(src.dir, src.pkgPath, src.name)
	if err != nil {
		return signature.Descriptor{}, err
	}

	t := reflect.TypeOf(fn)
	if t == nil || t.Kind() != reflect.Func {
		return signature.Descriptor{}, invalidSignature(fmt.Sprintf("%T is not a function", fn))
	}

	if t.NumIn() != len(sig.Params) {
		return signature.Descriptor{}, invalidSignature(fmt.Sprintf(
			"%s.%s takes %d parameters, %s takes %d", src.pkgPath, src.name, len(sig.Params), t, t.NumIn()))
	}

	return sig, nil
}
