package numpydoc

import (
	"numpydoc/render"
	"numpydoc/signature"
)

type config struct {
	names    []string
	sig      *signature.Descriptor
	source   *sourceRef
	defaults []paramDefault
	render   render.Config
	strict   bool
}

type sourceRef struct {
	dir     string
	pkgPath string
	name    string
}

type paramDefault struct {
	name string
	repr string
}

func defaultConfig() config {
	return config{render: render.DefaultConfig()}
}

// Option configures Doc.
type Option func(*config)

// WithNames names the function's parameters in declaration order. Without
// it the descriptor carries no parameters and every documented parameter
// renders without type information.
func WithNames(names ...string) Option {
	return func(c *config) {
		c.names = append([]string(nil), names...)
	}
}

// WithSignature supplies the descriptor directly instead of reflecting on
// the function. WithNames and WithSource are ignored when it is set.
func WithSignature(sig signature.Descriptor) Option {
	return func(c *config) {
		c.sig = &sig
	}
}

// WithSource describes the function from its declaration, name ("Func"
// or "Type.Method") in package pkgPath, instead of by reflection. The
// declared parameter names are used, so WithNames is not needed. The
// package is loaded from source when Doc runs, which needs the Go
// toolchain; it is loaded once per process.
func WithSource(pkgPath, name string) Option {
	return func(c *config) {
		c.source = &sourceRef{pkgPath: pkgPath, name: name}
	}
}

// WithSourceDir is WithSource with packages resolved relative to dir.
func WithSourceDir(dir, pkgPath, name string) Option {
	return func(c *config) {
		c.source = &sourceRef{dir: dir, pkgPath: pkgPath, name: name}
	}
}

// WithDefault declares that the named parameter has a default, shown as
// repr in the parameter header. An empty repr marks the parameter
// optional without showing a value.
func WithDefault(name, repr string) Option {
	return func(c *config) {
		c.defaults = append(c.defaults, paramDefault{name: name, repr: repr})
	}
}

// WithRenderConfig sets the renderer options, such as the wrap width.
func WithRenderConfig(cfg render.Config) Option {
	return func(c *config) {
		c.render = cfg
	}
}

// WithStrict makes Doc fail when Check finds the documentation out of
// step with the signature.
func WithStrict() Option {
	return func(c *config) {
		c.strict = true
	}
}
