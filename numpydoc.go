package numpydoc

import (
	"fmt"

	"numpydoc/diagnostic"
	"numpydoc/docfields"
	"numpydoc/render"
	"numpydoc/signature"
)

// Documented is a function paired with its rendered documentation.
type Documented[F any] struct {
	fn    F
	doc   string
	sig   signature.Descriptor
	model *docfields.Model
}

// Doc validates fields, describes fn and renders the documentation.
// Every authoring problem is returned as a *docfields.ConfigurationError;
// nothing is rendered lazily, so a Documented value always carries its
// final text.
func Doc[F any](fn F, fields docfields.Fields, opts ...Option) (*Documented[F], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	model, err := docfields.New(fields)
	if err != nil {
		return nil, err
	}

	sig, err := describe(fn, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.strict {
		if diags := Check(model, sig); diags.HasWarnings() {
			return nil, strictError(diags)
		}
	}

	text, err := render.New(cfg.render).Render(model, sig)
	if err != nil {
		return nil, err
	}

	return &Documented[F]{fn: fn, doc: text, sig: sig, model: model}, nil
}

// MustDoc is like Doc but panics on error. Use it to initialise
// package-level variables so that mistakes surface at program start.
func MustDoc[F any](fn F, fields docfields.Fields, opts ...Option) *Documented[F] {
	d, err := Doc(fn, fields, opts...)
	if err != nil {
		panic(fmt.Errorf("numpydoc: documenting %T: %w", fn, err))
	}

	return d
}

func describe(fn any, cfg config) (signature.Descriptor, error) {
	sig := signature.Descriptor{}

	switch {
	case cfg.sig != nil:
		sig = *cfg.sig
	case cfg.source != nil:
		var err error

		sig, err = sourceSignatureFor(fn, *cfg.source)
		if err != nil {
			return signature.Descriptor{}, err
		}
	default:
		var err error

		sig, err = SignatureOf(fn, cfg.names...)
		if err != nil {
			return signature.Descriptor{}, err
		}
	}

	for _, d := range cfg.defaults {
		if _, ok := sig.Param(d.name); !ok {
			return signature.Descriptor{}, invalidSignature(
				fmt.Sprintf("default given for unknown parameter %q", d.name))
		}

		sig = sig.WithDefault(d.name, d.repr)
	}

	return sig, nil
}

// strictError promotes the warnings of a check to errors.
func strictError(diags *diagnostic.Diagnostics) error {
	promoted := make([]diagnostic.Diagnostic, len(diags.Warnings))
	for i, w := range diags.Warnings {
		w.Severity = diagnostic.SeverityError
		promoted[i] = w
	}

	e := &docfields.ConfigurationError{}
	e.Diagnostics.Merge(diagnostic.Diagnostics{Errors: promoted})

	return e
}

// Func returns the documented function, unchanged.
func (d *Documented[F]) Func() F { return d.fn }

// Doc returns the rendered documentation.
func (d *Documented[F]) Doc() string { return d.doc }

// Signature returns the descriptor the documentation was rendered
// against.
func (d *Documented[F]) Signature() signature.Descriptor { return d.sig }

// Model returns the validated documentation fields.
func (d *Documented[F]) Model() *docfields.Model { return d.model }

// String implements fmt.Stringer by returning the documentation.
func (d *Documented[F]) String() string { return d.doc }
