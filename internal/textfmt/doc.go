// Package textfmt holds the pure text transforms used by the renderer.
//
// Every function here is independent of the numpydoc section layout:
//   - Dedent / Clean: strip common indentation and trailing whitespace
//   - Indent: prefix non-blank lines
//   - Fill / FillParagraphs: optional word wrapping
//   - Punctuate / OneLine: sentence normalisation helpers
package textfmt
