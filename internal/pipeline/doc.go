// Package pipeline holds the string-level stages around parsing and
// rendering:
//   - Markdown preprocessing (BOM removal, line ending normalization)
//   - CSS injection of user-supplied rules into the rendered document
//
// Parsing and rendering live in the root md2docx package. Conversion to
// .docx is handled by the host application through internal/host.
package pipeline
