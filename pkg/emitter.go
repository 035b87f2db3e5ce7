package tinylang

import (
	"fmt"
	"os"
	"strings"
)

// Emitter collects generated assembly into four ordered text regions: the
// header (directives and the _start label), the code compiled from top-level
// statements, the bodies of user-defined functions, and the .data section.
// Regions are append-only; their relative order is fixed at flush time by
// [Emitter.Assembly].
type Emitter struct {
	path string

	header    strings.Builder
	code      strings.Builder
	functions strings.Builder
	data      strings.Builder
}

// NewEmitter creates an emitter that will flush to the file at path. An empty
// path selects the default output file, out.s.
func NewEmitter(path string) *Emitter {
	if path == "" {
		path = DefaultOutputPath
	}

	return &Emitter{path: path}
}

// DefaultOutputPath is where the assembly lands when no output file is given.
const DefaultOutputPath = "out.s"

// Emit appends raw text to the code region.
func (e *Emitter) Emit(s string) {
	e.code.WriteString(s)
}

// EmitLine appends a line to the code region.
func (e *Emitter) EmitLine(s string) {
	e.code.WriteString(s + "\n")
}

// HeaderLine appends a line to the header region.
func (e *Emitter) HeaderLine(s string) {
	e.header.WriteString(s + "\n")
}

// FunctionLine appends a line to the functions region.
func (e *Emitter) FunctionLine(s string) {
	e.functions.WriteString(s + "\n")
}

// DataLine appends a line to the data region.
func (e *Emitter) DataLine(s string) {
	e.data.WriteString(s + "\n")
}

// Assembly concatenates the four regions into the final output text:
// header, code, functions, then the .data section.
func (e *Emitter) Assembly() string {
	return e.header.String() + e.code.String() + e.functions.String() + "\n\t.data\n" + e.data.String()
}

// Path returns the configured output path.
func (e *Emitter) Path() string {
	return e.path
}

// Header returns the header region accumulated so far.
func (e *Emitter) Header() string {
	return e.header.String()
}

// Code returns the code region accumulated so far.
func (e *Emitter) Code() string {
	return e.code.String()
}

// Functions returns the functions region accumulated so far.
func (e *Emitter) Functions() string {
	return e.functions.String()
}

// Data returns the data region accumulated so far.
func (e *Emitter) Data() string {
	return e.data.String()
}

// WriteFile commits the concatenated assembly to the configured path.
func (e *Emitter) WriteFile() error {
	if err := os.WriteFile(e.path, []byte(e.Assembly()), 0644); err != nil {
		return &Error{
			Kind:    ErrorIO,
			Message: fmt.Sprintf("cannot open file %s: %v", e.path, err),
		}
	}

	return nil
}
