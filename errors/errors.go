package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseDecode   Phase = "decode"   // PNG structure reading
	PhaseEncode   Phase = "encode"   // ICO serialization
	PhaseOptimize Phase = "optimize" // PNG recompression
	PhaseLoad     Phase = "load"     // input collection and reading
	PhaseWrite    Phase = "write"    // output file handling
	PhaseConfig   Phase = "config"   // configuration loading
)

// Kind categorizes the error
type Kind string

const (
	KindSignatureInvalid   Kind = "signature_invalid"
	KindTruncatedData      Kind = "truncated_data"
	KindZeroDimension      Kind = "zero_dimension"
	KindInvalidBitDepth    Kind = "invalid_bit_depth"
	KindInvalidColorLayout Kind = "invalid_color_layout"
	KindTooManyEntries     Kind = "too_many_entries"
	KindEncodeFailed       Kind = "encode_failed"
	KindInputMissing       Kind = "input_missing"
	KindOutputExists       Kind = "output_exists"
	KindNoInputs           Kind = "no_inputs"
	KindInputAnimated      Kind = "input_animated"
	KindIO                 Kind = "io"
	KindOptimizeFailed     Kind = "optimize_failed"
	KindInvalidConfig      Kind = "invalid_config"
)

// Error is the structured error type used throughout pico
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Path   string // file the error relates to, if any
	Field  string // binary field or option name, if any
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Path != "" {
		b.WriteString(" in '")
		b.WriteString(e.Path)
		b.WriteByte('\'')
	}

	if e.Field != "" {
		b.WriteString(" at ")
		b.WriteString(e.Field)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. A target without a Phase
// matches on Kind alone.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Phase != "" && e.Phase != t.Phase {
		return false
	}
	return e.Kind == t.Kind
}

// KindOf returns the Kind of the first *Error in err's chain, or "" if
// there is none.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// WithPath returns err annotated with a file path. A *Error that already
// carries a path is returned unchanged; any other error is wrapped as an
// I/O error in the given phase.
func WithPath(phase Phase, path string, err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if stderrors.As(err, &e) {
		if e.Path != "" {
			return err
		}
		cp := *e
		cp.Path = path
		return &cp
	}
	return &Error{
		Phase: phase,
		Kind:  KindIO,
		Path:  path,
		Cause: err,
	}
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the file path
func (b *Builder) Path(path string) *Builder {
	b.err.Path = path
	return b
}

// Field sets the field name
func (b *Builder) Field(name string) *Builder {
	b.err.Field = name
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// SignatureInvalid creates an error for data that does not start with the
// PNG signature
func SignatureInvalid(got []byte) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindSignatureInvalid,
		Detail: fmt.Sprintf("signature is not a PNG image signature: % x", got),
	}
}

// Truncated creates an error for data that ends before a read completes
func Truncated(field string, offset, need, have int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindTruncatedData,
		Field:  field,
		Detail: fmt.Sprintf("need %d bytes at offset %d, have %d", need, offset, have),
		Value:  offset,
	}
}

// ZeroDimension creates an error for a zero width or height
func ZeroDimension(field string) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindZeroDimension,
		Field:  field,
		Detail: "width or height is zero",
		Value:  0,
	}
}

// InvalidBitDepth creates an error for a bit depth outside {1,2,4,8,16}
func InvalidBitDepth(depth uint8) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindInvalidBitDepth,
		Field:  "IHDR.bit_depth",
		Detail: fmt.Sprintf("bit depth %d is not one of 1, 2, 4, 8, 16", depth),
		Value:  depth,
	}
}

// InvalidColorLayout creates an error for an undefined color type
func InvalidColorLayout(colorType uint8) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindInvalidColorLayout,
		Field:  "IHDR.color_type",
		Detail: fmt.Sprintf("color type %d is not one of 0, 2, 3, 4, 6", colorType),
		Value:  colorType,
	}
}

// TooManyEntries creates an error for a container with more entries than
// the count field holds
func TooManyEntries(count, max int) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindTooManyEntries,
		Field:  "header.count",
		Detail: fmt.Sprintf("%d images exceed the maximum of %d", count, max),
		Value:  count,
	}
}

// Unrepresentable creates an encode failure for a value that does not fit
// its fixed-width field
func Unrepresentable(field string, value any, detail string) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindEncodeFailed,
		Field:  field,
		Detail: fmt.Sprintf("value %v cannot be represented: %s", value, detail),
		Value:  value,
	}
}

// InputMissing creates an error for an input path that does not exist
func InputMissing(path string) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindInputMissing,
		Path:   path,
		Detail: "PNG input file does not exist",
	}
}

// OutputExists creates an error for an output file that would be
// overwritten without permission
func OutputExists(path string) *Error {
	return &Error{
		Phase:  PhaseWrite,
		Kind:   KindOutputExists,
		Path:   path,
		Detail: "ICO output file already exists, try '-force' to overwrite it",
	}
}

// NoInputs creates an error for an empty input set
func NoInputs() *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindNoInputs,
		Detail: "no PNG input file paths were found",
	}
}

// InputAnimated creates an error for an animated PNG input
func InputAnimated(path string) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindInputAnimated,
		Path:   path,
		Detail: "PNG input file is animated",
	}
}

// IO wraps a filesystem failure
func IO(phase Phase, path string, cause error) *Error {
	return &Error{
		Phase: phase,
		Kind:  KindIO,
		Path:  path,
		Cause: cause,
	}
}

// OptimizeFailed wraps a recompression failure
func OptimizeFailed(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseOptimize,
		Kind:   KindOptimizeFailed,
		Detail: detail,
		Cause:  cause,
	}
}

// InvalidConfig creates a configuration error
func InvalidConfig(field string, value any, detail string) *Error {
	return &Error{
		Phase:  PhaseConfig,
		Kind:   KindInvalidConfig,
		Field:  field,
		Detail: detail,
		Value:  value,
	}
}
