// Package errors provides structured error types for pico.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes context: the input or output file, the binary field
// that failed, the offending value, and the cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseEncode, errors.KindEncodeFailed).
//		Field("entry[2].width").
//		Value(300).
//		Detail("width must be between 1 and 256").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.ZeroDimension("IHDR.width")
//	err := errors.Truncated("chunk.length", 33, 4, 1)
//
// All errors implement the standard error interface and support errors.Is/As.
// A target with an empty Phase matches any error of the same Kind:
//
//	if errors.Is(err, &errors.Error{Kind: errors.KindOutputExists}) { ... }
package errors
