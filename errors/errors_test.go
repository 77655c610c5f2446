package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseEncode,
				Kind:   KindEncodeFailed,
				Path:   "icons/big.png",
				Field:  "entry[0].width",
				Detail: "width must be between 1 and 256",
			},
			contains: []string{"[encode]", "encode_failed", "'icons/big.png'", "entry[0].width", "between 1 and 256"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseDecode,
				Kind:  KindTruncatedData,
			},
			contains: []string{"[decode]", "truncated_data"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseOptimize,
				Kind:   KindOptimizeFailed,
				Detail: "inflate image data",
				Cause:  errors.New("unexpected EOF"),
			},
			contains: []string{"[optimize]", "optimize_failed", "inflate image data", "caused by", "unexpected EOF"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseLoad,
		Kind:  KindIO,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is did not find cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseDecode,
		Kind:  KindZeroDimension,
		Field: "IHDR.width",
	}

	if !err.Is(&Error{Phase: PhaseDecode, Kind: KindZeroDimension}) {
		t.Error("Is should match same phase and kind")
	}
	if err.Is(&Error{Phase: PhaseEncode, Kind: KindZeroDimension}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseDecode, Kind: KindTruncatedData}) {
		t.Error("Is should not match different kind")
	}
	if !err.Is(&Error{Kind: KindZeroDimension}) {
		t.Error("Is should match kind alone when target phase is empty")
	}
	if err.Is(errors.New("plain")) {
		t.Error("Is should not match a foreign error type")
	}

	wrapped := fmt.Errorf("load: %w", err)
	if !errors.Is(wrapped, &Error{Kind: KindZeroDimension}) {
		t.Error("errors.Is should match through wrapping")
	}
}

func TestKindOf(t *testing.T) {
	if got := KindOf(fmt.Errorf("x: %w", NoInputs())); got != KindNoInputs {
		t.Errorf("KindOf = %q, want %q", got, KindNoInputs)
	}
	if got := KindOf(errors.New("plain")); got != "" {
		t.Errorf("KindOf(plain) = %q, want empty", got)
	}
	if got := KindOf(nil); got != "" {
		t.Errorf("KindOf(nil) = %q, want empty", got)
	}
}

func TestWithPath(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		if WithPath(PhaseLoad, "a.png", nil) != nil {
			t.Error("WithPath(nil) should be nil")
		}
	})

	t.Run("structured error gains path", func(t *testing.T) {
		orig := ZeroDimension("IHDR.height")
		err := WithPath(PhaseLoad, "a.png", orig)
		var e *Error
		if !errors.As(err, &e) {
			t.Fatalf("expected *Error, got %T", err)
		}
		if e.Path != "a.png" {
			t.Errorf("Path = %q, want a.png", e.Path)
		}
		if e.Phase != PhaseDecode || e.Kind != KindZeroDimension {
			t.Errorf("phase/kind changed: %s/%s", e.Phase, e.Kind)
		}
		if orig.Path != "" {
			t.Error("original error was mutated")
		}
	})

	t.Run("existing path kept", func(t *testing.T) {
		orig := InputMissing("first.png")
		if err := WithPath(PhaseLoad, "second.png", orig); err != orig {
			t.Error("error with a path should be returned unchanged")
		}
	})

	t.Run("foreign error becomes io", func(t *testing.T) {
		err := WithPath(PhaseLoad, "a.png", fs.ErrPermission)
		if KindOf(err) != KindIO {
			t.Errorf("KindOf = %q, want io", KindOf(err))
		}
		if !errors.Is(err, fs.ErrPermission) {
			t.Error("cause should be preserved")
		}
	})
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseEncode, KindEncodeFailed).
		Path("a.png").
		Field("entry[1].palette").
		Value(300).
		Cause(cause).
		Detail("expected %d..%d, got %d", 1, 255, 300).
		Build()

	if err.Phase != PhaseEncode {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseEncode)
	}
	if err.Kind != KindEncodeFailed {
		t.Errorf("Kind = %v, want %v", err.Kind, KindEncodeFailed)
	}
	if err.Path != "a.png" {
		t.Errorf("Path = %v, want a.png", err.Path)
	}
	if err.Field != "entry[1].palette" {
		t.Errorf("Field = %v, want entry[1].palette", err.Field)
	}
	if err.Value != 300 {
		t.Errorf("Value = %v, want 300", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "expected 1..255, got 300" {
		t.Errorf("Detail = %v, want 'expected 1..255, got 300'", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	tests := []struct {
		name  string
		err   *Error
		phase Phase
		kind  Kind
	}{
		{"SignatureInvalid", SignatureInvalid([]byte("GIF89a..")), PhaseDecode, KindSignatureInvalid},
		{"Truncated", Truncated("chunk.type", 12, 4, 2), PhaseDecode, KindTruncatedData},
		{"ZeroDimension", ZeroDimension("IHDR.width"), PhaseDecode, KindZeroDimension},
		{"InvalidBitDepth", InvalidBitDepth(3), PhaseDecode, KindInvalidBitDepth},
		{"InvalidColorLayout", InvalidColorLayout(5), PhaseDecode, KindInvalidColorLayout},
		{"TooManyEntries", TooManyEntries(65536, 65535), PhaseEncode, KindTooManyEntries},
		{"Unrepresentable", Unrepresentable("entry[0].width", 300, "too wide"), PhaseEncode, KindEncodeFailed},
		{"InputMissing", InputMissing("a.png"), PhaseLoad, KindInputMissing},
		{"OutputExists", OutputExists("icon.ico"), PhaseWrite, KindOutputExists},
		{"NoInputs", NoInputs(), PhaseLoad, KindNoInputs},
		{"InputAnimated", InputAnimated("a.png"), PhaseLoad, KindInputAnimated},
		{"IO", IO(PhaseWrite, "icon.ico", fs.ErrPermission), PhaseWrite, KindIO},
		{"OptimizeFailed", OptimizeFailed("deflate", nil), PhaseOptimize, KindOptimizeFailed},
		{"InvalidConfig", InvalidConfig("level", "max", "unknown level"), PhaseConfig, KindInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Phase != tt.phase {
				t.Errorf("Phase = %v, want %v", tt.err.Phase, tt.phase)
			}
			if tt.err.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tt.err.Kind, tt.kind)
			}
			if tt.err.Error() == "" {
				t.Error("empty message")
			}
		})
	}

	t.Run("Truncated value and detail", func(t *testing.T) {
		err := Truncated("chunk.length", 33, 4, 1)
		if err.Value != 33 {
			t.Errorf("Value = %v, want 33", err.Value)
		}
		if !strings.Contains(err.Detail, "need 4") || !strings.Contains(err.Detail, "have 1") {
			t.Errorf("Detail = %q", err.Detail)
		}
	})

	t.Run("InvalidBitDepth value", func(t *testing.T) {
		if v, ok := InvalidBitDepth(3).Value.(uint8); !ok || v != 3 {
			t.Errorf("Value = %v, want uint8(3)", InvalidBitDepth(3).Value)
		}
	})
}
