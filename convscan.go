package convscan

import (
	"errors"
	"fmt"
)

// Errors returned by engine configuration calls. They are wrapped with
// detail; test with errors.Is.
var (
	ErrInvalidGeometry = errors.New("convscan: invalid geometry")
	ErrInvalidKernel   = errors.New("convscan: invalid kernel")
	ErrUnknownPreset   = errors.New("convscan: unknown preset")
)

// PaddingMode selects the implicit zero border around the input.
type PaddingMode uint8

const (
	PaddingValid PaddingMode = iota // no border; output shrinks by k-1
	PaddingSame                     // k/2 border; output matches input at stride 1
)

// String returns the lowercase mode name ("valid" or "same").
func (m PaddingMode) String() string {
	switch m {
	case PaddingValid:
		return "valid"
	case PaddingSame:
		return "same"
	default:
		return fmt.Sprintf("PaddingMode(%d)", uint8(m))
	}
}

// ParsePadding parses "valid" or "same".
func ParsePadding(s string) (PaddingMode, error) {
	switch s {
	case "valid":
		return PaddingValid, nil
	case "same":
		return PaddingSame, nil
	}
	return 0, fmt.Errorf("convscan: unknown padding mode %q", s)
}

// Normalization selects how a raw luminance response, which may be negative
// or exceed 255, maps to a displayable intensity.
type Normalization uint8

const (
	NormClip      Normalization = iota // round, clamp to [0, 255]
	NormSignedMap                      // remap [-M, M] to [0, 255], M = 255 * sum|w|
	NormAbsClip                        // round(min(|lum|, 255))
)

// NormalizationCount is the number of normalization modes, for cycling.
const NormalizationCount = 3

// String returns the mode name used by ParseNormalization.
func (m Normalization) String() string {
	switch m {
	case NormClip:
		return "clip"
	case NormSignedMap:
		return "signed-map"
	case NormAbsClip:
		return "abs-clip"
	default:
		return fmt.Sprintf("Normalization(%d)", uint8(m))
	}
}

// ParseNormalization parses "clip", "signed-map" or "abs-clip".
func ParseNormalization(s string) (Normalization, error) {
	switch s {
	case "clip":
		return NormClip, nil
	case "signed-map":
		return NormSignedMap, nil
	case "abs-clip":
		return NormAbsClip, nil
	}
	return 0, fmt.Errorf("convscan: unknown normalization %q", s)
}
