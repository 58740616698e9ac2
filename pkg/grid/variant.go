package grid

import "fmt"

// Variant selects the tile profile family. Full tiles are the
// standard 6.8mm openGrid profile; lite tiles are the reduced 4mm
// profile for shallow mounting surfaces.
type Variant int

const (
	VariantFull Variant = iota
	VariantLite
)

func (v Variant) String() string {
	switch v {
	case VariantFull:
		return "full"
	case VariantLite:
		return "lite"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ParseVariant converts a user-supplied variant name.
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "full":
		return VariantFull, nil
	case "lite":
		return VariantLite, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
	}
}

// MarshalText implements encoding.TextMarshaler so plans serialize
// the variant by name rather than by ordinal.
func (v Variant) MarshalText() ([]byte, error) {
	switch v {
	case VariantFull, VariantLite:
		return []byte(v.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownVariant, int(v))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Variant) UnmarshalText(text []byte) error {
	parsed, err := ParseVariant(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// ScrewSize holds the three measurements of a mounting screw in mm.
// Values are value-type immutable; the wire format stores each at
// 0.1mm precision, so anything beyond one decimal is not preserved.
type ScrewSize struct {
	Diameter     float64 `json:"diameter"`      // shaft diameter
	HeadDiameter float64 `json:"head_diameter"` // widest head diameter
	HeadInset    float64 `json:"head_inset"`    // head recess depth below the surface
}

// DefaultScrewSize returns the built-in screw sizing for a variant.
// Full tiles default to a 4.2mm shaft; lite tiles are thinner and
// take a slightly smaller bore with a shallower head.
func DefaultScrewSize(v Variant) ScrewSize {
	if v == VariantLite {
		return ScrewSize{Diameter: 4.1, HeadDiameter: 7.2, HeadInset: 1.0}
	}
	return ScrewSize{Diameter: 4.2, HeadDiameter: 8.0, HeadInset: 1.0}
}
