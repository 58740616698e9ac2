package grid

import "fmt"

// FeatureKind enumerates the features a summit can carry. A summit
// carries at most one feature; the eligibility rules keep the three
// kinds disjoint for any neighbor configuration.
type FeatureKind int

const (
	FeatureNone      FeatureKind = iota // no feature at this summit
	FeatureChamfer                      // 45-degree corner chamfer
	FeatureConnector                    // butterfly connector cutout
	FeatureScrew                        // countersunk screw bore
)

func (k FeatureKind) String() string {
	switch k {
	case FeatureNone:
		return "none"
	case FeatureChamfer:
		return "chamfer"
	case FeatureConnector:
		return "connector"
	case FeatureScrew:
		return "screw"
	default:
		return fmt.Sprintf("FeatureKind(%d)", int(k))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k FeatureKind) MarshalText() ([]byte, error) {
	switch k {
	case FeatureNone, FeatureChamfer, FeatureConnector, FeatureScrew:
		return []byte(k.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFeature, int(k))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *FeatureKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "none":
		*k = FeatureNone
	case "chamfer":
		*k = FeatureChamfer
	case "connector":
		*k = FeatureConnector
	case "screw":
		*k = FeatureScrew
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFeature, string(text))
	}
	return nil
}

// Summit is the feature state of one grid-line intersection. Angle is
// the connector rotation in degrees and is meaningful only when Kind
// is FeatureConnector; it is one of -90, 0, 90 or 180.
type Summit struct {
	Kind  FeatureKind `json:"kind"`
	Angle int         `json:"angle,omitempty"`
}

// Active reports whether any feature is placed at this summit.
func (s Summit) Active() bool {
	return s.Kind != FeatureNone
}
