package emblem

import (
	"fmt"
	"math"
	"time"

	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

// Breakpoint and interaction constants. These are the language-agnostic
// values of the splash layout; everything tunable per deployment lives in
// Config instead.
const (
	// MobileBreakpointWidth is the viewport width below which the mobile
	// layout rules apply. Also the media-query fallback heuristic.
	MobileBreakpointWidth = 700.0

	// CompactScale is the reduced-scale display state for the logo groups.
	CompactScale = 0.5

	// ScaleEpsilon is the tolerance below which a scale change is a no-op.
	ScaleEpsilon = 1e-4

	// settleFrames is the number of rendering-frame waits between preloader
	// steps, letting layout stabilize before the next step measures.
	settleFrames = 2

	// geomEpsilon guards denominators and acos arguments in geometry math.
	geomEpsilon = 1e-9
)

// Duration wraps time.Duration with YAML parsing of strings like "450ms".
type Duration time.Duration

// UnmarshalYAML parses a duration string via time.ParseDuration.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// D returns the wrapped time.Duration.
func (d Duration) D() time.Duration { return time.Duration(d) }

// Pose is a named immutable target layout: one fractional coordinate
// (relative to the viewport box) per group, indexed by GroupID.
type Pose [groupCount]Vec2

// PoseConfig holds the scripted preloader poses.
type PoseConfig struct {
	Packed  Pose `yaml:"packed"`
	Wiggled Pose `yaml:"wiggled"`
	Pose3   Pose `yaml:"pose3"`
	Pose4   Pose `yaml:"pose4"`
}

// AnimConfig holds animation timing.
type AnimConfig struct {
	// StepDuration is the tween duration of each preloader step.
	StepDuration Duration `yaml:"step_duration"`
	// HoldDelay is the fixed pause after each step's settle frames.
	HoldDelay Duration `yaml:"hold_delay"`
	// RevealLead is how far before the final step's tween completes that
	// the full visual reveal is scheduled.
	RevealLead Duration `yaml:"reveal_lead"`
	// ScaleDuration is the default compact-mode scale tween duration.
	ScaleDuration Duration `yaml:"scale_duration"`
	// Easing selects the built-in easing: "quad" or "cubic" (both in-out).
	Easing string `yaml:"easing"`
}

// DragConfig holds the safe-area margins used for drag clamping.
type DragConfig struct {
	DesktopMargin float64 `yaml:"desktop_margin"`
	MobileMargin  float64 `yaml:"mobile_margin"`
}

// AnchorConfig holds the settle-target layout parameters.
type AnchorConfig struct {
	// DesktopMargin insets each corner anchor from the viewport edge.
	DesktopMargin float64 `yaml:"desktop_margin"`
	// MobileMargin insets the horizontal pack from the edges and bottom.
	MobileMargin float64 `yaml:"mobile_margin"`
}

// RingConfig holds the radial action ring sizing and placement parameters.
type RingConfig struct {
	// CenterMin/CenterMax are the center element diameters at the narrow
	// and desktop extremes.
	CenterMin float64 `yaml:"center_min"`
	CenterMax float64 `yaml:"center_max"`
	// SatelliteMin/SatelliteMax are the six satellite diameters at the
	// narrow and desktop extremes.
	SatelliteMin [ringSatellites]float64 `yaml:"satellite_min"`
	SatelliteMax [ringSatellites]float64 `yaml:"satellite_max"`
	// Kiss is the clearance gap between tangent ring elements.
	Kiss float64 `yaml:"kiss"`
	// BaseAngleDeg is the angular position of the first satellite, degrees.
	BaseAngleDeg float64 `yaml:"base_angle_deg"`
	// MinWidth/MaxWidth bound the linear size interpolation: exact minimum
	// sizes at or below MinWidth, exact desktop sizes at or above MaxWidth.
	MinWidth float64 `yaml:"min_width"`
	MaxWidth float64 `yaml:"max_width"`
	// HeightFactor caps the effective width at viewport height times this
	// factor, so short-and-wide viewports don't get oversized rings.
	HeightFactor float64 `yaml:"height_factor"`
}

// BaseAngle returns the base angle in radians.
func (c RingConfig) BaseAngle() float64 {
	return c.BaseAngleDeg * math.Pi / 180
}

// Config aggregates all tunable splash constants. Zero-value fields in a
// loaded config fall back to DefaultConfig values.
type Config struct {
	Poses  PoseConfig   `yaml:"poses"`
	Anim   AnimConfig   `yaml:"anim"`
	Drag   DragConfig   `yaml:"drag"`
	Anchor AnchorConfig `yaml:"anchor"`
	Ring   RingConfig   `yaml:"ring"`
}

// DefaultConfig returns the built-in splash constants.
func DefaultConfig() Config {
	return Config{
		Poses: PoseConfig{
			Packed:  Pose{{0.40, 0.58}, {0.50, 0.46}, {0.60, 0.58}},
			Wiggled: Pose{{0.38, 0.60}, {0.50, 0.44}, {0.62, 0.60}},
			Pose3:   Pose{{0.28, 0.62}, {0.50, 0.34}, {0.72, 0.62}},
			Pose4:   Pose{{0.20, 0.68}, {0.50, 0.28}, {0.80, 0.68}},
		},
		Anim: AnimConfig{
			StepDuration:  Duration(450 * time.Millisecond),
			HoldDelay:     Duration(180 * time.Millisecond),
			RevealLead:    Duration(120 * time.Millisecond),
			ScaleDuration: Duration(300 * time.Millisecond),
			Easing:        "cubic",
		},
		Drag: DragConfig{
			DesktopMargin: 16,
			MobileMargin:  2,
		},
		Anchor: AnchorConfig{
			DesktopMargin: 24,
			MobileMargin:  12,
		},
		Ring: RingConfig{
			CenterMin:    64,
			CenterMax:    96,
			SatelliteMin: [ringSatellites]float64{40, 38, 38, 36, 36, 34},
			SatelliteMax: [ringSatellites]float64{56, 52, 52, 48, 48, 44},
			Kiss:         6,
			BaseAngleDeg: -90,
			MinWidth:     360,
			MaxWidth:     1200,
			HeightFactor: 1.25,
		},
	}
}

// LoadConfig parses a YAML document over the defaults: fields present in the
// document override, absent fields keep their default values.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse splash config: %w", err)
	}
	return cfg, nil
}

// EaseFunc resolves the configured easing name to its gween function.
// Unknown names fall back to the cubic in-out default.
func (c AnimConfig) EaseFunc() ease.TweenFunc {
	switch c.Easing {
	case "quad":
		return ease.InOutQuad
	default:
		return ease.InOutCubic
	}
}
