package topcam

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gocv.io/x/gocv"
	"gopkg.in/yaml.v3"
)

// HSV is a color in OpenCV's HSV space, H in [0,180] and S/V in [0,255]
type HSV struct {
	H float64 `yaml:"h" validate:"gte=0,lte=180"`
	S float64 `yaml:"s" validate:"gte=0,lte=255"`
	V float64 `yaml:"v" validate:"gte=0,lte=255"`
}

// ColorClass is the HSV threshold range isolating one class of object, eg:
// the balls or one of the robot markers
type ColorClass struct {
	Min HSV `yaml:"min"`
	Max HSV `yaml:"max"`
}

// Scalars returns the range bounds as gocv scalars for InRange masking
func (c ColorClass) Scalars() (min, max gocv.Scalar) {
	return gocv.NewScalar(c.Min.H, c.Min.S, c.Min.V, 0),
		gocv.NewScalar(c.Max.H, c.Max.S, c.Max.V, 0)
}

// TrackerConfig holds the tunables of the ball tracker pipeline
type TrackerConfig struct {
	// MinRadius suppresses contours whose minimal enclosing circle is
	// smaller than this many pixels
	MinRadius float64 `yaml:"minRadius" validate:"gte=0"`
	// MaxMissedFrames is the number of consecutive frames a track may go
	// unmatched before it is evicted.  Zero means tracks are never evicted.
	MaxMissedFrames int `yaml:"maxMissedFrames" validate:"gte=0"`
}

// Config holds the color classes and tracker tunables of the perception core
type Config struct {
	// Balls is the color range of the balls on the terrain
	Balls ColorClass `yaml:"balls"`
	// FrontMarker is the color range of the robot's front marker
	FrontMarker ColorClass `yaml:"frontMarker"`
	// RearMarker is the color range of the robot's rear marker, its
	// detection is the robot's reference position
	RearMarker ColorClass `yaml:"rearMarker"`
	// Tracker is the ball tracker tuning
	Tracker TrackerConfig `yaml:"tracker"`
}

// DefaultConfig returns the color ranges and tuning calibrated for the
// reference terrain setup, yellow balls with a black front and blue rear
// marker on the robot
func DefaultConfig() Config {
	return Config{
		Balls: ColorClass{
			Min: HSV{H: 16, S: 65, V: 90},
			Max: HSV{H: 45, S: 255, V: 156},
		},
		FrontMarker: ColorClass{
			Min: HSV{H: 0, S: 0, V: 0},
			Max: HSV{H: 180, S: 255, V: 40},
		},
		RearMarker: ColorClass{
			Min: HSV{H: 116, S: 200, V: 88},
			Max: HSV{H: 137, S: 255, V: 175},
		},
		Tracker: TrackerConfig{
			MinRadius:       2.5,
			MaxMissedFrames: 0,
		},
	}
}

// LoadConfig reads a YAML config file and validates it
func LoadConfig(path string) (Config, error) {

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)

	if err != nil {
		return cfg, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks the config values are within range
func (c Config) Validate() error {

	v := validator.New()

	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}
