package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrInvalidOption is wrapped by every validation failure.
var ErrInvalidOption = errors.New("invalid ripple option")

// Options configures a ripple field. Times are milliseconds, lengths are
// logical pixels. Each *Min/*Var pair describes a uniform draw from
// [Min, Min+Var).
type Options struct {
	RMin   float64 `json:"rMin"`
	RVar   float64 `json:"rVar"`
	DurMin float64 `json:"durMin"`
	DurVar float64 `json:"durVar"`
	LwMin  float64 `json:"lwMin"`
	LwVar  float64 `json:"lwVar"`

	BaseDrops  int     `json:"baseDrops"`
	ExtraProb  float64 `json:"extraProb"`
	ExtraCount int     `json:"extraCount"`
	SpawnMin   float64 `json:"spawnMin"`
	SpawnVar   float64 `json:"spawnVar"`
	FirstDelay float64 `json:"firstDelay"`

	Alpha  float64  `json:"alpha"`
	Bright float64  `json:"bright"`
	Color  [3]uint8 `json:"color"`
	Max    int      `json:"max"`

	Fullscreen  bool `json:"fullscreen"`
	Interactive bool `json:"interactive"`
	Sound       bool `json:"sound"`
}

// Defaults returns the fallback value of every option.
func Defaults() Options {
	return Options{
		RMin:       140,
		RVar:       200,
		DurMin:     1400,
		DurVar:     900,
		LwMin:      0.6,
		LwVar:      0.6,
		BaseDrops:  1,
		ExtraProb:  0.5,
		ExtraCount: 1,
		SpawnMin:   240,
		SpawnVar:   700,
		FirstDelay: 300,
		Alpha:      0.5,
		Bright:     0.6,
		Color:      [3]uint8{255, 106, 167}, // soft pink
		Max:        50,
	}
}

// Page returns the options the backdrop starts with: a denser, brighter
// fullscreen field that reacts to clicks.
func Page() Options {
	o := Defaults()
	o.Alpha = 0.8
	o.Bright = 1.0
	o.RMin = 200
	o.RVar = 240
	o.DurMin = 1800
	o.DurVar = 1200
	o.Max = 100
	o.SpawnMin = 140
	o.SpawnVar = 320
	o.BaseDrops = 1
	o.ExtraProb = 0.7
	o.ExtraCount = 1
	o.Fullscreen = true
	o.Interactive = true
	return o
}

// Load overlays the JSON file at path on top of Page. Keys absent from
// the file keep their page value.
func Load(path string) (Options, error) {
	o := Page()
	data, err := os.ReadFile(path)
	if err != nil {
		return o, fmt.Errorf("read options: %w", err)
	}
	if err := json.Unmarshal(data, &o); err != nil {
		return o, fmt.Errorf("parse options %s: %w", path, err)
	}
	if err := o.Validate(); err != nil {
		return o, err
	}
	return o, nil
}

// Validate checks the invariants the ripple engine relies on.
func (o Options) Validate() error {
	switch {
	case o.DurMin <= 0:
		return fmt.Errorf("%w: durMin must be > 0, got %v", ErrInvalidOption, o.DurMin)
	case o.RMin <= 0:
		return fmt.Errorf("%w: rMin must be > 0, got %v", ErrInvalidOption, o.RMin)
	case o.LwMin <= 0:
		return fmt.Errorf("%w: lwMin must be > 0, got %v", ErrInvalidOption, o.LwMin)
	case o.DurVar < 0 || o.RVar < 0 || o.LwVar < 0 || o.SpawnVar < 0:
		return fmt.Errorf("%w: variances must not be negative", ErrInvalidOption)
	case o.SpawnMin <= 0:
		return fmt.Errorf("%w: spawnMin must be > 0, got %v", ErrInvalidOption, o.SpawnMin)
	case o.FirstDelay < 0:
		return fmt.Errorf("%w: firstDelay must not be negative", ErrInvalidOption)
	case o.ExtraProb < 0 || o.ExtraProb > 1:
		return fmt.Errorf("%w: extraProb must be in [0,1], got %v", ErrInvalidOption, o.ExtraProb)
	case o.BaseDrops < 0 || o.ExtraCount < 0:
		return fmt.Errorf("%w: drop counts must not be negative", ErrInvalidOption)
	case o.Alpha < 0 || o.Bright < 0:
		return fmt.Errorf("%w: alpha and bright must not be negative", ErrInvalidOption)
	case o.Max < 1:
		return fmt.Errorf("%w: max must be >= 1, got %d", ErrInvalidOption, o.Max)
	}
	return nil
}
