package config

import (
	"bytes"
	"fmt"
	"math"

	"github.com/spf13/viper"

	"simaimuri/internal/geometry"
)

// Load builds a Config from the spec §6 defaults, an optional YAML
// document and an optional overrides map (applied in that order, each
// layer winning over the defaults beneath it). Either argument may be
// nil to skip that layer.
//
// Grounded on niceyeti-tabular's FromYaml (tabular/reinforcement/learning.go):
// a fresh viper.New() is used instead of viper's package-level
// singleton, for the same reason that file's own comment gives —
// a shared global instance isn't safe for loading independent configs
// (two engines analyzing different charts must not see each other's
// overrides). Any key present in neither layer keeps its default,
// which is how an unrecognized override key is ignored (§7).
func Load(yamlOverrides []byte, overrides map[string]any) (*Config, error) {
	vp := viper.New()
	vp.SetConfigType("yaml")

	for k, v := range keyDefaults() {
		vp.SetDefault(k, v)
	}

	if len(yamlOverrides) > 0 {
		if err := vp.MergeConfig(bytes.NewReader(yamlOverrides)); err != nil {
			return nil, fmt.Errorf("config: parsing yaml overrides: %w", err)
		}
	}
	if len(overrides) > 0 {
		if err := vp.MergeConfigMap(overrides); err != nil {
			return nil, fmt.Errorf("config: merging overrides map: %w", err)
		}
	}

	canvas := vp.GetFloat64("canvas_size")
	if canvas <= 0 {
		return nil, fmt.Errorf("config: canvas_size must be positive, got %v", canvas)
	}
	scale := canvas / geometry.ReferenceCanvas

	tangentDegrees := vp.GetFloat64("delta_tangent_merge_slide")
	chordLength := 2 * math.Sin(tangentDegrees*math.Pi/180/2)

	return &Config{
		CanvasSize:             canvas,
		HandRadiusMax:          vp.GetFloat64("hand_radius_max") * scale,
		HandRadiusWifi:         vp.GetFloat64("hand_radius_wifi") * scale,
		HandRadiusNormal:       vp.GetFloat64("hand_radius_normal") * scale,
		DistanceMergeSlide:     vp.GetFloat64("distance_merge_slide") * scale,
		DeltaTangentMergeSlide: chordLength,
		TapOnSlideThreshold:    geometry.Tick(vp.GetFloat64("tap_on_slide_threshold")),
		TouchOnSlideThreshold:  geometry.Tick(vp.GetFloat64("touch_on_slide_threshold")),
		OverlayThreshold:       geometry.Tick(vp.GetFloat64("overlay_threshold")),
		CollideThreshold:       geometry.Tick(vp.GetFloat64("collide_threshold")),
		ExtraPaddownDelay:      geometry.Tick(vp.GetFloat64("extra_paddown_delay")),
		ReleaseDelay:           geometry.Tick(vp.GetFloat64("release_delay")),
		WifiNeedC:              vp.GetBool("wifi_need_c"),
	}, nil
}

// Default returns the configuration built entirely from spec §6 defaults.
func Default() *Config {
	cfg, err := Load(nil, nil)
	if err != nil {
		// Defaults are constants validated above; this can't happen.
		panic(fmt.Sprintf("config: default load failed: %v", err))
	}
	return cfg
}
