package config

// keyDefaults holds the spec §6 defaults, keyed exactly as the
// runtime configuration table names them. All angle/length values
// here are in reference (1080-canvas) units and degrees; Load scales
// and converts them into a Config.
func keyDefaults() map[string]any {
	return map[string]any{
		"canvas_size":               540.0,
		"hand_radius_max":           180.0,
		"hand_radius_wifi":          100.0,
		"hand_radius_normal":        40.0,
		"distance_merge_slide":      20.0,
		"delta_tangent_merge_slide": 3.0, // degrees
		"tap_on_slide_threshold":    1.0 / 3.0,
		"touch_on_slide_threshold":  8.0,
		"overlay_threshold":         2.0,
		"collide_threshold":         12.0,
		"extra_paddown_delay":       3.0,
		"release_delay":             1.0,
		"wifi_need_c":               false,
	}
}
