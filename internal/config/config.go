package config

// Settings holds the engine tunables. All fields have working defaults from
// Default(); zero values coming from a partial YAML document are filled in
// by Normalize.
type Settings struct {
	FPS     int `yaml:"fps"`
	Workers int `yaml:"workers"` // 0 = size from the machine

	MotionBlurEnabled   bool    `yaml:"motion_blur"`
	MotionBlurIntensity float64 `yaml:"motion_blur_intensity"` // 0-100; 0 is a valid "no blur"
	MotionBlurThreshold float64 `yaml:"motion_blur_threshold"` // 0-100

	RefocusMaxBlur float64 `yaml:"refocus_max_blur"` // defocus peak, shader units

	// BackstepToleranceMs is the largest backward time jump that is treated
	// as pause/resume rounding rather than a seek. A UX judgment call, so it
	// is a setting and not a constant.
	BackstepToleranceMs float64 `yaml:"backstep_tolerance_ms"`

	SpringFrequency float64 `yaml:"spring_frequency"` // interactive smoothing
	SpringDamping   float64 `yaml:"spring_damping"`

	CursorCacheSize int `yaml:"cursor_cache_size"`
}

// Default returns the settings used when a project file specifies none.
func Default() Settings {
	return Settings{
		FPS:                 30,
		MotionBlurEnabled:   true,
		MotionBlurIntensity: 50,
		MotionBlurThreshold: 10,
		RefocusMaxBlur:      8,
		BackstepToleranceMs: 34, // one frame at 30fps
		SpringFrequency:     6.0,
		SpringDamping:       1.0,
		CursorCacheSize:     512,
	}
}

// Normalize fills zero fields with defaults and clamps ranges.
func (s *Settings) Normalize() {
	d := Default()
	if s.FPS <= 0 {
		s.FPS = d.FPS
	}
	// Intensity is only clamped, never defaulted: 0 is the low end of the
	// valid range, not "unset". Fresh projects get 50 from Default().
	if s.MotionBlurIntensity < 0 {
		s.MotionBlurIntensity = 0
	}
	if s.MotionBlurIntensity > 100 {
		s.MotionBlurIntensity = 100
	}
	if s.MotionBlurThreshold < 0 {
		s.MotionBlurThreshold = 0
	}
	if s.MotionBlurThreshold > 100 {
		s.MotionBlurThreshold = 100
	}
	if s.RefocusMaxBlur <= 0 {
		s.RefocusMaxBlur = d.RefocusMaxBlur
	}
	if s.BackstepToleranceMs <= 0 {
		s.BackstepToleranceMs = d.BackstepToleranceMs
	}
	if s.SpringFrequency <= 0 {
		s.SpringFrequency = d.SpringFrequency
	}
	if s.SpringDamping <= 0 {
		s.SpringDamping = d.SpringDamping
	}
	if s.CursorCacheSize <= 0 {
		s.CursorCacheSize = d.CursorCacheSize
	}
}
