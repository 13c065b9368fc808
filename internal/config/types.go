package config

import "time"

// Config holds every tunable of the help browser and the web server.
type Config struct {
	// ActivationOffset is how early, in layout units, a section becomes
	// active before its top reaches the top of the viewport.
	ActivationOffset int `yaml:"activation_offset" koanf:"activation_offset"`
	// RowHeight is the number of layout units one terminal row stands for.
	RowHeight      int           `yaml:"row_height" koanf:"row_height"`
	NarrowWidth    int           `yaml:"narrow_width" koanf:"narrow_width"`
	ScrollFrames   int           `yaml:"scroll_frames" koanf:"scroll_frames"`
	ScrollDuration time.Duration `yaml:"scroll_duration" koanf:"scroll_duration"`

	ContentDir string `yaml:"content_dir" koanf:"content_dir"`
	BaseURL    string `yaml:"base_url" koanf:"base_url"`
	Addr       string `yaml:"addr" koanf:"addr"`

	LogFile  string `yaml:"log_file" koanf:"log_file"`
	LogLevel string `yaml:"log_level" koanf:"log_level"`
}
