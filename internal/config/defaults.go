package config

import (
	"time"

	"helpdock/internal/tracker"
)

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = ".helpdock.yml"

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		ActivationOffset: tracker.DefaultActivationOffset,
		RowHeight:        20,
		NarrowWidth:      80,
		ScrollFrames:     6,
		ScrollDuration:   120 * time.Millisecond,
		BaseURL:          "https://help.dasalon.com",
		Addr:             ":8090",
		LogLevel:         "info",
	}
}
