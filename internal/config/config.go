// Package config handles client configuration loading and management.
package config

// Config holds all client settings.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Graphics GraphicsConfig `yaml:"graphics"`
	Controls ControlsConfig `yaml:"controls"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig holds backend connection settings.
type ServerConfig struct {
	// URL is the websocket scheme and host, without the session path.
	URL string `yaml:"url"`
	// SessionID pins the session; empty means a random id per run.
	SessionID string `yaml:"session_id"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	FPSLimit   int    `yaml:"fps_limit"`
	Title      string `yaml:"title"`
}

// ControlsConfig holds camera input settings.
type ControlsConfig struct {
	MouseSensitivity float32 `yaml:"mouse_sensitivity"`
	MoveSpeed        float32 `yaml:"move_speed"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			URL: "ws://localhost:8000",
		},
		Graphics: GraphicsConfig{
			Width:    1280,
			Height:   720,
			FPSLimit: 60,
			Title:    "Dreamscape",
		},
		Controls: ControlsConfig{
			MouseSensitivity: 0.003,
			MoveSpeed:        6,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "logs/dreamscape.log",
		},
	}
}
