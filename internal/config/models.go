package config

import "time"

// Config represents the entire user configuration file.
type Config struct {
	Version  int       `yaml:"version"`
	LogLevel string    `yaml:"log_level,omitempty"` // Empty keeps logging silent
	Terminal *Terminal `yaml:"terminal,omitempty"`
	Server   *Server   `yaml:"server,omitempty"`
}

// Terminal holds settings for the terminal widget itself.
type Terminal struct {
	Intro        bool     `yaml:"intro"`                 // Show the introduction log before the prompt
	IntroDelayMS int      `yaml:"intro_delay_ms"`        // How long the introduction stays fully visible
	FadeDelayMS  int      `yaml:"fade_delay_ms"`         // How long the fade-out takes
	IntroLines   []string `yaml:"intro_lines,omitempty"` // Lines of the introduction log
	BaseURL      string   `yaml:"base_url,omitempty"`    // Prepended to page locations in the terminal UI
}

// Server holds settings for `cdterm serve`.
type Server struct {
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	SiteDir   string `yaml:"site_dir"`           // Directory holding the static pages
	Advertise bool   `yaml:"advertise"`          // Register the server via mDNS
	Instance  string `yaml:"instance,omitempty"` // mDNS instance name
}

// Default values
const (
	DefaultIntroDelay = 800 * time.Millisecond
	DefaultFadeDelay  = 400 * time.Millisecond
	DefaultHost       = "0.0.0.0"
	DefaultPort       = 8080
	DefaultSiteDir    = "."
	DefaultInstance   = "cdterm"
)

// DefaultIntroLines is the introduction log shown before the prompt.
var DefaultIntroLines = []string{
	"$ locale --load ja.lang",
	"loading ja.lang ........ ok",
	"switching display language ........ ok",
	"ready.",
}

// New creates a Config with default values.
func New() *Config {
	return &Config{
		Version:  1,
		Terminal: defaultTerminal(),
		Server:   defaultServer(),
	}
}

func defaultTerminal() *Terminal {
	lines := make([]string, len(DefaultIntroLines))
	copy(lines, DefaultIntroLines)
	return &Terminal{
		Intro:        true,
		IntroDelayMS: int(DefaultIntroDelay / time.Millisecond),
		FadeDelayMS:  int(DefaultFadeDelay / time.Millisecond),
		IntroLines:   lines,
	}
}

func defaultServer() *Server {
	return &Server{
		Host:      DefaultHost,
		Port:      DefaultPort,
		SiteDir:   DefaultSiteDir,
		Advertise: true,
		Instance:  DefaultInstance,
	}
}

// IntroDelay returns the intro delay as a duration.
func (t *Terminal) IntroDelay() time.Duration {
	return time.Duration(t.IntroDelayMS) * time.Millisecond
}

// FadeDelay returns the fade delay as a duration.
func (t *Terminal) FadeDelay() time.Duration {
	return time.Duration(t.FadeDelayMS) * time.Millisecond
}

// Addr returns the host:port listen address.
func (s *Server) Addr() string {
	return joinHostPort(s.Host, s.Port)
}
