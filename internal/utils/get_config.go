package utils

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

const (
	DefaultSettingsPath = "./settings.yml"
	DefaultPort         = 8080
	DefaultRateLimit    = 10
	DefaultRateWindow   = 1
	DefaultWorkers      = 2
	DefaultQueueSize    = 256

	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

var (
	ErrMissingPanelDomain = errors.New("pterodactyl.domain is required")
	ErrUnknownDefault     = errors.New("packages.default does not name a package in packages.list")
	ErrUnknownDriver      = errors.New("database.driver must be postgres or memory")
)

type (
	Settings struct {
		Website     WebsiteSettings     `yaml:"website"`
		Pterodactyl PterodactylSettings `yaml:"pterodactyl"`
		API         APISettings         `yaml:"api"`
		Packages    PackageSettings     `yaml:"packages"`
		Coins       CoinSettings        `yaml:"coins"`
		Suspension  SuspensionSettings  `yaml:"suspension"`
		Database    DatabaseSettings    `yaml:"database"`
		Logging     LoggingSettings     `yaml:"logging"`
	}

	WebsiteSettings struct {
		Port      int               `yaml:"port"`
		RateLimit RateLimitSettings `yaml:"ratelimit"`
	}

	// RateLimitSettings caps requests per client IP: Max requests every Window seconds.
	RateLimitSettings struct {
		Disabled bool `yaml:"disabled"`
		Max      int  `yaml:"max"`
		Window   int  `yaml:"window"`
	}

	PterodactylSettings struct {
		Domain string `yaml:"domain"`
		Key    string `yaml:"key"`
	}

	APISettings struct {
		Enabled bool   `yaml:"enabled"`
		Code    string `yaml:"code"`
	}

	// Package is a quota bundle from the catalog.
	Package struct {
		RAM     float64 `yaml:"ram" json:"ram"`
		Disk    float64 `yaml:"disk" json:"disk"`
		CPU     float64 `yaml:"cpu" json:"cpu"`
		Servers float64 `yaml:"servers" json:"servers"`
	}

	PackageSettings struct {
		Default string             `yaml:"default"`
		List    map[string]Package `yaml:"list"`
	}

	CoinSettings struct {
		Enabled bool `yaml:"enabled"`
	}

	SuspensionSettings struct {
		Enabled bool `yaml:"enabled"`
		Workers int  `yaml:"workers"`
		Queue   int  `yaml:"queue"`
	}

	DatabaseSettings struct {
		Driver   string `yaml:"driver"`
		Host     string `yaml:"host"`
		Port     string `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
	}

	LoggingSettings struct {
		File string `yaml:"file"`
	}
)

// SettingsPath returns the settings file location, honouring SETTINGS_PATH.
func SettingsPath() string {
	if p := os.Getenv("SETTINGS_PATH"); p != "" {
		return p
	}
	return DefaultSettingsPath
}

func LoadSettings(path string) (Settings, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("reading settings file: %w", err)
	}
	return ParseSettings(file)
}

func ParseSettings(data []byte) (Settings, error) {
	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("parsing settings file: %w", err)
	}
	if err := settings.normalize(); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

func (s *Settings) normalize() error {
	s.Pterodactyl.Domain = strings.TrimRight(strings.TrimSpace(s.Pterodactyl.Domain), "/")
	if s.Pterodactyl.Domain == "" {
		return ErrMissingPanelDomain
	}

	if s.Packages.List == nil {
		s.Packages.List = map[string]Package{}
	}
	if _, ok := s.Packages.List[s.Packages.Default]; !ok {
		return ErrUnknownDefault
	}

	switch s.Database.Driver {
	case "":
		s.Database.Driver = DriverPostgres
	case DriverPostgres, DriverMemory:
	default:
		return ErrUnknownDriver
	}

	if s.Website.Port <= 0 {
		s.Website.Port = DefaultPort
	}
	if s.Website.RateLimit.Max <= 0 {
		s.Website.RateLimit.Max = DefaultRateLimit
	}
	if s.Website.RateLimit.Window <= 0 {
		s.Website.RateLimit.Window = DefaultRateWindow
	}
	if s.Suspension.Workers <= 0 {
		s.Suspension.Workers = DefaultWorkers
	}
	if s.Suspension.Queue <= 0 {
		s.Suspension.Queue = DefaultQueueSize
	}
	if s.Logging.File == "" {
		s.Logging.File = "./logs/app.log"
	}
	return nil
}

// LookupPackage returns the catalog entry for name.
func (s Settings) LookupPackage(name string) (Package, bool) {
	pkg, ok := s.Packages.List[name]
	return pkg, ok
}
