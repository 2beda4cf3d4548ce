package structures

import "time"

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type CatalogConfig struct {
	SnapshotPath    string        `yaml:"snapshotPath" validate:"required|unixPath"`
	RefreshSchedule string        `yaml:"refreshSchedule" validate:"required"`
	FetchTimeout    time.Duration `yaml:"fetchTimeout" validate:"required|min:1"`
}

type EngineConfig struct {
	Timezone            string `yaml:"timezone" validate:"required"`
	RecentWindowMinutes int    `yaml:"recentWindowMinutes" validate:"required|uint|min:1"`
	SuppressionMinutes  int    `yaml:"suppressionMinutes" validate:"required|uint|min:1"`
	DefaultLimit        int    `yaml:"defaultLimit" validate:"required|uint|min:1|max:10"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Size    int           `yaml:"size"`
	TTL     time.Duration `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName   string
	Debug     bool
	Path      string
	Engine    EngineConfig  `yaml:"engine"`
	Catalog   CatalogConfig `yaml:"catalog"`
	WebServer Server        `yaml:"webServer"`
	Logger    LoggerConfig  `yaml:"logger"`
	Cache     CacheConfig   `yaml:"cache"`
	Metrics   MetricsConfig `yaml:"metrics"`
}
