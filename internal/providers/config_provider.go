package providers

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"drd/internal/structures"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.SetDefault("engine.timezone", "Asia/Kolkata")
	viper.SetDefault("engine.recentWindowMinutes", 120)
	viper.SetDefault("engine.suppressionMinutes", 30)
	viper.SetDefault("engine.defaultLimit", 3)
	viper.SetDefault("catalog.refreshSchedule", "@every 5m")
	viper.SetDefault("catalog.fetchTimeout", 5*time.Second)
	viper.SetDefault("cache.ttl", time.Minute)

	viper.BindEnv("logger.level", "DRD_LOG_LEVEL")
	viper.BindEnv("engine.timezone", "DRD_TIMEZONE")
	viper.BindEnv("catalog.snapshotPath", "DRD_SNAPSHOT_PATH")
	viper.BindEnv("catalog.refreshSchedule", "DRD_REFRESH_SCHEDULE")
	viper.BindEnv("cache.enabled", "DRD_CACHE_ENABLED")
	viper.BindEnv("cache.size", "DRD_CACHE_SIZE")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "DailyResultDaemon"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
