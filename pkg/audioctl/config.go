package audioctl

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/stalexteam/audioctl/pkg/audioctl/util"
)

// CanonicalConfig provides access to the tool's configuration file. Every
// key has a default, so a missing file is not an error.
type CanonicalConfig struct {
	OutputFormat     Format
	SyncSystemSounds bool
	Notifications    bool

	logger *zap.SugaredLogger
	viper  *viper.Viper
}

const (
	configName = "config"
	configType = "yaml"
	configDir  = "audioctl"

	configKeyOutputFormat     = "output_format"
	configKeySyncSystemSounds = "sync_system_sounds"
	configKeyNotifications    = "notifications"

	defaultOutputFormat = "human"
)

// NewConfig creates a config instance and sets up its viper backing.
func NewConfig(logger *zap.SugaredLogger) *CanonicalConfig {
	logger = logger.Named("config")

	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(filepath.Join(xdg.ConfigHome, configDir))
	v.AddConfigPath(".")

	v.SetDefault(configKeyOutputFormat, defaultOutputFormat)
	v.SetDefault(configKeySyncSystemSounds, true)
	v.SetDefault(configKeyNotifications, false)

	cc := &CanonicalConfig{
		logger: logger,
		viper:  v,
	}

	logger.Debug("Created config instance")

	return cc
}

// Load reads the config file if one exists and populates the exported
// fields, falling back to defaults otherwise.
func (cc *CanonicalConfig) Load() error {
	path := filepath.Join(xdg.ConfigHome, configDir, configName+"."+configType)

	if !util.FileExists(path) && !util.FileExists(configName+"."+configType) {
		cc.logger.Debugw("No config file found, using defaults", "path", path)
	} else if err := cc.viper.ReadInConfig(); err != nil {
		cc.logger.Warnw("Failed to read config file", "error", err)
		return fmt.Errorf("read config: %w", err)
	}

	format, ok := ParseFormat(cc.viper.GetString(configKeyOutputFormat))
	if !ok {
		cc.logger.Warnw("Unknown output format in config, using human",
			"value", cc.viper.GetString(configKeyOutputFormat))
	}

	cc.OutputFormat = format
	cc.SyncSystemSounds = cc.viper.GetBool(configKeySyncSystemSounds)
	cc.Notifications = cc.viper.GetBool(configKeyNotifications)

	cc.logger.Debugw("Config values",
		"outputFormat", cc.OutputFormat,
		"syncSystemSounds", cc.SyncSystemSounds,
		"notifications", cc.Notifications,
	)

	return nil
}
