package store

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config supplies the storage location and the world flags are scoped
// under when the caller does not name one.
type Config interface {
	BasePath() string
	World() string
}

// LoadConfig reads .codex (yaml implicit) from CODEX_CONFIG_PATH or the
// working directory, with CODEX_* environment overrides.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.codex.db")
	viper.SetDefault("world", "default")
	viper.SetConfigName(".codex")
	viper.SetEnvPrefix("CODEX")
	viper.AutomaticEnv()

	if override := os.Getenv("CODEX_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("error reading config file: %v", err)
			return nil, err
		}
	}

	path := viper.GetString("path")
	if expanded, err := homedir.Expand(path); err == nil {
		path = expanded
	}

	return &fileConfig{Path: path, WorldName: viper.GetString("world")}, nil
}

type fileConfig struct {
	Path      string `json:"path"`
	WorldName string `json:"world"`
}

func (f *fileConfig) BasePath() string { return f.Path }

func (f *fileConfig) World() string { return f.WorldName }
