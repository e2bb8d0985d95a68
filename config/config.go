package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const (
	StoreBackendFile    = "file"
	StoreBackendLevelDB = "leveldb"
)

type StoreConfig struct {
	Backend  string `mapstructure:"backend"`
	Path     string `mapstructure:"path"`
	LockPath string `mapstructure:"lock_path"`
}

type Config struct {
	WalletsPath  string `mapstructure:"wallets_path"`
	NetworksPath string `mapstructure:"networks_path"`

	Store *StoreConfig `mapstructure:"store"`

	RPCTimeout time.Duration `mapstructure:"rpc_timeout"`
}

// Load reads the application config. An absent file is not an error; the
// defaults describe a fully working single-operator setup in the current
// directory.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("wallets_path", "./wallets.json")
	v.SetDefault("networks_path", "./networks.json")
	v.SetDefault("store.backend", StoreBackendFile)
	v.SetDefault("store.path", "./pending_transaction.json")
	v.SetDefault("rpc_timeout", 30*time.Second)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if conf.Store.Backend != StoreBackendFile && conf.Store.Backend != StoreBackendLevelDB {
		return nil, fmt.Errorf("unknown store backend %q (supported: %s, %s)",
			conf.Store.Backend, StoreBackendFile, StoreBackendLevelDB)
	}
	return &conf, nil
}
