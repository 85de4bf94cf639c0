package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	StorageSQLite = "sqlite"
	StorageMemory = "memory"
)

const (
	defaultLogLevel      = "info"
	defaultEnv           = EnvLocal
	defaultConfigDir     = ".markskeeper"
	defaultDataFile      = "data.db"
	defaultStorageDriver = StorageSQLite
	defaultHTTPAddress   = "localhost:8080"
)

type Config struct {
	Env           string `mapstructure:"app_env"`
	LogLevel      string `mapstructure:"log_level"`
	ConfigDir     string `mapstructure:"config_dir"`
	DataPath      string `mapstructure:"data_path"`
	StorageDriver string `mapstructure:"storage_driver"`
	HTTPAddress   string `mapstructure:"http_address"`
}

// MustLoad загружает конфигурацию и паникует при ошибке
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("Ошибка конфигурации: %v", err))
	}
	return cfg
}

// Load читает .env, переменные окружения и конфигурационный файл (если viper его нашел)
func Load() (*Config, error) {
	// Определяем путь к .env файлу (относительно места запуска)
	envPath := ".env"
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		envPath = "../.env"
	}

	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			fmt.Printf("Ошибка загрузки .env файла: %v\n", err)
		}
	}

	viper.AutomaticEnv()

	// Устанавливаем значения по умолчанию
	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)
	viper.SetDefault("CONFIG_DIR", defaultConfigDir)
	viper.SetDefault("STORAGE_DRIVER", defaultStorageDriver)
	viper.SetDefault("HTTP_ADDRESS", defaultHTTPAddress)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	configDir := viper.GetString("CONFIG_DIR")
	if configDir == defaultConfigDir {
		configDir = filepath.Join(homeDir, configDir)
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, fmt.Errorf("создание директории конфигурации: %w", err)
	}

	dataPath := viper.GetString("DATA_PATH")
	if dataPath == "" {
		dataPath = filepath.Join(configDir, defaultDataFile)
	}

	config := &Config{
		Env:           viper.GetString("APP_ENV"),
		LogLevel:      viper.GetString("LOG_LEVEL"),
		ConfigDir:     configDir,
		DataPath:      dataPath,
		StorageDriver: viper.GetString("STORAGE_DRIVER"),
		HTTPAddress:   viper.GetString("HTTP_ADDRESS"),
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	switch c.StorageDriver {
	case StorageSQLite:
		if c.DataPath == "" {
			return fmt.Errorf("data_path не может быть пустым")
		}
	case StorageMemory:
	default:
		return fmt.Errorf("неизвестный storage_driver: %q", c.StorageDriver)
	}

	if c.HTTPAddress == "" {
		return fmt.Errorf("http_address не может быть пустым")
	}
	return nil
}

// LogPath - файл лога для интерактивного режима
func (c *Config) LogPath() string {
	return filepath.Join(c.ConfigDir, "markskeeper.log")
}

// IsProd проверяет, prod ли окружение
func (c *Config) IsProd() bool {
	return c.Env == EnvProd
}

// IsLocal проверяет, local ли окружение
func (c *Config) IsLocal() bool {
	return c.Env == EnvLocal || c.Env == ""
}
