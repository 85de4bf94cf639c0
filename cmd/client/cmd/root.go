// cmd/client/cmd/root.go
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slog"

	"markskeeper/cmd/client/cmd/auth"
	"markskeeper/cmd/client/cmd/marks"
	"markskeeper/cmd/client/cmd/types"
	"markskeeper/internal/app/client"
	"markskeeper/internal/app/client/config"
	"markskeeper/internal/utils/logger"
)

var (
	cfgFile       string
	storageDriver string
	dataPath      string

	app     *client.App
	log     *slog.Logger
	logFile *os.File
)

var rootCmd = &cobra.Command{
	Use:   "markskeeper",
	Short: "Markskeeper - журнал оценок студентов",
	Long: `Markskeeper — приложение для учета оценок студентов по пяти предметам:
Chemistry, Maths, Physics, Computing и Electronics.

Работа с журналом доступна только после входа. Данные сохраняются
локально и восстанавливаются при следующем запуске.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	// Загружаем конфигурацию
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	// Переопределяем настройки из флагов командной строки
	if storageDriver != "" {
		cfg.StorageDriver = storageDriver
	}
	if dataPath != "" {
		cfg.DataPath = dataPath
	}

	log, err = newLogger(cmd, cfg)
	if err != nil {
		return err
	}

	app, err = client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("ошибка инициализации приложения: %w", err)
	}

	cmd.SetContext(context.WithValue(cmd.Context(), types.ClientAppKey, app))
	return nil
}

// newLogger пишет в stderr, а для интерактивного режима - в файл, чтобы не портить экран
func newLogger(cmd *cobra.Command, cfg *config.Config) (*slog.Logger, error) {
	var w io.Writer = os.Stderr
	if cmd.Name() == tuiCmd.Name() {
		f, err := os.OpenFile(cfg.LogPath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return nil, fmt.Errorf("ошибка открытия файла лога: %w", err)
		}
		logFile = f
		w = f
	}

	return logger.NewWithWriter(cfg.Env, w), nil
}

// teardownApp выполняется после любой команды, в том числе завершившейся ошибкой
func teardownApp() {
	if app != nil {
		if err := app.Close(); err != nil && log != nil {
			log.Error("ошибка закрытия хранилища", "error", err)
		}
		app = nil
	}
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Ищем конфиг в стандартных местах
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}

		viper.AddConfigPath(filepath.Join(home, ".markskeeper"))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		// Конфиг не найден, используем значения по умолчанию
	}

	return config.Load()
}

func init() {
	cobra.OnFinalize(teardownApp)

	// Глобальные флаги
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "конфигурационный файл")
	rootCmd.PersistentFlags().StringVar(&storageDriver, "storage", "", "хранилище: sqlite или memory")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "путь к файлу данных sqlite")

	rootCmd.AddCommand(auth.AuthCmd)
	rootCmd.AddCommand(marks.MarksCmd)
	rootCmd.AddCommand(tuiCmd)
}
