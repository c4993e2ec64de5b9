package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vchlum/hue-lights-sub001/internal/pkg/config"
	"github.com/vchlum/hue-lights-sub001/internal/pkg/hexutil"
	"github.com/vchlum/hue-lights-sub001/internal/pkg/logger"
)

const (
	flagLogLevel = "log-level"
	flagLogType  = "log-type"
	flagLogFile  = "log-file"
)

func addLoggerFlags(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().String(flagLogLevel, config.LogLevelInfo, "Log level (debug, info, warning, error, critical)")
	rootCmd.PersistentFlags().String(flagLogType, config.LogTypeConsole, "Log output (console or file)")
	rootCmd.PersistentFlags().String(flagLogFile, "", "Log file path, required when --log-type=file")
}

// setupLogger initializes the process-wide logger from the persistent flags.
// The first command to run wins; later calls reuse the same instance.
func setupLogger(cmd *cobra.Command) (logger.Logger, error) {
	logLevel, err := cmd.Flags().GetString(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid %s flag: %w", flagLogLevel, err)
	}
	logType, err := cmd.Flags().GetString(flagLogType)
	if err != nil {
		return nil, fmt.Errorf("invalid %s flag: %w", flagLogType, err)
	}
	logFile, err := cmd.Flags().GetString(flagLogFile)
	if err != nil {
		return nil, fmt.Errorf("invalid %s flag: %w", flagLogFile, err)
	}

	settings := config.NewLoggerSettings(logLevel, logType, logFile)
	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// readFileFlag reads the file named by the string flag name.
func readFileFlag(cmd *cobra.Command, name string) ([]byte, error) {
	path, err := cmd.Flags().GetString(name)
	if err != nil {
		return nil, fmt.Errorf("invalid %s flag: %w", name, err)
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, nil
}

// readHexFileFlag reads a hex text file named by the string flag name.
// Surrounding whitespace such as a trailing newline is ignored.
func readHexFileFlag(cmd *cobra.Command, name string) ([]byte, error) {
	data, err := readFileFlag(cmd, name)
	if err != nil {
		return nil, err
	}

	decoded, err := hexutil.FromHex(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return decoded, nil
}

// writeFileFlag writes data with owner-only permissions to the path in flag name.
func writeFileFlag(cmd *cobra.Command, name string, data []byte) (string, error) {
	path, err := cmd.Flags().GetString(name)
	if err != nil {
		return "", fmt.Errorf("invalid %s flag: %w", name, err)
	}

	if err := os.WriteFile(filepath.Clean(path), data, 0600); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}
	return path, nil
}

// markRequired marks every named flag of cmd as required.
func markRequired(cmd *cobra.Command, names ...string) error {
	for _, name := range names {
		if err := cmd.MarkFlagRequired(name); err != nil {
			return fmt.Errorf("failed to mark %s as required: %w", name, err)
		}
	}
	return nil
}
