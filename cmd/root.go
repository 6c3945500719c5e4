package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/KostasZigo/gogit-odb/internal/constants"
	"github.com/klauspost/compress/zlib"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// rootCmd defines the base command for the gogit CLI.
// All subcommands (init, hash-object, cat-file, etc.) register under this root.
// Uses cobra for command parsing, flag handling, and help generation.
var rootCmd = &cobra.Command{
	Use:   "gogit",
	Short: "A simplified Git implementation in GO",
	Long: `GoGit is a simplified Git Implementation developed in GO that offers the main capabilites
	and features expected from a Git object database like init, hash-object, cat-file and ls-tree.`,
	PersistentPreRunE: setupLogger,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String(constants.RepoConfigKey, "", "repository root (default: nearest parent directory containing .gogit)")
	rootCmd.PersistentFlags().String(constants.LogLevelConfigKey, zapcore.WarnLevel.String(), "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Int(constants.CompressionLevelConfigKey, zlib.DefaultCompression, "zlib level for written objects (-2 to 9, -1 is the library default)")

	for _, key := range []string{constants.RepoConfigKey, constants.LogLevelConfigKey, constants.CompressionLevelConfigKey} {
		_ = viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(key))
	}
}

// initConfig lets GOGIT_<KEY> environment variables override unset flags.
func initConfig() {
	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// setupLogger installs the global logger used by all packages. Logs go to stderr.
func setupLogger(_ *cobra.Command, _ []string) error {
	level, err := zapcore.ParseLevel(viper.GetString(constants.LogLevelConfigKey))
	if err != nil {
		return fmt.Errorf("invalid %s: %w", constants.LogLevelConfigKey, err)
	}

	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.OutputPaths = []string{"stderr"}
	config.DisableStacktrace = true

	logger, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}

	zap.ReplaceGlobals(logger)
	return nil
}

// Execute runs the root command and handles exit codes.
// Called from main.go to start CLI execution.
func Execute() {
	err := rootCmd.Execute()
	_ = zap.L().Sync()
	if err != nil {
		os.Exit(1)
	}
}
