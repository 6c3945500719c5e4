package cmd

import (
	"fmt"

	"github.com/KostasZigo/gogit-odb/internal/constants"
	"github.com/KostasZigo/gogit-odb/internal/objects"
	"github.com/KostasZigo/gogit-odb/internal/repository"
	"github.com/klauspost/compress/zlib"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// exactArgs validates command receives exactly n positional arguments.
// enables usage printing in case of error
func exactArgs(n int, argName string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			cmd.SilenceUsage = false
			return fmt.Errorf("%s command requires exactly %d argument (%s), received %d", cmd.Name(), n, argName, len(args))
		}
		return nil
	}
}

// rangeArgs validates command receives between min and max positional arguments.
func rangeArgs(minArgs, maxArgs int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < minArgs || len(args) > maxArgs {
			cmd.SilenceUsage = false
			return fmt.Errorf("%s command accepts between %d and %d arg(s), received %d", cmd.Name(), minArgs, maxArgs, len(args))
		}
		return nil
	}
}

// findRepoRoot returns the configured repository root, or locates the
// .gogit directory by walking up from the working directory.
func findRepoRoot() (string, error) {
	if repoPath := viper.GetString(constants.RepoConfigKey); repoPath != "" {
		return repoPath, nil
	}
	return repository.FindRoot(".")
}

// openObjectStore opens the object store of the current repository.
func openObjectStore() (*objects.ObjectStore, error) {
	repoPath, err := findRepoRoot()
	if err != nil {
		return nil, err
	}

	level := viper.GetInt(constants.CompressionLevelConfigKey)
	if level < zlib.HuffmanOnly || level > zlib.BestCompression {
		return nil, fmt.Errorf("invalid %s %d: must be between %d and %d",
			constants.CompressionLevelConfigKey, level, zlib.HuffmanOnly, zlib.BestCompression)
	}

	return objects.NewObjectStore(repoPath,
		objects.WithLogger(zap.L().Named("objects")),
		objects.WithCompressionLevel(level),
	), nil
}
