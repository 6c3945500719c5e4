package cmd

import (
	"fmt"

	"github.com/KostasZigo/gogit-odb/internal/constants"
	"github.com/KostasZigo/gogit-odb/internal/repository"
	"github.com/KostasZigo/gogit-odb/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new GoGit repository",
		Long: `Create an empty GoGit object database: a .gogit directory holding
objects/, refs/heads/, refs/tags/ and a HEAD file pointing at main.

The repository is created in the given directory, the --repo directory,
or the current directory, in that order. An existing repository is never
overwritten.`,
		SilenceUsage: true,
		Args:         rangeArgs(0, 1),
		RunE:         runInit,
	}
}

func init() {
	rootCmd.AddCommand(newInitCmd())
}

// runInit creates the repository skeleton and reports where it was created.
func runInit(cmd *cobra.Command, args []string) error {
	dirPath := "."
	if repoPath := viper.GetString(constants.RepoConfigKey); repoPath != "" {
		dirPath = repoPath
	}
	if len(args) > 0 {
		dirPath = args[0]
	}

	if err := repository.InitRepository(dirPath); err != nil {
		return fmt.Errorf("failed to initialize repository - %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized empty GoGit repository in %s\n", utils.BuildDirPath(dirPath, constants.Gogit))
	return nil
}
