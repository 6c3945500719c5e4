package cmd

import (
	"github.com/KostasZigo/gogit-odb/internal/objects"
	"github.com/spf13/cobra"
)

type lsTreeOptions struct {
	nameOnly bool
}

func newLsTreeCmd() *cobra.Command {
	opts := &lsTreeOptions{}

	lsTreeCmd := &cobra.Command{
		Use:   "ls-tree [--name-only] <tree> [name]",
		Short: "List the contents of a tree object",
		Long: `List the entries of a tree object, one per line, in stored order:

  <mode> <type> <hash> <name>

When a name is given only the matching entry is listed.`,
		SilenceUsage: true,
		Args:         rangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLsTree(cmd, args, opts)
		},
	}

	lsTreeCmd.Flags().BoolVar(&opts.nameOnly, "name-only", false, "List only entry names")

	return lsTreeCmd
}

func init() {
	rootCmd.AddCommand(newLsTreeCmd())
}

func runLsTree(cmd *cobra.Command, args []string, opts *lsTreeOptions) error {
	store, err := openObjectStore()
	if err != nil {
		return err
	}

	tree, err := store.ReadTree(args[0])
	if err != nil {
		return err
	}

	entries := tree.Entries()
	if len(args) == 2 {
		entry, found := tree.FindEntry(args[1])
		if !found {
			return nil
		}
		entries = []objects.TreeEntry{*entry}
	}

	if opts.nameOnly {
		return objects.PrintTreeEntryNames(cmd.OutOrStdout(), entries)
	}
	return objects.PrintTreeEntries(cmd.OutOrStdout(), entries)
}
