package cmd

import (
	"errors"
	"fmt"

	"github.com/KostasZigo/gogit-odb/internal/objects"
	"github.com/spf13/cobra"
)

type catFileOptions struct {
	pretty   bool
	showType bool
	showSize bool
	exists   bool
}

func newCatFileCmd() *cobra.Command {
	opts := &catFileOptions{}

	catFileCmd := &cobra.Command{
		Use:   "cat-file (-p | -t | -s | -e) <object>",
		Short: "Provide content, type or size information for repository objects",
		Long: `Show the content, type or size of an object identified by its full
or abbreviated hash. Abbreviated hashes must be at least 2 characters long
and match exactly one object.

Examples:
  # Print a blob or list a tree
  gogit cat-file -p 3b18e5

  # Print the object type
  gogit cat-file -t 3b18e512dba79e4c8300dd08aeb37f8e728b8dad

  # Exit with zero status if the object exists
  gogit cat-file -e 3b18e5`,
		SilenceUsage: true,
		Args:         exactArgs(1, "object"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatFile(cmd, args, opts)
		},
	}

	catFileCmd.Flags().BoolVarP(&opts.pretty, "pretty", "p", false, "Pretty-print the object content based on its type")
	catFileCmd.Flags().BoolVarP(&opts.showType, "type", "t", false, "Show the object type")
	catFileCmd.Flags().BoolVarP(&opts.showSize, "size", "s", false, "Show the object size in bytes")
	catFileCmd.Flags().BoolVarP(&opts.exists, "exists", "e", false, "Exit with zero status if the object exists, non-zero otherwise")
	catFileCmd.MarkFlagsMutuallyExclusive("pretty", "type", "size", "exists")
	catFileCmd.MarkFlagsOneRequired("pretty", "type", "size", "exists")

	return catFileCmd
}

func init() {
	rootCmd.AddCommand(newCatFileCmd())
}

// runCatFile resolves the object and prints the requested view of it.
func runCatFile(cmd *cobra.Command, args []string, opts *catFileOptions) error {
	store, err := openObjectStore()
	if err != nil {
		return err
	}

	if opts.exists {
		return checkObjectExists(cmd, store, args[0])
	}

	obj, err := store.Get(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch {
	case opts.showType:
		fmt.Fprintln(out, obj.Type())
	case opts.showSize:
		fmt.Fprintln(out, obj.Size())
	default:
		if err := objects.PrettyPrint(out, obj); err != nil {
			return fmt.Errorf("failed to print object %s: %w", args[0], err)
		}
	}

	return nil
}

// checkObjectExists reports a missing object through the exit status only.
func checkObjectExists(cmd *cobra.Command, store *objects.ObjectStore, prefix string) error {
	hash, err := store.ResolvePrefix(prefix)
	if err == nil && !store.Exists(hash) {
		err = fmt.Errorf("%w: %s", objects.ErrObjectNotFound, hash)
	}
	if errors.Is(err, objects.ErrObjectNotFound) {
		cmd.SilenceErrors = true
	}
	return err
}
