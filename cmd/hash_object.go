package cmd

import (
	"fmt"

	"github.com/KostasZigo/gogit-odb/internal/objects"
	"github.com/KostasZigo/gogit-odb/utils"
	"github.com/spf13/cobra"
)

type hashObjectOptions struct {
	write      bool
	objectType string
}

func newHashObjectCmd() *cobra.Command {
	opts := &hashObjectOptions{}

	hashObjectCmd := &cobra.Command{
		Use:   "hash-object <filepath>",
		Short: "Compute object hash and optionally create and store an object from a file",
		Long: `Compute the object hash (SHA-1 hash) for a file's content.
Optionally write the resulting object into the objects folder.

Examples:
  # Compute hash without storing
  gogit hash-object myfile.txt

  # Compute hash and store in .gogit/objects
  gogit hash-object -w myfile.txt

  # Hash the file as a tree object
  gogit hash-object -t tree raw-tree.bin`,
		SilenceUsage: true,
		Args:         exactArgs(1, "filepath"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHashObject(cmd, args, opts)
		},
	}

	hashObjectCmd.Flags().BoolVarP(&opts.write, "write", "w", false, "Write the object into the objects folder")
	hashObjectCmd.Flags().StringVarP(&opts.objectType, "type", "t", string(utils.BlobObjectType), "Object type (blob, tree, commit, tag)")

	return hashObjectCmd
}

func init() {
	rootCmd.AddCommand(newHashObjectCmd())
}

// runHashObject computes hash and optionally stores the object.
func runHashObject(cmd *cobra.Command, args []string, opts *hashObjectOptions) error {
	objectType, ok := utils.ParseObjectType(opts.objectType)
	if !ok {
		return fmt.Errorf("%w: %q", objects.ErrUnknownObjectType, opts.objectType)
	}

	// Create object from file's contents
	var obj *objects.Object
	var err error
	if objectType == utils.BlobObjectType {
		obj, err = objects.NewBlobFromFile(args[0])
	} else {
		obj, err = objects.NewObjectFromFile(objectType, args[0])
	}
	if err != nil {
		return err
	}

	// Print hash to stdout
	fmt.Fprintln(cmd.OutOrStdout(), obj.Hash())

	if opts.write {
		store, err := openObjectStore()
		if err != nil {
			return err
		}

		if err := store.Store(obj); err != nil {
			return fmt.Errorf("failed to store object: %w", err)
		}
	}

	return nil
}
