package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/KostasZigo/gogit-odb/internal/objects"
	"github.com/KostasZigo/gogit-odb/utils"
	"github.com/spf13/cobra"
)

type mktreeOptions struct {
	allowMissing bool
}

func newMktreeCmd() *cobra.Command {
	opts := &mktreeOptions{}

	mktreeCmd := &cobra.Command{
		Use:   "mktree",
		Short: "Build a tree object from ls-tree formatted text",
		Long: `Read lines in the ls-tree output format from standard input,
store the resulting tree object and print its hash.

  <mode> <type> <hash> <name>

Entries are sorted before the tree is written. Referenced objects must
exist in the repository unless --missing is given.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMktree(cmd, opts)
		},
	}

	mktreeCmd.Flags().BoolVar(&opts.allowMissing, "missing", false, "Allow entries referencing objects that are not in the repository")

	return mktreeCmd
}

func init() {
	rootCmd.AddCommand(newMktreeCmd())
}

func runMktree(cmd *cobra.Command, opts *mktreeOptions) error {
	store, err := openObjectStore()
	if err != nil {
		return err
	}

	var entries []objects.TreeEntry
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for lineNumber := 1; scanner.Scan(); lineNumber++ {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		entry, err := parseTreeLine(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNumber, err)
		}
		if !opts.allowMissing && !store.Exists(entry.Hash()) {
			return fmt.Errorf("line %d: %w: %s", lineNumber, objects.ErrObjectNotFound, entry.Hash())
		}
		entries = append(entries, *entry)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read tree entries: %w", err)
	}

	tree, err := objects.NewTree(entries)
	if err != nil {
		return err
	}

	if err := store.Store(tree.Object()); err != nil {
		return fmt.Errorf("failed to store object: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), tree.Hash())
	return nil
}

// parseTreeLine parses "<mode> <type> <hash> <name>". Fields may be separated
// by runs of spaces or tabs; the name is everything after the single
// separator that follows the hash.
func parseTreeLine(line string) (*objects.TreeEntry, error) {
	var fields [3]string
	rest := line
	for i := range fields {
		rest = strings.TrimLeft(rest, " \t")
		separator := strings.IndexAny(rest, " \t")
		if separator == -1 {
			return nil, fmt.Errorf("malformed tree line %q", line)
		}
		fields[i] = rest[:separator]
		rest = rest[separator+1:]
	}
	mode, typeToken, hash := fields[0], fields[1], fields[2]

	entry, err := objects.NewTreeEntry(objects.FileMode(mode), rest, hash)
	if err != nil {
		return nil, err
	}

	objectType, ok := utils.ParseObjectType(typeToken)
	if !ok {
		return nil, fmt.Errorf("%w: %q", objects.ErrUnknownObjectType, typeToken)
	}
	if objectType != entry.ObjectType() {
		return nil, fmt.Errorf("%w: entry %s has mode %s but type %s", objects.ErrObjectTypeMismatch, entry.Name(), entry.Mode(), objectType)
	}

	return entry, nil
}
