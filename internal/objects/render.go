package objects

import (
	"fmt"
	"io"

	"github.com/KostasZigo/gogit-odb/utils"
)

// PrettyPrint writes a human readable form of obj to w.
// Blobs are written as is, trees one line per entry. Commits and tags
// are not supported.
func PrettyPrint(w io.Writer, obj *Object) error {
	switch obj.Type() {
	case utils.BlobObjectType:
		_, err := w.Write(obj.Content())
		return err
	case utils.TreeObjectType:
		tree, err := TreeFromObject(obj)
		if err != nil {
			return err
		}
		return PrintTreeEntries(w, tree.Entries())
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedObjectType, obj.Type())
	}
}

// PrintTreeEntries writes "<mode> <type> <hash> <name>" for every entry, mode padded to 6 columns.
func PrintTreeEntries(w io.Writer, entries []TreeEntry) error {
	for _, entry := range entries {
		if _, err := fmt.Fprintf(w, "%-6s %s %s %s\n", entry.Mode(), entry.ObjectType(), entry.Hash(), entry.Name()); err != nil {
			return err
		}
	}
	return nil
}

// PrintTreeEntryNames writes one entry name per line.
func PrintTreeEntryNames(w io.Writer, entries []TreeEntry) error {
	for _, entry := range entries {
		if _, err := fmt.Fprintln(w, entry.Name()); err != nil {
			return err
		}
	}
	return nil
}
