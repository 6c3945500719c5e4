package objects

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/KostasZigo/gogit-odb/internal/constants"
	"github.com/KostasZigo/gogit-odb/utils"
)

type FileMode string

const (
	ModeRegularFile FileMode = "100644" // Regular non-executable file
	ModeExecutable  FileMode = "100755" // Executable file
	ModeSymlink     FileMode = "120000" // Symbolic link
	ModeDirectory   FileMode = "40000"  // Directory (tree), stored without a leading zero
	ModeSubmodule   FileMode = "160000" // GoGit submodule
)

func (m FileMode) IsValid() bool {
	switch m {
	case ModeRegularFile, ModeExecutable, ModeSymlink, ModeDirectory, ModeSubmodule:
		return true
	default:
		return false
	}
}

// TreeEntry represents a single entry in a tree object
type TreeEntry struct {
	mode FileMode
	name string
	hash string // hex form of the 20 byte binary hash stored in the tree
}

// NewTreeEntry validates and creates an entry for building a tree.
// The directory mode may be given with a leading zero ("040000").
func NewTreeEntry(mode FileMode, name string, hash string) (*TreeEntry, error) {
	mode = FileMode(strings.TrimLeft(string(mode), "0"))
	if !mode.IsValid() {
		return nil, fmt.Errorf("invalid file mode: %s", mode)
	}
	if name == "" || strings.ContainsAny(name, "/\x00") {
		return nil, fmt.Errorf("invalid entry name: %q", name)
	}
	if len(hash) != constants.HashStringLength || validateHashPrefix(hash) != nil {
		return nil, fmt.Errorf("%w: entry %s has hash %q", ErrInvalidHash, name, hash)
	}
	return &TreeEntry{
		mode: mode,
		name: name,
		hash: hash,
	}, nil
}

func (e *TreeEntry) Mode() FileMode {
	return e.mode
}

func (e *TreeEntry) Name() string {
	return e.name
}

func (e *TreeEntry) Hash() string {
	return e.hash
}

func (treeEntry *TreeEntry) IsDirectory() bool {
	return treeEntry.mode == ModeDirectory
}

// ObjectType reports the type implied by the entry mode. Only the directory
// mode denotes a tree, every other mode is displayed as a blob.
func (treeEntry *TreeEntry) ObjectType() utils.ObjectType {
	if treeEntry.IsDirectory() {
		return utils.TreeObjectType
	}
	return utils.BlobObjectType
}

// Tree represents a GoGit tree object (directory)
type Tree struct {
	entries []TreeEntry
	hash    string
}

// NewTree creates a tree object from the list of Tree Entries
func NewTree(treeEntries []TreeEntry) (*Tree, error) {
	// GoGit requires entries to be sorted by name in ascending order
	entries := make([]TreeEntry, len(treeEntries))
	copy(entries, treeEntries)

	slices.SortStableFunc(entries, compareTreeEntries)

	for i := 1; i < len(entries); i++ {
		if entries[i].Name() == entries[i-1].Name() {
			return nil, fmt.Errorf("duplicate tree entry: %s", entries[i].Name())
		}
	}

	treeContent := buildTreeContent(entries)
	hash, err := utils.ComputeHash(treeContent, utils.TreeObjectType)
	if err != nil {
		return nil, fmt.Errorf("failed to compute hash for tree: %v", err)
	}

	return &Tree{
		entries: entries,
		hash:    hash,
	}, nil
}

// TreeFromObject decodes the content of a tree object. Entries keep their stored order.
func TreeFromObject(obj *Object) (*Tree, error) {
	if obj.Type() != utils.TreeObjectType {
		return nil, fmt.Errorf("%w: expected %s, got %s", ErrObjectTypeMismatch, utils.TreeObjectType, obj.Type())
	}

	entries, err := DecodeTree(obj.Content())
	if err != nil {
		return nil, err
	}

	return &Tree{
		entries: entries,
		hash:    obj.Hash(),
	}, nil
}

// compareTreeEntries implements Git's tree entry sorting rules:
// - Entries are sorted by name
// - Directory names are treated as if they have a trailing "/" for comparison
// - This ensures correct ordering when directories and files have similar names
func compareTreeEntries(a, b TreeEntry) int {
	nameA := getSortableName(a)
	nameB := getSortableName(b)
	return strings.Compare(nameA, nameB)
}

// getSortableName returns the name used for sorting.
// For directories, appends "/" to follow Git's sorting convention.
func getSortableName(entry TreeEntry) string {
	if entry.IsDirectory() {
		return entry.Name() + "/"
	}
	return entry.Name()
}

// buildTreeContent creates the raw tree content in GoGit format
// <mode> <name>\0<20-byte binary SHA> , ex:
// 100644 README.md\0[binary SHA for README blob]
// 100644 main.go\0[binary SHA for main.go blob]
// 40000 src\0[binary SHA for src/ tree]
func buildTreeContent(entries []TreeEntry) []byte {
	var buf bytes.Buffer

	for _, entry := range entries {
		buf.WriteString(string(entry.Mode()))
		buf.WriteByte(constants.SpaceByte)
		buf.WriteString(entry.Name())
		buf.WriteByte(constants.NullByte)

		// Convert hex hash to binary hash
		hashBytes, _ := hex.DecodeString(entry.Hash())
		buf.Write(hashBytes)
	}

	return buf.Bytes()
}

// DecodeTree splits tree content into its entries, in stored order.
// Empty content is an empty tree. Content ending in the middle of an
// entry is malformed.
func DecodeTree(content []byte) ([]TreeEntry, error) {
	entries := []TreeEntry{}

	for offset := 0; offset < len(content); {
		start := offset

		spaceIndex := bytes.IndexByte(content[offset:], constants.SpaceByte)
		if spaceIndex == -1 {
			return nil, fmt.Errorf("%w: tree entry at offset %d has no mode terminator", ErrMalformedObject, start)
		}
		mode := content[offset : offset+spaceIndex]
		if !isModeToken(mode) {
			return nil, fmt.Errorf("%w: tree entry at offset %d has invalid mode %q", ErrMalformedObject, start, mode)
		}
		offset += spaceIndex + 1

		nullIndex := bytes.IndexByte(content[offset:], constants.NullByte)
		if nullIndex == -1 {
			return nil, fmt.Errorf("%w: tree entry at offset %d has no name terminator", ErrMalformedObject, start)
		}
		name := content[offset : offset+nullIndex]
		if !utf8.Valid(name) {
			return nil, fmt.Errorf("%w: tree entry at offset %d has invalid UTF-8 name", ErrMalformedObject, start)
		}
		offset += nullIndex + 1

		if len(content)-offset < constants.HashByteLength {
			return nil, fmt.Errorf("%w: tree entry %q is truncated, %d of %d hash bytes present",
				ErrMalformedObject, name, len(content)-offset, constants.HashByteLength)
		}
		hash := hex.EncodeToString(content[offset : offset+constants.HashByteLength])
		offset += constants.HashByteLength

		entries = append(entries, TreeEntry{
			mode: FileMode(mode),
			name: string(name),
			hash: hash,
		})
	}

	return entries, nil
}

// isModeToken reports whether a stored mode is a non-empty run of ASCII digits.
func isModeToken(mode []byte) bool {
	if len(mode) == 0 {
		return false
	}
	for _, c := range mode {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Hash returns the SHA-1 hash of the tree
func (t *Tree) Hash() string {
	return t.hash
}

// Entries returns all tree entries
func (t *Tree) Entries() []TreeEntry {
	return t.entries
}

// Size returns the size of the tree content
func (t *Tree) Size() int {
	return len(buildTreeContent(t.entries))
}

// Content returns the raw tree content
func (t *Tree) Content() []byte {
	return buildTreeContent(t.entries)
}

// Object returns the tree as a storable object.
func (t *Tree) Object() *Object {
	return &Object{
		objectType: utils.TreeObjectType,
		content:    t.Content(),
	}
}

// String returns a human-readable representation
func (t *Tree) String() string {
	return fmt.Sprintf("Tree{hash: %s, entries: %d}", t.hash, len(t.entries))
}

// FindEntry finds an entry by name
func (t *Tree) FindEntry(name string) (*TreeEntry, bool) {
	for _, entry := range t.entries {
		if entry.Name() == name {
			return &entry, true
		}
	}
	return nil, false
}
