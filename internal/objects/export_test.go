package objects

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/KostasZigo/gogit-odb/testutils"
	"github.com/KostasZigo/gogit-odb/utils"
	"go.uber.org/zap/zaptest"
)

// newTestStore creates a repository with .gogit/objects and a store logging to the test.
func newTestStore(t *testing.T) (*ObjectStore, string) {
	t.Helper()

	repoPath := testutils.SetupTestRepoWithGogitDir(t)
	return NewObjectStore(repoPath, WithLogger(zaptest.NewLogger(t))), repoPath
}

// assertObjectHash verifies object hash matches expected value for given content.
func assertObjectHash(t *testing.T, obj *Object, objectType utils.ObjectType, content []byte) {
	t.Helper()

	expectedHash, err := utils.ComputeHash(content, objectType)
	if err != nil {
		t.Fatalf("Hash computation failed: %v", err)
	}

	if obj.Hash() != expectedHash {
		t.Fatalf("Expected hash [%s], got [%s]", expectedHash, obj.Hash())
	}
}

// assertObjectContent verifies object stores exact type, content and correct size.
func assertObjectContent(t *testing.T, obj *Object, objectType utils.ObjectType, expectedContent []byte) {
	t.Helper()

	if obj.Type() != objectType {
		t.Fatalf("Expected type %s, got %s", objectType, obj.Type())
	}

	if obj.Size() != len(expectedContent) {
		t.Fatalf("Expected size %d, got %d", len(expectedContent), obj.Size())
	}

	if !bytes.Equal(obj.Content(), expectedContent) {
		t.Fatalf("Expected content [%q], got [%q]", expectedContent, obj.Content())
	}
}

// putObject stores content and fails test on error.
func putObject(t *testing.T, store *ObjectStore, objectType utils.ObjectType, content []byte) string {
	t.Helper()

	hash, err := store.Put(objectType, content)
	if err != nil {
		t.Fatalf("Failed to put %s: %v", objectType, err)
	}

	return hash
}

// rawTreeEntry encodes a single tree entry: <mode> <name>\0<binary hash>.
func rawTreeEntry(mode, name string, binaryHash []byte) []byte {
	var buf bytes.Buffer
	buf.WriteString(mode)
	buf.WriteByte(' ')
	buf.WriteString(name)
	buf.WriteByte(0)
	buf.Write(binaryHash)
	return buf.Bytes()
}

// createTreeEntry creates tree entry and fails test on error.
func createTreeEntry(t *testing.T, mode FileMode, name, hash string) TreeEntry {
	t.Helper()

	entry, err := NewTreeEntry(mode, name, hash)
	if err != nil {
		t.Fatalf("Failed to create tree entry: %v", err)
	}

	return *entry
}

// createTree creates tree from entries and fails test on error.
func createTree(t *testing.T, entries []TreeEntry) *Tree {
	t.Helper()

	tree, err := NewTree(entries)
	if err != nil {
		t.Fatalf("Failed to create tree: %v", err)
	}

	return tree
}

// createAndStoreTree creates tree from entries, stores it, and returns tree.
func createAndStoreTree(t *testing.T, store *ObjectStore, entries []TreeEntry) *Tree {
	t.Helper()

	tree := createTree(t, entries)
	if err := store.Store(tree.Object()); err != nil {
		t.Fatalf("Failed to store tree: %v", err)
	}

	return tree
}

// assertTreeEntryEqual verifies two tree entries match.
func assertTreeEntryEqual(t *testing.T, actual, expected TreeEntry) {
	t.Helper()

	if actual.Name() != expected.Name() {
		t.Errorf("Entry name mismatch: expected %s, got %s", expected.Name(), actual.Name())
	}
	if actual.Hash() != expected.Hash() {
		t.Errorf("Entry hash mismatch: expected %s, got %s", expected.Hash(), actual.Hash())
	}
	if actual.Mode() != expected.Mode() {
		t.Errorf("Entry mode mismatch: expected %s, got %s", expected.Mode(), actual.Mode())
	}
}

// assertOnlyObjectFile verifies objectPath is the single file in its shard directory.
func assertOnlyObjectFile(t *testing.T, objectPath string) {
	t.Helper()

	entries, err := os.ReadDir(filepath.Dir(objectPath))
	if err != nil {
		t.Fatalf("Failed to list object directory: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != filepath.Base(objectPath) {
		names := make([]string, 0, len(entries))
		for _, entry := range entries {
			names = append(names, entry.Name())
		}
		t.Errorf("Expected only %s in object directory, got %v", filepath.Base(objectPath), names)
	}
}
