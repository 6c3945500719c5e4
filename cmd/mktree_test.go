package cmd

import (
	"strings"
	"testing"

	"github.com/KostasZigo/gogit-odb/internal/objects"
	"github.com/KostasZigo/gogit-odb/testutils"
	"github.com/KostasZigo/gogit-odb/utils"
	"github.com/stretchr/testify/require"
)

// executeMktree runs mktree with the given standard input.
func executeMktree(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	mktreeCmd := newMktreeCmd()
	testRootCmd := createTestRootCmd(mktreeCmd)
	stdout := captureStdout(testRootCmd)
	captureStderr(testRootCmd)
	testRootCmd.SetIn(strings.NewReader(stdin))

	testRootCmd.SetArgs(append([]string{mktreeCmd.Name()}, args...))
	err := testRootCmd.Execute()
	return stdout.String(), err
}

// TestMktreeCommand_RoundTrip verifies ls-tree output fed to mktree reproduces the tree.
func TestMktreeCommand_RoundTrip(t *testing.T) {
	repoPath := testutils.SetupTestRepoWithGogitDir(t)
	changeToRepoDir(t, repoPath)

	blobHash := putTestObject(t, repoPath, utils.BlobObjectType, []byte("hello\n"))
	subtreeHash := putTestObject(t, repoPath, utils.TreeObjectType, nil)

	input := "100644 blob " + blobHash + " z file.txt\n" +
		"40000  tree " + subtreeHash + " a\n" +
		"100755 blob " + blobHash + "\trun.sh\n"

	stdout, err := executeMktree(t, input)
	require.NoError(t, err)
	treeHash := strings.TrimSpace(stdout)

	tree, err := objects.NewObjectStore(repoPath).ReadTree(treeHash)
	require.NoError(t, err)
	require.Equal(t, treeHash, tree.Hash())

	names := make([]string, 0, len(tree.Entries()))
	for _, entry := range tree.Entries() {
		names = append(names, entry.Name())
	}
	require.Equal(t, []string{"a", "run.sh", "z file.txt"}, names)

	listing, err := executeCommand(t, newLsTreeCmd(), treeHash)
	require.NoError(t, err)

	again, err := executeMktree(t, listing)
	require.NoError(t, err)
	require.Equal(t, treeHash, strings.TrimSpace(again))
}

// TestMktreeCommand_Empty verifies empty input produces the empty tree.
func TestMktreeCommand_Empty(t *testing.T) {
	repoPath := testutils.SetupTestRepoWithGogitDir(t)
	changeToRepoDir(t, repoPath)

	stdout, err := executeMktree(t, "")
	require.NoError(t, err)
	require.Equal(t, "4b825dc642cb6eb9a060e54bf8d69288fbee4904\n", stdout)
}

// TestMktreeCommand_MissingObject verifies referenced objects must exist unless --missing is given.
func TestMktreeCommand_MissingObject(t *testing.T) {
	repoPath := testutils.SetupTestRepoWithGogitDir(t)
	changeToRepoDir(t, repoPath)

	input := "100644 blob " + testutils.RandomHash() + " ghost.txt\n"

	_, err := executeMktree(t, input)
	require.ErrorIs(t, err, objects.ErrObjectNotFound)

	stdout, err := executeMktree(t, input, "--missing")
	require.NoError(t, err)
	require.Len(t, strings.TrimSpace(stdout), 40)
}

// TestMktreeCommand_InvalidLines verifies malformed input lines are rejected.
func TestMktreeCommand_InvalidLines(t *testing.T) {
	repoPath := testutils.SetupTestRepoWithGogitDir(t)
	changeToRepoDir(t, repoPath)
	hash := testutils.RandomHash()

	tests := []struct {
		name  string
		input string
	}{
		{"missing fields", "100644 blob\n"},
		{"invalid mode", "100600 blob " + hash + " a\n"},
		{"unknown type", "100644 branch " + hash + " a\n"},
		{"type does not match mode", "40000 blob " + hash + " a\n"},
		{"short hash", "100644 blob abc123 a\n"},
		{"duplicate names", "100644 blob " + hash + " a\n100755 blob " + hash + " a\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeMktree(t, tt.input, "--missing")
			require.Error(t, err)
		})
	}
}
