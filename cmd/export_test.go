package cmd

import (
	"bytes"
	"os"
	"testing"

	"github.com/KostasZigo/gogit-odb/internal/objects"
	"github.com/KostasZigo/gogit-odb/utils"
	"github.com/spf13/cobra"
)

// createTestRootCmd creates a fresh root command holding cmd.
func createTestRootCmd(cmd *cobra.Command) *cobra.Command {
	testRootCmd := &cobra.Command{Use: "gogit"}
	testRootCmd.AddCommand(cmd)
	return testRootCmd
}

// captureStdout returns command stdout output as string.
func captureStdout(cmd *cobra.Command) *bytes.Buffer {
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	return &stdout
}

// captureStderr returns command stderr output as string.
func captureStderr(cmd *cobra.Command) *bytes.Buffer {
	var stderr bytes.Buffer
	cmd.SetErr(&stderr)
	return &stderr
}

// changeToRepoDir changes working directory to repo path and registers cleanup.
func changeToRepoDir(t *testing.T, repoPath string) {
	t.Helper()

	oldDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get current directory: %v", err)
	}

	if err := os.Chdir(repoPath); err != nil {
		t.Fatalf("Failed to change to directory %s: %v", repoPath, err)
	}

	t.Cleanup(func() {
		os.Chdir(oldDir)
	})
}

// putTestObject stores content directly through the object store and returns its hash.
func putTestObject(t *testing.T, repoPath string, objectType utils.ObjectType, content []byte) string {
	t.Helper()

	hash, err := objects.NewObjectStore(repoPath).Put(objectType, content)
	if err != nil {
		t.Fatalf("Failed to put %s: %v", objectType, err)
	}

	return hash
}

// executeCommand runs cmd under a fresh root and returns stdout and the execution error.
func executeCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	testRootCmd := createTestRootCmd(cmd)
	stdout := captureStdout(testRootCmd)
	captureStderr(testRootCmd)

	testRootCmd.SetArgs(append([]string{cmd.Name()}, args...))
	err := testRootCmd.Execute()
	return stdout.String(), err
}
