package repository

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/KostasZigo/gogit-odb/internal/constants"
	"go.uber.org/zap"
)

var (
	// ErrRepositoryExists is returned when initializing over an existing .gogit directory.
	ErrRepositoryExists = errors.New("repository already exists")

	// ErrRepositoryNotFound is returned when no .gogit directory encloses a path.
	ErrRepositoryNotFound = errors.New("repository not found")
)

// InitRepository creates the .gogit skeleton under path: objects/, refs/heads/,
// refs/tags/ and a HEAD pointing at the default branch.
func InitRepository(path string) error {
	// Resolves and adds OS specific separator
	gogitDir := filepath.Join(path, constants.Gogit)

	if err := checkRepositoryDoesNotExist(gogitDir); err != nil {
		return err
	}

	// Track if initialization of gogit directories and files was successful
	// Default value: false
	var initSuccess bool

	// Defer a func to clean up any directories/files in the case that
	// repository initialization failed (not all directories/files were created successfully).
	// If all resources got created successfully initSuccess is true, and the clean-up
	//  is not executed
	defer func() {
		if !initSuccess {
			cleanupRepository(gogitDir)
		}
	}()

	directories := []string{
		gogitDir,
		filepath.Join(gogitDir, constants.Objects),
		filepath.Join(gogitDir, constants.Refs),
		filepath.Join(gogitDir, constants.Refs, constants.Heads),
		filepath.Join(gogitDir, constants.Refs, constants.Tags),
	}

	// Create all gogit directories
	for _, directory := range directories {
		if err := os.MkdirAll(directory, constants.DirPerms); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", directory, err)
		}
	}

	// Create HEAD file pointing to main branch
	headFile := filepath.Join(gogitDir, constants.Head)
	headContent := constants.DefaultRefPrefix + constants.DefaultBranch + "\n"

	if err := os.WriteFile(headFile, []byte(headContent), constants.FilePerms); err != nil {
		return fmt.Errorf("failed to create %s file: %w", constants.Head, err)
	}

	initSuccess = true
	zap.L().Debug("initialized repository", zap.String("path", gogitDir))
	return nil
}

func checkRepositoryDoesNotExist(path string) error {
	_, err := os.Stat(path)

	// If path doesn't exist there is no error
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to check repository path: %w", err)
	}

	return fmt.Errorf("%w at %s", ErrRepositoryExists, path)
}

// Removes the entire .gogit directory if it exists
func cleanupRepository(gogitDir string) {
	log := zap.L().With(zap.String("path", gogitDir))
	if _, err := os.Stat(gogitDir); err == nil {
		log.Debug("cleaning up partial repository initialization")

		if err := os.RemoveAll(gogitDir); err != nil {
			log.Warn("failed to cleanup repository directory", zap.Error(err))
		} else {
			log.Debug("successfully cleaned up repository directory")
		}
	}
}

// FindRoot walks up from dir and returns the first directory containing .gogit.
func FindRoot(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", dir, err)
	}

	for {
		if info, err := os.Stat(filepath.Join(dir, constants.Gogit)); err == nil && info.IsDir() {
			return dir, nil
		}

		// Dir returns all but the last element of path
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w: %s directory not found", ErrRepositoryNotFound, constants.Gogit)
		}
		dir = parent
	}
}
