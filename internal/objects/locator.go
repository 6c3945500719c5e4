package objects

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/KostasZigo/gogit-odb/internal/constants"
	"go.uber.org/zap"
)

// validateHashPrefix checks a full or abbreviated hash before it is turned into a path.
func validateHashPrefix(prefix string) error {
	if len(prefix) < constants.HashDirPrefixLength || len(prefix) > constants.HashStringLength {
		return fmt.Errorf("%w: got %q", ErrInvalidHashLength, prefix)
	}
	for i := 0; i < len(prefix); i++ {
		c := prefix[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return fmt.Errorf("%w: got %q", ErrInvalidHash, prefix)
		}
	}
	return nil
}

func objectNotFound(hash string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrObjectNotFound, hash, err)
}

// ResolvePrefix expands a full or abbreviated hash into the full hash of
// the single stored object it identifies.
//
// A full hash is returned as is, without checking that the object exists.
// An abbreviated hash is matched against the file names of its
// .gogit/objects/<first 2 chars> directory.
func (store *ObjectStore) ResolvePrefix(prefix string) (string, error) {
	prefix = strings.ToLower(prefix)
	if err := validateHashPrefix(prefix); err != nil {
		return "", err
	}

	if len(prefix) == constants.HashStringLength {
		return prefix, nil
	}

	dirName := prefix[:constants.HashDirPrefixLength]
	suffix := prefix[constants.HashDirPrefixLength:]

	dirEntries, err := os.ReadDir(filepath.Join(store.objectsDir, dirName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", objectNotFound(prefix, err)
		}
		return "", fmt.Errorf("failed to list objects for hash %s: %w", prefix, err)
	}

	var matches []string
	for _, dirEntry := range dirEntries {
		name := dirEntry.Name()
		if dirEntry.IsDir() || len(name) != constants.HashStringLength-constants.HashDirPrefixLength {
			continue
		}
		if strings.HasPrefix(name, suffix) {
			matches = append(matches, dirName+name)
		}
	}

	switch len(matches) {
	case 0:
		return "", objectNotFound(prefix, fs.ErrNotExist)
	case 1:
		store.log.Debug("resolved abbreviated hash",
			zap.String("prefix", prefix),
			zap.String("hash", matches[0]))
		return matches[0], nil
	default:
		store.log.Debug("abbreviated hash is ambiguous",
			zap.String("prefix", prefix),
			zap.Strings("candidates", matches))
		return "", fmt.Errorf("%w %s", ErrMultipleObjectsFound, prefix)
	}
}

// openObject opens the object file of a full hash.
func (store *ObjectStore) openObject(hash string) (*os.File, error) {
	file, err := os.Open(store.ObjectPath(hash))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, objectNotFound(hash, err)
		}
		return nil, fmt.Errorf("failed to open object file %s: %w", hash, err)
	}
	return file, nil
}
