package objects

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/KostasZigo/gogit-odb/internal/constants"
	"github.com/KostasZigo/gogit-odb/utils"
	"github.com/google/uuid"
	"github.com/klauspost/compress/zlib"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// ObjectStore manages storage of GoGit objects under .gogit/objects.
// It holds no object state: every read opens and decodes the file again.
type ObjectStore struct {
	repoPath         string // Path to repository root
	objectsDir       string
	compressionLevel int
	log              *zap.Logger
}

type Option func(*ObjectStore)

// WithLogger sets the logger used for debug output. Defaults to zap.L().
func WithLogger(log *zap.Logger) Option {
	return func(store *ObjectStore) {
		store.log = log
	}
}

// WithCompressionLevel sets the zlib level used when writing objects.
func WithCompressionLevel(level int) Option {
	return func(store *ObjectStore) {
		store.compressionLevel = level
	}
}

func NewObjectStore(repoPath string, opts ...Option) *ObjectStore {
	store := &ObjectStore{
		repoPath:         repoPath,
		objectsDir:       filepath.Join(repoPath, constants.Gogit, constants.Objects),
		compressionLevel: zlib.DefaultCompression,
		log:              zap.L(),
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

// ObjectPath returns .gogit/objects/<first 2 chars>/<rest> for a full hash.
func (store *ObjectStore) ObjectPath(hash string) string {
	return filepath.Join(store.objectsDir, hash[:constants.HashDirPrefixLength], hash[constants.HashDirPrefixLength:])
}

// Put stores content as an object of the given type and returns its hash.
func (store *ObjectStore) Put(objectType utils.ObjectType, content []byte) (string, error) {
	obj, err := NewObject(objectType, content)
	if err != nil {
		return "", err
	}
	if err := store.Store(obj); err != nil {
		return "", err
	}
	return obj.Hash(), nil
}

// Store saves an object to .gogit/objects/<first 2 chars>/<rest>.
// The object is written to a temporary file in the same directory and renamed
// into place, so an existing file for the same hash is only ever replaced by
// a complete copy.
func (store *ObjectStore) Store(obj *Object) error {
	hash := obj.Hash()

	// Calculate object path: .gogit/objects/ab/cdef123...
	objectFile := store.ObjectPath(hash)
	objectDir := filepath.Dir(objectFile)

	if _, statErr := os.Stat(objectFile); statErr == nil {
		store.log.Debug("overwriting existing object", zap.String("hash", hash))
	} else if !errors.Is(statErr, fs.ErrNotExist) {
		return fmt.Errorf("failed to check object file: %w", statErr)
	}

	var encoded bytes.Buffer
	if err := EncodeObject(&encoded, obj, store.compressionLevel); err != nil {
		return fmt.Errorf("failed to encode object: %w", err)
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(objectDir, constants.DirPerms); err != nil {
		return fmt.Errorf("failed to create object directory: %w", err)
	}

	if err := writeAndRename(objectFile, encoded.Bytes()); err != nil {
		return err
	}

	store.log.Debug("object written",
		zap.String("hash", hash),
		zap.Stringer("type", obj.Type()),
		zap.String("path", objectFile))
	return nil
}

// writeAndRename writes data to a uniquely named sibling of path and renames
// it over path. The temporary file is removed on any failure.
func writeAndRename(path string, data []byte) (err error) {
	tmpPath := path + "#" + uuid.NewString()

	file, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, constants.FilePerms)
	if err != nil {
		return fmt.Errorf("failed to create object file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	_, err = file.Write(data)
	err = multierr.Append(err, file.Close())
	if err != nil {
		return fmt.Errorf("failed to write object file: %w", err)
	}

	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to move object file into place: %w", err)
	}
	return nil
}

// Get reads an object by full or abbreviated hash.
func (store *ObjectStore) Get(prefix string) (*Object, error) {
	hash, err := store.ResolvePrefix(prefix)
	if err != nil {
		return nil, err
	}

	file, err := store.openObject(hash)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	obj, err := DecodeObject(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s: %w", hash, err)
	}
	return obj, nil
}

// ReadTree reads an object by full or abbreviated hash and decodes it as a tree.
func (store *ObjectStore) ReadTree(prefix string) (*Tree, error) {
	obj, err := store.Get(prefix)
	if err != nil {
		return nil, err
	}
	return TreeFromObject(obj)
}

// Exists checks if an object with the given full hash exists in storage
func (store *ObjectStore) Exists(hash string) bool {
	if len(hash) != constants.HashStringLength || validateHashPrefix(hash) != nil {
		return false
	}
	_, err := os.Stat(store.ObjectPath(hash))
	return err == nil
}
