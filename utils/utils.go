package utils

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

type ObjectType string

const (
	BlobObjectType   ObjectType = "blob"
	TreeObjectType   ObjectType = "tree"
	CommitObjectType ObjectType = "commit"
	TagObjectType    ObjectType = "tag"
)

func (ot ObjectType) IsValid() bool {
	switch ot {
	case BlobObjectType, TreeObjectType, CommitObjectType, TagObjectType:
		return true
	default:
		return false
	}
}

func (ot ObjectType) String() string {
	return string(ot)
}

// ParseObjectType matches a header token against the known object types.
// Matching is exact and case-sensitive.
func ParseObjectType(token string) (ObjectType, bool) {
	objectType := ObjectType(token)
	if !objectType.IsValid() {
		return "", false
	}
	return objectType, true
}

// ObjectHeader renders the framing shared by hashing and storage: "<type> <size>\0".
func ObjectHeader(objectType ObjectType, size int) string {
	return string(objectType) + " " + strconv.Itoa(size) + "\x00"
}

// ComputeHash calculates SHA-1 hash for Object content
func ComputeHash(content []byte, objectType ObjectType) (string, error) {
	if !objectType.IsValid() {
		return "", fmt.Errorf("invalid object type: %s - hash not computed", objectType)
	}

	// format: "ObjectType <size>\0<content>"
	hasher := sha1.New()
	hasher.Write([]byte(ObjectHeader(objectType, len(content))))
	hasher.Write(content)
	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// BuildDirPath constructs os-agnostic display direcotry path with trailing separator preserving all components.
// Unlike filepath.Join, does not normalize "." or remove redundant separators.
func BuildDirPath(dirs ...string) string {
	return strings.Join(dirs, string(filepath.Separator)) + string(filepath.Separator)
}
