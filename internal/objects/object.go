package objects

import (
	"fmt"
	"os"

	"github.com/KostasZigo/gogit-odb/utils"
)

// Object is an immutable GoGit object: a type tag and an opaque payload.
// Its size is always the length of its content.
type Object struct {
	objectType utils.ObjectType
	content    []byte
}

// NewObject creates an object of the given type, rejecting unknown types.
func NewObject(objectType utils.ObjectType, content []byte) (*Object, error) {
	if !objectType.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownObjectType, objectType)
	}
	return &Object{
		objectType: objectType,
		content:    content,
	}, nil
}

func NewBlob(content []byte) *Object {
	return &Object{
		objectType: utils.BlobObjectType,
		content:    content,
	}
}

func NewBlobFromFile(filepath string) (*Object, error) {
	return NewObjectFromFile(utils.BlobObjectType, filepath)
}

// NewObjectFromFile creates an object of the given type from a file's contents.
func NewObjectFromFile(objectType utils.ObjectType, filepath string) (*Object, error) {
	content, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filepath, err)
	}
	return NewObject(objectType, content)
}

func (o *Object) Type() utils.ObjectType {
	return o.objectType
}

func (o *Object) Content() []byte {
	return o.content
}

func (o *Object) Size() int {
	return len(o.content)
}

// Header returns the object header "<type> <size>\0"
func (o *Object) Header() string {
	return utils.ObjectHeader(o.objectType, o.Size())
}

// Hash returns the SHA-1 hash of the object
func (o *Object) Hash() string {
	// Type is validated by every constructor
	hash, _ := utils.ComputeHash(o.content, o.objectType)
	return hash
}

func (o *Object) String() string {
	return fmt.Sprintf("Object{type: %s, size: %d bytes}", o.objectType, o.Size())
}
