package objects

import "errors"

var (
	// ErrInvalidHashLength is returned for identifiers shorter than 2 or longer than 40 characters.
	ErrInvalidHashLength = errors.New("invalid hash length, hash must be between 2 and 40 characters")

	// ErrInvalidHash is returned for identifiers containing non lowercase-hex characters.
	ErrInvalidHash = errors.New("invalid hash, expected lowercase hex characters")

	// ErrMultipleObjectsFound is returned when an abbreviated hash matches more than one object.
	ErrMultipleObjectsFound = errors.New("multiple objects found for hash")

	// ErrObjectNotFound is returned when no stored object matches a hash.
	ErrObjectNotFound = errors.New("object not found")

	// ErrMalformedObject is returned when an object or tree payload cannot be parsed.
	ErrMalformedObject = errors.New("malformed object")

	// ErrUnknownObjectType is returned when an object header names an unknown type.
	ErrUnknownObjectType = errors.New("unknown object type")

	// ErrUnsupportedObjectType is returned when rendering is requested for commits or tags.
	ErrUnsupportedObjectType = errors.New("unsupported object type")

	// ErrObjectTypeMismatch is returned when an object is not of the type an operation requires.
	ErrObjectTypeMismatch = errors.New("object type mismatch")
)
