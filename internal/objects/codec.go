package objects

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/KostasZigo/gogit-odb/internal/constants"
	"github.com/KostasZigo/gogit-odb/utils"
	"github.com/klauspost/compress/zlib"
	"go.uber.org/multierr"
)

// EncodeObject writes the loose object representation of obj to w:
// zlib("<type> <size>\0<content>").
func EncodeObject(w io.Writer, obj *Object, level int) (err error) {
	writer, err := zlib.NewWriterLevel(w, level)
	if err != nil {
		return fmt.Errorf("failed to create zlib writer: %w", err)
	}
	// Close flushes any buffered data into w and repeats an earlier write error
	defer func() {
		if closeErr := writer.Close(); err == nil || !errors.Is(err, closeErr) {
			err = multierr.Append(err, closeErr)
		}
	}()

	if _, err := io.WriteString(writer, obj.Header()); err != nil {
		return fmt.Errorf("failed to write object header: %w", err)
	}
	if _, err := writer.Write(obj.Content()); err != nil {
		return fmt.Errorf("failed to write object content: %w", err)
	}
	return nil
}

// DecodeObject reads a loose object from a zlib compressed stream.
//
// Exactly the number of content bytes declared by the header are read.
// Anything after them in the decompressed stream is ignored.
func DecodeObject(r io.Reader) (*Object, error) {
	reader, err := zlib.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create new reader for decompressed data: %w", err)
	}
	defer reader.Close()

	return readObject(bufio.NewReader(reader))
}

func readObject(r *bufio.Reader) (*Object, error) {
	header, err := r.ReadBytes(constants.NullByte)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: no null byte found in header", ErrMalformedObject)
		}
		return nil, fmt.Errorf("failed to read object header: %w", err)
	}
	header = header[:len(header)-1]

	if !utf8.Valid(header) {
		return nil, fmt.Errorf("%w: header is not valid text", ErrMalformedObject)
	}

	typeToken, sizeToken, found := strings.Cut(string(header), string(constants.SpaceByte))
	if !found {
		return nil, fmt.Errorf("%w: header %q has no type/size separator", ErrMalformedObject, header)
	}

	size, err := strconv.ParseUint(sizeToken, 10, strconv.IntSize-1)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid size %q: %w", ErrMalformedObject, sizeToken, err)
	}

	objectType, ok := utils.ParseObjectType(typeToken)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownObjectType, typeToken)
	}

	content, err := io.ReadAll(io.LimitReader(r, int64(size)))
	if err != nil {
		return nil, fmt.Errorf("failed to read object content: %w", err)
	}
	if uint64(len(content)) < size {
		return nil, fmt.Errorf("%w: header declares %d bytes, found %d: %w",
			ErrMalformedObject, size, len(content), io.ErrUnexpectedEOF)
	}

	return &Object{
		objectType: objectType,
		content:    content,
	}, nil
}
