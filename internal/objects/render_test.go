package objects

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/KostasZigo/gogit-odb/utils"
	"github.com/stretchr/testify/require"
)

func TestPrettyPrint_Blob(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, PrettyPrint(&out, NewBlob([]byte("hello"))))
	require.Equal(t, "hello", out.String())
}

func TestPrettyPrint_Tree(t *testing.T) {
	fileHash := bytes.Repeat([]byte{0x01}, 20)
	dirHash := bytes.Repeat([]byte{0x02}, 20)
	content := append(rawTreeEntry("100644", "file.txt", fileHash), rawTreeEntry("40000", "src", dirHash)...)

	obj, err := NewObject(utils.TreeObjectType, content)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, PrettyPrint(&out, obj))

	expected := "100644 blob " + hex.EncodeToString(fileHash) + " file.txt\n" +
		"40000  tree " + hex.EncodeToString(dirHash) + " src\n"
	require.Equal(t, expected, out.String())
}

func TestPrettyPrint_EmptyTree(t *testing.T) {
	obj, err := NewObject(utils.TreeObjectType, nil)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, PrettyPrint(&out, obj))
	require.Empty(t, out.String())
}

func TestPrettyPrint_MalformedTree(t *testing.T) {
	obj, err := NewObject(utils.TreeObjectType, []byte("100644 file.txt\x00abc"))
	require.NoError(t, err)

	var out bytes.Buffer
	require.ErrorIs(t, PrettyPrint(&out, obj), ErrMalformedObject)
	require.Empty(t, out.String())
}

func TestPrettyPrint_Unsupported(t *testing.T) {
	for _, objectType := range []utils.ObjectType{utils.CommitObjectType, utils.TagObjectType} {
		obj, err := NewObject(objectType, []byte("data"))
		require.NoError(t, err)

		var out bytes.Buffer
		err = PrettyPrint(&out, obj)
		if !errors.Is(err, ErrUnsupportedObjectType) {
			t.Errorf("Expected ErrUnsupportedObjectType for %s, got: %v", objectType, err)
		}
		require.Empty(t, out.String())
	}
}

func TestPrintTreeEntryNames(t *testing.T) {
	content := append(rawTreeEntry("100644", "b", make([]byte, 20)), rawTreeEntry("100644", "a", make([]byte, 20))...)
	obj, err := NewObject(utils.TreeObjectType, content)
	require.NoError(t, err)

	tree, err := TreeFromObject(obj)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, PrintTreeEntryNames(&out, tree.Entries()))
	require.Equal(t, "b\na\n", out.String())
}
