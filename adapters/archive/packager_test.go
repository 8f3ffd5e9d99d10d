package archive

import (
	"archive/zip"
	"io"
	"testing"

	"godraft/domain/contract"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackOneMemberPerDocument(t *testing.T) {
	docs := []contract.GeneratedDocument{
		{Filename: "C-1.docx", Content: []byte("first")},
		{Filename: "C-2.docx", Content: []byte("second")},
		{Filename: "contract_3.docx", Content: []byte("third")},
	}

	reader, err := NewPackager().Pack(docs)
	require.NoError(t, err)

	zr, err := zip.NewReader(reader, reader.Size())
	require.NoError(t, err)
	require.Len(t, zr.File, 3)

	for i, doc := range docs {
		assert.Equal(t, doc.Filename, zr.File[i].Name)

		rc, err := zr.File[i].Open()
		require.NoError(t, err)
		content, err := io.ReadAll(rc)
		rc.Close()
		require.NoError(t, err)
		assert.Equal(t, doc.Content, content)
	}
}

func TestPackReaderStartsAtBeginning(t *testing.T) {
	reader, err := NewPackager().Pack([]contract.GeneratedDocument{
		{Filename: "a.docx", Content: []byte("a")},
	})
	require.NoError(t, err)

	// Entire archive must be readable without seeking first
	assert.Equal(t, int(reader.Size()), reader.Len())
}

func TestPackNoDocumentsYieldsEmptyArchive(t *testing.T) {
	reader, err := NewPackager().Pack(nil)
	require.NoError(t, err)

	zr, err := zip.NewReader(reader, reader.Size())
	require.NoError(t, err)
	assert.Empty(t, zr.File)
}
