package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFileSize(t *testing.T) {
	cases := []struct {
		bytes int64
		want  string
	}{
		{0, "0 Bytes"},
		{-10, "0 Bytes"},
		{512, "512.00 Bytes"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{1048576, "1.00 MB"},
		{5242880, "5.00 MB"},
		{1073741824, "1.00 GB"},
		{1649267441664, "1536.00 GB"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, FormatFileSize(c.bytes))
	}
}

func TestMIMEByPath(t *testing.T) {
	assert.Equal(t, "text/csv", MIMEByPath("/exports/sales.csv"))
	assert.Equal(t, "application/json", MIMEByPath("sales.JSON"))
	assert.Equal(t, "application/pdf", MIMEByPath("report.pdf"))
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", MIMEByPath("sales.xlsx"))
	assert.Equal(t, "application/octet-stream", MIMEByPath("sales.bin"))
	assert.Equal(t, "application/octet-stream", MIMEByPath("noext"))
}

func TestLocalStore(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	require.NoError(t, err)

	path, err := store.Write("report.csv", []byte("a,b,c\n"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "report.csv"), path)

	size, err := store.Size("report.csv")
	require.NoError(t, err)
	assert.Equal(t, int64(6), size)

	require.NoError(t, store.Delete("report.csv"))

	_, err = store.Size("report.csv")
	assert.Error(t, err)
}

func TestLocalStore_RejectsNamesOutsideDir(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	outside := t.TempDir()
	victim := filepath.Join(outside, "victim.csv")
	require.NoError(t, os.WriteFile(victim, []byte("x"), 0o644))

	for _, name := range []string{
		"../victim.csv",
		"a/../../victim.csv",
		victim,
		"sub/report.csv",
		".",
		"..",
	} {
		_, pathErr := store.Path(name)
		assert.Error(t, pathErr, "path must reject %q", name)
		assert.Error(t, store.Delete(name), "delete must reject %q", name)
		_, sizeErr := store.Size(name)
		assert.Error(t, sizeErr, "size must reject %q", name)
		_, writeErr := store.Write(name, []byte("y"))
		assert.Error(t, writeErr, "write must reject %q", name)
	}

	_, err = os.Stat(victim)
	require.NoError(t, err, "file outside the store must survive")
}
