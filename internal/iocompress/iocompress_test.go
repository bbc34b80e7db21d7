package iocompress_test

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnmoth/internal/iocompress"
	"github.com/gnames/gnmoth/pkg/errcode"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGzip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "moths.json")
	content := strings.Repeat(`{"genus": "Agrotis", "epithet": "ipsilon"}`, 100)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	gz, err := iocompress.Gzip(path)
	require.NoError(t, err)
	assert.Equal(t, path+".gz", gz)

	f, err := os.Open(gz)
	require.NoError(t, err)
	defer f.Close()
	zr, err := gzip.NewReader(f)
	require.NoError(t, err)
	assert.Equal(t, "moths.json", zr.Name)
	bs, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, content, string(bs))

	info, err := os.Stat(gz)
	require.NoError(t, err)
	assert.Less(t, info.Size(), int64(len(content)))
}

func TestGzipAll(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}
	dir := t.TempDir()
	var paths []string
	for _, v := range []string{"a.json", "b.json"} {
		path := filepath.Join(dir, v)
		require.NoError(t, os.WriteFile(path, []byte("[]"), 0644))
		paths = append(paths, path)
	}
	res, err := iocompress.GzipAll(paths)
	require.NoError(t, err)
	assert.Equal(t, []string{paths[0] + ".gz", paths[1] + ".gz"}, res)
}

func TestGzipMissing(t *testing.T) {
	_, err := iocompress.Gzip(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.CompressError, gnErr.Code)
}
