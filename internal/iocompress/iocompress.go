// Package iocompress creates gzipped copies of result files.
package iocompress

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
)

// Ext is appended to the name of a compressed file.
const Ext = ".gz"

// Gzip compresses a file with the best compression level and saves it
// next to the original. It returns the path of the compressed file.
func Gzip(path string) (string, error) {
	in, err := os.Open(path)
	if err != nil {
		return "", CompressError(path, err)
	}
	defer in.Close()

	res := path + Ext
	out, err := os.Create(res)
	if err != nil {
		return "", CompressError(path, err)
	}
	defer out.Close()

	zw, err := gzip.NewWriterLevel(out, gzip.BestCompression)
	if err != nil {
		return "", CompressError(path, err)
	}
	zw.Name = filepath.Base(path)

	if _, err = io.Copy(zw, in); err != nil {
		return "", CompressError(path, err)
	}
	if err = zw.Close(); err != nil {
		return "", CompressError(path, err)
	}
	if err = out.Close(); err != nil {
		return "", CompressError(path, err)
	}

	slog.Info("File compressed", "path", res)
	return res, nil
}

// GzipAll compresses every file in paths and returns paths of the
// compressed copies.
func GzipAll(paths []string) ([]string, error) {
	res := make([]string, 0, len(paths))
	for _, v := range paths {
		gz, err := Gzip(v)
		if err != nil {
			return nil, err
		}
		res = append(res, gz)
	}
	return res, nil
}
