package iotsv

import (
	"os"

	"github.com/cheggaaa/pb/v3"
)

// newProgressBar creates a progress bar that tracks bytes read from a
// file.
func newProgressBar(
	f *os.File,
	prefix string,
) (*pb.ProgressBar, error) {
	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	bar := pb.Full.Start64(info.Size())
	bar.Set("prefix", prefix)
	bar.Set(pb.Bytes, true)
	bar.Set(pb.CleanOnFinish, true)
	return bar, nil
}
