package hostlist

import (
	"context"
	"fmt"
	"os"
)

// FileSource reads a host list from the local filesystem.
type FileSource struct {
	path string
}

func NewFileSource(config SourceConfig) *FileSource {
	return &FileSource{path: config.Location}
}

func (f *FileSource) Name() string {
	return "file:" + f.path
}

func (f *FileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("reading host list: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return data, nil
}

func (f *FileSource) IsHealthy(ctx context.Context) bool {
	info, err := os.Stat(f.path)
	return err == nil && info.Mode().IsRegular()
}
