package report

import (
	"bytes"
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
)

// Store uploads rendered report to URL
func Store(ctx context.Context, fs afs.Service, URL string, data []byte) error {
	if fs == nil {
		fs = afs.New()
	}
	if err := fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to store report %s: %w", URL, err)
	}
	return nil
}
