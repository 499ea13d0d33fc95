// context.go carries the run-time settings shared by all report pipelines
// and creates output files, ensuring the resulting path stays within the
// output directory.

package reports

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Context is passed to every report's Run method.
type Context struct {
	// ConfigPath is the pipeline's YAML configuration file.
	ConfigPath string

	// OutputDir receives the generated report files.
	OutputDir string

	// Version is an optional report version label (e.g. "2" for a second
	// pass over the TA assignments).
	Version string

	// Log receives progress and input-validation warnings.
	Log *zap.Logger
}

// Logger returns the context logger, or a no-op logger when unset, so
// pipelines and their tests need no nil checks.
func (ctx *Context) Logger() *zap.Logger {
	if ctx.Log == nil {
		return zap.NewNop()
	}
	return ctx.Log
}

// Create opens a report output file under OutputDir. The directory is
// created on demand, and the resolved path is verified to stay inside it.
func (ctx *Context) Create(name string) (*os.File, error) {
	outDir := ctx.OutputDir
	if outDir == "" {
		outDir = "."
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	outPath := filepath.Join(outDir, name)

	absOut, err := filepath.Abs(outDir)
	if err != nil {
		return nil, fmt.Errorf("resolving output directory: %w", err)
	}
	absPath, err := filepath.Abs(outPath)
	if err != nil {
		return nil, fmt.Errorf("resolving output path: %w", err)
	}
	if !strings.HasPrefix(absPath, absOut+string(filepath.Separator)) {
		return nil, fmt.Errorf("output path escapes output directory: %s", name)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", outPath, err)
	}
	ctx.Logger().Info("writing report", zap.String("path", outPath))
	return f, nil
}

// Write creates a report output file, runs the writer over it, and closes
// it, reporting the first error.
func (ctx *Context) Write(name string, fn func(io.Writer) error) error {
	f, err := ctx.Create(name)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Path returns the full output path for a report file name.
func (ctx *Context) Path(name string) string {
	outDir := ctx.OutputDir
	if outDir == "" {
		outDir = "."
	}
	return filepath.Join(outDir, name)
}
