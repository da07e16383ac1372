package site

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Generator writes a rendered menu page and its static assets to disk.
type Generator struct {
	OutputDir string
	StaticDir string // optional; copied to {OutputDir}/static
}

// NewGenerator creates a Generator writing into outputDir.
func NewGenerator(outputDir, staticDir string) *Generator {
	return &Generator{
		OutputDir: outputDir,
		StaticDir: staticDir,
	}
}

// Write stores page as index.html and copies static assets. It returns the
// path of the written page.
func (g *Generator) Write(page []byte) (string, error) {
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output dir: %w", err)
	}

	outPath := filepath.Join(g.OutputDir, "index.html")
	if err := os.WriteFile(outPath, page, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", outPath, err)
	}

	if g.StaticDir != "" {
		if err := copyDir(g.StaticDir, filepath.Join(g.OutputDir, "static")); err != nil {
			return "", fmt.Errorf("copying static assets: %w", err)
		}
	}

	return outPath, nil
}

// copyDir recursively copies a directory.
func copyDir(src, dst string) error {
	return filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		destPath := filepath.Join(dst, rel)

		if info.IsDir() {
			return os.MkdirAll(destPath, 0o755)
		}

		return copyFile(path, destPath)
	})
}

// copyFile copies a single file.
func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}

	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer dstFile.Close()

	_, err = io.Copy(dstFile, srcFile)
	return err
}
