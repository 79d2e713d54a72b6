// Command minify writes minified copies of the web templates and static
// assets into dist/, which the server prefers in production.
package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
)

var mediaTypes = map[string]string{
	".html": "text/html",
	".css":  "text/css",
	".js":   "application/javascript",
}

func main() {
	var (
		srcDir = flag.String("src", "web", "Directory holding templates/ and static/")
		outDir = flag.String("out", "dist", "Output directory")
	)
	flag.Parse()

	m := newMinifier()
	for _, sub := range []string{"templates", "static"} {
		src := filepath.Join(*srcDir, sub)
		dst := filepath.Join(*outDir, sub)
		if err := minifyTree(m, src, dst); err != nil {
			log.Fatalf("Error minifying %s: %v", src, err)
		}
	}
	fmt.Printf("Minified assets are in %s\n", *outDir)
}

func newMinifier() *minify.M {
	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	m.Add("text/html", &html.Minifier{KeepDocumentTags: true, KeepEndTags: true, TemplateDelims: html.GoTemplateDelims})
	m.AddFunc("application/javascript", js.Minify)
	return m
}

// minifyTree mirrors src into dst, minifying files with a known media type
// and copying everything else unchanged.
func minifyTree(m *minify.M, src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		mediaType := mediaTypes[strings.ToLower(filepath.Ext(path))]
		return minifyFile(m, path, filepath.Join(dst, rel), mediaType)
	})
}

func minifyFile(m *minify.M, srcPath, dstPath, mediaType string) error {
	src, err := os.ReadFile(srcPath)
	if err != nil {
		return err
	}

	out := src
	if mediaType != "" {
		out, err = m.Bytes(mediaType, src)
		if err != nil {
			return fmt.Errorf("%s: %w", srcPath, err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(dstPath, out, 0o644); err != nil {
		return err
	}

	if mediaType != "" && len(src) > 0 {
		ratio := float64(len(src)-len(out)) / float64(len(src)) * 100
		fmt.Printf("%s: %d bytes -> %d bytes (%.1f%% reduction)\n", srcPath, len(src), len(out), ratio)
	}
	return nil
}
