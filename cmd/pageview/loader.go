package main

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/atomicstack/pageview"
	"github.com/atomicstack/pageview/internal/config"
	"golang.org/x/sync/errgroup"
)

const loadWorkers = 8

var pageExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".txt":      true,
}

type pageFile struct {
	path string
	info fs.FileInfo
}

// loadPages reads every page file named directly or found under a directory
// in paths. Files keep the order they were given in; directory contents are
// visited in lexical order.
func loadPages(paths []string, sortMode string) ([]pageview.Page, error) {
	files, err := collectPageFiles(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.New("no pages found")
	}
	pages := make([]pageview.Page, len(files))
	var g errgroup.Group
	g.SetLimit(loadWorkers)
	for i, f := range files {
		g.Go(func() error {
			data, err := os.ReadFile(f.path)
			if err != nil {
				return fmt.Errorf("read page: %w", err)
			}
			contents := string(data)
			p := pageview.NewPage(pageTitle(f.path, contents), contents)
			p.Source = f.path
			switch sortMode {
			case config.SortMtime:
				p = p.WithSortField(float64(f.info.ModTime().Unix()))
			case config.SortSize:
				p = p.WithSortField(float64(f.info.Size()))
			case config.SortOrder:
				// Sort fields order descending, so earlier files get larger keys.
				p = p.WithSortField(float64(len(files) - i))
			}
			pages[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return pages, nil
}

func collectPageFiles(paths []string) ([]pageFile, error) {
	seen := make(map[string]bool)
	var files []pageFile
	add := func(path string, info fs.FileInfo) {
		clean := filepath.Clean(path)
		if seen[clean] {
			return
		}
		seen[clean] = true
		files = append(files, pageFile{path: clean, info: info})
	}
	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", root, err)
		}
		if !info.IsDir() {
			add(root, info)
			continue
		}
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != root && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if !pageExtensions[strings.ToLower(filepath.Ext(path))] {
				return nil
			}
			fi, err := d.Info()
			if err != nil {
				return err
			}
			add(path, fi)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
	}
	return files, nil
}

// pageTitle returns the text of the first Markdown heading, or the file
// name without its extension.
func pageTitle(path, contents string) string {
	scanner := bufio.NewScanner(strings.NewReader(contents))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "#") {
			continue
		}
		if title := strings.TrimSpace(strings.TrimLeft(line, "#")); title != "" {
			return title
		}
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
