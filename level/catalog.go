package level

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.uber.org/zap"
)

// Catalog is an ordered set of level sources
// An empty path stands for the built-in level
type Catalog struct {
	paths   []string
	current int
	log     *zap.Logger
}

// Discover lists the .yaml and .yml files of dir in name order, hidden files skipped
// A missing dir is not an error; the catalog then holds only the built-in level
func Discover(dir string, log *zap.Logger) (*Catalog, error) {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Catalog{log: log}

	if dir == "" {
		c.paths = []string{""}
		return c, nil
	}

	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		log.Info("level directory does not exist, using built-in level", zap.String("dir", dir))
		c.paths = []string{""}
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read level directory: %w", err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		switch strings.ToLower(filepath.Ext(name)) {
		case ".yaml", ".yml":
			c.paths = append(c.paths, filepath.Join(dir, name))
		}
	}
	slices.Sort(c.paths)

	if len(c.paths) == 0 {
		log.Info("no level files found, using built-in level", zap.String("dir", dir))
		c.paths = []string{""}
	}
	return c, nil
}

// Single returns a catalog holding one level file, or the built-in level for an empty path
func Single(path string, log *zap.Logger) *Catalog {
	if log == nil {
		log = zap.NewNop()
	}
	return &Catalog{paths: []string{path}, log: log}
}

// Len returns the number of levels
func (c *Catalog) Len() int {
	return len(c.paths)
}

// Index returns the position of the current level
func (c *Catalog) Index() int {
	return c.current
}

// Current loads the current level
func (c *Catalog) Current() (Level, error) {
	path := c.paths[c.current]
	if path == "" {
		return Default(c.log)
	}
	return Load(path, c.log)
}

// Next advances to the following level, wrapping to the first, and loads it
func (c *Catalog) Next() (Level, error) {
	c.current = (c.current + 1) % len(c.paths)
	return c.Current()
}
