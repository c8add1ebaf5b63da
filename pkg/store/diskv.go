// Package store loads configuration and serves catalogs kept on disk.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/peterbourgon/diskv/v3"
	"go.uber.org/zap"

	"tableflip.dev/archive/pkg/catalog"
)

var (
	// ErrCatalogNotFound is returned when a directory holds no exported catalog.
	ErrCatalogNotFound = errors.New("store: no catalog found")
	// ErrNotCatalog is returned when Export targets a non-empty directory
	// that holds no exported catalog.
	ErrNotCatalog = errors.New("store: directory is not an exported catalog")
)

const (
	prefixShelves   = "shelves"
	prefixDocuments = "documents"
	keyIndex        = "index-shelves"
)

// Load returns the catalog source selected by cfg: the compiled-in catalog
// when no path is configured, otherwise the diskv catalog at that path.
func Load(cfg Config, log *zap.Logger) (catalog.Source, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig(nil)
		if err != nil {
			return nil, err
		}
	}
	if strings.TrimSpace(cfg.CatalogPath()) == "" {
		return catalog.Default(), nil
	}
	return Open(cfg.CatalogPath(), log)
}

// Open opens an exported catalog directory for reading.
func Open(basePath string, log *zap.Logger) (*Catalog, error) {
	if log == nil {
		log = zap.NewNop()
	}
	basePath = expandHome(basePath)
	if _, err := os.Stat(filepath.Join(basePath, prefixIndexPath())); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w at %s", ErrCatalogNotFound, basePath)
		}
		return nil, err
	}
	return &Catalog{d: newDiskv(basePath), basePath: basePath, log: log}, nil
}

// Catalog serves a catalog exported to a diskv directory. Each shelf is stored
// under shelves-<id>, each book's documents under documents-<book id>, and the
// authored shelf order under index-shelves.
type Catalog struct {
	d        *diskv.Diskv
	basePath string
	log      *zap.Logger
}

var _ catalog.Source = (*Catalog)(nil)

// BasePath is the catalog directory.
func (c *Catalog) BasePath() string { return c.basePath }

// ListShelves reads shelves in index order. Unreadable shelves are logged and skipped.
func (c *Catalog) ListShelves(_ context.Context) []catalog.Shelf {
	order, err := c.readIndex()
	if err != nil {
		c.log.Warn("read shelf index", zap.String("path", c.basePath), zap.Error(err))
		return []catalog.Shelf{}
	}
	shelves := make([]catalog.Shelf, 0, len(order))
	for _, id := range order {
		var shelf catalog.Shelf
		if err := c.readJSON(shelfKey(id), &shelf); err != nil {
			c.log.Warn("read shelf", zap.Int("shelf", id), zap.Error(err))
			continue
		}
		shelves = append(shelves, shelf)
	}
	return shelves
}

// DocumentsFor reads a book's documents. Missing or unreadable entries give an empty list.
func (c *Catalog) DocumentsFor(_ context.Context, bookID int) []catalog.Document {
	key := documentsKey(bookID)
	if !c.d.Has(key) {
		return []catalog.Document{}
	}
	var docs []catalog.Document
	if err := c.readJSON(key, &docs); err != nil {
		c.log.Warn("read documents", zap.Int("book", bookID), zap.Error(err))
		return []catalog.Document{}
	}
	if docs == nil {
		docs = []catalog.Document{}
	}
	return docs
}

func (c *Catalog) readIndex() ([]int, error) {
	var order []int
	if err := c.readJSON(keyIndex, &order); err != nil {
		return nil, err
	}
	return order, nil
}

func (c *Catalog) readJSON(key string, target any) error {
	val, err := c.d.Read(key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(val, target); err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	return nil
}

// Export writes f to basePath as a diskv catalog. basePath must be missing,
// empty, or hold a previous export; only that export's keys are replaced.
func Export(basePath string, f catalog.Fixture) error {
	if err := catalog.Validate(f); err != nil {
		return err
	}
	basePath = expandHome(basePath)
	if err := checkExportTarget(basePath); err != nil {
		return err
	}
	d := newDiskv(basePath)
	if err := eraseCatalog(d); err != nil {
		return fmt.Errorf("store: clear %s: %w", basePath, err)
	}

	order := make([]int, 0, len(f.Shelves))
	for _, shelf := range f.Shelves {
		if err := writeJSON(d, shelfKey(shelf.ID), shelf); err != nil {
			return err
		}
		order = append(order, shelf.ID)
	}
	for bookID, docs := range f.Documents {
		if err := writeJSON(d, documentsKey(bookID), docs); err != nil {
			return err
		}
	}
	return writeJSON(d, keyIndex, order)
}

func checkExportTarget(basePath string) error {
	entries, err := os.ReadDir(basePath)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("store: read %s: %w", basePath, err)
	}
	if len(entries) == 0 {
		return nil
	}
	if _, err := os.Stat(filepath.Join(basePath, prefixIndexPath())); err != nil {
		return fmt.Errorf("%w: %s is not empty", ErrNotCatalog, basePath)
	}
	return nil
}

// eraseCatalog removes the index and every shelf and document key. Files
// that do not map to a catalog key are left alone.
func eraseCatalog(d *diskv.Diskv) error {
	keys := []string{keyIndex}
	for _, prefix := range []string{prefixShelves, prefixDocuments} {
		for key := range d.KeysPrefix(prefix+"-", nil) {
			if _, err := strconv.Atoi(strings.TrimPrefix(key, prefix+"-")); err != nil {
				continue
			}
			keys = append(keys, key)
		}
	}
	for _, key := range keys {
		if err := d.Erase(key); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("erase %s: %w", key, err)
		}
	}
	return nil
}

func writeJSON(d *diskv.Diskv, key string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	if err := d.Write(key, b); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func newDiskv(basePath string) *diskv.Diskv {
	return diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	})
}

func shelfKey(id int) string {
	return prefixShelves + "-" + strconv.Itoa(id)
}

func documentsKey(bookID int) string {
	return prefixDocuments + "-" + strconv.Itoa(bookID)
}

func prefixIndexPath() string {
	pk := keyToPathTransform(keyIndex)
	return filepath.Join(append(pk.Path, pk.FileName)...)
}

// keyToPathTransform maps "shelves-3" to shelves/3. Negative ids keep their
// sign in the file name.
func keyToPathTransform(s string) *diskv.PathKey {
	prefix, name, ok := strings.Cut(s, "-")
	if !ok {
		return &diskv.PathKey{FileName: s}
	}
	return &diskv.PathKey{
		Path:     []string{prefix},
		FileName: name,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) == 0 {
		return pathKey.FileName
	}
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

func expandHome(path string) string {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return path
	}
	return expanded
}
