// Package discovery builds a key-to-type mapping by scanning a tree of Go
// source units for concrete types that implement a capability and carry a
// metadata tag naming their dispatch key.
//
// The metadata tag is a struct tag on a marker field of the type:
//
//	type LocalStrategy struct {
//	    _ struct{} `trip:"local"`
//	}
//
// Scanning is best effort. Each unit is parsed only for its package clause
// and type declarations; names are loaded through a Catalog, then inspected
// with reflection. Units that cannot be read, parsed, loaded, or inspected
// are skipped without failing the scan. Reflection stays inside this
// package: callers receive a plain map of registry.TypeRef values.
package discovery

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/jsamuelsen11/fleet-dispatch/internal/platform/registry"
)

// ErrNoRoot is returned by Mapping when no root was ever scanned and no
// default root is configured.
var ErrNoRoot = errors.New("discovery: no scan root configured")

// Option configures a Scanner.
type Option func(*options)

type options struct {
	defaultRoot fs.FS
	logger      *slog.Logger
}

// WithDefaultRoot sets the tree scanned by Mapping when no explicit root
// has been supplied.
func WithDefaultRoot(fsys fs.FS) Option {
	return func(o *options) {
		o.defaultRoot = fsys
	}
}

// WithLogger sets the scanner logger. Defaults to a discarding logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Result summarizes one scan.
type Result struct {
	Units   int
	Skipped int
	Found   int
}

// Scanner discovers implementations of capability C.
type Scanner[C any] struct {
	catalog    *Catalog
	tagKey     string
	capability reflect.Type
	opts       options

	mu       sync.RWMutex
	mapping  map[string]registry.TypeRef
	lastRoot fs.FS
	last     Result
}

// New creates a scanner that loads types from catalog and reads the
// dispatch key from the struct tag named tagKey.
func New[C any](catalog *Catalog, tagKey string, opts ...Option) *Scanner[C] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	o.logger = o.logger.With(slog.String("discovery", tagKey))

	return &Scanner[C]{
		catalog:    catalog,
		tagKey:     tagKey,
		capability: reflect.TypeFor[C](),
		opts:       o,
		mapping:    make(map[string]registry.TypeRef),
	}
}

// ScanDir scans the directory tree rooted at dir.
func (s *Scanner[C]) ScanDir(dir string) (Result, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return Result{}, fmt.Errorf("scanning %s: %w", dir, err)
	}
	if !info.IsDir() {
		return Result{}, fmt.Errorf("scanning %s: not a directory", dir)
	}
	return s.Scan(os.DirFS(dir))
}

// Scan walks fsys in lexical order and replaces the current mapping with
// what it finds. Within one scan a later unit tagging the same key as an
// earlier one wins.
func (s *Scanner[C]) Scan(fsys fs.FS) (Result, error) {
	found := make(map[string]registry.TypeRef)
	var res Result

	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable directory: skip it, keep walking.
			res.Skipped++
			s.opts.logger.Debug("skipping unreadable path", slog.String("path", path), slog.Any("error", err))
			if d != nil && d.IsDir() && path != "." {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !isSourceUnit(path) {
			return nil
		}

		res.Units++
		if !s.scanUnit(fsys, path, found) {
			res.Skipped++
		}
		return nil
	})
	if err != nil {
		return res, fmt.Errorf("walking scan root: %w", err)
	}
	res.Found = len(found)

	s.mu.Lock()
	s.mapping = found
	s.lastRoot = fsys
	s.last = res
	s.mu.Unlock()

	s.opts.logger.Info("discovery scan complete",
		slog.Int("units", res.Units),
		slog.Int("skipped", res.Skipped),
		slog.Int("found", res.Found),
	)
	return res, nil
}

// Mapping returns a copy of the discovered mapping. If nothing has been
// discovered yet, it first rescans the last explicit root, or the default
// root when no explicit root was ever supplied.
func (s *Scanner[C]) Mapping() (map[string]registry.TypeRef, error) {
	s.mu.RLock()
	empty := len(s.mapping) == 0
	root := s.lastRoot
	s.mu.RUnlock()

	if empty {
		if root == nil {
			root = s.opts.defaultRoot
		}
		if root == nil {
			return nil, ErrNoRoot
		}
		if _, err := s.Scan(root); err != nil {
			return nil, err
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.mapping), nil
}

// Lookup returns the type discovered for key, scanning lazily like Mapping.
func (s *Scanner[C]) Lookup(key string) (registry.TypeRef, bool) {
	m, err := s.Mapping()
	if err != nil {
		return registry.TypeRef{}, false
	}
	ref, ok := m[strings.ToLower(key)]
	return ref, ok
}

// Keys returns the discovered keys in sorted order.
func (s *Scanner[C]) Keys() ([]string, error) {
	m, err := s.Mapping()
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// LastResult returns the summary of the most recent scan.
func (s *Scanner[C]) LastResult() Result {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.last
}

// Bootstrapper returns a registry bootstrapper that registers every
// discovered type under its key, so dispatchers resolve discovered types
// through an ordinary registry.
func (s *Scanner[C]) Bootstrapper() registry.Bootstrapper {
	return func(reg registry.Registrar) error {
		m, err := s.Mapping()
		if err != nil {
			return err
		}
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		var errs []error
		for _, k := range keys {
			if err := reg.Register(k, m[k]); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	}
}

// Name implements ports.HealthChecker.
func (s *Scanner[C]) Name() string {
	return s.tagKey + "-discovery"
}

// HealthCheck implements ports.HealthChecker. It fails when discovery finds
// nothing.
func (s *Scanner[C]) HealthCheck(_ context.Context) error {
	m, err := s.Mapping()
	if err != nil {
		return err
	}
	if len(m) == 0 {
		return fmt.Errorf("discovery: no %q implementations found", s.tagKey)
	}
	return nil
}

// scanUnit records every tagged implementation declared in the unit at
// path. It reports false when the unit could not be read, parsed, or
// inspected. Staged entries from a unit that fails midway are discarded.
func (s *Scanner[C]) scanUnit(fsys fs.FS, path string, found map[string]registry.TypeRef) (ok bool) {
	defer func() {
		if v := recover(); v != nil {
			s.opts.logger.Debug("skipping unit after panic",
				slog.String("path", path),
				slog.String("panic", fmt.Sprint(v)),
			)
			ok = false
		}
	}()

	names, err := declarations(fsys, path)
	if errors.Is(err, errNoDeclaration) {
		return true
	}
	if err != nil {
		s.opts.logger.Debug("skipping unit", slog.String("path", path), slog.Any("error", err))
		return false
	}

	unit := make(map[string]registry.TypeRef)

	for _, name := range names {
		ref, loaded := s.catalog.Lookup(name)
		if !loaded {
			continue
		}
		key, tagged := s.inspect(ref.Type())
		if !tagged {
			continue
		}
		unit[key] = ref
	}

	for key, ref := range unit {
		if prev, dup := found[key]; dup {
			s.opts.logger.Debug("discovered key replaced",
				slog.String("key", key),
				slog.String("previous", prev.String()),
				slog.String("type", ref.String()),
			)
		}
		found[key] = ref
	}
	return true
}

// inspect returns the lowercased dispatch key of t when t is a concrete
// struct implementing the capability and carrying the metadata tag.
func (s *Scanner[C]) inspect(t reflect.Type) (string, bool) {
	if t.Kind() != reflect.Struct {
		return "", false
	}
	if !reflect.PointerTo(t).Implements(s.capability) {
		return "", false
	}
	for i := range t.NumField() {
		if v, ok := t.Field(i).Tag.Lookup(s.tagKey); ok {
			key := strings.ToLower(strings.TrimSpace(v))
			return key, key != ""
		}
	}
	return "", false
}
