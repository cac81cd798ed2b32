// Package archive holds a zip container as an editable table of entries.
// Entry content is decompressed lazily from the owned zip handle; changes
// are committed to disk by Flush or Close.
package archive

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zip"
	"github.com/mwantia/flatvfs/data/errors"
	"github.com/mwantia/flatvfs/log"
	"github.com/tidwall/btree"
)

// Archive is an editable zip container. It performs no locking.
type Archive struct {
	log     *log.Logger
	path    string
	method  Method
	closer  io.Closer
	entries *btree.BTreeG[*Entry]
	seq     uint64
	dirty   bool
	closed  bool
}

func newArchive(path string, options *Options) *Archive {
	return &Archive{
		log:     options.Logger,
		path:    path,
		method:  options.Method,
		entries: btree.NewBTreeG(lessEntry),
	}
}

// lessEntry orders entries by name, then by insertion. Names stored more
// than once keep their archive order.
func lessEntry(a, b *Entry) bool {
	if a.name != b.name {
		return a.name < b.name
	}

	return a.seq < b.seq
}

func (a *Archive) insert(entry *Entry) {
	a.seq++
	entry.seq = a.seq
	a.entries.Set(entry)
}

// lookup returns every entry stored under name.
func (a *Archive) lookup(name string) []*Entry {
	var found []*Entry
	a.entries.Ascend(&Entry{name: name}, func(entry *Entry) bool {
		if entry.name != name {
			return false
		}
		found = append(found, entry)
		return true
	})

	return found
}

func parseOptions(opts []Option) (*Options, error) {
	options := newDefaultOptions()
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}

	return options, nil
}

// New creates an empty archive that lives only in memory.
func New(opts ...Option) (*Archive, error) {
	options, err := parseOptions(opts)
	if err != nil {
		return nil, err
	}

	return newArchive("", options), nil
}

// Create starts a new archive that will be written to path on Flush or Close.
func Create(path string, opts ...Option) (*Archive, error) {
	options, err := parseOptions(opts)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); err == nil && !options.Overwrite {
		return nil, errors.AlreadyExists(path)
	}

	a := newArchive(path, options)
	a.dirty = true

	a.log.Debug("Create: new archive at %s", path)
	return a, nil
}

// Open loads the archive at path. The file stays open until Close.
func Open(path string, opts ...Option) (*Archive, error) {
	options, err := parseOptions(opts)
	if err != nil {
		return nil, err
	}

	rc, err := zip.OpenReader(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errors.FileNotFound(path)
		}
		return nil, err
	}

	a := newArchive(path, options)
	a.closer = rc
	a.load(&rc.Reader)

	a.log.Debug("Open: loaded %d entries from %s", a.entries.Len(), path)
	return a, nil
}

// Read loads an archive from r. Changes can only be persisted with WriteTo.
func Read(r io.ReaderAt, size int64, opts ...Option) (*Archive, error) {
	options, err := parseOptions(opts)
	if err != nil {
		return nil, err
	}

	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, err
	}

	a := newArchive("", options)
	a.load(zr)

	return a, nil
}

// load registers every file entry, including repeated names. Directory
// markers carry no content and are skipped, since directories are implied
// by entry names.
func (a *Archive) load(zr *zip.Reader) {
	registerDecompressors(zr)

	for _, f := range zr.File {
		if f.Name == "" || strings.HasSuffix(f.Name, "/") {
			continue
		}

		a.insert(&Entry{
			archive:  a,
			name:     f.Name,
			modified: f.Modified,
			file:     f,
		})
	}
}

// Path returns the file the archive is persisted to, or an empty string.
func (a *Archive) Path() string {
	return a.path
}

func (a *Archive) Method() Method {
	return a.method
}

func (a *Archive) checkClosed() error {
	if a.closed {
		return errors.Closed("archive")
	}

	return nil
}

// Entries returns all entries ordered by name. Repeated names are returned
// once per entry.
func (a *Archive) Entries() ([]*Entry, error) {
	if err := a.checkClosed(); err != nil {
		return nil, err
	}

	entries := make([]*Entry, 0, a.entries.Len())
	a.entries.Scan(func(entry *Entry) bool {
		entries = append(entries, entry)
		return true
	})

	return entries, nil
}

// Len returns the number of entries.
func (a *Archive) Len() int {
	return a.entries.Len()
}

// Entry returns the entry stored under name. A name stored more than once
// is ambiguous and reported as not found; use Entries and Entry.Delete to
// address such entries.
func (a *Archive) Entry(name string) (*Entry, error) {
	if err := a.checkClosed(); err != nil {
		return nil, err
	}

	found := a.lookup(name)
	if len(found) != 1 {
		return nil, errors.FileNotFound(name)
	}

	return found[0], nil
}

// CreateEntry adds an empty entry. Names must be non-empty and must not
// denote a directory.
func (a *Archive) CreateEntry(name string) (*Entry, error) {
	if err := a.checkClosed(); err != nil {
		return nil, err
	}

	if name == "" || strings.HasSuffix(name, "/") {
		return nil, errors.InvalidPath(nil, name)
	}

	if len(a.lookup(name)) > 0 {
		return nil, errors.AlreadyExists(name)
	}

	entry := &Entry{
		archive:  a,
		name:     name,
		modified: time.Now(),
		loaded:   true,
		content:  []byte{},
	}

	a.insert(entry)
	a.dirty = true

	return entry, nil
}

// DeleteEntry removes the entry stored under name. Like Entry, it does not
// resolve names stored more than once.
func (a *Archive) DeleteEntry(name string) error {
	entry, err := a.Entry(name)
	if err != nil {
		return err
	}

	return entry.Delete()
}

func (a *Archive) remove(entry *Entry) error {
	if err := a.checkClosed(); err != nil {
		return err
	}

	if _, deleted := a.entries.Delete(entry); !deleted {
		return errors.FileNotFound(entry.name)
	}

	a.dirty = true
	return nil
}

// WriteTo serializes all entries as a zip archive.
func (a *Archive) WriteTo(w io.Writer) (int64, error) {
	if err := a.checkClosed(); err != nil {
		return 0, err
	}

	cw := &countingWriter{w: w}
	zw := NewWriter(cw, a.method)

	var err error
	a.entries.Scan(func(entry *Entry) bool {
		err = entry.writeTo(zw)
		return err == nil
	})
	if err != nil {
		return cw.n, err
	}

	if err := zw.Close(); err != nil {
		return cw.n, err
	}

	return cw.n, nil
}

// Flush commits pending changes to the archive file. The content is written
// to a temporary file next to the target and renamed over it.
func (a *Archive) Flush() error {
	if err := a.checkClosed(); err != nil {
		return err
	}

	if a.path == "" || !a.dirty {
		return nil
	}

	if err := a.materialize(); err != nil {
		return err
	}

	dir, base := filepath.Split(a.path)
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", base, uuid.NewString()))

	if err := a.writeFile(tmp); err != nil {
		os.Remove(tmp)
		return err
	}

	if err := os.Rename(tmp, a.path); err != nil {
		os.Remove(tmp)
		return err
	}

	a.dirty = false
	a.log.Debug("Flush: wrote %d entries to %s", a.entries.Len(), a.path)

	return nil
}

func (a *Archive) writeFile(name string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}

	if _, err := a.WriteTo(f); err != nil {
		f.Close()
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// materialize decompresses every entry and releases the source handle, so
// the source file can be replaced.
func (a *Archive) materialize() error {
	if a.closer == nil {
		return nil
	}

	var err error
	a.entries.Scan(func(entry *Entry) bool {
		err = entry.load()
		return err == nil
	})
	if err != nil {
		return err
	}

	closer := a.closer
	a.closer = nil

	return closer.Close()
}

// Close commits pending changes and releases the archive handle.
// Closing an already closed archive is a no-op.
func (a *Archive) Close() error {
	if a.closed {
		return nil
	}

	errs := errors.Errors{}
	errs.Add(a.Flush())

	if a.closer != nil {
		errs.Add(a.closer.Close())
		a.closer = nil
	}

	a.entries.Clear()
	a.closed = true

	return errs.Errors()
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
