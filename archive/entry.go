package archive

import (
	"io"
	"time"

	"github.com/klauspost/compress/zip"
	"github.com/mwantia/flatvfs/data/errors"
)

// Entry is a single file stored in an archive.
type Entry struct {
	archive  *Archive
	name     string
	seq      uint64
	modified time.Time
	file     *zip.File
	content  []byte
	loaded   bool
}

func (e *Entry) Name() string {
	return e.name
}

// Size returns the uncompressed size of the entry.
func (e *Entry) Size() int64 {
	if e.loaded {
		return int64(len(e.content))
	}

	return int64(e.file.UncompressedSize64)
}

func (e *Entry) Modified() time.Time {
	return e.modified
}

// Delete removes this entry from its archive.
func (e *Entry) Delete() error {
	return e.archive.remove(e)
}

func (e *Entry) SetModified(t time.Time) error {
	if err := e.archive.checkClosed(); err != nil {
		return err
	}

	e.modified = t
	e.archive.dirty = true

	return nil
}

// Open returns a read/write stream over the entry content. Writes become
// part of the entry when the stream is closed.
func (e *Entry) Open() (*Stream, error) {
	if err := e.archive.checkClosed(); err != nil {
		return nil, err
	}

	if err := e.load(); err != nil {
		return nil, err
	}

	buf := make([]byte, len(e.content))
	copy(buf, e.content)

	return &Stream{
		entry: e,
		buf:   buf,
	}, nil
}

func (e *Entry) load() error {
	if e.loaded {
		return nil
	}

	rc, err := e.file.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return err
	}

	e.content = content
	e.loaded = true
	e.file = nil

	return nil
}

func (e *Entry) writeTo(zw *Writer) error {
	w, err := zw.Create(e.name, e.modified)
	if err != nil {
		return err
	}

	if e.loaded {
		_, err = w.Write(e.content)
		return err
	}

	rc, err := e.file.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	_, err = io.Copy(w, rc)
	return err
}

// Stream is an open handle on an entry. It performs no locking.
type Stream struct {
	entry   *Entry
	buf     []byte
	offset  int64
	written bool
	closed  bool
}

func (s *Stream) check() error {
	if s.closed {
		return errors.Closed("stream " + s.entry.name)
	}

	return s.entry.archive.checkClosed()
}

func (s *Stream) Read(p []byte) (int, error) {
	if err := s.check(); err != nil {
		return 0, err
	}

	if s.offset >= int64(len(s.buf)) {
		return 0, io.EOF
	}

	n := copy(p, s.buf[s.offset:])
	s.offset += int64(n)

	return n, nil
}

func (s *Stream) Write(p []byte) (int, error) {
	if err := s.check(); err != nil {
		return 0, err
	}

	end := s.offset + int64(len(p))
	if end > int64(len(s.buf)) {
		grown := make([]byte, end)
		copy(grown, s.buf)
		s.buf = grown
	}

	n := copy(s.buf[s.offset:], p)
	s.offset += int64(n)
	s.written = true

	return n, nil
}

func (s *Stream) Seek(offset int64, whence int) (int64, error) {
	if err := s.check(); err != nil {
		return 0, err
	}

	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = s.offset + offset
	case io.SeekEnd:
		abs = int64(len(s.buf)) + offset
	default:
		return 0, errors.Invalid("invalid whence %d", whence)
	}

	if abs < 0 {
		return 0, errors.Invalid("negative position %d", abs)
	}

	s.offset = abs
	return abs, nil
}

// Truncate changes the size of the stream content.
func (s *Stream) Truncate(size int64) error {
	if err := s.check(); err != nil {
		return err
	}

	if size < 0 {
		return errors.Invalid("negative size %d", size)
	}

	if size <= int64(len(s.buf)) {
		s.buf = s.buf[:size]
	} else {
		grown := make([]byte, size)
		copy(grown, s.buf)
		s.buf = grown
	}

	s.written = true
	return nil
}

func (s *Stream) Length() int64 {
	return int64(len(s.buf))
}

// Close commits written content to the entry. Closing twice is a no-op.
func (s *Stream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	if !s.written {
		return nil
	}

	if err := s.entry.archive.checkClosed(); err != nil {
		return err
	}

	s.entry.content = s.buf
	s.entry.modified = time.Now()
	s.entry.archive.dirty = true

	return nil
}
