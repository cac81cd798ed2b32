package backend

import (
	"bytes"
	"io"

	"github.com/mwantia/flatvfs/data/errors"
)

// ReadOnlyFile exposes a blob as a read-only File.
type ReadOnlyFile struct {
	name   string
	rs     io.ReadSeeker
	size   int64
	closer io.Closer
	closed bool
}

// NewReadOnlyFile wraps rs; closer, if set, is closed together with the file.
func NewReadOnlyFile(name string, rs io.ReadSeeker, size int64, closer io.Closer) *ReadOnlyFile {
	return &ReadOnlyFile{
		name:   name,
		rs:     rs,
		size:   size,
		closer: closer,
	}
}

func NewReadOnlyBytes(name string, content []byte) *ReadOnlyFile {
	return NewReadOnlyFile(name, bytes.NewReader(content), int64(len(content)), nil)
}

func (f *ReadOnlyFile) Read(p []byte) (int, error) {
	if f.closed {
		return 0, errors.Closed(f.name)
	}

	return f.rs.Read(p)
}

func (f *ReadOnlyFile) Write(p []byte) (int, error) {
	return 0, errors.ReadOnly("write", f.name)
}

func (f *ReadOnlyFile) Seek(offset int64, whence int) (int64, error) {
	if f.closed {
		return 0, errors.Closed(f.name)
	}

	return f.rs.Seek(offset, whence)
}

func (f *ReadOnlyFile) Length() int64 {
	return f.size
}

func (f *ReadOnlyFile) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true

	if f.closer != nil {
		return f.closer.Close()
	}

	return nil
}

// BufferFile is an in-memory read/write File. The commit function receives
// the final content when a written file is closed.
type BufferFile struct {
	name    string
	buf     []byte
	offset  int64
	append  bool
	written bool
	closed  bool
	commit  func(content []byte) error
}

func NewBufferFile(name string, content []byte, commit func(content []byte) error) *BufferFile {
	buf := make([]byte, len(content))
	copy(buf, content)

	return &BufferFile{
		name:   name,
		buf:    buf,
		commit: commit,
	}
}

// SetAppend makes every write land at the end of the content.
func (f *BufferFile) SetAppend() {
	f.append = true
	f.offset = int64(len(f.buf))
}

// MarkWritten forces a commit on Close even if nothing was written.
func (f *BufferFile) MarkWritten() {
	f.written = true
}

func (f *BufferFile) Read(p []byte) (int, error) {
	if f.closed {
		return 0, errors.Closed(f.name)
	}

	if f.offset >= int64(len(f.buf)) {
		return 0, io.EOF
	}

	n := copy(p, f.buf[f.offset:])
	f.offset += int64(n)

	return n, nil
}

func (f *BufferFile) Write(p []byte) (int, error) {
	if f.closed {
		return 0, errors.Closed(f.name)
	}
	if f.commit == nil {
		return 0, errors.Permission("write", f.name)
	}

	if f.append {
		f.offset = int64(len(f.buf))
	}

	end := f.offset + int64(len(p))
	if end > int64(len(f.buf)) {
		grown := make([]byte, end)
		copy(grown, f.buf)
		f.buf = grown
	}

	n := copy(f.buf[f.offset:], p)
	f.offset += int64(n)
	f.written = true

	return n, nil
}

func (f *BufferFile) Seek(offset int64, whence int) (int64, error) {
	if f.closed {
		return 0, errors.Closed(f.name)
	}

	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = f.offset + offset
	case io.SeekEnd:
		abs = int64(len(f.buf)) + offset
	default:
		return 0, errors.Invalid("invalid whence %d", whence)
	}

	if abs < 0 {
		return 0, errors.Invalid("negative position %d", abs)
	}

	f.offset = abs
	return abs, nil
}

func (f *BufferFile) Length() int64 {
	return int64(len(f.buf))
}

func (f *BufferFile) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true

	if !f.written || f.commit == nil {
		return nil
	}

	return f.commit(f.buf)
}
