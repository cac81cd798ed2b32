package archive

import (
	"io"
	"time"

	"github.com/klauspost/compress/zip"
	"github.com/klauspost/compress/zstd"
)

// Method identifies the compression applied to an archive entry.
type Method uint16

const (
	Store   Method = Method(zip.Store)
	Deflate Method = Method(zip.Deflate)
	Zstd    Method = zstd.ZipMethodWinZip
)

func (m Method) Valid() bool {
	return m == Store || m == Deflate || m == Zstd
}

func (m Method) String() string {
	switch m {
	case Store:
		return "store"
	case Deflate:
		return "deflate"
	case Zstd:
		return "zstd"
	default:
		return "unknown"
	}
}

// ParseMethod maps a method name onto its Method.
func ParseMethod(name string) (Method, bool) {
	for _, m := range []Method{Store, Deflate, Zstd} {
		if m.String() == name {
			return m, true
		}
	}

	return 0, false
}

// Writer streams entries into a new zip archive.
type Writer struct {
	zw     *zip.Writer
	method Method
}

func NewWriter(w io.Writer, method Method) *Writer {
	zw := zip.NewWriter(w)
	zw.RegisterCompressor(uint16(Zstd), zstd.ZipCompressor())

	return &Writer{
		zw:     zw,
		method: method,
	}
}

// Create adds an entry and returns a writer for its content. The writer is
// valid until the next call to Create or Close.
func (w *Writer) Create(name string, modified time.Time) (io.Writer, error) {
	return w.zw.CreateHeader(&zip.FileHeader{
		Name:     name,
		Method:   uint16(w.method),
		Modified: modified,
	})
}

// Close writes the central directory. It does not close the underlying writer.
func (w *Writer) Close() error {
	return w.zw.Close()
}

func registerDecompressors(r *zip.Reader) {
	r.RegisterDecompressor(uint16(Zstd), zstd.ZipDecompressor())
}
