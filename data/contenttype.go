package data

import (
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// ContentTypeStream is reported for files whose type cannot be determined.
const ContentTypeStream = "application/octet-stream"

// extensionToMIME maps file extensions to MIME types
var extensionToMIME = map[string]string{
	".txt":      "text/plain",
	".html":     "text/html",
	".css":      "text/css",
	".js":       "text/javascript",
	".csv":      "text/csv",
	".md":       "text/markdown",
	".json":     "application/json",
	".xml":      "application/xml",
	".manifest": "application/xml",
	".jpg":      "image/jpeg",
	".jpeg":     "image/jpeg",
	".png":      "image/png",
	".gif":      "image/gif",
	".bmp":      "image/bmp",
	".ico":      "image/x-icon",
	".cur":      "image/x-icon",
	".svg":      "image/svg+xml",
	".pdf":      "application/pdf",
	".zip":      "application/zip",
	".gz":       "application/gzip",
	".tar":      "application/x-tar",
}

// ContentType returns the MIME type for the extension of p. Unknown
// extensions are resolved by sniffing head, if given.
func ContentType(p string, head []byte) string {
	if mime, exists := extensionToMIME[strings.ToLower(Extension(p))]; exists {
		return mime
	}

	if len(head) == 0 {
		return ContentTypeStream
	}

	return mimetype.Detect(head).String()
}
