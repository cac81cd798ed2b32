package data

import (
	"strings"
	"time"
)

// FileAttributes describes the attribute bits reported for a file or directory.
type FileAttributes uint32

const (
	AttributeReadOnly FileAttributes = 1 << iota
	AttributeHidden
	AttributeSystem
	AttributeDirectory
	AttributeArchive
	AttributeNormal
	AttributeCompressed
)

// DefaultTime is returned for timestamps a backing store does not record.
var DefaultTime = time.Date(1601, time.January, 1, 0, 0, 0, 0, time.UTC)

// Has reports whether all bits of flag are set.
func (a FileAttributes) Has(flag FileAttributes) bool {
	return a&flag == flag
}

func (a FileAttributes) String() string {
	const str = "rhsdanc"
	if a == 0 {
		return "-"
	}

	var b strings.Builder
	for i, c := range str {
		if a&(1<<uint(i)) != 0 {
			b.WriteRune(c)
		} else {
			b.WriteByte('-')
		}
	}

	return b.String()
}
