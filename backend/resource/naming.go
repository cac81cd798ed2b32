package resource

import (
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// InvariantLocale names the directory of resources without a locale.
const InvariantLocale = "Invariant"

// sniffLength is the number of leading bytes inspected for resources of an
// unknown type.
const sniffLength = 512

var typeExtensions = map[string]string{
	"ACCELERATOR":  ".bin",
	"BITMAP":       ".bmp",
	"CURSOR":       ".cur",
	"DIALOG":       ".dlg",
	"FONT":         ".fnt",
	"GROUP_CURSOR": ".cur",
	"GROUP_ICON":   ".ico",
	"HTML":         ".html",
	"ICON":         ".ico",
	"MANIFEST":     ".manifest",
	"MENU":         ".menu",
	"MESSAGETABLE": ".mc",
	"STRING":       ".txt",
	"VERSION":      ".ver",
}

// localeName returns the directory name for locale, or the locale itself if
// it is not a valid BCP 47 tag.
func localeName(namer display.Namer, locale string) string {
	if locale == "" {
		return InvariantLocale
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return locale
	}

	if name := namer.Name(tag); name != "" {
		return name
	}

	return locale
}

// extension derives the file extension for a resource. Known types map
// directly; other types are sniffed from head and fall back to the
// lowercased type name.
func extension(typ string, head []byte) string {
	if ext, ok := typeExtensions[strings.ToUpper(typ)]; ok {
		return ext
	}

	if len(head) > 0 {
		if ext := mimetype.Detect(head).Extension(); ext != "" {
			return ext
		}
	}

	return "." + strings.ToLower(typ)
}

// sanitize turns segment into a single path segment that survives cleaning.
// Separators become underscores, as do segments made only of dots.
func sanitize(segment string) string {
	segment = strings.NewReplacer("/", "_", "\\", "_").Replace(segment)
	if strings.Trim(segment, ".") == "" {
		return strings.Repeat("_", max(len(segment), 1))
	}

	return segment
}
