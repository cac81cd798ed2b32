package data

// Item is the transient projection produced while enumerating a filesystem.
type Item struct {
	Path        string `json:"path"`
	IsDirectory bool   `json:"is_directory"`
}

// Name returns the last segment of the item path.
func (i Item) Name() string {
	return Name(i.Path)
}

// Predicate decides whether an enumerated item is yielded.
// A nil Predicate yields files only.
type Predicate func(item Item) bool

// SearchOption controls whether enumeration descends into subdirectories.
type SearchOption int

const (
	TopDirectoryOnly SearchOption = iota
	AllDirectories
)

// SearchTarget selects which kind of items are returned by an enumeration.
type SearchTarget int

const (
	TargetBoth SearchTarget = iota
	TargetFile
	TargetDirectory
)

// Accepts reports whether the target includes items of the given kind.
func (t SearchTarget) Accepts(isDirectory bool) bool {
	switch t {
	case TargetFile:
		return !isDirectory
	case TargetDirectory:
		return isDirectory
	default:
		return true
	}
}
