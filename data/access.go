package data

import "strings"

// AccessMode represents the flags used to open a file.
// These modes control how files are opened (read, write, append, etc.).
type AccessMode int

// File access mode constants.
// These can be combined using bitwise OR.
const (
	AccessModeRead   AccessMode = 1 << iota // O_RDONLY: open for reading
	AccessModeWrite                         // O_WRONLY: open for writing
	AccessModeAppend                        // O_APPEND: append to file
	AccessModeCreate                        // O_CREATE: create if not exists
	AccessModeTrunc                         // O_TRUNC:  truncate on open
	AccessModeExcl                          // O_EXCL:   exclusive creation (with CREATE)
	AccessModeSync                          // O_SYNC:   synchronous I/O
)

// Common combinations of access flags.
const (
	// ModeOpen opens an existing file for reading.
	ModeOpen = AccessModeRead
	// ModeCreate creates a file or truncates an existing one.
	ModeCreate = AccessModeWrite | AccessModeCreate | AccessModeTrunc
	// ModeCreateNew creates a file and fails if it already exists.
	ModeCreateNew = AccessModeWrite | AccessModeCreate | AccessModeExcl
	// ModeOpenOrCreate opens a file for reading and writing, creating it if missing.
	ModeOpenOrCreate = AccessModeRead | AccessModeWrite | AccessModeCreate
)

// IsReadOnly checks if the mode only allows reading.
func (m AccessMode) IsReadOnly() bool {
	return m&AccessModeRead != 0 && m&AccessModeWrite == 0
}

// IsWriteOnly checks if the mode only allows writing.
func (m AccessMode) IsWriteOnly() bool {
	return m&AccessModeWrite != 0 && m&AccessModeRead == 0
}

// IsReadWrite checks if the mode allows both reading and writing.
func (m AccessMode) IsReadWrite() bool {
	return m&AccessModeRead != 0 && m&AccessModeWrite != 0
}

// CanRead checks if the mode includes read access.
func (m AccessMode) CanRead() bool {
	return m&AccessModeRead != 0
}

// CanWrite checks if the mode includes write access.
func (m AccessMode) CanWrite() bool {
	return m&AccessModeWrite != 0
}

// Mutates reports whether opening with m could change the file or its existence.
func (m AccessMode) Mutates() bool {
	return m&(AccessModeWrite|AccessModeAppend|AccessModeCreate|AccessModeTrunc|AccessModeExcl) != 0
}

// HasAppend checks if the mode includes append.
func (m AccessMode) HasAppend() bool {
	return m&AccessModeAppend != 0
}

// HasCreate checks if the mode includes create.
func (m AccessMode) HasCreate() bool {
	return m&AccessModeCreate != 0
}

// HasTrunc checks if the mode includes truncate.
func (m AccessMode) HasTrunc() bool {
	return m&AccessModeTrunc != 0
}

// HasExcl checks if the mode includes exclusive creation.
func (m AccessMode) HasExcl() bool {
	return m&AccessModeExcl != 0
}

// Valid rejects flag combinations that can never be satisfied.
func (m AccessMode) Valid() bool {
	if m&(AccessModeRead|AccessModeWrite) == 0 {
		return false
	}
	if m.HasExcl() && !m.HasCreate() {
		return false
	}
	if (m.HasTrunc() || m.HasAppend()) && !m.CanWrite() {
		return false
	}

	return !(m.HasTrunc() && m.HasAppend())
}

func (m AccessMode) String() string {
	names := []string{}
	for _, flag := range []struct {
		mode AccessMode
		name string
	}{
		{AccessModeRead, "read"},
		{AccessModeWrite, "write"},
		{AccessModeAppend, "append"},
		{AccessModeCreate, "create"},
		{AccessModeTrunc, "trunc"},
		{AccessModeExcl, "excl"},
		{AccessModeSync, "sync"},
	} {
		if m&flag.mode != 0 {
			names = append(names, flag.name)
		}
	}

	if len(names) == 0 {
		return "none"
	}

	return strings.Join(names, "|")
}
