package errors

func InvalidPath(err error, path string) error {
	return newError(ErrInvalidPath, err, "'%s'", path)
}

func FileNotFound(path string) error {
	return newError(ErrNotExist, nil, "file '%s'", path)
}

func DirectoryNotFound(path string) error {
	return newError(ErrNotExist, nil, "directory '%s'", path)
}

func PathNotFound(path string) error {
	return newError(ErrNotExist, nil, "path '%s'", path)
}

func AlreadyExists(path string) error {
	return newError(ErrExist, nil, "'%s'", path)
}

func DestinationExists(path string) error {
	return newError(ErrExist, nil, "destination '%s'", path)
}

func IsDirectory(path string) error {
	return newError(ErrIsDirectory, nil, "'%s'", path)
}

func DirectoryNotEmpty(path string) error {
	return newError(ErrInvalid, nil, "directory '%s' is not empty", path)
}

func ReadOnly(op, path string) error {
	return newError(ErrReadOnly, nil, "%s '%s'", op, path)
}

func Unsupported(op string) error {
	return newError(ErrUnsupported, nil, "%s", op)
}

func Permission(op, path string) error {
	return newError(ErrPermission, nil, "%s '%s'", op, path)
}

func Closed(name string) error {
	return newError(ErrClosed, nil, "%s", name)
}

// Cancelled wraps the context error that aborted an operation.
func Cancelled(err error) error {
	return newError(ErrCancelled, err, "aborted")
}

func Invalid(format string, args ...any) error {
	return newError(ErrInvalid, nil, format, args...)
}
