package errors

import (
	"context"
	"errors"
	"testing"
)

func TestConstructors_WrapSentinels(t *testing.T) {
	tests := map[string]struct {
		err      error
		sentinel error
	}{
		"invalid-path":       {InvalidPath(nil, "a/b"), ErrInvalidPath},
		"file-not-found":     {FileNotFound("/a"), ErrNotExist},
		"dir-not-found":      {DirectoryNotFound("/a"), ErrNotExist},
		"already-exists":     {AlreadyExists("/a"), ErrExist},
		"destination-exists": {DestinationExists("/a"), ErrExist},
		"read-only":          {ReadOnly("delete file", "/a"), ErrReadOnly},
		"unsupported":        {Unsupported("watch"), ErrUnsupported},
		"closed":             {Closed("archive"), ErrClosed},
		"cancelled":          {Cancelled(context.Canceled), ErrCancelled},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if !Is(tt.err, tt.sentinel) {
				t.Errorf("Expected %v to wrap %v", tt.err, tt.sentinel)
			}
		})
	}
}

func TestCancelled_KeepsContextError(t *testing.T) {
	err := Cancelled(context.DeadlineExceeded)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Expected context error to be preserved, got %v", err)
	}
}

func TestErrors_Aggregate(t *testing.T) {
	errs := Errors{}
	if errs.Errors() != nil {
		t.Fatal("Expected nil for empty aggregate")
	}

	errs.Add(nil)
	errs.Add(FileNotFound("/a"))
	errs.Add(ReadOnly("move", "/b"))

	if errs.Len() != 2 {
		t.Fatalf("Expected 2 errors, got %d", errs.Len())
	}

	err := errs.Errors()
	if !Is(err, ErrNotExist) || !Is(err, ErrReadOnly) {
		t.Errorf("Expected joined error to match both sentinels, got %v", err)
	}
}
