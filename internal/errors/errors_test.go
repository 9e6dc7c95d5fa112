package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	// Test creating a new error
	err := New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())

	// Test creating a new formatted error
	err = Newf("formatted %s", "error")
	assert.NotNil(t, err)
	assert.Equal(t, "formatted error", err.Error())

	// Check that the error is an ApplicationError
	var appErr *ApplicationError
	assert.True(t, As(err, &appErr))
	assert.Equal(t, Unknown, appErr.Kind())
}

func TestWrapping(t *testing.T) {
	origErr := New("original error")
	wrappedErr := Wrap(origErr, "wrapped")
	assert.NotNil(t, wrappedErr)
	assert.Equal(t, "wrapped: original error", wrappedErr.Error())

	// Test unwrapping
	unwrappedErr := Unwrap(wrappedErr)
	assert.Equal(t, origErr, unwrappedErr)

	// Test wrapped formatted error
	wrappedFormatted := Wrapf(origErr, "formatted %s", "wrapper")
	assert.NotNil(t, wrappedFormatted)
	assert.Equal(t, "formatted wrapper: original error", wrappedFormatted.Error())

	// Test wrapping nil returns nil
	assert.Nil(t, Wrap(nil, "wrapper"))
	assert.Nil(t, Wrapf(nil, "formatted %s", "wrapper"))

	// Test Is through the chain
	deepWrapped := Wrap(wrappedErr, "deeper")
	assert.True(t, Is(deepWrapped, origErr))
}

func TestWrapPreservesKind(t *testing.T) {
	storeErr := NewStoreError("cannot open", "/data/run1.h5", FileUnreadable, nil)
	wrapped := Wrap(storeErr, "discovery failed")

	assert.True(t, IsFileUnreadable(wrapped))
	assert.Equal(t, FileUnreadable, KindOf(wrapped))

	// Plain stdlib errors have no kind
	assert.Equal(t, Unknown, KindOf(fmt.Errorf("plain")))
	assert.Equal(t, Unknown, KindOf(nil))
}

func TestStoreError(t *testing.T) {
	storeErr := NewStoreError("dataset path not found", "/raw/frames", PathNotFound, nil)
	assert.Equal(t, "dataset path not found: /raw/frames", storeErr.Error())
	assert.Equal(t, "/raw/frames", storeErr.Path())
	assert.Equal(t, PathNotFound, storeErr.Kind())

	// With a wrapped cause
	cause := New("truncated b-tree node")
	storeErr = NewStoreError("cannot traverse", "/data/run1.h5", FileUnreadable, cause)
	assert.Equal(t, "cannot traverse: /data/run1.h5: truncated b-tree node", storeErr.Error())
	assert.True(t, Is(storeErr, cause))

	// Kind predicates
	assert.True(t, IsFileUnreadable(storeErr))
	assert.False(t, IsPathNotFound(storeErr))
	assert.False(t, IsDirectoryNotFound(storeErr))
}

func TestSelectionError(t *testing.T) {
	selErr := NewSelectionError("not a number", "abc", nil)
	assert.Equal(t, `not a number: "abc"`, selErr.Error())
	assert.Equal(t, "abc", selErr.Input())
	assert.True(t, IsInvalidSelection(selErr))

	// No input recorded
	selErr = NewSelectionError("out of range", "", nil)
	assert.Equal(t, "out of range", selErr.Error())
}

func TestConfigError(t *testing.T) {
	cfgErr := NewConfigError("invalid value", "viz.power", nil)
	assert.Equal(t, "invalid value: viz.power", cfgErr.Error())
	assert.Equal(t, "viz.power", cfgErr.Param())
	assert.True(t, IsInvalidConfig(cfgErr))
}

func TestKindPredicates(t *testing.T) {
	cases := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"directory not found", NewStoreError("no such directory", "/nope", DirectoryNotFound, nil), IsDirectoryNotFound},
		{"file unreadable", NewStoreError("open failed", "x.h5", FileUnreadable, nil), IsFileUnreadable},
		{"path not found", NewStoreError("missing", "/a/b", PathNotFound, nil), IsPathNotFound},
		{"invalid path type", NewKind("empty dataset path", InvalidPathType), IsInvalidPathType},
		{"invalid selection", NewSelectionError("out of range", "99", nil), IsInvalidSelection},
		{"visualization failure", NewKind("render failed", VisualizationFailure), IsVisualizationFailure},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, tc.check(tc.err))
			assert.False(t, tc.check(New("unrelated")))
		})
	}
}
