package dict

import "errors"

// ErrRehashing is returned by Expand/ShrinkToFit when a resize is
// requested while a rehash is already in progress (§4.2, §7
// InvalidState). Callers are expected to ignore it and retry later.
var ErrRehashing = errors.New("dict: resize refused, rehash in progress")

// ErrInvalidTarget is returned by Expand when the computed size would
// not exceed the current T0 size, and by ShrinkToFit when it would not
// be smaller (§7 InvalidState).
var ErrInvalidTarget = errors.New("dict: resize target rejected for current table size")

// errResizeDisabled is returned by ShrinkToFit when resizing has been
// disabled. It is unexported but documents the same InvalidState
// surface.
var errResizeDisabled = errors.New("dict: resize disabled")
