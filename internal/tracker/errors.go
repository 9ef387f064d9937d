package tracker

import (
	"errors"
	"fmt"
)

var (
	// ErrNotToday is returned by day mutators called for any date but today.
	ErrNotToday = errors.New("only today's record can be edited")
	// ErrBlankSubject rejects a subject override that is empty after trimming.
	ErrBlankSubject = errors.New("subject cannot be blank")
	// ErrBlankWeakArea rejects adding an empty weak area.
	ErrBlankWeakArea = errors.New("weak area cannot be blank")
	// ErrReadOnly is returned while the loaded state is corrupted.
	ErrReadOnly = errors.New("state is corrupted and read-only; restore a snapshot first")
	// ErrInvalidTimeRange covers malformed HH:MM values and start >= end.
	ErrInvalidTimeRange = errors.New("invalid time range")
	// ErrInvalidIndex is returned for negative block indices or an
	// out-of-range weak area position.
	ErrInvalidIndex = errors.New("invalid index")
)

// TimeConflictError reports the first block an overridden time collides with.
type TimeConflictError struct {
	Index   int
	Subject string
	Start   string
	End     string
}

func (e *TimeConflictError) Error() string {
	return fmt.Sprintf("overlaps block %d %q (%s-%s)", e.Index, e.Subject, e.Start, e.End)
}

// IsNoop reports whether err is one of the rejections a caller may ignore
// silently: a non-today date or a blank subject.
func IsNoop(err error) bool {
	return errors.Is(err, ErrNotToday) || errors.Is(err, ErrBlankSubject)
}
