package discovery

import "fmt"

// TooLargeError reports a candidate manifest whose size exceeds the cap
// for its kind. The scan stops rather than read it.
type TooLargeError struct {
	Path  string
	Size  int64
	Limit int64
}

func (e *TooLargeError) Error() string {
	return fmt.Sprintf("file %s is too large (%d bytes, limit %d)", e.Path, e.Size, e.Limit)
}
