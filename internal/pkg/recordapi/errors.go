package recordapi

import "fmt"

// StoreError is a record-store failure: a rejected batch record, a missing
// id on write, or a transport failure. The message is the backend's own,
// human-readable one.
type StoreError struct {
	Op      string
	Table   string
	Message string
}

func (e *StoreError) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("record store %s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("record store %s %s: %s", e.Op, e.Table, e.Message)
}
