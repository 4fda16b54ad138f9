// Package recordapi holds the per-entity stores backed by the hosted record
// API. Each store translates between the UI shape (camelCase, typed dates)
// and the storage rows (`_c` suffixed columns, ISO strings) on every round
// trip.
package recordapi

import (
	"encoding/json"
	"time"
)

func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	return time.Time{}
}

func parseDatePtr(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t := parseDate(*s)
	return &t
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatDate(*t)
	return &s
}

// lookupID decodes a reference column that arrives either as a bare number
// or as a lookup object {"Id": 2, "Name": "..."}.
type lookupID int

func (l *lookupID) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*l = lookupID(n)
		return nil
	}

	var obj struct {
		ID int `json:"Id"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*l = lookupID(obj.ID)
	return nil
}

func (l lookupID) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(l))
}
