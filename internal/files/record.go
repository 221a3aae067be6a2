package files

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/quan0401/quizz/pkg/backend"
)

// DateLayout is the layout used to display upload dates.
const DateLayout = "2006-01-02 15:04:05"

// uploadLayouts are the upload date encodings accepted from the service.
// Dates without a zone are read as UTC.
var uploadLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	time.RFC1123,
	time.RFC1123Z,
}

// Record is a document stored by the file-management service.
type Record struct {
	ID         string    `json:"_id"`
	Filename   string    `json:"filename"`
	UploadedAt time.Time `json:"upload_date"`
	// RawUploadDate keeps the service value when it could not be parsed.
	RawUploadDate string `json:"-"`
}

// FromFile converts the wire representation.
func FromFile(file backend.File) Record {
	record := Record{ID: file.ID, Filename: file.Filename, RawUploadDate: file.UploadDate}
	if at, ok := parseUploadDate(file.UploadDate); ok {
		record.UploadedAt = at
	}
	return record
}

// MarshalJSON writes the upload date as RFC 3339, or the raw service value
// when it was not understood.
func (r Record) MarshalJSON() ([]byte, error) {
	uploaded := r.RawUploadDate
	if !r.UploadedAt.IsZero() {
		uploaded = r.UploadedAt.Format(time.RFC3339Nano)
	}
	return json.Marshal(struct {
		ID         string `json:"_id"`
		Filename   string `json:"filename"`
		UploadDate string `json:"upload_date"`
	}{ID: r.ID, Filename: r.Filename, UploadDate: uploaded})
}

// Uploaded formats the upload date in loc, or returns the raw value when it
// was not understood.
func (r Record) Uploaded(loc *time.Location) string {
	if r.UploadedAt.IsZero() {
		return r.RawUploadDate
	}
	if loc == nil {
		loc = time.Local
	}
	return r.UploadedAt.In(loc).Format(DateLayout)
}

func parseUploadDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range uploadLayouts {
		if at, err := time.Parse(layout, value); err == nil {
			return at, true
		}
	}
	return time.Time{}, false
}
