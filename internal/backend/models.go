package backend

import (
	"fmt"
	"strings"
)

// ConnectionConfig carries the optional S3 settings applied by the service.
type ConnectionConfig struct {
	Region   string `json:"s3_region,omitempty"`
	Endpoint string `json:"s3_endpoint,omitempty"`
}

// ConnectResult is the acknowledgement returned by /connect.
type ConnectResult struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// Format is the file format tag understood by /quick.
type Format string

const (
	FormatParquet Format = "parquet"
	FormatJSON    Format = "json"
	FormatJSONL   Format = "jsonl"
	FormatNDJSON  Format = "ndjson"
	FormatCSV     Format = "csv"
)

// Formats lists every supported format in display order.
var Formats = []Format{FormatParquet, FormatJSON, FormatJSONL, FormatNDJSON, FormatCSV}

// ParseFormat resolves a case-insensitive format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q", s)
}

// Next returns the format following f, wrapping around.
func (f Format) Next() Format {
	return f.step(1)
}

// Prev returns the format preceding f, wrapping around.
func (f Format) Prev() Format {
	return f.step(-1)
}

func (f Format) step(d int) Format {
	n := len(Formats)
	for i, known := range Formats {
		if known == f {
			return Formats[((i+d)%n+n)%n]
		}
	}
	return Formats[0]
}

// QuickRequest asks the service to read a remote object with an inferred query.
// A zero Limit is omitted so the service default applies.
type QuickRequest struct {
	URI    string `json:"uri"`
	Format Format `json:"format"`
	Limit  int    `json:"limit,omitempty"`
}

// QueryRequest carries raw SQL text.
type QueryRequest struct {
	SQL string `json:"sql"`
}

// Row maps a column name to an arbitrary JSON value.
type Row map[string]any

// ResultSet is an ordered column list plus the rows returned for it.
type ResultSet struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// QuickResult is a result set plus the SQL the service executed for it.
type QuickResult struct {
	ResultSet
	SQL string `json:"sql"`
}
