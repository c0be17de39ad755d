package logger

import (
	"log/slog"
	"strconv"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Schema records the schema name under the key "schema".
func Schema(name string) slog.Attr {
	return slog.String("schema", name)
}

// Field records a field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Problems groups validation problems under the key "problems", indexed by
// position. It returns an empty Attr for an empty list.
func Problems(problems []string) slog.Attr {
	if len(problems) == 0 {
		return slog.Attr{}
	}
	as := make([]slog.Attr, len(problems))
	for i, p := range problems {
		as[i] = slog.String(strconv.Itoa(i), p)
	}
	return slog.Attr{Key: "problems", Value: slog.GroupValue(as...)}
}
