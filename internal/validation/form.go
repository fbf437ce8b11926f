package validation

import (
	"io"
	"net/http"
	"net/url"
	"strconv"
	"unicode/utf8"
)

// ParseForm decodes a URL-form-encoded body into a single-value map.
//
// It is total: malformed input degrades to an empty map instead of an
// error, which in turn trips the missing-field check on the write
// endpoints. Content-Type is never consulted; the raw bytes are always
// form-decoded. Only the first value of a repeated key is kept.
func ParseForm(body []byte) map[string]string {
	fields := make(map[string]string)

	if !utf8.Valid(body) {
		return fields
	}

	values, err := url.ParseQuery(string(body))
	if err != nil {
		return fields
	}

	for key, vals := range values {
		if len(vals) > 0 {
			fields[key] = vals[0]
		}
	}

	return fields
}

// ReadForm reads a request body bounded by its declared Content-Length
// and parses it with ParseForm.
//
// A missing or unparseable Content-Length header, or a failed read,
// yields an empty map. The connection is never aborted over a bad
// body.
func ReadForm(r *http.Request) map[string]string {
	lengthHeader := r.Header.Get("Content-Length")
	if lengthHeader == "" {
		return map[string]string{}
	}

	length, err := strconv.Atoi(lengthHeader)
	if err != nil || length < 0 {
		return map[string]string{}
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, int64(length)))
	if err != nil {
		return map[string]string{}
	}

	return ParseForm(body)
}
