package http

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"
)

const maxBodySize = 1 << 20

// readFields collects the string fields of a JSON object or form body.
// Non-string JSON values are left out and an unparseable body yields no fields,
// so both surface as a missing field to the handlers.
func readFields(r *http.Request) map[string]string {
	fields := map[string]string{}
	if r.Body == nil {
		return fields
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		if mediaType == "multipart/form-data" {
			if err := r.ParseMultipartForm(maxBodySize); err != nil {
				return fields
			}
		} else if err := r.ParseForm(); err != nil {
			return fields
		}
		for key, values := range r.PostForm {
			if len(values) > 0 {
				fields[key] = values[len(values)-1]
			}
		}
		return fields
	}

	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil || len(raw) == 0 {
		return fields
	}

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return fields
	}
	for key, value := range body {
		if s, ok := value.(string); ok {
			fields[key] = s
		}
	}
	return fields
}
