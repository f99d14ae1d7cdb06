package utils

import "net/http"

// MapToHeader builds an http.Header, canonicalizing every key.
func MapToHeader(m map[string]string) http.Header {
	h := make(http.Header, len(m))
	for k, v := range m {
		h.Set(k, v)
	}
	return h
}

// ApplyHeaders sets every entry of m on h, replacing existing values.
// Empty values delete the header.
func ApplyHeaders(h http.Header, m map[string]string) {
	for k, v := range m {
		if v == "" {
			h.Del(k)
			continue
		}
		h.Set(k, v)
	}
}
