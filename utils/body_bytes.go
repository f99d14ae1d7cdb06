package utils

import (
	"fmt"
	"io"
	"net/url"
)

// BodyBytes converts a request body into wire bytes. Supported bodies are
// string, []byte, io.Reader and url.Values; nil yields nil.
func BodyBytes(body any) ([]byte, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return b, nil
	case string:
		return []byte(b), nil
	case url.Values:
		return []byte(b.Encode()), nil
	case io.Reader:
		buf, err := io.ReadAll(b)
		if err != nil {
			return nil, fmt.Errorf("read body: %w", err)
		}
		return buf, nil
	default:
		return nil, fmt.Errorf("unsupported body type %T", body)
	}
}
