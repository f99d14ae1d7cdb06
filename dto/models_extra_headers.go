package dto

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtraHeaders is a comma separated key=value flag value applied to every
// request sent by the HTTP transport. It satisfies pflag.Value.
type ExtraHeaders map[string]string

func (e ExtraHeaders) String() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

// Set parses "A=1,B=two". Blank entries are skipped.
func (e ExtraHeaders) Set(s string) error {
	for _, header := range strings.Split(s, ",") {
		header = strings.TrimSpace(header)
		if header == "" {
			continue
		}
		key, value, found := strings.Cut(header, "=")
		if !found || strings.TrimSpace(key) == "" {
			return fmt.Errorf("invalid header %q, expected key=value", header)
		}
		e[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return nil
}

func (e ExtraHeaders) Type() string {
	return "ExtraHeaders"
}
