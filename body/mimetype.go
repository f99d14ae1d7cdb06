package body

import (
	"mime"
	"strings"
)

/*
MimeType enumerates the request body encodings that have a built-in strategy.
Other media types can be used by wrapping the string:

	MimeType("text/csv")
*/
type MimeType string

const (
	JSON = MimeType("application/json")
	FORM = MimeType("application/x-www-form-urlencoded")
	YAML = MimeType("application/yaml")
	BSON = MimeType("application/bson")
	// UNKNOWN is used when the incoming string is blank
	UNKNOWN = MimeType("")
)

var aliases = map[string]MimeType{
	"application/x-yaml": YAML,
	"text/yaml":          YAML,
	"text/x-yaml":        YAML,
	"application/x-bson": BSON,
}

/*
FromString converts a Content-Type header value into a MimeType. Case and media
type parameters are ignored, so all of the following yield JSON:

• "application/json"

• "Application/JSON; charset=utf-8"

• "application/problem+json"
*/
func FromString(incoming string) MimeType {
	incoming = strings.TrimSpace(incoming)
	if incoming == "" {
		return UNKNOWN
	}

	mediaType, _, err := mime.ParseMediaType(incoming)
	if err != nil {
		mediaType, _, _ = strings.Cut(incoming, ";")
		mediaType = strings.ToLower(strings.TrimSpace(mediaType))
	}

	switch MimeType(mediaType) {
	case JSON, FORM, YAML, BSON:
		return MimeType(mediaType)
	}
	if alias, ok := aliases[mediaType]; ok {
		return alias
	}
	if strings.HasSuffix(mediaType, "+json") {
		return JSON
	}
	if strings.HasSuffix(mediaType, "+yaml") {
		return YAML
	}
	return MimeType(mediaType)
}
