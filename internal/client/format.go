package client

import (
	"fmt"
	"strings"
)

// Format selects the wire serialization a client speaks.
type Format string

const (
	FormatJSON Format = "JSON"
	FormatXML  Format = "XML"
)

// ParseFormat maps user input onto a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToUpper(strings.TrimSpace(s))); f {
	case FormatJSON, FormatXML:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q (expected JSON or XML)", s)
}
