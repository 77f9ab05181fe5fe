package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists the lowercase HTTP header names whose values are
// never logged. The HTTP middleware redacts them at the call site and the
// handler redacts them again by field name.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
}

// Field names and prefixes redacted wherever they appear.
var (
	redactedFields   = []string{"password", "secret", "token"}
	redactedPrefixes = []string{"secret_", "api_key"}
)

// Value patterns redacted regardless of the field carrying them. The JWT
// pattern needs ten characters per segment so version strings survive.
var redactedPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`),
	regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`),
	regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`),
}

// redactor returns the masq ReplaceAttr shared by every handler New builds.
func redactor() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0,
		len(SensitiveHeaders)+len(redactedFields)+len(redactedPrefixes)+len(redactedPatterns))

	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range redactedFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, prefix := range redactedPrefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}
	for _, re := range redactedPatterns {
		opts = append(opts, masq.WithRegex(re))
	}
	return masq.New(opts...)
}
