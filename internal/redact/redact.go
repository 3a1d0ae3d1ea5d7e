// Package redact scrubs credentials and other sensitive fragments from
// strings before they are written to logs or attached to API error payloads.
package redact

import "regexp"

type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// Rules are applied in order. DSN credentials go first so the password
// inside a URL is not half-matched by the key/value rule.
var rules = []rule{
	{
		pattern:     regexp.MustCompile(`(?i)\b(postgres(?:ql)?|pgx)://[^@\s/]+@`),
		replacement: "${1}://[REDACTED_CREDENTIAL]@",
	},
	{
		pattern:     regexp.MustCompile(`(?i)\bbearer\s+[A-Za-z0-9\-_.~+/]+=*`),
		replacement: "Bearer [REDACTED_TOKEN]",
	},
	{
		pattern:     regexp.MustCompile(`eyJ[A-Za-z0-9_-]+\.eyJ[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+`),
		replacement: "[REDACTED_JWT]",
	},
	{
		pattern:     regexp.MustCompile(`\$2[abxy]?\$\d{2}\$[./A-Za-z0-9]{53}`),
		replacement: "[REDACTED_HASH]",
	},
	{
		pattern:     regexp.MustCompile(`(?i)("?(?:password|passwd|secret|jwt_secret)"?\s*[:=]\s*)"?[^"&\s,}]+"?`),
		replacement: "${1}[REDACTED]",
	},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}
	out := input
	for _, r := range rules {
		out = r.pattern.ReplaceAllString(out, r.replacement)
	}
	return out
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
