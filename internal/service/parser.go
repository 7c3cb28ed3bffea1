package service

import (
	"regexp"
	"strings"

	"smartmail/internal/model"
)

var (
	subjectLabel = regexp.MustCompile(`(?i)^subject:\s*`)
	bodyLabel    = regexp.MustCompile(`(?i)^body:\s*`)
)

// fallbackSubject is used when no subject can be recovered from the buffer.
const fallbackSubject = "Generated Email"

// ParseDraft extracts a subject/body pair from raw completion text. It is
// pure and idempotent, and during streaming it is rerun from scratch on
// every grown prefix of the final buffer. That means a line classified as
// the subject in one pass can be reclassified as body once more text
// arrives; consumers overwrite, they do not append.
func ParseDraft(content string) model.Draft {
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(content), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}

	var subject, body string

	for i, line := range lines {
		lower := strings.ToLower(line)
		switch {
		case strings.Contains(lower, "subject:"):
			subject = strings.TrimSpace(subjectLabel.ReplaceAllString(line, ""))
		case strings.Contains(lower, "body:"):
			// Everything from the body label onward is the body.
			body = strings.TrimSpace(bodyLabel.ReplaceAllString(strings.Join(lines[i:], "\n"), ""))
		case subject == "" && i == 0:
			// No label on the first line: assume it is the subject.
			subject = line
		case subject != "" && body == "":
			// Subject captured, no body label seen: the rest is the body.
			body = strings.TrimSpace(strings.Join(lines[i:], "\n"))
		}
		if body != "" {
			break
		}
	}

	// Fallback: split the raw buffer on the first blank line.
	if (subject == "" || body == "") && strings.Contains(content, "\n\n") {
		parts := strings.Split(content, "\n\n")
		subject = strings.TrimSpace(subjectLabel.ReplaceAllString(parts[0], ""))
		body = strings.TrimSpace(bodyLabel.ReplaceAllString(strings.Join(parts[1:], "\n\n"), ""))
	}

	// Last resort defaults for whatever is still missing.
	if subject == "" {
		if len(lines) > 0 {
			subject = lines[0]
		} else {
			subject = fallbackSubject
		}
	}
	if body == "" {
		if len(lines) > 1 {
			body = strings.Join(lines[1:], "\n")
		} else {
			body = content
		}
	}

	return model.Draft{Subject: subject, Body: body}
}
