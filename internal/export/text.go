package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/eduforge/worksheet-api/internal/domain"
)

// RenderText produces the plain-text export: a small header block
// describing the worksheet followed by the generated content verbatim.
func RenderText(ws *domain.Worksheet) string {
	var b strings.Builder

	b.WriteString("Practice Worksheet\n")
	b.WriteString(strings.Repeat("=", 18) + "\n\n")
	fmt.Fprintf(&b, "Subject: %s\n", ws.Metadata.Subject)
	fmt.Fprintf(&b, "Topic: %s\n", ws.Metadata.Topic)
	fmt.Fprintf(&b, "Class: %s (%s)\n", ws.Metadata.Grade, ws.Metadata.Board)
	if ws.Metadata.Stream != "" {
		fmt.Fprintf(&b, "Stream: %s\n", ws.Metadata.Stream)
	}
	b.WriteString("\n")
	b.WriteString(ws.Text)
	if !strings.HasSuffix(ws.Text, "\n") {
		b.WriteString("\n")
	}

	return b.String()
}

// WriteText writes the plain-text export to w.
func WriteText(w io.Writer, ws *domain.Worksheet) error {
	if _, err := io.WriteString(w, RenderText(ws)); err != nil {
		return fmt.Errorf("failed to write text export: %w", err)
	}
	return nil
}

// Filename builds a download filename from the subject and topic, with
// everything but letters, digits, spaces, hyphens and underscores
// stripped and spaces collapsed to underscores.
func Filename(subject, topic, ext string) string {
	name := sanitize(subject) + "_" + sanitize(topic) + "_worksheet"
	return name + "." + strings.TrimPrefix(ext, ".")
}

func sanitize(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('_')
		}
	}
	return strings.Trim(b.String(), "_")
}
