// Package export renders a generated worksheet into downloadable
// formats: plain text, CSV, and PDF.
package export
