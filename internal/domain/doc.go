// Package domain contains the core entities and validation rules for
// worksheet generation: the request describing what to generate, the
// resulting worksheet with its metadata, and the bounds every request
// must satisfy. It is independent of any transport or LLM provider.
package domain
