// Package config handles configuration loading and validation from
// environment variables and optional config files. It provides type-safe
// access to server, LLM provider, and generation settings while keeping
// configuration details separate from business logic.
package config
