// Package api contains the HTTP delivery layer: request/response models,
// the worksheet handler, and the mapping from internal errors to HTTP
// status codes and client-safe messages.
package api
