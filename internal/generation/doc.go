// Package generation contains the worksheet generation core: request
// validation, prompt rendering, the bounded-retry invoker around the
// external text-generation service, and response validation. It depends
// only on the TextGenerator interface, allowing the application to swap
// LLM providers (Gemini, OpenAI) without coupling to their SDKs.
package generation
