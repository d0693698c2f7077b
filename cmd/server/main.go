// Package main implements the entry point for the worksheet generator
// API server, which turns board/grade/subject/topic requests into
// LLM-generated practice worksheets.
package main

import (
	"context"
	"log"
)

func main() {
	app, err := initializeApp(context.Background())
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
