package main

import (
	"log"

	"github.com/QuillstackMedia/quillstack-go/internal/application/startup"
)

func main() {
	if err := startup.Initialize(); err != nil {
		log.Fatalf("Application startup failed: %v", err)
	}

	log.Println("Application has shut down gracefully.")
}
