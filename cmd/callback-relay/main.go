package main

import (
	"log"

	"github.com/jonny-tran/lms-math-exam/internal/relay"
)

func main() {
	cfg := relay.LoadConfig()

	application := relay.New(cfg)
	if err := application.Run(); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
