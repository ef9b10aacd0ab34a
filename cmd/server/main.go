package main

import (
	"fmt"
	"log"

	"github.com/maddiejones03/Workah/internal/config"
	"github.com/maddiejones03/Workah/internal/database"
	"github.com/maddiejones03/Workah/internal/server"
)

func main() {
	cfg := config.Load()
	database.Init(cfg.DBDSN)

	r := server.NewRouter(cfg)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
