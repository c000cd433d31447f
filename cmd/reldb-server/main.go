package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/reldb/reldb"
	"github.com/reldb/reldb/core"
	"github.com/reldb/reldb/ps"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	port := flag.Int("port", 8080, "HTTP port to listen on")
	baseDir := flag.String("baseDir", "", "Base directory for snapshots (memory if empty)")
	jwtSecret := flag.String("jwtSecret", "", "Shared secret for JWT auth (auth disabled if empty)")
	jwtIssuer := flag.String("jwtIssuer", "", "Expected iss claim in JWTs")
	jwtAudience := flag.String("jwtAudience", "", "Expected aud claim in JWTs")
	name := flag.String("name", "RelDB Server", "Author name for snapshot commits")
	email := flag.String("email", "server@reldb.local", "Author email for snapshot commits")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("RelDB Server v%s\n", Version)
		return
	}

	var store *ps.Store
	var err error
	if *baseDir == "" {
		log.Println("Using memory store")
		store, err = ps.NewMemoryStore()
	} else {
		log.Printf("Using file store: %s", *baseDir)
		store, err = ps.NewFileStore(*baseDir)
	}
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}

	instance := reldb.Open(store)
	if err := instance.Load(); err != nil && !errors.Is(err, ps.ErrNoSnapshot) {
		log.Fatalf("Failed to load snapshot: %v", err)
	}

	identity := core.Identity{Name: *name, Email: *email}

	var auth *AuthConfig
	if *jwtSecret != "" {
		auth = &AuthConfig{
			Secret:   *jwtSecret,
			Issuer:   *jwtIssuer,
			Audience: *jwtAudience,
		}
	}

	server := NewServer(instance, identity, auth)
	addr := fmt.Sprintf(":%d", *port)

	if err := server.Start(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	fmt.Println()
	fmt.Println("╔═══════════════════════════════════════╗")
	fmt.Printf("║   RelDB Server v%-20s  ║\n", Version)
	fmt.Println("║   In-Memory Relational Engine         ║")
	fmt.Println("╚═══════════════════════════════════════╝")
	fmt.Println()
	fmt.Printf("Listening on port %d\n", *port)
	fmt.Printf("Console at http://localhost:%d/\n", *port)
	fmt.Println()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutting down...")
	server.Stop()
	log.Println("Server stopped")
}
