// Command fixpassword re-hashes a user's stored credential. Useful when
// a row was written with a plaintext password by an old build: point it
// at the email and the intended password and it stores a proper bcrypt
// hash.
package main

import (
	"flag"
	"log"

	"github.com/maddiejones03/Workah/internal/config"
	"github.com/maddiejones03/Workah/internal/database"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	email := flag.String("email", "", "email of the account to repair")
	password := flag.String("password", "", "password to hash and store")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("both -email and -password are required")
	}

	cfg := config.Load()
	database.Init(cfg.DBDSN)

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	if err := database.UpdatePassword(*email, string(hash)); err != nil {
		log.Fatalf("failed to update password for %s: %v", *email, err)
	}

	log.Printf("updated password for %s", *email)
}
