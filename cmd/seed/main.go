package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/connecta/identity-service/config"
	"github.com/connecta/identity-service/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	seed := []struct {
		name, email, phone, password, kind string
	}{
		{"Demo Mentor", "mentor@connecta.dev", "+5511999990001", "segredo1", "MENTOR"},
		{"Demo Mentee", "mentee@connecta.dev", "+5511999990002", "segredo1", "MENTEE"},
	}

	for _, s := range seed {
		hash, err := helpers.HashPassword(s.password)
		if err != nil {
			log.Fatalf("failed to hash password: %v", err)
		}
		var id string
		err = db.QueryRow(`
			INSERT INTO identities (name, email, phone, password_hash, profile_kind, active)
			VALUES ($1, $2, $3, $4, $5, true)
			ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
			RETURNING id
		`, s.name, s.email, s.phone, hash, s.kind).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed identity %s: %v", s.email, err)
		}
		fmt.Printf("seeded identity: id=%s email=%s kind=%s password=%s\n", id, s.email, s.kind, s.password)
	}
}
