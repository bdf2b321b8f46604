// Package main provides a CLI to seed the database with demo data for
// development and debugging.
package main

import (
	"flag"
	"log"

	"inkwell/internal/config"
	"inkwell/internal/database"
	"inkwell/internal/seed"
)

func main() {
	opts := seed.DefaultOptions()
	flag.IntVar(&opts.NumUsers, "users", opts.NumUsers, "number of users to create")
	flag.IntVar(&opts.NumPosts, "posts", opts.NumPosts, "number of posts to create")
	flag.IntVar(&opts.MaxDays, "max-days", opts.MaxDays, "spread post timestamps over the last N days")
	flag.BoolVar(&opts.ShouldClean, "clean", false, "wipe existing rows before seeding")
	flag.BoolVar(&opts.SkipBcrypt, "skip-bcrypt", false, "store plaintext demo passwords (fast, dev only)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if cfg.Env == "production" || cfg.Env == "prod" {
		log.Fatal("refusing to seed a production database")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("connect db: %v", err)
	}

	if err := seed.Seed(db, opts); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}
