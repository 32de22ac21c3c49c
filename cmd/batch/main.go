package main

// Analyze a directory of resumes against one role profile and write a CSV:
//   go run ./cmd/batch -dir ./resumes -category "Software Development" -role "Backend Developer" -out report.csv

import (
	"context"
	"flag"
	"log"
	"os"

	"ats-backend/internal/analyzer"
	"ats-backend/internal/batch"
	"ats-backend/internal/jobroles"
	"ats-backend/internal/opinion/groq"
	"ats-backend/internal/shared/config"
)

func main() {
	dir := flag.String("dir", "", "directory of resume files (pdf, docx, txt)")
	category := flag.String("category", "", "job role category")
	role := flag.String("role", "", "job role name")
	rolesPath := flag.String("roles", "", "optional job roles JSON file")
	out := flag.String("out", "", "output CSV path (default stdout)")
	flag.Parse()

	if *dir == "" || *category == "" || *role == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.Load()

	roles := jobroles.Default()
	if *rolesPath != "" {
		loaded, err := jobroles.LoadFile(*rolesPath)
		if err != nil {
			log.Fatalf("load roles file: %v", err)
		}
		roles = loaded
	}

	profile, err := roles.Profile(*category, *role)
	if err != nil {
		log.Fatalf("resolve role %q / %q: %v", *category, *role, err)
	}

	engine := &analyzer.Engine{}
	if cfg.GroqAPIKey != "" {
		provider, err := groq.NewClient(cfg.GroqAPIKey, cfg.GroqModel)
		if err != nil {
			log.Printf("groq client unavailable, using fallback scoring: %v", err)
		} else {
			engine.Opinion = provider
		}
	}

	runner := &batch.Runner{Engine: engine, Profile: profile}
	rows, err := runner.Run(context.Background(), *dir)
	if err != nil {
		log.Fatalf("batch run: %v", err)
	}

	output := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatalf("create output file: %v", err)
		}
		defer f.Close()
		output = f
	}

	if err := batch.WriteCSV(output, rows); err != nil {
		log.Fatalf("write csv: %v", err)
	}

	failed := 0
	for _, row := range rows {
		if row.Err != "" {
			failed++
		}
	}
	log.Printf("batch complete: %d files, %d failed", len(rows), failed)
}
