// Command score-preview scores a catalog for one applicant profile and
// prints the suggestions, without going through the HTTP server.
//
//	score-preview -gpa 3.8/4.0 -sat 1450 -ielts 7.0 -major "Computer Science" -catalog universities.json
//
// Without -catalog the catalog is read from DATABASE_URL.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"
	"github.com/unitrack/unimatch-api/internal/database"
	"github.com/unitrack/unimatch-api/internal/models"
	"github.com/unitrack/unimatch-api/internal/repository"
	"github.com/unitrack/unimatch-api/internal/scoring"
	"github.com/unitrack/unimatch-api/pkg/config"
)

func main() {
	gpa := flag.String("gpa", "", "GPA, e.g. 3.8 or 3.8/4.0")
	sat := flag.String("sat", "", "SAT total score")
	ielts := flag.String("ielts", "", "IELTS band (0-9)")
	major := flag.String("major", "", "intended major")
	catalogPath := flag.String("catalog", "", "JSON file with an array of universities")
	docsPath := flag.String("documents", "", "optional JSON file with the applicant's documents")
	asJSON := flag.Bool("json", false, "print the full results as JSON")
	flag.Parse()

	if strings.TrimSpace(*gpa) == "" || strings.TrimSpace(*sat) == "" ||
		strings.TrimSpace(*ielts) == "" || strings.TrimSpace(*major) == "" {
		fmt.Fprintln(os.Stderr, "GPA, SAT, IELTS, and major are required")
		flag.Usage()
		os.Exit(2)
	}

	var docs *scoring.Documents
	if *docsPath != "" {
		docs = &scoring.Documents{}
		if err := readJSON(*docsPath, docs); err != nil {
			log.Fatalf("Failed to read documents: %v", err)
		}
	}

	catalog, err := loadCatalog(*catalogPath)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	profile := scoring.ParseProfile(*gpa, *sat, *ielts, *major, docs)
	results := scoring.NewScorer().Score(profile, catalog)

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			log.Fatalf("Failed to encode results: %v", err)
		}
		return
	}

	printResults(profile, len(catalog), results)
}

func loadCatalog(path string) ([]models.University, error) {
	if path != "" {
		var catalog []models.University
		if err := readJSON(path, &catalog); err != nil {
			return nil, err
		}
		return catalog, nil
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.New()

	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.CatalogTimeout)
	defer cancel()

	return repository.NewUniversityRepository(db.DB).ListAll(ctx)
}

func readJSON(path string, v interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return json.NewDecoder(f).Decode(v)
}

func printResults(profile scoring.ApplicantProfile, catalogSize int, results []scoring.MatchResult) {
	fmt.Println("University Match Preview")
	fmt.Println("========================")
	fmt.Printf("GPA %.2f | SAT %d | IELTS %.1f | Major %q\n", profile.GPA, profile.SATScore, profile.EnglishScore, profile.IntendedMajor)
	fmt.Printf("Scored %d universities at %s\n\n", catalogSize, time.Now().Format(time.RFC3339))

	if len(results) == 0 {
		fmt.Println("No universities reached the minimum match score.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tUNIVERSITY\tRANK\tMATCH\tACCEPT\tMAJOR")
	for i, r := range results {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d%%\t%s\n",
			i+1, r.Name, r.Ranking, r.MatchScore, r.AcceptanceProbability, r.ScoreDetails.Major.Status.Label())
	}
	w.Flush()

	fmt.Println()
	for i, r := range results {
		fmt.Printf("%d. %s: %s\n", i+1, r.Name, r.Reason)
	}
}
