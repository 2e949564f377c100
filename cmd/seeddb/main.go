// Command seeddb creates a synthetic felt-report SQLite database for local
// development and demos. It writes one event plus gofakeit-generated
// reports whose intensity falls off with distance from the epicenter.
//
// Usage:
//
//	go run ./cmd/seeddb -out sismo_demo.db -reports 250
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/quakewatch/feltmaps/internal/domain"
	"github.com/quakewatch/feltmaps/internal/store"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "", "output path for the SQLite database")
	eventID := flag.String("event-id", "insi2025demo", "event id for the seeded event")
	reports := flag.Int("reports", 200, "number of felt reports to generate")
	seed := flag.Uint64("seed", 123, "random seed (fixed for reproducible fixtures)")
	flag.Parse()

	if *out == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -out")
	}

	faker := gofakeit.New(*seed)

	event := domain.Event{
		ID:         *eventID,
		OriginTime: time.Date(2025, 2, 10, 14, 30, 5, 0, time.UTC),
		Latitude:   14.5,
		Longitude:  -90.5,
		Magnitude:  6.0,
	}

	db, err := store.Open(*out)
	if err != nil {
		return err
	}
	defer db.Close() //nolint:errcheck // process exits right after

	ctx := context.Background()
	if err := db.CreateSchema(ctx); err != nil {
		return err
	}
	if err := db.InsertEvent(ctx, event); err != nil {
		return err
	}

	generated := generateReports(faker, event, *reports)
	if err := db.InsertReports(ctx, event.ID, generated); err != nil {
		return err
	}

	log.Printf("seeded %s: event %s, %d reports", *out, event.ID, len(generated))
	printStats(generated, event)
	return nil
}

// generateReports scatters reports within roughly 1.5 degrees of the
// epicenter and assigns an observed intensity that decays with distance,
// plus reporter noise.
func generateReports(faker *gofakeit.Faker, event domain.Event, n int) []domain.Report {
	reports := make([]domain.Report, n)
	for i := range reports {
		lat := event.Latitude + faker.Float64Range(-1.5, 1.5)
		lon := event.Longitude + faker.Float64Range(-1.5, 1.5)

		dist := domain.DistanceKm(domain.Coordinate{Lat: lat, Lon: lon}, event.Epicenter())
		intensity := int(math.Round(8-dist/25)) + faker.IntRange(-1, 1)
		if intensity < 1 {
			intensity = 1
		}
		if intensity > 10 {
			intensity = 10
		}

		reports[i] = domain.Report{
			UserID:    faker.UUID(),
			Lat:       lat,
			Lon:       lon,
			Intensity: intensity,
		}
	}
	return reports
}

func printStats(reports []domain.Report, event domain.Event) {
	counts := map[int]int{}
	for _, r := range reports {
		counts[domain.ClampIntensity(r.Intensity)]++
	}
	fmt.Println("intensity distribution:")
	for _, lvl := range domain.IntensityScale() {
		fmt.Printf("  %2d %-18s %d\n", lvl.Level, lvl.Label, counts[lvl.Level])
	}

	enriched := domain.EnrichReports(reports, event)
	buckets := map[domain.ResidualBucket]int{}
	for _, er := range enriched {
		buckets[er.ResidualClass()]++
	}
	fmt.Printf("residual buckets: zero=%d one=%d two-or-more=%d\n",
		buckets[domain.ResidualZero], buckets[domain.ResidualOne], buckets[domain.ResidualTwoPlus])
}
