// Command ingest loads the CSV series files into ClickHouse so the
// serving process can run with data.backend=clickhouse.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"CotSignal/internal/domain/models"
	internalrepo "CotSignal/internal/repository"
	pkgch "CotSignal/pkg/clickhouse"
	"CotSignal/pkg/config"
	"CotSignal/pkg/util"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "config file path")
	only := flag.String("commodity", "", "ingest a single commodity key")
	flag.Parse()

	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	if cfg.Data.Dir == "" {
		log.Fatal("data.dir is required for ingest")
	}

	client, err := pkgch.NewClient(
		pkgch.WithHost(cfg.ClickHouse.Host),
		pkgch.WithPort(cfg.ClickHouse.Port),
		pkgch.WithDatabase(cfg.ClickHouse.Database),
		pkgch.WithCredentials(cfg.ClickHouse.User, cfg.ClickHouse.Password),
		pkgch.WithTimeouts(cfg.ClickHouse.DialTimeout, cfg.ClickHouse.ReadTimeout, cfg.ClickHouse.WriteTimeout),
	)
	if err != nil {
		log.Fatalf("clickhouse client: %v", err)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	if err := client.InitSchema(ctx, internalrepo.SchemaStatements()); err != nil {
		log.Fatalf("clickhouse schema: %v", err)
	}

	var start time.Time
	if cfg.Data.StartDate != "" {
		parsed, ok := util.ParseDate(cfg.Data.StartDate)
		if !ok {
			log.Fatalf("data.start_date: unparseable %q", cfg.Data.StartDate)
		}
		start = parsed
	}
	csvStore := internalrepo.NewCSVSeriesStore(cfg.Data.Dir, start)
	chStore := internalrepo.NewCHSeriesStore(client)

	for _, c := range models.AllCommodities() {
		if *only != "" && c.String() != *only {
			continue
		}
		records, err := csvStore.Series(ctx, c)
		if err != nil {
			log.Fatalf("load %s: %v", c, err)
		}
		if err := chStore.InsertRecords(ctx, c, records); err != nil {
			log.Fatalf("insert %s: %v", c, err)
		}
		log.Printf("ingested %s: %d records", c, len(records))
	}
}
