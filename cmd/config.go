package cmd

import "time"

// StorageMemory selects the in-memory store instead of postgres. Useful
// for local runs without a database.
const StorageMemory = "memory"

type Config struct {
	HTTPPort             string
	Storage              string
	DBHost               string
	DBPort               string
	DBUser               string
	DBPassword           string
	DBName               string
	DBSslMode            string
	AutoProgressInterval time.Duration
	SeedDemoData         bool
}
