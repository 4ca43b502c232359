package config

import "time"

const (
	// DefaultDatabaseURL is a SQLite file next to the binary.
	DefaultDatabaseURL = "sqlite://./broccoli.db"

	// DefaultCORSOrigins lists the local front-end dev servers.
	DefaultCORSOrigins = "http://localhost:3000,http://localhost:3001,http://localhost:5173"

	// DefaultInitMaxRetries and DefaultInitBaseDelay bound startup schema
	// initialisation: 1s, 2s, 4s ... for at most 10 attempts.
	DefaultInitMaxRetries = 10
	DefaultInitBaseDelay  = time.Second
)
