package redis

import "time"

// Config holds Redis connection and behavior settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// TTL settings for different entity types. Room TTL covers the room
	// row and everything in its consistency domain.
	GuestActorTTL time.Duration
	RoomTTL       time.Duration

	// Room lock settings. LockTTL bounds how long a crashed holder can
	// block a room; LockRetry is the polling interval while contended.
	LockTTL   time.Duration
	LockRetry time.Duration
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:           "redis://localhost:6379",
		PoolSize:      10,
		MinIdleConns:  2,
		GuestActorTTL: 24 * time.Hour,
		RoomTTL:       24 * time.Hour,
		LockTTL:       5 * time.Second,
		LockRetry:     20 * time.Millisecond,
	}
}
