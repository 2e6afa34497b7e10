package model

import "time"

// ActorID uniquely identifies an actor across the system
type ActorID string

// Actor is an authenticated user as seen by the engine. Identity
// resolution happens in the auth service; the engine only consumes
// the resulting value.
type Actor struct {
	ID          ActorID
	DisplayName string
	IsGuest     bool // true for unregistered actors
	CreatedAt   time.Time
}

// RegisteredActor extends Actor with credential data.
// Stored separately so password hashes never travel with sessions.
type RegisteredActor struct {
	ActorID      ActorID
	Username     string // login username (immutable)
	PasswordHash string // bcrypt hash
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
