package storage

import (
	"context"

	"github.com/ahoy-games/broadside/internal/model"
)

// Storage defines the interface for data persistence.
//
// A room and its players, ships, and guesses form one consistency domain;
// WithRoom serializes operations touching the same room so the engine's
// duplicate-guess and single-turn-holder invariants hold under concurrency.
type Storage interface {
	// Actor operations
	SaveActor(ctx context.Context, actor *model.Actor) error
	GetActor(ctx context.Context, id model.ActorID) (*model.Actor, error)
	DeleteActor(ctx context.Context, id model.ActorID) error

	// Registered actor operations
	SaveRegisteredActor(ctx context.Context, ra *model.RegisteredActor) error
	GetRegisteredActor(ctx context.Context, actorID model.ActorID) (*model.RegisteredActor, error)
	GetRegisteredActorByUsername(ctx context.Context, username string) (*model.RegisteredActor, error)

	// Room operations
	SaveRoom(ctx context.Context, room *model.Room) error
	GetRoom(ctx context.Context, id model.RoomID) (*model.Room, error)
	GetRoomByInvite(ctx context.Context, code model.InviteCode) (*model.Room, error)
	ListWaitingRooms(ctx context.Context) ([]*model.Room, error)
	DeleteRoom(ctx context.Context, id model.RoomID) error

	// Player operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	GetPlayersForRoom(ctx context.Context, roomID model.RoomID) ([]*model.Player, error)

	// Ship operations
	SaveShips(ctx context.Context, ships []*model.Ship) error
	SaveShip(ctx context.Context, ship *model.Ship) error
	GetShipsForPlayer(ctx context.Context, playerID model.PlayerID) ([]*model.Ship, error)

	// Guess operations
	SaveGuess(ctx context.Context, guess *model.Guess) error
	GetGuessesForRoom(ctx context.Context, roomID model.RoomID) ([]*model.Guess, error)

	// WithRoom runs fn inside the room's critical section. All reads and
	// writes a mutation performs happen inside fn.
	WithRoom(ctx context.Context, roomID model.RoomID, fn func(ctx context.Context) error) error
}
