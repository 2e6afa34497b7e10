package rooms

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ahoy-games/broadside/internal/dependencies/clock"
	"github.com/ahoy-games/broadside/internal/dependencies/random"
	"github.com/ahoy-games/broadside/internal/engine"
	"github.com/ahoy-games/broadside/internal/model"
	"github.com/ahoy-games/broadside/internal/storage"
)

const (
	// InviteCodeLength is the length of generated invite codes
	InviteCodeLength = 6
	// InviteCodeAlphabet is the characters used in invite codes (avoid confusing chars)
	InviteCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// Controller is the mutation gateway for matches. Every entry point takes
// the acting user explicitly, runs the engine's pure decision inside the
// room's critical section, and commits the decision's write set atomically
// with respect to other same-room operations.
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// NewController creates a new rooms Controller
func NewController(
	storage storage.Storage,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// CreateRoom creates a room in the waiting phase with the actor seated at 1
func (c *Controller) CreateRoom(ctx context.Context, actor *model.Actor) (*model.Room, *model.Player, error) {
	if actor == nil {
		return nil, nil, model.ErrNotAuthenticated
	}

	now := c.clock.Now()

	// Generate a unique invite code
	var code model.InviteCode
	for {
		code = model.InviteCode(c.random.Code(InviteCodeLength, InviteCodeAlphabet))
		_, err := c.storage.GetRoomByInvite(ctx, code)
		if errors.Is(err, model.ErrRoomNotFound) {
			break
		}
		if err != nil {
			return nil, nil, err
		}
	}

	room := &model.Room{
		ID:         model.RoomID("room_" + c.random.ID()),
		Phase:      model.PhaseWaiting,
		InviteCode: code,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	player := &model.Player{
		ID:      model.PlayerID("pl_" + c.random.ID()),
		RoomID:  room.ID,
		ActorID: actor.ID,
		Seat:    model.Seat1,
		Ready:   true,
	}

	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return nil, nil, err
	}
	if err := c.storage.SavePlayer(ctx, player); err != nil {
		return nil, nil, err
	}

	c.logger.Info("room created",
		slog.String("room_id", string(room.ID)),
		slog.String("actor_id", string(actor.ID)),
	)

	return room, player, nil
}

// JoinRoom seats the actor at seat 2 and moves the room into ship placement
func (c *Controller) JoinRoom(ctx context.Context, actor *model.Actor, roomID model.RoomID) (*model.Player, error) {
	if actor == nil {
		return nil, model.ErrNotAuthenticated
	}

	var joined *model.Player
	err := c.storage.WithRoom(ctx, roomID, func(ctx context.Context) error {
		snap, err := c.Snapshot(ctx, roomID)
		if err != nil {
			return err
		}

		decision, err := engine.DecideJoin(snap, actor.ID, model.PlayerID("pl_"+c.random.ID()))
		if err != nil {
			return err
		}

		room := snap.Room
		room.Phase = decision.Phase
		room.UpdatedAt = c.clock.Now()

		if err := c.storage.SavePlayer(ctx, &decision.Player); err != nil {
			return err
		}
		if err := c.storage.SaveRoom(ctx, &room); err != nil {
			return err
		}

		joined = &decision.Player
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.logger.Info("room joined",
		slog.String("room_id", string(roomID)),
		slog.String("actor_id", string(actor.ID)),
	)

	return joined, nil
}

// PlaceFleet validates and commits a player's complete fleet. The
// submission is all-or-nothing; a rejected fleet writes no rows.
func (c *Controller) PlaceFleet(ctx context.Context, actor *model.Actor, playerID model.PlayerID, specs []model.ShipSpec) error {
	if actor == nil {
		return model.ErrNotAuthenticated
	}

	player, err := c.storage.GetPlayer(ctx, playerID)
	if err != nil {
		return err
	}
	if player.ActorID != actor.ID {
		return model.ErrUnauthorized
	}

	return c.storage.WithRoom(ctx, player.RoomID, func(ctx context.Context) error {
		snap, err := c.Snapshot(ctx, player.RoomID)
		if err != nil {
			return err
		}

		shipIDs := make([]model.ShipID, len(specs))
		for i := range shipIDs {
			shipIDs[i] = model.ShipID("ship_" + c.random.ID())
		}

		decision, err := engine.DecideFleet(snap, playerID, specs, shipIDs)
		if err != nil {
			return err
		}

		ships := make([]*model.Ship, len(decision.Ships))
		for i := range decision.Ships {
			ships[i] = &decision.Ships[i]
		}
		if err := c.storage.SaveShips(ctx, ships); err != nil {
			return err
		}
		if err := c.storage.SavePlayer(ctx, &decision.Player); err != nil {
			return err
		}

		room := snap.Room
		room.Phase = decision.Phase
		room.TurnPlayerID = decision.TurnPlayerID
		room.UpdatedAt = c.clock.Now()
		if err := c.storage.SaveRoom(ctx, &room); err != nil {
			return err
		}

		if decision.Phase == model.PhaseActive {
			c.logger.Info("match started",
				slog.String("room_id", string(room.ID)),
			)
		}
		return nil
	})
}

// Attack resolves one coordinate guess by the turn holder and returns the
// recorded guess.
func (c *Controller) Attack(ctx context.Context, actor *model.Actor, playerID model.PlayerID, target model.Coord) (*model.Guess, error) {
	if actor == nil {
		return nil, model.ErrNotAuthenticated
	}

	player, err := c.storage.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if player.ActorID != actor.ID {
		return nil, model.ErrUnauthorized
	}

	var guess *model.Guess
	err = c.storage.WithRoom(ctx, player.RoomID, func(ctx context.Context) error {
		snap, err := c.Snapshot(ctx, player.RoomID)
		if err != nil {
			return err
		}

		decision, err := engine.DecideAttack(snap, playerID, target, model.GuessID("g_"+c.random.ID()))
		if err != nil {
			return err
		}

		// Timestamps annotate rows after the decision is made
		decision.Guess.CreatedAt = c.clock.Now()

		if err := c.storage.SaveGuess(ctx, &decision.Guess); err != nil {
			return err
		}

		if decision.SunkShipID != nil {
			ship := snap.ShipByID(*decision.SunkShipID)
			if ship == nil {
				return model.ErrShipNotFound
			}
			sunk := *ship
			sunk.Sunk = true
			if err := c.storage.SaveShip(ctx, &sunk); err != nil {
				return err
			}
		}

		room := snap.Room
		room.Phase = decision.Phase
		room.TurnPlayerID = decision.TurnPlayerID
		room.WinnerActorID = decision.WinnerID
		room.UpdatedAt = c.clock.Now()
		if err := c.storage.SaveRoom(ctx, &room); err != nil {
			return err
		}

		if decision.Phase == model.PhaseFinished {
			c.logger.Info("match finished",
				slog.String("room_id", string(room.ID)),
				slog.String("winner_actor_id", string(*decision.WinnerID)),
			)
		}

		guess = &decision.Guess
		return nil
	})
	if err != nil {
		return nil, err
	}

	return guess, nil
}

// GetRoom retrieves a room by ID
func (c *Controller) GetRoom(ctx context.Context, roomID model.RoomID) (*model.Room, error) {
	return c.storage.GetRoom(ctx, roomID)
}

// GetRoomByInvite resolves an invite code to its room
func (c *Controller) GetRoomByInvite(ctx context.Context, code model.InviteCode) (*model.Room, error) {
	return c.storage.GetRoomByInvite(ctx, code)
}

// ListOpenRooms returns rooms still waiting for an opponent
func (c *Controller) ListOpenRooms(ctx context.Context) ([]*model.Room, error) {
	return c.storage.ListWaitingRooms(ctx)
}

// Snapshot assembles the room's full consistency domain. Call inside
// WithRoom when the result feeds a mutation.
func (c *Controller) Snapshot(ctx context.Context, roomID model.RoomID) (*engine.Snapshot, error) {
	room, err := c.storage.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	players, err := c.storage.GetPlayersForRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	snap := &engine.Snapshot{Room: *room}
	for _, player := range players {
		snap.Players = append(snap.Players, *player)

		ships, err := c.storage.GetShipsForPlayer(ctx, player.ID)
		if err != nil {
			return nil, err
		}
		for _, ship := range ships {
			snap.Ships = append(snap.Ships, *ship)
		}
	}

	guesses, err := c.storage.GetGuessesForRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	for _, guess := range guesses {
		snap.Guesses = append(snap.Guesses, *guess)
	}

	return snap, nil
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateRoom(ctx context.Context, actor *model.Actor) (*model.Room, *model.Player, error)
	JoinRoom(ctx context.Context, actor *model.Actor, roomID model.RoomID) (*model.Player, error)
	PlaceFleet(ctx context.Context, actor *model.Actor, playerID model.PlayerID, specs []model.ShipSpec) error
	Attack(ctx context.Context, actor *model.Actor, playerID model.PlayerID, target model.Coord) (*model.Guess, error)
	GetRoom(ctx context.Context, roomID model.RoomID) (*model.Room, error)
	GetRoomByInvite(ctx context.Context, code model.InviteCode) (*model.Room, error)
	ListOpenRooms(ctx context.Context) ([]*model.Room, error)
}

var _ ControllerInterface = (*Controller)(nil)
