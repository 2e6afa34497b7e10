package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/ahoy-games/broadside/internal/model"
	"github.com/ahoy-games/broadside/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Actor operations

func (s *Storage) SaveActor(ctx context.Context, actor *model.Actor) error {
	data, err := json.Marshal(actor)
	if err != nil {
		return err
	}

	// Apply TTL only for guest actors
	var ttl time.Duration
	if actor.IsGuest {
		ttl = s.cfg.GuestActorTTL
	}

	return s.client.Set(ctx, actorKey(actor.ID), data, ttl).Err()
}

func (s *Storage) GetActor(ctx context.Context, id model.ActorID) (*model.Actor, error) {
	data, err := s.client.Get(ctx, actorKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrActorNotFound
		}
		return nil, err
	}

	var actor model.Actor
	if err := json.Unmarshal(data, &actor); err != nil {
		return nil, err
	}
	return &actor, nil
}

func (s *Storage) DeleteActor(ctx context.Context, id model.ActorID) error {
	return s.client.Del(ctx, actorKey(id)).Err()
}

// Registered actor operations

func (s *Storage) SaveRegisteredActor(ctx context.Context, ra *model.RegisteredActor) error {
	data, err := json.Marshal(ra)
	if err != nil {
		return err
	}

	// Pipeline the row and username index so they stay in step
	pipe := s.client.Pipeline()
	pipe.Set(ctx, registeredActorKey(ra.ActorID), data, 0)
	pipe.Set(ctx, usernameIndexKey(ra.Username), string(ra.ActorID), 0)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetRegisteredActor(ctx context.Context, actorID model.ActorID) (*model.RegisteredActor, error) {
	data, err := s.client.Get(ctx, registeredActorKey(actorID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrActorNotFound
		}
		return nil, err
	}

	var ra model.RegisteredActor
	if err := json.Unmarshal(data, &ra); err != nil {
		return nil, err
	}
	return &ra, nil
}

func (s *Storage) GetRegisteredActorByUsername(ctx context.Context, username string) (*model.RegisteredActor, error) {
	actorIDStr, err := s.client.Get(ctx, usernameIndexKey(username)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrActorNotFound
		}
		return nil, err
	}

	return s.GetRegisteredActor(ctx, model.ActorID(actorIDStr))
}

// Room operations

func (s *Storage) SaveRoom(ctx context.Context, room *model.Room) error {
	data, err := json.Marshal(room)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, roomKey(room.ID), data, s.cfg.RoomTTL)
	if room.InviteCode != "" {
		pipe.Set(ctx, inviteIndexKey(room.InviteCode), string(room.ID), s.cfg.RoomTTL)
	}
	// Keep the waiting index in step with the phase
	if room.Phase == model.PhaseWaiting {
		pipe.SAdd(ctx, waitingRoomsKey(), string(room.ID))
	} else {
		pipe.SRem(ctx, waitingRoomsKey(), string(room.ID))
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetRoom(ctx context.Context, id model.RoomID) (*model.Room, error) {
	data, err := s.client.Get(ctx, roomKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrRoomNotFound
		}
		return nil, err
	}

	var room model.Room
	if err := json.Unmarshal(data, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

func (s *Storage) GetRoomByInvite(ctx context.Context, code model.InviteCode) (*model.Room, error) {
	roomIDStr, err := s.client.Get(ctx, inviteIndexKey(code)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrRoomNotFound
		}
		return nil, err
	}

	return s.GetRoom(ctx, model.RoomID(roomIDStr))
}

func (s *Storage) ListWaitingRooms(ctx context.Context) ([]*model.Room, error) {
	ids, err := s.client.SMembers(ctx, waitingRoomsKey()).Result()
	if err != nil {
		return nil, err
	}

	rooms := make([]*model.Room, 0, len(ids))
	for _, id := range ids {
		room, err := s.GetRoom(ctx, model.RoomID(id))
		if err != nil {
			if errors.Is(err, model.ErrRoomNotFound) {
				// Room expired; drop the stale index entry
				_ = s.client.SRem(ctx, waitingRoomsKey(), id).Err()
				continue
			}
			return nil, err
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}

// DeleteRoom removes the room and cascades to its players, ships, and
// guesses.
func (s *Storage) DeleteRoom(ctx context.Context, id model.RoomID) error {
	room, err := s.GetRoom(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrRoomNotFound) {
			return nil
		}
		return err
	}

	players, err := s.GetPlayersForRoom(ctx, id)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	for _, player := range players {
		shipKeys, err := s.client.SMembers(ctx, shipsForPlayerIndexKey(player.ID)).Result()
		if err != nil {
			return err
		}
		for _, key := range shipKeys {
			pipe.Del(ctx, key)
		}
		pipe.Del(ctx, shipsForPlayerIndexKey(player.ID))
		pipe.Del(ctx, playerKey(player.ID))
	}
	pipe.Del(ctx, playersForRoomIndexKey(id))
	pipe.Del(ctx, guessesForRoomKey(id))
	if room.InviteCode != "" {
		pipe.Del(ctx, inviteIndexKey(room.InviteCode))
	}
	pipe.SRem(ctx, waitingRoomsKey(), string(id))
	pipe.Del(ctx, roomKey(id))
	_, err = pipe.Exec(ctx)
	return err
}

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	data, err := json.Marshal(player)
	if err != nil {
		return err
	}

	pKey := playerKey(player.ID)
	indexKey := playersForRoomIndexKey(player.RoomID)

	pipe := s.client.Pipeline()
	pipe.Set(ctx, pKey, data, s.cfg.RoomTTL)
	pipe.SAdd(ctx, indexKey, pKey)
	pipe.Expire(ctx, indexKey, s.cfg.RoomTTL)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	data, err := s.client.Get(ctx, playerKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	var player model.Player
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *Storage) GetPlayersForRoom(ctx context.Context, roomID model.RoomID) ([]*model.Player, error) {
	keys, err := s.client.SMembers(ctx, playersForRoomIndexKey(roomID)).Result()
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return []*model.Player{}, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	players := make([]*model.Player, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue // expired
		}
		var player model.Player
		if err := json.Unmarshal([]byte(val.(string)), &player); err != nil {
			continue
		}
		players = append(players, &player)
	}

	// Seat order, so seat 1 always comes first
	for i := range players {
		for j := i + 1; j < len(players); j++ {
			if players[j].Seat < players[i].Seat {
				players[i], players[j] = players[j], players[i]
			}
		}
	}
	return players, nil
}

// Ship operations

func (s *Storage) SaveShips(ctx context.Context, ships []*model.Ship) error {
	pipe := s.client.Pipeline()
	for _, ship := range ships {
		if err := s.queueShipSave(ctx, pipe, ship); err != nil {
			return err
		}
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) SaveShip(ctx context.Context, ship *model.Ship) error {
	pipe := s.client.Pipeline()
	if err := s.queueShipSave(ctx, pipe, ship); err != nil {
		return err
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) queueShipSave(ctx context.Context, pipe redis.Pipeliner, ship *model.Ship) error {
	data, err := json.Marshal(ship)
	if err != nil {
		return err
	}

	sKey := shipKey(ship.ID)
	indexKey := shipsForPlayerIndexKey(ship.PlayerID)

	pipe.Set(ctx, sKey, data, s.cfg.RoomTTL)
	pipe.SAdd(ctx, indexKey, sKey)
	pipe.Expire(ctx, indexKey, s.cfg.RoomTTL)
	return nil
}

func (s *Storage) GetShipsForPlayer(ctx context.Context, playerID model.PlayerID) ([]*model.Ship, error) {
	keys, err := s.client.SMembers(ctx, shipsForPlayerIndexKey(playerID)).Result()
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return []*model.Ship{}, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	ships := make([]*model.Ship, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var ship model.Ship
		if err := json.Unmarshal([]byte(val.(string)), &ship); err != nil {
			continue
		}
		ships = append(ships, &ship)
	}
	return ships, nil
}

// Guess operations

func (s *Storage) SaveGuess(ctx context.Context, guess *model.Guess) error {
	data, err := json.Marshal(guess)
	if err != nil {
		return err
	}

	key := guessesForRoomKey(guess.RoomID)

	pipe := s.client.Pipeline()
	pipe.RPush(ctx, key, data)
	pipe.Expire(ctx, key, s.cfg.RoomTTL)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetGuessesForRoom(ctx context.Context, roomID model.RoomID) ([]*model.Guess, error) {
	values, err := s.client.LRange(ctx, guessesForRoomKey(roomID), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	guesses := make([]*model.Guess, 0, len(values))
	for _, val := range values {
		var guess model.Guess
		if err := json.Unmarshal([]byte(val), &guess); err != nil {
			continue
		}
		guesses = append(guesses, &guess)
	}
	return guesses, nil
}

// WithRoom serializes same-room mutations with a Redis lock key. SETNX with
// a TTL stands in for row-level locking; a crashed holder's lock expires
// rather than blocking the room forever.
func (s *Storage) WithRoom(ctx context.Context, roomID model.RoomID, fn func(ctx context.Context) error) error {
	lockKey := roomLockKey(roomID)
	token := uuid.NewString()

	for {
		ok, err := s.client.SetNX(ctx, lockKey, token, s.cfg.LockTTL).Result()
		if err != nil {
			return err
		}
		if ok {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.cfg.LockRetry):
		}
	}

	defer func() {
		// Release only our own lock; an expired lock may belong to a
		// newer holder
		_ = releaseScript.Run(context.WithoutCancel(ctx), s.client, []string{lockKey}, token).Err()
	}()

	return fn(ctx)
}

// releaseScript deletes the lock key only if it still holds our token
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)
