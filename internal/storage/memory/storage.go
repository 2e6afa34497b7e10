package memory

import (
	"context"
	"sync"

	"github.com/ahoy-games/broadside/internal/model"
	"github.com/ahoy-games/broadside/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	actors           map[model.ActorID]*model.Actor
	registeredActors map[model.ActorID]*model.RegisteredActor
	usernameIndex    map[string]model.ActorID
	rooms            map[model.RoomID]*model.Room
	inviteIndex      map[model.InviteCode]model.RoomID
	players          map[model.PlayerID]*model.Player
	ships            map[model.ShipID]*model.Ship
	guesses          map[model.RoomID][]*model.Guess

	// roomLocks serializes same-room mutations
	lockMu    sync.Mutex
	roomLocks map[model.RoomID]*sync.Mutex
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		actors:           make(map[model.ActorID]*model.Actor),
		registeredActors: make(map[model.ActorID]*model.RegisteredActor),
		usernameIndex:    make(map[string]model.ActorID),
		rooms:            make(map[model.RoomID]*model.Room),
		inviteIndex:      make(map[model.InviteCode]model.RoomID),
		players:          make(map[model.PlayerID]*model.Player),
		ships:            make(map[model.ShipID]*model.Ship),
		guesses:          make(map[model.RoomID][]*model.Guess),
		roomLocks:        make(map[model.RoomID]*sync.Mutex),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Actor operations

func (s *Storage) SaveActor(ctx context.Context, actor *model.Actor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.actors[actor.ID] = actor
	return nil
}

func (s *Storage) GetActor(ctx context.Context, id model.ActorID) (*model.Actor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	actor, ok := s.actors[id]
	if !ok {
		return nil, model.ErrActorNotFound
	}
	return actor, nil
}

func (s *Storage) DeleteActor(ctx context.Context, id model.ActorID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.actors, id)
	return nil
}

// Registered actor operations

func (s *Storage) SaveRegisteredActor(ctx context.Context, ra *model.RegisteredActor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registeredActors[ra.ActorID] = ra
	s.usernameIndex[ra.Username] = ra.ActorID
	return nil
}

func (s *Storage) GetRegisteredActor(ctx context.Context, actorID model.ActorID) (*model.RegisteredActor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ra, ok := s.registeredActors[actorID]
	if !ok {
		return nil, model.ErrActorNotFound
	}
	return ra, nil
}

func (s *Storage) GetRegisteredActorByUsername(ctx context.Context, username string) (*model.RegisteredActor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	actorID, ok := s.usernameIndex[username]
	if !ok {
		return nil, model.ErrActorNotFound
	}
	ra, ok := s.registeredActors[actorID]
	if !ok {
		return nil, model.ErrActorNotFound
	}
	return ra, nil
}

// Room operations

func (s *Storage) SaveRoom(ctx context.Context, room *model.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms[room.ID] = room
	if room.InviteCode != "" {
		s.inviteIndex[room.InviteCode] = room.ID
	}
	return nil
}

func (s *Storage) GetRoom(ctx context.Context, id model.RoomID) (*model.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	room, ok := s.rooms[id]
	if !ok {
		return nil, model.ErrRoomNotFound
	}
	return room, nil
}

func (s *Storage) GetRoomByInvite(ctx context.Context, code model.InviteCode) (*model.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.inviteIndex[code]
	if !ok {
		return nil, model.ErrRoomNotFound
	}
	room, ok := s.rooms[id]
	if !ok {
		return nil, model.ErrRoomNotFound
	}
	return room, nil
}

func (s *Storage) ListWaitingRooms(ctx context.Context) ([]*model.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var rooms []*model.Room
	for _, room := range s.rooms {
		if room.Phase == model.PhaseWaiting {
			rooms = append(rooms, room)
		}
	}
	return rooms, nil
}

// DeleteRoom removes the room and cascades to its players, ships, and
// guesses.
func (s *Storage) DeleteRoom(ctx context.Context, id model.RoomID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[id]
	if !ok {
		return nil
	}
	if room.InviteCode != "" {
		delete(s.inviteIndex, room.InviteCode)
	}
	delete(s.rooms, id)
	delete(s.guesses, id)

	for pid, player := range s.players {
		if player.RoomID != id {
			continue
		}
		for sid, ship := range s.ships {
			if ship.PlayerID == pid {
				delete(s.ships, sid)
			}
		}
		delete(s.players, pid)
	}
	return nil
}

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[player.ID] = player
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return player, nil
}

func (s *Storage) GetPlayersForRoom(ctx context.Context, roomID model.RoomID) ([]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var players []*model.Player
	for _, player := range s.players {
		if player.RoomID == roomID {
			players = append(players, player)
		}
	}
	sortPlayersBySeat(players)
	return players, nil
}

// Ship operations

func (s *Storage) SaveShips(ctx context.Context, ships []*model.Ship) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ship := range ships {
		s.ships[ship.ID] = ship
	}
	return nil
}

func (s *Storage) SaveShip(ctx context.Context, ship *model.Ship) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ships[ship.ID] = ship
	return nil
}

func (s *Storage) GetShipsForPlayer(ctx context.Context, playerID model.PlayerID) ([]*model.Ship, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var ships []*model.Ship
	for _, ship := range s.ships {
		if ship.PlayerID == playerID {
			ships = append(ships, ship)
		}
	}
	sortShipsByID(ships)
	return ships, nil
}

// Guess operations

func (s *Storage) SaveGuess(ctx context.Context, guess *model.Guess) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.guesses[guess.RoomID] = append(s.guesses[guess.RoomID], guess)
	return nil
}

func (s *Storage) GetGuessesForRoom(ctx context.Context, roomID model.RoomID) ([]*model.Guess, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	guesses := s.guesses[roomID]
	out := make([]*model.Guess, len(guesses))
	copy(out, guesses)
	return out, nil
}

// WithRoom runs fn while holding the room's mutation lock

func (s *Storage) WithRoom(ctx context.Context, roomID model.RoomID, fn func(ctx context.Context) error) error {
	lock := s.roomLock(roomID)
	lock.Lock()
	defer lock.Unlock()
	return fn(ctx)
}

func (s *Storage) roomLock(roomID model.RoomID) *sync.Mutex {
	s.lockMu.Lock()
	defer s.lockMu.Unlock()
	lock, ok := s.roomLocks[roomID]
	if !ok {
		lock = &sync.Mutex{}
		s.roomLocks[roomID] = lock
	}
	return lock
}
