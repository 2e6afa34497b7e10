package redis

import (
	"fmt"

	"github.com/ahoy-games/broadside/internal/model"
)

// Key prefix for all match-related data
const keyPrefix = "bside"

// actorKey returns the Redis key for an Actor
func actorKey(id model.ActorID) string {
	return fmt.Sprintf("%s:actor:%s", keyPrefix, id)
}

// registeredActorKey returns the Redis key for a RegisteredActor
func registeredActorKey(id model.ActorID) string {
	return fmt.Sprintf("%s:registered_actor:%s", keyPrefix, id)
}

// usernameIndexKey returns the Redis key for the username -> actor_id index
func usernameIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:username:%s", keyPrefix, username)
}

// roomKey returns the Redis key for a Room
func roomKey(id model.RoomID) string {
	return fmt.Sprintf("%s:room:%s", keyPrefix, id)
}

// inviteIndexKey returns the Redis key for the invite_code -> room_id index
func inviteIndexKey(code model.InviteCode) string {
	return fmt.Sprintf("%s:idx:invite:%s", keyPrefix, code)
}

// waitingRoomsKey returns the Redis key for the SET of waiting room ids
func waitingRoomsKey() string {
	return fmt.Sprintf("%s:idx:waiting_rooms", keyPrefix)
}

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// playersForRoomIndexKey returns the Redis key for the SET of players in a room
func playersForRoomIndexKey(roomID model.RoomID) string {
	return fmt.Sprintf("%s:idx:players_for_room:%s", keyPrefix, roomID)
}

// shipKey returns the Redis key for a Ship
func shipKey(id model.ShipID) string {
	return fmt.Sprintf("%s:ship:%s", keyPrefix, id)
}

// shipsForPlayerIndexKey returns the Redis key for the SET of a player's ships
func shipsForPlayerIndexKey(playerID model.PlayerID) string {
	return fmt.Sprintf("%s:idx:ships_for_player:%s", keyPrefix, playerID)
}

// guessesForRoomKey returns the Redis key for the LIST of a room's guesses.
// A list keeps the append-only history in commit order.
func guessesForRoomKey(roomID model.RoomID) string {
	return fmt.Sprintf("%s:guesses:%s", keyPrefix, roomID)
}

// roomLockKey returns the Redis key used to serialize same-room mutations
func roomLockKey(roomID model.RoomID) string {
	return fmt.Sprintf("%s:lock:room:%s", keyPrefix, roomID)
}
