package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahoy-games/broadside/internal/model"
)

func TestDecideAttackMissFlipsTurn(t *testing.T) {
	snap := activeSnapshot()

	// (9,9) is open water in the standard layout
	d, err := DecideAttack(snap, "pl-1", model.Coord{X: 9, Y: 9}, "g-1")
	require.NoError(t, err)

	assert.Equal(t, model.ResultMiss, d.Guess.Result)
	assert.Nil(t, d.Guess.HitShipID)
	assert.Nil(t, d.SunkShipID)
	assert.Equal(t, model.PhaseActive, d.Phase)
	require.NotNil(t, d.TurnPlayerID)
	assert.Equal(t, model.PlayerID("pl-2"), *d.TurnPlayerID)
	assert.Nil(t, d.WinnerID)
}

func TestDecideAttackHitKeepsTurn(t *testing.T) {
	snap := activeSnapshot()

	// First cell of the defender's carrier
	d, err := DecideAttack(snap, "pl-1", model.Coord{X: 0, Y: 0}, "g-1")
	require.NoError(t, err)

	assert.Equal(t, model.ResultHit, d.Guess.Result)
	require.NotNil(t, d.Guess.HitShipID)
	assert.Equal(t, model.ShipID("s2-0"), *d.Guess.HitShipID)
	assert.Nil(t, d.SunkShipID)
	require.NotNil(t, d.TurnPlayerID)
	assert.Equal(t, model.PlayerID("pl-1"), *d.TurnPlayerID)
}

func TestDecideAttackGuessRecordsBothSeats(t *testing.T) {
	snap := activeSnapshot()

	d, err := DecideAttack(snap, "pl-1", model.Coord{X: 5, Y: 5}, "g-1")
	require.NoError(t, err)

	assert.Equal(t, model.GuessID("g-1"), d.Guess.ID)
	assert.Equal(t, model.RoomID("room-1"), d.Guess.RoomID)
	assert.Equal(t, model.PlayerID("pl-1"), d.Guess.AttackerID)
	assert.Equal(t, model.PlayerID("pl-2"), d.Guess.DefenderID)
}

func TestDecideAttackFinalHitSinksShip(t *testing.T) {
	snap := activeSnapshot()

	// Destroyer s2-4 covers (0,4) and (1,4); one hit already recorded
	hit := model.ShipID("s2-4")
	snap.Guesses = append(snap.Guesses, model.Guess{
		ID: "g-0", RoomID: "room-1", AttackerID: "pl-1", DefenderID: "pl-2",
		Target: model.Coord{X: 0, Y: 4}, Result: model.ResultHit, HitShipID: &hit,
	})

	d, err := DecideAttack(snap, "pl-1", model.Coord{X: 1, Y: 4}, "g-1")
	require.NoError(t, err)

	assert.Equal(t, model.ResultSunk, d.Guess.Result)
	require.NotNil(t, d.SunkShipID)
	assert.Equal(t, hit, *d.SunkShipID)

	// Fleet remains, so the attacker keeps the turn and the match goes on
	assert.Equal(t, model.PhaseActive, d.Phase)
	require.NotNil(t, d.TurnPlayerID)
	assert.Equal(t, model.PlayerID("pl-1"), *d.TurnPlayerID)
	assert.Nil(t, d.WinnerID)
}

func TestDecideAttackLastSinkFinishesMatch(t *testing.T) {
	snap := activeSnapshot()

	// Everything but the destroyer is already down, and its first cell hit
	for i := range snap.Ships {
		if snap.Ships[i].PlayerID == "pl-2" && snap.Ships[i].ID != "s2-4" {
			snap.Ships[i].Sunk = true
		}
	}
	hit := model.ShipID("s2-4")
	snap.Guesses = append(snap.Guesses, model.Guess{
		ID: "g-0", RoomID: "room-1", AttackerID: "pl-1", DefenderID: "pl-2",
		Target: model.Coord{X: 0, Y: 4}, Result: model.ResultHit, HitShipID: &hit,
	})

	d, err := DecideAttack(snap, "pl-1", model.Coord{X: 1, Y: 4}, "g-1")
	require.NoError(t, err)

	assert.Equal(t, model.ResultSunk, d.Guess.Result)
	assert.Equal(t, model.PhaseFinished, d.Phase)
	assert.Nil(t, d.TurnPlayerID)
	require.NotNil(t, d.WinnerID)
	assert.Equal(t, model.ActorID("a-1"), *d.WinnerID)
}

func TestDecideAttackRejectsWrongPhase(t *testing.T) {
	snap := placingSnapshot()

	_, err := DecideAttack(snap, "pl-1", model.Coord{X: 0, Y: 0}, "g-1")
	assert.ErrorIs(t, err, model.ErrInvalidPhase)

	finished := activeSnapshot()
	finished.Room.Phase = model.PhaseFinished
	finished.Room.TurnPlayerID = nil

	_, err = DecideAttack(finished, "pl-1", model.Coord{X: 0, Y: 0}, "g-1")
	assert.ErrorIs(t, err, model.ErrInvalidPhase)
}

func TestDecideAttackRejectsOutOfTurn(t *testing.T) {
	snap := activeSnapshot()

	_, err := DecideAttack(snap, "pl-2", model.Coord{X: 0, Y: 0}, "g-1")
	assert.ErrorIs(t, err, model.ErrNotYourTurn)
}

func TestDecideAttackRejectsOutOfBounds(t *testing.T) {
	snap := activeSnapshot()

	for _, target := range []model.Coord{
		{X: -1, Y: 0}, {X: 0, Y: -1}, {X: 10, Y: 0}, {X: 0, Y: 10},
	} {
		_, err := DecideAttack(snap, "pl-1", target, "g-1")
		assert.ErrorIs(t, err, model.ErrInvalidCoordinate)
	}
}

func TestDecideAttackRejectsDuplicateGuess(t *testing.T) {
	snap := activeSnapshot()
	snap.Guesses = append(snap.Guesses, model.Guess{
		ID: "g-0", RoomID: "room-1", AttackerID: "pl-1", DefenderID: "pl-2",
		Target: model.Coord{X: 9, Y: 9}, Result: model.ResultMiss,
	})

	_, err := DecideAttack(snap, "pl-1", model.Coord{X: 9, Y: 9}, "g-1")
	assert.ErrorIs(t, err, model.ErrDuplicateGuess)
}

func TestDecideAttackDuplicateIsPerAttacker(t *testing.T) {
	// The defender guessing a cell does not block the attacker from it
	snap := activeSnapshot()
	snap.Guesses = append(snap.Guesses, model.Guess{
		ID: "g-0", RoomID: "room-1", AttackerID: "pl-2", DefenderID: "pl-1",
		Target: model.Coord{X: 9, Y: 9}, Result: model.ResultMiss,
	})

	_, err := DecideAttack(snap, "pl-1", model.Coord{X: 9, Y: 9}, "g-1")
	assert.NoError(t, err)
}

func TestDecideAttackCheckOrder(t *testing.T) {
	// Out-of-turn beats out-of-bounds: a player without the turn never
	// learns whether their coordinate was even legal
	snap := activeSnapshot()

	_, err := DecideAttack(snap, "pl-2", model.Coord{X: 42, Y: 42}, "g-1")
	assert.ErrorIs(t, err, model.ErrNotYourTurn)

	// Out-of-bounds beats duplicate: only legal coordinates enter the
	// guess history at all
	snap.Guesses = append(snap.Guesses, model.Guess{
		ID: "g-0", AttackerID: "pl-1", DefenderID: "pl-2",
		Target: model.Coord{X: 42, Y: 42}, Result: model.ResultMiss,
	})
	_, err = DecideAttack(snap, "pl-1", model.Coord{X: 42, Y: 42}, "g-1")
	assert.ErrorIs(t, err, model.ErrInvalidCoordinate)
}

func TestFullMatchPlayedToVictory(t *testing.T) {
	// Seat 1 hunts the entire enemy fleet cell by cell; every shot lands,
	// so the turn never leaves them and the match ends on the 17th hit.
	snap := activeSnapshot()

	shots := 0
	for _, spec := range standardSpecs() {
		for _, cell := range spec.Segment.Cells() {
			d, err := DecideAttack(snap, "pl-1", cell, model.GuessID(fmt.Sprintf("g-%d", shots)))
			require.NoError(t, err)
			snap = ApplyAttack(snap, d)
			shots++
		}
	}

	assert.Equal(t, 17, shots)
	assert.Equal(t, model.PhaseFinished, snap.Room.Phase)
	assert.Nil(t, snap.Room.TurnPlayerID)
	require.NotNil(t, snap.Room.WinnerActorID)
	assert.Equal(t, model.ActorID("a-1"), *snap.Room.WinnerActorID)

	for _, ship := range snap.FleetOf("pl-2") {
		assert.True(t, ship.Sunk)
	}
}
