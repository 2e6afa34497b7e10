package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahoy-games/broadside/internal/model"
)

func TestValidateFleetAcceptsLegalFleet(t *testing.T) {
	assert.NoError(t, ValidateFleet(standardSpecs()))
}

func TestValidateFleetAcceptsVerticalAndReversedShips(t *testing.T) {
	specs := []model.ShipSpec{
		{Kind: model.KindCarrier, Segment: seg(0, 0, 0, 4)},
		{Kind: model.KindBattleship, Segment: seg(2, 3, 2, 0)},
		{Kind: model.KindCruiser, Segment: seg(9, 2, 9, 0)},
		{Kind: model.KindSubmarine, Segment: seg(4, 9, 6, 9)},
		{Kind: model.KindDestroyer, Segment: seg(8, 5, 8, 6)},
	}
	assert.NoError(t, ValidateFleet(specs))
}

func TestValidateFleetRejectsPartialFleet(t *testing.T) {
	specs := standardSpecs()[:4]
	assert.ErrorIs(t, ValidateFleet(specs), model.ErrInvalidFleet)
}

func TestValidateFleetRejectsDuplicateKind(t *testing.T) {
	specs := standardSpecs()
	// Two carriers, no battleship
	specs[1] = model.ShipSpec{Kind: model.KindCarrier, Segment: seg(5, 5, 9, 5)}
	assert.ErrorIs(t, ValidateFleet(specs), model.ErrInvalidFleet)
}

func TestValidateFleetRejectsUnknownKind(t *testing.T) {
	specs := standardSpecs()
	specs[4].Kind = "dreadnought"
	assert.ErrorIs(t, ValidateFleet(specs), model.ErrInvalidFleet)
}

func TestValidateFleetRejectsDiagonalShip(t *testing.T) {
	specs := standardSpecs()
	specs[2].Segment = seg(5, 5, 7, 7)
	assert.ErrorIs(t, ValidateFleet(specs), model.ErrInvalidFleet)
}

func TestValidateFleetRejectsWrongLength(t *testing.T) {
	specs := standardSpecs()
	// Destroyer stretched to 3 cells
	specs[4].Segment = seg(0, 4, 2, 4)
	assert.ErrorIs(t, ValidateFleet(specs), model.ErrInvalidFleet)
}

func TestValidateFleetRejectsOutOfBounds(t *testing.T) {
	specs := standardSpecs()
	specs[0].Segment = seg(7, 0, 11, 0)
	assert.ErrorIs(t, ValidateFleet(specs), model.ErrInvalidFleet)
}

func TestValidateFleetRejectsOverlap(t *testing.T) {
	specs := standardSpecs()
	// Submarine crosses the carrier's row
	specs[3].Segment = seg(2, 0, 2, 2)
	assert.ErrorIs(t, ValidateFleet(specs), model.ErrInvalidFleet)
}

func TestDecideFleetFirstPlacementKeepsPlacingPhase(t *testing.T) {
	snap := placingSnapshot()

	d, err := DecideFleet(snap, "pl-1", standardSpecs(), shipIDs("s1", 5))
	require.NoError(t, err)

	assert.True(t, d.Player.FleetPlaced)
	assert.Len(t, d.Ships, model.FleetSize)
	assert.Equal(t, model.PhasePlacing, d.Phase)
	assert.Nil(t, d.TurnPlayerID)

	for i, ship := range d.Ships {
		assert.Equal(t, model.PlayerID("pl-1"), ship.PlayerID)
		assert.False(t, ship.Sunk)
		assert.Equal(t, standardSpecs()[i].Kind, ship.Kind)
	}
}

func TestDecideFleetSecondPlacementStartsMatch(t *testing.T) {
	snap := placingSnapshot()
	snap.Players[0].FleetPlaced = true

	d, err := DecideFleet(snap, "pl-2", standardSpecs(), shipIDs("s2", 5))
	require.NoError(t, err)

	assert.Equal(t, model.PhaseActive, d.Phase)
	require.NotNil(t, d.TurnPlayerID)
	// Seat 1 opens regardless of placement order
	assert.Equal(t, model.PlayerID("pl-1"), *d.TurnPlayerID)
}

func TestDecideFleetRejectsUnknownPlayer(t *testing.T) {
	snap := placingSnapshot()

	_, err := DecideFleet(snap, "pl-9", standardSpecs(), shipIDs("s", 5))
	assert.ErrorIs(t, err, model.ErrPlayerNotFound)
}

func TestDecideFleetRejectsWrongPhase(t *testing.T) {
	snap := waitingSnapshot()

	_, err := DecideFleet(snap, "pl-1", standardSpecs(), shipIDs("s", 5))
	assert.ErrorIs(t, err, model.ErrInvalidPhase)

	active := activeSnapshot()
	active.Players[0].FleetPlaced = false

	_, err = DecideFleet(active, "pl-1", standardSpecs(), shipIDs("s", 5))
	assert.ErrorIs(t, err, model.ErrInvalidPhase)
}

func TestDecideFleetRejectsRepeatPlacement(t *testing.T) {
	snap := placingSnapshot()
	snap.Players[0].FleetPlaced = true

	_, err := DecideFleet(snap, "pl-1", standardSpecs(), shipIDs("s", 5))
	assert.ErrorIs(t, err, model.ErrAlreadyPlaced)
}

func TestDecideFleetRejectsInvalidFleetAtomically(t *testing.T) {
	snap := placingSnapshot()
	specs := standardSpecs()
	specs[3].Segment = seg(2, 0, 2, 2)

	d, err := DecideFleet(snap, "pl-1", specs, shipIDs("s", 5))
	assert.ErrorIs(t, err, model.ErrInvalidFleet)
	assert.Nil(t, d)

	// Nothing was written: a correct resubmission still succeeds fresh
	_, err = DecideFleet(snap, "pl-1", standardSpecs(), shipIDs("s", 5))
	assert.NoError(t, err)
}
