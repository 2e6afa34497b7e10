package rooms

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/ahoy-games/broadside/internal/dependencies/mocks"
	"github.com/ahoy-games/broadside/internal/model"
	"github.com/ahoy-games/broadside/internal/storage/memory"
	"github.com/ahoy-games/broadside/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	storage    *memory.Storage
	clock      *mocks.MockClock
	random     *mocks.MockRandom
	controller *Controller
	ctx        context.Context

	actor1 *model.Actor
	actor2 *model.Actor
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.controller = NewController(s.storage, s.clock, s.random, testutil.NopLogger())
	s.ctx = context.Background()

	s.actor1 = &model.Actor{ID: "a_one", DisplayName: "One", IsGuest: true}
	s.actor2 = &model.Actor{ID: "a_two", DisplayName: "Two", IsGuest: true}
	s.Require().NoError(s.storage.SaveActor(s.ctx, s.actor1))
	s.Require().NoError(s.storage.SaveActor(s.ctx, s.actor2))
}

// standardSpecs is a legal fleet on consecutive rows
func standardSpecs() []model.ShipSpec {
	return []model.ShipSpec{
		{Kind: model.KindCarrier, Segment: seg(0, 0, 4, 0)},
		{Kind: model.KindBattleship, Segment: seg(0, 1, 3, 1)},
		{Kind: model.KindCruiser, Segment: seg(0, 2, 2, 2)},
		{Kind: model.KindSubmarine, Segment: seg(0, 3, 2, 3)},
		{Kind: model.KindDestroyer, Segment: seg(0, 4, 1, 4)},
	}
}

func seg(x1, y1, x2, y2 int) model.Segment {
	return model.Segment{
		Start: model.Coord{X: x1, Y: y1},
		End:   model.Coord{X: x2, Y: y2},
	}
}

// setupActiveMatch drives a room from creation to the active phase and
// returns the room with both player rows.
func (s *ControllerSuite) setupActiveMatch() (*model.Room, *model.Player, *model.Player) {
	room, p1, err := s.controller.CreateRoom(s.ctx, s.actor1)
	s.Require().NoError(err)

	p2, err := s.controller.JoinRoom(s.ctx, s.actor2, room.ID)
	s.Require().NoError(err)

	s.Require().NoError(s.controller.PlaceFleet(s.ctx, s.actor1, p1.ID, standardSpecs()))
	s.Require().NoError(s.controller.PlaceFleet(s.ctx, s.actor2, p2.ID, standardSpecs()))

	updated, err := s.controller.GetRoom(s.ctx, room.ID)
	s.Require().NoError(err)
	return updated, p1, p2
}

// CreateRoom tests

func (s *ControllerSuite) TestCreateRoomSeatsCreatorAtSeatOne() {
	s.random.QueueCode("HELLO1")

	room, player, err := s.controller.CreateRoom(s.ctx, s.actor1)
	s.Require().NoError(err)

	s.Equal(model.PhaseWaiting, room.Phase)
	s.Equal(model.InviteCode("HELLO1"), room.InviteCode)
	s.Nil(room.TurnPlayerID)
	s.Nil(room.WinnerActorID)

	s.Equal(room.ID, player.RoomID)
	s.Equal(s.actor1.ID, player.ActorID)
	s.Equal(model.Seat1, player.Seat)
	s.True(player.Ready)
	s.False(player.FleetPlaced)
}

func (s *ControllerSuite) TestCreateRoomRequiresActor() {
	_, _, err := s.controller.CreateRoom(s.ctx, nil)
	s.ErrorIs(err, model.ErrNotAuthenticated)
}

func (s *ControllerSuite) TestCreateRoomRetriesCollidingInviteCode() {
	s.random.QueueCode("SAME00")
	first, _, err := s.controller.CreateRoom(s.ctx, s.actor1)
	s.Require().NoError(err)

	// Second room draws the same code once, then a fresh one
	s.random.QueueCode("SAME00", "OTHER0")
	second, _, err := s.controller.CreateRoom(s.ctx, s.actor2)
	s.Require().NoError(err)

	s.Equal(model.InviteCode("SAME00"), first.InviteCode)
	s.Equal(model.InviteCode("OTHER0"), second.InviteCode)
}

func (s *ControllerSuite) TestCreateRoomIsListedWhileWaiting() {
	room, _, err := s.controller.CreateRoom(s.ctx, s.actor1)
	s.Require().NoError(err)

	open, err := s.controller.ListOpenRooms(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(open, 1)
	s.Equal(room.ID, open[0].ID)
}

// JoinRoom tests

func (s *ControllerSuite) TestJoinRoomAdvancesToPlacing() {
	room, _, err := s.controller.CreateRoom(s.ctx, s.actor1)
	s.Require().NoError(err)

	player, err := s.controller.JoinRoom(s.ctx, s.actor2, room.ID)
	s.Require().NoError(err)

	s.Equal(model.Seat2, player.Seat)
	s.True(player.Ready)

	updated, err := s.controller.GetRoom(s.ctx, room.ID)
	s.Require().NoError(err)
	s.Equal(model.PhasePlacing, updated.Phase)

	// Room no longer advertised
	open, err := s.controller.ListOpenRooms(s.ctx)
	s.Require().NoError(err)
	s.Empty(open)
}

func (s *ControllerSuite) TestJoinRoomRejectsCreatorRejoining() {
	room, _, err := s.controller.CreateRoom(s.ctx, s.actor1)
	s.Require().NoError(err)

	_, err = s.controller.JoinRoom(s.ctx, s.actor1, room.ID)
	s.ErrorIs(err, model.ErrAlreadyJoined)
}

func (s *ControllerSuite) TestJoinRoomRejectsThirdActor() {
	room, _, err := s.controller.CreateRoom(s.ctx, s.actor1)
	s.Require().NoError(err)

	_, err = s.controller.JoinRoom(s.ctx, s.actor2, room.ID)
	s.Require().NoError(err)

	actor3 := &model.Actor{ID: "a_three", DisplayName: "Three", IsGuest: true}
	s.Require().NoError(s.storage.SaveActor(s.ctx, actor3))

	_, err = s.controller.JoinRoom(s.ctx, actor3, room.ID)
	s.ErrorIs(err, model.ErrInvalidPhase)
}

func (s *ControllerSuite) TestJoinRoomUnknownRoom() {
	_, err := s.controller.JoinRoom(s.ctx, s.actor2, "room_missing")
	s.ErrorIs(err, model.ErrRoomNotFound)
}

// GetRoomByInvite tests

func (s *ControllerSuite) TestGetRoomByInvite() {
	s.random.QueueCode("FIND01")
	room, _, err := s.controller.CreateRoom(s.ctx, s.actor1)
	s.Require().NoError(err)

	found, err := s.controller.GetRoomByInvite(s.ctx, "FIND01")
	s.Require().NoError(err)
	s.Equal(room.ID, found.ID)

	_, err = s.controller.GetRoomByInvite(s.ctx, "NOPE00")
	s.ErrorIs(err, model.ErrRoomNotFound)
}

// PlaceFleet tests

func (s *ControllerSuite) TestPlaceFleetFirstKeepsPlacing() {
	room, p1, err := s.controller.CreateRoom(s.ctx, s.actor1)
	s.Require().NoError(err)
	_, err = s.controller.JoinRoom(s.ctx, s.actor2, room.ID)
	s.Require().NoError(err)

	s.Require().NoError(s.controller.PlaceFleet(s.ctx, s.actor1, p1.ID, standardSpecs()))

	updated, err := s.controller.GetRoom(s.ctx, room.ID)
	s.Require().NoError(err)
	s.Equal(model.PhasePlacing, updated.Phase)
	s.Nil(updated.TurnPlayerID)

	ships, err := s.storage.GetShipsForPlayer(s.ctx, p1.ID)
	s.Require().NoError(err)
	s.Len(ships, model.FleetSize)
}

func (s *ControllerSuite) TestPlaceFleetSecondStartsMatchWithSeatOneOpening() {
	room, p1, _ := s.setupActiveMatch()

	s.Equal(model.PhaseActive, room.Phase)
	s.Require().NotNil(room.TurnPlayerID)
	s.Equal(p1.ID, *room.TurnPlayerID)
}

func (s *ControllerSuite) TestPlaceFleetRejectsWrongActor() {
	room, p1, err := s.controller.CreateRoom(s.ctx, s.actor1)
	s.Require().NoError(err)
	_, err = s.controller.JoinRoom(s.ctx, s.actor2, room.ID)
	s.Require().NoError(err)

	err = s.controller.PlaceFleet(s.ctx, s.actor2, p1.ID, standardSpecs())
	s.ErrorIs(err, model.ErrUnauthorized)
}

func (s *ControllerSuite) TestPlaceFleetRejectsInvalidFleetWithoutWrites() {
	room, p1, err := s.controller.CreateRoom(s.ctx, s.actor1)
	s.Require().NoError(err)
	_, err = s.controller.JoinRoom(s.ctx, s.actor2, room.ID)
	s.Require().NoError(err)

	bad := standardSpecs()
	bad[3].Segment = seg(2, 0, 2, 2) // crosses the carrier

	err = s.controller.PlaceFleet(s.ctx, s.actor1, p1.ID, bad)
	s.ErrorIs(err, model.ErrInvalidFleet)

	ships, err := s.storage.GetShipsForPlayer(s.ctx, p1.ID)
	s.Require().NoError(err)
	s.Empty(ships)

	player, err := s.storage.GetPlayer(s.ctx, p1.ID)
	s.Require().NoError(err)
	s.False(player.FleetPlaced)
}

func (s *ControllerSuite) TestPlaceFleetRejectsSecondSubmission() {
	room, p1, err := s.controller.CreateRoom(s.ctx, s.actor1)
	s.Require().NoError(err)
	_, err = s.controller.JoinRoom(s.ctx, s.actor2, room.ID)
	s.Require().NoError(err)

	s.Require().NoError(s.controller.PlaceFleet(s.ctx, s.actor1, p1.ID, standardSpecs()))

	err = s.controller.PlaceFleet(s.ctx, s.actor1, p1.ID, standardSpecs())
	s.ErrorIs(err, model.ErrAlreadyPlaced)
}

func (s *ControllerSuite) TestPlaceFleetRejectsWaitingPhase() {
	_, p1, err := s.controller.CreateRoom(s.ctx, s.actor1)
	s.Require().NoError(err)

	err = s.controller.PlaceFleet(s.ctx, s.actor1, p1.ID, standardSpecs())
	s.ErrorIs(err, model.ErrInvalidPhase)
}

// Attack tests

func (s *ControllerSuite) TestAttackMissFlipsTurn() {
	room, p1, p2 := s.setupActiveMatch()

	guess, err := s.controller.Attack(s.ctx, s.actor1, p1.ID, model.Coord{X: 9, Y: 9})
	s.Require().NoError(err)

	s.Equal(model.ResultMiss, guess.Result)
	s.Nil(guess.HitShipID)
	s.Equal(s.clock.Now(), guess.CreatedAt)

	updated, err := s.controller.GetRoom(s.ctx, room.ID)
	s.Require().NoError(err)
	s.Require().NotNil(updated.TurnPlayerID)
	s.Equal(p2.ID, *updated.TurnPlayerID)
}

func (s *ControllerSuite) TestAttackHitKeepsTurn() {
	room, p1, _ := s.setupActiveMatch()

	guess, err := s.controller.Attack(s.ctx, s.actor1, p1.ID, model.Coord{X: 0, Y: 0})
	s.Require().NoError(err)

	s.Equal(model.ResultHit, guess.Result)
	s.NotNil(guess.HitShipID)

	updated, err := s.controller.GetRoom(s.ctx, room.ID)
	s.Require().NoError(err)
	s.Require().NotNil(updated.TurnPlayerID)
	s.Equal(p1.ID, *updated.TurnPlayerID)
}

func (s *ControllerSuite) TestAttackSinkMarksShip() {
	_, p1, p2 := s.setupActiveMatch()

	// Destroyer occupies (0,4) and (1,4)
	_, err := s.controller.Attack(s.ctx, s.actor1, p1.ID, model.Coord{X: 0, Y: 4})
	s.Require().NoError(err)

	guess, err := s.controller.Attack(s.ctx, s.actor1, p1.ID, model.Coord{X: 1, Y: 4})
	s.Require().NoError(err)
	s.Equal(model.ResultSunk, guess.Result)
	s.Require().NotNil(guess.HitShipID)

	ships, err := s.storage.GetShipsForPlayer(s.ctx, p2.ID)
	s.Require().NoError(err)
	sunk := 0
	for _, ship := range ships {
		if ship.Sunk {
			sunk++
			s.Equal(*guess.HitShipID, ship.ID)
		}
	}
	s.Equal(1, sunk)
}

func (s *ControllerSuite) TestAttackRejectsOutOfTurn() {
	_, _, p2 := s.setupActiveMatch()

	_, err := s.controller.Attack(s.ctx, s.actor2, p2.ID, model.Coord{X: 0, Y: 0})
	s.ErrorIs(err, model.ErrNotYourTurn)
}

func (s *ControllerSuite) TestAttackRejectsWrongActor() {
	_, p1, _ := s.setupActiveMatch()

	_, err := s.controller.Attack(s.ctx, s.actor2, p1.ID, model.Coord{X: 0, Y: 0})
	s.ErrorIs(err, model.ErrUnauthorized)
}

func (s *ControllerSuite) TestAttackRejectsOutOfBounds() {
	_, p1, _ := s.setupActiveMatch()

	_, err := s.controller.Attack(s.ctx, s.actor1, p1.ID, model.Coord{X: 10, Y: 0})
	s.ErrorIs(err, model.ErrInvalidCoordinate)
}

func (s *ControllerSuite) TestAttackRejectsDuplicateCell() {
	_, p1, _ := s.setupActiveMatch()

	_, err := s.controller.Attack(s.ctx, s.actor1, p1.ID, model.Coord{X: 0, Y: 0})
	s.Require().NoError(err)

	_, err = s.controller.Attack(s.ctx, s.actor1, p1.ID, model.Coord{X: 0, Y: 0})
	s.ErrorIs(err, model.ErrDuplicateGuess)
}

func (s *ControllerSuite) TestAttackPlaysWholeMatchToVictory() {
	room, p1, _ := s.setupActiveMatch()

	var last *model.Guess
	shots := 0
	for _, spec := range standardSpecs() {
		for _, cell := range spec.Segment.Cells() {
			guess, err := s.controller.Attack(s.ctx, s.actor1, p1.ID, cell)
			s.Require().NoError(err, fmt.Sprintf("shot %d at (%d,%d)", shots, cell.X, cell.Y))
			last = guess
			shots++
		}
	}

	s.Equal(17, shots)
	s.Equal(model.ResultSunk, last.Result)

	finished, err := s.controller.GetRoom(s.ctx, room.ID)
	s.Require().NoError(err)
	s.Equal(model.PhaseFinished, finished.Phase)
	s.Nil(finished.TurnPlayerID)
	s.Require().NotNil(finished.WinnerActorID)
	s.Equal(s.actor1.ID, *finished.WinnerActorID)

	// A finished room refuses further attacks from anyone
	_, err = s.controller.Attack(s.ctx, s.actor1, p1.ID, model.Coord{X: 9, Y: 9})
	s.ErrorIs(err, model.ErrInvalidPhase)
}

func (s *ControllerSuite) TestAttackGuessHistoryIsOrdered() {
	_, p1, p2 := s.setupActiveMatch()

	_, err := s.controller.Attack(s.ctx, s.actor1, p1.ID, model.Coord{X: 9, Y: 9})
	s.Require().NoError(err)
	_, err = s.controller.Attack(s.ctx, s.actor2, p2.ID, model.Coord{X: 8, Y: 8})
	s.Require().NoError(err)

	snap, err := s.controller.Snapshot(s.ctx, p1.RoomID)
	s.Require().NoError(err)
	s.Require().Len(snap.Guesses, 2)
	s.Equal(p1.ID, snap.Guesses[0].AttackerID)
	s.Equal(p2.ID, snap.Guesses[1].AttackerID)
}
