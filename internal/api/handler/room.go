package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ahoy-games/broadside/internal/api/middleware"
	"github.com/ahoy-games/broadside/internal/api/request"
	"github.com/ahoy-games/broadside/internal/api/response"
	"github.com/ahoy-games/broadside/internal/model"
	"github.com/ahoy-games/broadside/internal/services/rooms"
	"github.com/ahoy-games/broadside/internal/services/view"
)

// RoomHandler handles room and gameplay endpoints
type RoomHandler struct {
	roomController *rooms.Controller
	viewService    *view.Service
}

// NewRoomHandler creates a new room handler
func NewRoomHandler(roomController *rooms.Controller, viewService *view.Service) *RoomHandler {
	return &RoomHandler{
		roomController: roomController,
		viewService:    viewService,
	}
}

// Create handles POST /api/v1/rooms
func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor := middleware.MustGetActor(r.Context())

	room, player, err := h.roomController.CreateRoom(r.Context(), actor)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.CreateRoomResponse{
		Room:   response.RoomFromModel(room),
		Player: response.PlayerFromModel(player),
	})
}

// List handles GET /api/v1/rooms
// Only rooms still waiting for a second player are listed
func (h *RoomHandler) List(w http.ResponseWriter, r *http.Request) {
	openRooms, err := h.roomController.ListOpenRooms(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RoomListFromModel(openRooms))
}

// Get handles GET /api/v1/rooms/{roomID}
func (h *RoomHandler) Get(w http.ResponseWriter, r *http.Request) {
	roomID := model.RoomID(mux.Vars(r)["roomID"])

	room, err := h.roomController.GetRoom(r.Context(), roomID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RoomFromModel(room))
}

// GetByInvite handles GET /api/v1/rooms/invite/{code}
func (h *RoomHandler) GetByInvite(w http.ResponseWriter, r *http.Request) {
	code := model.InviteCode(mux.Vars(r)["code"])

	room, err := h.roomController.GetRoomByInvite(r.Context(), code)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RoomFromModel(room))
}

// Join handles POST /api/v1/rooms/{roomID}/join
func (h *RoomHandler) Join(w http.ResponseWriter, r *http.Request) {
	actor := middleware.MustGetActor(r.Context())
	roomID := model.RoomID(mux.Vars(r)["roomID"])

	player, err := h.roomController.JoinRoom(r.Context(), actor, roomID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.JoinRoomResponse{
		Player: response.PlayerFromModel(player),
	})
}

// PlaceFleet handles POST /api/v1/rooms/{roomID}/players/{playerID}/fleet
func (h *RoomHandler) PlaceFleet(w http.ResponseWriter, r *http.Request) {
	actor := middleware.MustGetActor(r.Context())
	playerID := model.PlayerID(mux.Vars(r)["playerID"])

	var req request.PlaceFleetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	specs := make([]model.ShipSpec, len(req.Ships))
	for i, s := range req.Ships {
		specs[i] = model.ShipSpec{
			Kind: model.ShipKind(s.Kind),
			Segment: model.Segment{
				Start: model.Coord{X: s.Start.X, Y: s.Start.Y},
				End:   model.Coord{X: s.End.X, Y: s.End.Y},
			},
		}
	}

	if err := h.roomController.PlaceFleet(r.Context(), actor, playerID, specs); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Attack handles POST /api/v1/rooms/{roomID}/players/{playerID}/attack
func (h *RoomHandler) Attack(w http.ResponseWriter, r *http.Request) {
	actor := middleware.MustGetActor(r.Context())
	playerID := model.PlayerID(mux.Vars(r)["playerID"])

	var req request.AttackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	guess, err := h.roomController.Attack(r.Context(), actor, playerID, model.Coord{X: req.X, Y: req.Y})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GuessFromModel(guess))
}

// View handles GET /api/v1/rooms/{roomID}/view
// The projection hides the opponent's unsunk ship placements
func (h *RoomHandler) View(w http.ResponseWriter, r *http.Request) {
	actor := middleware.MustGetActor(r.Context())
	roomID := model.RoomID(mux.Vars(r)["roomID"])

	v, err := h.viewService.RoomView(r.Context(), actor.ID, roomID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RoomViewFromService(v))
}
