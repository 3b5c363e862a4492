package http

import (
	"encoding/json"
	"net/http"

	"github.com/lodgekeep/backoffice/internal/admin/service"
	"github.com/lodgekeep/backoffice/pkg/adminapi"
	"github.com/lodgekeep/backoffice/pkg/httpx"
	"github.com/lodgekeep/backoffice/pkg/idx"
	"github.com/lodgekeep/backoffice/pkg/slogx"
)

// RoomsHandler serves the room lifecycle endpoints plus the name
// availability probe the creation form polls.
type RoomsHandler struct {
	RoomService      *service.RoomService
	ReferenceService *service.ReferenceService
}

// HandleCreate handles POST /v1/rooms.
func (h *RoomsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req adminapi.CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "malformed JSON body")
		return
	}

	cand, ok := roomCandidate(w, req.Name, req.Description, req.TypeID, req.BookingID, req.PriceCents, req.Capacity)
	if !ok {
		return
	}

	room, err := h.RoomService.Create(ctx, cand)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, adminapi.RoomResponse{
		Room:    toRoomInfo(room),
		Message: actionMessage(ctx, "Room %s created", room.Name),
	})
}

// HandleList handles GET /v1/rooms.
func (h *RoomsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	rooms, err := h.ReferenceService.ListRooms(ctx)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, adminapi.ListRoomsResponse{Rooms: toRoomInfos(rooms)})
}

// HandleGet handles GET /v1/rooms/{id}.
func (h *RoomsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, err := idx.Parse(r.PathValue("id"))
	if err != nil {
		writeBadRequest(w, "invalid room id")
		return
	}

	room, err := h.RoomService.GetByID(ctx, id)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, adminapi.RoomResponse{Room: toRoomInfo(room)})
}

// HandleUpdate handles PUT /v1/rooms/{id}. Price and capacity in the request
// are dropped; the stored values survive the merge.
func (h *RoomsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, err := idx.Parse(r.PathValue("id"))
	if err != nil {
		writeBadRequest(w, "invalid room id")
		return
	}

	var req adminapi.UpdateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "malformed JSON body")
		return
	}

	cand, ok := roomCandidate(w, req.Name, req.Description, req.TypeID, req.BookingID, 0, 0)
	if !ok {
		return
	}

	room, err := h.RoomService.Update(ctx, id, cand)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, adminapi.RoomResponse{
		Room:    toRoomInfo(room),
		Message: actionMessage(ctx, "Room %s updated", room.Name),
	})
}

// HandleDelete handles DELETE /v1/rooms/{id}.
func (h *RoomsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, err := idx.Parse(r.PathValue("id"))
	if err != nil {
		writeBadRequest(w, "invalid room id")
		return
	}

	if err := h.RoomService.Delete(ctx, id); err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, adminapi.MessageResponse{
		Message: actionMessage(ctx, "Room %s deleted", id),
	})
}

// HandleAvailability handles GET /v1/rooms/availability?name=X.
func (h *RoomsHandler) HandleAvailability(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	name := r.URL.Query().Get("name")
	if name == "" {
		writeBadRequest(w, "name query parameter is required")
		return
	}

	answer, err := h.RoomService.CheckAvailability(ctx, name)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, adminapi.AvailabilityResponse{
		Name:         name,
		Availability: answer,
	})
}

// roomCandidate validates the shared request fields and writes a 400 itself
// when they do not parse.
func roomCandidate(
	w http.ResponseWriter,
	name, description, typeID, bookingID string,
	priceCents int64,
	capacity int,
) (service.RoomCandidate, bool) {
	if name == "" || typeID == "" {
		writeBadRequest(w, "name and type_id are required")
		return service.RoomCandidate{}, false
	}

	tid, err := idx.Parse(typeID)
	if err != nil {
		writeBadRequest(w, "type_id: invalid id")
		return service.RoomCandidate{}, false
	}
	bid, err := parseOptionalID("booking_id", bookingID)
	if err != nil {
		writeBadRequest(w, err.Error())
		return service.RoomCandidate{}, false
	}

	return service.RoomCandidate{
		Name:        name,
		Description: description,
		TypeID:      tid,
		BookingID:   bid,
		PriceCents:  priceCents,
		Capacity:    capacity,
	}, true
}
