package http

import (
	"context"
	"net/http"

	"github.com/lodgekeep/backoffice/internal/admin/domain"
	"github.com/lodgekeep/backoffice/internal/admin/service"
	"github.com/lodgekeep/backoffice/pkg/adminapi"
	"github.com/lodgekeep/backoffice/pkg/httpx"
	"github.com/lodgekeep/backoffice/pkg/slogx"
)

// DashboardHandler serves the read-only collections the back-office screens
// render: the overview, role-partitioned account lists, bookings, and the
// role and room type catalogues.
type DashboardHandler struct {
	ReferenceService *service.ReferenceService
}

// HandleOverview handles GET /v1/overview.
func (h *DashboardHandler) HandleOverview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	o, err := h.ReferenceService.Overview(ctx)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, adminapi.OverviewResponse{
		Customers:      toAccountInfos(o.Customers),
		Admins:         toAccountInfos(o.Admins),
		Rooms:          toRoomInfos(o.Rooms),
		Bookings:       toBookingInfos(o.Bookings),
		TotalCustomers: o.TotalCustomers,
		TotalAdmins:    o.TotalAdmins,
		TotalRooms:     o.TotalRooms,
		TotalBookings:  o.TotalBookings,
	})
}

// HandleListCustomers handles GET /v1/customers.
func (h *DashboardHandler) HandleListCustomers(w http.ResponseWriter, r *http.Request) {
	h.writeAccounts(w, r, h.ReferenceService.ListCustomers)
}

// HandleListAdmins handles GET /v1/admins.
func (h *DashboardHandler) HandleListAdmins(w http.ResponseWriter, r *http.Request) {
	h.writeAccounts(w, r, h.ReferenceService.ListAdmins)
}

func (h *DashboardHandler) writeAccounts(
	w http.ResponseWriter,
	r *http.Request,
	list func(ctx context.Context) ([]domain.Account, error),
) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	accounts, err := list(ctx)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, adminapi.ListAccountsResponse{Accounts: toAccountInfos(accounts)})
}

// HandleListBookings handles GET /v1/bookings.
func (h *DashboardHandler) HandleListBookings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	bookings, err := h.ReferenceService.ListBookings(ctx)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, adminapi.ListBookingsResponse{Bookings: toBookingInfos(bookings)})
}

// HandleListRoles handles GET /v1/roles.
func (h *DashboardHandler) HandleListRoles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	roles, err := h.ReferenceService.ListRoles(ctx)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	resp := adminapi.ListRolesResponse{Roles: make([]adminapi.RoleInfo, len(roles))}
	for i, role := range roles {
		resp.Roles[i] = toRoleInfo(role)
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleListRoomTypes handles GET /v1/room-types.
func (h *DashboardHandler) HandleListRoomTypes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	types, err := h.ReferenceService.ListRoomTypes(ctx)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	resp := adminapi.ListRoomTypesResponse{RoomTypes: make([]adminapi.RoomTypeInfo, len(types))}
	for i, rt := range types {
		resp.RoomTypes[i] = toRoomTypeInfo(rt)
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}
