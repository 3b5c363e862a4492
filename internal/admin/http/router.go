package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/lodgekeep/backoffice/internal/admin/service"
	"github.com/lodgekeep/backoffice/internal/admin/store"
	"github.com/lodgekeep/backoffice/pkg/httpx"
	"github.com/lodgekeep/backoffice/pkg/jwtx"
	"github.com/lodgekeep/backoffice/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	AuthService      *service.AuthService
	AccountService   *service.AccountService
	RoomService      *service.RoomService
	ReferenceService *service.ReferenceService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerAccounts()
	r.registerRooms()
	r.registerDashboard()
	r.registerSystem()
}

// ServeHTTP implements http.Handler and applies the global middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	h := &LoginHandler{AuthService: r.AuthService}

	// POST /auth/login - strict rate limit by IP (authentication attempts)
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(h,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerAccounts() {
	h := &AccountsHandler{AccountService: r.AccountService}

	read := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope(service.ScopeAdminRead),
			httpx.RateLimitByUser(httpx.LenientLimit),
		)
	}
	write := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope(service.ScopeAdminWrite),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("POST /v1/accounts", write(h.HandleCreate))
	r.Mux.Handle("GET /v1/accounts/{username}", read(h.HandleGet))
	r.Mux.Handle("PUT /v1/accounts/{username}", write(h.HandleUpdate))
	r.Mux.Handle("DELETE /v1/accounts/{username}", write(h.HandleDelete))
	r.Mux.Handle("POST /v1/accounts/{username}/password", write(h.HandleResetPassword))
}

func (r *Router) registerRooms() {
	h := &RoomsHandler{
		RoomService:      r.RoomService,
		ReferenceService: r.ReferenceService,
	}

	read := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope(service.ScopeAdminRead),
			httpx.RateLimitByUser(httpx.LenientLimit),
		)
	}
	write := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope(service.ScopeAdminWrite),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("POST /v1/rooms", write(h.HandleCreate))
	r.Mux.Handle("GET /v1/rooms", read(h.HandleList))
	// The availability probe is polled by the creation form, hence the
	// lenient limit.
	r.Mux.Handle("GET /v1/rooms/availability", read(h.HandleAvailability))
	r.Mux.Handle("GET /v1/rooms/{id}", read(h.HandleGet))
	r.Mux.Handle("PUT /v1/rooms/{id}", write(h.HandleUpdate))
	r.Mux.Handle("DELETE /v1/rooms/{id}", write(h.HandleDelete))
}

func (r *Router) registerDashboard() {
	h := &DashboardHandler{ReferenceService: r.ReferenceService}

	read := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope(service.ScopeAdminRead),
			httpx.RateLimitByUser(httpx.LenientLimit),
		)
	}

	r.Mux.Handle("GET /v1/overview", read(h.HandleOverview))
	r.Mux.Handle("GET /v1/customers", read(h.HandleListCustomers))
	r.Mux.Handle("GET /v1/admins", read(h.HandleListAdmins))
	r.Mux.Handle("GET /v1/bookings", read(h.HandleListBookings))
	r.Mux.Handle("GET /v1/roles", read(h.HandleListRoles))
	r.Mux.Handle("GET /v1/room-types", read(h.HandleListRoomTypes))
}

func (r *Router) registerSystem() {
	// Health endpoints are unauthenticated; monitoring may poll frequently.
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
