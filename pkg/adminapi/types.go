package adminapi

import "time"

// LoginRequest carries operator credentials.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse returns a bearer token for subsequent requests.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"` // always "Bearer"
	ExpiresIn   int64  `json:"expires_in"` // seconds
}

// RoleInfo describes one assignable role.
type RoleInfo struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// AccountInfo is the read shape of an account. It has no password field.
type AccountInfo struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	FirstName string     `json:"first_name,omitempty"`
	LastName  string     `json:"last_name,omitempty"`
	Roles     []RoleInfo `json:"roles,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CreateAccountRequest carries a new account. RoleIDs reference the role
// catalogue from ListRolesResponse.
type CreateAccountRequest struct {
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	FirstName string   `json:"first_name,omitempty"`
	LastName  string   `json:"last_name,omitempty"`
	Password  string   `json:"password"`
	RoleIDs   []string `json:"role_ids,omitempty"`
}

// UpdateAccountRequest carries replacement values for the updatable account
// fields. A password sent here is ignored; passwords change only through
// ResetPasswordRequest.
type UpdateAccountRequest struct {
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	FirstName string   `json:"first_name,omitempty"`
	LastName  string   `json:"last_name,omitempty"`
	Password  string   `json:"password,omitempty"`
	RoleIDs   []string `json:"role_ids,omitempty"`
}

// ResetPasswordRequest sets a new password for an account.
type ResetPasswordRequest struct {
	Password string `json:"password"`
}

// AccountResponse wraps a single account plus the confirmation message
// attributed to the operator who performed the action.
type AccountResponse struct {
	Account AccountInfo `json:"account"`
	Message string      `json:"message,omitempty"`
}

type ListAccountsResponse struct {
	Accounts []AccountInfo `json:"accounts"`
}

// RoomInfo is the read shape of a room. BookingID is empty when vacant.
type RoomInfo struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	TypeID      string    `json:"type_id"`
	BookingID   string    `json:"booking_id,omitempty"`
	PriceCents  int64     `json:"price_cents"`
	Capacity    int       `json:"capacity"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateRoomRequest carries a new room. The server forces the verification
// status, so the request has no status field.
type CreateRoomRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	TypeID      string `json:"type_id"`
	BookingID   string `json:"booking_id,omitempty"`
	PriceCents  int64  `json:"price_cents"`
	Capacity    int    `json:"capacity"`
}

// UpdateRoomRequest carries replacement values for the updatable room fields.
// Price and capacity sent here are ignored; the stored values are preserved.
type UpdateRoomRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	TypeID      string `json:"type_id"`
	BookingID   string `json:"booking_id,omitempty"`
	PriceCents  int64  `json:"price_cents,omitempty"`
	Capacity    int    `json:"capacity,omitempty"`
}

// RoomResponse wraps a single room plus the confirmation message.
type RoomResponse struct {
	Room    RoomInfo `json:"room"`
	Message string   `json:"message,omitempty"`
}

type ListRoomsResponse struct {
	Rooms []RoomInfo `json:"rooms"`
}

// AvailabilityResponse answers a room name availability probe.
type AvailabilityResponse struct {
	Name         string `json:"name"`
	Availability string `json:"availability"` // "Available" or "Not Available"
}

// MessageResponse carries a bare confirmation message, used by deletes.
type MessageResponse struct {
	Message string `json:"message"`
}

type ListRolesResponse struct {
	Roles []RoleInfo `json:"roles"`
}

// RoomTypeInfo describes one room type from the catalogue.
type RoomTypeInfo struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	BasePriceCents int64  `json:"base_price_cents"`
}

type ListRoomTypesResponse struct {
	RoomTypes []RoomTypeInfo `json:"room_types"`
}

// BookingInfo is the read shape of a booking. Bookings are managed elsewhere;
// the back-office only lists them.
type BookingInfo struct {
	ID        string    `json:"id"`
	AccountID string    `json:"account_id"`
	RoomID    string    `json:"room_id"`
	CheckIn   time.Time `json:"check_in"`
	CheckOut  time.Time `json:"check_out"`
	CreatedAt time.Time `json:"created_at"`
}

type ListBookingsResponse struct {
	Bookings []BookingInfo `json:"bookings"`
}

// OverviewResponse is the dashboard payload.
type OverviewResponse struct {
	Customers []AccountInfo `json:"customers"`
	Admins    []AccountInfo `json:"admins"`
	Rooms     []RoomInfo    `json:"rooms"`
	Bookings  []BookingInfo `json:"bookings"`

	TotalCustomers int `json:"total_customers"`
	TotalAdmins    int `json:"total_admins"`
	TotalRooms     int `json:"total_rooms"`
	TotalBookings  int `json:"total_bookings"`
}

// HealthResponse is returned by the livez and readyz endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Version string        `json:"version,omitempty"`
	Uptime  string        `json:"uptime,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports per-dependency readiness.
type HealthChecks struct {
	Database string `json:"database"`
}
