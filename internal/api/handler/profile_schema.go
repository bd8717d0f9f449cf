package handler

// dateLayout is the wire format for date-only fields (dob).
const dateLayout = "2006-01-02"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type createProfileRequest struct {
	FirstName string  `json:"first_name" validate:"required"`
	LastName  string  `json:"last_name"  validate:"required"`
	Phone     *string `json:"phone"`
	DOB       *string `json:"dob"  validate:"omitempty,datetime=2006-01-02"`
	Role      string  `json:"role" validate:"omitempty,oneof=customer rider restaurant"`
}

// updateProfileRequest is a sparse field set: every field is a pointer so
// that absent keys stay nil and never touch the stored value.
type updateProfileRequest struct {
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	Phone        *string `json:"phone"`
	DOB          *string `json:"dob"  validate:"omitempty,datetime=2006-01-02"`
	Role         *string `json:"role" validate:"omitempty,oneof=customer rider restaurant"`
	ProfileImage *string `json:"profile_image"`
	Address      *string `json:"address"`
	City         *string `json:"city"`
	State        *string `json:"state"`
}

// profileResponse is the transport view of a profile row. It is intentionally
// separate from the domain type so the JSON contract is not coupled to
// internal changes.
type profileResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Phone     *string `json:"phone"`
	DOB       *string `json:"dob"`
	GoogleID  *string `json:"google_id"`
	Role      string  `json:"role"`
	Address   *string `json:"address"`
	City      *string `json:"city"`
	State     *string `json:"state"`
}

type messageResponse struct {
	Message string `json:"message"`
}
