package request

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// Occupied is a pointer so that an explicit 0 passes the required check.
type UpdateOccupancyRequest struct {
	Occupied *int `json:"occupied" binding:"required"`
}
