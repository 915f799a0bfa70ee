package request

type CreateReservationRequest struct {
	StartDate      *Date `json:"startDate" binding:"required"`
	EndDate        *Date `json:"endDate" binding:"required"`
	NumberOfPeople int   `json:"numberOfPeople" binding:"required,min=1"`
}
