package request

type CreateReviewRequest struct {
	Title  string `json:"title" binding:"required,max=100"`
	Text   string `json:"text" binding:"required"`
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
}

type UpdateReviewRequest struct {
	Title  *string `json:"title" binding:"omitempty,max=100"`
	Text   *string `json:"text"`
	Rating *int    `json:"rating" binding:"omitempty,min=1,max=5"`
}
