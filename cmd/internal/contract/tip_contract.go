package contract

type TipResponse struct {
	ID      int    `json:"id"`
	Topic   string `json:"topic"`
	Content string `json:"content"`
}

type TipRequest struct {
	Topic   string `json:"topic" validate:"required,min=1,max=60"`
	Content string `json:"content" validate:"required,min=1,max=2000"`
}
