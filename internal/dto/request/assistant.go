package request

type AssistantQueryRequest struct {
	Query string `json:"query" validate:"required,max=500"`
}
