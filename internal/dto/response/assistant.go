package response

type AdviceResponse struct {
	Advice string `json:"advice"`
}

type TagResponse struct {
	Tag string `json:"tag"`
}
