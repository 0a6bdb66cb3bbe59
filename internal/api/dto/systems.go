package dto

type SystemMatchResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type SearchSystemsResponse struct {
	Systems []SystemMatchResponse `json:"systems"`
}
