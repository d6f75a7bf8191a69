package models

// ErrorBody is the only error shape the API returns.
type ErrorBody struct {
	Error string `json:"error"`
}

func ErrorResponse(err string) ErrorBody {
	return ErrorBody{Error: err}
}

type CatalogResponse struct {
	Version string        `json:"version"`
	Items   []CatalogItem `json:"items"`
}
