package rest

type HostRequest struct {
	Host string `json:"host"`
}

type ParseRequest struct {
	Host      string `json:"host"`
	Normalize bool   `json:"normalize"`
}

type ValidateResponse struct {
	Host  string `json:"host"`
	Valid bool   `json:"valid"`
}

type MatchResponse struct {
	Host      string `json:"host"`
	Matched   bool   `json:"matched"`
	Wildcard  bool   `json:"wildcard"`
	Entry     string `json:"entry,omitempty"`
	CheckedAt string `json:"checked_at"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
