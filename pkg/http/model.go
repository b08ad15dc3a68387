package http

// RelayResponse is the JSON body returned to webhook callers.
type RelayResponse struct {
	Status          string `json:"status"`
	Message         string `json:"message,omitempty"`
	DiscordResponse string `json:"discord_response,omitempty"`
}

// HealthResponse reports service liveness and configuration state.
type HealthResponse struct {
	Status   string `json:"status"`
	Mode     string `json:"mode"`
	Degraded bool   `json:"degraded"`
}
