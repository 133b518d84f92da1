package health

// body of GET /healthz
type HealthzResponse struct {
	Status string `json:"status" example:"ok"`
}

// body of GET /health
type Response struct {
	Status string `json:"status" example:"healthy"`
}

// body of GET /version
type VersionResponse struct {
	Version string `json:"version" example:"0.1.0"`
}
