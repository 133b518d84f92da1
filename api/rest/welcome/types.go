package welcome

// body of GET / for the aks variant
type HelloResponse struct {
	Message string `json:"message" example:"Hello from AKS demo app"`
}

// body of GET / for the playground variant
type PlaygroundResponse struct {
	Message string `json:"message" example:"Welcome to Python Webapp Security Playground"`
	Status  string `json:"status" example:"healthy"`
	Version string `json:"version" example:"1.0.0"`
}
