package api

// HealthStatus is the server liveness report.
type HealthStatus struct {
	Status string `json:"status"`
}

// Health probes the server. Any 2xx counts as reachable.
func (c *Client) Health() (*HealthStatus, error) {
	body, err := c.get("/health")
	if err != nil {
		return nil, err
	}
	return decodeOne[HealthStatus](body)
}
