package config

// HTTPConfig defines the listen address and API protection for the web
// server.
type HTTPConfig struct {
	// Addr is the listen address of the API server.
	Addr string `json:"addr"`
	// APIToken guards the /api/runs endpoint when non-empty.
	APIToken string `json:"api_token"`
}

// SetDefaults applies sane defaults.
func (c *HTTPConfig) SetDefaults() {
	if c.Addr == "" {
		c.Addr = ":5000"
	}
}

// DataConfig points at the on-disk dataset directory.
type DataConfig struct {
	// Dir holds the dataset files loaded at startup. Empty means the
	// bundled sample data is used instead.
	Dir string `json:"dir"`
}
