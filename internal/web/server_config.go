package web

// ServerConfig contains settings for running the HTTP server.
//
// The intended defaults differ per binary:
// - pixelplay: disabled unless -listen or PIXELPLAY_LISTEN is set
// - simulator: :8080
type ServerConfig struct {
	ListenAddr string
	DevMode    bool
}

func (c ServerConfig) Enabled() bool { return c.ListenAddr != "" }

// New returns the server for c, or a NoopServer when c is disabled.
func New(c ServerConfig, deps APIV1Deps) Server {
	if !c.Enabled() {
		return &NoopServer{}
	}
	s := NewHTTPServer(c.ListenAddr)
	s.Handler = NewRouter(deps)
	if c.DevMode {
		s.Handler = WithDevCORS(s.Handler)
	}
	s.Logger = deps.Logger
	return s
}
