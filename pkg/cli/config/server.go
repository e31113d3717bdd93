package config

import "github.com/urfave/cli/v3"

// Server holds server configuration
type Server struct {
	Addr       string
	HealthPath string
}

// Flags returns CLI flags for server configuration
func (c *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Server address",
			Value:       "localhost:8300",
			Destination: &c.Addr,
			Sources:     cli.EnvVars("COMBINE_ADDR"),
		},
		&cli.StringFlag{
			Name:        "health-path",
			Usage:       "Path of the health check endpoint, empty to disable",
			Value:       "/_health",
			Destination: &c.HealthPath,
			Sources:     cli.EnvVars("COMBINE_HEALTH_PATH"),
		},
	}
}
