package mcp

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"

	"github.com/roivaz/uitdb-mcp/internal/config"
	"github.com/roivaz/uitdb-mcp/internal/credentials"
	"github.com/roivaz/uitdb-mcp/internal/logging"
	"github.com/roivaz/uitdb-mcp/internal/mcp/tools"
	"github.com/roivaz/uitdb-mcp/internal/uitdb"
)

const DefaultEndpointPath = "/mcp"

type Config struct {
	ToolAdapters map[string]ToolAdapter
	EndpointPath string
	Options      []server.StreamableHTTPOption
}

// NewClient builds the upstream search client from the loaded configuration.
// The credential is resolved here, once per process.
func NewClient(log logging.Logger) (*uitdb.Client, error) {
	timeout, err := config.Timeout()
	if err != nil {
		return nil, err
	}
	cred := credentials.Resolve()
	if !cred.Present() {
		log.Info("no UITDB_CLIENT_ID configured; sending unauthenticated requests")
	}
	client, err := uitdb.NewClient(uitdb.Config{
		BaseURL:    config.BaseURL(),
		Timeout:    timeout,
		RateLimit:  config.RateLimit(),
		Credential: cred,
		Logger:     log,
	})
	if err != nil {
		return nil, fmt.Errorf("create uitdb client: %w", err)
	}
	return client, nil
}

// ConfigFor registers every search tool against svc.
func ConfigFor(svc tools.SearchService, log logging.Logger) Config {
	toolLog := log.WithName("tools")
	return Config{
		ToolAdapters: map[string]ToolAdapter{
			"search_events":     &tools.SearchHandler{Service: svc, Endpoint: uitdb.EndpointEvents, Log: toolLog},
			"search_places":     &tools.SearchHandler{Service: svc, Endpoint: uitdb.EndpointPlaces, Log: toolLog},
			"search_organizers": &tools.SearchHandler{Service: svc, Endpoint: uitdb.EndpointOrganizers, Log: toolLog},
			"search_uit":        &tools.SummaryHandler{Service: svc, Log: toolLog},
		},
		EndpointPath: config.MCPEndpointPath(),
	}
}

func DefaultConfig(log logging.Logger) (Config, error) {
	client, err := NewClient(log)
	if err != nil {
		return Config{}, err
	}
	return ConfigFor(client, log), nil
}
