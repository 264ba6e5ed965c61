package database

import (
	"fmt"
	"log"

	"github.com/supabase-community/supabase-go"
	"northlinktelecom.com/cmd/server/config"
)

// Clients holds the two Supabase client handles the application uses.
// Anon carries the public (anon) key and serves the no-auth read path used
// by public and statically generated pages; Service carries the service
// role key (bypasses RLS) and serves admin mutations. Both are constructed
// once in main and passed to the repositories explicitly.
type Clients struct {
	Anon    *supabase.Client
	Service *supabase.Client
}

// NewClients initializes the Supabase clients from configuration
func NewClients(cfg *config.Config) (*Clients, error) {
	if cfg.SupabaseURL == "" {
		return nil, fmt.Errorf("supabase URL not provided")
	}
	if cfg.SupabaseKey == "" {
		return nil, fmt.Errorf("supabase anon key not provided")
	}
	if cfg.SupabaseServiceRole == "" {
		return nil, fmt.Errorf("supabase service role key not provided")
	}

	anon, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseKey, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize anon client: %w", err)
	}

	service, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseServiceRole, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize service role client: %w", err)
	}

	log.Println("Supabase clients initialized (anon + service role)")

	return &Clients{Anon: anon, Service: service}, nil
}
