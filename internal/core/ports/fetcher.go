package ports

import "context"

// Fetcher downloads remote resources.
//
//go:generate mockgen -source=fetcher.go -destination=mocks/mock_fetcher.go -package=mocks
type Fetcher interface {
	// Fetch returns the body of url. Non-2xx responses are errors.
	Fetch(ctx context.Context, url string) ([]byte, error)
}
