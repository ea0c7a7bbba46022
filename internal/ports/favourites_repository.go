package ports

import "context"

// FavouritesRepository defines the contract for favourite city persistence.
// Entries keep insertion order and duplicates are allowed.
type FavouritesRepository interface {
	Append(ctx context.Context, city string) error
	List(ctx context.Context) ([]string, error)
	// Seed stores defaults only when the store has never been initialized
	// and reports whether it did so.
	Seed(ctx context.Context, defaults []string) (bool, error)
}
