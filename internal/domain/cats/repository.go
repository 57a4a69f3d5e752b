package cats

import "context"

// Repository es la fuente de registros. Se lee una sola vez al arrancar.
type Repository interface {
	All(ctx context.Context) ([]Cat, error)
}
