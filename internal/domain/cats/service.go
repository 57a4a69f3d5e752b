package cats

import "context"

type Service struct {
	catalog *Catalog
	traits  []string
}

func NewService(catalog *Catalog) *Service {
	return &Service{
		catalog: catalog,
		// El catálogo no cambia, así que el universo de rasgos se calcula una vez.
		traits: Traits(catalog.All()),
	}
}

// Result es lo que consume la presentación.
// Empty es el indicador explícito de "sin resultados" (no es un error).
type Result struct {
	Query Query
	Cats  []Cat
	Count int
	Empty bool
}

func (s *Service) Search(ctx context.Context, q Query) Result {
	matches := Filter(s.catalog.All(), q)
	return Result{
		Query: q,
		Cats:  matches,
		Count: len(matches),
		Empty: len(matches) == 0,
	}
}

func (s *Service) Traits(ctx context.Context) []string {
	out := make([]string, len(s.traits))
	copy(out, s.traits)
	return out
}

func (s *Service) Get(ctx context.Context, id int) (Cat, error) {
	c, ok := s.catalog.ByID(id)
	if !ok {
		return Cat{}, ErrNotFound
	}
	return c, nil
}
