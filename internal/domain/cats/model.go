package cats

// Cat es el perfil de un gato de la galería.
// Age, Color y Breed son texto libre; Image es una referencia opaca al asset.
type Cat struct {
	ID   int
	Name string

	Image string
	Age   string

	// Personality se usa como conjunto al filtrar, pero conserva su orden para mostrar.
	Personality []string

	Color string
	Breed string
}

func (c Cat) clone() Cat {
	out := c
	out.Personality = append(make([]string, 0, len(c.Personality)), c.Personality...)
	return out
}
