package memory

import (
	"context"

	"cat-gallery/internal/domain/cats"
)

// seedCats es el catálogo compilado en el binario (orden = orden de la galería).
var seedCats = []cats.Cat{
	{
		ID:          1,
		Name:        "Мурзик",
		Image:       "/img/d72d2a5f-71c5-48d3-a7ec-502ebd39280b.jpg",
		Age:         "2 года",
		Personality: []string{"игривый", "ласковый", "умный"},
		Color:       "полосатый",
		Breed:       "домашний",
	},
	{
		ID:          2,
		Name:        "Рыжик",
		Image:       "/img/b6ee9ecc-053e-482a-9784-21d2c1d8eed2.jpg",
		Age:         "4 года",
		Personality: []string{"спокойный", "величественный", "независимый"},
		Color:       "рыжий",
		Breed:       "персидский",
	},
	{
		ID:          3,
		Name:        "Барсик",
		Image:       "/img/57d4125e-b03c-4473-834a-6771c81f4395.jpg",
		Age:         "6 месяцев",
		Personality: []string{"энергичный", "любопытный", "озорной"},
		Color:       "черно-белый",
		Breed:       "домашний",
	},
	{
		ID:          4,
		Name:        "Соня",
		Image:       "/img/d72d2a5f-71c5-48d3-a7ec-502ebd39280b.jpg",
		Age:         "3 года",
		Personality: []string{"спокойная", "ласковая", "сонная"},
		Color:       "серый",
		Breed:       "британский",
	},
	{
		ID:          5,
		Name:        "Пушок",
		Image:       "/img/b6ee9ecc-053e-482a-9784-21d2c1d8eed2.jpg",
		Age:         "1 год",
		Personality: []string{"дружелюбный", "активный", "веселый"},
		Color:       "белый",
		Breed:       "мейн-кун",
	},
	{
		ID:          6,
		Name:        "Маруся",
		Image:       "/img/57d4125e-b03c-4473-834a-6771c81f4395.jpg",
		Age:         "5 лет",
		Personality: []string{"грациозная", "элегантная", "гордая"},
		Color:       "черный",
		Breed:       "сиамский",
	},
}

type catRepo struct {
	items []cats.Cat
}

func NewCatRepo() cats.Repository {
	return &catRepo{items: seedCats}
}

// All nunca falla: los datos vienen compilados.
func (r *catRepo) All(ctx context.Context) ([]cats.Cat, error) {
	out := make([]cats.Cat, 0, len(r.items))
	for _, c := range r.items {
		c.Personality = append([]string(nil), c.Personality...)
		out = append(out, c)
	}
	return out, nil
}
