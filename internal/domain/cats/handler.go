package cats

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api", func(ar chi.Router) {
		ar.Get("/cats", searchCatsHandler(svc))
		ar.Get("/cats/{catID}", getCatHandler(svc))
		ar.Get("/traits", listTraitsHandler(svc))
	})
}

type catResponse struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Image       string   `json:"image"`
	Age         string   `json:"age"`
	Personality []string `json:"personality"`
	Color       string   `json:"color"`
	Breed       string   `json:"breed"`
}

type searchResponse struct {
	Query string        `json:"query"`
	Trait string        `json:"trait"`
	Count int           `json:"count"`
	Empty bool          `json:"empty"`
	Cats  []catResponse `json:"cats"`
}

// searchCatsHandler godoc
// @Summary Buscar gatos
// @Description Filtra la galería. `q` busca (sin distinguir mayúsculas) dentro del nombre, color o raza; `trait` exige un rasgo exacto de personalidad. Ambos son opcionales y se combinan con AND. Cero resultados no es un error: responde 200 con `empty=true`.
// @Tags cats
// @Produce json
// @Param q query string false "Texto libre: nombre, color o raza"
// @Param trait query string false "Rasgo exacto (case-sensitive)"
// @Success 200 {object} searchResponse
// @Router /api/cats [get]
func searchCatsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res := svc.Search(r.Context(), QueryFromRequest(r))

		out := make([]catResponse, 0, len(res.Cats))
		for _, c := range res.Cats {
			out = append(out, toCatResponse(c))
		}

		writeJSON(w, http.StatusOK, searchResponse{
			Query: res.Query.Text,
			Trait: res.Query.Trait,
			Count: res.Count,
			Empty: res.Empty,
			Cats:  out,
		})
	}
}

// getCatHandler godoc
// @Summary Perfil de un gato
// @Tags cats
// @Produce json
// @Param catID path int true "ID del gato"
// @Success 200 {object} catResponse
// @Failure 400 {string} string "invalid id"
// @Failure 404 {string} string "cat not found"
// @Router /api/cats/{catID} [get]
func getCatHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "catID"))
		if err != nil {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}

		c, err := svc.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "cat not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toCatResponse(c))
	}
}

// listTraitsHandler godoc
// @Summary Listar rasgos
// @Description Todos los rasgos de personalidad distintos, cada uno una vez, en orden de primera aparición.
// @Tags cats
// @Produce json
// @Success 200 {array} string
// @Router /api/traits [get]
func listTraitsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Traits(r.Context()))
	}
}

// QueryFromRequest lee q y trait del query string, sin recortar espacios.
// La galería HTML usa los mismos parámetros.
func QueryFromRequest(r *http.Request) Query {
	v := r.URL.Query()
	return Query{
		Text:  v.Get("q"),
		Trait: v.Get("trait"),
	}
}

func toCatResponse(c Cat) catResponse {
	p := c.Personality
	if p == nil {
		p = []string{}
	}
	return catResponse{
		ID:          c.ID,
		Name:        c.Name,
		Image:       c.Image,
		Age:         c.Age,
		Personality: p,
		Color:       c.Color,
		Breed:       c.Breed,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
