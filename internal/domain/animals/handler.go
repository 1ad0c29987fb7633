package animals

import (
	"encoding/json"
	"net/http"

	"animal-shelter/internal/domain/errs"
	"animal-shelter/internal/platform/httpjson"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/animals", registerAnimalHandler(svc))

	// /disponibles?tipo=dog y /disponibles/dog son equivalentes
	r.Get("/disponibles", listAvailableHandler(svc))
	r.Get("/disponibles/{kind}", listAvailableHandler(svc))
}

type registerAnimalRequest struct {
	Name string `json:"name"`
	Age  *int   `json:"age"`
	Kind string `json:"kind" enums:"dog,cat"`

	// alias en español
	Nombre string `json:"nombre"`
	Edad   *int   `json:"edad"`
	Tipo   string `json:"tipo"`
}

func (req registerAnimalRequest) toInput() RegisterInput {
	in := RegisterInput{Name: req.Name, Age: req.Age, Kind: req.Kind}
	if in.Name == "" {
		in.Name = req.Nombre
	}
	if in.Age == nil {
		in.Age = req.Edad
	}
	if in.Kind == "" {
		in.Kind = req.Tipo
	}
	return in
}

type animalResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Edad   *int   `json:"edad"`
}

type registerAnimalResponse struct {
	Msg    string         `json:"msg"`
	Animal animalResponse `json:"animal"`
}

type availableAnimal struct {
	Nombre string `json:"nombre"`
	Edad   *int   `json:"edad"`
	Tipo   Kind   `json:"tipo"`
}

type listAvailableResponse struct {
	Msg      string            `json:"msg"`
	Animales []availableAnimal `json:"animales"`
}

// registerAnimalHandler godoc
// @Summary Registrar animal
// @Description Registra un animal adoptable. El nombre es único.
// @Tags animals
// @Accept json
// @Produce json
// @Param payload body registerAnimalRequest true "name, age (opcional), kind (dog|cat)"
// @Success 200 {object} registerAnimalResponse
// @Failure 400 {object} httpjson.ErrorResponse "animal already registered"
// @Failure 422 {object} httpjson.ErrorResponse "validación"
// @Router /animals/ [post]
func registerAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

		var req registerAnimalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpjson.WriteError(w, r, errs.Validation("invalid json"))
			return
		}

		a, err := svc.Register(r.Context(), req.toInput())
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}

		httpjson.Write(w, http.StatusOK, registerAnimalResponse{
			Msg: "Animal registrado correctamente",
			Animal: animalResponse{
				ID:     a.ID,
				Nombre: a.Name,
				Edad:   a.Age,
			},
		})
	}
}

// listAvailableHandler godoc
// @Summary Animales disponibles
// @Description Lista los animales no adoptados, opcionalmente filtrados por tipo.
// @Tags animals
// @Produce json
// @Param kind path string false "dog o cat"
// @Param tipo query string false "dog o cat"
// @Success 200 {object} listAvailableResponse
// @Router /disponibles/{kind} [get]
func listAvailableHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind := chi.URLParam(r, "kind")
		if kind == "" {
			kind = r.URL.Query().Get("tipo")
		}
		if kind == "" {
			kind = r.URL.Query().Get("kind")
		}

		items, err := svc.ListAvailable(r.Context(), kind)
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}

		out := make([]availableAnimal, 0, len(items))
		for _, a := range items {
			out = append(out, availableAnimal{Nombre: a.Name, Edad: a.Age, Tipo: a.Kind})
		}

		httpjson.Write(w, http.StatusOK, listAvailableResponse{
			Msg:      "Animales disponibles para adopción:",
			Animales: out,
		})
	}
}
