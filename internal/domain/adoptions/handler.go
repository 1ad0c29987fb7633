package adoptions

import (
	"net/http"
	"time"

	"animal-shelter/internal/platform/httpjson"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta las rutas de adopción. Los parámetros van por query
// string (no por body) como esperan los clientes existentes.
// mw se aplica sólo a las rutas que escriben (p.ej. rate limit).
func RegisterRoutes(r chi.Router, svc *Service, mw ...func(http.Handler) http.Handler) {
	r.Group(func(wr chi.Router) {
		wr.Use(mw...)
		wr.Post("/adopcion", adoptByNameHandler(svc))
		wr.Post("/adopcion/random", adoptRandomHandler(svc))
	})

	r.Get("/adopciones", listAdoptionsHandler(svc))
}

type adoptionSummary struct {
	AnimalName string `json:"animal_name"`
	UserName   string `json:"user_name"`
}

type adoptResponse struct {
	Msg      string          `json:"msg"`
	Adopcion adoptionSummary `json:"adopcion"`
}

type adoptionRecord struct {
	AnimalName string `json:"animal_name"`
	UserName   string `json:"user_name"`
	Fecha      string `json:"fecha"` // YYYY-MM-DD
}

type listAdoptionsResponse struct {
	Msg        string           `json:"msg"`
	Adopciones []adoptionRecord `json:"adopciones"`
}

// adoptByNameHandler godoc
// @Summary Adopción dirigida
// @Description Registra la adopción de un animal concreto por parte de un usuario registrado.
// @Tags adoptions
// @Produce json
// @Param user_name query string true "Nombre del usuario"
// @Param animal_name query string true "Nombre del animal"
// @Success 200 {object} adoptResponse
// @Failure 400 {object} httpjson.ErrorResponse "user not registered / animal not registered / animal not available"
// @Failure 422 {object} httpjson.ErrorResponse "faltan parámetros"
// @Router /adopcion/ [post]
func adoptByNameHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		a, err := svc.AdoptByName(r.Context(), AdoptByNameInput{
			UserName:   q.Get("user_name"),
			AnimalName: q.Get("animal_name"),
		})
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}

		writeAdoption(w, a)
	}
}

// adoptRandomHandler godoc
// @Summary Adopción por tipo
// @Description Adopta el animal disponible de mayor edad (opcionalmente filtrado por tipo). Empate: el registrado primero.
// @Tags adoptions
// @Produce json
// @Param user_name query string true "Nombre del usuario"
// @Param kind query string false "dog o cat (alias: tipo)"
// @Success 200 {object} adoptResponse
// @Failure 400 {object} httpjson.ErrorResponse "user not registered / no animals available"
// @Failure 422 {object} httpjson.ErrorResponse "faltan parámetros"
// @Router /adopcion/random/ [post]
func adoptRandomHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		kind := q.Get("kind")
		if kind == "" {
			kind = q.Get("tipo")
		}

		a, err := svc.AdoptRandom(r.Context(), AdoptRandomInput{
			UserName: q.Get("user_name"),
			Kind:     kind,
		})
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}

		writeAdoption(w, a)
	}
}

// listAdoptionsHandler godoc
// @Summary Adopciones registradas
// @Tags adoptions
// @Produce json
// @Success 200 {object} listAdoptionsResponse
// @Router /adopciones [get]
func listAdoptionsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}

		out := make([]adoptionRecord, 0, len(items))
		for _, a := range items {
			out = append(out, adoptionRecord{
				AnimalName: a.AnimalName,
				UserName:   a.UserName,
				Fecha:      a.Date.Format(time.DateOnly),
			})
		}

		httpjson.Write(w, http.StatusOK, listAdoptionsResponse{
			Msg:        "Adopciones registradas:",
			Adopciones: out,
		})
	}
}

func writeAdoption(w http.ResponseWriter, a Adoption) {
	httpjson.Write(w, http.StatusOK, adoptResponse{
		Msg: "Adopción registrada correctamente",
		Adopcion: adoptionSummary{
			AnimalName: a.AnimalName,
			UserName:   a.UserName,
		},
	})
}
