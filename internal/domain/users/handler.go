package users

import (
	"encoding/json"
	"net/http"

	"animal-shelter/internal/domain/errs"
	"animal-shelter/internal/platform/httpjson"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/users", registerUserHandler(svc))
}

// registerUserRequest acepta los nombres de campo en inglés y, como alias,
// los nombres en español que ya usan los clientes.
type registerUserRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   *int64 `json:"phone"`
	Address string `json:"address"`

	Nombre    string `json:"nombre"`
	Telefono  *int64 `json:"telefono"`
	Direccion string `json:"direccion"`
}

func (req registerUserRequest) toInput() RegisterInput {
	in := RegisterInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	}
	if in.Name == "" {
		in.Name = req.Nombre
	}
	if in.Phone == nil {
		in.Phone = req.Telefono
	}
	if in.Address == "" {
		in.Address = req.Direccion
	}
	return in
}

type userResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
}

type registerUserResponse struct {
	Msg     string       `json:"msg"`
	Usuario userResponse `json:"usuario"`
}

// registerUserHandler godoc
// @Summary Registrar usuario
// @Description Registra una persona que quiere adoptar. El email es único.
// @Tags users
// @Accept json
// @Produce json
// @Param payload body registerUserRequest true "name, email, phone (9 dígitos, opcional), address"
// @Success 200 {object} registerUserResponse
// @Failure 400 {object} httpjson.ErrorResponse "user already registered"
// @Failure 422 {object} httpjson.ErrorResponse "validación"
// @Router /users/ [post]
func registerUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

		var req registerUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpjson.WriteError(w, r, errs.Validation("invalid json"))
			return
		}

		u, err := svc.Register(r.Context(), req.toInput())
		if err != nil {
			httpjson.WriteError(w, r, err)
			return
		}

		httpjson.Write(w, http.StatusOK, registerUserResponse{
			Msg: "Usuario registrado correctamente",
			Usuario: userResponse{
				ID:     u.ID,
				Nombre: u.Name,
				Email:  u.Email,
			},
		})
	}
}
