package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-lost-found/internal/logger"
	"github.com/MKhiriev/go-lost-found/internal/utils"
	"github.com/MKhiriev/go-lost-found/models"
)

// tokenCookie is the cookie browser clients may keep the token in. Signout
// expires it.
const tokenCookie = "token"

// signup returns the handler of POST /signup and POST /admin/signup for the
// given role. The account role comes from the route, never from the body.
func (h *Handler) signup(role models.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.SignupRequest
		if err := utils.DecodeJSON(r, &req); err != nil {
			writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err))
			return
		}

		res, err := h.services.AccountService.Signup(r.Context(), role, req)
		if err != nil {
			writeError(w, r, err)
			return
		}

		logger.FromRequest(r).Info().Str("user_id", res.User.UserID).Str("role", role.String()).Msg("account created")
		utils.WriteJSON(w, res, http.StatusCreated)
	}
}

func (h *Handler) signin(role models.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.SigninRequest
		if err := utils.DecodeJSON(r, &req); err != nil {
			writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err))
			return
		}

		res, err := h.services.AccountService.Signin(r.Context(), role, req)
		if err != nil {
			writeError(w, r, err)
			return
		}

		utils.WriteJSON(w, res, http.StatusOK)
	}
}

// signout is stateless: it only expires the token cookie.
func (h *Handler) signout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	utils.WriteJSON(w, h.services.AccountService.Signout(r.Context()), http.StatusOK)
}
