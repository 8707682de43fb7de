package http

import (
	"github.com/MKhiriev/go-lost-found/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withSecureHeaders)
	router.Use(h.withCORS())
	router.Use(middleware.Compress(5, "application/json"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/signup", h.signup(models.RoleUser))
		r.Post("/signin", h.signin(models.RoleUser))
		r.Post("/signout", h.signout)

		r.Post("/admin/signup", h.signup(models.RoleAdmin))
		r.Post("/admin/signin", h.signin(models.RoleAdmin))
		r.Post("/admin/signout", h.signout)

		r.Get("/uploads/{filename}", h.serveUpload)
		r.Get("/api/version", h.getServerVersion)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.identify)

		r.Post("/profile", h.profile)
		r.Post("/admin/profile", h.profile)

		r.Group(func(r chi.Router) {
			r.Use(requireRole(models.RoleUser))

			r.Post("/user/update", h.updateUser)
			r.Post("/addItem", h.addItem)
			r.Get("/getItems", h.getItems)
			r.Get("/getnotes", h.getNotes)
		})

		r.Group(func(r chi.Router) {
			r.Use(requireRole(models.RoleAdmin))

			r.Get("/getUsers", h.getUsers)
			r.Post("/notes/add", h.addNotes)
		})
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	return router
}
