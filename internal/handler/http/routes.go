// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const contentTypeJSON = "application/json"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withRecovery)

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	router.Get("/api/version", h.getServerVersion)

	router.Route("/api/auth", func(r chi.Router) {
		r.Use(middleware.NoCache)

		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Use(middleware.AllowContentType(contentTypeJSON))
			r.Post("/signup", h.signup)
			r.Post("/signUp", h.signup)
			r.Post("/login", h.login)
		})
		r.Post("/logout", h.logout)

		r.With(h.auth).Get("/me", h.me)
	})

	router.Route("/api/users", func(r chi.Router) {
		r.Use(middleware.NoCache, h.auth, middleware.AllowContentType(contentTypeJSON))
		r.Post("/update", h.updateProfile)
		r.Patch("/me", h.updateProfile)
	})

	return router
}
