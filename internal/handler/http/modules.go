// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "github.com/go-chi/chi/v5"

// Module registers a group of routes under a common path prefix.
type Module interface {
	// Pattern is the prefix the module is mounted at, e.g. "/api/auth".
	Pattern() string

	// Routes registers the module's routes relative to Pattern.
	Routes(r chi.Router)
}

func (h *Handler) modules() []Module {
	return []Module{
		NewAuthModule(h),
		NewUserModule(h),
		&docsModule{h: h},
		&metaModule{h: h},
	}
}

// AuthModule serves registration, login and the current-user endpoint.
// Registration and login are rate limited per client IP.
type AuthModule struct {
	h *Handler
}

func NewAuthModule(h *Handler) *AuthModule {
	return &AuthModule{h: h}
}

func (m *AuthModule) Pattern() string {
	return "/api/auth"
}

func (m *AuthModule) Routes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(m.h.withRateLimit)
		r.Post("/register", m.h.register)
		r.Post("/login", m.h.login)
	})

	r.With(m.h.auth).Get("/me", m.h.me)
}

// UserModule serves user listing and profile management. Every route
// requires a bearer token.
type UserModule struct {
	h *Handler
}

func NewUserModule(h *Handler) *UserModule {
	return &UserModule{h: h}
}

func (m *UserModule) Pattern() string {
	return "/api/users"
}

func (m *UserModule) Routes(r chi.Router) {
	r.Use(m.h.auth)

	r.Get("/", m.h.listUsers)
	r.Get("/{id}", m.h.getUser)
	r.Patch("/{id}", m.h.updateUser)
	r.Delete("/{id}", m.h.deleteUser)
}

type docsModule struct {
	h *Handler
}

func (m *docsModule) Pattern() string {
	return m.h.cfg.DocsRoute
}

func (m *docsModule) Routes(r chi.Router) {
	r.Get("/", m.h.docsUI)
	r.Get("/openapi.json", m.h.docsJSON)
	r.Get("/openapi.yaml", m.h.docsYAML)
}

type metaModule struct {
	h *Handler
}

func (m *metaModule) Pattern() string {
	return "/api"
}

func (m *metaModule) Routes(r chi.Router) {
	r.Get("/health", m.h.health)
	r.Get("/version", m.h.getServerVersion)
}
