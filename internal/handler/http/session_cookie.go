// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/bliss/internal/config"
	"github.com/MKhiriev/bliss/models"
)

// SessionCarrier moves the session token between the server and the browser
// in an HttpOnly cookie. It never inspects the token itself.
type SessionCarrier struct {
	name     string
	domain   string
	sameSite http.SameSite
	secure   bool

	// maxAge is the cookie lifetime in seconds; it matches the token lifetime.
	maxAge int
}

// NewSessionCarrier builds a carrier from the session config. lifetime is
// the token lifetime.
func NewSessionCarrier(cfg config.Session, lifetime time.Duration) *SessionCarrier {
	return &SessionCarrier{
		name:     cfg.CookieName,
		domain:   cfg.CookieDomain,
		sameSite: cfg.SameSiteMode(),
		secure:   cfg.Secure,
		maxAge:   int(lifetime.Seconds()),
	}
}

// Attach sets the session cookie carrying token on the response.
func (s *SessionCarrier) Attach(w http.ResponseWriter, token models.Token) {
	http.SetCookie(w, s.cookie(token.String(), s.maxAge))
}

// Extract returns the token from the request cookie. An absent or empty
// cookie gives false.
func (s *SessionCarrier) Extract(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(s.name)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

// Clear instructs the browser to drop the session cookie.
func (s *SessionCarrier) Clear(w http.ResponseWriter) {
	cookie := s.cookie("", -1)
	cookie.Expires = time.Unix(0, 0)
	http.SetCookie(w, cookie)
}

func (s *SessionCarrier) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     s.name,
		Value:    value,
		Path:     "/",
		Domain:   s.domain,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: s.sameSite,
	}
}
