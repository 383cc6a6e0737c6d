package ical

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(path string) http.Handler {
	h := NewHandler(path)

	r := chi.NewRouter()
	r.Get("/", h.Overview)
	r.Get("/kalender.ics", h.Calendar)
	r.Get("/kalender/{year}.ics", h.Calendar)
	return r
}
