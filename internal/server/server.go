// Package server wires the demo forms onto HTTP servers.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/valyala/fasthttp"

	"github.com/michaelolof/formrules"
	"github.com/michaelolof/formrules/internal/config"
	"github.com/michaelolof/formrules/internal/forms"
)

func handlerOptions(cfg *config.Config, logger *slog.Logger) []formrules.Option {
	return []formrules.Option{
		formrules.WithLogger(formrules.NewSlogLogger(logger)),
		formrules.WithMaxRequestSize(cfg.MaxRequestSize),
	}
}

// NewRouter returns the net/http routes:
//
//	GET  /healthz
//	POST /validate/signup
//	POST /validate/contact
//	POST /validate/card
func NewRouter(cfg *config.Config, logger *slog.Logger) http.Handler {
	opts := handlerOptions(cfg, logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
	})

	r.Route("/validate", func(r chi.Router) {
		r.Method(http.MethodPost, "/signup", formrules.Handler(formrules.New(forms.Signup()), opts...))
		r.Method(http.MethodPost, "/contact", formrules.Handler(formrules.New(forms.Contact()), opts...))
		r.Method(http.MethodPost, "/card", forms.CardHandler(cfg.MaxRequestSize, logger))
	})

	return r
}

// NewLiveHandler returns the fasthttp websocket routes:
//
//	GET /live/signup
//	GET /live/contact
func NewLiveHandler(cfg *config.Config, logger *slog.Logger) fasthttp.RequestHandler {
	opts := handlerOptions(cfg, logger)
	signup := formrules.LiveHandler(formrules.New(forms.Signup()), opts...)
	contact := formrules.LiveHandler(formrules.New(forms.Contact()), opts...)

	return func(ctx *fasthttp.RequestCtx) {
		switch string(ctx.Path()) {
		case "/live/signup":
			signup(ctx)
		case "/live/contact":
			contact(ctx)
		default:
			ctx.Error("not found", fasthttp.StatusNotFound)
		}
	}
}
