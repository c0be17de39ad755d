package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"

	"github.com/dmitrymomot/formschema/pkg/config"
	"github.com/dmitrymomot/formschema/pkg/logger"
	"github.com/dmitrymomot/formschema/pkg/schema"
)

// loadSchemas parses every *.yaml / *.yml file in dir. The file name without
// extension becomes the schema name.
func loadSchemas(dir string) (map[string]*schema.Schema, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read schema dir: %w", err)
	}

	out := make(map[string]*schema.Schema)
	for _, e := range entries {
		ext := filepath.Ext(e.Name())
		if e.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		name := strings.TrimSuffix(e.Name(), ext)
		if _, dup := out[name]; dup {
			return nil, fmt.Errorf("schema %q defined twice", name)
		}

		f, err := os.Open(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		s, err := schema.Load(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("schema %q: %w", name, err)
		}
		out[name] = s
	}
	return out, nil
}

type fieldInfo struct {
	Name     string      `json:"name"`
	Type     string      `json:"type"`
	Required bool        `json:"required"`
	Fields   []fieldInfo `json:"fields,omitempty"`
}

func describe(s *schema.Schema) []fieldInfo {
	fields := s.Fields()
	out := make([]fieldInfo, len(fields))
	for i, f := range fields {
		out[i] = fieldInfo{Name: f.Name, Type: f.Type.String(), Required: f.Required}
		if f.Nested != nil {
			out[i].Fields = describe(f.Nested)
		}
	}
	return out
}

func newRouter(cfg config.Service, log *slog.Logger, schemas map[string]*schema.Schema) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)

	names := make([]string, 0, len(schemas))
	for name := range schemas {
		names = append(names, name)
	}
	slices.Sort(names)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/schemas", func(w http.ResponseWriter, _ *http.Request) {
		list := make(map[string][]fieldInfo, len(schemas))
		for name, s := range schemas {
			list[name] = describe(s)
		}
		writeJSON(w, http.StatusOK, list)
	})

	for _, name := range names {
		for _, f := range schemas[name].Fields() {
			log.Debug("field registered",
				logger.Schema(name),
				logger.Field(f.Name),
				slog.String("type", f.Type.String()),
				slog.Bool("required", f.Required),
			)
		}

		validate := schemas[name].Middleware(
			schema.WithErrorStatus(cfg.ErrorStatus),
			schema.WithStrict(cfg.Strict),
			schema.WithMaxBodySize(cfg.MaxBodySize),
			schema.WithLogger(log.With(logger.Schema(name))),
		)
		r.With(validate).Post("/validate/"+name, func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"success": true, "errors": nil})
		})
	}

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
