package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Dosada05/esports-admin/render"
	"github.com/Dosada05/esports-admin/services"
	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 1_048_576 // 1MB

// Renderer executes a named page. *render.TemplateSet implements it.
type Renderer interface {
	Render(w http.ResponseWriter, page string, data render.PageData) error
}

// Layouts accepted for date-time fields: full ISO seconds, the datetime-local
// input format and the postgres text form.
var dateTimeLayouts = []string{
	"2006-01-02T15:04:05",
	render.DateTimeLayout,
	time.DateTime,
	time.RFC3339,
}

// fields holds the submitted body as strings, whatever its encoding was.
type fields map[string]string

// readFields decodes a urlencoded, multipart or JSON body.
func readFields(w http.ResponseWriter, r *http.Request) (fields, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		return readJSONFields(r)
	}

	if mediaType == "multipart/form-data" {
		if err := r.ParseMultipartForm(maxBodyBytes); err != nil {
			return nil, fmt.Errorf("body contains a malformed form: %w", err)
		}
	} else if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("body contains a malformed form: %w", err)
	}

	f := make(fields, len(r.PostForm))
	for key, values := range r.PostForm {
		if len(values) > 0 {
			f[key] = values[0]
		}
	}
	return f, nil
}

func readJSONFields(r *http.Request) (fields, error) {
	var raw map[string]any
	if err := readJSON(r, &raw); err != nil {
		return nil, err
	}

	f := make(fields, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case nil:
			f[key] = ""
		case string:
			f[key] = v
		case json.Number:
			f[key] = numberField(v)
		case bool:
			f[key] = strconv.FormatBool(v)
		default:
			return nil, fmt.Errorf("body contains incorrect JSON type for field %q", key)
		}
	}
	return f, nil
}

// numberField приводит 5.0 и 1e1 к целому виду, остальные числа остаются как есть.
func numberField(n json.Number) string {
	if i, err := n.Int64(); err == nil {
		return strconv.FormatInt(i, 10)
	}
	f, err := n.Float64()
	if err == nil && f == math.Trunc(f) && math.Abs(f) <= math.MaxInt32 {
		return strconv.FormatInt(int64(f), 10)
	}
	return n.String()
}

func readJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	err := dec.Decode(dst)
	if err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var maxBytesError *http.MaxBytesError

		switch {
		case errors.As(err, &syntaxError):
			return fmt.Errorf("body contains badly-formed JSON (at character %d)", syntaxError.Offset)
		case errors.Is(err, io.ErrUnexpectedEOF):
			return errors.New("body contains badly-formed JSON")
		case errors.As(err, &unmarshalTypeError):
			return fmt.Errorf("body contains incorrect JSON type (at character %d)", unmarshalTypeError.Offset)
		case errors.Is(err, io.EOF):
			return errors.New("body must not be empty")
		case errors.As(err, &maxBytesError):
			return fmt.Errorf("body must not be larger than %d bytes", maxBytesError.Limit)
		default:
			return err
		}
	}

	err = dec.Decode(&struct{}{})
	if !errors.Is(err, io.EOF) {
		return errors.New("body must only contain a single JSON value")
	}
	return nil
}

func invalidField(key, problem string) error {
	return fmt.Errorf("%w: %s %s", services.ErrValidationFailed, key, problem)
}

// text returns the raw value; required checks live in the services.
func (f fields) text(key string) string {
	return f[key]
}

func (f fields) integer(key string) (int, error) {
	v := strings.TrimSpace(f[key])
	if v == "" {
		return 0, invalidField(key, "is required")
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, invalidField(key, "must be an integer")
	}
	return n, nil
}

// optionalInt maps a blank value to nil, used for nullable references.
func (f fields) optionalInt(key string) (*int, error) {
	if strings.TrimSpace(f[key]) == "" {
		return nil, nil
	}
	n, err := f.integer(key)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// date parses YYYY-MM-DD. A blank value yields the zero time.
func (f fields) date(key string) (time.Time, error) {
	v := strings.TrimSpace(f[key])
	if v == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(render.DateLayout, v)
	if err != nil {
		return time.Time{}, invalidField(key, "must be a date (YYYY-MM-DD)")
	}
	return t, nil
}

// dateTime parses a timestamp in any of dateTimeLayouts. A blank value yields the zero time.
func (f fields) dateTime(key string) (time.Time, error) {
	v := strings.TrimSpace(f[key])
	if v == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, invalidField(key, "must be a date-time (YYYY-MM-DDTHH:MM:SS)")
}

func getIDFromURL(r *http.Request, paramName string) (int, error) {
	idStr := chi.URLParam(r, paramName)
	if idStr == "" {
		return 0, invalidField(paramName, "is missing in URL path")
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		return 0, invalidField(paramName, fmt.Sprintf("has invalid format: %q", idStr))
	}

	if id <= 0 {
		return 0, invalidField(paramName, "must be positive")
	}

	return id, nil
}

func redirect(w http.ResponseWriter, r *http.Request, to string) {
	http.Redirect(w, r, to, http.StatusSeeOther)
}

func textResponse(w http.ResponseWriter, status int, message string) {
	http.Error(w, message, status)
}

func badRequestResponse(w http.ResponseWriter, err error) {
	textResponse(w, http.StatusBadRequest, err.Error())
}

// serverErrorResponse logs the real error and answers with a fixed message.
func serverErrorResponse(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error, message string) {
	logger.ErrorContext(r.Context(), message,
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)
	textResponse(w, http.StatusInternalServerError, message)
}

// mapServiceErrorToHTTP: ошибки валидации → 400, отсутствующая строка → 404,
// всё остальное (в т.ч. нарушения ограничений БД) → 500 с message.
func mapServiceErrorToHTTP(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error, message string) {
	switch {
	case errors.Is(err, services.ErrValidationFailed):
		badRequestResponse(w, err)
	case errors.Is(err, services.ErrNotFound):
		textResponse(w, http.StatusNotFound, err.Error())
	default:
		serverErrorResponse(w, r, logger, err, message)
	}
}

// renderPage renders a list page and falls back to a plain 500 if the template fails.
func renderPage(w http.ResponseWriter, r *http.Request, renderer Renderer, logger *slog.Logger, page string, data any) {
	if err := renderer.Render(w, page, render.PageData{Data: data}); err != nil {
		serverErrorResponse(w, r, logger, err, "Error rendering page")
	}
}
