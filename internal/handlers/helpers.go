package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"autoledger/internal/auth"
	apperrors "autoledger/internal/errors"
	"autoledger/internal/logger"
	"autoledger/internal/validator"
)

// bodyShape is the layout of an error body.
type bodyShape int

const (
	// plainBody is {message}.
	plainBody bodyShape = iota
	// successBody is {success:false,message}.
	successBody
)

// envelope describes how one resource reports failures.
type envelope struct {
	unauthorized bodyShape
	failure      bodyShape
	// exposeErrors echoes the underlying error text of a 500 in "error".
	exposeErrors bool
}

var (
	plainEnvelope   = envelope{unauthorized: plainBody, failure: plainBody}
	successEnvelope = envelope{unauthorized: successBody, failure: successBody}
	exposeEnvelope  = envelope{unauthorized: successBody, failure: successBody, exposeErrors: true}
	vehicleEnvelope = envelope{unauthorized: plainBody, failure: successBody}
)

// ErrorResponse represents an error response. Success is only present on
// resources that use the success envelope.
type ErrorResponse struct {
	Success *bool  `json:"success,omitempty"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// MessageResponse is returned by delete operations.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// requireIdentity returns the caller's identity, or writes a 401 and reports
// false. It runs before anything touches the store.
func requireIdentity(c *gin.Context, env envelope) (auth.Identity, bool) {
	id := auth.FromContext(c.Request.Context())
	if !id.Authenticated {
		respondWithError(c, env, apperrors.ErrUnauthorized)
		return id, false
	}
	return id, true
}

// respondWithError writes err in the resource's envelope. Errors that are not
// an *AppError are logged and reported as a generic 500.
func respondWithError(c *gin.Context, env envelope, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		logger.Get().Errorw("unexpected error",
			"error", err.Error(),
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
		)
		appErr = apperrors.Wrap(apperrors.ErrInternalServer, err)
	} else if appErr.Internal != nil {
		logger.Get().Errorw("app error",
			"code", appErr.Code,
			"error", appErr.Internal.Error(),
			"path", c.Request.URL.Path,
		)
	}

	shape := env.failure
	if appErr.StatusCode == http.StatusUnauthorized {
		shape = env.unauthorized
	}

	body := gin.H{"message": appErr.Message}
	if shape == successBody {
		body["success"] = false
	}
	detail := appErr.Detail
	if detail == "" && env.exposeErrors && appErr.StatusCode >= http.StatusInternalServerError && appErr.Internal != nil {
		detail = appErr.Internal.Error()
	}
	if detail != "" {
		body["error"] = detail
	}
	c.JSON(appErr.StatusCode, body)
}

// parseFlexibleTime accepts a calendar date (YYYY-MM-DD) or an RFC 3339 timestamp.
func parseFlexibleTime(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// isDateOnly reports whether s is a bare calendar date.
func isDateOnly(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// maxBodyBytes caps every JSON request body.
const maxBodyBytes = 1 << 20

func limitBody(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
}

// bodyError maps a failed body read or decode to a client error.
func bodyError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return apperrors.ErrBodyTooLarge
	}
	return apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid request body")
}

// decodeBody reads the request body as a JSON object.
func decodeBody(c *gin.Context) (map[string]any, error) {
	limitBody(c)
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, bodyError(err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var body map[string]any
	if err := dec.Decode(&body); err != nil || body == nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid request body")
	}
	return body, nil
}

// bindBody copies a validated body into dst and runs its binding rules.
func bindBody(body map[string]any, dst any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+typeErr.Field)
		}
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid request body")
	}
	if err := binding.Validator.ValidateStruct(dst); err != nil {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, validator.FieldMessage(err))
	}
	return nil
}

// protectedKeys are never written from a request body.
var protectedKeys = map[string]bool{
	"_id":       true,
	"id":        true,
	"userId":    true,
	"createdAt": true,
	"updatedAt": true,
}

// updateColumns maps the JSON keys present in body to the struct field names
// of T, in declaration order. Embedded value groups expand to their fields.
func updateColumns[T any](body map[string]any) []string {
	var columns []string
	t := reflect.TypeOf((*T)(nil)).Elem()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous {
			continue
		}
		key := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if key == "" || key == "-" || protectedKeys[key] {
			continue
		}
		if _, ok := body[key]; !ok {
			continue
		}
		if f.Type.Kind() == reflect.Struct && strings.Contains(f.Tag.Get("gorm"), "embedded") {
			columns = append(columns, embeddedColumns(f.Type, body[key])...)
			continue
		}
		columns = append(columns, f.Name)
	}
	if len(columns) > 0 {
		columns = append(columns, "UpdatedAt")
	}
	return columns
}

// embeddedColumns returns the fields of an embedded group whose keys appear in
// the nested object. A null group clears every field.
func embeddedColumns(t reflect.Type, nested any) []string {
	obj, isObject := nested.(map[string]any)
	var columns []string
	for j := 0; j < t.NumField(); j++ {
		f := t.Field(j)
		if isObject {
			if _, ok := obj[strings.SplitN(f.Tag.Get("json"), ",", 2)[0]]; !ok {
				continue
			}
		}
		columns = append(columns, f.Name)
	}
	return columns
}

// jsonKeys returns the JSON names of v's fields.
func jsonKeys(v any) map[string]bool {
	keys := map[string]bool{}
	t := reflect.TypeOf(v)
	for i := 0; i < t.NumField(); i++ {
		key := strings.SplitN(t.Field(i).Tag.Get("json"), ",", 2)[0]
		if key != "" && key != "-" {
			keys[key] = true
		}
	}
	return keys
}

// invalidField turns a ShouldBindJSON failure into a client message.
func invalidField(err error) string {
	msg := validator.FieldMessage(err)
	if msg == "Invalid input" {
		return "Invalid request body"
	}
	return msg
}
