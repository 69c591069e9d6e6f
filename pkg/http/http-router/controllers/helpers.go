package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"

	"github.com/lintang-b-s/geodistances/pkg"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/zap"
)

type envelope map[string]any

const contentTypeMsgpack = "application/msgpack"

func wantsMsgpack(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Accept"))
	return err == nil && mt == contentTypeMsgpack
}

// writeJSON marshals data structure to encoded JSON response, or to msgpack
// when the client accepts application/msgpack.
func (api *geoDistanceAPI) writeJSON(w http.ResponseWriter, r *http.Request, status int, data envelope,
	headers http.Header) error {
	var (
		body        []byte
		contentType string
		err         error
	)
	if wantsMsgpack(r) {
		body, err = msgpack.Marshal(data)
		contentType = contentTypeMsgpack
	} else {
		body, err = json.MarshalIndent(data, "", "\t")
		body = append(body, '\n')
		contentType = "application/json"
	}
	if err != nil {
		return err
	}

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		api.log.Error("failed to write response", zap.Error(err))
		return err
	}

	return nil
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (api *geoDistanceAPI) errorResponse(w http.ResponseWriter, r *http.Request, status int, code string, message string) {
	var resp errorResponse
	resp.Error.Code = code
	resp.Error.Message = message

	if err := api.writeJSON(w, r, status, envelope{"error": resp.Error}, nil); err != nil {
		api.log.Error("failed to write error response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// notConvergedResponse writes a 422 that carries the best iterate next to the
// error, so clients can still use rows that did converge.
func (api *geoDistanceAPI) notConvergedResponse(w http.ResponseWriter, r *http.Request, err error, data any) {
	api.log.Warn("iteration did not converge",
		zap.String("path", r.URL.Path),
		zap.Error(err))

	var resp errorResponse
	resp.Error.Code = "not_converged"
	resp.Error.Message = err.Error()
	if werr := api.writeJSON(w, r, http.StatusUnprocessableEntity, envelope{"error": resp.Error, "data": data}, nil); werr != nil {
		api.log.Error("failed to write error response", zap.Error(werr))
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (api *geoDistanceAPI) ServerErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.log.Error("internal server error",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err))
	api.errorResponse(w, r, http.StatusInternalServerError, "internal_server_error", pkg.MessageInternalServerError)
}

func (api *geoDistanceAPI) BadRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusBadRequest, "bad_request", err.Error())
}

// ErrorResponse picks the status from the code of err.
func (api *geoDistanceAPI) ErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, pkg.ErrBadParamInput), errors.Is(err, pkg.ErrConfiguration):
		api.BadRequestResponse(w, r, err)
	case errors.Is(err, pkg.ErrConvergence):
		api.errorResponse(w, r, http.StatusUnprocessableEntity, "not_converged", err.Error())
	case errors.Is(err, pkg.ErrNotFound):
		api.errorResponse(w, r, http.StatusNotFound, "not_found", err.Error())
	default:
		api.ServerErrorResponse(w, r, err)
	}
}

var (
	validate = validator.New()
	trans    ut.Translator
)

func init() {
	english := en.New()
	uni := ut.New(english, english)
	trans, _ = uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)
}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	var validatorErrs validator.ValidationErrors
	if !errors.As(err, &validatorErrs) {
		return []error{err}
	}
	for _, e := range validatorErrs {
		errs = append(errs, errors.New(e.Translate(trans)))
	}
	return errs
}

// decodeAndValidate reads a JSON body into request and runs its validate tags.
func decodeAndValidate(r *http.Request, request any) error {
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}

	if err := validate.Struct(request); err != nil {
		vv := translateError(err, trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		return fmt.Errorf("validation error: %v", vvString)
	}
	return nil
}
