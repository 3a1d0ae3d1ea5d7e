package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/kitchen-api/internal/api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

type dishBody struct {
	Name  string   `json:"name" validate:"required,min=2,max=100"`
	Price *float64 `json:"price" validate:"required,gt=0,price"`
	Image *string  `json:"image" validate:"omitempty,url"`
}

func (dishBody) ValidationMessages() map[string]string {
	return map[string]string{
		"name.min":   "Name must be at least 2 characters long",
		"price.type": "Price must be a number",
	}
}

type dishQuery struct {
	Page   *int   `form:"page" validate:"omitempty,min=1"`
	Limit  *int   `form:"limit" validate:"omitempty,min=1,max=100"`
	SortBy string `form:"sortBy" validate:"omitempty,oneof=name price"`
}

type dishPatch struct {
	Name *string `json:"name" validate:"omitempty,min=2"`
}

type idParam struct {
	ID string `form:"id" validate:"required,uuid"`
}

// captureValidated serves the gate and returns the value the handler saw.
func captureValidated[T any](t *testing.T, mw func(http.Handler) http.Handler, req *http.Request) (*httptest.ResponseRecorder, *T) {
	t.Helper()
	var got *T
	h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		v, ok := shared.ValidatedFrom[T](r.Context())
		require.True(t, ok)
		got = &v
		w.WriteHeader(http.StatusOK)
	}))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w, got
}

func fieldErrors(body string) map[string]string {
	out := map[string]string{}
	gjson.Get(body, "error").ForEach(func(_, fe gjson.Result) bool {
		out[fe.Get("field").String()] = fe.Get("message").String()
		return true
	})
	return out
}

func TestValidateBody(t *testing.T) {
	v := NewValidator(nil)
	gateFn := ValidateBody[dishBody](v)

	t.Run("valid body reaches handler", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Jollof Rice","price":15.5,"extra":true}`))
		w, got := captureValidated[dishBody](t, gateFn, req)
		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, got)
		assert.Equal(t, "Jollof Rice", got.Name)
		assert.InDelta(t, 15.5, *got.Price, 1e-9)
	})

	t.Run("every violation is reported", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"J","price":-1,"image":"nope"}`))
		w, got := captureValidated[dishBody](t, gateFn, req)

		assert.Nil(t, got)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := w.Body.String()
		assert.Equal(t, "Validation failed", gjson.Get(body, "message").String())
		assert.Equal(t, map[string]string{
			"name":  "Name must be at least 2 characters long",
			"price": `"price" must be a positive number`,
			"image": `"image" must be a valid uri`,
		}, fieldErrors(body))
	})

	t.Run("price precision", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Suya","price":10.999}`))
		w, _ := captureValidated[dishBody](t, gateFn, req)
		assert.Equal(t, `"price" must have no more than 2 decimal places`, fieldErrors(w.Body.String())["price"])
	})

	t.Run("empty body validates as zero value", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		w, _ := captureValidated[dishBody](t, gateFn, req)
		assert.Equal(t, map[string]string{
			"name":  `"name" is required`,
			"price": `"price" is required`,
		}, fieldErrors(w.Body.String()))
	})

	t.Run("wrong json type", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Suya","price":"cheap"}`))
		w, _ := captureValidated[dishBody](t, gateFn, req)
		assert.Equal(t, "Price must be a number", fieldErrors(w.Body.String())["price"])
	})

	t.Run("type errors and rule violations together", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"A","price":"abc","image":"nope"}`))
		w, got := captureValidated[dishBody](t, gateFn, req)

		assert.Nil(t, got)
		require.Equal(t, http.StatusBadRequest, w.Code)
		errs := gjson.Get(w.Body.String(), "error").Array()
		require.Len(t, errs, 3)
		assert.Equal(t, "name", errs[0].Get("field").String())
		assert.Equal(t, "Name must be at least 2 characters long", errs[0].Get("message").String())
		assert.Equal(t, "price", errs[1].Get("field").String())
		assert.Equal(t, "Price must be a number", errs[1].Get("message").String())
		assert.Equal(t, "image", errs[2].Get("field").String())
	})

	t.Run("several mistyped fields", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":12,"price":"abc"}`))
		w, _ := captureValidated[dishBody](t, gateFn, req)
		assert.Equal(t, map[string]string{
			"name":  `"name" must be a string`,
			"price": "Price must be a number",
		}, fieldErrors(w.Body.String()))
	})

	t.Run("keys match case-insensitively", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"Name":"Suya","PRICE":12}`))
		w, got := captureValidated[dishBody](t, gateFn, req)
		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, got)
		assert.Equal(t, "Suya", got.Name)
	})

	t.Run("non object body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`["Suya"]`))
		w, _ := captureValidated[dishBody](t, gateFn, req)
		assert.Equal(t, map[string]string{"body": "Request body must be valid JSON"}, fieldErrors(w.Body.String()))
	})

	t.Run("malformed json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
		w, _ := captureValidated[dishBody](t, gateFn, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, fieldErrors(w.Body.String()), "body")
	})
}

func TestValidateQuery(t *testing.T) {
	gateFn := ValidateQuery[dishQuery](NewValidator(nil))

	t.Run("decodes values", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?page=2&limit=3&sortBy=price&unknown=1", nil)
		w, got := captureValidated[dishQuery](t, gateFn, req)
		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, got)
		assert.Equal(t, 2, *got.Page)
		assert.Equal(t, "price", got.SortBy)
	})

	t.Run("rule violations", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?page=0&limit=101&sortBy=rating", nil)
		w, _ := captureValidated[dishQuery](t, gateFn, req)
		assert.Equal(t, map[string]string{
			"page":   `"page" must be greater than or equal to 1`,
			"limit":  `"limit" must be less than or equal to 100`,
			"sortBy": `"sortBy" must be one of [name, price]`,
		}, fieldErrors(w.Body.String()))
	})

	t.Run("non numeric page", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?page=first", nil)
		w, _ := captureValidated[dishQuery](t, gateFn, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, fieldErrors(w.Body.String()), "page")
	})

	t.Run("decode failure does not hide rule violations", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?page=abc&sortBy=bogus&limit=500", nil)
		w, got := captureValidated[dishQuery](t, gateFn, req)

		assert.Nil(t, got)
		errs := gjson.Get(w.Body.String(), "error").Array()
		require.Len(t, errs, 3)
		assert.Equal(t, []string{"page", "limit", "sortBy"}, []string{
			errs[0].Get("field").String(), errs[1].Get("field").String(), errs[2].Get("field").String(),
		})
		assert.Equal(t, `"page" is invalid`, errs[0].Get("message").String())
		assert.Equal(t, `"limit" must be less than or equal to 100`, errs[1].Get("message").String())
	})
}

func TestValidateParams(t *testing.T) {
	v := NewValidator(nil)
	r := chi.NewRouter()
	r.With(ValidateParams[idParam](v)).Get("/menu-items/{id}", func(w http.ResponseWriter, r *http.Request) {
		p, _ := shared.ValidatedFrom[idParam](r.Context())
		_, _ = w.Write([]byte(p.ID))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/menu-items/3f1c2a9e-8a57-4c5e-9a45-2b8c7f0e6d11", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "3f1c2a9e-8a57-4c5e-9a45-2b8c7f0e6d11", w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/menu-items/42", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, `"id" must be a valid GUID`, fieldErrors(w.Body.String())["id"])
}

func TestRegisterStructRule(t *testing.T) {
	v := NewValidator(nil)
	v.RegisterStructRule(func(sl validator.StructLevel) {
		if sl.Current().Interface().(dishPatch).Name == nil {
			sl.ReportError(nil, "", "", "atleastone", "")
		}
	}, dishPatch{})

	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{}`))
	w, _ := captureValidated[dishPatch](t, ValidateBody[dishPatch](v), req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, map[string]string{"": "At least one field must be provided for update"}, fieldErrors(w.Body.String()))

	// A mistyped field was still sent, so only its decode error is reported.
	req = httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"name":7}`))
	w, _ = captureValidated[dishPatch](t, ValidateBody[dishPatch](v), req)
	assert.Equal(t, map[string]string{"name": `"name" must be a string`}, fieldErrors(w.Body.String()))
}
