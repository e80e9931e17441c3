package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ChIhtisham78/ShoppingMallPos/internal/delivery/http/middleware"
	"github.com/ChIhtisham78/ShoppingMallPos/pkg/response"
	"github.com/ChIhtisham78/ShoppingMallPos/pkg/validator"

	"github.com/gorilla/mux"
)

// queryInt returns 0 for a missing or malformed parameter.
func queryInt(r *http.Request, key string) int {
	v, _ := strconv.Atoi(r.URL.Query().Get(key))
	return v
}

func queryBool(r *http.Request, key string) bool {
	v, _ := strconv.ParseBool(r.URL.Query().Get(key))
	return v
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id, err == nil && id > 0
}

// principal writes a 401 and returns false when the request is not
// authenticated.
func principal(w http.ResponseWriter, r *http.Request) (middleware.Principal, bool) {
	p, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
	}
	return p, ok
}

// bind decodes the JSON body into dst and validates it, writing a 400 on
// failure.
func bind(w http.ResponseWriter, r *http.Request, v *validator.CustomValidator, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		response.BadRequest(w, "Invalid request body")
		return false
	}
	if err := v.Validate(dst); err != nil {
		response.ValidationError(w, v.FormatValidationErrors(err))
		return false
	}
	return true
}
