package api

import (
	"net/http"

	"github.com/phrazzld/kitchen-api/internal/api/shared"
	"github.com/phrazzld/kitchen-api/internal/service"
)

var (
	outcomeRegister = shared.Outcome{
		Status:      http.StatusCreated,
		Message:     "Customer registration successful",
		ErrorPrefix: "Customer registration failed",
	}
	outcomeCustomerLogin = shared.Outcome{Message: "Customer login successful", ErrorPrefix: "Customer login failed"}
	outcomeVendorLogin   = shared.Outcome{Message: "Vendor login successful", ErrorPrefix: "Vendor login failed"}
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	auth      service.AuthService
	normalize *shared.Normalizer
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(auth service.AuthService, normalize *shared.Normalizer) *AuthHandler {
	return &AuthHandler{auth: auth, normalize: normalize}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	req, ok := validated[RegisterRequest](w, r)
	if !ok {
		return
	}
	h.normalize.Run(w, r, outcomeRegister, func() (any, error) {
		return h.auth.RegisterCustomer(r.Context(), req.Name, req.Email, req.Password)
	})
}

// LoginCustomer handles POST /auth/login/customer.
func (h *AuthHandler) LoginCustomer(w http.ResponseWriter, r *http.Request) {
	req, ok := validated[LoginRequest](w, r)
	if !ok {
		return
	}
	h.normalize.Run(w, r, outcomeCustomerLogin, func() (any, error) {
		return h.auth.LoginCustomer(r.Context(), req.Email, req.Password)
	})
}

// LoginVendor handles POST /auth/login/vendor.
func (h *AuthHandler) LoginVendor(w http.ResponseWriter, r *http.Request) {
	req, ok := validated[LoginRequest](w, r)
	if !ok {
		return
	}
	h.normalize.Run(w, r, outcomeVendorLogin, func() (any, error) {
		return h.auth.LoginVendor(r.Context(), req.Email, req.Password)
	})
}
