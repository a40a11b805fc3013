package handler

import (
	"fmt"
	"net/http"

	"storefront-engine/internal/gateway"
	model "storefront-engine/internal/models"
	"storefront-engine/services/storefront/helpers"
	"storefront-engine/utils"

	"github.com/gin-gonic/gin"
)

type SessionServiceInterface interface {
	Initialize() error
	Login(username, password string) error
	RegisterWithCart(data gateway.RegistrationData) error
	Logout() error
	Current() model.Session
}

type SessionHandler struct {
	service SessionServiceInterface
}

func NewSessionHandler(service SessionServiceInterface) *SessionHandler {
	return &SessionHandler{service: service}
}

// GetSessionHandler handles GET /session
func (h *SessionHandler) GetSessionHandler(c *gin.Context) {
	sess := h.service.Current()
	resp := helpers.SessionResponse{
		Kind:       string(sess.Kind),
		Identifier: sess.Identifier,
	}
	utils.JSONResponse(c, http.StatusOK, resp, "session retrieved successfully")
}

// LoginHandler handles POST /session/login
func (h *SessionHandler) LoginHandler(c *gin.Context) {
	var req helpers.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LoginHandler", err)
		return
	}

	if err := h.service.Login(req.Username, req.Password); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("LoginHandler: login failed", map[string]any{
			"username": req.Username,
			"error":    err.Error(),
		})
		return
	}

	sess := h.service.Current()
	resp := helpers.SessionResponse{Kind: string(sess.Kind), Identifier: sess.Identifier}
	utils.JSONResponse(c, http.StatusOK, resp, "login successful")
	helpers.LogSuccess("LoginHandler", "login successful", map[string]any{"username": req.Username})
}

// RegisterHandler handles POST /session/register. Registration transfers
// the guest cart into the new account and leaves the caller logged out.
func (h *SessionHandler) RegisterHandler(c *gin.Context) {
	var req helpers.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterHandler", err)
		return
	}

	data := gateway.RegistrationData{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
	}
	if err := h.service.RegisterWithCart(data); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("RegisterHandler: registration failed", map[string]any{
			"username": req.Username,
			"error":    err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, nil, "registration successful, cart transferred")
	helpers.LogSuccess("RegisterHandler", "registration successful", map[string]any{"username": req.Username})
}

// LogoutHandler handles POST /session/logout
func (h *SessionHandler) LogoutHandler(c *gin.Context) {
	if err := h.service.Logout(); err != nil {
		// Logout always clears local auth; a failure here only means the
		// fresh guest session could not be provisioned.
		utils.Warn("LogoutHandler: guest reinit after logout failed", map[string]any{"error": err.Error()})
	}

	sess := h.service.Current()
	resp := helpers.SessionResponse{Kind: string(sess.Kind), Identifier: sess.Identifier}
	utils.JSONResponse(c, http.StatusOK, resp, "logged out")
	helpers.LogSuccess("LogoutHandler", "logged out", map[string]any{"identifier": sess.Identifier})
}
