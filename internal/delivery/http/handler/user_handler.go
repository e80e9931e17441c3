package handler

import (
	"errors"
	"net/http"

	"github.com/ChIhtisham78/ShoppingMallPos/internal/delivery/dto"
	"github.com/ChIhtisham78/ShoppingMallPos/internal/usecase"
	"github.com/ChIhtisham78/ShoppingMallPos/pkg/response"
	"github.com/ChIhtisham78/ShoppingMallPos/pkg/validator"
)

type UserHandler struct {
	userUsecase usecase.UserUsecase
	validator   *validator.CustomValidator
}

func NewUserHandler(userUsecase usecase.UserUsecase, validator *validator.CustomValidator) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		validator:   validator,
	}
}

// CreateSalesAgent handles sales agent creation
// @Summary Create a sales agent
// @Description Create a sales-role user; the password defaults to the configured one
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateSalesAgentRequest true "Create Sales Agent Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /create/salesAgent [post]
func (h *UserHandler) CreateSalesAgent(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	var req dto.CreateSalesAgentRequest
	if !bind(w, r, h.validator, &req) {
		return
	}

	user, err := h.userUsecase.CreateSalesAgent(r.Context(), p.UserID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUsernameExists):
			response.Conflict(w, err.Error())
		case errors.Is(err, usecase.ErrInvalidUserName),
			errors.Is(err, usecase.ErrInvalidUsername),
			errors.Is(err, usecase.ErrInvalidSecurityQ):
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to create sales agent")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Sales agent created successfully", user)
}

// Profile handles the caller's sales profile
// @Summary User profile
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /user/profile [get]
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	profile, err := h.userUsecase.Profile(r.Context(), p.UserID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to get profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Profile retrieved successfully", profile)
}

// ListSalesAgents handles the sales agent list
// @Summary List sales agents
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /list/sales/users [get]
func (h *UserHandler) ListSalesAgents(w http.ResponseWriter, r *http.Request) {
	users, err := h.userUsecase.ListSalesAgents(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get sales agents")
		return
	}

	response.Success(w, http.StatusOK, "Sales agents retrieved successfully", users)
}

// ListUsers handles the user list
// @Summary List users
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /get/users/list [get]
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userUsecase.ListUsers(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get users")
		return
	}

	response.Success(w, http.StatusOK, "Users retrieved successfully", users)
}
