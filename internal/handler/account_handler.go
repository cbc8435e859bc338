package handler

import (
	"backend/internal/middleware"
	"backend/internal/service"
	"backend/pkg/pagination"
	"backend/pkg/response"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	accountService service.AccountService
}

// NewAccountHandler sets up the routing dependencies for Account endpoints
func NewAccountHandler(accountService service.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup.
// The whole group is admin-gated.
func (h *AccountHandler) RegisterRoutes(router *gin.RouterGroup, requireAdmin gin.HandlerFunc) {
	accounts := router.Group("/accounts", requireAdmin)
	{
		accounts.GET("", h.ListAccounts)
		accounts.POST("", h.CreateAccount)
		accounts.PUT("/:id", h.UpdateAccount)
		accounts.DELETE("/:id", h.DeleteAccount)
		accounts.POST("/:id/reset-password", h.ResetPassword)
	}
}

// ListAccounts handles GET /accounts
// @Summary      List accounts
// @Description  Retrieves a paginated list of accounts without password hashes
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Number of items per page (default 20)"
// @Success      200    {object}  response.Response{data=object}
// @Failure      403    {object}  response.Response
// @Router       /accounts [get]
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	params := pagination.Parse(c)

	accounts, total, err := h.accountService.ListAccounts(c.Request.Context(), params.Page, params.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to fetch accounts"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, map[string]interface{}{
		"accounts": accounts,
		"total":    total,
		"page":     params.Page,
		"limit":    params.Limit,
	}))
}

// CreateAccount handles POST /accounts
// @Summary      Create account
// @Description  Creates an account with an explicit role and verified flag
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.CreateAccountRequest  true  "Create Account Payload"
// @Success      201      {object}  response.Response{data=service.AccountResponse}
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /accounts [post]
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var req service.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, account))
}

// UpdateAccount handles PUT /accounts/:id
// @Summary      Update account
// @Description  Updates an account in place; a blank password keeps the current one
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                        true  "Account ID"
// @Param        payload  body      service.UpdateAccountRequest  true  "Update Account Payload"
// @Success      200      {object}  response.Response{data=service.AccountResponse}
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /accounts/{id} [put]
func (h *AccountHandler) UpdateAccount(c *gin.Context) {
	id := c.Param("id")
	var req service.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	account, err := h.accountService.UpdateAccount(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, account))
}

// DeleteAccount handles DELETE /accounts/:id
// @Summary      Delete account
// @Description  Removes an account; the acting admin cannot delete their own
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Account ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /accounts/{id} [delete]
func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	id := c.Param("id")
	acting, _ := middleware.CurrentAccount(c)

	if err := h.accountService.DeleteAccount(c.Request.Context(), id, acting); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, "Account deleted"))
}

// ResetPassword handles POST /accounts/:id/reset-password
// @Summary      Reset password
// @Description  Overwrites the account credential with a hash of the new password
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                        true  "Account ID"
// @Param        payload  body      service.ResetPasswordRequest  true  "New Password"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /accounts/{id}/reset-password [post]
func (h *AccountHandler) ResetPassword(c *gin.Context) {
	id := c.Param("id")
	var req service.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Password must be at least 6 characters"))
		return
	}

	if err := h.accountService.ResetPassword(c.Request.Context(), id, req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, "Password reset"))
}
