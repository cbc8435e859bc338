package handler

import (
	"backend/internal/middleware"
	"backend/internal/service"
	"backend/pkg/pagination"
	"backend/pkg/response"
	"net/http"

	"github.com/gin-gonic/gin"
)

type RequestHandler struct {
	requestService service.RequestService
}

// NewRequestHandler sets up the routing dependencies for Request endpoints
func NewRequestHandler(requestService service.RequestService) *RequestHandler {
	return &RequestHandler{requestService: requestService}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup.
// Requests are write-once: no update or delete routes exist.
func (h *RequestHandler) RegisterRoutes(router *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	requests := router.Group("/requests", requireAuth)
	{
		requests.GET("", h.ListRequests)
		requests.POST("", h.SubmitRequest)
	}
}

// ListRequests handles GET /requests
// @Summary      List own requests
// @Description  Retrieves only the requests created by the authenticated account
// @Tags         requests
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Number of items per page (default 20)"
// @Success      200    {object}  response.Response{data=object}
// @Failure      401    {object}  response.Response
// @Router       /requests [get]
func (h *RequestHandler) ListRequests(c *gin.Context) {
	acting, ok := middleware.CurrentAccount(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Account not found in context"))
		return
	}
	params := pagination.Parse(c)

	requests, total, err := h.requestService.ListRequests(c.Request.Context(), acting, params.Page, params.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to fetch requests"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, map[string]interface{}{
		"requests": requests,
		"total":    total,
		"page":     params.Page,
		"limit":    params.Limit,
	}))
}

// SubmitRequest handles POST /requests
// @Summary      Submit request
// @Description  Records a pending request; at least one named item is required
// @Tags         requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.SubmitRequestRequest  true  "Request Payload"
// @Success      201      {object}  response.Response{data=service.RequestResponse}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Router       /requests [post]
func (h *RequestHandler) SubmitRequest(c *gin.Context) {
	acting, ok := middleware.CurrentAccount(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Account not found in context"))
		return
	}

	var req service.SubmitRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	request, err := h.requestService.SubmitRequest(c.Request.Context(), acting, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, request))
}
