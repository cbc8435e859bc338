package handler

import (
	"backend/internal/service"
	"backend/pkg/pagination"
	"backend/pkg/response"
	"net/http"

	"github.com/gin-gonic/gin"
)

type EmployeeHandler struct {
	employeeService service.EmployeeService
}

// NewEmployeeHandler sets up the routing dependencies for Employee endpoints
func NewEmployeeHandler(employeeService service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup.
// The whole group is admin-gated. There is deliberately no delete route.
func (h *EmployeeHandler) RegisterRoutes(router *gin.RouterGroup, requireAdmin gin.HandlerFunc) {
	employees := router.Group("/employees", requireAdmin)
	{
		employees.GET("", h.ListEmployees)
		employees.POST("", h.CreateEmployee)
		employees.PUT("/:id", h.UpdateEmployee)
	}
}

// ListEmployees handles GET /employees
// @Summary      List employees
// @Description  Retrieves employees with their department references resolved to names
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Number of items per page (default 20)"
// @Success      200    {object}  response.Response{data=object}
// @Failure      403    {object}  response.Response
// @Router       /employees [get]
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	params := pagination.Parse(c)

	employees, total, err := h.employeeService.ListEmployees(c.Request.Context(), params.Page, params.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to fetch employees"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, map[string]interface{}{
		"employees": employees,
		"total":     total,
		"page":      params.Page,
		"limit":     params.Limit,
	}))
}

// CreateEmployee handles POST /employees
// @Summary      Create employee
// @Description  Creates an employee; the user email must match an existing account
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.SaveEmployeeRequest  true  "Employee Payload"
// @Success      201      {object}  response.Response{data=service.EmployeeResponse}
// @Failure      400      {object}  response.Response
// @Router       /employees [post]
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req service.SaveEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, employee))
}

// UpdateEmployee handles PUT /employees/:id
// @Summary      Update employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                       true  "Employee ID"
// @Param        payload  body      service.SaveEmployeeRequest  true  "Employee Payload"
// @Success      200      {object}  response.Response{data=service.EmployeeResponse}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /employees/{id} [put]
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	id := c.Param("id")
	var req service.SaveEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	employee, err := h.employeeService.UpdateEmployee(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, employee))
}
