package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nywele/salon-api/internal/application/service"
	domainRepo "github.com/nywele/salon-api/internal/domain/repository"
	"github.com/nywele/salon-api/internal/presentation/http/dto/request"
	"github.com/nywele/salon-api/internal/presentation/http/dto/response"
	"github.com/nywele/salon-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

// AppointmentHandler handles appointment-related HTTP requests
type AppointmentHandler struct {
	appointmentService *service.AppointmentService
}

// NewAppointmentHandler creates a new appointment handler
func NewAppointmentHandler(appointmentService *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

// List handles listing appointments with optional filters
func (h *AppointmentHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &domainRepo.AppointmentFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
	}

	if staffIDStr := c.Query("staff_id"); staffIDStr != "" {
		staffID, err := uuid.Parse(staffIDStr)
		if err != nil {
			response.BadRequest(c, "Invalid staff ID")
			return
		}
		params.StaffID = &staffID
	}
	if clientIDStr := c.Query("client_id"); clientIDStr != "" {
		clientID, err := uuid.Parse(clientIDStr)
		if err != nil {
			response.BadRequest(c, "Invalid client ID")
			return
		}
		params.ClientID = &clientID
	}
	if status := c.Query("status"); status != "" {
		params.Status = &status
	}
	if fromStr := c.Query("from"); fromStr != "" {
		from, err := time.Parse(reportDateLayout, fromStr)
		if err != nil {
			response.BadRequest(c, "Invalid 'from' date, expected YYYY-MM-DD")
			return
		}
		params.DateFrom = &from
	}
	if toStr := c.Query("to"); toStr != "" {
		to, err := time.Parse(reportDateLayout, toStr)
		if err != nil {
			response.BadRequest(c, "Invalid 'to' date, expected YYYY-MM-DD")
			return
		}
		params.DateTo = &to
	}

	result, err := h.appointmentService.ListAppointments(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Appointments retrieved successfully", result)
}

// Get handles retrieving a single appointment
func (h *AppointmentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid appointment ID")
		return
	}

	appointment, err := h.appointmentService.GetAppointment(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Appointment retrieved successfully", appointment)
}

// Create handles creating an appointment
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req request.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	locationID, err := uuid.Parse(req.LocationID)
	if err != nil {
		response.BadRequest(c, "Invalid location ID")
		return
	}
	staffID, err := uuid.Parse(req.StaffID)
	if err != nil {
		response.BadRequest(c, "Invalid staff ID")
		return
	}

	input := &service.CreateAppointmentInput{
		LocationID:         locationID,
		StaffID:            staffID,
		ServiceName:        req.ServiceName,
		Status:             req.Status,
		RebookedAtCheckout: req.RebookedAtCheckout,
		TotalPrice:         decimal.Zero,
		TipAmount:          decimal.Zero,
	}

	if req.ClientID != nil {
		clientID, err := uuid.Parse(*req.ClientID)
		if err != nil {
			response.BadRequest(c, "Invalid client ID")
			return
		}
		input.ClientID = &clientID
	}

	input.AppointmentDate, err = time.Parse(reportDateLayout, req.AppointmentDate)
	if err != nil {
		response.BadRequest(c, "Invalid appointment date, expected YYYY-MM-DD")
		return
	}

	if req.TotalPrice != "" {
		input.TotalPrice, err = decimal.NewFromString(req.TotalPrice)
		if err != nil {
			response.BadRequest(c, "Invalid total price")
			return
		}
	}
	if req.TipAmount != "" {
		input.TipAmount, err = decimal.NewFromString(req.TipAmount)
		if err != nil {
			response.BadRequest(c, "Invalid tip amount")
			return
		}
	}

	appointment, err := h.appointmentService.CreateAppointment(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Appointment created successfully", appointment)
}

// Update handles updating an appointment
func (h *AppointmentHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid appointment ID")
		return
	}

	var req request.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateAppointmentInput{
		ID:                 id,
		ServiceName:        req.ServiceName,
		Status:             req.Status,
		RebookedAtCheckout: req.RebookedAtCheckout,
	}

	if req.AppointmentDate != nil {
		date, err := time.Parse(reportDateLayout, *req.AppointmentDate)
		if err != nil {
			response.BadRequest(c, "Invalid appointment date, expected YYYY-MM-DD")
			return
		}
		input.AppointmentDate = &date
	}
	if req.TotalPrice != nil {
		price, err := decimal.NewFromString(*req.TotalPrice)
		if err != nil {
			response.BadRequest(c, "Invalid total price")
			return
		}
		input.TotalPrice = &price
	}
	if req.TipAmount != nil {
		tip, err := decimal.NewFromString(*req.TipAmount)
		if err != nil {
			response.BadRequest(c, "Invalid tip amount")
			return
		}
		input.TipAmount = &tip
	}

	appointment, err := h.appointmentService.UpdateAppointment(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Appointment updated successfully", appointment)
}

// Delete handles deleting an appointment
func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid appointment ID")
		return
	}

	if err := h.appointmentService.DeleteAppointment(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
