// Package http exposes the yard's booking and tracking API over echo.
package http

import (
	"errors"
	"net/http"
	"time"

	"pipeyard/internal/core/application/usecases/commands"
	"pipeyard/internal/core/application/usecases/queries"
	"pipeyard/internal/core/domain/model/kernel"
	"pipeyard/internal/core/domain/model/load"
	"pipeyard/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createRequestHandler    commands.CreateRequestCommandHandler
	reviewRequestHandler    commands.ReviewRequestCommandHandler
	scheduleDeliveryHandler commands.ScheduleDeliveryCommandHandler
	schedulePickupHandler   commands.SchedulePickupCommandHandler
	changeLoadStatusHandler commands.ChangeLoadStatusCommandHandler
	attachDocumentHandler   commands.AttachDocumentCommandHandler

	getRequestStatusHandler queries.GetRequestStatusQueryHandler
	getRequestLoadsHandler  queries.GetRequestLoadsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createRequestHandler commands.CreateRequestCommandHandler,
	reviewRequestHandler commands.ReviewRequestCommandHandler,
	scheduleDeliveryHandler commands.ScheduleDeliveryCommandHandler,
	schedulePickupHandler commands.SchedulePickupCommandHandler,
	changeLoadStatusHandler commands.ChangeLoadStatusCommandHandler,
	attachDocumentHandler commands.AttachDocumentCommandHandler,
	getRequestStatusHandler queries.GetRequestStatusQueryHandler,
	getRequestLoadsHandler queries.GetRequestLoadsQueryHandler,
) *Server {
	return &Server{
		createRequestHandler:    createRequestHandler,
		reviewRequestHandler:    reviewRequestHandler,
		scheduleDeliveryHandler: scheduleDeliveryHandler,
		schedulePickupHandler:   schedulePickupHandler,
		changeLoadStatusHandler: changeLoadStatusHandler,
		attachDocumentHandler:   attachDocumentHandler,
		getRequestStatusHandler: getRequestStatusHandler,
		getRequestLoadsHandler:  getRequestLoadsHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/requests", s.CreateRequest)
	api.POST("/requests/:id/review", s.ReviewRequest)
	api.POST("/requests/:id/deliveries", s.ScheduleDelivery)
	api.POST("/requests/:id/pickups", s.SchedulePickup)
	api.POST("/requests/:id/documents", s.AttachDocument)
	api.GET("/requests/:id/status", s.GetRequestStatus)
	api.GET("/requests/:id/loads", s.GetRequestLoads)

	api.POST("/loads/:id/status", s.ChangeLoadStatus)
}

// APIError is the JSON error body for every failed request.
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewRequest is the request body for creating a storage request.
type NewRequest struct {
	CompanyName     string `json:"company_name"`
	ContactName     string `json:"contact_name"`
	ContactPhone    string `json:"contact_phone"`
	EstimatedJoints int    `json:"estimated_joints"`
}

// CreatedResponse returns the identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// CreateRequest handles POST /api/v1/requests.
func (s *Server) CreateRequest(ctx echo.Context) error {
	var body NewRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	estimate, err := kernel.JointsQuantity(body.EstimatedJoints)
	if err != nil {
		return badRequest(ctx, "Invalid estimated quantity: "+err.Error())
	}

	requestID := kernel.NewUUID()
	cmd, err := commands.NewCreateRequestCommand(
		requestID, body.CompanyName, body.ContactName, body.ContactPhone, estimate)
	if err != nil {
		return badRequest(ctx, "Invalid request data: "+err.Error())
	}

	if err := s.createRequestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: requestID.String()})
}

// ReviewDecision is the request body for approving or rejecting a request.
type ReviewDecision struct {
	Approve bool `json:"approve"`
}

// ReviewRequest handles POST /api/v1/requests/:id/review.
func (s *Server) ReviewRequest(ctx echo.Context) error {
	requestID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid request id")
	}

	var body ReviewDecision
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewReviewRequestCommand(requestID, body.Approve)
	if err != nil {
		return badRequest(ctx, "Invalid review data: "+err.Error())
	}

	if err := s.reviewRequestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// NewBooking is the request body for scheduling a delivery or pickup.
type NewBooking struct {
	TruckingMethod string    `json:"trucking_method"`
	CarrierName    string    `json:"carrier_name"`
	TruckNumber    string    `json:"truck_number"`
	ScheduledFor   time.Time `json:"scheduled_for"`
	AfterHours     bool      `json:"after_hours"`
	PlannedJoints  int       `json:"planned_joints"`
}

// BookingResponse reports the saga outcome of a booking.
type BookingResponse struct {
	LoadID         string `json:"load_id,omitempty"`
	SequenceNumber int    `json:"sequence_number,omitempty"`
	Degraded       bool   `json:"degraded"`
	Message        string `json:"message,omitempty"`
}

// ScheduleDelivery handles POST /api/v1/requests/:id/deliveries.
func (s *Server) ScheduleDelivery(ctx echo.Context) error {
	requestID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid request id")
	}

	var body NewBooking
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	planned, err := kernel.JointsQuantity(body.PlannedJoints)
	if err != nil {
		return badRequest(ctx, "Invalid planned quantity: "+err.Error())
	}

	cmd, err := commands.NewScheduleDeliveryCommand(
		requestID, body.TruckingMethod, body.CarrierName, body.TruckNumber,
		body.ScheduledFor, body.AfterHours, planned)
	if err != nil {
		return badRequest(ctx, "Invalid booking data: "+err.Error())
	}

	result, err := s.scheduleDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return writeBookingResult(ctx, result)
}

// SchedulePickup handles POST /api/v1/requests/:id/pickups.
func (s *Server) SchedulePickup(ctx echo.Context) error {
	requestID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid request id")
	}

	var body NewBooking
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	planned, err := kernel.JointsQuantity(body.PlannedJoints)
	if err != nil {
		return badRequest(ctx, "Invalid planned quantity: "+err.Error())
	}

	cmd, err := commands.NewSchedulePickupCommand(
		requestID, body.TruckingMethod, body.ScheduledFor, body.AfterHours, planned)
	if err != nil {
		return badRequest(ctx, "Invalid booking data: "+err.Error())
	}

	result, err := s.schedulePickupHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return writeBookingResult(ctx, result)
}

// StatusChange is the request body for progressing a load's status.
type StatusChange struct {
	Status          string `json:"status"`
	CompletedJoints *int   `json:"completed_joints,omitempty"`
}

// ChangeLoadStatus handles POST /api/v1/loads/:id/status.
func (s *Server) ChangeLoadStatus(ctx echo.Context) error {
	loadID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid load id")
	}

	var body StatusChange
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	targetStatus, ok := parseLoadStatus(body.Status)
	if !ok {
		return badRequest(ctx, "Unknown status: "+body.Status)
	}

	var completed *kernel.Quantity
	if body.CompletedJoints != nil {
		quantity, qErr := kernel.JointsQuantity(*body.CompletedJoints)
		if qErr != nil {
			return badRequest(ctx, "Invalid completed quantity: "+qErr.Error())
		}
		completed = &quantity
	}

	cmd, err := commands.NewChangeLoadStatusCommand(loadID, targetStatus, completed)
	if err != nil {
		return badRequest(ctx, "Invalid status change: "+err.Error())
	}

	if err := s.changeLoadStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AttachDocument handles POST /api/v1/requests/:id/documents.
// Expects a multipart form with a "file" part, a "kind" field
// ("manifest" or "proof_of_delivery") and an optional "load_id" field.
func (s *Server) AttachDocument(ctx echo.Context) error {
	requestID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid request id")
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return badRequest(ctx, "Missing file")
	}

	kind, ok := parseDocumentKind(ctx.FormValue("kind"))
	if !ok {
		return badRequest(ctx, "Unknown document kind: "+ctx.FormValue("kind"))
	}

	var loadID *kernel.UUID
	if raw := ctx.FormValue("load_id"); raw != "" {
		parsed, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return badRequest(ctx, "Invalid load id")
		}
		loadID = &parsed
	}

	file, err := fileHeader.Open()
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, APIError{
			Code:    http.StatusInternalServerError,
			Message: "Failed to read uploaded file",
		})
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	cmd, err := commands.NewAttachDocumentCommand(
		requestID, loadID, fileHeader.Filename, kind, file, fileHeader.Size, contentType)
	if err != nil {
		return badRequest(ctx, "Invalid document data: "+err.Error())
	}

	if err := s.attachDocumentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// RequestStatus is the response body of the status projection.
type RequestStatus struct {
	RequestID       string         `json:"request_id"`
	CompanyName     string         `json:"company_name"`
	CustomerStatus  string         `json:"customer_status"`
	Workflow        WorkflowBadge  `json:"workflow"`
	Inbound         ProgressFigure `json:"inbound"`
	Outbound        ProgressFigure `json:"outbound"`
	JointsInStorage int            `json:"joints_in_storage"`
}

// WorkflowBadge is the yard-facing workflow state.
type WorkflowBadge struct {
	Label          string `json:"label"`
	Tone           string `json:"tone"`
	ActionRequired bool   `json:"action_required"`
}

// ProgressFigure is the joint progress for one direction.
type ProgressFigure struct {
	PlannedJoints   int `json:"planned_joints"`
	CompletedJoints int `json:"completed_joints"`
	RemainingJoints int `json:"remaining_joints"`
}

// GetRequestStatus handles GET /api/v1/requests/:id/status.
func (s *Server) GetRequestStatus(ctx echo.Context) error {
	requestID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid request id")
	}

	query, err := queries.NewGetRequestStatusQuery(requestID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	status, err := s.getRequestStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, RequestStatus{
		RequestID:      status.RequestID.String(),
		CompanyName:    status.CompanyName,
		CustomerStatus: status.CustomerStatus,
		Workflow: WorkflowBadge{
			Label:          status.Workflow.Label,
			Tone:           string(status.Workflow.Tone),
			ActionRequired: status.Workflow.ActionRequired,
		},
		Inbound: ProgressFigure{
			PlannedJoints:   status.Inbound.PlannedJoints,
			CompletedJoints: status.Inbound.CompletedJoints,
			RemainingJoints: status.Inbound.RemainingJoints,
		},
		Outbound: ProgressFigure{
			PlannedJoints:   status.Outbound.PlannedJoints,
			CompletedJoints: status.Outbound.CompletedJoints,
			RemainingJoints: status.Outbound.RemainingJoints,
		},
		JointsInStorage: status.JointsInStorage,
	})
}

// LoadRow is one scheduled load in the listing response.
type LoadRow struct {
	ID              string `json:"id"`
	Direction       string `json:"direction"`
	SequenceNumber  int    `json:"sequence_number"`
	Status          string `json:"status"`
	PlannedJoints   int    `json:"planned_joints"`
	CompletedJoints int    `json:"completed_joints"`
	DocumentCount   int    `json:"document_count"`
}

// GetRequestLoads handles GET /api/v1/requests/:id/loads.
func (s *Server) GetRequestLoads(ctx echo.Context) error {
	requestID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid request id")
	}

	query, err := queries.NewGetRequestLoadsQuery(requestID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	loads, err := s.getRequestLoadsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]LoadRow, len(loads))
	for i, row := range loads {
		response[i] = LoadRow{
			ID:              row.ID.String(),
			Direction:       row.Direction,
			SequenceNumber:  row.SequenceNumber,
			Status:          row.Status,
			PlannedJoints:   row.PlannedJoints,
			CompletedJoints: row.CompletedJoints,
			DocumentCount:   row.DocumentCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func writeBookingResult(ctx echo.Context, result commands.ScheduleResult) error {
	response := BookingResponse{
		LoadID:         result.LoadID,
		SequenceNumber: result.SequenceNumber,
		Degraded:       result.Degraded,
		Message:        result.Message,
	}

	// A degraded booking was recorded but not scheduled; 202 tells the
	// caller the yard will follow up by hand.
	if result.Degraded {
		return ctx.JSON(http.StatusAccepted, response)
	}

	return ctx.JSON(http.StatusCreated, response)
}

func writeError(ctx echo.Context, err error) error {
	var notFound *errs.ObjectNotFoundError
	switch {
	case errors.As(err, &notFound):
		return ctx.JSON(http.StatusNotFound, APIError{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, commands.ErrRequestNotApproved),
		errors.Is(err, commands.ErrDuplicateBooking),
		errors.Is(err, load.ErrTerminalStatus),
		errors.Is(err, load.ErrStatusReversion),
		errors.Is(err, load.ErrStatusSkipped),
		errors.Is(err, load.ErrRejectionTooLate):
		return ctx.JSON(http.StatusConflict, APIError{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, APIError{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		})
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, APIError{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

func parseLoadStatus(raw string) (load.Status, bool) {
	switch raw {
	case "approved":
		return load.Approved, true
	case "in_transit":
		return load.InTransit, true
	case "completed":
		return load.Completed, true
	case "rejected":
		return load.Rejected, true
	default:
		return load.StatusUnknown, false
	}
}

func parseDocumentKind(raw string) (load.DocumentKind, bool) {
	switch raw {
	case "manifest":
		return load.Manifest, true
	case "proof_of_delivery":
		return load.ProofOfDelivery, true
	default:
		return load.DocumentKindUnknown, false
	}
}
