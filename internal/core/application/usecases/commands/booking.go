package commands

import (
	"errors"
	"time"

	"pipeyard/internal/core/domain/model/load"
	"pipeyard/internal/core/domain/model/request"
	"pipeyard/internal/core/ports"
)

var (
	// ErrRequestNotApproved is returned when a load is booked against a
	// request that has not passed facility review.
	ErrRequestNotApproved = errors.New("storage request is not approved for scheduling")

	// ErrDuplicateBooking is returned when a concurrent booking took the
	// sequence slot between allocation and insert.
	ErrDuplicateBooking = errors.New("another booking already holds this load number")
)

// ScheduleResult reports the outcome of a booking saga.
type ScheduleResult struct {
	LoadID         string
	SequenceNumber int

	// Degraded is set when the booking was captured without shipment
	// records because the scheduling schema is absent.
	Degraded bool
	Message  string
}

// bookingWindow renders the delivery window shown in notifications.
func bookingWindow(scheduledFor time.Time, afterHours bool) string {
	window := scheduledFor.Format("Mon Jan 2 15:04")
	if afterHours {
		window += " (after hours)"
	}
	return window
}

func buildNotification(
	req *request.StorageRequest,
	direction load.Direction,
	loadNumber int,
	scheduledFor time.Time,
	afterHours bool,
	surchargeAmount int,
) ports.BookingNotification {
	return ports.BookingNotification{
		ReferenceID:     req.ID().String(),
		Company:         req.CompanyName(),
		ContactName:     req.ContactName(),
		ContactPhone:    req.ContactPhone(),
		Direction:       direction,
		LoadNumber:      loadNumber,
		Window:          bookingWindow(scheduledFor, afterHours),
		AfterHours:      afterHours,
		SurchargeAmount: surchargeAmount,
	}
}
