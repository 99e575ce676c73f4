package ports

import (
	"context"

	"pipeyard/internal/core/domain/model/load"
)

// BookingNotification carries everything the facility team needs to see
// about a newly booked or fallback-logged load.
type BookingNotification struct {
	ReferenceID     string
	Company         string
	ContactName     string
	ContactPhone    string
	Direction       load.Direction
	LoadNumber      int
	Window          string
	AfterHours      bool
	SurchargeAmount int
}

// Notifier pushes booking events to the facility team.
//
// Notification failures never fail a booking; callers log and move on.
type Notifier interface {
	// NotifyLoadScheduled announces a fully provisioned load.
	NotifyLoadScheduled(ctx context.Context, notification BookingNotification) error

	// NotifyScheduleFallback announces a booking that was captured
	// without shipment records because the scheduling schema is absent.
	NotifyScheduleFallback(ctx context.Context, notification BookingNotification) error
}
