package shipment

import (
	"errors"
	"fmt"
	"time"

	"pipeyard/internal/core/domain/model/kernel"
	"pipeyard/internal/pkg/errs"
)

// ErrDockAppointmentIsNotConstructed is returned when a DockAppointment
// was not created through NewDockAppointment or RestoreDockAppointment.
var ErrDockAppointmentIsNotConstructed = errors.New(
	"DockAppointment must be created via NewDockAppointment or RestoreDockAppointment",
)

// AppointmentStatus represents the confirmation state of a dock slot.
type AppointmentStatus int

const (
	// AppointmentStatusUnknown represents an invalid or undefined status.
	AppointmentStatusUnknown AppointmentStatus = iota

	// AppointmentPending is an after-hours slot awaiting yard confirmation.
	AppointmentPending

	// AppointmentConfirmed is a standard-hours slot, reserved immediately.
	AppointmentConfirmed
)

func getAppointmentStatusStrings() map[AppointmentStatus]string {
	return map[AppointmentStatus]string{
		AppointmentStatusUnknown: "Unknown",
		AppointmentPending:       "Pending",
		AppointmentConfirmed:     "Confirmed",
	}
}

// Validate checks if the AppointmentStatus value is valid.
func (s AppointmentStatus) Validate() error {
	if s != AppointmentPending && s != AppointmentConfirmed {
		return errs.NewValueIsInvalidErrorWithCause(
			"appointmentStatus is invalid",
			fmt.Errorf("%d is not a valid appointment status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the status.
func (s AppointmentStatus) String() string {
	if str, ok := getAppointmentStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// DockAppointment is a reserved unloading or loading window at the
// facility. At most one appointment exists per shipment; provisioning
// looks an existing one up before creating, so a retried booking never
// double-books the dock.
type DockAppointment struct {
	id          kernel.UUID
	shipmentID  kernel.UUID
	loadID      *kernel.UUID
	scheduledAt time.Time
	afterHours  bool
	status      AppointmentStatus

	isConstructed bool
}

// NewDockAppointment reserves a slot. Standard-hours slots are confirmed
// immediately; after-hours slots start Pending until the yard signs off.
func NewDockAppointment(
	id kernel.UUID,
	shipmentID kernel.UUID,
	scheduledAt time.Time,
	afterHours bool,
) (*DockAppointment, error) {
	a := &DockAppointment{isConstructed: true}

	if err := errors.Join(
		a.setID(id),
		a.setShipmentID(shipmentID),
	); err != nil {
		return nil, err
	}

	if scheduledAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("scheduledAt")
	}

	a.scheduledAt = scheduledAt
	a.afterHours = afterHours
	a.status = AppointmentConfirmed
	if afterHours {
		a.status = AppointmentPending
	}

	return a, nil
}

// RestoreDockAppointment reconstructs an appointment from persistence.
func RestoreDockAppointment(
	id kernel.UUID,
	shipmentID kernel.UUID,
	loadID *kernel.UUID,
	scheduledAt time.Time,
	afterHours bool,
	status AppointmentStatus,
) (*DockAppointment, error) {
	a, err := NewDockAppointment(id, shipmentID, scheduledAt, afterHours)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	if loadID != nil {
		if err = loadID.Validate(); err != nil {
			return nil, err
		}
		a.loadID = loadID
	}

	a.status = status
	return a, nil
}

// Validate ensures the appointment was built through a constructor.
func (a *DockAppointment) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrDockAppointmentIsNotConstructed
	}

	return nil
}

// ID returns the appointment's unique identifier.
func (a *DockAppointment) ID() kernel.UUID {
	return a.id
}

// ShipmentID returns the owning shipment.
func (a *DockAppointment) ShipmentID() kernel.UUID {
	return a.shipmentID
}

// LoadID returns the correlated trucking load, or nil until linked.
func (a *DockAppointment) LoadID() *kernel.UUID {
	return a.loadID
}

// ScheduledAt returns the reserved window start.
func (a *DockAppointment) ScheduledAt() time.Time {
	return a.scheduledAt
}

// AfterHours reports whether the slot is outside standard hours.
func (a *DockAppointment) AfterHours() bool {
	return a.afterHours
}

// Status returns the confirmation state.
func (a *DockAppointment) Status() AppointmentStatus {
	return a.status
}

// LinkToLoad records the trucking load this appointment serves.
func (a *DockAppointment) LinkToLoad(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return err
	}

	a.loadID = &loadID
	return nil
}

func (a *DockAppointment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *DockAppointment) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.shipmentID = id
	return nil
}
