package shipment

import (
	"errors"
	"time"

	"pipeyard/internal/core/domain/model/kernel"
	"pipeyard/internal/pkg/errs"
)

// AfterHoursSurcharge is the flat fee, in dollars, applied to bookings
// outside the facility's standard receiving hours.
const AfterHoursSurcharge = 450

// ErrShipmentIsNotConstructed is returned when a Shipment was not created
// through NewShipment or RestoreShipment.
var ErrShipmentIsNotConstructed = errors.New(
	"Shipment must be created via NewShipment or RestoreShipment",
)

// Shipment is the booking record grouping one or more trucks for a single
// delivery or pickup event. It is created before its trucking load so the
// load's sequence number can be allocated as late as possible, then
// cross-linked to the load once the load commits.
type Shipment struct {
	id                  kernel.UUID
	requestID           kernel.UUID
	loadID              *kernel.UUID
	truckingMethod      string
	contactName         string
	contactPhone        string
	estimatedQuantity   kernel.Quantity
	scheduledFor        time.Time
	afterHours          bool
	surchargeApplicable bool
	surchargeAmount     int

	isConstructed bool
}

// NewShipment creates a booking for the given window. After-hours windows
// carry the flat surcharge.
func NewShipment(
	id kernel.UUID,
	requestID kernel.UUID,
	truckingMethod string,
	contactName string,
	contactPhone string,
	estimatedQuantity kernel.Quantity,
	scheduledFor time.Time,
	afterHours bool,
) (*Shipment, error) {
	s := &Shipment{isConstructed: true}

	if err := errors.Join(
		s.setID(id),
		s.setRequestID(requestID),
		s.setTruckingMethod(truckingMethod),
	); err != nil {
		return nil, err
	}

	if scheduledFor.IsZero() {
		return nil, errs.NewValueIsRequiredError("scheduledFor")
	}

	s.contactName = contactName
	s.contactPhone = contactPhone
	s.estimatedQuantity = estimatedQuantity
	s.scheduledFor = scheduledFor
	s.afterHours = afterHours
	if afterHours {
		s.surchargeApplicable = true
		s.surchargeAmount = AfterHoursSurcharge
	}

	return s, nil
}

// RestoreShipment reconstructs a shipment from persistence, including its
// load link and surcharge state.
func RestoreShipment(
	id kernel.UUID,
	requestID kernel.UUID,
	loadID *kernel.UUID,
	truckingMethod string,
	contactName string,
	contactPhone string,
	estimatedQuantity kernel.Quantity,
	scheduledFor time.Time,
	afterHours bool,
	surchargeApplicable bool,
	surchargeAmount int,
) (*Shipment, error) {
	s, err := NewShipment(id, requestID, truckingMethod, contactName, contactPhone,
		estimatedQuantity, scheduledFor, afterHours)
	if err != nil {
		return nil, err
	}

	if loadID != nil {
		if err = loadID.Validate(); err != nil {
			return nil, err
		}
		s.loadID = loadID
	}

	s.surchargeApplicable = surchargeApplicable
	s.surchargeAmount = surchargeAmount
	return s, nil
}

// Validate ensures the shipment was built through a constructor.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}

	return nil
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// RequestID returns the owning storage request.
func (s *Shipment) RequestID() kernel.UUID {
	return s.requestID
}

// LoadID returns the correlated trucking load, or nil until linked.
func (s *Shipment) LoadID() *kernel.UUID {
	return s.loadID
}

// TruckingMethod returns how the pipe travels (e.g. "flatbed").
func (s *Shipment) TruckingMethod() string {
	return s.truckingMethod
}

// ContactName returns the on-site contact for this booking.
func (s *Shipment) ContactName() string {
	return s.contactName
}

// ContactPhone returns the on-site contact phone, possibly empty.
func (s *Shipment) ContactPhone() string {
	return s.contactPhone
}

// EstimatedQuantity returns the quantity booked for this event.
func (s *Shipment) EstimatedQuantity() kernel.Quantity {
	return s.estimatedQuantity
}

// ScheduledFor returns the booked window start.
func (s *Shipment) ScheduledFor() time.Time {
	return s.scheduledFor
}

// AfterHours reports whether the window falls outside standard hours.
func (s *Shipment) AfterHours() bool {
	return s.afterHours
}

// SurchargeApplicable reports whether the after-hours fee applies.
func (s *Shipment) SurchargeApplicable() bool {
	return s.surchargeApplicable
}

// SurchargeAmount returns the fee in dollars, zero when not applicable.
func (s *Shipment) SurchargeAmount() int {
	return s.surchargeAmount
}

// LinkToLoad records the trucking load this shipment belongs to.
func (s *Shipment) LinkToLoad(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return err
	}

	s.loadID = &loadID
	return nil
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setRequestID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.requestID = id
	return nil
}

func (s *Shipment) setTruckingMethod(method string) error {
	if method == "" {
		return errs.NewValueIsRequiredError("truckingMethod")
	}
	s.truckingMethod = method
	return nil
}
