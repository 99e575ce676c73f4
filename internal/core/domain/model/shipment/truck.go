package shipment

import (
	"errors"

	"pipeyard/internal/core/domain/model/kernel"
	"pipeyard/internal/pkg/errs"
)

// ErrShipmentTruckIsNotConstructed is returned when a ShipmentTruck was
// not created through NewShipmentTruck or RestoreShipmentTruck.
var ErrShipmentTruckIsNotConstructed = errors.New(
	"ShipmentTruck must be created via NewShipmentTruck or RestoreShipmentTruck",
)

// ShipmentTruck is a single truck within a shipment. It is non-critical
// metadata: provisioning continues even if the truck record cannot be
// written.
type ShipmentTruck struct {
	id          kernel.UUID
	shipmentID  kernel.UUID
	loadID      *kernel.UUID
	carrierName string
	truckNumber string

	isConstructed bool
}

// NewShipmentTruck creates a truck entry under a shipment.
func NewShipmentTruck(
	id kernel.UUID,
	shipmentID kernel.UUID,
	carrierName string,
	truckNumber string,
) (*ShipmentTruck, error) {
	t := &ShipmentTruck{isConstructed: true}

	if err := errors.Join(
		t.setID(id),
		t.setShipmentID(shipmentID),
		t.setCarrierName(carrierName),
	); err != nil {
		return nil, err
	}

	t.truckNumber = truckNumber
	return t, nil
}

// RestoreShipmentTruck reconstructs a truck from persistence.
func RestoreShipmentTruck(
	id kernel.UUID,
	shipmentID kernel.UUID,
	loadID *kernel.UUID,
	carrierName string,
	truckNumber string,
) (*ShipmentTruck, error) {
	t, err := NewShipmentTruck(id, shipmentID, carrierName, truckNumber)
	if err != nil {
		return nil, err
	}

	if loadID != nil {
		if err = loadID.Validate(); err != nil {
			return nil, err
		}
		t.loadID = loadID
	}

	return t, nil
}

// Validate ensures the truck was built through a constructor.
func (t *ShipmentTruck) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrShipmentTruckIsNotConstructed
	}

	return nil
}

// ID returns the truck's unique identifier.
func (t *ShipmentTruck) ID() kernel.UUID {
	return t.id
}

// ShipmentID returns the owning shipment.
func (t *ShipmentTruck) ShipmentID() kernel.UUID {
	return t.shipmentID
}

// LoadID returns the correlated trucking load, or nil until linked.
func (t *ShipmentTruck) LoadID() *kernel.UUID {
	return t.loadID
}

// CarrierName returns the trucking company.
func (t *ShipmentTruck) CarrierName() string {
	return t.carrierName
}

// TruckNumber returns the carrier's unit number, possibly empty.
func (t *ShipmentTruck) TruckNumber() string {
	return t.truckNumber
}

// LinkToLoad records the trucking load this truck hauls.
func (t *ShipmentTruck) LinkToLoad(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return err
	}

	t.loadID = &loadID
	return nil
}

func (t *ShipmentTruck) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *ShipmentTruck) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.shipmentID = id
	return nil
}

func (t *ShipmentTruck) setCarrierName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("carrierName")
	}
	t.carrierName = name
	return nil
}
