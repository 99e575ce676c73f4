package request

import (
	"errors"

	"pipeyard/internal/core/domain/model/kernel"
	"pipeyard/internal/pkg/errs"
)

var (
	// ErrStorageRequestIsNotConstructed is returned when a StorageRequest was
	// not created through NewStorageRequest or RestoreStorageRequest.
	ErrStorageRequestIsNotConstructed = errors.New(
		"StorageRequest must be created via NewStorageRequest or RestoreStorageRequest",
	)
)

// StorageRequest is the aggregate root for one customer storage project.
// It identifies the customer, carries the customer's quantity estimate
// (used as the planned-total fallback when no load carries a planned
// figure) and holds the review status.
//
// Trucking loads reference the request by ID but are their own aggregate;
// the request never embeds them.
type StorageRequest struct {
	id                kernel.UUID
	companyName       string
	contactName       string
	contactPhone      string
	estimatedQuantity kernel.Quantity
	status            Status

	isConstructed bool
}

// NewStorageRequest creates a submitted request in Pending status.
// Company and contact names are required; the estimate may be zero when
// the customer has not sized the project yet.
func NewStorageRequest(
	id kernel.UUID,
	companyName string,
	contactName string,
	contactPhone string,
	estimatedQuantity kernel.Quantity,
) (*StorageRequest, error) {
	req := &StorageRequest{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		req.setID(id),
		req.setCompanyName(companyName),
		req.setContactName(contactName),
	); err != nil {
		return nil, err
	}

	req.contactPhone = contactPhone
	req.estimatedQuantity = estimatedQuantity
	return req, nil
}

// RestoreStorageRequest reconstructs a request from persistence with an
// explicit status. The status must be valid.
func RestoreStorageRequest(
	id kernel.UUID,
	companyName string,
	contactName string,
	contactPhone string,
	estimatedQuantity kernel.Quantity,
	status Status,
) (*StorageRequest, error) {
	req, err := NewStorageRequest(id, companyName, contactName, contactPhone, estimatedQuantity)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	req.status = status
	return req, nil
}

// Validate ensures the request was built through a constructor.
func (r *StorageRequest) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrStorageRequestIsNotConstructed
	}

	return nil
}

// IsEqual compares two requests by identifier.
func (r *StorageRequest) IsEqual(other *StorageRequest) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the request's unique identifier.
func (r *StorageRequest) ID() kernel.UUID {
	return r.id
}

// CompanyName returns the customer company name.
func (r *StorageRequest) CompanyName() string {
	return r.companyName
}

// ContactName returns the customer contact person.
func (r *StorageRequest) ContactName() string {
	return r.contactName
}

// ContactPhone returns the customer contact phone, possibly empty.
func (r *StorageRequest) ContactPhone() string {
	return r.contactPhone
}

// EstimatedQuantity returns the customer's project-level estimate.
func (r *StorageRequest) EstimatedQuantity() kernel.Quantity {
	return r.estimatedQuantity
}

// Status returns the current review status.
func (r *StorageRequest) Status() Status {
	return r.status
}

// Approve marks the request as cleared for scheduling.
func (r *StorageRequest) Approve() error {
	newStatus, err := r.status.Approve()
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

// Reject declines the request. Terminal.
func (r *StorageRequest) Reject() error {
	newStatus, err := r.status.Reject()
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

// Complete marks the project as fulfilled. Terminal.
func (r *StorageRequest) Complete() error {
	newStatus, err := r.status.Complete()
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

func (r *StorageRequest) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *StorageRequest) setCompanyName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("companyName")
	}
	r.companyName = name
	return nil
}

func (r *StorageRequest) setContactName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("contactName")
	}
	r.contactName = name
	return nil
}
