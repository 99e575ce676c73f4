package commands

import (
	"errors"

	"pipeyard/internal/core/domain/model/kernel"
	"pipeyard/internal/pkg/guard"
)

var (
	ErrCreateRequestCommandIsNotConstructed = errors.New(
		"CreateRequestCommand must be created via NewCreateRequestCommand constructor",
	)
	ErrCompanyNameIsRequired = errors.New("company name is required")
	ErrContactNameIsRequired = errors.New("contact name is required")
)

// CreateRequestCommand represents a customer's request to store pipe at
// the facility. Encapsulates contact details and the estimated quantity.
type CreateRequestCommand struct { //nolint:recvcheck //using for validation
	requestID         kernel.UUID
	companyName       string
	contactName       string
	contactPhone      string
	estimatedQuantity kernel.Quantity

	guard guard.ConstructorGuard
}

// NewCreateRequestCommand creates a command to register a new storage
// request. Validates that the ID is valid and the company and contact
// names are not empty.
func NewCreateRequestCommand(
	requestID kernel.UUID,
	companyName string,
	contactName string,
	contactPhone string,
	estimatedQuantity kernel.Quantity,
) (CreateRequestCommand, error) {
	cmd := CreateRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setCompanyName(companyName),
		cmd.setContactName(contactName),
	); err != nil {
		return CreateRequestCommand{}, err
	}

	cmd.contactPhone = contactPhone
	cmd.estimatedQuantity = estimatedQuantity
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreateRequestCommandIsNotConstructed)
}

// RequestID returns the unique identifier for the request.
func (c CreateRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

// CompanyName returns the customer's company name.
func (c CreateRequestCommand) CompanyName() string {
	return c.companyName
}

// ContactName returns the customer contact's name.
func (c CreateRequestCommand) ContactName() string {
	return c.contactName
}

// ContactPhone returns the customer contact's phone number.
func (c CreateRequestCommand) ContactPhone() string {
	return c.contactPhone
}

// EstimatedQuantity returns the estimated pipe quantity to store.
func (c CreateRequestCommand) EstimatedQuantity() kernel.Quantity {
	return c.estimatedQuantity
}

func (c *CreateRequestCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *CreateRequestCommand) setCompanyName(companyName string) error {
	if companyName == "" {
		return ErrCompanyNameIsRequired
	}

	c.companyName = companyName
	return nil
}

func (c *CreateRequestCommand) setContactName(contactName string) error {
	if contactName == "" {
		return ErrContactNameIsRequired
	}

	c.contactName = contactName
	return nil
}
