package commands

import (
	"errors"

	"ordertracking/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrProductNameIsRequired     = errors.New("product name is required")
	ErrCustomerNameIsRequired    = errors.New("customer name is required")
	ErrDeliveryAddressIsRequired = errors.New("delivery address is required")
)

// CreateOrderCommand represents a request to register a new order.
// Encapsulates the three required free-form fields; identifier, status,
// and history are assigned by the handler.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("Widget", "Alice", "1 Main St")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	productName     string
	customerName    string
	deliveryAddress string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that none of the three fields is empty.
func NewCreateOrderCommand(productName, customerName, deliveryAddress string) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductName(productName),
		cmd.setCustomerName(customerName),
		cmd.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// ProductName returns the ordered product's name.
func (c CreateOrderCommand) ProductName() string {
	return c.productName
}

// CustomerName returns the customer's name.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// DeliveryAddress returns the delivery destination.
func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

func (c *CreateOrderCommand) setProductName(productName string) error {
	if productName == "" {
		return ErrProductNameIsRequired
	}

	c.productName = productName
	return nil
}

func (c *CreateOrderCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return ErrCustomerNameIsRequired
	}

	c.customerName = customerName
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return ErrDeliveryAddressIsRequired
	}

	c.deliveryAddress = deliveryAddress
	return nil
}
