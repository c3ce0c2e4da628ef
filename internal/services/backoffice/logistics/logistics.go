// Package logistics covers freight shipments (Blink) and exhibition events
// (Big) booked for registry customers.
package logistics

import (
	"fmt"
	"strings"
	"time"

	"github.com/tppb-bridge/backoffice/internal/platform/calendar"
	apperrors "github.com/tppb-bridge/backoffice/internal/platform/errors"
	"github.com/tppb-bridge/backoffice/internal/platform/id"
	"github.com/tppb-bridge/backoffice/internal/platform/money"
)

// ShipmentStatus tracks delivery progress.
type ShipmentStatus string

const (
	ShipmentPending   ShipmentStatus = "pending"
	ShipmentInTransit ShipmentStatus = "in-transit"
	ShipmentDelivered ShipmentStatus = "delivered"
	ShipmentCompleted ShipmentStatus = "completed"
)

var shipmentStatuses = []ShipmentStatus{ShipmentPending, ShipmentInTransit, ShipmentDelivered, ShipmentCompleted}

// Shipment is a freight job. Customer and vendor names are copied from the
// registry when saved.
type Shipment struct {
	ID           string         `json:"id"`
	Origin       string         `json:"origin"`
	Destination  string         `json:"destination"`
	CustomerID   string         `json:"customer_id"`
	CustomerName string         `json:"customer_name"`
	VendorID     string         `json:"vendor_id"`
	VendorName   string         `json:"vendor_name"`
	Status       ShipmentStatus `json:"status"`
	Cost         money.Amount   `json:"cost"`
	Notes        string         `json:"notes,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// ShipmentInput carries editable shipment fields.
type ShipmentInput struct {
	Origin      string         `json:"origin"`
	Destination string         `json:"destination"`
	CustomerID  string         `json:"customer_id"`
	VendorID    string         `json:"vendor_id"`
	Status      ShipmentStatus `json:"status"`
	Cost        money.Amount   `json:"cost"`
	Notes       string         `json:"notes"`
}

// Names are registry display names resolved for the referenced ids.
type Names struct {
	Customer string
	Vendor   string
}

// NormalizeShipmentInput validates input.
func NormalizeShipmentInput(input ShipmentInput) (ShipmentInput, error) {
	input.Origin = strings.TrimSpace(input.Origin)
	input.Destination = strings.TrimSpace(input.Destination)
	if input.Origin == "" || input.Destination == "" {
		return ShipmentInput{}, apperrors.Invalid("origin", "origin and destination are required")
	}
	input.CustomerID = strings.TrimSpace(input.CustomerID)
	input.VendorID = strings.TrimSpace(input.VendorID)
	input.Notes = strings.TrimSpace(input.Notes)
	if input.Cost.IsNegative() {
		return ShipmentInput{}, apperrors.Invalid("cost", "cost must not be negative")
	}
	status := ShipmentStatus(strings.ToLower(strings.TrimSpace(string(input.Status))))
	if status == "" {
		status = ShipmentPending
	}
	for _, known := range shipmentStatuses {
		if status == known {
			input.Status = status
			return input, nil
		}
	}
	return ShipmentInput{}, apperrors.Invalid("status", fmt.Sprintf("status %q is invalid", input.Status))
}

// CreateShipment builds a new shipment.
func CreateShipment(input ShipmentInput, names Names, now func() time.Time, idGenerator func() (string, error)) (Shipment, error) {
	now, idGenerator = defaults(now, idGenerator)
	n, err := NormalizeShipmentInput(input)
	if err != nil {
		return Shipment{}, err
	}
	shipmentID, err := idGenerator()
	if err != nil {
		return Shipment{}, fmt.Errorf("generate shipment id: %w", err)
	}
	at := now().UTC()
	s := Shipment{ID: shipmentID, CreatedAt: at}
	applyShipment(&s, n, names, at)
	return s, nil
}

// UpdateShipment applies input to an existing shipment.
func UpdateShipment(existing Shipment, input ShipmentInput, names Names, now func() time.Time) (Shipment, error) {
	now, _ = defaults(now, nil)
	n, err := NormalizeShipmentInput(input)
	if err != nil {
		return Shipment{}, err
	}
	applyShipment(&existing, n, names, now().UTC())
	return existing, nil
}

func applyShipment(s *Shipment, n ShipmentInput, names Names, at time.Time) {
	s.Origin = n.Origin
	s.Destination = n.Destination
	s.CustomerID = n.CustomerID
	s.CustomerName = names.Customer
	s.VendorID = n.VendorID
	s.VendorName = names.Vendor
	s.Status = n.Status
	s.Cost = n.Cost
	s.Notes = n.Notes
	s.UpdatedAt = at
}

// EventStatus tracks event preparation.
type EventStatus string

const (
	EventPlanning  EventStatus = "planning"
	EventConfirmed EventStatus = "confirmed"
	EventOngoing   EventStatus = "ongoing"
	EventCompleted EventStatus = "completed"
)

var eventStatuses = []EventStatus{EventPlanning, EventConfirmed, EventOngoing, EventCompleted}

// Event is an exhibition or event booking.
type Event struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Date         string       `json:"date"`
	Location     string       `json:"location"`
	CustomerID   string       `json:"customer_id"`
	CustomerName string       `json:"customer_name"`
	Budget       money.Amount `json:"budget"`
	Status       EventStatus  `json:"status"`
	Notes        string       `json:"notes,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// EventInput carries editable event fields.
type EventInput struct {
	Name       string       `json:"name"`
	Date       string       `json:"date"`
	Location   string       `json:"location"`
	CustomerID string       `json:"customer_id"`
	Budget     money.Amount `json:"budget"`
	Status     EventStatus  `json:"status"`
	Notes      string       `json:"notes"`
}

// NormalizeEventInput validates input.
func NormalizeEventInput(input EventInput, now time.Time) (EventInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return EventInput{}, apperrors.Invalid("name", "event name is required")
	}
	date, err := calendar.NormalizeDate(input.Date, now)
	if err != nil {
		return EventInput{}, apperrors.Invalid("date", err.Error())
	}
	input.Date = date
	input.Location = strings.TrimSpace(input.Location)
	input.CustomerID = strings.TrimSpace(input.CustomerID)
	input.Notes = strings.TrimSpace(input.Notes)
	if input.Budget.IsNegative() {
		return EventInput{}, apperrors.Invalid("budget", "budget must not be negative")
	}
	status := EventStatus(strings.ToLower(strings.TrimSpace(string(input.Status))))
	if status == "" {
		status = EventPlanning
	}
	for _, known := range eventStatuses {
		if status == known {
			input.Status = status
			return input, nil
		}
	}
	return EventInput{}, apperrors.Invalid("status", fmt.Sprintf("status %q is invalid", input.Status))
}

// CreateEvent builds a new event.
func CreateEvent(input EventInput, customerName string, now func() time.Time, idGenerator func() (string, error)) (Event, error) {
	now, idGenerator = defaults(now, idGenerator)
	at := now().UTC()
	n, err := NormalizeEventInput(input, at)
	if err != nil {
		return Event{}, err
	}
	eventID, err := idGenerator()
	if err != nil {
		return Event{}, fmt.Errorf("generate event id: %w", err)
	}
	e := Event{ID: eventID, CreatedAt: at}
	applyEvent(&e, n, customerName, at)
	return e, nil
}

// UpdateEvent applies input to an existing event.
func UpdateEvent(existing Event, input EventInput, customerName string, now func() time.Time) (Event, error) {
	now, _ = defaults(now, nil)
	at := now().UTC()
	n, err := NormalizeEventInput(input, at)
	if err != nil {
		return Event{}, err
	}
	applyEvent(&existing, n, customerName, at)
	return existing, nil
}

func applyEvent(e *Event, n EventInput, customerName string, at time.Time) {
	e.Name = n.Name
	e.Date = n.Date
	e.Location = n.Location
	e.CustomerID = n.CustomerID
	e.CustomerName = customerName
	e.Budget = n.Budget
	e.Status = n.Status
	e.Notes = n.Notes
	e.UpdatedAt = at
}

func defaults(now func() time.Time, idGenerator func() (string, error)) (func() time.Time, func() (string, error)) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}
	return now, idGenerator
}
