// Package client models the shop's customers and the identity used to
// deduplicate them at intake.
package client

import (
	"errors"
	"fmt"
	"time"

	"repairshop/internal/pkg/errs"
	"repairshop/internal/pkg/textnorm"
)

var ErrClientIsNotConstructed = errors.New("Client must be created via NewClient or RestoreClient")

// Identity is the natural key of a client: name plus optional phone.
// Two identities are equal when names match and phones are both absent or
// both equal.
type Identity struct {
	name  string
	phone *string
}

// NewIdentity normalizes raw counter input. ok is false when there is no
// usable name, which means "no client identity" rather than an error.
func NewIdentity(name, phone string) (Identity, bool) {
	n := textnorm.Sentence(name)
	if n == "" {
		return Identity{}, false
	}
	return Identity{name: n, phone: textnorm.Optional(textnorm.Digits(phone))}, true
}

func (i Identity) Name() string { return i.name }

func (i Identity) Phone() *string { return i.phone }

// Key is a stable string form of the identity, used as a cache key.
func (i Identity) Key() string {
	if i.phone == nil {
		return i.name + "|"
	}
	return i.name + "|" + *i.phone
}

// Equal compares normalized keys, so a missing phone equals a missing phone.
func (i Identity) Equal(other Identity) bool {
	return i.Key() == other.Key()
}

// Details are the editable attributes of a client.
type Details struct {
	Name          string
	Phone         string
	Address       string
	Locality      string
	Province      string
	PostalCode    string
	Email         string
	TaxID         string
	Contact       string
	Notes         string
	BusinessLine  string
	UnderWarranty bool
	UnderContract bool
}

func (d Details) normalize() (Details, error) {
	d.Name = textnorm.Sentence(d.Name)
	if d.Name == "" {
		return Details{}, errs.NewValueIsRequiredError("name")
	}
	d.Phone = textnorm.Digits(d.Phone)
	d.TaxID = textnorm.Digits(d.TaxID)
	d.Address = textnorm.Collapse(d.Address)
	d.Locality = textnorm.Collapse(d.Locality)
	d.Province = textnorm.Collapse(d.Province)
	d.PostalCode = textnorm.Collapse(d.PostalCode)
	d.Email = textnorm.Collapse(d.Email)
	d.Contact = textnorm.Collapse(d.Contact)
	d.Notes = textnorm.Sentence(d.Notes)
	d.BusinessLine = textnorm.Collapse(d.BusinessLine)
	return d, nil
}

// Client is a customer record. It is created on first resolution of an
// unseen identity and only changed by an explicit edit.
type Client struct {
	id        int64
	details   Details
	createdAt time.Time

	isConstructed bool
}

// NewClient builds an unsaved client; the store assigns the id.
func NewClient(details Details, now time.Time) (*Client, error) {
	normalized, err := details.normalize()
	if err != nil {
		return nil, err
	}
	return &Client{
		details:       normalized,
		createdAt:     now,
		isConstructed: true,
	}, nil
}

// NewClientFromIdentity builds the minimal client created by resolution.
func NewClientFromIdentity(identity Identity, now time.Time) (*Client, error) {
	d := Details{Name: identity.name}
	if identity.phone != nil {
		d.Phone = *identity.phone
	}
	return NewClient(d, now)
}

// RestoreClient rebuilds a persisted client without re-normalizing it.
func RestoreClient(id int64, details Details, createdAt time.Time) (*Client, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not positive", id))
	}
	return &Client{
		id:            id,
		details:       details,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the client was built through NewClient or RestoreClient.
func (c *Client) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrClientIsNotConstructed
	}
	return nil
}

func (c *Client) ID() int64 { return c.id }

func (c *Client) Details() Details { return c.details }

func (c *Client) Name() string { return c.details.Name }

func (c *Client) Phone() *string { return textnorm.Optional(c.details.Phone) }

func (c *Client) TaxID() *string { return textnorm.Optional(c.details.TaxID) }

func (c *Client) CreatedAt() time.Time { return c.createdAt }

// Identity returns the natural key derived from the current details.
func (c *Client) Identity() Identity {
	return Identity{name: c.details.Name, phone: c.Phone()}
}

// AssignID records the id given by the store after insert.
func (c *Client) AssignID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not positive", id))
	}
	if c.id != 0 && c.id != id {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("client already has id %d", c.id))
	}
	c.id = id
	return nil
}

// Edit replaces the editable attributes.
func (c *Client) Edit(details Details) error {
	normalized, err := details.normalize()
	if err != nil {
		return err
	}
	c.details = normalized
	return nil
}
