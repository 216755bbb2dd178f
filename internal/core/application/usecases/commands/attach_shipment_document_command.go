package commands

import (
	"errors"
	"path"
	"strings"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// MaxDocumentBytes bounds a single uploaded document or photo.
const MaxDocumentBytes = 10 << 20

var ErrAttachShipmentDocumentCommandIsNotConstructed = errors.New(
	"AttachShipmentDocumentCommand must be created via NewAttachShipmentDocumentCommand constructor",
)

// AttachShipmentDocumentCommand uploads a file to the blob store and records
// a reference to it on the shipment.
type AttachShipmentDocumentCommand struct { //nolint:recvcheck //using for validation
	principal   identity.Principal
	shipmentID  kernel.UUID
	kind        shipment.DocumentKind
	filename    string
	contentType string
	data        []byte

	guard guard.ConstructorGuard
}

func NewAttachShipmentDocumentCommand(
	principal identity.Principal,
	shipmentID kernel.UUID,
	kind shipment.DocumentKind,
	filename string,
	contentType string,
	data []byte,
) (AttachShipmentDocumentCommand, error) {
	cmd := AttachShipmentDocumentCommand{
		contentType: strings.TrimSpace(contentType),
		guard:       guard.NewConstructorGuard(),
	}
	if cmd.contentType == "" {
		cmd.contentType = "application/octet-stream"
	}

	if err := errors.Join(
		cmd.setPrincipal(principal),
		cmd.setShipmentID(shipmentID),
		cmd.setKind(kind),
		cmd.setFilename(filename),
		cmd.setData(data),
	); err != nil {
		return AttachShipmentDocumentCommand{}, err
	}

	return cmd, nil
}

func (c AttachShipmentDocumentCommand) Validate() error {
	return c.guard.Validate(ErrAttachShipmentDocumentCommandIsNotConstructed)
}

func (c AttachShipmentDocumentCommand) Principal() identity.Principal { return c.principal }
func (c AttachShipmentDocumentCommand) ShipmentID() kernel.UUID       { return c.shipmentID }
func (c AttachShipmentDocumentCommand) Kind() shipment.DocumentKind   { return c.kind }
func (c AttachShipmentDocumentCommand) Filename() string              { return c.filename }
func (c AttachShipmentDocumentCommand) ContentType() string           { return c.contentType }
func (c AttachShipmentDocumentCommand) Data() []byte                  { return c.data }
func (c AttachShipmentDocumentCommand) ActivityTarget() string        { return c.shipmentID.String() }

func (c *AttachShipmentDocumentCommand) setPrincipal(p identity.Principal) error {
	if err := validatePrincipal(p); err != nil {
		return err
	}
	c.principal = p
	return nil
}

func (c *AttachShipmentDocumentCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shipmentID = id
	return nil
}

func (c *AttachShipmentDocumentCommand) setKind(kind shipment.DocumentKind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	c.kind = kind
	return nil
}

// Only the base name is kept so a filename can never escape its key prefix.
func (c *AttachShipmentDocumentCommand) setFilename(filename string) error {
	name := path.Base(strings.ReplaceAll(strings.TrimSpace(filename), "\\", "/"))
	if name == "" || name == "." || name == "/" || name == ".." {
		return errs.NewValueIsRequiredError("filename")
	}
	c.filename = name
	return nil
}

func (c *AttachShipmentDocumentCommand) setData(data []byte) error {
	if len(data) == 0 {
		return errs.NewValueIsRequiredError("file")
	}
	if len(data) > MaxDocumentBytes {
		return errs.NewValueIsOutOfRangeError("file", len(data), 1, MaxDocumentBytes)
	}
	c.data = data
	return nil
}
