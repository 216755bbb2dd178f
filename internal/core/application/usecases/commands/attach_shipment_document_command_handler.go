package commands

import (
	"context"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

// AttachShipmentDocumentCommandHandler stores the bytes first and then the
// reference. A failed commit leaves an unreferenced blob behind, never a
// reference without a blob.
type AttachShipmentDocumentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	blobs      ports.BlobStore
	gateway    services.AccessGateway
}

func NewAttachShipmentDocumentCommandHandler(
	uowFactory ShipmentUoWFactory,
	blobs ports.BlobStore,
) AttachShipmentDocumentCommandHandler {
	return AttachShipmentDocumentCommandHandler{
		uowFactory: uowFactory,
		blobs:      blobs,
		gateway:    services.NewAccessGateway(),
	}
}

func (h AttachShipmentDocumentCommandHandler) Handle(
	ctx context.Context,
	cmd AttachShipmentDocumentCommand,
) (shipment.Document, error) {
	if err := cmd.Validate(); err != nil {
		return shipment.Document{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return shipment.Document{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ShipmentRepository()
	s, err := repo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return shipment.Document{}, err
	}

	if err = h.gateway.CanReportIssue(cmd.Principal(), s); err != nil {
		return shipment.Document{}, err
	}

	docID := kernel.NewUUID()
	url, err := h.blobs.Put(ctx, ports.BlobObject{
		Key:         fmt.Sprintf("shipments/%s/%s-%s", s.ID(), docID, cmd.Filename()),
		ContentType: cmd.ContentType(),
		Data:        cmd.Data(),
	})
	if err != nil {
		return shipment.Document{}, fmt.Errorf("store document: %w", err)
	}

	doc := shipment.Document{
		ID:          docID,
		Kind:        cmd.Kind(),
		URL:         url,
		Filename:    cmd.Filename(),
		ContentType: cmd.ContentType(),
		SizeBytes:   int64(len(cmd.Data())),
		UploadedBy:  cmd.Principal().Actor(),
		UploadedAt:  time.Now(),
	}
	if err = s.AttachDocument(doc); err != nil {
		return shipment.Document{}, err
	}

	if err = repo.Update(ctx, s); err != nil {
		return shipment.Document{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return shipment.Document{}, err
	}

	docs := s.Documents()
	return docs[len(docs)-1], nil
}
