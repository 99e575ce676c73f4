package load

import (
	"errors"
	"fmt"

	"pipeyard/internal/core/domain/model/kernel"
	"pipeyard/internal/pkg/errs"
)

// ErrDocumentIsNotConstructed is returned when a Document was not created
// through NewDocument or RestoreDocument.
var ErrDocumentIsNotConstructed = errors.New(
	"Document must be created via NewDocument or RestoreDocument",
)

// DocumentKind classifies an uploaded trucking document.
type DocumentKind int

const (
	// DocumentKindUnknown represents an invalid or undefined kind.
	DocumentKindUnknown DocumentKind = iota

	// Manifest is the carrier's list of pipe on the truck. Manifests are
	// the input to quantity extraction.
	Manifest

	// ProofOfDelivery is the signed receipt for a completed movement.
	ProofOfDelivery
)

func getDocumentKindStrings() map[DocumentKind]string {
	return map[DocumentKind]string{
		DocumentKindUnknown: "Unknown",
		Manifest:            "Manifest",
		ProofOfDelivery:     "ProofOfDelivery",
	}
}

// Validate checks if the DocumentKind value is valid.
func (k DocumentKind) Validate() error {
	if k != Manifest && k != ProofOfDelivery {
		return errs.NewValueIsInvalidErrorWithCause("documentKind is invalid", fmt.Errorf("%d is not a valid kind", k))
	}
	return nil
}

// String returns the human-readable name of the kind.
func (k DocumentKind) String() string {
	if str, ok := getDocumentKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}

// Document is an uploaded file attached to a storage request, and once a
// load exists, to that load. The path points into the object store and is
// the stable reference handed out by the document storage adapter.
//
// A document becomes "parsed" when manifest extraction produced a
// quantity payload for it; unparsed manifests hold the project workflow
// in its document-processing state.
type Document struct {
	id             kernel.UUID
	requestID      kernel.UUID
	loadID         *kernel.UUID
	path           string
	kind           DocumentKind
	parsedQuantity *kernel.Quantity

	isConstructed bool
}

// NewDocument creates a document registered against a request. The load
// reference is optional; documents uploaded before a load exists attach
// to it later.
func NewDocument(
	id kernel.UUID,
	requestID kernel.UUID,
	loadID *kernel.UUID,
	path string,
	kind DocumentKind,
) (*Document, error) {
	doc := &Document{isConstructed: true}

	if err := errors.Join(
		doc.setID(id),
		doc.setRequestID(requestID),
		doc.setPath(path),
		doc.setKind(kind),
	); err != nil {
		return nil, err
	}

	if loadID != nil {
		if err := loadID.Validate(); err != nil {
			return nil, err
		}
		doc.loadID = loadID
	}

	return doc, nil
}

// RestoreDocument reconstructs a document from persistence, including any
// parsed quantity payload.
func RestoreDocument(
	id kernel.UUID,
	requestID kernel.UUID,
	loadID *kernel.UUID,
	path string,
	kind DocumentKind,
	parsedQuantity *kernel.Quantity,
) (*Document, error) {
	doc, err := NewDocument(id, requestID, loadID, path, kind)
	if err != nil {
		return nil, err
	}

	doc.parsedQuantity = parsedQuantity
	return doc, nil
}

// Validate ensures the document was built through a constructor.
func (d *Document) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDocumentIsNotConstructed
	}

	return nil
}

// ID returns the document's unique identifier.
func (d *Document) ID() kernel.UUID {
	return d.id
}

// RequestID returns the owning storage request.
func (d *Document) RequestID() kernel.UUID {
	return d.requestID
}

// LoadID returns the attached load, or nil if not yet attached.
func (d *Document) LoadID() *kernel.UUID {
	return d.loadID
}

// Path returns the stable object-store path.
func (d *Document) Path() string {
	return d.path
}

// Kind returns the document classification.
func (d *Document) Kind() DocumentKind {
	return d.kind
}

// ParsedQuantity returns the extracted quantity payload, or nil when
// extraction has not succeeded yet.
func (d *Document) ParsedQuantity() *kernel.Quantity {
	return d.parsedQuantity
}

// HasParsedPayload reports whether extraction produced a payload.
func (d *Document) HasParsedPayload() bool {
	return d.parsedQuantity != nil
}

// AttachToLoad links the document to a trucking load.
func (d *Document) AttachToLoad(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return err
	}

	d.loadID = &loadID
	return nil
}

// SetParsedQuantity records the payload produced by manifest extraction.
func (d *Document) SetParsedQuantity(q kernel.Quantity) {
	d.parsedQuantity = &q
}

func (d *Document) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Document) setRequestID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.requestID = id
	return nil
}

func (d *Document) setPath(path string) error {
	if path == "" {
		return errs.NewValueIsRequiredError("path")
	}
	d.path = path
	return nil
}

func (d *Document) setKind(kind DocumentKind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	d.kind = kind
	return nil
}
