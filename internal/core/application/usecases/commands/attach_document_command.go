package commands

import (
	"errors"
	"io"

	"pipeyard/internal/core/domain/model/kernel"
	"pipeyard/internal/core/domain/model/load"
	"pipeyard/internal/pkg/guard"
)

var (
	ErrAttachDocumentCommandIsNotConstructed = errors.New(
		"AttachDocumentCommand must be created via NewAttachDocumentCommand constructor",
	)
	ErrFileNameIsRequired = errors.New("file name is required")
	ErrFileIsRequired     = errors.New("file content is required")
)

// AttachDocumentCommand represents an upload of paperwork for a
// request. The load reference is optional: documents uploaded before
// the load is booked are attached later by the booking saga.
type AttachDocumentCommand struct { //nolint:recvcheck //using for validation
	requestID   kernel.UUID
	loadID      *kernel.UUID
	fileName    string
	kind        load.DocumentKind
	content     io.Reader
	size        int64
	contentType string

	guard guard.ConstructorGuard
}

// NewAttachDocumentCommand creates a command to store a document and
// record it against the request.
func NewAttachDocumentCommand(
	requestID kernel.UUID,
	loadID *kernel.UUID,
	fileName string,
	kind load.DocumentKind,
	content io.Reader,
	size int64,
	contentType string,
) (AttachDocumentCommand, error) {
	cmd := AttachDocumentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setFileName(fileName),
		cmd.setKind(kind),
		cmd.setContent(content),
	); err != nil {
		return AttachDocumentCommand{}, err
	}

	cmd.loadID = loadID
	cmd.size = size
	cmd.contentType = contentType
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AttachDocumentCommand) Validate() error {
	return c.guard.Validate(ErrAttachDocumentCommandIsNotConstructed)
}

// RequestID returns the identifier of the owning request.
func (c AttachDocumentCommand) RequestID() kernel.UUID {
	return c.requestID
}

// LoadID returns the identifier of the load the document belongs to,
// or nil when not yet known.
func (c AttachDocumentCommand) LoadID() *kernel.UUID {
	return c.loadID
}

// FileName returns the uploaded file's name.
func (c AttachDocumentCommand) FileName() string {
	return c.fileName
}

// Kind returns the document kind.
func (c AttachDocumentCommand) Kind() load.DocumentKind {
	return c.kind
}

// Content returns the file content reader.
func (c AttachDocumentCommand) Content() io.Reader {
	return c.content
}

// Size returns the file size in bytes.
func (c AttachDocumentCommand) Size() int64 {
	return c.size
}

// ContentType returns the file's MIME type.
func (c AttachDocumentCommand) ContentType() string {
	return c.contentType
}

func (c *AttachDocumentCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *AttachDocumentCommand) setFileName(fileName string) error {
	if fileName == "" {
		return ErrFileNameIsRequired
	}

	c.fileName = fileName
	return nil
}

func (c *AttachDocumentCommand) setKind(kind load.DocumentKind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}

func (c *AttachDocumentCommand) setContent(content io.Reader) error {
	if content == nil {
		return ErrFileIsRequired
	}

	c.content = content
	return nil
}
