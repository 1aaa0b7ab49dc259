package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"grocerpos/internal/domain"
)

// ModalState tracks the edit/add dialog of the product screen.
type ModalState int

const (
	ModalClosed ModalState = iota
	ModalEditing
	ModalCreating
)

type editorClient interface {
	CreateProduct(ctx context.Context, p domain.Product) error
	UpdateProduct(ctx context.Context, p domain.Product) error
	DeleteProduct(ctx context.Context, id string) error
}

// Draft carries the editable fields of the modal.
type Draft struct {
	Name  string
	Image string
	Price float64
	Stock float64
}

// Editor holds the product management screen state. Every successful mutation
// is followed by a full catalog refetch; the modal only closes on explicit
// cancel or on success of the corresponding call.
type Editor struct {
	client  editorClient
	catalog catalogView
	logger  *log.Logger

	state   ModalState
	editID  string
	draft   Draft
	notices []string
}

func NewEditor(client editorClient, catalog catalogView, logger *log.Logger) *Editor {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Editor{client: client, catalog: catalog, logger: logger}
}

func (e *Editor) LoadProducts(ctx context.Context) {
	if err := e.catalog.Refresh(ctx); err != nil {
		e.notify(err)
	}
}

func (e *Editor) Products() []domain.Product {
	return e.catalog.Products()
}

func (e *Editor) State() ModalState {
	return e.state
}

func (e *Editor) Draft() Draft {
	return e.draft
}

// BeginEdit opens the modal pre-filled with an existing product.
func (e *Editor) BeginEdit(id string) error {
	p, ok := e.catalog.Find(id)
	if !ok {
		return fmt.Errorf("edit product: %w", domain.ErrNotFound)
	}
	e.state = ModalEditing
	e.editID = p.ID
	e.draft = Draft{Name: p.Name, Image: p.Image, Price: p.Price, Stock: p.Stock}
	return nil
}

// BeginCreate opens the modal with an empty draft.
func (e *Editor) BeginCreate() {
	e.state = ModalCreating
	e.editID = ""
	e.draft = Draft{}
}

// SetDraft replaces the editable fields while the modal is open.
func (e *Editor) SetDraft(d Draft) error {
	if e.state == ModalClosed {
		return errors.New("no open dialog")
	}
	e.draft = d
	return nil
}

// Cancel closes the modal and discards the draft.
func (e *Editor) Cancel() {
	e.state = ModalClosed
	e.editID = ""
	e.draft = Draft{}
}

// Save submits the draft. Validation or server failures keep the modal open
// and surface a notice; on success the catalog is refetched and the modal
// closes.
func (e *Editor) Save(ctx context.Context) error {
	if e.state == ModalClosed {
		return errors.New("no open dialog")
	}
	if err := validateDraft(e.draft); err != nil {
		e.notify(err)
		return err
	}

	p := domain.Product{
		ID:    e.editID,
		Name:  strings.TrimSpace(e.draft.Name),
		Image: e.draft.Image,
		Price: e.draft.Price,
		Stock: e.draft.Stock,
	}

	var err error
	if e.state == ModalCreating {
		err = e.client.CreateProduct(ctx, p)
	} else {
		err = e.client.UpdateProduct(ctx, p)
	}
	if err != nil {
		e.notify(err)
		return err
	}

	if err := e.catalog.Refresh(ctx); err != nil {
		e.notify(err)
	}
	e.Cancel()
	return nil
}

// Delete removes a product and refetches the catalog.
func (e *Editor) Delete(ctx context.Context, id string) error {
	if err := e.client.DeleteProduct(ctx, id); err != nil {
		e.notify(err)
		return err
	}
	if err := e.catalog.Refresh(ctx); err != nil {
		e.notify(err)
	}
	return nil
}

func (e *Editor) notify(err error) {
	e.notices = append(e.notices, noticeFor(err))
}

// TakeNotices drains the pending non-blocking notices.
func (e *Editor) TakeNotices() []string {
	out := e.notices
	e.notices = nil
	return out
}

func validateDraft(d Draft) error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: name required", domain.ErrValidation)
	}
	if d.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	if d.Stock < 0 {
		return fmt.Errorf("%w: stock must not be negative", domain.ErrValidation)
	}
	return nil
}
