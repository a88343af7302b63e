// Package session holds the editing state that sits between an Order and
// whatever collaborator is changing it: a single-quote edit that can be
// committed or cancelled, and undo/redo history over whole orders.
package session

import (
	"errors"

	"github.com/piwi3910/giftwrap/internal/importer"
	"github.com/piwi3910/giftwrap/internal/model"
)

// ErrSessionClosed is returned by Commit or Cancel on a finished editor.
var ErrSessionClosed = errors.New("edit session already closed")

// Editor edits one quote of an order. While an existing quote is being
// edited it is taken out of the order; Commit puts the draft back at the
// same position and Cancel puts back the unedited copy.
type Editor struct {
	order    *model.Order
	index    int
	isNew    bool
	unedited model.Quote
	draft    model.Quote
	closed   bool
}

// BeginEdit removes quote i from the order and opens an editor on it.
func BeginEdit(order *model.Order, i int) (*Editor, error) {
	q, err := order.RemoveAt(i)
	if err != nil {
		return nil, err
	}
	model.Logger().Debug("edit started", "order", order.ID(), "index", i, "quote", q.ID)
	return &Editor{
		order:    order,
		index:    i,
		unedited: q.Copy(),
		draft:    q,
	}, nil
}

// BeginNew opens an editor on a fresh default quote.
func BeginNew(order *model.Order) *Editor {
	q := model.NewQuote()
	model.Logger().Debug("new quote started", "order", order.ID(), "quote", q.ID)
	return &Editor{
		order:    order,
		index:    -1,
		isNew:    true,
		unedited: q.Copy(),
		draft:    q,
	}
}

// Draft returns the quote being edited. Changes through the pointer are
// what Commit stores.
func (e *Editor) Draft() *model.Quote { return &e.draft }

// Index is the order position being edited, or -1 for a new quote.
func (e *Editor) Index() int { return e.index }

// IsNew reports whether the editor was opened with BeginNew.
func (e *Editor) IsNew() bool { return e.isNew }

// Closed reports whether Commit or Cancel has completed.
func (e *Editor) Closed() bool { return e.closed }

// Changed reports whether the draft differs from the quote the editor
// was opened with.
func (e *Editor) Changed() bool { return e.draft != e.unedited }

// Validate checks the draft's gift against the configured maximum size.
func (e *Editor) Validate() error {
	return importer.ValidateGift(e.draft.Gift, model.Settings().MaxDimension)
}

// Commit stores the draft. It fails without closing the editor when the
// draft's dimensions are invalid, so the caller can correct them and retry.
func (e *Editor) Commit() error {
	if e.closed {
		return ErrSessionClosed
	}
	if err := e.Validate(); err != nil {
		return err
	}
	e.put(e.draft)
	e.closed = true
	model.Logger().Info("quote committed", "order", e.order.ID(), "quote", e.draft.ID, "total", e.draft.Total())
	return nil
}

// Cancel discards the draft. An edited quote returns to its original
// position unchanged; a new quote is dropped.
func (e *Editor) Cancel() error {
	if e.closed {
		return ErrSessionClosed
	}
	if !e.isNew {
		e.put(e.unedited)
	}
	e.closed = true
	model.Logger().Debug("edit cancelled", "order", e.order.ID(), "quote", e.unedited.ID)
	return nil
}

// put returns a quote to the order. If the order shrank while the editor
// was open the quote goes on the end.
func (e *Editor) put(q model.Quote) {
	if e.isNew {
		e.order.Append(q)
		return
	}
	if err := e.order.Insert(e.index, q); err != nil {
		e.order.Append(q)
	}
}
