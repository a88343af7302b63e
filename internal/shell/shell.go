// Package shell is a line-oriented editor for an order. It plays the part
// of the quote configurator: quotes are opened for editing, changed field by
// field, and saved back or cancelled, with undo/redo over the whole order.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/piwi3910/giftwrap/internal/engine"
	"github.com/piwi3910/giftwrap/internal/importer"
	"github.com/piwi3910/giftwrap/internal/model"
	"github.com/piwi3910/giftwrap/internal/session"
)

var (
	// ErrNoQuoteOpen is returned by commands that need an open quote.
	ErrNoQuoteOpen = errors.New("no quote is being edited (use new or edit <n>)")
	// ErrQuoteOpen is returned by order-level commands while a quote is open.
	ErrQuoteOpen = errors.New("a quote is being edited (save or cancel it first)")
	// ErrUnknownCommand is returned for input that names no command.
	ErrUnknownCommand = errors.New("unknown command (type help)")
)

// Options configures a Shell. Zero values fall back to sensible defaults.
type Options struct {
	ExportDir string
	Templates *model.TemplateStore
	Now       func() time.Time
}

// Shell edits one order at a time.
type Shell struct {
	order     *model.Order
	history   *session.History
	editor    *session.Editor
	pending   session.Snapshot
	templates *model.TemplateStore
	exportDir string
	now       func() time.Time
	out       io.Writer
}

// New returns a shell editing order. Output goes to io.Discard until Run
// or SetOutput is called.
func New(order *model.Order, opts Options) *Shell {
	s := &Shell{
		order:     order,
		history:   session.NewHistory(),
		templates: opts.Templates,
		exportDir: opts.ExportDir,
		now:       opts.Now,
		out:       io.Discard,
	}
	if s.exportDir == "" {
		s.exportDir = "."
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.templates == nil {
		store := model.NewTemplateStore()
		s.templates = &store
	}
	return s
}

// SetOutput redirects command output.
func (s *Shell) SetOutput(w io.Writer) { s.out = w }

// Order returns the order being edited.
func (s *Shell) Order() *model.Order { return s.order }

// Editing reports whether a quote is open.
func (s *Shell) Editing() bool { return s.editor != nil }

func (s *Shell) prompt() string {
	if s.editor != nil {
		return fmt.Sprintf("order #%d quote> ", s.order.ID())
	}
	return fmt.Sprintf("order #%d> ", s.order.ID())
}

// Run reads commands from in until quit, end of input or ctx is cancelled.
// Command errors are printed and do not stop the loop. Cancelling ctx while
// the shell waits for input returns at once; the pending read is abandoned.
func (s *Shell) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	s.out = out
	fmt.Fprintf(out, "%s - %s quote editor. Type help for commands.\n", model.Settings().CompanyName, model.Settings().StoreName)

	scanCtx, stop := context.WithCancel(ctx)
	defer stop()
	lines := make(chan string)
	done := make(chan error, 1)
	go scanLines(scanCtx, in, lines, done)

	for {
		fmt.Fprint(out, s.prompt())
		select {
		case <-ctx.Done():
			s.discardOpenQuote()
			return ctx.Err()
		case err := <-done:
			fmt.Fprintln(out)
			s.discardOpenQuote()
			return err
		case line := <-lines:
			quit, err := s.Exec(line)
			if err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
			}
			if quit {
				return nil
			}
		}
	}
}

// scanLines sends each line of in to lines and the scanner's final error to
// done. It stops early once ctx is cancelled.
func scanLines(ctx context.Context, in io.Reader, lines chan<- string, done chan<- error) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-ctx.Done():
			return
		}
	}
	done <- scanner.Err()
}

// Exec runs a single command line. quit is true after the quit command.
func (s *Shell) Exec(line string) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "help", "?":
		s.help()
	case "quit", "exit", "q":
		s.discardOpenQuote()
		return true, nil
	case "new":
		return false, s.newQuote()
	case "edit":
		return false, s.edit(args)
	case "preset":
		return false, s.preset(strings.Join(args, " "))
	case "set":
		return false, s.set(args, line)
	case "show":
		s.show()
	case "compare":
		return false, s.compare()
	case "save":
		return false, s.save()
	case "cancel":
		return false, s.cancel()
	case "remove", "rm":
		return false, s.remove(args)
	case "clear":
		return false, s.clear()
	case "list", "ls":
		s.list()
	case "total":
		fmt.Fprintf(s.out, "Total: %s\n", model.FormatMoney(s.order.Total()))
	case "undo":
		return false, s.undo()
	case "redo":
		return false, s.redo()
	case "export":
		return false, s.export()
	case "checkout":
		return false, s.checkout()
	default:
		return false, fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
	}
	return false, nil
}

func (s *Shell) help() {
	w := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	for _, row := range [][2]string{
		{"new", "start a new quote"},
		{"edit <n>", "edit quote n"},
		{"preset <template>", "start a new quote from a saved template"},
		{"set <field> <value>", "fields: shape, x, y, z, quality, colour, bow, label, nolabel"},
		{"show", "show the open quote and its price breakdown"},
		{"compare", "price the open quote with other options"},
		{"save", "add the open quote to the order"},
		{"cancel", "discard changes to the open quote"},
		{"remove <n>", "remove quote n"},
		{"clear", "remove every quote"},
		{"list", "list the order"},
		{"total", "show the order total"},
		{"undo / redo", "step through order changes"},
		{"export", "write the receipt file"},
		{"checkout", "export and start the next order"},
		{"quit", "leave the editor"},
	} {
		fmt.Fprintf(w, "  %s\t%s\n", row[0], row[1])
	}
	w.Flush()
}

func (s *Shell) requireEditor() error {
	if s.editor == nil {
		return ErrNoQuoteOpen
	}
	return nil
}

func (s *Shell) requireNoEditor() error {
	if s.editor != nil {
		return ErrQuoteOpen
	}
	return nil
}

func (s *Shell) newQuote() error {
	if err := s.requireNoEditor(); err != nil {
		return err
	}
	s.pending = session.MakeSnapshot(s.order, "Add Quote")
	s.editor = session.BeginNew(s.order)
	s.show()
	return nil
}

func (s *Shell) edit(args []string) error {
	if err := s.requireNoEditor(); err != nil {
		return err
	}
	i, err := s.position(args)
	if err != nil {
		return err
	}
	snapshot := session.MakeSnapshot(s.order, "Edit Quote")
	ed, err := session.BeginEdit(s.order, i)
	if err != nil {
		return err
	}
	s.pending = snapshot
	s.editor = ed
	s.show()
	return nil
}

func (s *Shell) preset(name string) error {
	if err := s.requireNoEditor(); err != nil {
		return err
	}
	if name == "" {
		if names := s.templates.Names(); len(names) > 0 {
			return fmt.Errorf("preset needs a template name: %s", strings.Join(names, ", "))
		}
		return errors.New("no templates saved")
	}
	tmpl := s.templates.FindByName(name)
	if tmpl == nil {
		return fmt.Errorf("no template named %q", name)
	}
	s.pending = session.MakeSnapshot(s.order, "Add Quote")
	s.editor = session.BeginNew(s.order)
	*s.editor.Draft() = tmpl.ToQuote()
	s.show()
	return nil
}

// position parses a 1-based quote number.
func (s *Shell) position(args []string) (int, error) {
	if len(args) != 1 {
		return 0, errors.New("expected a quote number")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid quote number %q", args[0])
	}
	if n < 1 || n > s.order.Len() {
		return 0, fmt.Errorf("%w: no quote %d (order has %d)", model.ErrIndexOutOfRange, n, s.order.Len())
	}
	return n - 1, nil
}

func (s *Shell) set(args []string, line string) error {
	if err := s.requireEditor(); err != nil {
		return err
	}
	if len(args) == 0 {
		return errors.New("set needs a field")
	}
	field := strings.ToLower(args[0])
	value := strings.Join(args[1:], " ")
	q := s.editor.Draft()

	switch field {
	case "shape":
		shape, err := model.ParseGiftShape(value)
		if err != nil {
			return err
		}
		q.Gift.SetShape(shape)
	case "x", "y", "z":
		v, err := importer.ValidateDimension(value, model.Settings().MaxDimension)
		if err != nil {
			return err
		}
		if err := q.Gift.SetDimension(int(field[0]-'x'), v); err != nil {
			return err
		}
	case "quality", "paper":
		quality, err := model.ParsePaperQuality(value)
		if err != nil {
			return err
		}
		q.Wrap.Quality = quality
	case "colour", "color":
		colour, err := model.ParseColour(value)
		if err != nil {
			return err
		}
		q.Wrap.Colour = colour
	case "bow":
		bow, err := parseYesNo(value)
		if err != nil {
			return err
		}
		q.IncludesBow = bow
	case "label":
		q.IncludesLabel = true
		q.LabelText = labelText(line)
	case "nolabel":
		q.IncludesLabel = false
	default:
		return fmt.Errorf("unknown field %q", field)
	}
	fmt.Fprintln(s.out, q.Summary())
	return nil
}

// labelText returns everything after "set label", keeping inner spacing.
func labelText(line string) string {
	rest := strings.TrimSpace(line)
	for range 2 {
		if i := strings.IndexFunc(rest, func(r rune) bool { return r == ' ' || r == '\t' }); i >= 0 {
			rest = strings.TrimLeft(rest[i:], " \t")
		} else {
			return ""
		}
	}
	return rest
}

func parseYesNo(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "yes", "y", "on", "true", "1":
		return true, nil
	case "no", "n", "off", "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("expected yes or no, got %q", s)
}

func (s *Shell) show() {
	if s.editor == nil {
		s.list()
		return
	}
	q := *s.editor.Draft()
	names := q.Gift.Shape.DimensionNames()
	dims := make([]string, len(names))
	for i, name := range names {
		v, _ := q.Gift.Dimension(i)
		dims[i] = fmt.Sprintf("%s=%s", name, strconv.FormatFloat(v, 'f', -1, 64))
	}
	b := model.EstimateQuote(q)

	fmt.Fprintln(s.out, q.Summary())
	fmt.Fprintf(s.out, "  %s (%s)\n", q.Gift.Shape, strings.Join(dims, ", "))
	fmt.Fprintf(s.out, "  paper %.1f cm² @ %.2fp = %s, bow %s, label %s\n",
		b.Area, b.Rate, model.FormatMoney(b.PaperCost), model.FormatMoney(b.BowCost), model.FormatMoney(b.LabelCost))
	fmt.Fprintf(s.out, "  Total: %s\n", model.FormatMoney(b.Total))
}

func (s *Shell) compare() error {
	if err := s.requireEditor(); err != nil {
		return err
	}
	w := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	for _, r := range engine.CompareQualities(*s.editor.Draft()) {
		fmt.Fprintf(w, "  %s\t%s\t%s\n", r.Scenario.Name, model.FormatMoney(r.Breakdown.Total), signedMoney(r.Delta))
	}
	return w.Flush()
}

func signedMoney(delta int64) string {
	if delta > 0 {
		return "+" + model.FormatMoney(delta)
	}
	if delta == 0 {
		return ""
	}
	return model.FormatMoney(delta)
}

func (s *Shell) save() error {
	if err := s.requireEditor(); err != nil {
		return err
	}
	if err := s.editor.Commit(); err != nil {
		return err
	}
	s.history.Push(s.pending)
	s.editor = nil
	fmt.Fprintf(s.out, "Saved. Order total: %s\n", model.FormatMoney(s.order.Total()))
	return nil
}

func (s *Shell) cancel() error {
	if err := s.requireEditor(); err != nil {
		return err
	}
	err := s.editor.Cancel()
	s.editor = nil
	return err
}

func (s *Shell) discardOpenQuote() {
	if s.editor != nil {
		_ = s.editor.Cancel()
		s.editor = nil
	}
}

func (s *Shell) remove(args []string) error {
	if err := s.requireNoEditor(); err != nil {
		return err
	}
	i, err := s.position(args)
	if err != nil {
		return err
	}
	snapshot := session.MakeSnapshot(s.order, "Remove Quote")
	removed, err := s.order.RemoveAt(i)
	if err != nil {
		return err
	}
	s.history.Push(snapshot)
	fmt.Fprintf(s.out, "Removed %s\n", removed.Summary())
	return nil
}

func (s *Shell) clear() error {
	if err := s.requireNoEditor(); err != nil {
		return err
	}
	s.history.Push(session.MakeSnapshot(s.order, "Clear Order"))
	s.order.Clear()
	fmt.Fprintln(s.out, "Order cleared.")
	return nil
}

func (s *Shell) list() {
	view := s.order.View()
	if len(view.Quotes) == 0 {
		fmt.Fprintf(s.out, "Order #%d is empty.\n", view.ID)
		return
	}
	for i, q := range view.Quotes {
		fmt.Fprintf(s.out, "%d. %s\n", i+1, q.Summary())
	}
	fmt.Fprintf(s.out, "Total: %s\n", model.FormatMoney(view.Total))
}

func (s *Shell) undo() error {
	if err := s.requireNoEditor(); err != nil {
		return err
	}
	label, ok := s.history.UndoOrder(s.order)
	if !ok {
		return errors.New("nothing to undo")
	}
	fmt.Fprintf(s.out, "Undid %s.\n", label)
	return nil
}

func (s *Shell) redo() error {
	if err := s.requireNoEditor(); err != nil {
		return err
	}
	label, ok := s.history.RedoOrder(s.order)
	if !ok {
		return errors.New("nothing to redo")
	}
	fmt.Fprintf(s.out, "Redid %s.\n", label)
	return nil
}

func (s *Shell) writeReceipt() (string, error) {
	if err := s.requireNoEditor(); err != nil {
		return "", err
	}
	if s.order.Len() == 0 {
		return "", model.ErrEmptyOrder
	}
	return s.order.ExportTo(s.exportDir, model.Settings().StoreName, s.now())
}

func (s *Shell) export() error {
	name, err := s.writeReceipt()
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Exported %s\n", name)
	return nil
}

func (s *Shell) checkout() error {
	name, err := s.writeReceipt()
	if err != nil {
		return err
	}
	previous := s.order.ID()
	next := s.order.StartNext()
	s.history.Clear()
	fmt.Fprintf(s.out, "Order #%d checked out to %s. Started order #%d.\n", previous, name, next)
	return nil
}
