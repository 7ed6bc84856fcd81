package page

import (
	"errors"
	"sync"

	"github.com/ChaseHampton/headstones/internal/record"
	"go.uber.org/zap"
)

var ErrNoPages = errors.New("no pages to review")

// Page is one extracted image page awaiting review.
type Page struct {
	FileName   string            `json:"fileName" yaml:"file_name"`
	PageNumber int               `json:"pageNumber" yaml:"page_number"`
	Headstone  *record.Headstone `json:"headstone" yaml:"headstone"`
}

// Reviewer walks a list of pages with a cursor that stops at either end.
type Reviewer struct {
	mu        sync.Mutex
	pages     []Page
	index     int
	observers []func(Page)
	logger    *zap.Logger
}

func NewReviewer(logger *zap.Logger) *Reviewer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reviewer{logger: logger}
}

// Subscribe registers fn to be called with the current page after every cursor
// move. Observers run synchronously on the caller's goroutine.
func (r *Reviewer) Subscribe(fn func(Page)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observers = append(r.observers, fn)
}

// LoadPages replaces the held list and moves the cursor to the first page.
func (r *Reviewer) LoadPages(pages []Page) error {
	if len(pages) == 0 {
		return ErrNoPages
	}
	r.mu.Lock()
	r.pages = append([]Page(nil), pages...)
	r.index = 0
	r.mu.Unlock()

	r.publish("loaded")
	return nil
}

func (r *Reviewer) Next() bool {
	r.mu.Lock()
	if len(r.pages) == 0 || r.index == len(r.pages)-1 {
		r.mu.Unlock()
		return false
	}
	r.index++
	r.mu.Unlock()

	r.publish("next")
	return true
}

func (r *Reviewer) Previous() bool {
	r.mu.Lock()
	if r.index == 0 {
		r.mu.Unlock()
		return false
	}
	r.index--
	r.mu.Unlock()

	r.publish("previous")
	return true
}

// Current returns the page at the cursor, or false before any pages are loaded.
func (r *Reviewer) Current() (Page, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.pages) == 0 {
		return Page{}, false
	}
	return r.pages[r.index], true
}

func (r *Reviewer) Index() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.index
}

func (r *Reviewer) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pages)
}

// SaveToDatabase reports success without persisting anything. Edits reach the
// datastore through db.Store.WriteRecord.
func (r *Reviewer) SaveToDatabase() bool {
	return true
}

func (r *Reviewer) publish(action string) {
	r.mu.Lock()
	current := r.pages[r.index]
	observers := make([]func(Page), len(r.observers))
	copy(observers, r.observers)
	r.mu.Unlock()

	r.logger.Debug("review cursor moved",
		zap.String("action", action),
		zap.String("file_name", current.FileName),
		zap.Int("page_number", current.PageNumber))

	for _, fn := range observers {
		fn(current)
	}
}
