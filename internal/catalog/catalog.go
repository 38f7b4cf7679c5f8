// Package catalog implements the in-memory book catalog and its derived views.
//
// A Catalog owns an insertion-ordered list of records plus two views kept in
// lock-step with it: the records published after domain.RecentAfterYear, and
// a per-genre record count. Both views are only ever touched by insert and
// Remove, so they always equal what a fresh pass over the records would yield.
//
// A Catalog is not safe for concurrent use; callers sharing one must
// serialize access themselves.
package catalog

import (
	"log/slog"
	"slices"

	"github.com/listenupapp/bookcatalog/internal/domain"
	"github.com/listenupapp/bookcatalog/internal/errors"
	"github.com/listenupapp/bookcatalog/internal/id"
	"github.com/listenupapp/bookcatalog/internal/logger"
	"github.com/listenupapp/bookcatalog/internal/validation"
)

// Options configures a Catalog.
type Options struct {
	Logger    *slog.Logger          // Mutation debug logs (discarded if nil)
	Validator *validation.Validator // Record validator (created if nil)
}

// entry pairs a record with its insertion sequence so that the derived views
// can refer to one specific instance even when titles repeat.
type entry struct {
	seq    uint64
	record domain.Record
}

// Catalog is an in-memory collection of book records.
type Catalog struct {
	id          string
	records     []entry
	recent      []entry
	genreCounts map[string]int
	nextSeq     uint64
	validator   *validation.Validator
	logger      *slog.Logger
}

// New creates a catalog and adds records through the same path as Add.
// Construction is all-or-nothing: the first invalid record aborts it and no
// catalog is returned.
func New(opts Options, records ...domain.Record) (*Catalog, error) {
	c := newEmpty(opts)
	for i, r := range records {
		if err := c.Add(r); err != nil {
			return nil, errors.Wrapf(err, errors.CodeValidation, "invalid record at index %d", i)
		}
	}
	return c, nil
}

func newEmpty(opts Options) *Catalog {
	catalogID := id.NewCatalogID()

	log := opts.Logger
	if log == nil {
		log = logger.Discard().Logger
	}

	v := opts.Validator
	if v == nil {
		v = validation.New()
	}

	return &Catalog{
		id:          catalogID,
		genreCounts: make(map[string]int),
		validator:   v,
		logger:      log.With("catalog_id", catalogID),
	}
}

// ID returns the catalog's identifier.
func (c *Catalog) ID() string {
	return c.id
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.records)
}

// Add validates r and appends it. Duplicate titles are accepted.
func (c *Catalog) Add(r domain.Record) error {
	if err := c.validator.Validate(r); err != nil {
		return err
	}
	c.insert(r)
	return nil
}

// insert is the only place records enter the catalog.
func (c *Catalog) insert(r domain.Record) {
	e := entry{seq: c.nextSeq, record: r}
	c.nextSeq++

	c.records = append(c.records, e)
	if r.IsRecent() {
		c.recent = append(c.recent, e)
	}
	c.genreCounts[r.Genre]++

	c.logger.Debug("record added",
		"title", r.Title,
		"genre", r.Genre,
		"recent", r.IsRecent(),
		"records", len(c.records),
	)
}

// Remove deletes the first record, in insertion order, whose title equals
// title exactly. Only that instance leaves the derived views; other records
// sharing the title are untouched. An unknown title is a not found error and
// leaves the catalog unchanged.
func (c *Catalog) Remove(title string) error {
	idx := slices.IndexFunc(c.records, func(e entry) bool {
		return e.record.Title == title
	})
	if idx < 0 {
		return errors.NotFoundf("record with title %q not found", title)
	}

	removed := c.records[idx]
	c.records = slices.Delete(c.records, idx, idx+1)

	if removed.record.IsRecent() {
		c.recent = slices.DeleteFunc(c.recent, func(e entry) bool {
			return e.seq == removed.seq
		})
	}

	genre := removed.record.Genre
	c.genreCounts[genre]--
	if c.genreCounts[genre] <= 0 {
		delete(c.genreCounts, genre)
	}

	c.logger.Debug("record removed",
		"title", title,
		"genre", genre,
		"records", len(c.records),
	)
	return nil
}

// All returns a copy of every record in insertion order.
func (c *Catalog) All() []domain.Record {
	return recordsOf(c.records)
}

func recordsOf(entries []entry) []domain.Record {
	out := make([]domain.Record, len(entries))
	for i, e := range entries {
		out[i] = e.record
	}
	return out
}
