// Package tablo renders text tables.
//
// A Table holds its records and grid configuration. Settings change either
// the whole table or the cells an entity selects, and are applied in the
// order they are given:
//
//	t := tablo.New(data).
//		With(settings.Modern(), settings.Header("Distributions")).
//		Modify(entity.Column(0), settings.AlignRight())
//	out, err := t.Render()
package tablo

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/hnimtadd/tablo/grid/builder"
	"github.com/hnimtadd/tablo/grid/config"
	"github.com/hnimtadd/tablo/grid/dimension"
	"github.com/hnimtadd/tablo/grid/entity"
	"github.com/hnimtadd/tablo/grid/records"
	"github.com/hnimtadd/tablo/logger"
	"github.com/hnimtadd/tablo/settings"
)

// ErrInconsistentGeometry is returned by Render when the configuration
// references cells the records do not have.
var ErrInconsistentGeometry = dimension.ErrInconsistentGeometry

type Table struct {
	records *records.Vec
	cfg     *config.Config

	logger logger.Logger
}

type Options struct {
	Logger logger.Logger
}

// Option changes how a table is constructed.
type Option func(*Options)

// WithLogger makes the table log to l. Tables discard logs by default.
func WithLogger(l logger.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// New builds a table from rows of cells. Short rows are padded with empty
// cells. Tables start with the ASCII style.
func New(data [][]string, opts ...Option) *Table {
	return newTable(records.NewVec(data), opts)
}

// FromRecords builds a table from a copy of r.
func FromRecords(r records.Records, opts ...Option) *Table {
	return newTable(records.FromRecords(r), opts)
}

func newTable(r *records.Vec, opts []Option) *Table {
	o := Options{Logger: logger.DefaultLogger}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = logger.Nop()
	}
	cfg := config.New()
	settings.ASCII().ChangeTable(r, cfg)
	return &Table{
		records: r,
		cfg:     cfg,
		logger:  o.Logger,
	}
}

// With applies table settings in order.
func (t *Table) With(opts ...settings.TableOption) *Table {
	for _, opt := range opts {
		t.logger.Debug("applying table option", "option", fmt.Sprintf("%T", opt))
		opt.ChangeTable(t.records, t.cfg)
	}
	return t
}

// Modify applies cell settings, in order, to the cells e selects.
func (t *Table) Modify(e entity.Entity, opts ...settings.CellOption) *Table {
	return t.With(settings.Modify(e, opts...))
}

// Shape returns the row and column count.
func (t *Table) Shape() (rows, cols int) {
	return t.records.CountRows(), t.records.CountColumns()
}

// Records returns a copy of the table content.
func (t *Table) Records() *records.Vec {
	return t.records.Clone()
}

// Config returns a copy of the grid configuration.
func (t *Table) Config() *config.Config {
	return t.cfg.Clone()
}

// Clone returns an independent copy of t.
func (t *Table) Clone() *Table {
	return &Table{
		records: t.records.Clone(),
		cfg:     t.cfg.Clone(),
		logger:  t.logger,
	}
}

// Render draws the table. An empty table renders as "".
func (t *Table) Render() (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			t.logger.Error("panic while rendering", "panic", r, "stack", string(debug.Stack()))
			err = fmt.Errorf("panic while rendering: %v", r)
		}
	}()

	plan, err := dimension.Estimate(t.records, t.cfg)
	if err != nil {
		t.logger.Error("cannot size table", "error", err)
		return "", fmt.Errorf("render: %w", err)
	}
	rows, cols := t.Shape()
	t.logger.Debug("rendering table",
		"rows", rows, "cols", cols,
		"width", dimension.TotalWidth(plan, t.cfg),
		"spans", len(plan.Spans),
	)
	return builder.New(t.records, t.cfg, plan).String(), nil
}

// String renders the table, or returns "" and logs the error when it cannot
// be rendered.
func (t *Table) String() string {
	out, err := t.Render()
	if err != nil {
		t.logger.Error("render failed", "error", err)
		return ""
	}
	return out
}

// TotalWidth returns the width of the widest rendered line, 0 when the
// table cannot be rendered.
func (t *Table) TotalWidth() int {
	plan, err := dimension.Estimate(t.records, t.cfg)
	if err != nil {
		return 0
	}
	return dimension.TotalWidth(plan, t.cfg)
}

// TotalHeight returns the number of rendered lines, 0 when the table cannot
// be rendered.
func (t *Table) TotalHeight() int {
	plan, err := dimension.Estimate(t.records, t.cfg)
	if err != nil {
		return 0
	}
	return dimension.TotalHeight(plan, t.cfg)
}

// ConcatHorizontal places other to the right of t. Rows are matched by
// index and the shorter table is padded with empty cells. Cell settings of
// other move along with its cells, the style of t is kept.
func (t *Table) ConcatHorizontal(other *Table) *Table {
	if other == t {
		other = t.Clone()
	}
	cols := t.records.CountColumns()
	t.records.AppendColumns(other.records)
	t.cfg.Merge(other.cfg, 0, cols)
	return t
}

// ConcatVertical places other below t. Cell settings of other move along
// with its cells, the style of t is kept.
func (t *Table) ConcatVertical(other *Table) *Table {
	if other == t {
		other = t.Clone()
	}
	rows := t.records.CountRows()
	t.records.AppendRows(other.records)
	t.cfg.Merge(other.cfg, rows, 0)
	return t
}

// Lines is like Render but returns the rendered lines.
func (t *Table) Lines() ([]string, error) {
	out, err := t.Render()
	if err != nil || out == "" {
		return nil, err
	}
	return strings.Split(out, "\n"), nil
}
