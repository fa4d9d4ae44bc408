package settings

import (
	"slices"

	"github.com/hnimtadd/tablo/grid/config"
	"github.com/hnimtadd/tablo/grid/coordinate"
	"github.com/hnimtadd/tablo/grid/dimension"
	"github.com/hnimtadd/tablo/grid/entity"
	"github.com/hnimtadd/tablo/grid/records"
)

// WidthOption fixes the width of the columns holding the selected cells.
// The width counts padding. Content that does not fit is truncated, or
// wrapped when built with WrapWidth.
type WidthOption struct {
	width config.Width
}

// Width truncates columns to size.
func Width(size int) WidthOption {
	return WidthOption{width: config.Width{Size: size, Mode: config.WidthTruncate}}
}

// WrapWidth wraps the content of columns at size.
func WrapWidth(size int) WidthOption {
	return WidthOption{width: config.Width{Size: size, Mode: config.WidthWrap}}
}

// Suffix marks truncated content, for example with "...". It is dropped
// when wider than the room left.
func (w WidthOption) Suffix(s string) WidthOption {
	w.width.Suffix = s
	return w
}

func (w WidthOption) ChangeCell(r *records.Vec, cfg *config.Config, e entity.Entity) {
	for _, col := range columns(r, e) {
		cfg.SetColumnWidth(col, w.width)
	}
}

func (w WidthOption) ChangeTable(r *records.Vec, cfg *config.Config) {
	w.ChangeCell(r, cfg, entity.All())
}

type minWidth struct {
	size int
}

// MinWidth makes the columns holding the selected cells at least size wide.
func MinWidth(size int) CellOption {
	return minWidth{size: size}
}

func (m minWidth) ChangeCell(r *records.Vec, cfg *config.Config, e entity.Entity) {
	for _, col := range columns(r, e) {
		cfg.SetMinColumnWidth(col, m.size)
	}
}

// columns lists the distinct columns e selects, in order.
func columns(r *records.Vec, e entity.Entity) []int {
	seen := make(map[int]struct{})
	var out []int
	for pos := range e.Iter(r.CountRows(), r.CountColumns()) {
		if _, ok := seen[pos.Col]; ok {
			continue
		}
		seen[pos.Col] = struct{}{}
		out = append(out, pos.Col)
	}
	return out
}

type increaseWidth struct {
	total int
}

// IncreaseWidth widens the table until it is total characters wide,
// margins included. The extra room is split evenly across the columns and
// the remainder goes to the leftmost ones. A table already that wide is
// left alone.
func IncreaseWidth(total int) TableOption {
	return increaseWidth{total: total}
}

func (w increaseWidth) ChangeTable(r *records.Vec, cfg *config.Config) {
	plan, err := dimension.Estimate(r, cfg)
	if err != nil || plan.Cols() == 0 {
		return
	}
	extra := w.total - dimension.TotalWidth(plan, cfg)
	if extra <= 0 {
		return
	}
	widths := plan.Widths
	each, rest := extra/len(widths), extra%len(widths)
	for col := range widths {
		n := widths[col] + each
		if col < rest {
			n++
		}
		if fixed, ok := cfg.ColumnWidth(col); ok {
			fixed.Size = n
			cfg.SetColumnWidth(col, fixed)
			continue
		}
		cfg.SetMinColumnWidth(col, n)
	}
}

type shrinkWidth struct {
	total  int
	suffix string
}

// ShrinkWidth truncates the widest columns until the table fits in total
// characters, margins included. A column never shrinks below its padding
// plus one character.
func ShrinkWidth(total int, suffix string) TableOption {
	return shrinkWidth{total: total, suffix: suffix}
}

func (w shrinkWidth) ChangeTable(r *records.Vec, cfg *config.Config) {
	plan, err := dimension.Estimate(r, cfg)
	if err != nil || plan.Cols() == 0 {
		return
	}
	over := dimension.TotalWidth(plan, cfg) - w.total
	if over <= 0 {
		return
	}

	floor := make([]int, plan.Cols())
	for col := range floor {
		floor[col] = 1 + cfg.Format(coordinate.At(0, col)).Padding.Horizontal()
	}
	widths := slices.Clone(plan.Widths)
	for ; over > 0; over-- {
		widest := -1
		for col := range widths {
			if widths[col] > floor[col] && (widest < 0 || widths[col] > widths[widest]) {
				widest = col
			}
		}
		if widest < 0 {
			break
		}
		widths[widest]--
	}

	for col, n := range widths {
		if n == plan.Widths[col] {
			continue
		}
		cfg.SetColumnWidth(col, config.Width{Size: n, Mode: config.WidthTruncate, Suffix: w.suffix})
	}
}
