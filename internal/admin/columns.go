// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package admin

import (
	"context"
	"fmt"

	"github.com/olegiv/wellness-admin/internal/model"
	"github.com/olegiv/wellness-admin/internal/navigation"
	"github.com/olegiv/wellness-admin/internal/ordering"
)

// ColumnsDraft edits the footer or mega menu columns.
type ColumnsDraft struct {
	*Draft[[]model.LinkColumn]
}

// Columns returns the working columns in position order, each with its
// links in position order.
func (c *ColumnsDraft) Columns() []model.LinkColumn {
	cols := ordering.Sorted(c.Value())
	for i := range cols {
		cols[i].Links = ordering.Sorted(cols[i].Links)
	}
	return cols
}

// MoveColumn moves the column at index one step in dir.
func (c *ColumnsDraft) MoveColumn(index int, dir ordering.Direction) {
	c.Update(func(cols []model.LinkColumn) []model.LinkColumn {
		return navigation.MoveColumn(cols, index, dir)
	})
}

// AddColumn appends an empty column.
func (c *ColumnsDraft) AddColumn(title string) model.LinkColumn {
	col := navigation.NewColumn(title)
	c.Update(func(cols []model.LinkColumn) []model.LinkColumn {
		out := navigation.AddColumn(cols, col)
		col = ordering.Sorted(out)[navigation.ColumnIndex(out, col.ID)]
		return out
	})
	return col
}

// RemoveColumn deletes a column and its links once conf confirms.
func (c *ColumnsDraft) RemoveColumn(ctx context.Context, id string, conf Confirmer) (bool, error) {
	cols := c.Columns()
	idx := navigation.ColumnIndex(cols, id)
	if idx < 0 {
		return false, ErrItemNotFound
	}
	prompt := fmt.Sprintf("Supprimer la colonne « %s » et ses %d liens ?", cols[idx].Title, len(cols[idx].Links))
	if !conf.Confirm(ctx, prompt) {
		return false, nil
	}
	ok := c.apply(func(cols []model.LinkColumn) ([]model.LinkColumn, bool) {
		if navigation.ColumnIndex(cols, id) < 0 {
			return cols, false
		}
		return navigation.RemoveColumn(cols, id), true
	})
	if !ok {
		return false, ErrItemNotFound
	}
	return true, nil
}

// MoveLink moves the link at index inside a column.
func (c *ColumnsDraft) MoveLink(columnID string, index int, dir ordering.Direction) error {
	return c.editColumn(columnID, func(cols []model.LinkColumn) []model.LinkColumn {
		return navigation.MoveColumnLink(cols, columnID, index, dir)
	})
}

// AddLink appends a link to a column.
func (c *ColumnsDraft) AddLink(columnID, label, link string) (model.ColumnLink, error) {
	l := navigation.NewColumnLink(label, link)
	err := c.editColumn(columnID, func(cols []model.LinkColumn) []model.LinkColumn {
		return navigation.AddColumnLink(cols, columnID, l)
	})
	if err != nil {
		return model.ColumnLink{}, err
	}
	for _, col := range c.Value() {
		if col.ID != columnID {
			continue
		}
		for _, got := range col.Links {
			if got.ID == l.ID {
				return got, nil
			}
		}
	}
	return l, nil
}

// RemoveLink deletes a link from a column.
func (c *ColumnsDraft) RemoveLink(columnID, linkID string) error {
	ok := c.apply(func(cols []model.LinkColumn) ([]model.LinkColumn, bool) {
		idx := navigation.ColumnIndex(cols, columnID)
		if idx < 0 {
			return cols, false
		}
		links := ordering.Sorted(ordering.Sorted(cols)[idx].Links)
		if ordering.IndexFunc(links, func(l model.ColumnLink) bool { return l.ID == linkID }) < 0 {
			return cols, false
		}
		return navigation.RemoveColumnLink(cols, columnID, linkID), true
	})
	if !ok {
		return ErrItemNotFound
	}
	return nil
}

func (c *ColumnsDraft) editColumn(columnID string, fn func([]model.LinkColumn) []model.LinkColumn) error {
	ok := c.apply(func(cols []model.LinkColumn) ([]model.LinkColumn, bool) {
		if navigation.ColumnIndex(cols, columnID) < 0 {
			return cols, false
		}
		return fn(cols), true
	})
	if !ok {
		return ErrItemNotFound
	}
	return nil
}
