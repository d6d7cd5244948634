// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package navigation

import (
	"slices"

	"github.com/google/uuid"

	"github.com/olegiv/wellness-admin/internal/model"
	"github.com/olegiv/wellness-admin/internal/ordering"
)

// NewColumn creates an empty column with a fresh id.
func NewColumn(title string) model.LinkColumn {
	return model.LinkColumn{ID: uuid.NewString(), Title: SanitizeLabel(title)}
}

// NewColumnLink creates a column link with a fresh id.
func NewColumnLink(label, link string) model.ColumnLink {
	return model.ColumnLink{ID: uuid.NewString(), Label: SanitizeLabel(label), Link: link}
}

// ColumnIndex returns the index of the column with id in position order, or -1.
func ColumnIndex(cols []model.LinkColumn, id string) int {
	return ordering.IndexFunc(cols, func(c model.LinkColumn) bool { return c.ID == id })
}

// MoveColumn moves a whole column one step.
func MoveColumn(cols []model.LinkColumn, index int, dir ordering.Direction) []model.LinkColumn {
	return ordering.Move(cols, index, dir)
}

// AddColumn appends a column.
func AddColumn(cols []model.LinkColumn, col model.LinkColumn) []model.LinkColumn {
	col.Links = ordering.Normalize(col.Links)
	return ordering.Append(cols, col)
}

// RemoveColumn deletes the column with id.
func RemoveColumn(cols []model.LinkColumn, id string) []model.LinkColumn {
	return ordering.RemoveFunc(cols, func(c model.LinkColumn) bool { return c.ID == id })
}

// MoveColumnLink moves a link one step inside the column with columnID.
func MoveColumnLink(cols []model.LinkColumn, columnID string, index int, dir ordering.Direction) []model.LinkColumn {
	return withColumn(cols, columnID, func(c *model.LinkColumn) {
		c.Links = ordering.Move(c.Links, index, dir)
	})
}

// AddColumnLink appends link to the column with columnID.
func AddColumnLink(cols []model.LinkColumn, columnID string, link model.ColumnLink) []model.LinkColumn {
	return withColumn(cols, columnID, func(c *model.LinkColumn) {
		c.Links = ordering.Append(c.Links, link)
	})
}

// RemoveColumnLink deletes the link with linkID from the column with columnID.
func RemoveColumnLink(cols []model.LinkColumn, columnID, linkID string) []model.LinkColumn {
	return withColumn(cols, columnID, func(c *model.LinkColumn) {
		c.Links = ordering.RemoveFunc(c.Links, func(l model.ColumnLink) bool { return l.ID == linkID })
	})
}

// withColumn applies fn to a copy of the column with id.
func withColumn(cols []model.LinkColumn, id string, fn func(*model.LinkColumn)) []model.LinkColumn {
	out := slices.Clone(cols)
	for i := range out {
		if out[i].ID == id {
			out[i].Links = slices.Clone(out[i].Links)
			fn(&out[i])
		}
	}
	return out
}
