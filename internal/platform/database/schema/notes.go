// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: dev@inkwell.app

package schema

// NotesTable represents the 'notes' table
type NotesTable struct {
	Table     string
	ID        string
	Title     string
	Content   string
	Category  string
	Published string
	CreatedBy string
	UpdatedBy string
	CreatedAt string
	UpdatedAt string
	DeletedAt string
}

// Notes is the schema definition for notes
var Notes = NotesTable{
	Table:     "notes",
	ID:        "id",
	Title:     "title",
	Content:   "content",
	Category:  "category",
	Published: "published",
	CreatedBy: "created_by",
	UpdatedBy: "updated_by",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
	DeletedAt: "deleted_at",
}

// Columns returns all standard column names
func (t NotesTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Content, t.Category, t.Published,
		t.CreatedBy, t.UpdatedBy, t.CreatedAt, t.UpdatedAt, t.DeletedAt,
	}
}
