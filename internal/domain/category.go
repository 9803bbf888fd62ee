package domain

import "github.com/google/uuid"

type Category struct {
	ID       int64  `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	Slug     string `db:"slug" json:"slug"`
	OrderIdx int    `db:"order_idx" json:"order_idx"`
}

// EntryCategory is one row of the entry↔category join, with the category
// name resolved so callers never re-join on category id.
type EntryCategory struct {
	EntryID      uuid.UUID `db:"entry_id" json:"entry_id"`
	CategoryID   int64     `db:"category_id" json:"category_id"`
	CategoryName string    `db:"category_name" json:"category_name"`
}
