package model

import "time"

// Document is one imported statement and the Records derived from it.
// Records are fixed at import time; deleting a Document discards them.
type Document struct {
	ID         string
	Filename   string
	ImportedAt time.Time
	Records    []Record
}
