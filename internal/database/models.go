package database

import (
	"time"

	"github.com/uptrace/bun"
)

// DateLayout is the format of the `date` column, the partition key for all
// day-scoped queries.
const DateLayout = "2006-01-02"

type ClipboardEntry struct {
	bun.BaseModel `bun:"table:clipboard_items"`

	ID        int64     `bun:"id,pk,autoincrement" json:"id"`
	Content   string    `bun:"content,notnull" json:"content"`
	Timestamp time.Time `bun:"timestamp,notnull,default:current_timestamp" json:"timestamp"`
	Date      string    `bun:"date,notnull" json:"date"`
}
