package db

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// TimestampLayout is the wire format of created_at.
const TimestampLayout = "2006-01-02 15:04:05"

// Item is a row of the items table
type Item struct {
	ID          int32     `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name"`
	Description *string   `gorm:"column:description"`
	CreatedAt   Timestamp `gorm:"column:created_at;autoCreateTime:false"`
}

// TableName specifies the table name for Item model
func (Item) TableName() string {
	return "items"
}

// Timestamp is a created_at value as read back from the driver. PostgreSQL
// hands back time.Time while SQLite may return the raw text of
// CURRENT_TIMESTAMP, so both are accepted.
type Timestamp struct {
	time.Time
	Valid bool
}

var timestampLayouts = []string{
	TimestampLayout,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05.999999999-07:00",
	time.RFC3339Nano,
}

// Scan implements sql.Scanner.
func (t *Timestamp) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*t = Timestamp{}
		return nil
	case time.Time:
		*t = Timestamp{Time: v, Valid: true}
		return nil
	case []byte:
		return t.parse(string(v))
	case string:
		return t.parse(v)
	default:
		return fmt.Errorf("cannot scan %T into Timestamp", value)
	}
}

func (t *Timestamp) parse(s string) error {
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			*t = Timestamp{Time: parsed, Valid: true}
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp %q", s)
}

// GormDataType keeps GORM from treating Timestamp as an association.
func (Timestamp) GormDataType() string {
	return "time"
}

// Value implements driver.Valuer.
func (t Timestamp) Value() (driver.Value, error) {
	if !t.Valid {
		return nil, nil
	}
	return t.Time, nil
}

// String formats the timestamp as YYYY-MM-DD HH:MM:SS. A NULL timestamp
// formats as the empty string.
func (t Timestamp) String() string {
	if !t.Valid {
		return ""
	}
	return t.Time.Format(TimestampLayout)
}
