package model

import "time"

// DateLayout is the wire format for collection dates.
const DateLayout = "2006-01-02"

// Collection is a scheduled pickup belonging to exactly one client. It
// carries a date and a fulfilled flag and is never updated or deleted
// through the API.
type Collection struct {
	ID         int64     `json:"id"`
	ClienteID  int64     `json:"cliente_id"`
	DataColeta time.Time `json:"-"`
	Efetuada   bool      `json:"efetuada"`
}

// DateString returns the collection date in wire format.
func (c *Collection) DateString() string {
	return c.DataColeta.Format(DateLayout)
}
