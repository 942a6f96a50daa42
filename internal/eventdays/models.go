package eventdays

import (
	"time"

	"festtix/internal/tickets"

	"github.com/google/uuid"
)

// EventDay is one calendar day of the festival.
type EventDay struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Code      string    `json:"code" gorm:"type:varchar(3);uniqueIndex;not null"`
	Date      time.Time `json:"date" gorm:"type:date;not null"`
	Label     string    `json:"label" gorm:"size:100;not null"`
	IsActive  bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (EventDay) TableName() string {
	return "event_days"
}

// DayCode parses the stored code.
func (d EventDay) DayCode() (tickets.DayCode, bool) {
	return tickets.ParseDayCode(d.Code)
}

type EventDayResponse struct {
	ID    string          `json:"id"`
	Code  tickets.DayCode `json:"code"`
	Date  string          `json:"date"`
	Label string          `json:"label"`
}

func (d EventDay) ToResponse() EventDayResponse {
	code, _ := d.DayCode()
	return EventDayResponse{
		ID:    d.ID.String(),
		Code:  code,
		Date:  d.Date.Format("2006-01-02"),
		Label: d.Label,
	}
}
