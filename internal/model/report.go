package model

import (
	"time"

	"github.com/google/uuid"
)

type CreateReportRequest struct {
	ReportText string `json:"reportText" validate:"required,max=200"`
}

// ReportEntry is one row of the moderation queue: the report joined with the
// poem's current rating and both parties' display identities.
type ReportEntry struct {
	ReportText           string    `json:"reportText"`
	ReportingUserID      uuid.UUID `json:"reportingUserID"`
	ReportingUsername    string    `json:"reportingUsername"`
	ReportingDisplayname string    `json:"reportingDisplayname"`
	PoemID               int64     `json:"poemID"`
	PoemText             string    `json:"poemText"`
	Timestamp            time.Time `json:"timestamp"`
	PoetUserID           uuid.UUID `json:"poetUserID"`
	PoetUsername         string    `json:"poetUsername"`
	PoetDisplayname      string    `json:"poetDisplayname"`
	Rating               int       `json:"rating"`
}
