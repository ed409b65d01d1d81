package models

import (
	"time"
)

// DaySession is keyed by calendar date (YYYY-MM-DD) in the _id field,
// one document per day.
type DaySession struct {
	Date         string    `bson:"_id" json:"date"`
	IsDayStarted bool      `bson:"isDayStarted" json:"isDayStarted"`
	IsDayEnded   bool      `bson:"isDayEnded" json:"isDayEnded"`
	StartedAt    time.Time `bson:"startedAt,omitempty" json:"startedAt,omitempty"`
	EndedAt      time.Time `bson:"endedAt,omitempty" json:"endedAt,omitempty"`
}

type DayStatus struct {
	IsDayStarted bool `json:"isDayStarted"`
	IsDayEnded   bool `json:"isDayEnded"`
}
