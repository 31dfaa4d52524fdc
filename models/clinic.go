package models

import (
	"time"
)

// Day keys used by WeeklySchedule, Monday through Sunday.
const (
	DayMonday    = "pn"
	DayTuesday   = "wt"
	DayWednesday = "sr"
	DayThursday  = "cz"
	DayFriday    = "pt"
	DaySaturday  = "sb"
	DaySunday    = "nd"
)

// WeeklySchedule maps a day key to its raw opening-hours string as entered
// by submitters, e.g. "09:00-17:00", "zamknięte" or "08:00-12:00; 14:00-18:00".
type WeeklySchedule map[string]string

// Coordinates is a latitude/longitude pair.
type Coordinates struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

// Clinic is the canonical, approved directory entry.
// Lat/Lng are pointers: both present or both absent.
type Clinic struct {
	ID              string         `bson:"id" json:"id"`
	Name            string         `bson:"name" json:"name"`
	City            string         `bson:"city" json:"city"`
	Address         string         `bson:"address" json:"address,omitempty"`
	Phone           string         `bson:"phone" json:"phone,omitempty"` // raw, unnormalized
	Email           string         `bson:"email" json:"email,omitempty"`
	WWW             string         `bson:"www" json:"www,omitempty"`
	Facebook        string         `bson:"facebook" json:"facebook,omitempty"`
	Instagram       string         `bson:"instagram" json:"instagram,omitempty"`
	LinkedIn        string         `bson:"linkedin" json:"linkedin,omitempty"`
	YouTube         string         `bson:"youtube" json:"youtube,omitempty"`
	Pricing         string         `bson:"cennik" json:"cennik,omitempty"`
	Notes           string         `bson:"dodatkowe" json:"dodatkowe,omitempty"`
	Specializations []string       `bson:"specializations" json:"specializations,omitempty"`
	OpeningHours    WeeklySchedule `bson:"openingHours" json:"openingHours,omitempty"`
	Lat             *float64       `bson:"lat" json:"lat,omitempty"`
	Lng             *float64       `bson:"lng" json:"lng,omitempty"`
	ReviewsCount    int            `bson:"reviewsCount" json:"reviewsCount"`
	ApprovedAt      time.Time      `bson:"approvedAt,omitempty" json:"approvedAt,omitzero"`
	UpdatedAt       time.Time      `bson:"updatedAt,omitempty" json:"updatedAt,omitzero"`
}

// HasCoordinates reports whether the clinic carries a usable location.
func (c *Clinic) HasCoordinates() bool {
	return c.Lat != nil && c.Lng != nil
}
