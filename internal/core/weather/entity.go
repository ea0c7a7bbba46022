package weather

import (
	"encoding/json"
	"fmt"
	"time"

	"weatherdesk.app/pkg/errors"
	"weatherdesk.app/pkg/validation"
)

// DefaultLocationName is reported when the provider does not name the location
const DefaultLocationName = "your selected location"

const dateLayout = "2006-01-02"

// Coordinate identifies a point on Earth
type Coordinate struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

// NewCoordinate creates a coordinate, rejecting values outside the valid ranges
func NewCoordinate(latitude, longitude float64) (Coordinate, error) {
	c := Coordinate{Latitude: latitude, Longitude: longitude}
	if err := c.Validate(); err != nil {
		return Coordinate{}, err
	}
	return c, nil
}

// Validate checks latitude is within [-90, 90] and longitude within [-180, 180]
func (c Coordinate) Validate() error {
	if err := validation.Struct(c); err != nil {
		return errors.NewValidationError("invalid coordinate: " + err.Error())
	}
	return nil
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%g, %g)", c.Latitude, c.Longitude)
}

// CurrentConditions represents the weather at a coordinate at query time
type CurrentConditions struct {
	LocationName string  `json:"location_name"`
	Temperature  float64 `json:"temperature"`
	Description  string  `json:"description"`
	IconID       string  `json:"icon_id"`
	Icon         []byte  `json:"icon"`
}

// Summary describes the conditions in one short paragraph
func (c *CurrentConditions) Summary() string {
	return fmt.Sprintf("The current temperature in %s is %.1f degrees Celsius.\nAdditional details: %s.",
		c.LocationName, c.Temperature, c.Description)
}

// Date is a calendar date without a time of day
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in loc
func DateOf(t time.Time, loc *time.Location) Date {
	if loc != nil {
		t = t.In(loc)
	}
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a YYYY-MM-DD date
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t, time.UTC), nil
}

func (d Date) String() string {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Format(dateLayout)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ForecastSample is one timestamped reading of a forecast feed
type ForecastSample struct {
	Timestamp   time.Time
	Temperature float64
	Description string
}

// DailyForecastEntry is the representative reading for one calendar date
type DailyForecastEntry struct {
	Date        Date    `json:"date"`
	Temperature float64 `json:"temperature"`
	Description string  `json:"description"`
}

// ForecastSet holds at most one entry per date, in first-seen order
type ForecastSet struct {
	entries []DailyForecastEntry
	index   map[Date]int
}

// NewForecastSet creates an empty forecast set
func NewForecastSet() *ForecastSet {
	return &ForecastSet{index: make(map[Date]int)}
}

// Add stores entry unless its date is already present and reports whether it was stored
func (f *ForecastSet) Add(entry DailyForecastEntry) bool {
	if _, exists := f.index[entry.Date]; exists {
		return false
	}
	f.index[entry.Date] = len(f.entries)
	f.entries = append(f.entries, entry)
	return true
}

// Get returns the entry for date
func (f *ForecastSet) Get(date Date) (DailyForecastEntry, bool) {
	i, ok := f.index[date]
	if !ok {
		return DailyForecastEntry{}, false
	}
	return f.entries[i], true
}

// Contains reports whether the set has an entry for date
func (f *ForecastSet) Contains(date Date) bool {
	_, ok := f.index[date]
	return ok
}

// Entries returns a copy of the entries in insertion order
func (f *ForecastSet) Entries() []DailyForecastEntry {
	out := make([]DailyForecastEntry, len(f.entries))
	copy(out, f.entries)
	return out
}

func (f *ForecastSet) Len() int {
	return len(f.entries)
}

func (f *ForecastSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Entries())
}

// ReduceForecast keeps the first sample of every date after today, dates taken in loc.
// Later samples of an already seen date are discarded.
func ReduceForecast(samples []ForecastSample, today Date, loc *time.Location) *ForecastSet {
	set := NewForecastSet()
	for _, sample := range samples {
		date := DateOf(sample.Timestamp, loc)
		if date == today {
			continue
		}
		set.Add(DailyForecastEntry{
			Date:        date,
			Temperature: sample.Temperature,
			Description: sample.Description,
		})
	}
	return set
}
