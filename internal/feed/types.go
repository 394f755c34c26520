package feed

import "time"

// espnDateLayout is the timestamp format the scoreboard feed uses
const espnDateLayout = "2006-01-02T15:04Z"

// Scoreboard is the top-level feed response
type Scoreboard struct {
	Events []Event `json:"events"`
}

// Event is one card on the scoreboard, holding its bouts as competitions
type Event struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	ShortName    string        `json:"shortName"`
	Date         string        `json:"date"`
	Competitions []Competition `json:"competitions"`
}

// StartTime parses the event's feed timestamp
func (e Event) StartTime() (time.Time, error) {
	return time.Parse(espnDateLayout, e.Date)
}

// Competition is a single bout inside an event
type Competition struct {
	ID          string       `json:"id"`
	Competitors []Competitor `json:"competitors"`
	Status      Status       `json:"status"`
}

// Completed reports whether the feed considers the bout over
func (c Competition) Completed() bool {
	return c.Status.Type.Completed
}

// Winner returns the competitor the feed flagged as winner, if any
func (c Competition) Winner() (Competitor, bool) {
	for _, comp := range c.Competitors {
		if comp.Winner {
			return comp, true
		}
	}
	return Competitor{}, false
}

// MethodText returns the free-text outcome description. The structured
// result field is more specific ("Submission (rear naked choke)"), so it is
// preferred over the generic status description ("Final").
func (c Competition) MethodText() string {
	if c.Status.Result != nil && c.Status.Result.DisplayName != "" {
		return c.Status.Result.DisplayName
	}
	return c.Status.Type.Description
}

// Competitor is one side of a bout
type Competitor struct {
	ID      string  `json:"id"`
	Winner  bool    `json:"winner"`
	Athlete Athlete `json:"athlete"`
}

// Name returns the competitor's display name
func (c Competitor) Name() string {
	return c.Athlete.DisplayName
}

// Athlete carries the fighter identity fields the matcher needs
type Athlete struct {
	DisplayName string `json:"displayName"`
	ShortName   string `json:"shortName"`
}

// Status is the bout's completion state plus outcome detail
type Status struct {
	Type   StatusType    `json:"type"`
	Result *StatusResult `json:"result,omitempty"`
}

// StatusType carries the coarse completion flag and its description
type StatusType struct {
	Completed   bool   `json:"completed"`
	Description string `json:"description"`
	State       string `json:"state"`
}

// StatusResult is the structured outcome detail, present once a bout ends
type StatusResult struct {
	DisplayName      string `json:"displayName"`
	ShortDisplayName string `json:"shortDisplayName"`
}
