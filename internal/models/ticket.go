package models

import "fmt"

// Ticket is a single flight record as found in the input document.
type Ticket struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date"`
	DepartureTime string `json:"departure_time"`
	ArrivalDate   string `json:"arrival_date"`
	ArrivalTime   string `json:"arrival_time"`
}

// Route is the origin/destination pair tickets are filtered by.
type Route struct {
	Origin      string
	Destination string
}

func (r Route) String() string {
	return fmt.Sprintf("%s-%s", r.Origin, r.Destination)
}

// Matches reports whether the ticket flies this route.
func (r Route) Matches(t Ticket) bool {
	return t.Origin == r.Origin && t.Destination == r.Destination
}

// Result is the outcome of validating one ticket. Exactly one of Seconds
// (Valid) or Reason (invalid) is meaningful.
type Result struct {
	Number  int
	Valid   bool
	Seconds int64
	Reason  string
}

// ValidResult builds the result of a ticket whose duration was extracted.
func ValidResult(number int, seconds int64) Result {
	return Result{Number: number, Valid: true, Seconds: seconds}
}

// InvalidResult builds the result of a rejected ticket.
func InvalidResult(number int, reason string) Result {
	return Result{Number: number, Reason: reason}
}
