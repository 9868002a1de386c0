package tickets

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/thomas-vilte/flighttime/internal/models"
	"github.com/thomas-vilte/flighttime/internal/timecalc"
)

var requiredFields = []string{
	"origin",
	"destination",
	"departure_date",
	"departure_time",
	"arrival_date",
	"arrival_time",
}

// Validate checks one raw record against route and extracts its duration.
// number is the 1-based position of the record in the document. The result
// is valid even when the duration is negative; callers decide what to do
// with those.
func Validate(raw json.RawMessage, number int, route models.Route) models.Result {
	ticket, err := Decode(raw)
	if err != nil {
		return models.InvalidResult(number, err.Error())
	}

	if !route.Matches(ticket) {
		return models.InvalidResult(number, fmt.Sprintf("route %s-%s does not match %s",
			ticket.Origin, ticket.Destination, route))
	}

	seconds, err := timecalc.Between(
		timecalc.Period(ticket.DepartureDate, ticket.DepartureTime),
		timecalc.Period(ticket.ArrivalDate, ticket.ArrivalTime),
	)
	if err != nil {
		return models.InvalidResult(number, err.Error())
	}

	return models.ValidResult(number, seconds)
}

// Decode reads a ticket record, requiring every field to be present and to
// hold a JSON string.
func Decode(raw json.RawMessage) (models.Ticket, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return models.Ticket{}, fmt.Errorf("record is not a JSON object")
	}

	values := make(map[string]string, len(requiredFields))
	for _, name := range requiredFields {
		value, ok := fields[name]
		if !ok {
			return models.Ticket{}, fmt.Errorf("missing field %q", name)
		}

		value = bytes.TrimSpace(value)
		if len(value) == 0 || value[0] != '"' {
			return models.Ticket{}, fmt.Errorf("field %q is not a string", name)
		}

		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			return models.Ticket{}, fmt.Errorf("field %q: %w", name, err)
		}
		values[name] = s
	}

	return models.Ticket{
		Origin:        values["origin"],
		Destination:   values["destination"],
		DepartureDate: values["departure_date"],
		DepartureTime: values["departure_time"],
		ArrivalDate:   values["arrival_date"],
		ArrivalTime:   values["arrival_time"],
	}, nil
}
