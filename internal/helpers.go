package internal

import "time"

const (
	formatDDMMYYYYHHMM = "02/01/2006 15:04"
)

var saoPaulo = loadLocation("America/Sao_Paulo")

func loadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return location
}

// Format renders a timestamp the way Brazilian users read it, in Brasília time.
func Format(date time.Time) string {
	return date.In(saoPaulo).Format(formatDDMMYYYYHHMM)
}
