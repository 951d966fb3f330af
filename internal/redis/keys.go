package redisx

import "fmt"

const ns = "skyport:v1"

func KeyFlightDetail(flightID int64) string {
	return fmt.Sprintf("%s:flight:%d:detail", ns, flightID)
}

func KeyFlightSeatMap(flightID int64) string {
	return fmt.Sprintf("%s:flight:%d:seatmap", ns, flightID)
}

func KeyRateLimit(scope, id string) string {
	return fmt.Sprintf("%s:rl:%s:%s", ns, scope, id)
}

func ChannelFlightsChanged() string {
	return ns + ":flights:changed"
}
