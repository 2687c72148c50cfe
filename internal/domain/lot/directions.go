package lot

import (
	"net/url"
	"strconv"
)

const directionsBaseURL = "https://www.google.com/maps/dir/"

// DirectionsURL builds a driving-directions link from the visitor's current
// location to the lot.
func DirectionsURL(c Coordinates) string {
	q := url.Values{}
	q.Set("api", "1")
	q.Set("origin", "Current Location")
	q.Set("destination", strconv.FormatFloat(c.Latitude, 'f', -1, 64)+","+strconv.FormatFloat(c.Longitude, 'f', -1, 64))
	q.Set("travelmode", "driving")
	return directionsBaseURL + "?" + q.Encode()
}
