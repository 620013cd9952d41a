package geo

import "github.com/twpayne/go-polyline"

// PolylineFromCoords encodes coordinates as a google encoded polyline.
func PolylineFromCoords(coords []Coordinate) string {
	buf := make([][]float64, 0, len(coords))
	for _, c := range coords {
		buf = append(buf, []float64{c.Lat, c.Lon})
	}
	return string(polyline.EncodeCoords(buf))
}
