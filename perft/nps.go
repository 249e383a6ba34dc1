package perft

import "fmt"

// Nps is a nodes-per-second throughput figure.
type Nps float64

// String renders the throughput scaled to the nearest thousands magnitude,
// from plain n/s up to En/s.
func (n Nps) String() string {
	value := float64(n)
	for _, unit := range [...]string{"n/s", "Kn/s", "Mn/s", "Gn/s", "Tn/s", "Pn/s"} {
		if value < 1000 {
			return fmt.Sprintf("%.2f %s", value, unit)
		}
		value /= 1000
	}
	return fmt.Sprintf("%.2f En/s", value)
}
