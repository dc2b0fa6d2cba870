// pkg/render/labels.go
package render

import (
	"github.com/dustin/go-humanize"
)

// PowerLabel is the text drawn above a building.
func PowerLabel(power uint32) string {
	return humanize.Comma(int64(power))
}

// TotalPowerLabel is the HUD text for the running power total.
func TotalPowerLabel(total uint32) string {
	return "Total Power: " + humanize.Comma(int64(total))
}
