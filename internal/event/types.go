// internal/event/types.go
package event

const (
	BuildModeEntered  EventType = "BuildModeEntered"  // Data: defs.BuildingTemplate
	BuildModeExited   EventType = "BuildModeExited"   // Data: bool, true when a building was placed
	BuildingPlaced    EventType = "BuildingPlaced"    // Data: *city.Building
	PlacementRejected EventType = "PlacementRejected" // Data: grid.Position, commit lost a race for the cell
	TotalPowerChanged EventType = "TotalPowerChanged" // Data: uint32, the new total
)
