package matrix

// Quadrant is one cell of the 2x2 TIME grid.
type Quadrant struct {
	Code  string
	Label string
}

var (
	QuadrantInvest    = Quadrant{Code: "I", Label: "Invest"}
	QuadrantMigrate   = Quadrant{Code: "M", Label: "Migrate"}
	QuadrantTolerate  = Quadrant{Code: "T", Label: "Tolerate"}
	QuadrantEliminate = Quadrant{Code: "E", Label: "Eliminate"}
)

// highCutoff is the inclusive "High" threshold on the 1-5 scale. The page's
// inline script implements the same rule; keep the two in sync.
const highCutoff = 4

// Classify maps a technical-fit and functional-fit rating to a TIME
// quadrant. High/high invests, low/high migrates, high/low tolerates,
// low/low eliminates.
func Classify(technicalFit, functionalFit int) Quadrant {
	techHigh := technicalFit >= highCutoff
	funcHigh := functionalFit >= highCutoff
	switch {
	case techHigh && funcHigh:
		return QuadrantInvest
	case !techHigh && funcHigh:
		return QuadrantMigrate
	case techHigh && !funcHigh:
		return QuadrantTolerate
	default:
		return QuadrantEliminate
	}
}
