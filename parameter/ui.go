package parameter

// Logging
const (
	LogDir      = "logs"
	LogFileName = "dungeon.log"

	// LogMaxSize triggers rotation of the debug log
	LogMaxSize = 10 * 1024 * 1024
)

// Results browser
const (
	// BrowserStatusRows is the number of rows reserved below the dungeon
	BrowserStatusRows = 2
)

// Fitness plot
const (
	PlotWidthInches  = 6
	PlotHeightInches = 4
)
