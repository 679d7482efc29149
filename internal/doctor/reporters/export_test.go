package reporters

// Export unexported functions for external tests.
var (
	PadToWidth       = padToWidth
	ToCellWidths     = toCellWidths
	CalcColumnWidths = calcColumnWidths
	BuildResultRow   = buildResultRow
	SeverityRank     = severityRank
	ShortenPath      = shortenPath
	DimBorders       = dimBorders
	GroupByCategory  = groupByCategory
)

// SetHomeDir overrides the homeDir package variable for testing shortenPath.
func SetHomeDir(dir string) {
	homeDir = dir
}
