package model

// ProcessorSummary is a per-core view of cpu info.
type ProcessorSummary struct {
	Cores     int
	ModelName string
}
