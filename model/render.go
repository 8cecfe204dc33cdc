package model

// RenderInput is everything an output mode may draw from.
type RenderInput struct {
	Info     *InfoMap
	Platform PlatformIdentity
	// Processor is only populated for the processor modes.
	Processor *ProcessorSummary
}
