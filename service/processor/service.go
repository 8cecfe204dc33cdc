// Package processor summarizes the per-core blocks of cpu info.
//
// Blocks are separated by blank lines. Cores are found by their "processor"
// number, or, on early ARMv6 kernels, by a "Processor" model line. Malformed
// lines are skipped exactly as cpuinfo.ParseLine does.
package processor

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	linuxproc "github.com/c9s/goprocinfo/linux"
	"github.com/thirukguru/pid/model"
	"github.com/thirukguru/pid/service/cpuinfo"
	"go.uber.org/zap"
)

// Keys after cpuinfo.ParseLine has removed inner spaces.
const (
	keyProcessorID   = "processor"
	keyModelName     = "modelname"
	keyLegacyModel   = "Processor"
	keyVendorID      = "vendor_id"
	keyPhysicalID    = "physicalid"
	keyCoreID        = "coreid"
	keyCPUCores      = "cpucores"
	keyClockMHz      = "cpuMHz"
	keyProcessorFlag = "flags"
)

// NewService creates a new processor service. A nil logger disables logging.
func NewService(logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{logger: logger}
}

func (s *service) Summarize(path string) (model.ProcessorSummary, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.ProcessorSummary{}, fmt.Errorf("failed to read processors from %s: %w", path, err)
	}
	defer f.Close()

	lines, err := cpuinfo.ReadLines(f)
	if err != nil {
		return model.ProcessorSummary{}, fmt.Errorf("failed to read processors from %s: %w", path, err)
	}

	summary := Summarize(Collect(lines))
	s.logger.Debug("Summarized processors", zap.Int("cores", summary.Cores), zap.String("model", summary.ModelName))
	return summary, nil
}

// Collect groups lines into blocks and returns one Processor per core.
// The final block is kept even without a trailing blank line.
func Collect(lines []string) *linuxproc.CPUInfo {
	info := &linuxproc.CPUInfo{}
	var block []model.InfoEntry

	flush := func() {
		info.Processors = append(info.Processors, blockProcessors(block)...)
		block = block[:0]
	}

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		key, value, ok := cpuinfo.ParseLine(line)
		if !ok {
			continue
		}
		block = append(block, model.InfoEntry{Key: key, Value: value})
	}
	flush()

	return info
}

// blockProcessors returns the cores described by block. Each "processor"
// line opens a new core; a legacy "Processor" line names the model of every
// core in its block and counts as one core when no number is present.
func blockProcessors(block []model.InfoEntry) []linuxproc.Processor {
	var procs []linuxproc.Processor
	var legacyModel string
	current := func() *linuxproc.Processor {
		if len(procs) == 0 {
			return nil
		}
		return &procs[len(procs)-1]
	}

	for _, e := range block {
		if e.Key == keyProcessorID {
			procs = append(procs, linuxproc.Processor{Id: parseInt(e.Value, -1), PhysicalId: -1, CoreId: -1})
			continue
		}
		if e.Key == keyLegacyModel {
			legacyModel = e.Value
			continue
		}
		p := current()
		if p == nil {
			continue
		}
		switch e.Key {
		case keyModelName:
			p.ModelName = e.Value
		case keyVendorID:
			p.VendorId = e.Value
		case keyPhysicalID:
			p.PhysicalId = parseInt(e.Value, -1)
		case keyCoreID:
			p.CoreId = parseInt(e.Value, -1)
		case keyCPUCores:
			p.Cores = parseInt(e.Value, 0)
		case keyClockMHz:
			p.MHz, _ = strconv.ParseFloat(e.Value, 64)
		case keyProcessorFlag:
			p.Flags = strings.Fields(e.Value)
		}
	}

	if legacyModel == "" {
		return procs
	}
	if len(procs) == 0 {
		return []linuxproc.Processor{{Id: 0, ModelName: legacyModel, PhysicalId: -1, CoreId: -1}}
	}
	for i := range procs {
		if procs[i].ModelName == "" {
			procs[i].ModelName = legacyModel
		}
	}
	return procs
}

func parseInt(v string, def int64) int64 {
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def
	}
	return n
}

// Summarize counts the core blocks and reports the first model name seen.
func Summarize(info *linuxproc.CPUInfo) model.ProcessorSummary {
	var summary model.ProcessorSummary
	if info == nil {
		return summary
	}
	summary.Cores = info.NumCPU()
	for _, p := range info.Processors {
		if p.ModelName != "" {
			summary.ModelName = p.ModelName
			break
		}
	}
	return summary
}
