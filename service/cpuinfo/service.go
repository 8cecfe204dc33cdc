// Package cpuinfo parses the line-oriented "key: value" processor description
// found in /proc/cpuinfo.
package cpuinfo

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/thirukguru/pid/model"
	"go.uber.org/zap"
)

// NewService creates a new cpu info service. A nil logger disables logging.
func NewService(logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{logger: logger}
}

// ResolvePath picks the cpu info path: explicit value, then PathEnv, then DefaultPath.
func ResolvePath(p string) string {
	if p = strings.TrimSpace(p); p != "" {
		return p
	}
	if env := strings.TrimSpace(os.Getenv(PathEnv)); env != "" {
		return env
	}
	return DefaultPath
}

func (s *service) Load(path string) (*model.InfoMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	info, err := s.Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	s.logger.Debug("Loaded cpu info", zap.String("path", path), zap.Int("keys", info.Len()))
	return info, nil
}

func (s *service) Read(r io.Reader) (*model.InfoMap, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return nil, err
	}
	return s.Parse(lines), nil
}

// ReadLines returns every line of r without its line terminator. Lines have
// no length limit.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, strings.TrimRight(line, "\r\n"))
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func (s *service) Parse(lines []string) *model.InfoMap {
	info := model.NewInfoMap()
	for _, line := range lines {
		key, value, ok := ParseLine(line)
		if !ok {
			continue
		}
		if info.Set(key, value) {
			s.logger.Debug("Duplicate cpu info key, keeping last value", zap.String("key", key))
		}
	}
	return info
}

// Parse builds an InfoMap from lines without logging.
func Parse(lines []string) *model.InfoMap {
	return (&service{logger: zap.NewNop()}).Parse(lines)
}

// ParseLine splits a "key: value" line. Lines that are empty, have no colon,
// have more than one colon or an empty key are rejected. Spaces are removed
// from the key; the value is trimmed.
func ParseLine(line string) (key, value string, ok bool) {
	if line == "" {
		return "", "", false
	}
	parts := strings.Split(line, ":")
	if len(parts) != 2 {
		return "", "", false
	}
	key = strings.TrimSpace(strings.ReplaceAll(parts[0], " ", ""))
	if key == "" {
		return "", "", false
	}
	return key, strings.TrimSpace(parts[1]), true
}
