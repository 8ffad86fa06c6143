package signature

import (
	"fmt"
	"strings"
)

// Mode selects how the signature is produced.
type Mode int

const (
	Draw Mode = iota
	Image
	Type
)

// AllModes lists every mode in default tab order.
var AllModes = []Mode{Draw, Image, Type}

func (m Mode) String() string {
	switch m {
	case Draw:
		return "draw"
	case Image:
		return "image"
	case Type:
		return "type"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// Title is the tab label.
func (m Mode) Title() string {
	switch m {
	case Draw:
		return "Draw"
	case Image:
		return "Image"
	case Type:
		return "Type"
	}
	return m.String()
}

func (m Mode) valid() bool {
	return m >= Draw && m <= Type
}

// ParseMode accepts a mode name or title, case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "draw":
		return Draw, nil
	case "image":
		return Image, nil
	case "type":
		return Type, nil
	}
	return 0, fmt.Errorf("parse mode %q: %w", s, ErrInvalidTabs)
}

// ParseModes parses a comma-separated list such as "draw,type".
func ParseModes(s string) ([]Mode, error) {
	var modes []Mode
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		m, err := ParseMode(part)
		if err != nil {
			return nil, err
		}
		modes = append(modes, m)
	}
	return modes, nil
}
