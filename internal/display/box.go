package display

import (
	"fmt"
	"strings"
)

// Line is a single row inside a Box section.
type Line struct {
	Value  string
	Center bool
}

// Section is a bordered group of lines with an optional header.
type Section struct {
	Header string
	Lines  []Line
}

// Box draws sections inside an ASCII frame of the given width.
func Box(sections []Section, width int) string {
	var lines []string
	lines = append(lines, boxBorder(width))
	for i, section := range sections {
		if i > 0 {
			lines = append(lines, boxBorder(width))
		}
		if section.Header != "" {
			lines = append(lines, boxLineCenter(section.Header, width))
		}
		for _, line := range section.Lines {
			if line.Center {
				lines = append(lines, boxLineCenter(line.Value, width))
			} else {
				lines = append(lines, boxLine(line.Value, width))
			}
		}
	}
	lines = append(lines, boxBorder(width))
	return strings.Join(lines, "\n")
}

func boxBorder(width int) string {
	return "+" + strings.Repeat("-", width-2) + "+"
}

func boxLine(text string, width int) string {
	inner := width - 4
	if len(text) > inner {
		text = text[:inner]
	}
	return fmt.Sprintf("| %-*s |", inner, text)
}

func boxLineCenter(text string, width int) string {
	inner := width - 4
	if len(text) > inner {
		text = text[:inner]
	}
	pad := (inner - len(text)) / 2
	return fmt.Sprintf("| %*s%-*s |", pad+len(text), text, inner-pad-len(text), "")
}
