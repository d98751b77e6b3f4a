package directions

import (
	"html"
	"regexp"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/ternarybob/arbor"
)

var (
	tagRegex   = regexp.MustCompile(`<[^>]*>`)
	spaceRegex = regexp.MustCompile(`\s+`)
)

// InstructionConverter turns provider HTML step instructions into one line of text
type InstructionConverter struct {
	converter *md.Converter
	logger    arbor.ILogger
}

// NewInstructionConverter creates a converter
func NewInstructionConverter(logger arbor.ILogger) *InstructionConverter {
	return &InstructionConverter{
		converter: md.NewConverter("", true, nil),
		logger:    logger,
	}
}

// Convert returns markdown text with whitespace collapsed. Conversion failures
// and empty output fall back to tag stripping.
func (c *InstructionConverter) Convert(instruction string) string {
	if strings.TrimSpace(instruction) == "" {
		return ""
	}

	converted, err := c.converter.ConvertString(instruction)
	if err != nil {
		c.logger.Warn().Err(err).Msg("Instruction conversion failed, stripping tags")
		return stripTags(instruction)
	}

	converted = collapse(converted)
	if converted == "" {
		return stripTags(instruction)
	}
	return converted
}

func stripTags(s string) string {
	return collapse(html.UnescapeString(tagRegex.ReplaceAllString(s, " ")))
}

func collapse(s string) string {
	return strings.TrimSpace(spaceRegex.ReplaceAllString(s, " "))
}
