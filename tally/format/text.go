package format

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/viant/tally-mcp/tally/model"
)

const (
	// NotAvailable replaces any missing optional value.
	NotAvailable = "N/A"
	// DescriptionLimit bounds free text in list views.
	DescriptionLimit = 200

	noDescription = "No description available"
	noBio         = "No bio available"
	noStatement   = "No statement available"
	separator     = "---"
	timeLayout    = "2006-01-02 15:04:05 UTC"
)

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func orNA(value string) string {
	return orDefault(value, NotAvailable)
}

func yesNo(value bool) string {
	if value {
		return "Yes"
	}
	return "No"
}

func joinOrNA(values []string) string {
	if len(values) == 0 {
		return NotAvailable
	}
	return strings.Join(values, ", ")
}

// truncate shortens text to limit runes, appending an ellipsis when cut.
func truncate(text string, limit int) string {
	if utf8.RuneCountInString(text) <= limit {
		return text
	}
	runes := []rune(text)
	return string(runes[:limit]) + "..."
}

// timestamp renders an upstream ISO-8601 value in UTC. Unparseable values are
// returned verbatim.
func timestamp(value string) string {
	if value == "" {
		return NotAvailable
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC().Format(timeLayout)
		}
	}
	return value
}

func timeBlock(block *model.TimeBlock) string {
	if block == nil {
		return NotAvailable
	}
	return timestamp(block.Timestamp)
}

func bigOrNA(value model.BigInt) string {
	if !value.IsSet() {
		return NotAvailable
	}
	return value.String()
}

func organization(brief model.OrganizationBrief) string {
	if brief.Name == "" && brief.Slug == "" {
		return NotAvailable
	}
	return fmt.Sprintf("%s (%s)", orNA(brief.Name), orNA(brief.Slug))
}

func voteStats(stats []model.VoteStat) string {
	if len(stats) == 0 {
		return "Vote Stats: " + NotAvailable
	}
	lines := make([]string, 0, len(stats)+1)
	lines = append(lines, "Vote Stats:")
	for _, stat := range stats {
		lines = append(lines, fmt.Sprintf("  %s: %.2f%% (%s votes from %d voters)", stat.Type, stat.Percent, bigOrNA(stat.VotesCount), stat.VotersCount))
	}
	return strings.Join(lines, "\n")
}

// list renders the header followed by item blocks, each ending with the separator.
func list(resource string, count int, block func(i int, b *strings.Builder)) string {
	header := fmt.Sprintf("Found %d %s:\n\n", count, resource)
	blocks := make([]string, 0, count)
	for i := 0; i < count; i++ {
		var builder strings.Builder
		block(i, &builder)
		builder.WriteString(separator)
		blocks = append(blocks, builder.String())
	}
	return header + strings.Join(blocks, "\n\n")
}

func line(b *strings.Builder, format string, args ...interface{}) {
	fmt.Fprintf(b, format, args...)
	b.WriteByte('\n')
}
