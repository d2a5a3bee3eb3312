// Package output owns everything the voyo binary prints and writes: the
// per-item progress lines, run summaries, and the canonized JSON document.
package output

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleOK     = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	styleFail   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	styleSkip   = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	styleBanner = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	styleDim    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Printer writes human-oriented progress to a stream, stderr by default.
// Not safe for concurrent use; the worker loops funnel results through a
// single goroutine before printing.
type Printer struct {
	quiet      bool
	out        io.Writer
	titleWidth int
}

// NewPrinter builds a printer. Quiet suppresses everything except failures.
func NewPrinter(quiet bool) *Printer {
	titleWidth := terminalColumns() - 40
	if titleWidth < 20 {
		titleWidth = 20
	}
	if titleWidth > 60 {
		titleWidth = 60
	}
	return &Printer{quiet: quiet, out: os.Stderr, titleWidth: titleWidth}
}

// Prefix renders the aligned "[i/N] title" item prefix.
func (p *Printer) Prefix(index, total int, title string) string {
	if total <= 0 {
		total = 1
	}
	width := len(strconv.Itoa(total))
	idx := fmt.Sprintf("%*d/%d", width, index, total)
	return fmt.Sprintf("[%s] %-*s", idx, p.titleWidth, truncateText(title, p.titleWidth))
}

// Banner prints a section heading.
func (p *Printer) Banner(text string) {
	if p.quiet {
		return
	}
	fmt.Fprintln(p.out, styleBanner.Render(text))
}

// Log prints a free-form informational line.
func (p *Printer) Log(format string, args ...any) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.out, format+"\n", args...)
}

// ItemOK reports a finished item.
func (p *Printer) ItemOK(prefix, detail string) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.out, "%s %s %s\n", prefix, styleOK.Render("OK"), detail)
}

// ItemFail reports a failed item. Printed even in quiet mode.
func (p *Printer) ItemFail(prefix string, err error) {
	fmt.Fprintf(p.out, "%s %s %v\n", prefix, styleFail.Render("FAIL"), err)
}

// ItemSkip reports a skipped item.
func (p *Printer) ItemSkip(prefix, reason string) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.out, "%s %s %s\n", prefix, styleSkip.Render("SKIP"), styleDim.Render(reason))
}

// Summary prints the run totals line.
func (p *Printer) Summary(ok, failed, skipped int) {
	if p.quiet {
		return
	}
	total := ok + failed + skipped
	fmt.Fprintf(p.out, "Summary: %s %d | %s %d | %s %d | TOTAL %d\n",
		styleOK.Render("OK"), ok,
		styleFail.Render("FAIL"), failed,
		styleSkip.Render("SKIP"), skipped,
		total)
}

// truncateText shortens to max runes. Byte slicing would split multi-byte
// runes, and titles in this corpus are rarely plain ASCII.
func truncateText(text string, max int) string {
	if max <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

func terminalColumns() int {
	if columns := os.Getenv("COLUMNS"); columns != "" {
		if val, err := strconv.Atoi(columns); err == nil && val > 0 {
			return val
		}
	}
	return 100
}

// DistributionLine formats one "LABEL: count (pct%)" row for the statistics
// block.
func DistributionLine(label string, count int, pct float64) string {
	return fmt.Sprintf("  %s: %s (%.1f%%)", label, formatCount(count), pct)
}

// formatCount renders an integer with thousands separators.
func formatCount(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
