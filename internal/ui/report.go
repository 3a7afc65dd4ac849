// Package ui renders the benchmark analysis report for the terminal.
package ui

import (
	"fmt"
	"strings"

	"benchgate/internal/benchmark"
)

const ruleWidth = 60

// Banner renders the report header block.
func Banner(title string) string {
	rule := strings.Repeat("=", ruleWidth)
	return fmt.Sprintf("%s\n%s\n%s", rule, bannerStyle.Render(title), rule)
}

// Section renders a numbered category heading with its underline.
func Section(number int, title string) string {
	heading := fmt.Sprintf("%d. %s", number, title)
	return fmt.Sprintf("%s\n%s", sectionStyle.Render(heading), strings.Repeat("-", ruleWidth))
}

// RenderCategory formats one category report, one line per measured
// benchmark plus any notes. Gated lines follow
// "{status} {name}: {value}ms (threshold: {threshold}ms)".
func RenderCategory(report benchmark.CategoryReport) string {
	var lines []string
	for _, e := range report.Entries {
		if report.Informational {
			lines = append(lines, fmt.Sprintf("  %s: %.2fms", e.Name, e.Millis))
			continue
		}
		lines = append(lines, fmt.Sprintf("  %s %s: %.2fms (threshold: %gms)",
			statusGlyph(e.Passed), e.Name, e.Millis, e.ThresholdMs))
	}
	for _, n := range report.Notes {
		lines = append(lines, "  "+noteStyle.Render(n))
	}
	return strings.Join(lines, "\n")
}

func statusGlyph(passed bool) string {
	if passed {
		return passStyle.Render("✓ PASS")
	}
	return failStyle.Render("✗ FAIL")
}

// RenderSummary formats the final summary block listing the performance
// targets when everything required passed.
func RenderSummary(allPassed bool, th benchmark.Thresholds) string {
	rule := strings.Repeat("=", ruleWidth)

	var b strings.Builder
	b.WriteString(rule + "\n")
	b.WriteString(bannerStyle.Render("Summary") + "\n")
	b.WriteString(rule + "\n")

	if !allPassed {
		b.WriteString(failStyle.Render("✗ Some performance requirements not met") + "\n\n")
		b.WriteString("Please review the results above and optimize accordingly.")
		return b.String()
	}

	b.WriteString(passStyle.Render("✓ All performance requirements met!") + "\n\n")
	b.WriteString("Performance targets:\n")
	b.WriteString(fmt.Sprintf("  ✓ Application startup time: <%gms\n", th.StartupMs))
	b.WriteString(fmt.Sprintf("  ✓ Tool execution latency: <%gms\n", th.LatencyMs))
	b.WriteString(fmt.Sprintf("  • Memory overhead: <%g%% (manual check)", th.MemoryPercent))
	return b.String()
}
