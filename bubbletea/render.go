package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/southpawriter02/glance"
)

// minGutterWidth is the minimum width of the line number column.
const minGutterWidth = 4

// renderConfig holds the rendering parameters for renderDiff.
type renderConfig struct {
	diff      *glance.Diff
	styles    glance.Styles
	renderer  *lipgloss.Renderer
	width     int
	detector  glance.LanguageDetector
	tokenizer glance.Tokenizer
	differ    glance.WordDiffer
}

// renderDiff converts a diff into a styled side-by-side string. If
// renderer is nil, the default lipgloss renderer is used.
func renderDiff(cfg renderConfig) string {
	diff := cfg.diff
	if diff == nil || len(diff.Files) == 0 {
		return ""
	}
	if cfg.renderer == nil {
		cfg.renderer = lipgloss.DefaultRenderer()
	}
	if cfg.width <= 0 {
		cfg.width = 80
	}

	gutterWidth := calculateGutterWidth(diff)
	var sb strings.Builder

	for i, file := range diff.Files {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(renderFileHeader(file, cfg))
		sb.WriteString("\n")

		if file.IsBinary {
			sb.WriteString(styleFromColorPair(cfg.styles.Context, cfg.renderer).Render("  (binary file)"))
			sb.WriteString("\n")
			continue
		}

		language := ""
		if cfg.detector != nil {
			language = cfg.detector.DetectFromPath(filePath(file))
		}

		for _, hunk := range file.Hunks {
			sb.WriteString(renderHunkHeader(hunk, cfg))
			sb.WriteString("\n")
			for _, pair := range glance.BuildRowPairs(hunk, cfg.differ) {
				sb.WriteString(renderRowPair(pair, language, gutterWidth, cfg))
				sb.WriteString("\n")
			}
		}
	}
	return sb.String()
}

// renderRowPair renders one visual row: original half, divider, proposed
// half.
func renderRowPair(pair glance.RowPair, language string, gutterWidth int, cfg renderConfig) string {
	halfWidth := (cfg.width - 1) / 2
	divider := styleFromColorPair(cfg.styles.LineNumber, cfg.renderer).Render("│")
	return renderRowHalf(pair.Original, language, gutterWidth, halfWidth, cfg) +
		divider +
		renderRowHalf(pair.Proposed, language, gutterWidth, halfWidth, cfg)
}

// renderRowHalf renders one side of a row padded to width.
func renderRowHalf(row glance.Row, language string, gutterWidth, width int, cfg renderConfig) string {
	base := styleFromColorPair(cfg.styles.StyleClass(row.ChangeClass()), cfg.renderer)
	gutterStyle := styleFromColorPair(cfg.styles.LineNumber, cfg.renderer)

	gutter := gutterStyle.Render(fmt.Sprintf("%*s ", gutterWidth, row.LineNumberDisplay()))
	bodyWidth := width - gutterWidth - 3
	if bodyWidth < 1 {
		bodyWidth = 1
	}

	if row.IsPlaceholder {
		return gutter + base.Render(padLine("", bodyWidth+2))
	}

	prefix := row.Prefix() + " "
	// Parsed content keeps its trailing newline; rendered verbatim it
	// would end the terminal line before the divider.
	content := strings.TrimSuffix(row.Content, "\n")
	if len(content) > bodyWidth {
		content = content[:bodyWidth]
	}

	var body string
	switch {
	case row.HasSegments():
		body = renderSegments(row, base, cfg)
	case row.Type == glance.LineUnchanged && cfg.tokenizer != nil && language != "":
		body = renderTokens(cfg.tokenizer.Tokenize(language, content), base, cfg)
	default:
		body = base.Render(content)
	}

	pad := bodyWidth - len(content)
	if row.HasSegments() {
		pad = bodyWidth - segmentsLen(row.Segments)
	}
	if pad < 0 {
		pad = 0
	}
	return gutter + base.Render(prefix) + body + base.Render(strings.Repeat(" ", pad))
}

// renderSegments renders a modified row's inline segments, highlighting
// the changed ones.
func renderSegments(row glance.Row, base lipgloss.Style, cfg renderConfig) string {
	highlight := cfg.styles.AddedHighlight
	if row.Side == glance.SideOriginal {
		highlight = cfg.styles.RemovedHighlight
	}
	highlightStyle := styleFromColorPair(highlight, cfg.renderer)

	var sb strings.Builder
	for _, seg := range row.Segments {
		if seg.Kind == glance.SegmentUnchanged {
			sb.WriteString(base.Render(seg.Text))
			continue
		}
		sb.WriteString(highlightStyle.Render(seg.Text))
	}
	return sb.String()
}

// renderTokens renders syntax-highlighted tokens over the row's base
// background.
func renderTokens(tokens []glance.Token, base lipgloss.Style, cfg renderConfig) string {
	var sb strings.Builder
	for _, token := range tokens {
		style := base
		if token.Style.Foreground != "" {
			style = style.Foreground(lipgloss.Color(token.Style.Foreground))
		}
		if token.Style.Bold {
			style = style.Bold(true)
		}
		sb.WriteString(style.Render(token.Text))
	}
	return sb.String()
}

func renderFileHeader(file glance.FileDiff, cfg renderConfig) string {
	added, removed := file.Stats()
	header := fmt.Sprintf(" %s  +%d -%d", filePath(file), added, removed)
	return styleFromColorPair(cfg.styles.FileHeader, cfg.renderer).Render(padLine(header, cfg.width))
}

func renderHunkHeader(hunk glance.Hunk, cfg renderConfig) string {
	header := fmt.Sprintf("@@ -%d,%d +%d,%d @@", hunk.OldStart, hunk.OldCount, hunk.NewStart, hunk.NewCount)
	if hunk.Section != "" {
		header += " " + hunk.Section
	}
	return styleFromColorPair(cfg.styles.HunkHeader, cfg.renderer).Render(padLine(header, cfg.width))
}

// filePath returns the display path of a file, preferring the new path.
func filePath(file glance.FileDiff) string {
	path := file.NewPath
	if path == "" {
		path = file.OldPath
	}
	return strings.TrimPrefix(strings.TrimPrefix(path, "a/"), "b/")
}

// calculateGutterWidth returns the digit width needed for the largest
// line number in the diff, at least minGutterWidth.
func calculateGutterWidth(diff *glance.Diff) int {
	maxLineNum := 0
	for _, file := range diff.Files {
		for _, hunk := range file.Hunks {
			for _, line := range hunk.Lines {
				if line.OriginalLine > maxLineNum {
					maxLineNum = line.OriginalLine
				}
				if line.ProposedLine > maxLineNum {
					maxLineNum = line.ProposedLine
				}
			}
		}
	}
	width := digitWidth(maxLineNum)
	if width < minGutterWidth {
		return minGutterWidth
	}
	return width
}

func digitWidth(n int) int {
	if n <= 0 {
		return 1
	}
	width := 0
	for n > 0 {
		width++
		n /= 10
	}
	return width
}

func segmentsLen(segments []glance.InlineSegment) int {
	total := 0
	for _, seg := range segments {
		total += len(seg.Text)
	}
	return total
}

func padLine(line string, width int) string {
	if len(line) >= width {
		return line
	}
	return line + strings.Repeat(" ", width-len(line))
}

// styleFromColorPair creates a lipgloss style from a ColorPair using the
// given renderer.
func styleFromColorPair(cp glance.ColorPair, renderer *lipgloss.Renderer) lipgloss.Style {
	style := renderer.NewStyle()
	if cp.Foreground != "" {
		style = style.Foreground(lipgloss.Color(cp.Foreground))
	}
	if cp.Background != "" {
		style = style.Background(lipgloss.Color(cp.Background))
	}
	return style
}

// rawDiff renders a diff back into plain unified text, suitable for the
// clipboard.
func rawDiff(diff *glance.Diff) string {
	if diff == nil {
		return ""
	}
	var sb strings.Builder
	for _, file := range diff.Files {
		fmt.Fprintf(&sb, "--- %s\n+++ %s\n", file.OldPath, file.NewPath)
		for _, hunk := range file.Hunks {
			fmt.Fprintf(&sb, "@@ -%d,%d +%d,%d @@", hunk.OldStart, hunk.OldCount, hunk.NewStart, hunk.NewCount)
			if hunk.Section != "" {
				sb.WriteString(" " + hunk.Section)
			}
			sb.WriteString("\n")
			for _, line := range hunk.Lines {
				switch line.Type {
				case glance.LineAdded:
					sb.WriteString("+")
				case glance.LineRemoved:
					sb.WriteString("-")
				default:
					sb.WriteString(" ")
				}
				sb.WriteString(strings.TrimSuffix(line.Content, "\n"))
				sb.WriteString("\n")
			}
		}
	}
	return sb.String()
}
