package tui

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"smz3/pkg/engine/item"
	"smz3/pkg/engine/terminal"
	"smz3/pkg/game/renderer"
	"smz3/pkg/game/seed"
)

// Icons for the playthrough listing
const (
	IconSphere  = "◆"
	IconItem    = "·"
	IconReward  = "◎"
	IconWarning = "▲"
)

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since we intentionally look up translation keys dynamically from markup.
var dynamicGet = gotext.Get

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out   io.Writer
	width int

	colorHeading     color.Style
	colorLocation    color.Style
	colorArea        color.Style
	colorProgression color.Style
	colorDungeon     color.Style
	colorKeycard     color.Style
	colorJunk        color.Style
	colorReward      color.Style
	colorDenied      color.Style
	colorSubtle      color.Style

	regexpStringFunctions *regexp.Regexp
}

// New creates a new TUI renderer writing to out. A nil out means stdout.
// Colour is switched off when out is not a terminal.
func New(out io.Writer) *TUIRenderer {
	if out == nil {
		out = os.Stdout
	}
	return &TUIRenderer{out: out}
}

// Init initializes the TUI renderer (colors, width)
func (t *TUIRenderer) Init() {
	if !terminal.IsTerminal(t.out) {
		color.Disable()
	}
	t.width, _ = terminal.GetSize(t.out)

	t.colorHeading = color.Style{color.FgMagenta, color.OpBold}
	t.colorLocation = color.Style{color.FgBlue}
	t.colorArea = color.Style{color.FgGray}
	t.colorProgression = color.Style{color.FgGreen, color.OpBold}
	t.colorDungeon = color.Style{color.FgYellow}
	t.colorKeycard = color.Style{color.FgCyan}
	t.colorJunk = color.Style{color.FgGray}
	t.colorReward = color.Style{color.FgMagenta}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}

	t.regexpStringFunctions = regexp.MustCompile(`([A-Z_]*){([^{}]+)}`)
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleHeading:
		return t.colorHeading.Sprint(text)
	case renderer.StyleLocation:
		return t.colorLocation.Sprint(text)
	case renderer.StyleArea:
		return t.colorArea.Sprint(text)
	case renderer.StyleProgression:
		return t.colorProgression.Sprint(text)
	case renderer.StyleDungeon:
		return t.colorDungeon.Sprint(text)
	case renderer.StyleKeycard:
		return t.colorKeycard.Sprint(text)
	case renderer.StyleJunk:
		return t.colorJunk.Sprint(text)
	case renderer.StyleReward:
		return t.colorReward.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	default:
		return text
	}
}

// itemStyle picks the style for an item identifier by its category
func itemStyle(name string) renderer.TextStyle {
	it, err := item.Parse(name)
	switch {
	case err != nil:
		return renderer.StyleJunk
	case it.Is(item.Dungeon):
		return renderer.StyleDungeon
	case it.Is(item.Keycard):
		return renderer.StyleKeycard
	case it.Is(item.Progression):
		return renderer.StyleProgression
	default:
		return renderer.StyleJunk
	}
}

// FormatText formats a message with markup: GT{KEY} translates, ITEM{Name}
// shows an item in its category colour, LOC{Name} a location, AREA{KEY} a
// translated area and DENIED{text} an error.
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	ret := fmt.Sprintf(msg, args...)

	matches := t.regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "ITEM":
			val = t.StyleText(operand, itemStyle(operand))
		case "LOC":
			val = t.colorLocation.Sprint(operand)
		case "AREA":
			val = t.colorArea.Sprint(dynamicGet(operand))
		case "DENIED":
			val = t.colorDenied.Sprint(operand)
		default:
			val = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.out, msg)
}

// RenderSeed prints the seed header, the reward and medallion rolls of
// every world and the progression items of each playthrough sphere.
func (t *TUIRenderer) RenderSeed(data *seed.SeedData) {
	t.printRule(fmt.Sprintf(dynamicGet("SPOILER_TITLE"), data.SeedText))
	fmt.Fprintf(t.out, "%s %s\n", t.colorSubtle.Sprint(dynamicGet("SPOILER_HASH")), data.Hash)

	for _, w := range data.Worlds {
		fmt.Fprintln(t.out)
		t.printRule(fmt.Sprintf(dynamicGet("SPOILER_WORLD"), w.ID, w.Player))
		t.printAssignments(dynamicGet("SPOILER_REWARDS"), w.Rewards)
		t.printAssignments(dynamicGet("SPOILER_MEDALLIONS"), w.Medallions)

		fmt.Fprintln(t.out, t.colorHeading.Sprint(dynamicGet("SPOILER_PLAYTHROUGH")))
		for i, sphere := range w.Playthrough {
			var lines []string
			for _, p := range sphere {
				if itemStyle(p.Item) == renderer.StyleJunk {
					continue
				}
				lines = append(lines, t.FormatText("    %s ITEM{%s} @ LOC{%s}", IconItem, p.Item, p.Location))
			}
			if len(lines) == 0 {
				continue
			}
			fmt.Fprintf(t.out, "  %s %s\n", IconSphere, fmt.Sprintf(dynamicGet("SPOILER_SPHERE"), i+1))
			for _, line := range lines {
				fmt.Fprintln(t.out, line)
			}
		}
	}
}

// printAssignments prints a sorted region → value list under a heading
func (t *TUIRenderer) printAssignments(heading string, m map[string]string) {
	if len(m) == 0 {
		return
	}
	fmt.Fprintln(t.out, t.colorHeading.Sprint(heading))
	regions := make([]string, 0, len(m))
	for r := range m {
		regions = append(regions, r)
	}
	sort.Strings(regions)
	for _, r := range regions {
		fmt.Fprintf(t.out, "  %s %s: %s\n", IconReward, t.colorLocation.Sprint(r), t.colorReward.Sprint(m[r]))
	}
}

// printRule prints a horizontal line spanning the terminal width with a
// label in the middle
func (t *TUIRenderer) printRule(label string) {
	label = " " + label + " "
	labelLen := len([]rune(label))
	width := t.width
	if width <= 0 {
		width = terminal.DefaultWidth
	}
	sideLen := (width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}
	rightLen := width - sideLen - labelLen
	if rightLen < 1 {
		rightLen = 1
	}

	fmt.Fprintln(t.out, t.colorSubtle.Sprint(strings.Repeat("─", sideLen)+label+strings.Repeat("─", rightLen)))
}

// Warn prints a highlighted warning line
func (t *TUIRenderer) Warn(msg string) {
	fmt.Fprintf(t.out, "%s %s\n", t.colorDenied.Sprint(IconWarning), msg)
}
