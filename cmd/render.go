package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/term"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/arcanaland/hearthlodge/internal/card"
	"github.com/arcanaland/hearthlodge/internal/threat"
)

// classColors are the in-game class colours
var classColors = map[card.Class]string{
	card.Neutral: "#A0A0A0",
	card.Druid:   "#FF7D0A",
	card.Hunter:  "#ABD473",
	card.Mage:    "#69CCF0",
	card.Paladin: "#F58CBA",
	card.Priest:  "#FFFFFF",
	card.Rogue:   "#FFF569",
	card.Shaman:  "#0070DE",
	card.Warlock: "#9482C9",
	card.Warrior: "#C79C6E",
}

// className returns "Mage" for MAGE
func className(c card.Class) string {
	return cases.Title(language.English).String(string(c))
}

// classHeading renders the class name in its class colour
func classHeading(c card.Class) string {
	label := className(c)
	if colorize.NoColor {
		return label
	}
	col, err := colorful.Hex(classColors[c])
	if err != nil {
		return label
	}
	r, g, b := col.RGB255()
	return fmt.Sprintf("\x1b[1;38;2;%d;%d;%dm%s\x1b[0m", r, g, b, label)
}

// renderThreats prints each class's answers split into minions, spells and
// weapons
func renderThreats(w io.Writer, target card.Minion, groups threat.Categorized) {
	fmt.Fprintf(w, "%s %s\n", colorize.CyanString("Threats to"), colorize.HiWhiteString("%s", target.String()))
	fmt.Fprintf(w, "%d answers found\n\n", groups.Len())

	width := terminalWidth()
	for _, g := range groups {
		if len(g.Cards) == 0 {
			fmt.Fprintf(w, "%s has no class-specific responses. Check %s class for answers.\n",
				className(g.Class), className(card.Neutral))
			continue
		}

		fmt.Fprintln(w, classHeading(g.Class))
		for _, section := range []struct {
			label string
			kind  card.Kind
		}{
			{"(minions):", card.KindMinion},
			{"(spells):", card.KindSpell},
			{"(weapons):", card.KindWeapon},
		} {
			fmt.Fprintln(w, "  "+colorize.CyanString(section.label))
			for _, c := range g.Cards {
				if c.Kind() != section.kind {
					continue
				}
				for _, line := range wrapText(c.String(), width-6) {
					fmt.Fprintln(w, "     "+line)
				}
			}
		}
	}
}

// renderRecord prints a raw record with sorted keys, followed by its parsed
// form when it is a supported card
func renderRecord(w io.Writer, rec card.Record) {
	keys := make([]string, 0, len(rec))
	for k := range rec {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	width := terminalWidth()
	for _, k := range keys {
		label := fmt.Sprintf("%-12s", k+":")
		lines := wrapText(fmt.Sprint(rec[k]), width-16)
		fmt.Fprintf(w, "  %s %s\n", colorize.CyanString(label), colorize.HiWhiteString("%s", lines[0]))
		for _, line := range lines[1:] {
			fmt.Fprintf(w, "  %s %s\n", strings.Repeat(" ", len(label)), colorize.HiWhiteString("%s", line))
		}
	}

	if c, err := card.Parse(rec); err == nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "  %s %s\n", classHeading(c.Info().Class), c.String())
	}
}

// terminalWidth returns the stdout width, or 80 when it is not a terminal
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// wrapText wraps text to a specified width
func wrapText(text string, width int) []string {
	// Ensure width is reasonable
	if width < 10 {
		width = 40
	}

	var result []string
	var currentLine string
	words := strings.Fields(text)

	if len(words) == 0 {
		return []string{""}
	}

	for _, word := range words {
		if len(currentLine) == 0 {
			currentLine = word
		} else if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			result = append(result, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}
