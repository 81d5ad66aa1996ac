package devtools

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"smz3/pkg/engine/item"
	"smz3/pkg/game/seed"
)

// SaveSpoilerHTML saves the playthrough of every world as an HTML page in
// dir, colouring items by category, and returns the file name written.
func SaveSpoilerHTML(data *seed.SeedData, dir string) (string, error) {
	timestamp := time.Now().Format("20060102-150405")
	filename := filepath.Join(dir, fmt.Sprintf("spoiler-%s.html", timestamp))

	if err := os.WriteFile(filename, []byte(RenderSpoilerHTML(data)), 0644); err != nil {
		return "", err
	}
	return filename, nil
}

// RenderSpoilerHTML builds the HTML page written by SaveSpoilerHTML.
func RenderSpoilerHTML(data *seed.SeedData) string {
	var page strings.Builder

	page.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>SMZ3 - Spoiler</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .meta {
            color: #888;
            margin-bottom: 20px;
        }
        .world {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            margin: 20px 0;
        }
        .sphere { margin: 10px 0; }
        .sphere-title { color: #00ffff; }
        .location { color: #aaa; }
        .progression { color: #00ff00; font-weight: bold; }
        .dungeon { color: #ffff00; }
        .keycard { color: #4444ff; }
        .junk { color: #666; }
    </style>
</head>
<body>
`)

	page.WriteString(fmt.Sprintf(`    <div class="header">Seed %s</div>`+"\n", html.EscapeString(data.SeedText)))
	page.WriteString(fmt.Sprintf(`    <div class="meta">Hash: %s | GUID: %s</div>`+"\n", data.Hash, data.GUID))

	for _, w := range data.Worlds {
		page.WriteString(`    <div class="world">` + "\n")
		page.WriteString(fmt.Sprintf(`        <div class="header">World %d: %s</div>`+"\n", w.ID, html.EscapeString(w.Player)))
		for i, sphere := range w.Playthrough {
			page.WriteString(`        <div class="sphere">` + "\n")
			page.WriteString(fmt.Sprintf(`            <div class="sphere-title">Sphere %d</div>`+"\n", i+1))
			for _, p := range sphere {
				page.WriteString(fmt.Sprintf(`            <div><span class="location">%s</span>: <span class="%s">%s</span></div>`+"\n",
					html.EscapeString(p.Location), itemClass(p.Item), html.EscapeString(p.Item)))
			}
			page.WriteString(`        </div>` + "\n")
		}
		page.WriteString(`    </div>` + "\n")
	}

	page.WriteString(`</body>
</html>
`)
	return page.String()
}

// itemClass returns the CSS class for an item identifier.
func itemClass(name string) string {
	t, err := item.Parse(name)
	if err != nil {
		return "junk"
	}
	switch {
	case t.Is(item.Dungeon):
		return "dungeon"
	case t.Is(item.Keycard):
		return "keycard"
	case t.Is(item.Progression):
		return "progression"
	default:
		return "junk"
	}
}
