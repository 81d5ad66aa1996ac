// Package devtools provides developer tools for inspecting generated seeds.
package devtools

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"smz3/pkg/game/seed"
)

const spoilerFilename = "spoiler.txt"

// DumpSpoilerToFile writes the spoiler log of data to spoiler.txt in dir
// and returns the absolute path written.
func DumpSpoilerToFile(data *seed.SeedData, dir string) (string, error) {
	absPath, err := filepath.Abs(filepath.Join(dir, spoilerFilename))
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteSpoiler(f, data); err != nil {
		return absPath, err
	}
	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}

// WriteSpoiler writes a full spoiler log: metadata, per world reward,
// medallion and boss rolls, every placement grouped by region, and the
// playthrough. Format is human- and LLM-readable (sections, key: value,
// consistent structure).
func WriteSpoiler(out io.Writer, data *seed.SeedData) error {
	f := bufio.NewWriter(out)

	fmt.Fprintln(f, "=== SPOILER LOG ===")
	fmt.Fprintln(f, "")
	fmt.Fprintln(f, "--- Metadata ---")
	fmt.Fprintf(f, "guid: %s\n", data.GUID)
	fmt.Fprintf(f, "seed: %q\n", data.SeedText)
	fmt.Fprintf(f, "seed_value: %d\n", data.Seed)
	fmt.Fprintf(f, "hash: %s\n", data.Hash)
	fmt.Fprintf(f, "worlds: %d\n", len(data.Worlds))
	fmt.Fprintf(f, "sm_logic: %s\n", data.Config.SMLogic)
	fmt.Fprintf(f, "z3_logic: %s\n", data.Config.Z3Logic)
	fmt.Fprintf(f, "keysanity: %s\n", data.Config.Keysanity)
	fmt.Fprintf(f, "placement_rule: %s\n", data.Config.PlacementRule)
	fmt.Fprintf(f, "ganon_crystals: %d\n", data.Config.GanonCrystals)
	fmt.Fprintf(f, "tourian_bosses: %d\n", data.Config.TourianBosses)
	fmt.Fprintln(f, "")

	for _, w := range data.Worlds {
		fmt.Fprintf(f, "--- World %d (%s) ---\n", w.ID, w.Player)
		fmt.Fprintf(f, "hash: %s\n", w.Hash)
		fmt.Fprintf(f, "attempts: %d\n", w.Attempts)
		fmt.Fprintln(f, "")

		writeAssignments(f, "Rewards:", w.Rewards)
		writeAssignments(f, "Medallions:", w.Medallions)
		writeAssignments(f, "Bosses:", w.Bosses)

		fmt.Fprintln(f, "Placements (by region):")
		byRegion := map[string][]seed.Placement{}
		for _, p := range w.Placements {
			byRegion[p.Region] = append(byRegion[p.Region], p)
		}
		for _, region := range sortedKeys(byRegion) {
			fmt.Fprintf(f, "  region: %q\n", region)
			for _, p := range byRegion[region] {
				fmt.Fprintf(f, "    id: %d location: %q item: %s\n", p.ID, p.Location, p.Item)
			}
		}
		fmt.Fprintln(f, "")

		fmt.Fprintln(f, "Playthrough:")
		if len(w.Playthrough) == 0 {
			fmt.Fprintln(f, "  (none)")
		}
		for i, sphere := range w.Playthrough {
			fmt.Fprintf(f, "  sphere: %d size: %d\n", i+1, len(sphere))
			for _, p := range sphere {
				fmt.Fprintf(f, "    location: %q item: %s\n", p.Location, p.Item)
			}
		}
		fmt.Fprintln(f, "")
	}

	fmt.Fprintln(f, "=== END SPOILER LOG ===")
	return f.Flush()
}

func writeAssignments(f io.Writer, heading string, m map[string]string) {
	fmt.Fprintln(f, heading)
	if len(m) == 0 {
		fmt.Fprintln(f, "  (none)")
	}
	for _, k := range sortedKeys(m) {
		fmt.Fprintf(f, "  region: %q value: %s\n", k, m[k])
	}
	fmt.Fprintln(f, "")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
