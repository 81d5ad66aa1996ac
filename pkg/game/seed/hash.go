package seed

import (
	"fmt"
	"hash/fnv"
	"io"
	"sort"

	"smz3/pkg/game/world"
)

// Hash is the FNV-1a 64 content hash of a filled world, written as 16 hex
// digits. It covers one "id=Item" line per location in id order, then one
// "Region=Reward" line per reward region and one "Region=Medallion" line
// per medallion region, each group sorted by region name.
func Hash(w *world.World) string {
	h := fnv.New64a()
	for _, l := range w.Placements() {
		fmt.Fprintf(h, "%d=%s\n", l.ID, l.Item)
	}
	writeSorted(h, w.RewardRegions(), func(r *world.Region) string { return r.Reward.Reward.String() })
	writeSorted(h, w.MedallionRegions(), func(r *world.Region) string { return r.Medallion.Medallion.String() })
	return fmt.Sprintf("%016x", h.Sum64())
}

func writeSorted(out io.Writer, rs []*world.Region, value func(*world.Region) string) {
	rs = append([]*world.Region(nil), rs...)
	sort.Slice(rs, func(i, j int) bool { return rs[i].Name < rs[j].Name })
	for _, r := range rs {
		fmt.Fprintf(out, "%s=%s\n", r.Name, value(r))
	}
}

// CombinedHash folds the world hashes, in world order, into one value.
func CombinedHash(worlds []WorldData) string {
	h := fnv.New64a()
	for _, w := range worlds {
		fmt.Fprintf(h, "%d:%s\n", w.ID, w.Hash)
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
