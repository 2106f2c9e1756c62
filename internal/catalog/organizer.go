package catalog

import (
	"sort"

	"constructdocs/internal/model"
)

// VersionGroup is a derived view of all documents sharing one version number,
// split by category. It is recomputed from the flat document set on every
// call and never persisted.
type VersionGroup struct {
	Version   int                                `json:"version"`
	Documents map[model.Category][]model.Document `json:"documents"`
}

// GroupByVersion buckets documents by effective version and category and
// returns one group per distinct version, newest first. Both construction
// categories are always present in a group, as empty slices when nothing
// landed in the bucket. The input is assumed to already be scoped to a single
// construction; ordering is deterministic for a given input set.
func GroupByVersion(docs []model.Document) []VersionGroup {
	byVersion := make(map[int]*VersionGroup)
	for _, d := range docs {
		v := d.EffectiveVersion()
		g, ok := byVersion[v]
		if !ok {
			g = &VersionGroup{Version: v, Documents: emptyBuckets()}
			byVersion[v] = g
		}
		g.Documents[d.Category] = append(g.Documents[d.Category], d)
	}

	groups := make([]VersionGroup, 0, len(byVersion))
	for _, g := range byVersion {
		groups = append(groups, *g)
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Version > groups[j].Version
	})
	return groups
}

func emptyBuckets() map[model.Category][]model.Document {
	buckets := make(map[model.Category][]model.Document)
	for _, c := range model.ConstructionCategories() {
		buckets[c] = []model.Document{}
	}
	return buckets
}

// LatestVersion returns the highest effective version in the set, or 0 when
// the set is empty. "No versions" is a distinct state from "version 1 with
// zero documents"; callers wanting a proposed upload version use NextVersion.
func LatestVersion(docs []model.Document) int {
	latest := 0
	for _, d := range docs {
		if v := d.EffectiveVersion(); v > latest {
			latest = v
		}
	}
	return latest
}

// NextVersion proposes the version for a fresh upload: one past the latest,
// and 1 for a construction with no documents yet.
func NextVersion(docs []model.Document) int {
	return LatestVersion(docs) + 1
}
