package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"constructdocs/internal/model"
)

func doc(id string, c model.Category, version int) model.Document {
	return model.Document{ID: id, Category: c, Version: version, ConstructionID: "c-1"}
}

func TestGroupByVersion(t *testing.T) {
	t.Run("orders groups newest first and splits by category", func(t *testing.T) {
		docs := []model.Document{
			doc("a", model.CategoryWorkingDocumentation, 2),
			doc("b", model.CategoryProjectDocumentation, 2),
			doc("c", model.CategoryWorkingDocumentation, 1),
		}

		groups := GroupByVersion(docs)

		assert.Len(t, groups, 2)
		assert.Equal(t, 2, groups[0].Version)
		assert.Equal(t, 1, groups[1].Version)

		assert.Len(t, groups[0].Documents[model.CategoryWorkingDocumentation], 1)
		assert.Len(t, groups[0].Documents[model.CategoryProjectDocumentation], 1)
		assert.Len(t, groups[1].Documents[model.CategoryWorkingDocumentation], 1)

		// Empty bucket is a non-nil empty slice, never null in JSON output.
		assert.NotNil(t, groups[1].Documents[model.CategoryProjectDocumentation])
		assert.Empty(t, groups[1].Documents[model.CategoryProjectDocumentation])
	})

	t.Run("no document lost or duplicated", func(t *testing.T) {
		docs := []model.Document{
			doc("a", model.CategoryWorkingDocumentation, 3),
			doc("b", model.CategoryWorkingDocumentation, 3),
			doc("c", model.CategoryProjectDocumentation, 1),
			doc("d", model.CategoryProjectDocumentation, 7),
			doc("e", model.CategoryWorkingDocumentation, 1),
		}

		groups := GroupByVersion(docs)

		seen := map[string]int{}
		for _, g := range groups {
			for _, list := range g.Documents {
				for _, d := range list {
					seen[d.ID]++
				}
			}
		}
		assert.Len(t, seen, len(docs))
		for id, n := range seen {
			assert.Equalf(t, 1, n, "document %s appears %d times", id, n)
		}
	})

	t.Run("missing version is treated as version 1", func(t *testing.T) {
		docs := []model.Document{
			doc("legacy", model.CategoryWorkingDocumentation, 0),
			doc("v1", model.CategoryProjectDocumentation, 1),
		}

		groups := GroupByVersion(docs)

		assert.Len(t, groups, 1)
		assert.Equal(t, 1, groups[0].Version)
		assert.Len(t, groups[0].Documents[model.CategoryWorkingDocumentation], 1)
		assert.Len(t, groups[0].Documents[model.CategoryProjectDocumentation], 1)
	})

	t.Run("gaps in the version sequence are preserved", func(t *testing.T) {
		docs := []model.Document{
			doc("a", model.CategoryWorkingDocumentation, 5),
			doc("b", model.CategoryWorkingDocumentation, 2),
		}

		groups := GroupByVersion(docs)

		assert.Len(t, groups, 2)
		assert.Equal(t, 5, groups[0].Version)
		assert.Equal(t, 2, groups[1].Version)
	})

	t.Run("empty input yields empty sequence", func(t *testing.T) {
		assert.Empty(t, GroupByVersion(nil))
	})
}

func TestLatestVersion(t *testing.T) {
	assert.Equal(t, 0, LatestVersion(nil))
	assert.Equal(t, 1, LatestVersion([]model.Document{doc("legacy", model.CategoryWorkingDocumentation, 0)}))
	assert.Equal(t, 7, LatestVersion([]model.Document{
		doc("a", model.CategoryWorkingDocumentation, 7),
		doc("b", model.CategoryProjectDocumentation, 3),
	}))
}

func TestNextVersion(t *testing.T) {
	// A construction with no documents starts at version 1.
	assert.Equal(t, 1, NextVersion(nil))
	assert.Equal(t, 4, NextVersion([]model.Document{
		doc("a", model.CategoryWorkingDocumentation, 3),
		doc("b", model.CategoryProjectDocumentation, 1),
	}))
}

func TestFilters(t *testing.T) {
	docs := []model.Document{
		doc("a", model.CategoryWorkingDocumentation, 1),
		doc("b", model.CategoryProjectDocumentation, 2),
		{ID: "p", Category: model.CategoryContract, Version: 1, ProjectID: "proj-1"},
	}

	t.Run("by category", func(t *testing.T) {
		got := FilterByCategory(docs, model.CategoryProjectDocumentation)
		assert.Len(t, got, 1)
		assert.Equal(t, "b", got[0].ID)
	})

	t.Run("by version", func(t *testing.T) {
		got := FilterByVersion(docs, 1)
		assert.Len(t, got, 2)
	})

	t.Run("by project", func(t *testing.T) {
		got := FilterByProject(docs, "proj-1")
		assert.Len(t, got, 1)
		assert.Equal(t, "p", got[0].ID)
	})

	t.Run("no match returns empty slice", func(t *testing.T) {
		got := FilterByProject(docs, "nope")
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}
