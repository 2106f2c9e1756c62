package catalog

import "constructdocs/internal/model"

// Pure filters over an already-fetched document set. All of them return an
// empty slice, never nil, when nothing matches.

// FilterByCategory keeps documents in the given category.
func FilterByCategory(docs []model.Document, c model.Category) []model.Document {
	out := []model.Document{}
	for _, d := range docs {
		if d.Category == c {
			out = append(out, d)
		}
	}
	return out
}

// FilterByVersion keeps documents whose effective version matches v.
func FilterByVersion(docs []model.Document, v int) []model.Document {
	out := []model.Document{}
	for _, d := range docs {
		if d.EffectiveVersion() == v {
			out = append(out, d)
		}
	}
	return out
}

// FilterByProject keeps documents belonging to the given project, whether
// project-level or owned through a construction.
func FilterByProject(docs []model.Document, projectID string) []model.Document {
	out := []model.Document{}
	for _, d := range docs {
		if d.ProjectID == projectID {
			out = append(out, d)
		}
	}
	return out
}
