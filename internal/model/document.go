package model

import "time"

// Category is the functional classification of a document, orthogonal to its
// version. Construction documents use the working/project documentation pair;
// project-level documents use the disjoint TZ/contract pair. The two pairs
// never mix on a single document.
type Category string

const (
	CategoryWorkingDocumentation Category = "WORKING_DOCUMENTATION"
	CategoryProjectDocumentation Category = "PROJECT_DOCUMENTATION"

	CategoryTZ       Category = "TZ"
	CategoryContract Category = "CONTRACT"
)

// IsConstructionCategory reports whether c belongs to the construction-scoped
// category pair.
func (c Category) IsConstructionCategory() bool {
	return c == CategoryWorkingDocumentation || c == CategoryProjectDocumentation
}

// IsProjectCategory reports whether c belongs to the project-scoped pair.
func (c Category) IsProjectCategory() bool {
	return c == CategoryTZ || c == CategoryContract
}

// ConstructionCategories returns the construction category pair in display
// order. Grouping code uses it to materialize empty buckets.
func ConstructionCategories() []Category {
	return []Category{CategoryWorkingDocumentation, CategoryProjectDocumentation}
}

// Document is an immutable record of one uploaded file. Records are never
// edited in place: a replace mints a new Document at the next version and the
// original stays untouched until an explicit delete.
type Document struct {
	ID             string    `json:"id"`
	OriginalName   string    `json:"original_name"`
	FileName       string    `json:"file_name"`
	StoragePath    string    `json:"storage_path"`
	Size           int64     `json:"size"`
	ContentType    string    `json:"content_type"`
	Category       Category  `json:"category"`
	Version        int       `json:"version"`
	ConstructionID string    `json:"construction_id,omitempty"`
	ProjectID      string    `json:"project_id,omitempty"`
	UploadedAt     time.Time `json:"uploaded_at"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// EffectiveVersion resolves the version of legacy records that predate
// versioning: anything below 1 is treated as version 1.
func (d Document) EffectiveVersion() int {
	if d.Version < 1 {
		return 1
	}
	return d.Version
}
