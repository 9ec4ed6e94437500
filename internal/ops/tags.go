package ops

import "github.com/MattsSe/subtag/internal/atoms"

// TagsOutput lists the fixed metadata vocabulary for discovery/help.
type TagsOutput struct {
	MetadataTags []string `json:"metadata_tags"`
	MediaKinds   []string `json:"media_kinds"`
}

// Tags returns every known metadata tag name and media kind token.
// The lists are static; arbitrary tag names are still accepted by Tag.
func Tags() *TagsOutput {
	kinds := atoms.MediaKinds()
	tokens := make([]string, len(kinds))
	for i, k := range kinds {
		tokens[i] = k.String()
	}
	return &TagsOutput{
		MetadataTags: atoms.MetadataTags(),
		MediaKinds:   tokens,
	}
}
