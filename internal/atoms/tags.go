package atoms

// metadataTags is the fixed list of metadata tag names SublerCLI knows
// about. The list is used for discovery and help text only; arbitrary
// names are still accepted through Builder.Add.
var metadataTags = []string{
	"Artist",
	"Album Artist",
	"Album",
	"Grouping",
	"Composer",
	"Comments",
	"Genre",
	"Release Date",
	"Track #",
	"Disk #",
	"Tempo",
	"TV Show",
	"TV Episode #",
	"TV Network",
	"TV Episode ID",
	"TV Season",
	"Description",
	"Long Description",
	"Series Description",
	"HD Video",
	"Rating Annotation",
	"Studio",
	"Cast",
	"Director",
	"Gapless",
	"Codirector",
	"Producers",
	"Screenwriters",
	"Lyrics",
	"Copyright",
	"Encoding Tool",
	"Encoded By",
	"Keywords",
	"Category",
	"contentID",
	"artistID",
	"playlistID",
	"genreID",
	"composerID",
	"XID",
	"iTunes Account",
	"iTunes Account Type",
	"iTunes Country",
	"Track Sub-Title",
	"Song Description",
	"Art Director",
	"Arranger",
	"Lyricist",
	"Acknowledgement",
	"Conductor",
	"Linear Notes",
	"Record Company",
	"Original Artist",
	"Phonogram Rights",
	"Producer",
	"Performer",
	"Publisher",
	"Sound Engineer",
	"Soloist",
	"Credits",
	"Thanks",
	"Online Extras",
	"Executive Producer",
	"Sort Name",
	"Sort Artist",
	"Sort Album Artist",
	"Sort Album",
	"Sort Composer",
	"Sort TV Show",
	"Artwork",
	"Name",
	"Rating",
	"Media Kind",
}

// MetadataTags returns every known metadata tag name.
// The list is static and independent of any builder instance.
func MetadataTags() []string {
	out := make([]string, len(metadataTags))
	copy(out, metadataTags)
	return out
}
