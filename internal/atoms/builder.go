package atoms

// Builder accumulates metadata atoms in call order.
//
// Every named constructor appends one atom and returns the builder for
// chaining, and none of them ever fails: empty or questionable values are
// stored as-is and left for SublerCLI to reject at execution time. Calling
// a constructor twice, or mixing a constructor with Add for the same tag,
// yields two separate atoms.
type Builder struct {
	atoms []Atom
}

// New creates an empty atom builder.
func New() *Builder {
	return &Builder{}
}

// Add appends an atom with an arbitrary tag name. This is the escape
// hatch for tags without a named constructor; the name is not checked
// against the known-tag list.
func (b *Builder) Add(name, value string) *Builder {
	b.atoms = append(b.atoms, NewAtom(name, value))
	return b
}

// AddAtom appends an already constructed atom.
func (b *Builder) AddAtom(a Atom) *Builder {
	b.atoms = append(b.atoms, a)
	return b
}

// Build returns the accumulated atoms as an immutable collection.
// The builder may keep being used afterwards; later appends do not
// affect collections built earlier.
func (b *Builder) Build() Atoms {
	inner := make([]Atom, len(b.atoms))
	copy(inner, b.atoms)
	return Atoms{inner: inner}
}

// Named constructors, one per known tag.

func (b *Builder) Artist(v string) *Builder      { return b.Add("Artist", v) }
func (b *Builder) AlbumArtist(v string) *Builder { return b.Add("Album Artist", v) }
func (b *Builder) Album(v string) *Builder       { return b.Add("Album", v) }
func (b *Builder) Grouping(v string) *Builder    { return b.Add("Grouping", v) }
func (b *Builder) Composer(v string) *Builder    { return b.Add("Composer", v) }
func (b *Builder) Comments(v string) *Builder    { return b.Add("Comments", v) }
func (b *Builder) Genre(v string) *Builder       { return b.Add("Genre", v) }
func (b *Builder) ReleaseDate(v string) *Builder { return b.Add("Release Date", v) }
func (b *Builder) TrackNumber(v string) *Builder { return b.Add("Track #", v) }
func (b *Builder) DiskNumber(v string) *Builder  { return b.Add("Disk #", v) }
func (b *Builder) Tempo(v string) *Builder       { return b.Add("Tempo", v) }

func (b *Builder) TVShow(v string) *Builder          { return b.Add("TV Show", v) }
func (b *Builder) TVEpisodeNumber(v string) *Builder { return b.Add("TV Episode #", v) }
func (b *Builder) TVNetwork(v string) *Builder       { return b.Add("TV Network", v) }
func (b *Builder) TVEpisodeID(v string) *Builder     { return b.Add("TV Episode ID", v) }
func (b *Builder) TVSeason(v string) *Builder        { return b.Add("TV Season", v) }

func (b *Builder) Description(v string) *Builder       { return b.Add("Description", v) }
func (b *Builder) LongDescription(v string) *Builder   { return b.Add("Long Description", v) }
func (b *Builder) SeriesDescription(v string) *Builder { return b.Add("Series Description", v) }
func (b *Builder) HDVideo(v string) *Builder           { return b.Add("HD Video", v) }
func (b *Builder) RatingAnnotation(v string) *Builder  { return b.Add("Rating Annotation", v) }
func (b *Builder) Studio(v string) *Builder            { return b.Add("Studio", v) }

// Cast appends a cast entry. SublerCLI accepts either a comma-joined list
// in one atom or repeated Cast atoms; repeated atoms accumulate in order.
func (b *Builder) Cast(v string) *Builder { return b.Add("Cast", v) }

func (b *Builder) Director(v string) *Builder      { return b.Add("Director", v) }
func (b *Builder) Gapless(v string) *Builder       { return b.Add("Gapless", v) }
func (b *Builder) Codirector(v string) *Builder    { return b.Add("Codirector", v) }
func (b *Builder) Producers(v string) *Builder     { return b.Add("Producers", v) }
func (b *Builder) Screenwriters(v string) *Builder { return b.Add("Screenwriters", v) }
func (b *Builder) Lyrics(v string) *Builder        { return b.Add("Lyrics", v) }
func (b *Builder) Copyright(v string) *Builder     { return b.Add("Copyright", v) }
func (b *Builder) EncodingTool(v string) *Builder  { return b.Add("Encoding Tool", v) }
func (b *Builder) EncodedBy(v string) *Builder     { return b.Add("Encoded By", v) }
func (b *Builder) Keywords(v string) *Builder      { return b.Add("Keywords", v) }
func (b *Builder) Category(v string) *Builder      { return b.Add("Category", v) }

func (b *Builder) ContentID(v string) *Builder  { return b.Add("contentID", v) }
func (b *Builder) ArtistID(v string) *Builder   { return b.Add("artistID", v) }
func (b *Builder) PlaylistID(v string) *Builder { return b.Add("playlistID", v) }
func (b *Builder) GenreID(v string) *Builder    { return b.Add("genreID", v) }
func (b *Builder) ComposerID(v string) *Builder { return b.Add("composerID", v) }
func (b *Builder) XID(v string) *Builder        { return b.Add("XID", v) }

func (b *Builder) ITunesAccount(v string) *Builder     { return b.Add("iTunes Account", v) }
func (b *Builder) ITunesAccountType(v string) *Builder { return b.Add("iTunes Account Type", v) }
func (b *Builder) ITunesCountry(v string) *Builder     { return b.Add("iTunes Country", v) }

func (b *Builder) TrackSubTitle(v string) *Builder     { return b.Add("Track Sub-Title", v) }
func (b *Builder) SongDescription(v string) *Builder   { return b.Add("Song Description", v) }
func (b *Builder) ArtDirector(v string) *Builder       { return b.Add("Art Director", v) }
func (b *Builder) Arranger(v string) *Builder          { return b.Add("Arranger", v) }
func (b *Builder) Lyricist(v string) *Builder          { return b.Add("Lyricist", v) }
func (b *Builder) Acknowledgement(v string) *Builder   { return b.Add("Acknowledgement", v) }
func (b *Builder) Conductor(v string) *Builder         { return b.Add("Conductor", v) }
func (b *Builder) LinearNotes(v string) *Builder       { return b.Add("Linear Notes", v) }
func (b *Builder) RecordCompany(v string) *Builder     { return b.Add("Record Company", v) }
func (b *Builder) OriginalArtist(v string) *Builder    { return b.Add("Original Artist", v) }
func (b *Builder) PhonogramRights(v string) *Builder   { return b.Add("Phonogram Rights", v) }
func (b *Builder) Producer(v string) *Builder          { return b.Add("Producer", v) }
func (b *Builder) Performer(v string) *Builder         { return b.Add("Performer", v) }
func (b *Builder) Publisher(v string) *Builder         { return b.Add("Publisher", v) }
func (b *Builder) SoundEngineer(v string) *Builder     { return b.Add("Sound Engineer", v) }
func (b *Builder) Soloist(v string) *Builder           { return b.Add("Soloist", v) }
func (b *Builder) Credits(v string) *Builder           { return b.Add("Credits", v) }
func (b *Builder) Thanks(v string) *Builder            { return b.Add("Thanks", v) }
func (b *Builder) OnlineExtras(v string) *Builder      { return b.Add("Online Extras", v) }
func (b *Builder) ExecutiveProducer(v string) *Builder { return b.Add("Executive Producer", v) }

func (b *Builder) SortName(v string) *Builder        { return b.Add("Sort Name", v) }
func (b *Builder) SortArtist(v string) *Builder      { return b.Add("Sort Artist", v) }
func (b *Builder) SortAlbumArtist(v string) *Builder { return b.Add("Sort Album Artist", v) }
func (b *Builder) SortAlbum(v string) *Builder       { return b.Add("Sort Album", v) }
func (b *Builder) SortComposer(v string) *Builder    { return b.Add("Sort Composer", v) }
func (b *Builder) SortTVShow(v string) *Builder      { return b.Add("Sort TV Show", v) }

func (b *Builder) Artwork(v string) *Builder { return b.Add("Artwork", v) }
func (b *Builder) Rating(v string) *Builder  { return b.Add("Rating", v) }

// Name sets the title atom; SublerCLI stores titles under the "Name" tag.
func (b *Builder) Name(v string) *Builder { return b.Add("Name", v) }

// Title is an alias for Name.
func (b *Builder) Title(v string) *Builder { return b.Add("Name", v) }
