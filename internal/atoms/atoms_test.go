package atoms

import "testing"

func TestBuilderChainPreservesCallOrder(t *testing.T) {
	a := New().
		Genre("Foo").
		Artist("Bar").
		Title("Baz Title").
		ReleaseDate("2018").
		Cast("John Doe").
		Build()

	want := []Atom{
		{Name: "Genre", Value: "Foo"},
		{Name: "Artist", Value: "Bar"},
		{Name: "Name", Value: "Baz Title"},
		{Name: "Release Date", Value: "2018"},
		{Name: "Cast", Value: "John Doe"},
	}

	got := a.List()
	if len(got) != len(want) {
		t.Fatalf("expected %d atoms, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("atom[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestBuilderDuplicatesAccumulate(t *testing.T) {
	a := New().
		Genre("Foo").
		Artist("Bar").
		Genre("Baz").
		Build()

	got := a.List()
	if len(got) != 3 {
		t.Fatalf("expected 3 atoms, got %d", len(got))
	}
	if got[0].Name != "Genre" || got[0].Value != "Foo" {
		t.Errorf("atom[0] = %+v, want Genre=Foo", got[0])
	}
	if got[1].Name != "Artist" {
		t.Errorf("atom[1] = %+v, want Artist=Bar", got[1])
	}
	if got[2].Name != "Genre" || got[2].Value != "Baz" {
		t.Errorf("atom[2] = %+v, want Genre=Baz", got[2])
	}
}

func TestBuilderMixedAddAndConstructor(t *testing.T) {
	a := New().
		Add("Cast", "John Doe").
		Cast("Jane Doe").
		Build()

	got := a.List()
	if len(got) != 2 {
		t.Fatalf("expected 2 atoms, got %d", len(got))
	}
	if got[0].Value != "John Doe" || got[1].Value != "Jane Doe" {
		t.Errorf("cast atoms out of order: %+v", got)
	}
}

func TestMetadataTagsRoundTripThroughAdd(t *testing.T) {
	tags := MetadataTags()
	if len(tags) == 0 {
		t.Fatal("MetadataTags returned an empty list")
	}

	b := New()
	for _, name := range tags {
		b.Add(name, "x")
	}
	got := b.Build().List()

	if len(got) != len(tags) {
		t.Fatalf("expected %d atoms, got %d", len(tags), len(got))
	}
	for i, name := range tags {
		if got[i].Name != name {
			t.Errorf("atom[%d].Name = %q, want %q", i, got[i].Name, name)
		}
	}
}

func TestMetadataTagsIsStatic(t *testing.T) {
	first := MetadataTags()
	first[0] = "mutated"

	second := MetadataTags()
	if second[0] == "mutated" {
		t.Error("MetadataTags must return a fresh copy")
	}
}

func TestAtomsArgsRendering(t *testing.T) {
	a := New().
		Genre("Foo").
		Cast("John Doe").
		Build()

	want := []string{"-metadata", "Genre", "Foo", "-metadata", "Cast", "John Doe"}
	got := a.Args()
	if len(got) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestBuildSnapshotsTheBuilder(t *testing.T) {
	b := New().Genre("Foo")
	first := b.Build()
	b.Genre("Bar")

	if first.Len() != 1 {
		t.Errorf("earlier collection grew after later append: %d atoms", first.Len())
	}
	if b.Build().Len() != 2 {
		t.Errorf("builder lost atoms: %d", b.Build().Len())
	}
}

func TestListReturnsCopy(t *testing.T) {
	a := New().Genre("Foo").Build()
	list := a.List()
	list[0].Value = "mutated"

	if a.List()[0].Value != "Foo" {
		t.Error("List must return a copy")
	}
}
