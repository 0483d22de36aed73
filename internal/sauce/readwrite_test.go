package sauce

import "testing"

func TestWriteThenReadSauceRoundtrip(t *testing.T) {
	b := NewSauceBlock(MediaInfo{FileType: 1, DataType: DataTypeCharacter, FileSize: 8900}, "00", "twilight", "notepid", "acid")
	b.AddComments("hello", "world")
	buf := Write([]byte("some ansi art bytes"), b)

	got, err := ReadSauce(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Title != "twilight" || got.Author != "notepid" || got.Group != "acid" {
		t.Fatalf("got %+v", got)
	}
	if len(got.Comments) != 2 || got.Comments[0] != "hello" {
		t.Fatalf("got comments %#v", got.Comments)
	}
}

func TestReadSauceMissingRecordIsErrNoSauce(t *testing.T) {
	if _, err := ReadSauce([]byte("just some plain text, no sauce at all")); err != ErrNoSauce {
		t.Fatalf("got %v, want ErrNoSauce", err)
	}
}

func TestReadSauceToleratesMissingComments(t *testing.T) {
	b := NewSauceBlock(MediaInfo{}, "00", "t", "a", "g")
	b.Comments = []string{"orphaned"}
	record := encodeRecord(b) // comment_lines says 1, but we never append a comment block
	buf := append([]byte("contents"), record...)

	got, err := ReadSauce(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Comments) != 0 {
		t.Fatalf("expected no comments, got %#v", got.Comments)
	}
}

func TestHasSauceAndHasComments(t *testing.T) {
	b := NewSauceBlock(MediaInfo{}, "00", "t", "a", "g")
	b.AddComments("x")
	buf := Write([]byte("body"), b)

	if !HasSauce(buf) {
		t.Fatalf("expected HasSauce true")
	}
	if !HasComments(buf) {
		t.Fatalf("expected HasComments true")
	}
	if HasSauce([]byte("plain")) {
		t.Fatalf("expected HasSauce false for plain text")
	}
}

func TestReadContentsStripsSauce(t *testing.T) {
	b := NewSauceBlock(MediaInfo{}, "00", "t", "a", "g")
	buf := Write([]byte("body"), b)
	contents := ReadContents(buf)
	if string(contents) != "body\x1a" {
		t.Fatalf("got %q", contents)
	}
}

func TestRemoveCommentsKeepsRecord(t *testing.T) {
	b := NewSauceBlock(MediaInfo{}, "00", "t", "a", "g")
	b.AddComments("one", "two")
	buf := Write([]byte("body"), b)

	stripped := RemoveComments(buf)
	got, err := ReadSauce(stripped)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Comments) != 0 {
		t.Fatalf("expected comments removed, got %#v", got.Comments)
	}
	if got.Title != "t" {
		t.Fatalf("expected record preserved, got %+v", got)
	}
}

func TestRemoveSauceStripsEverything(t *testing.T) {
	b := NewSauceBlock(MediaInfo{}, "00", "t", "a", "g")
	b.AddComments("one")
	buf := Write([]byte("body"), b)

	stripped := RemoveSauce(buf)
	if HasSauce(stripped) {
		t.Fatalf("expected no SAUCE remaining")
	}
	if string(stripped) != "body\x1a" {
		t.Fatalf("got %q", stripped)
	}
}

func TestRemoveSauceNoOpWithoutRecord(t *testing.T) {
	buf := []byte("plain text file")
	if got := RemoveSauce(buf); string(got) != string(buf) {
		t.Fatalf("got %q, want unchanged %q", got, buf)
	}
}
