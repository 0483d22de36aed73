package sauce

import "testing"

func TestFontByNameMatchesID(t *testing.T) {
	f, ok := FontByName("IBM VGA")
	if !ok || f.ID != FontID("ibm_vga") {
		t.Fatalf("got %+v, %v", f, ok)
	}
}

func TestFontByIDUnknown(t *testing.T) {
	if _, ok := FontByID(FontID("does_not_exist")); ok {
		t.Fatalf("expected ok=false")
	}
}

func TestFontByIDAndCellSize(t *testing.T) {
	f, ok := FontByIDAndCellSize(FontID("ibm_vga"), 8, 16)
	if !ok || f == nil {
		t.Fatalf("expected ibm_vga @ 8x16 to resolve")
	}
	if _, ok := FontByIDAndCellSize(FontID("ibm_vga"), 9, 9); ok {
		t.Fatalf("expected mismatched cell size to fail")
	}
}

func TestFontOptionsOfKnownFont(t *testing.T) {
	opts, ok := FontOptionsOf(FontID("ibm_vga"))
	if !ok || opts == nil {
		t.Fatalf("expected ibm_vga to carry display options")
	}
	if opts.CellWidth != 8 {
		t.Fatalf("cell width = %d, want 8", opts.CellWidth)
	}
}

func TestAllFontsNonEmptyAndUnique(t *testing.T) {
	fonts := AllFonts()
	if len(fonts) == 0 {
		t.Fatalf("expected at least one registered font")
	}
	seen := make(map[FontID]bool, len(fonts))
	for _, f := range fonts {
		if seen[f.ID] {
			t.Fatalf("duplicate font id %q", f.ID)
		}
		seen[f.ID] = true
	}
}
