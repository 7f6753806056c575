// Package testing provides golden-file snapshots of preview payloads.
//
// # Snapshot Testing
//
// Render values, collect the payloads and compare them with a golden file:
//
//	func TestGallery(t *testing.T) {
//	    r := preview.NewRenderer(loader)
//	    snap := qltest.NewSnapshot()
//	    snap.Add("textExample", r.Render(gallery.TextExample{Text: "Hello"}))
//	    snap.MatchesFile(t, "testdata/gallery.snapshot.json")
//	}
//
// Update snapshots with:
//
//	QUICKLOOK_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import qltest "github.com/go-drift/quicklook/pkg/testing"
package testing
