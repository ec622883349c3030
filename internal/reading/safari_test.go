package reading

import (
	"path/filepath"
	"testing"
	"time"
)

const bookmarksFixture = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>Children</key>
	<array>
		<dict>
			<key>Title</key>
			<string>BookmarksBar</string>
		</dict>
		<dict>
			<key>Title</key>
			<string>com.apple.ReadingList</string>
			<key>Children</key>
			<array>
				<dict>
					<key>URLString</key>
					<string>https://example.com/a</string>
					<key>URIDictionary</key>
					<dict>
						<key>title</key>
						<string>Article A</string>
					</dict>
					<key>DateAdded</key>
					<date>2024-05-01T10:00:00Z</date>
				</dict>
				<dict>
					<key>URLString</key>
					<string>https://example.com/b</string>
				</dict>
				<dict>
					<key>URIDictionary</key>
					<dict>
						<key>title</key>
						<string>No Link Here</string>
					</dict>
				</dict>
			</array>
		</dict>
	</array>
</dict>
</plist>
`

func TestSafariSourceLoads(t *testing.T) {
	path := writeFile(t, "Bookmarks.plist", bookmarksFixture)
	fixed := time.Date(2025, 8, 31, 12, 0, 0, 0, time.UTC)

	items, err := SafariSource{Path: path, now: func() time.Time { return fixed }}.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}

	if items[0].Title != "Article A" || items[0].URL != "https://example.com/a" {
		t.Errorf("unexpected first item: %+v", items[0])
	}
	if items[0].DateAdded != "2024-05-01T10:00:00Z" {
		t.Errorf("first item date = %q, want 2024-05-01T10:00:00Z", items[0].DateAdded)
	}

	// No title: fall back to the URL.
	if items[1].Title != "https://example.com/b" {
		t.Errorf("second item title = %q, want URL fallback", items[1].Title)
	}

	// No URL: placeholder; no date: fall back to now.
	if items[2].URL != "No URL" {
		t.Errorf("third item url = %q, want No URL", items[2].URL)
	}
	if items[2].DateAdded != fixed.Format(time.RFC3339) {
		t.Errorf("third item date = %q, want %q", items[2].DateAdded, fixed.Format(time.RFC3339))
	}
}

func TestSafariSourceMissingFile(t *testing.T) {
	_, err := SafariSource{Path: filepath.Join(t.TempDir(), "Bookmarks.plist")}.Load()
	if err == nil {
		t.Fatal("expected error for missing plist")
	}
}

func TestSafariSourceNoChildren(t *testing.T) {
	path := writeFile(t, "Bookmarks.plist", `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>WebBookmarkFileVersion</key>
	<integer>1</integer>
</dict>
</plist>
`)
	if _, err := (SafariSource{Path: path}).Load(); err == nil {
		t.Fatal("expected error for plist without Children")
	}
}

func TestSafariSourceNoReadingListContainer(t *testing.T) {
	path := writeFile(t, "Bookmarks.plist", `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>Children</key>
	<array>
		<dict>
			<key>Title</key>
			<string>BookmarksBar</string>
		</dict>
	</array>
</dict>
</plist>
`)
	items, err := SafariSource{Path: path}.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("items = %+v, want empty", items)
	}
}
