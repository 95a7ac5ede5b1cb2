// Package meshindex discovers which atlas structures have a 3D mesh by
// scanning the mesh download directory listing.
//
// The listing is ordinary web-server index markup with one anchor per
// file. Scan is the only way the Allen archive exposes the mesh inventory;
// there is no manifest endpoint. The contract downstream is just a set of
// structure IDs, so a manifest can replace the scrape later without
// touching the builder.
package meshindex

import (
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"

	"golang.org/x/net/html"
)

// meshFilePattern matches mesh filenames of the form "<digits>.obj".
var meshFilePattern = regexp.MustCompile(`(\d+)\.obj`)

// Scan extracts the set of structure IDs with a mesh file from a directory
// listing. It parses the listing as HTML and matches mesh filenames in
// both link targets and text, so plain-text listings work too (the whole
// body becomes one text node). Content without a match is skipped; index
// pages are full of navigation markup that is not a mesh.
//
// The result is deduplicated and sorted ascending.
func Scan(r io.Reader) ([]int, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse mesh listing: %w", err)
	}

	names := make(map[string]struct{})
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			collect(names, n.Data)
		case html.ElementNode:
			for _, attr := range n.Attr {
				if attr.Key == "href" {
					collect(names, attr.Val)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	ids := make([]int, 0, len(names))
	for name := range names {
		// The pattern only captures digits, so this cannot fail for
		// IDs that fit an int.
		id, err := strconv.Atoi(meshFilePattern.FindStringSubmatch(name)[1])
		if err != nil {
			return nil, fmt.Errorf("mesh filename %q: %w", name, err)
		}
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids, nil
}

// collect adds every mesh filename found in s to the set. Deduplication
// happens on the filename, matching how the listing repeats each file in
// its link target and link text.
func collect(names map[string]struct{}, s string) {
	for _, m := range meshFilePattern.FindAllStringSubmatch(s, -1) {
		names[m[0]] = struct{}{}
	}
}
