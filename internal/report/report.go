// Package report writes the content of a sequence store.
package report

import (
	"fmt"
	"io"
	"strconv"

	asciitree "github.com/thediveo/go-asciitree"

	"github.com/geofduf/string-sequence/sequence"
)

// AsciiNode is a node of the tree rendered by Tree.
type AsciiNode struct {
	Label    string      `asciitree:"label"`
	Props    []string    `asciitree:"properties"`
	Children []AsciiNode `asciitree:"children"`
}

// Lines writes one "key: [e0,e1,...]" line per sequence, in key order.
func Lines(store *sequence.Store, w io.Writer) error {
	for _, key := range store.Keys() {
		x, ok := store.Get(key)
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", key, x); err != nil {
			return err
		}
	}
	return nil
}

// Tree writes the store as a tree: one branch per sequence, one leaf per value.
func Tree(store *sequence.Store, w io.Writer) error {
	_, err := fmt.Fprintln(w, asciitree.RenderFancy(convertToTree(store)))
	return err
}

func convertToTree(store *sequence.Store) AsciiNode {
	root := AsciiNode{Label: "store"}
	for _, key := range store.Keys() {
		x, ok := store.Get(key)
		if !ok {
			continue
		}
		node := AsciiNode{
			Label: key,
			Props: []string{"length: " + strconv.Itoa(x.Len())},
		}
		for i, v := range x.All() {
			node.Children = append(node.Children, AsciiNode{
				Label: fmt.Sprintf("%d: %s", i, v),
			})
		}
		root.Children = append(root.Children, node)
	}
	return root
}
