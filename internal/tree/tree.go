// Package tree implements the recursive scan/parse tree: it
// walks a source directory, classifies files as audio or clutter, and
// propagates the tags shared by all audio descendants down onto clutter so
// it rides along to the right destination.
package tree

import (
	"os"
	"path/filepath"

	"github.com/franz/tidysic/internal/tags"
	"github.com/franz/tidysic/internal/util"
)

// Kind distinguishes an audio file from clutter.
type Kind int

const (
	Audio Kind = iota
	Clutter
)

// TaggedFile is a single scanned file: its path, tags, and kind.
type TaggedFile struct {
	Path  string
	Tags  tags.Bag
	Kind  Kind
	IsDir bool // true for a clutter entry that is a promoted subdirectory
}

// Node is one level of the parse tree. CommonTags is non-nil iff the
// subtree rooted here contains at least one audio file.
type Node struct {
	RootPath   string
	Children   []*Node
	Audio      []TaggedFile
	Clutter    []TaggedFile
	CommonTags *tags.Bag

	// unreadable marks a node whose own directory entries could not be
	// listed (permission denied on readdir itself, not on a descendant).
	// Such a node is dropped by its parent rather than promoted to a
	// clutter entry.
	unreadable bool
}

// Build walks root recursively, producing the parse tree. Permission
// errors on a subdirectory are logged as warnings: the subtree is treated
// as a single opaque clutter entry if still listable, otherwise dropped.
func Build(root string, reader tags.Reader) (*Node, error) {
	return build(root, reader)
}

func build(root string, reader tags.Reader) (*Node, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsPermission(err) {
			util.WarnLog("permission denied listing %s, dropping subtree", root)
			return &Node{RootPath: root, unreadable: true}, nil
		}
		return nil, err
	}

	node := &Node{RootPath: root}

	for _, entry := range entries {
		path := filepath.Join(root, entry.Name())

		if entry.IsDir() {
			child, err := build(path, reader)
			if err != nil {
				return nil, err
			}
			switch {
			case child.unreadable:
				// Unlistable subtree: warned already, dropped entirely.
			case child.CommonTags != nil:
				node.Children = append(node.Children, child)
			default:
				node.Clutter = append(node.Clutter, TaggedFile{
					Path:  path,
					Tags:  tags.NewBag(),
					Kind:  Clutter,
					IsDir: true,
				})
			}
			continue
		}

		info, err := entry.Info()
		if err != nil {
			if os.IsPermission(err) {
				util.WarnLog("permission denied reading %s, treating as clutter", path)
				node.Clutter = append(node.Clutter, TaggedFile{Path: path, Tags: tags.NewBag(), Kind: Clutter})
				continue
			}
			return nil, err
		}

		if tags.IsAudioFile(path, info) {
			bag, err := reader.Read(path)
			if err != nil {
				return nil, err
			}
			node.Audio = append(node.Audio, TaggedFile{Path: path, Tags: bag, Kind: Audio})
			continue
		}

		node.Clutter = append(node.Clutter, TaggedFile{Path: path, Tags: tags.NewBag(), Kind: Clutter})
	}

	node.computeCommonTags()
	return node, nil
}

// computeCommonTags fills in CommonTags as the intersection of every audio
// file's tags and every child's common tags, then tags every clutter entry
// (including promoted subdirectories) with a copy of the result.
func (n *Node) computeCommonTags() {
	var inputs []tags.Bag
	for _, a := range n.Audio {
		inputs = append(inputs, a.Tags)
	}
	for _, c := range n.Children {
		if c.CommonTags != nil {
			inputs = append(inputs, *c.CommonTags)
		}
	}

	if len(inputs) == 0 {
		return
	}

	common := tags.Intersection(inputs...)
	n.CommonTags = &common

	for i := range n.Clutter {
		n.Clutter[i].Tags = common.Clone()
	}
}

// Walk visits every TaggedFile (audio and clutter) in the tree, in an
// unspecified but deterministic-per-run order (depth-first, children in
// the order Build encountered them).
func (n *Node) Walk(visit func(TaggedFile)) {
	for _, a := range n.Audio {
		visit(a)
	}
	for _, c := range n.Clutter {
		visit(c)
	}
	for _, child := range n.Children {
		child.Walk(visit)
	}
}
</content>
