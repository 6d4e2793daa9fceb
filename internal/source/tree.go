// ABOUTME: File tree source: depth-limited directory walk flattened depth-first
// ABOUTME: Sibling directories are read concurrently with errgroup; directories sort first

package source

import (
	"cmp"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/unicode/norm"

	"github.com/mauromedda/pi-vlist/internal/log"
)

const readConcurrency = 8

type treeNode struct {
	entry    Entry
	children []*treeNode
}

// LoadTree lists root down to depth levels (depth <= 0 is unlimited) and
// returns the entries in display order. Unreadable subdirectories are
// skipped; an unreadable root is an error.
func LoadTree(ctx context.Context, root string, depth int) ([]Entry, error) {
	nodes, err := readTree(ctx, root, 0, depth)
	if err != nil {
		return nil, fmt.Errorf("loading tree %s: %w", root, err)
	}
	var out []Entry
	flatten(nodes, &out)
	return out, nil
}

func readTree(ctx context.Context, dir string, level, maxDepth int) ([]*treeNode, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(ents, func(a, b os.DirEntry) int {
		if a.IsDir() != b.IsDir() {
			if a.IsDir() {
				return -1
			}
			return 1
		}
		return cmp.Compare(a.Name(), b.Name())
	})

	nodes := make([]*treeNode, len(ents))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(readConcurrency)
	for i, e := range ents {
		n := &treeNode{entry: Entry{
			Text:  norm.NFC.String(e.Name()),
			Depth: level,
			IsDir: e.IsDir(),
			Path:  filepath.Join(dir, e.Name()),
		}}
		nodes[i] = n
		if !e.IsDir() || (maxDepth > 0 && level+1 >= maxDepth) {
			continue
		}
		g.Go(func() error {
			kids, err := readTree(gctx, n.entry.Path, level+1, maxDepth)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				log.Debug("source: skipping %s: %v", n.entry.Path, err)
				return nil
			}
			n.children = kids
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return nodes, nil
}

func flatten(nodes []*treeNode, out *[]Entry) {
	for _, n := range nodes {
		n.entry.ID = len(*out)
		*out = append(*out, n.entry)
		flatten(n.children, out)
	}
}
