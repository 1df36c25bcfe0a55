package service

import (
	"sort"

	"github.com/MKhiriev/go-bookmark-merger/models"
)

// remoteTreeNode is one node of the remote forest. Children are indexes
// into the forest arena, ordered by position.
type remoteTreeNode struct {
	update   models.RemoteUpdate
	children []int
	depth    int
}

func (n *remoteTreeNode) guid() string {
	return n.update.Specifics.GUID
}

// remoteForest holds one tree per recognised permanent folder. Nodes live
// in a single arena and refer to each other by index.
type remoteForest struct {
	nodes []remoteTreeNode
	roots map[models.PermanentFolder]int
}

func (f *remoteForest) node(i int) *remoteTreeNode {
	return &f.nodes[i]
}

func (f *remoteForest) add(update models.RemoteUpdate, depth int) int {
	f.nodes = append(f.nodes, remoteTreeNode{update: update, depth: depth})
	return len(f.nodes) - 1
}

// buildForest attaches grouped updates below the permanent folders. It
// consumes groups.byParent; whatever is left afterwards was never reached
// and is counted as orphaned.
func (m *BookmarkModelMerger) buildForest(groups groupedUpdates, report *models.MergeReport) *remoteForest {
	forest := &remoteForest{roots: make(map[models.PermanentFolder]int)}
	byParent := groups.byParent

	for _, update := range groups.permanent {
		tag := models.PermanentFolder(update.ServerDefinedUniqueTag)
		if !tag.IsKnown() {
			report.SkippedPermanentFolders++
			m.logger.Warn().
				Str("func", "*BookmarkModelMerger.buildForest").
				Str("tag", string(tag)).
				Msg("skipping permanent folder with unknown tag")
			continue
		}
		if _, dup := forest.roots[tag]; dup {
			report.SkippedPermanentFolders++
			m.logger.Warn().
				Str("func", "*BookmarkModelMerger.buildForest").
				Str("tag", string(tag)).
				Msg("skipping repeated permanent folder")
			continue
		}

		forest.roots[tag] = forest.add(update, 0)
		m.attachChildren(forest, forest.roots[tag], byParent, report)
	}

	for parent, children := range byParent {
		report.Orphans += len(children)
		m.logger.Debug().
			Str("func", "*BookmarkModelMerger.buildForest").
			Str("parent_guid", parent).
			Int("count", len(children)).
			Msg("remote updates with unreachable parent")
	}

	return forest
}

// attachChildren grows the subtree of root using an explicit stack.
func (m *BookmarkModelMerger) attachChildren(forest *remoteForest, root int, byParent map[string][]models.RemoteUpdate, report *models.MergeReport) {
	stack := []int{root}
	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := forest.node(idx)
		guid, depth, isFolder := n.guid(), n.depth, n.update.Specifics.IsFolder()

		if _, ok := byParent[guid]; !ok {
			continue
		}

		if !isFolder {
			dropped := consumeSubtree(byParent, guid)
			report.NonFolderChildren += dropped
			m.logger.Warn().
				Str("func", "*BookmarkModelMerger.attachChildren").
				Str("guid", guid).
				Int("count", dropped).
				Msg("dropping children of a non-folder")
			continue
		}
		if depth >= m.cfg.MaxDepth {
			dropped := consumeSubtree(byParent, guid)
			report.TooDeep += dropped
			m.logger.Warn().
				Str("func", "*BookmarkModelMerger.attachChildren").
				Str("guid", guid).
				Int("depth", depth).
				Int("count", dropped).
				Msg("dropping remote updates below the depth limit")
			continue
		}

		children := byParent[guid]
		delete(byParent, guid)
		sort.SliceStable(children, func(i, j int) bool {
			return children[i].Specifics.Position.Less(children[j].Specifics.Position)
		})

		indexes := make([]int, 0, len(children))
		for _, child := range children {
			indexes = append(indexes, forest.add(child, depth+1))
		}
		// forest.add may have grown the arena; re-read the parent
		forest.node(idx).children = indexes

		for i := len(indexes) - 1; i >= 0; i-- {
			stack = append(stack, indexes[i])
		}
	}
}

// consumeSubtree removes every update below parentGUID from byParent and
// returns how many were removed.
func consumeSubtree(byParent map[string][]models.RemoteUpdate, parentGUID string) int {
	count := 0
	stack := []string{parentGUID}
	for len(stack) > 0 {
		guid := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		children, ok := byParent[guid]
		if !ok {
			continue
		}
		delete(byParent, guid)
		count += len(children)
		for _, child := range children {
			stack = append(stack, child.Specifics.GUID)
		}
	}
	return count
}
