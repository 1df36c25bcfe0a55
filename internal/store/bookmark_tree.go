package store

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/go-bookmark-merger/models"
)

type treeNode struct {
	node     models.BookmarkNode
	parent   *treeNode
	children []*treeNode
}

// BookmarkTree is the in-memory local bookmark model. It owns an invisible
// root holding the permanent folders and hands out stable integer handles.
// Handles survive moves, updates and GUID changes.
type BookmarkTree struct {
	mu        sync.RWMutex
	root      *treeNode
	permanent map[models.PermanentFolder]*treeNode
	byID      map[int64]*treeNode
	byGUID    map[string]*treeNode
	nextID    int64
	now       func() time.Time
}

// NewBookmarkTree returns a tree holding only the root and the permanent
// folders.
func NewBookmarkTree() *BookmarkTree {
	t := &BookmarkTree{now: time.Now}
	t.reset()
	t.addMissingPermanentFolders()
	return t
}

func (t *BookmarkTree) reset() {
	t.byID = make(map[int64]*treeNode)
	t.byGUID = make(map[string]*treeNode)
	t.permanent = make(map[models.PermanentFolder]*treeNode)
	t.nextID = 1

	t.root = &treeNode{node: models.BookmarkNode{
		ID:        t.allocateID(),
		GUID:      models.RootGUID,
		Kind:      models.KindFolder,
		CreatedAt: t.now(),
	}}
	t.index(t.root)
}

func (t *BookmarkTree) addMissingPermanentFolders() {
	for _, tag := range models.PermanentFolders() {
		if _, ok := t.permanent[tag]; ok {
			continue
		}
		n := &treeNode{
			node: models.BookmarkNode{
				ID:           t.allocateID(),
				GUID:         tag.GUID(),
				Kind:         models.KindFolder,
				Title:        tag.Title(),
				PermanentTag: tag,
				CreatedAt:    t.now(),
			},
			parent: t.root,
		}
		t.root.children = append(t.root.children, n)
		t.index(n)
		t.permanent[tag] = n
	}
	reindex(t.root)
}

func (t *BookmarkTree) allocateID() int64 {
	id := t.nextID
	t.nextID++
	return id
}

func (t *BookmarkTree) index(n *treeNode) {
	t.byID[n.node.ID] = n
	t.byGUID[n.node.GUID] = n
}

func reindex(parent *treeNode) {
	for i, c := range parent.children {
		c.node.Index = i
		c.node.ParentID = parent.node.ID
	}
}

func (t *BookmarkTree) Root() models.BookmarkNode {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.root.node
}

// PermanentNode returns the permanent folder with the given tag.
func (t *BookmarkTree) PermanentNode(tag models.PermanentFolder) (models.BookmarkNode, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n, ok := t.permanent[tag]
	if !ok {
		return models.BookmarkNode{}, false
	}
	return n.node, true
}

func (t *BookmarkTree) Node(id int64) (models.BookmarkNode, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n, ok := t.byID[id]
	if !ok {
		return models.BookmarkNode{}, false
	}
	return n.node, true
}

func (t *BookmarkTree) NodeByGUID(guid string) (models.BookmarkNode, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n, ok := t.byGUID[guid]
	if !ok {
		return models.BookmarkNode{}, false
	}
	return n.node, true
}

// Children returns the ordered children of id. Unknown ids have none.
func (t *BookmarkTree) Children(id int64) []models.BookmarkNode {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n, ok := t.byID[id]
	if !ok {
		return nil
	}
	children := make([]models.BookmarkNode, len(n.children))
	for i, c := range n.children {
		children[i] = c.node
	}
	return children
}

// Descendants returns every node below id in preorder, id excluded.
func (t *BookmarkTree) Descendants(id int64) []models.BookmarkNode {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n, ok := t.byID[id]
	if !ok {
		return nil
	}
	return collectPreorder(n.children)
}

// Nodes returns every node of the tree, root included, in preorder.
func (t *BookmarkTree) Nodes() []models.BookmarkNode {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return collectPreorder([]*treeNode{t.root})
}

func collectPreorder(start []*treeNode) []models.BookmarkNode {
	var out []models.BookmarkNode
	stack := make([]*treeNode, 0, len(start))
	for i := len(start) - 1; i >= 0; i-- {
		stack = append(stack, start[i])
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, n.node)
		for i := len(n.children) - 1; i >= 0; i-- {
			stack = append(stack, n.children[i])
		}
	}
	return out
}

func (t *BookmarkTree) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.byID)
}

// Create inserts a copy of node under parentID at index. ID, ParentID and
// Index of node are ignored; CreatedAt defaults to the current time.
func (t *BookmarkTree) Create(parentID int64, index int, node models.BookmarkNode) (models.BookmarkNode, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	parent, ok := t.byID[parentID]
	if !ok {
		return models.BookmarkNode{}, fmt.Errorf("create under %d: %w", parentID, ErrNodeNotFound)
	}
	if !parent.node.IsFolder() || parent == t.root {
		return models.BookmarkNode{}, fmt.Errorf("create under %d: %w", parentID, ErrNotFolder)
	}
	if index < 0 || index > len(parent.children) {
		return models.BookmarkNode{}, fmt.Errorf("create at %d of %d: %w", index, len(parent.children), ErrIndexOutOfRange)
	}
	if !node.Kind.IsValid() {
		return models.BookmarkNode{}, fmt.Errorf("create %q: %w", node.Kind, ErrInvalidKind)
	}
	if node.GUID == "" || models.IsPermanentGUID(node.GUID) {
		return models.BookmarkNode{}, fmt.Errorf("create %q: %w", node.GUID, ErrInvalidGUID)
	}
	if _, dup := t.byGUID[node.GUID]; dup {
		return models.BookmarkNode{}, fmt.Errorf("create %q: %w", node.GUID, ErrDuplicateGUID)
	}

	node.ID = t.allocateID()
	node.PermanentTag = ""
	if node.IsFolder() {
		node.URL = ""
	}
	if node.CreatedAt.IsZero() {
		node.CreatedAt = t.now()
	}

	n := &treeNode{node: node, parent: parent}
	parent.children = insertAt(parent.children, index, n)
	reindex(parent)
	t.index(n)

	return n.node, nil
}

// Move places id under newParentID. index refers to the children of
// newParentID before id is removed from its current position, so moving a
// node to its own index or the one right after it changes nothing.
func (t *BookmarkTree) Move(id, newParentID int64, index int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	n, ok := t.byID[id]
	if !ok {
		return fmt.Errorf("move %d: %w", id, ErrNodeNotFound)
	}
	if n == t.root || n.node.IsPermanent() {
		return fmt.Errorf("move %d: %w", id, ErrPermanentNode)
	}
	newParent, ok := t.byID[newParentID]
	if !ok {
		return fmt.Errorf("move %d to %d: %w", id, newParentID, ErrNodeNotFound)
	}
	if !newParent.node.IsFolder() || newParent == t.root {
		return fmt.Errorf("move %d to %d: %w", id, newParentID, ErrNotFolder)
	}
	if index < 0 || index > len(newParent.children) {
		return fmt.Errorf("move %d to index %d of %d: %w", id, index, len(newParent.children), ErrIndexOutOfRange)
	}
	for p := newParent; p != nil; p = p.parent {
		if p == n {
			return fmt.Errorf("move %d under %d: %w", id, newParentID, ErrCycle)
		}
	}

	oldParent := n.parent
	oldIndex := n.node.Index
	if oldParent == newParent && (index == oldIndex || index == oldIndex+1) {
		return nil
	}

	oldParent.children = removeAt(oldParent.children, oldIndex)
	reindex(oldParent)
	if oldParent == newParent && index > oldIndex {
		index--
	}

	n.parent = newParent
	newParent.children = insertAt(newParent.children, index, n)
	reindex(newParent)

	return nil
}

// Update replaces the title and URL of a non-permanent node. The URL of a
// folder stays empty.
func (t *BookmarkTree) Update(id int64, title, url string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	n, ok := t.byID[id]
	if !ok {
		return fmt.Errorf("update %d: %w", id, ErrNodeNotFound)
	}
	if n == t.root || n.node.IsPermanent() {
		return fmt.Errorf("update %d: %w", id, ErrPermanentNode)
	}

	n.node.Title = title
	if !n.node.IsFolder() {
		n.node.URL = url
	}
	return nil
}

// UpdateGUID gives a non-permanent node a new GUID.
func (t *BookmarkTree) UpdateGUID(id int64, guid string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	n, ok := t.byID[id]
	if !ok {
		return fmt.Errorf("update guid of %d: %w", id, ErrNodeNotFound)
	}
	if n == t.root || n.node.IsPermanent() {
		return fmt.Errorf("update guid of %d: %w", id, ErrPermanentNode)
	}
	if guid == "" || models.IsPermanentGUID(guid) {
		return fmt.Errorf("update guid of %d: %w", id, ErrInvalidGUID)
	}
	if n.node.GUID == guid {
		return nil
	}
	if _, dup := t.byGUID[guid]; dup {
		return fmt.Errorf("update guid of %d to %q: %w", id, guid, ErrDuplicateGUID)
	}

	delete(t.byGUID, n.node.GUID)
	n.node.GUID = guid
	t.byGUID[guid] = n
	return nil
}

// UpdateFavicon replaces the icon data of a bookmark. Folders carry no
// icon and are refused with ErrNotBookmark.
func (t *BookmarkTree) UpdateFavicon(id int64, data []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	n, ok := t.byID[id]
	if !ok {
		return fmt.Errorf("update favicon of %d: %w", id, ErrNodeNotFound)
	}
	if n.node.IsFolder() {
		return fmt.Errorf("update favicon of %d: %w", id, ErrNotBookmark)
	}

	n.node.Favicon = append([]byte(nil), data...)
	return nil
}

// SetFavicon stores icon data on every bookmark pointing at pageURL and
// returns how many nodes were touched.
func (t *BookmarkTree) SetFavicon(pageURL string, data []byte) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	touched := 0
	for _, n := range t.byID {
		if !n.node.IsFolder() && n.node.URL == pageURL {
			n.node.Favicon = data
			touched++
		}
	}
	return touched
}

// Tree returns a nested copy of the whole tree.
func (t *BookmarkTree) Tree() *models.BookmarkTreeNode {
	t.mu.RLock()
	defer t.mu.RUnlock()

	type frame struct {
		src *treeNode
		dst *models.BookmarkTreeNode
	}
	out := &models.BookmarkTreeNode{BookmarkNode: t.root.node}
	stack := []frame{{src: t.root, dst: out}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, c := range f.src.children {
			child := &models.BookmarkTreeNode{BookmarkNode: c.node}
			f.dst.Children = append(f.dst.Children, child)
			stack = append(stack, frame{src: c, dst: child})
		}
	}
	return out
}

// Restore replaces the tree with persisted nodes. Nodes are attached by
// ParentID and ordered by Index. The root is the node carrying RootGUID;
// missing permanent folders are recreated.
func (t *BookmarkTree) Restore(nodes []models.BookmarkNode) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(nodes) == 0 {
		t.reset()
		t.addMissingPermanentFolders()
		return nil
	}

	byID := make(map[int64]*treeNode, len(nodes))
	byGUID := make(map[string]*treeNode, len(nodes))
	var root *treeNode
	var maxID int64
	for _, node := range nodes {
		if _, dup := byID[node.ID]; dup {
			return fmt.Errorf("restore node %d: %w", node.ID, ErrDuplicateID)
		}
		if _, dup := byGUID[node.GUID]; dup {
			return fmt.Errorf("restore node %d: %w", node.ID, ErrDuplicateGUID)
		}
		n := &treeNode{node: node}
		byID[node.ID] = n
		byGUID[node.GUID] = n
		if node.GUID == models.RootGUID {
			root = n
		}
		if node.ID > maxID {
			maxID = node.ID
		}
	}
	if root == nil {
		return ErrRootNotFound
	}

	permanent := make(map[models.PermanentFolder]*treeNode)
	for _, n := range byID {
		if n == root {
			continue
		}
		parent, ok := byID[n.node.ParentID]
		if !ok {
			return fmt.Errorf("restore node %d: parent %d: %w", n.node.ID, n.node.ParentID, ErrNodeNotFound)
		}
		n.parent = parent
		parent.children = append(parent.children, n)
		if n.node.IsPermanent() {
			permanent[n.node.PermanentTag] = n
		}
	}

	reachable := 0
	stack := []*treeNode{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		reachable++
		sort.SliceStable(n.children, func(i, j int) bool {
			return n.children[i].node.Index < n.children[j].node.Index
		})
		reindex(n)
		stack = append(stack, n.children...)
	}
	if reachable != len(byID) {
		return ErrCycle
	}

	t.root = root
	t.byID = byID
	t.byGUID = byGUID
	t.permanent = permanent
	t.nextID = maxID + 1
	t.addMissingPermanentFolders()

	return nil
}

func insertAt(s []*treeNode, i int, n *treeNode) []*treeNode {
	s = append(s, nil)
	copy(s[i+1:], s[i:])
	s[i] = n
	return s
}

func removeAt(s []*treeNode, i int) []*treeNode {
	copy(s[i:], s[i+1:])
	s[len(s)-1] = nil
	return s[:len(s)-1]
}
