package storage

import (
	"strings"

	"github.com/kerim-dauren/hostname/internal/domain"
)

type labelNode struct {
	children map[string]*labelNode
	isEnd    bool
	value    domain.Domain
}

func newLabelNode() *labelNode {
	return &labelNode{
		children: make(map[string]*labelNode),
	}
}

// LabelTree indexes domains by their labels read right to left, so every
// domain shares a path with its parents. Lookups ignore letter case.
type LabelTree struct {
	root *labelNode
	size int
}

func NewLabelTree() *LabelTree {
	return &LabelTree{
		root: newLabelNode(),
	}
}

// Insert stores value under the given labels (leftmost first).
func (lt *LabelTree) Insert(labels []string, value domain.Domain) {
	if len(labels) == 0 {
		return
	}

	node := lt.root
	for i := len(labels) - 1; i >= 0; i-- {
		key := strings.ToLower(labels[i])
		child, exists := node.children[key]
		if !exists {
			child = newLabelNode()
			node.children[key] = child
		}
		node = child
	}

	if !node.isEnd {
		lt.size++
	}
	node.isEnd = true
	node.value = value
}

func (lt *LabelTree) Search(labels []string) (domain.Domain, bool) {
	if len(labels) == 0 {
		return domain.Domain{}, false
	}

	node := lt.root
	for i := len(labels) - 1; i >= 0; i-- {
		child, exists := node.children[strings.ToLower(labels[i])]
		if !exists {
			return domain.Domain{}, false
		}
		node = child
	}

	if node.isEnd {
		return node.value, true
	}
	return domain.Domain{}, false
}

// LongestProperSuffix returns the value stored under the longest strict
// suffix of labels, i.e. the closest ancestor of the name they form.
func (lt *LabelTree) LongestProperSuffix(labels []string) (domain.Domain, bool) {
	var (
		found bool
		value domain.Domain
	)

	node := lt.root
	for i := len(labels) - 1; i > 0; i-- {
		child, exists := node.children[strings.ToLower(labels[i])]
		if !exists {
			break
		}
		node = child
		if node.isEnd {
			found = true
			value = node.value
		}
	}

	return value, found
}

func (lt *LabelTree) Size() int {
	return lt.size
}

func (lt *LabelTree) Clear() {
	lt.root = newLabelNode()
	lt.size = 0
}
