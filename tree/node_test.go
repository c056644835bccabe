package tree

import (
	"testing"
)

func TestNodeAddChild(t *testing.T) {
	parent := NewNode(1)
	child := NewNode(2)
	parent.AddChild(child)
	if parent.ChildCount() != 1 {
		t.Errorf("expected parent to have 1 child, has %d", parent.ChildCount())
	}
	if child.Parent() != parent {
		t.Error("expected child's parent to be set, isn't")
	}
}

func TestNodeReparenting(t *testing.T) {
	a := NewNode(1)
	b := NewNode(2)
	ch := NewNode(3)
	a.AddChild(ch)
	b.AddChild(ch) // must detach ch from a first
	if a.ChildCount() != 0 {
		t.Errorf("expected old parent to have 0 children, has %d", a.ChildCount())
	}
	if b.ChildCount() != 1 {
		t.Errorf("expected new parent to have 1 child, has %d", b.ChildCount())
	}
	if ch.Parent() != b {
		t.Error("expected child to be re-parented to b, isn't")
	}
}

func TestNodeInsertChildAt(t *testing.T) {
	parent := NewNode(0)
	parent.AddChild(NewNode(1))
	parent.AddChild(NewNode(3))
	parent.InsertChildAt(1, NewNode(2))
	if parent.ChildCount() != 3 {
		t.Fatalf("expected parent to have 3 children, has %d", parent.ChildCount())
	}
	for i, ch := range parent.Children() {
		if ch.Payload != i+1 {
			t.Errorf("expected child #%d to carry payload %d, carries %d", i, i+1, ch.Payload)
		}
	}
}

func TestNodeIsolate(t *testing.T) {
	parent := NewNode(1)
	ch := NewNode(2)
	parent.AddChild(ch)
	ch.Isolate()
	if parent.ChildCount() != 0 {
		t.Errorf("expected parent to have 0 children after isolate, has %d", parent.ChildCount())
	}
	if ch.Parent() != nil {
		t.Error("expected isolated node to have no parent, has one")
	}
}

func TestNodeWalkPreOrder(t *testing.T) {
	root := NewNode(1)
	left := NewNode(2)
	right := NewNode(4)
	left.AddChild(NewNode(3))
	root.AddChild(left)
	root.AddChild(right)
	var visited []int
	root.Walk(func(n *Node[int]) bool {
		visited = append(visited, n.Payload)
		return true
	})
	want := []int{1, 2, 3, 4}
	if len(visited) != len(want) {
		t.Fatalf("expected walk to visit %d nodes, visited %d", len(want), len(visited))
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Errorf("expected visit #%d to be node %d, is %d", i, want[i], visited[i])
		}
	}
}
