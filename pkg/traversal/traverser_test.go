package traversal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/datashield/pkg/domain"
)

func visitOrder(t *testing.T, root *domain.Node, rules ...Rule) []string {
	t.Helper()
	var order []string
	err := New(rules...).Walk(root, func(c Context) error {
		order = append(order, c.Current.ID)
		return nil
	})
	require.NoError(t, err)
	return order
}

func TestWalk_DisplayValueBeforeElements(t *testing.T) {
	mesh := &domain.Node{ID: "mesh"}
	child := &domain.Node{ID: "child"}
	root := &domain.Node{ID: "root"}
	root.SetMember(domain.MemberDisplayValue, mesh)
	root.SetMember(domain.MemberElements, []*domain.Node{child})

	assert.Equal(t, []string{"root", "mesh", "child"}, visitOrder(t, root))
}

func TestWalk_LeavesHostSlicesIntact(t *testing.T) {
	// The displayValue slice belongs to the graph. When it has spare
	// capacity, gathering children must not grow it in place and overwrite
	// storage a host alias still sees.
	mesh := &domain.Node{ID: "mesh"}
	sentinel := &domain.Node{ID: "sentinel"}
	child := &domain.Node{ID: "child"}

	backing := make([]*domain.Node, 1, 2)
	backing[0] = mesh
	full := append(backing, sentinel)

	root := &domain.Node{ID: "root"}
	root.SetMember(domain.MemberDisplayValue, backing)
	root.SetMember(domain.MemberElements, []*domain.Node{child})

	assert.Equal(t, []string{"root", "mesh", "child"}, visitOrder(t, root))
	assert.Equal(t, "sentinel", full[1].ID, "traversal must not write into the member's backing array")
}

func TestWalk_FallbackDescendsIntoMembers(t *testing.T) {
	a := &domain.Node{ID: "a"}
	b := &domain.Node{ID: "b"}
	root := &domain.Node{ID: "root"}
	root.SetMember("zeta", b)
	root.SetMember("alpha", []any{a, "not a node"})

	// Member-name order keeps fallback traversal deterministic.
	assert.Equal(t, []string{"root", "a", "b"}, visitOrder(t, root))
}

func TestWalk_SharedChildVisitedOnce(t *testing.T) {
	shared := &domain.Node{ID: "shared"}
	left := &domain.Node{ID: "left"}
	left.SetMember(domain.MemberElements, []*domain.Node{shared})
	right := &domain.Node{ID: "right"}
	right.SetMember(domain.MemberElements, []*domain.Node{shared})
	root := &domain.Node{ID: "root"}
	root.SetMember(domain.MemberElements, []*domain.Node{left, right})

	assert.Equal(t, []string{"root", "left", "shared", "right"}, visitOrder(t, root))
}

func TestWalk_CycleTerminates(t *testing.T) {
	a := &domain.Node{ID: "a"}
	b := &domain.Node{ID: "b"}
	a.SetMember(domain.MemberElements, []*domain.Node{b})
	b.SetMember(domain.MemberElements, []*domain.Node{a})

	assert.Equal(t, []string{"a", "b"}, visitOrder(t, a))
}

func TestWalk_NodesWithoutIDsUsePointerIdentity(t *testing.T) {
	first := &domain.Node{Type: "Mesh"}
	second := &domain.Node{Type: "Mesh"}
	root := &domain.Node{ID: "root"}
	root.SetMember(domain.MemberElements, []*domain.Node{first, second, first})

	count := 0
	require.NoError(t, New().Walk(root, func(Context) error {
		count++
		return nil
	}))
	assert.Equal(t, 3, count, "distinct id-less nodes are both visited, repeats are not")
}

func TestWalk_PathHoldsAncestors(t *testing.T) {
	leaf := &domain.Node{ID: "leaf"}
	mid := &domain.Node{ID: "mid"}
	mid.SetMember(domain.MemberElements, []*domain.Node{leaf})
	root := &domain.Node{ID: "root"}
	root.SetMember(domain.MemberElements, []*domain.Node{mid})

	contexts := New().Contexts(root)
	require.Len(t, contexts, 3)

	last := contexts[2]
	assert.Equal(t, "leaf", last.Current.ID)
	require.Len(t, last.Path, 2)
	assert.Equal(t, "root", last.Path[0].ID)
	assert.Equal(t, "mid", last.Path[1].ID)
}

func TestWalk_VisitorErrorAborts(t *testing.T) {
	child := &domain.Node{ID: "child"}
	root := &domain.Node{ID: "root"}
	root.SetMember(domain.MemberElements, []*domain.Node{child})

	boom := errors.New("boom")
	visited := 0
	err := New().Walk(root, func(Context) error {
		visited++
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, visited)
}

func TestWalk_NilRoot(t *testing.T) {
	require.NoError(t, New().Walk(nil, func(Context) error {
		t.Fatal("visitor must not run for a nil root")
		return nil
	}))
}
