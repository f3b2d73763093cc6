package hierarchy

import (
	"errors"
	"reflect"
	"sort"
	"testing"
)

// buildForest applies inserts in order and fails the test on any error.
func buildForest(t *testing.T, ops ...func(Map) (Map, error)) Map {
	t.Helper()
	m := Map{}
	for i, op := range ops {
		var err error
		m, err = op(m)
		if err != nil {
			t.Fatalf("op %d: %v", i, err)
		}
	}
	return m
}

func root(id string) func(Map) (Map, error) {
	return func(m Map) (Map, error) { return InsertRoot(m, id, "entry") }
}

func child(id, parent string) func(Map) (Map, error) {
	return func(m Map) (Map, error) { return InsertChild(m, id, parent, "entry") }
}

// checkForest verifies the structural invariants: ancestors equal the
// chain implied by parent pointers, children match derived children,
// and no node appears in its own chain.
func checkForest(t *testing.T, m Map) {
	t.Helper()
	for id, n := range m {
		var chain []string
		for p := n.ParentID; p != ""; p = m[p].ParentID {
			chain = append(chain, p)
			if len(chain) > len(m) {
				t.Fatalf("parent chain of %q does not terminate", id)
			}
		}
		if len(chain) == 0 {
			chain = []string{}
		}
		if !reflect.DeepEqual(n.Ancestors, chain) {
			t.Fatalf("%q ancestors = %v, want %v", id, n.Ancestors, chain)
		}
		for _, anc := range n.Ancestors {
			if anc == id {
				t.Fatalf("%q is its own ancestor", id)
			}
		}
	}
	derived := make(map[string][]string)
	for id, n := range m {
		if n.ParentID != "" {
			derived[n.ParentID] = append(derived[n.ParentID], id)
		}
	}
	for id, n := range m {
		got := append([]string{}, n.Children...)
		want := append([]string{}, derived[id]...)
		sort.Strings(got)
		sort.Strings(want)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("%q children = %v, derived %v", id, got, want)
		}
	}
}

func TestInsertBuildsChains(t *testing.T) {
	m := buildForest(t, root("r"), child("a", "r"), child("b", "a"), child("c", "b"))
	checkForest(t, m)
	want := []string{"b", "a", "r"}
	if !reflect.DeepEqual(m["c"].Ancestors, want) {
		t.Fatalf("c ancestors = %v, want %v", m["c"].Ancestors, want)
	}
}

func TestInsertDuplicate(t *testing.T) {
	m := buildForest(t, root("r"))
	_, err := InsertRoot(m, "r", "entry")
	var dup *DuplicateEntryError
	if !errors.As(err, &dup) || dup.ID != "r" {
		t.Fatalf("expected DuplicateEntryError for r, got %v", err)
	}
	if _, err := InsertChild(m, "x", "missing", "entry"); err == nil {
		t.Fatalf("expected UnknownParentError")
	}
}

func TestReparentRecomputesDescendants(t *testing.T) {
	m := buildForest(t,
		root("r1"), root("r2"),
		child("a", "r1"), child("b", "a"), child("c", "b"))

	out, err := Reparent(m, "a", "r2")
	if err != nil {
		t.Fatalf("reparent: %v", err)
	}
	checkForest(t, out)
	if got := out["c"].Ancestors; !reflect.DeepEqual(got, []string{"b", "a", "r2"}) {
		t.Fatalf("c ancestors = %v", got)
	}
	// Original snapshot untouched.
	if got := m["c"].Ancestors; !reflect.DeepEqual(got, []string{"b", "a", "r1"}) {
		t.Fatalf("input snapshot mutated: c ancestors = %v", got)
	}
}

func TestReparentToTopLevel(t *testing.T) {
	m := buildForest(t, root("r"), child("a", "r"), child("b", "a"))
	out, err := Reparent(m, "a", "")
	if err != nil {
		t.Fatalf("reparent: %v", err)
	}
	checkForest(t, out)
	if out["a"].ParentID != "" || len(out["a"].Ancestors) != 0 {
		t.Fatalf("a should be top level, got %+v", out["a"])
	}
	if !reflect.DeepEqual(out["b"].Ancestors, []string{"a"}) {
		t.Fatalf("b ancestors = %v", out["b"].Ancestors)
	}
}

func TestReparentCycleRejected(t *testing.T) {
	m := buildForest(t, root("r"), child("a", "r"), child("b", "a"))
	before := m.Clone()

	for _, target := range []string{"a", "b"} {
		_, err := Reparent(m, "a", target)
		var cyc *CycleError
		if !errors.As(err, &cyc) {
			t.Fatalf("reparent a under %q: expected CycleError, got %v", target, err)
		}
	}
	if !reflect.DeepEqual(m, before) {
		t.Fatalf("rejected reparent mutated the snapshot")
	}
}

func TestDeleteWithReflowMidTree(t *testing.T) {
	m := buildForest(t, root("r"), child("a", "r"), child("b", "a"), child("c", "b"))
	res, err := DeleteWithReflow(m, "a")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	out := res.Map
	checkForest(t, out)
	if out["b"].ParentID != "r" {
		t.Fatalf("b should be promoted to r, got %q", out["b"].ParentID)
	}
	if !reflect.DeepEqual(out["c"].Ancestors, []string{"b", "r"}) {
		t.Fatalf("c ancestors = %v", out["c"].Ancestors)
	}
	if res.RemovedFromChildrenOf != "r" {
		t.Fatalf("RemovedFromChildrenOf = %q", res.RemovedFromChildrenOf)
	}
	if len(res.OrphanedTopLevelIDs) != 0 {
		t.Fatalf("no orphans expected, got %v", res.OrphanedTopLevelIDs)
	}
}

func TestDeleteWithReflowRoot(t *testing.T) {
	m := buildForest(t, root("r"), child("a", "r"), child("b", "r"))
	res, err := DeleteWithReflow(m, "r")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	checkForest(t, res.Map)
	got := append([]string{}, res.OrphanedTopLevelIDs...)
	sort.Strings(got)
	if !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("orphans = %v", got)
	}
	if res.RemovedFromChildrenOf != "" {
		t.Fatalf("RemovedFromChildrenOf = %q, want empty", res.RemovedFromChildrenOf)
	}
}

func TestDeleteUnknown(t *testing.T) {
	m := buildForest(t, root("r"))
	if _, err := DeleteWithReflow(m, "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDescendantsAndAncestry(t *testing.T) {
	m := buildForest(t, root("r"), child("a", "r"), child("b", "a"), child("x", "r"))
	got := Descendants(m, "r")
	sort.Strings(got)
	if !reflect.DeepEqual(got, []string{"a", "b", "x"}) {
		t.Fatalf("descendants = %v", got)
	}
	if !IsAncestorOf(m, "r", "b") {
		t.Fatalf("r should be ancestor of b")
	}
	if IsAncestorOf(m, "b", "r") {
		t.Fatalf("b is not an ancestor of r")
	}
	if IsAncestorOf(m, "a", "x") {
		t.Fatalf("a is not an ancestor of x")
	}
}
