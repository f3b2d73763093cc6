package topic

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"testing"

	"tableflip.dev/codex/pkg/hierarchy"
	"tableflip.dev/codex/pkg/store"
)

func testForest() (*Forest, *store.Memory) {
	mem := store.NewMemory()
	counter := 0
	f := &Forest{
		Store: mem,
		World: "default",
		Topic: "characters",
		NewID: func() string {
			counter++
			return fmt.Sprintf("id-%d", counter)
		},
	}
	return f, mem
}

func TestCreateRootAndChildPersist(t *testing.T) {
	ctx := context.Background()
	f, mem := testForest()

	r, err := f.CreateRoot(ctx, "person")
	if err != nil {
		t.Fatalf("create root: %v", err)
	}
	c, err := f.CreateChild(ctx, r, "person")
	if err != nil {
		t.Fatalf("create child: %v", err)
	}

	m, top, err := f.Snapshot(ctx)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if !reflect.DeepEqual(top, []string{r}) {
		t.Fatalf("topNodes = %v", top)
	}
	if m[c].ParentID != r {
		t.Fatalf("child parent = %q", m[c].ParentID)
	}
	if !reflect.DeepEqual(m[r].Children, []string{c}) {
		t.Fatalf("root children = %v", m[r].Children)
	}
	// Each of the two mutations rewrote the hierarchy blob once; only
	// the root creation touched topNodes.
	if got := mem.Writes["default/characters/hierarchies"]; got != 2 {
		t.Fatalf("hierarchies writes = %d", got)
	}
	if got := mem.Writes["default/characters/topNodes"]; got != 1 {
		t.Fatalf("topNodes writes = %d", got)
	}
}

func TestDeleteReflowsGrandchildren(t *testing.T) {
	ctx := context.Background()
	f, _ := testForest()

	r, _ := f.CreateRoot(ctx, "t")
	c1, err := f.CreateChild(ctx, r, "t")
	if err != nil {
		t.Fatalf("create c1: %v", err)
	}
	c2, err := f.CreateChild(ctx, c1, "t")
	if err != nil {
		t.Fatalf("create c2: %v", err)
	}

	if err := f.Delete(ctx, c1); err != nil {
		t.Fatalf("delete: %v", err)
	}

	m, top, _ := f.Snapshot(ctx)
	if m[c2].ParentID != r {
		t.Fatalf("c2 parent = %q, want %q", m[c2].ParentID, r)
	}
	if !reflect.DeepEqual(m[r].Children, []string{c2}) {
		t.Fatalf("root children = %v", m[r].Children)
	}
	if !reflect.DeepEqual(top, []string{r}) {
		t.Fatalf("topNodes changed: %v", top)
	}
}

func TestDeleteRootPromotesChildren(t *testing.T) {
	ctx := context.Background()
	f, _ := testForest()

	r, _ := f.CreateRoot(ctx, "t")
	a, _ := f.CreateChild(ctx, r, "t")
	b, _ := f.CreateChild(ctx, r, "t")

	if err := f.Delete(ctx, r); err != nil {
		t.Fatalf("delete: %v", err)
	}
	_, top, _ := f.Snapshot(ctx)
	sort.Strings(top)
	want := []string{a, b}
	sort.Strings(want)
	if !reflect.DeepEqual(top, want) {
		t.Fatalf("topNodes = %v, want %v", top, want)
	}
}

func TestMoveMaintainsTopNodes(t *testing.T) {
	ctx := context.Background()
	f, _ := testForest()

	r1, _ := f.CreateRoot(ctx, "t")
	r2, _ := f.CreateRoot(ctx, "t")

	if err := f.Move(ctx, r2, r1); err != nil {
		t.Fatalf("move under: %v", err)
	}
	_, top, _ := f.Snapshot(ctx)
	if !reflect.DeepEqual(top, []string{r1}) {
		t.Fatalf("topNodes = %v", top)
	}

	if err := f.Move(ctx, r2, ""); err != nil {
		t.Fatalf("move to top: %v", err)
	}
	_, top, _ = f.Snapshot(ctx)
	sort.Strings(top)
	if !reflect.DeepEqual(top, []string{r1, r2}) {
		t.Fatalf("topNodes = %v", top)
	}
}

func TestMoveCycleRejectedWithoutWrites(t *testing.T) {
	ctx := context.Background()
	f, mem := testForest()

	r, _ := f.CreateRoot(ctx, "t")
	a, _ := f.CreateChild(ctx, r, "t")
	writes := mem.Writes["default/characters/hierarchies"]

	err := f.Move(ctx, r, a)
	var cyc *hierarchy.CycleError
	if !errors.As(err, &cyc) {
		t.Fatalf("expected CycleError, got %v", err)
	}
	if mem.Writes["default/characters/hierarchies"] != writes {
		t.Fatalf("rejected move still wrote the hierarchy blob")
	}
}

func TestValidParentsAndChildren(t *testing.T) {
	ctx := context.Background()
	f, _ := testForest()

	r, _ := f.CreateRoot(ctx, "t")
	a, _ := f.CreateChild(ctx, r, "t")
	b, _ := f.CreateChild(ctx, a, "t")
	x, _ := f.CreateRoot(ctx, "t")

	parents, err := f.ValidParents(ctx, a)
	if err != nil {
		t.Fatalf("valid parents: %v", err)
	}
	// a cannot move under itself or its descendant b.
	want := []string{r, x}
	sort.Strings(want)
	if !reflect.DeepEqual(parents, want) {
		t.Fatalf("validParents = %v, want %v", parents, want)
	}

	children, err := f.ValidChildren(ctx, b)
	if err != nil {
		t.Fatalf("valid children: %v", err)
	}
	// b cannot adopt itself or its own ancestors a and r.
	if !reflect.DeepEqual(children, []string{x}) {
		t.Fatalf("validChildren = %v, want [%s]", children, x)
	}
}

func TestPersistenceFailureSurfaces(t *testing.T) {
	ctx := context.Background()
	f, mem := testForest()

	mem.FailNextSet = errors.New("disk full")
	_, err := f.CreateRoot(ctx, "t")
	var pe *store.PersistenceError
	if !errors.As(err, &pe) {
		t.Fatalf("expected PersistenceError, got %v", err)
	}
}
