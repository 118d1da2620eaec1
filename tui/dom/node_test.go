package dom

import "testing"

func TestAppend_FragmentMovesChildrenInOrder(t *testing.T) {
	frag := NewFragment()
	frag.Append(NewText("p", "one"), NewText("p", "two"))

	root := New("main")
	root.Append(frag)

	if frag.Len() != 0 {
		t.Fatalf("fragment must be emptied, has %d children", frag.Len())
	}
	kids := root.Children()
	if len(kids) != 2 || kids[0].Text() != "one" || kids[1].Text() != "two" {
		t.Fatalf("unexpected children: %s", root)
	}
	if kids[0].Parent() != root {
		t.Fatalf("moved child must point at new parent")
	}
}

func TestAppend_MovesAttachedNode(t *testing.T) {
	a, b := New("div"), New("div")
	p := New("p")
	a.Append(p)
	b.Append(p)
	if a.Len() != 0 || b.Len() != 1 || p.Parent() != b {
		t.Fatalf("node must move between parents")
	}
}

func TestClear_RemovesAllAndDetaches(t *testing.T) {
	root := New("main")
	child := New("article")
	root.Append(child, New("article"), New("article"))

	if got := root.Clear(); got != 3 {
		t.Fatalf("expected 3 removed, got %d", got)
	}
	if root.Len() != 0 || child.Parent() != nil {
		t.Fatalf("clear must detach children")
	}
}

func TestClasses_Toggle(t *testing.T) {
	n := NewText("section", "", "comments", "hide")
	if n.ToggleClass("hide") {
		t.Fatalf("toggle must remove present class")
	}
	if n.HasClass("hide") || !n.HasClass("comments") {
		t.Fatalf("unexpected classes: %v", n.Classes())
	}
	if !n.ToggleClass("hide") {
		t.Fatalf("toggle must add absent class")
	}
	n.AddClass("hide")
	if len(n.Classes()) != 2 {
		t.Fatalf("add must not duplicate: %v", n.Classes())
	}
}

func TestListeners_AddRemoveDispatch(t *testing.T) {
	n := New("button")
	calls := 0
	id := n.AddListener("click", func(ev Event) {
		if ev.Target != n || ev.Type != "click" {
			t.Fatalf("unexpected event: %+v", ev)
		}
		calls++
	})

	if ran := n.Dispatch("click"); ran != 1 || calls != 1 {
		t.Fatalf("expected one handler run, ran=%d calls=%d", ran, calls)
	}
	if !n.RemoveListener("click", id) {
		t.Fatalf("remove must succeed for known id")
	}
	if n.RemoveListener("click", id) {
		t.Fatalf("second remove must fail")
	}
	if n.Dispatch("click") != 0 || n.ListenerCount("click") != 0 {
		t.Fatalf("removed listener must not run")
	}
}

func TestQuery_DocumentOrder(t *testing.T) {
	root := New("main")
	for _, id := range []string{"1", "2"} {
		art := New("article")
		btn := NewText("button", "Show Comments")
		btn.SetData("post-id", id)
		sec := New("section")
		sec.SetData("post-id", id)
		art.Append(btn, sec)
		root.Append(art)
	}

	buttons := root.QueryAll(All(ByTag("button"), HasAttr("data-post-id")))
	if len(buttons) != 2 {
		t.Fatalf("expected 2 buttons, got %d", len(buttons))
	}
	if v, _ := buttons[0].Data("post-id"); v != "1" {
		t.Fatalf("expected document order, got %q first", v)
	}
	sec := root.Query(All(ByTag("section"), AttrEquals("data-post-id", "2")))
	if sec == nil || !root.Contains(sec) {
		t.Fatalf("expected section 2")
	}
	if root.Query(ByTag("table")) != nil {
		t.Fatalf("expected no match")
	}
}

func TestString_StableAttributeOrder(t *testing.T) {
	n := NewText("button", "Show Comments")
	n.SetAttr("type", "button")
	n.SetData("post-id", "3")
	want := `<button data-post-id="3" type="button">Show Comments</button>`
	if got := n.String(); got != want {
		t.Fatalf("got %s want %s", got, want)
	}
}
