package dom

// Matcher selects nodes during a query.
type Matcher func(*Node) bool

// ByTag matches elements with the given tag.
func ByTag(tag string) Matcher {
	return func(n *Node) bool { return n.tag == tag }
}

// HasAttr matches elements carrying the attribute.
func HasAttr(name string) Matcher {
	return func(n *Node) bool {
		_, ok := n.attrs[name]
		return ok
	}
}

// AttrEquals matches elements whose attribute equals value.
func AttrEquals(name, value string) Matcher {
	return func(n *Node) bool {
		v, ok := n.attrs[name]
		return ok && v == value
	}
}

// All matches when every matcher does.
func All(ms ...Matcher) Matcher {
	return func(n *Node) bool {
		for _, m := range ms {
			if !m(n) {
				return false
			}
		}
		return true
	}
}

// Walk visits n and its descendants in document order. Returning false from
// fn skips that node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// QueryAll returns the descendants of n (excluding n) that match, in
// document order.
func (n *Node) QueryAll(m Matcher) []*Node {
	var out []*Node
	for _, c := range n.children {
		c.Walk(func(d *Node) bool {
			if m(d) {
				out = append(out, d)
			}
			return true
		})
	}
	return out
}

// Query returns the first matching descendant, or nil.
func (n *Node) Query(m Matcher) *Node {
	if found := n.QueryAll(m); len(found) > 0 {
		return found[0]
	}
	return nil
}

// Contains reports whether d is n or one of its descendants.
func (n *Node) Contains(d *Node) bool {
	for p := d; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}
