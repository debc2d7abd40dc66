package core

import "strconv"

// childPath derives the stable identity string for a child position. The
// path is the sole key linking a component occurrence to its persisted hook
// state, so the same logical occurrence must resolve to the same path on
// every pass.
//
// Resolution order:
//  1. an explicit key wins: parent + ".k" + key
//  2. unkeyed components are numbered by how many earlier unkeyed siblings
//     share the same function: parent + ".c" + name + "_" + n
//  3. everything else is positional: parent + ".i" + index
//
// Rule 3 means reordering unkeyed host children does not preserve identity;
// that is the documented trade-off, not a defect.
func childPath(parent, key string, index int, node *VNode, siblings []*VNode) string {
	if key != "" {
		return parent + ".k" + key
	}
	if node.Kind == KindComponent {
		n := 0
		for i := 0; i < index && i < len(siblings); i++ {
			sib := siblings[i]
			if sib == nil || sib.Key != "" {
				continue
			}
			if sib.Kind == KindComponent && sameComponent(sib.Fn, node.Fn) {
				n++
			}
		}
		return parent + ".c" + componentName(node.Fn) + "_" + strconv.Itoa(n)
	}
	return parent + ".i" + strconv.Itoa(index)
}
