// Package doc loads layout documents: YAML (or JSON) descriptions of a
// styled node tree that can be built into a layout.Tree.
//
// A document looks like:
//
//	version: v1
//	available: {width: 800, height: max-content}
//	cell: {width: 8, height: 16}
//	root:
//	  name: page
//	  style:
//	    display: grid
//	    grid-template-columns: 200px 1fr
//	    gap: 8px
//	  children:
//	    - name: nav
//	      text: Home About Contact
//	    - name: main
//	      style: {padding: 8px 16px}
//
// Style keys use CSS property names. Dimension values accept px (or a bare
// number), %, fr, auto, none, min-content, max-content and
// fit-content(...). Track lists accept minmax(a, b) and repeat(n, ...).
package doc
