// Package textmeasure measures monospace text for layout leaves.
//
// Text is normalized to NFC, split into words on whitespace and wrapped
// greedily to the width a layout pass offers. Column widths come from
// go-runewidth, so wide East Asian glyphs take two cells and combining
// marks none.
package textmeasure
