package layout

import "math"

// alignmentOffset returns the space placed before one item (or line, or
// track) when distributing free space among n of them with mode. The first
// item gets the leading offset; later items get gap plus their share.
// reversed is set for reversed flex directions, where flex-start and
// flex-end swap.
func alignmentOffset(free float64, n int, gap float64, mode AlignContent, reversed, isFirst bool) float64 {
	if isFirst {
		switch mode {
		case ContentStart, ContentStretch, ContentSpaceBetween, ContentAuto:
			return 0
		case ContentFlexStart:
			if reversed {
				return free
			}
			return 0
		case ContentEnd:
			return free
		case ContentFlexEnd:
			if reversed {
				return 0
			}
			return free
		case ContentCenter:
			return free / 2
		case ContentSpaceAround:
			if free >= 0 {
				return free / float64(n) / 2
			}
			return free / 2
		case ContentSpaceEvenly:
			if free >= 0 {
				return free / float64(n+1)
			}
			return free / 2
		}
		return 0
	}

	free = math.Max(free, 0)
	switch mode {
	case ContentSpaceBetween:
		return gap + free/float64(n-1)
	case ContentSpaceAround:
		return gap + free/float64(n)
	case ContentSpaceEvenly:
		return gap + free/float64(n+1)
	}
	return gap
}

// alignItemOffset positions an item of size inside a span of length area
// for a self-alignment value. Baseline falls back to start.
func alignItemOffset(mode AlignItems, area, size float64) float64 {
	switch mode {
	case AlignEnd, AlignFlexEnd:
		return area - size
	case AlignCenter:
		return (area - size) / 2
	}
	return 0
}

// gapSum returns the total gap between n items.
func gapSum(gap float64, n int) float64 {
	if n <= 1 {
		return 0
	}
	return gap * float64(n-1)
}
