package parallel

// Band is a half-open row range [Y0, Y1).
type Band struct {
	Y0, Y1 int
}

// Height returns the number of rows in the band.
func (b Band) Height() int { return b.Y1 - b.Y0 }

// SplitRows divides rows [y0, y1) into at most parts contiguous bands of
// near-equal height. The first bands take the remainder rows. No band is
// empty; an empty range yields nil.
func SplitRows(y0, y1, parts int) []Band {
	n := y1 - y0
	if n <= 0 {
		return nil
	}
	parts = max(1, min(parts, n))

	bands := make([]Band, 0, parts)
	base, extra := n/parts, n%parts
	y := y0
	for i := range parts {
		h := base
		if i < extra {
			h++
		}
		bands = append(bands, Band{Y0: y, Y1: y + h})
		y += h
	}
	return bands
}
