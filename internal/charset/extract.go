package charset

// Keep reports whether r is counted: control characters below 32 are
// dropped except newline, carriage return and tab.
func Keep(r rune) bool {
	if r >= 32 {
		return true
	}
	return r == '\n' || r == '\r' || r == '\t'
}

// Extract counts every kept character of text.
func Extract(text string) *Inventory {
	inv := NewInventory()
	for _, r := range text {
		if !Keep(r) {
			continue
		}
		inv.Add(r, 1)
	}
	return inv
}
