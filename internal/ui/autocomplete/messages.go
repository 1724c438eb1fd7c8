package autocomplete

// ClickMsg is a pointer press. X and Y are relative to the instance's top
// left corner; Outside marks a press anywhere else on screen.
type ClickMsg struct {
	X, Y    int
	Outside bool
}

// HoverMsg is pointer motion over the instance, in the same coordinates
type HoverMsg struct {
	X, Y int
}
