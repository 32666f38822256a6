package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the application key bindings.
type KeyMap struct {
	Quit      key.Binding
	Back      key.Binding
	Enter     key.Binding
	Tab       key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	New       key.Binding
	Edit      key.Binding
	Delete    key.Binding
	Boards    key.Binding
	Trash     key.Binding
	Arrange   key.Binding
	Color     key.Binding
	Collapse  key.Binding
	Duplicate key.Binding
	PanMode   key.Binding
	Export    key.Binding
	Import    key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("↵", "confirm")),
		Tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "down")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "left")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "right")),
		New:       key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
		Edit:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Boards:    key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "boards")),
		Trash:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "trash")),
		Arrange:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "arrange")),
		Color:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "color")),
		Collapse:  key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "collapse")),
		Duplicate: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "duplicate")),
		PanMode:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pan mode")),
		Export:    key.NewBinding(key.WithKeys("E"), key.WithHelp("E", "export")),
		Import:    key.NewBinding(key.WithKeys("I"), key.WithHelp("I", "import")),
	}
}
