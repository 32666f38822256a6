package views

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sonotes/internal/host"
	"sonotes/internal/models"
	"sonotes/internal/store"
	"sonotes/internal/transfer"
	"sonotes/internal/ui/keys"
	"sonotes/internal/ui/styles"
)

type boardItem struct {
	board   models.Board
	notes   int
	current bool
}

func (i boardItem) Title() string {
	title := fmt.Sprintf("%s %s", i.board.Icon, i.board.Name)
	if i.current {
		title += " ●"
	}
	return title
}

func (i boardItem) Description() string {
	if i.notes == 1 {
		return "1 note"
	}
	return fmt.Sprintf("%d notes", i.notes)
}

func (i boardItem) FilterValue() string { return i.board.Name }

type boardDelegate struct {
	styles *styles.Styles
	width  int
}

func (d boardDelegate) Height() int                               { return 2 }
func (d boardDelegate) Spacing() int                              { return 1 }
func (d boardDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d boardDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	b, ok := item.(boardItem)
	if !ok {
		return
	}

	selected := index == m.Index()
	width := max(d.width-4, 20)

	var titleStyle, descStyle lipgloss.Style
	if selected {
		titleStyle = d.styles.ListSelected.Width(width)
		descStyle = d.styles.ListSelected.Foreground(styles.Current.ForegroundDim).Width(width)
	} else {
		titleStyle = d.styles.ListItem.Width(width)
		descStyle = d.styles.ListItem.Foreground(styles.Current.ForegroundDim).Width(width)
	}

	fmt.Fprintf(w, "%s\n%s", titleStyle.Render(b.Title()), descStyle.Render(b.Description()))
}

// BoardSelected asks the app to return to the canvas after a switch.
type BoardSelected struct{}

// CloseBoards asks the app to return to the canvas unchanged.
type CloseBoards struct{}

// pathPurpose says what the path prompt will do with its input.
type pathPurpose int

const (
	purposeExportBoard pathPurpose = iota
	purposeExportAll
	purposeImport
)

// BoardListView is the board dock: switching, creating, renaming,
// reordering, deleting, and board-scoped import/export.
type BoardListView struct {
	store    *store.Store
	list     list.Model
	delegate *boardDelegate
	styles   *styles.Styles
	keys     keys.KeyMap
	width    int
	height   int

	creating         bool
	renaming         bool
	renameTargetID   string
	confirmingDelete bool
	deleteTargetID   string
	deleteTargetName string

	nameInput textinput.Model
	iconInput textinput.Model
	focusIdx  int

	prompting  bool
	purpose    pathPurpose
	pathInput  textinput.Model
	promptNote string
}

// NewBoardListView creates the board dock over a store.
func NewBoardListView(st *store.Store) *BoardListView {
	s := styles.NewStyles()

	name := textinput.New()
	name.Placeholder = "Board name"
	name.CharLimit = 60

	icon := textinput.New()
	icon.Placeholder = "Icon (emoji, optional)"
	icon.CharLimit = 8

	path := textinput.New()
	path.Placeholder = "/path/to/file.json"
	path.CharLimit = 250

	delegate := &boardDelegate{styles: s, width: 80}

	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = "Boards"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = s.Title
	l.SetShowHelp(false)

	return &BoardListView{
		store:     st,
		list:      l,
		delegate:  delegate,
		styles:    s,
		keys:      keys.DefaultKeyMap(),
		nameInput: name,
		iconInput: icon,
		pathInput: path,
	}
}

// Init initializes the view
func (v *BoardListView) Init() tea.Cmd {
	v.reload()
	return nil
}

// reload rebuilds the list items from the store.
func (v *BoardListView) reload() {
	snap := v.store.Snapshot()
	counts := make(map[string]int)
	for _, n := range snap.Notes {
		if !n.InTrash() {
			counts[n.BoardID]++
		}
	}
	items := make([]list.Item, len(snap.Boards))
	for i, b := range snap.Boards {
		items[i] = boardItem{
			board:   b,
			notes:   counts[b.ID],
			current: b.ID == snap.CurrentBoardID,
		}
	}
	v.list.SetItems(items)
}

func (v *BoardListView) selectedBoard() (models.Board, bool) {
	item, ok := v.list.SelectedItem().(boardItem)
	if !ok {
		return models.Board{}, false
	}
	return item.board, true
}

// Update handles messages
func (v *BoardListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		contentWidth := styles.ContentWidth(msg.Width)
		v.delegate.width = contentWidth
		v.list.SetSize(contentWidth-4, msg.Height-6)
		return v, nil

	case tea.KeyMsg:
		if v.confirmingDelete {
			return v.updateConfirmDelete(msg)
		}
		if v.creating || v.renaming {
			return v.updateForm(msg)
		}
		if v.prompting {
			return v.updatePathPrompt(msg)
		}
		return v.updateBrowsing(msg)
	}

	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

func (v *BoardListView) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Quit):
		return v, tea.Quit

	case key.Matches(msg, v.keys.Back):
		return v, func() tea.Msg { return CloseBoards{} }

	case key.Matches(msg, v.keys.Enter):
		if b, ok := v.selectedBoard(); ok {
			v.store.SwitchBoard(b.ID)
			return v, func() tea.Msg { return BoardSelected{} }
		}

	case key.Matches(msg, v.keys.New):
		v.creating = true
		v.focusIdx = 0
		v.nameInput.Reset()
		v.iconInput.Reset()
		v.updateFormFocus()
		return v, textinput.Blink

	case key.Matches(msg, v.keys.Edit):
		if b, ok := v.selectedBoard(); ok {
			v.renaming = true
			v.renameTargetID = b.ID
			v.focusIdx = 0
			v.nameInput.SetValue(b.Name)
			v.iconInput.SetValue(b.Icon)
			v.updateFormFocus()
			return v, textinput.Blink
		}

	case key.Matches(msg, v.keys.Delete):
		if b, ok := v.selectedBoard(); ok {
			if len(v.store.Boards()) <= 1 {
				return v, nil
			}
			v.confirmingDelete = true
			v.deleteTargetID = b.ID
			v.deleteTargetName = b.Name
		}
		return v, nil

	case msg.String() == "[":
		if b, ok := v.selectedBoard(); ok {
			v.store.ReorderBoard(b.ID, -1)
			v.reload()
			if idx := v.list.Index(); idx > 0 {
				v.list.Select(idx - 1)
			}
		}
		return v, nil

	case msg.String() == "]":
		if b, ok := v.selectedBoard(); ok {
			v.store.ReorderBoard(b.ID, 1)
			v.reload()
			if idx := v.list.Index(); idx < len(v.list.Items())-1 {
				v.list.Select(idx + 1)
			}
		}
		return v, nil

	case msg.String() == "m":
		// Move the canvas selection onto the highlighted board.
		if b, ok := v.selectedBoard(); ok && v.store.SelectionCount() > 0 {
			v.store.MoveSelectedToBoard(b.ID)
			v.reload()
		}
		return v, nil

	case msg.String() == "c":
		if b, ok := v.selectedBoard(); ok && v.store.SelectionCount() > 0 {
			v.store.CopySelectedToBoard(b.ID)
			v.reload()
		}
		return v, nil

	case key.Matches(msg, v.keys.Export):
		if _, ok := v.selectedBoard(); ok {
			v.startPrompt(purposeExportBoard, defaultExportPath("board"))
			return v, textinput.Blink
		}

	case msg.String() == "ctrl+e":
		v.startPrompt(purposeExportAll, defaultExportPath("backup"))
		return v, textinput.Blink

	case key.Matches(msg, v.keys.Import):
		v.startPrompt(purposeImport, "")
		return v, textinput.Blink
	}

	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

func (v *BoardListView) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		v.store.DeleteBoard(v.deleteTargetID)
		v.confirmingDelete = false
		v.reload()
		return v, nil
	case "n", "N", "esc":
		v.confirmingDelete = false
		return v, nil
	}
	return v, nil
}

func (v *BoardListView) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.creating = false
		v.renaming = false
		return v, nil

	case key.Matches(msg, v.keys.Tab):
		v.focusIdx = (v.focusIdx + 1) % 2
		v.updateFormFocus()
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		name := strings.TrimSpace(v.nameInput.Value())
		icon := strings.TrimSpace(v.iconInput.Value())
		if name == "" {
			return v, nil
		}
		if v.renaming {
			v.store.UpdateBoard(v.renameTargetID, name, icon)
			v.renaming = false
		} else {
			if icon == "" {
				icon = "📋"
			}
			v.store.CreateBoard(name, icon)
			v.creating = false
			v.reload()
			return v, func() tea.Msg { return BoardSelected{} }
		}
		v.reload()
		return v, nil
	}

	var cmd tea.Cmd
	if v.focusIdx == 0 {
		v.nameInput, cmd = v.nameInput.Update(msg)
	} else {
		v.iconInput, cmd = v.iconInput.Update(msg)
	}
	return v, cmd
}

func (v *BoardListView) updateFormFocus() {
	v.nameInput.Blur()
	v.iconInput.Blur()
	if v.focusIdx == 0 {
		v.nameInput.Focus()
	} else {
		v.iconInput.Focus()
	}
}

func (v *BoardListView) startPrompt(purpose pathPurpose, suggested string) {
	v.prompting = true
	v.purpose = purpose
	v.promptNote = ""
	v.pathInput.SetValue(suggested)
	v.pathInput.CursorEnd()
	v.pathInput.Focus()
}

func (v *BoardListView) updatePathPrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.prompting = false
		v.pathInput.Blur()
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		path := strings.TrimSpace(v.pathInput.Value())
		if path == "" {
			return v, nil
		}
		v.promptNote = v.runPathAction(path)
		if v.promptNote == "" {
			v.prompting = false
			v.pathInput.Blur()
			v.reload()
		}
		return v, nil
	}

	var cmd tea.Cmd
	v.pathInput, cmd = v.pathInput.Update(msg)
	return v, cmd
}

// runPathAction performs the prompted export or import. Returns "" on
// success or a short note to keep the prompt open with.
func (v *BoardListView) runPathAction(path string) string {
	switch v.purpose {
	case purposeExportBoard:
		b, ok := v.selectedBoard()
		if !ok {
			return "no board selected"
		}
		snap := v.store.Snapshot()
		content, err := transfer.ExportBoard(b, snap.Notes)
		if err != nil {
			return "export failed"
		}
		if !host.SaveFile(content, path) {
			return "could not write file"
		}
		return ""

	case purposeExportAll:
		content, err := transfer.ExportAll(v.store.Snapshot())
		if err != nil {
			return "export failed"
		}
		if !host.SaveFile(content, path) {
			return "could not write file"
		}
		return ""

	case purposeImport:
		content, ok := host.OpenFile(path)
		if !ok {
			return "could not read file"
		}
		boards, notes, ok := transfer.Import(content)
		if !ok {
			return "not a valid export file"
		}
		v.store.MergeImport(boards, notes)
		return ""
	}
	return ""
}

func defaultExportPath(kind string) string {
	return fmt.Sprintf("sonotes-%s-%s.json", kind, time.Now().Format("2006-01-02"))
}

// View renders the view
func (v *BoardListView) View() string {
	if v.confirmingDelete {
		return v.renderDeleteConfirm()
	}
	if v.creating || v.renaming {
		return v.renderForm()
	}
	if v.prompting {
		return v.renderPathPrompt()
	}

	content := v.list.View() + "\n" + v.renderHelp()
	return styles.CenterView(content, v.width, v.height)
}

func (v *BoardListView) renderForm() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	title := "New Board"
	if v.renaming {
		title = "Rename Board"
	}

	nameStyle := s.Input
	iconStyle := s.Input
	if v.focusIdx == 0 {
		nameStyle = s.InputFocused
	} else {
		iconStyle = s.InputFocused
	}

	inputWidth := clamp(contentWidth-6, 20, 50)

	form := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render(title),
		"",
		"Name:",
		nameStyle.Width(inputWidth).Render(v.nameInput.View()),
		"",
		"Icon:",
		iconStyle.Width(inputWidth).Render(v.iconInput.View()),
		"",
		s.TitleMuted.Render("Tab: next • Enter: save • Esc: cancel"),
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		form,
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *BoardListView) renderPathPrompt() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	var title string
	switch v.purpose {
	case purposeExportBoard:
		title = "Export Board"
	case purposeExportAll:
		title = "Export Everything"
	case purposeImport:
		title = "Import File"
	}

	inputWidth := clamp(contentWidth-6, 20, 60)

	rows := []string{
		s.Title.Render(title),
		"",
		"Path:",
		s.InputFocused.Width(inputWidth).Render(v.pathInput.View()),
	}
	if v.promptNote != "" {
		rows = append(rows, "", s.Title.Foreground(styles.Current.Error).Render(v.promptNote))
	}
	rows = append(rows, "", s.TitleMuted.Render("Enter: confirm • Esc: cancel"))

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *BoardListView) renderDeleteConfirm() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	content := lipgloss.JoinVertical(lipgloss.Center,
		s.Title.Foreground(styles.Current.Error).Render("Delete Board?"),
		"",
		s.TitleMuted.Render(fmt.Sprintf("\"%s\" and all of its notes will be removed.", v.deleteTargetName)),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center,
			s.ButtonFocused.Render(" Y - Yes "),
			"  ",
			s.Button.Render(" N - No "),
		),
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *BoardListView) renderHelp() string {
	if v.store.SelectionCount() > 0 {
		return v.styles.Help.Render(
			fmt.Sprintf("%s switch • %s move selection here • %s copy selection here • %s back",
				v.styles.HelpKey.Render("↵"),
				v.styles.HelpKey.Render("m"),
				v.styles.HelpKey.Render("c"),
				v.styles.HelpKey.Render("esc"),
			),
		)
	}
	return v.styles.Help.Render(
		fmt.Sprintf("%s switch • %s new • %s rename • %s del • %s/%s move • %s export • %s import • %s back",
			v.styles.HelpKey.Render("↵"),
			v.styles.HelpKey.Render("n"),
			v.styles.HelpKey.Render("e"),
			v.styles.HelpKey.Render("d"),
			v.styles.HelpKey.Render("["),
			v.styles.HelpKey.Render("]"),
			v.styles.HelpKey.Render("E"),
			v.styles.HelpKey.Render("I"),
			v.styles.HelpKey.Render("esc"),
		),
	)
}
