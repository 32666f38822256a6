package views

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sonotes/internal/models"
	"sonotes/internal/store"
	"sonotes/internal/ui/keys"
	"sonotes/internal/ui/styles"
)

type trashItem struct {
	note  models.Note
	board string
}

func (i trashItem) Title() string {
	title := i.note.Title
	if title == "" {
		title = firstLine(i.note.Content)
	}
	if title == "" {
		title = "(empty note)"
	}
	return title
}

func (i trashItem) Description() string {
	when := "just now"
	if i.note.DeletedAt != nil {
		when = time.UnixMilli(*i.note.DeletedAt).Format("Jan 2 15:04")
	}
	return fmt.Sprintf("%s • deleted %s", i.board, when)
}

func (i trashItem) FilterValue() string { return i.note.Title + " " + i.note.Content }

func firstLine(s string) string {
	line := strings.TrimSpace(strings.SplitN(s, "\n", 2)[0])
	if len([]rune(line)) > 40 {
		line = string([]rune(line)[:40]) + "…"
	}
	return line
}

type trashDelegate struct {
	styles *styles.Styles
	width  int
}

func (d trashDelegate) Height() int                               { return 2 }
func (d trashDelegate) Spacing() int                              { return 1 }
func (d trashDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d trashDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	t, ok := item.(trashItem)
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

	fmt.Fprintf(w, "%s\n%s", titleStyle.Render(t.Title()), descStyle.Render(t.Description()))
}

// CloseTrash asks the app to return to the canvas.
type CloseTrash struct{}

// trashConfirm says what the pending y/n confirmation will do.
type trashConfirm int

const (
	confirmNone trashConfirm = iota
	confirmPurgeOne
	confirmPurgeAll
)

// TrashListView lists soft-deleted notes, newest deletion first, with
// restore and permanent-delete actions.
type TrashListView struct {
	store    *store.Store
	list     list.Model
	delegate *trashDelegate
	styles   *styles.Styles
	keys     keys.KeyMap
	width    int
	height   int

	confirming   trashConfirm
	purgeTarget  string
	purgeSummary string
}

// NewTrashListView creates the trash view over a store.
func NewTrashListView(st *store.Store) *TrashListView {
	s := styles.NewStyles()
	delegate := &trashDelegate{styles: s, width: 80}

	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = "Trash"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = s.Title
	l.SetShowHelp(false)

	return &TrashListView{
		store:    st,
		list:     l,
		delegate: delegate,
		styles:   s,
		keys:     keys.DefaultKeyMap(),
	}
}

// Init initializes the view
func (v *TrashListView) Init() tea.Cmd {
	v.reload()
	return nil
}

func (v *TrashListView) reload() {
	boardNames := make(map[string]string)
	for _, b := range v.store.Boards() {
		boardNames[b.ID] = b.Name
	}
	notes := v.store.TrashNotes()
	items := make([]list.Item, len(notes))
	for i, n := range notes {
		board := boardNames[n.BoardID]
		if board == "" {
			board = "missing board"
		}
		items[i] = trashItem{note: n, board: board}
	}
	v.list.SetItems(items)
}

func (v *TrashListView) selectedNote() (models.Note, bool) {
	item, ok := v.list.SelectedItem().(trashItem)
	if !ok {
		return models.Note{}, false
	}
	return item.note, true
}

// Update handles messages
func (v *TrashListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		contentWidth := styles.ContentWidth(msg.Width)
		v.delegate.width = contentWidth
		v.list.SetSize(contentWidth-4, msg.Height-6)
		return v, nil

	case tea.KeyMsg:
		if v.confirming != confirmNone {
			return v.updateConfirm(msg)
		}
		return v.updateBrowsing(msg)
	}

	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

func (v *TrashListView) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Quit):
		return v, tea.Quit

	case key.Matches(msg, v.keys.Back):
		return v, func() tea.Msg { return CloseTrash{} }

	case key.Matches(msg, v.keys.Enter):
		// Restore puts the note back on its board, on top.
		if n, ok := v.selectedNote(); ok {
			v.store.RestoreNote(n.ID)
			v.reload()
		}
		return v, nil

	case msg.String() == "R":
		v.store.RestoreAllTrash()
		v.reload()
		return v, nil

	case key.Matches(msg, v.keys.Delete):
		if n, ok := v.selectedNote(); ok {
			v.confirming = confirmPurgeOne
			v.purgeTarget = n.ID
			v.purgeSummary = trashItem{note: n}.Title()
		}
		return v, nil

	case msg.String() == "D":
		if len(v.list.Items()) > 0 {
			v.confirming = confirmPurgeAll
			v.purgeSummary = fmt.Sprintf("%d notes", len(v.list.Items()))
		}
		return v, nil
	}

	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

func (v *TrashListView) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		switch v.confirming {
		case confirmPurgeOne:
			v.store.DeleteNotePermanently(v.purgeTarget)
		case confirmPurgeAll:
			v.store.EmptyTrash()
		}
		v.confirming = confirmNone
		v.reload()
		return v, nil
	case "n", "N", "esc":
		v.confirming = confirmNone
		return v, nil
	}
	return v, nil
}

// View renders the view
func (v *TrashListView) View() string {
	if v.confirming != confirmNone {
		return v.renderConfirm()
	}

	if len(v.list.Items()) == 0 {
		return v.renderEmpty()
	}

	content := v.list.View() + "\n" + v.renderHelp()
	return styles.CenterView(content, v.width, v.height)
}

func (v *TrashListView) renderEmpty() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	content := lipgloss.JoinVertical(lipgloss.Center,
		s.Title.Render("Trash is Empty"),
		"",
		s.TitleMuted.Render("Deleted notes land here and can be restored"),
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *TrashListView) renderConfirm() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	title := "Delete Forever?"
	detail := fmt.Sprintf("\"%s\" cannot be recovered afterwards.", v.purgeSummary)
	if v.confirming == confirmPurgeAll {
		title = "Empty Trash?"
		detail = fmt.Sprintf("%s will be gone for good.", v.purgeSummary)
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		s.Title.Foreground(styles.Current.Error).Render(title),
		"",
		s.TitleMuted.Render(detail),
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

func (v *TrashListView) renderHelp() string {
	return v.styles.Help.Render(
		fmt.Sprintf("%s restore • %s restore all • %s delete • %s empty trash • %s back",
			v.styles.HelpKey.Render("↵"),
			v.styles.HelpKey.Render("R"),
			v.styles.HelpKey.Render("d"),
			v.styles.HelpKey.Render("D"),
			v.styles.HelpKey.Render("esc"),
		),
	)
}
