package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"sonotes/internal/store"
	"sonotes/internal/ui/styles"
	"sonotes/internal/ui/views"
)

// Currently active view
type View int

const (
	ViewCanvas View = iota
	ViewBoards
	ViewTrash
)

type App struct {
	store       *store.Store
	currentView View
	canvas      *views.CanvasView
	boardList   *views.BoardListView
	trashList   *views.TrashListView
	width       int
	height      int
}

// Creates a new application
func NewApp(st *store.Store) *App {
	styles.Apply(st.Config().ThemeMode)
	return &App{
		store:       st,
		currentView: ViewCanvas,
		canvas:      views.NewCanvasView(st),
	}
}

func (a *App) Init() tea.Cmd {
	return a.canvas.Init()
}

func (a *App) resize() tea.Cmd {
	return func() tea.Msg {
		return tea.WindowSizeMsg{Width: a.width, Height: a.height}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// The canvas keeps the store's viewport sized even while a list
		// view is on top.
		a.canvas.Update(msg)
		if a.currentView == ViewCanvas {
			return a, nil
		}

	case views.OpenBoards:
		a.currentView = ViewBoards
		a.boardList = views.NewBoardListView(a.store)
		return a, tea.Batch(a.boardList.Init(), a.resize())

	case views.OpenTrash:
		a.currentView = ViewTrash
		a.trashList = views.NewTrashListView(a.store)
		return a, tea.Batch(a.trashList.Init(), a.resize())

	case views.BoardSelected, views.CloseBoards, views.CloseTrash:
		a.currentView = ViewCanvas
		return a, a.resize()
	}

	var cmd tea.Cmd
	switch a.currentView {
	case ViewCanvas:
		_, cmd = a.canvas.Update(msg)
	case ViewBoards:
		_, cmd = a.boardList.Update(msg)
	case ViewTrash:
		_, cmd = a.trashList.Update(msg)
	}

	return a, cmd
}

func (a *App) View() string {
	switch a.currentView {
	case ViewBoards:
		if a.boardList != nil {
			return a.boardList.View()
		}
	case ViewTrash:
		if a.trashList != nil {
			return a.trashList.View()
		}
	}
	return a.canvas.View()
}
