package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/restauratings/internal/domain"
	"github.com/restauratings/internal/explorer"
)

// Поля формы отзыва
const (
	fieldAuthor = iota
	fieldRating
	fieldComment
	fieldCount
)

// maxReviewsShown - сколько отзывов показывать в карточке
const maxReviewsShown = 5

// Model - модель bubbletea поверх контроллера обозревателя
type Model struct {
	ctx        context.Context
	ctrl       *explorer.Controller
	markers    *MarkerPanel
	selections <-chan tea.Msg

	keys    KeyMap
	theme   Theme
	spinner spinner.Model

	detail *explorer.Detail
	inputs []textinput.Model
	focus  int

	cursor   int
	status   string
	isError  bool
	quitting bool
	width    int
}

func newModel(ctx context.Context, ctrl *explorer.Controller, markers *MarkerPanel, selections <-chan tea.Msg, theme Theme) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return Model{
		ctx:        ctx,
		ctrl:       ctrl,
		markers:    markers,
		selections: selections,
		keys:       DefaultKeyMap(),
		theme:      theme,
		spinner:    s,
		inputs:     newReviewInputs(),
	}
}

func newReviewInputs() []textinput.Model {
	inputs := make([]textinput.Model, fieldCount)

	inputs[fieldAuthor] = textinput.New()
	inputs[fieldAuthor].Placeholder = "your name"
	inputs[fieldAuthor].CharLimit = 64

	inputs[fieldRating] = textinput.New()
	inputs[fieldRating].Placeholder = "1-5"
	inputs[fieldRating].CharLimit = 1
	inputs[fieldRating].Validate = func(s string) error {
		if s == "" {
			return nil
		}
		if n, err := strconv.Atoi(s); err != nil || n < domain.MinRating || n > domain.MaxRating {
			return fmt.Errorf("rating must be %d-%d", domain.MinRating, domain.MaxRating)
		}
		return nil
	}

	inputs[fieldComment] = textinput.New()
	inputs[fieldComment].Placeholder = "comment (optional)"
	inputs[fieldComment].CharLimit = 500

	return inputs
}

// Init запускает определение положения и первую загрузку
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		locateCmd(m.ctx, m.ctrl),
		fetchCmd(func() error { return m.ctrl.Load(m.ctx) }),
		waitForSelection(m.selections),
	)
}

// Update обрабатывает сообщения
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case locatedMsg:
		m.setStatus(fmt.Sprintf("location %.4f, %.4f", msg.location.Lat, msg.location.Lng), nil)
		return m, nil

	case fetchDoneMsg:
		m.clampCursor()
		if msg.err != nil {
			m.setStatus("", msg.err)
		}
		return m, nil

	case categoryChosenMsg:
		m.cursor = 0
		category := msg.category
		return m, tea.Batch(
			fetchCmd(func() error { return m.ctrl.SelectCategory(m.ctx, category) }),
			waitForSelection(m.selections),
		)

	case restaurantChosenMsg:
		m.openDetail(m.ctrl.SelectRestaurant(msg.restaurant))
		return m, tea.Batch(
			openDetailCmd(m.ctx, m.detail),
			waitForSelection(m.selections),
		)

	case reviewsLoadedMsg:
		if msg.err != nil && msg.detail == m.detail {
			m.setStatus("", msg.err)
		}
		return m, nil

	case reviewSubmittedMsg:
		return m.handleSubmitted(msg), nil

	case tea.KeyMsg:
		if m.detail != nil {
			return m.updateDetail(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.markers.Len()-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		m.markers.Select(m.cursor)

	case key.Matches(msg, m.keys.Back):
		if m.ctrl.State().Mode == explorer.ModeRestaurants {
			m.cursor = 0
			return m, fetchCmd(func() error { return m.ctrl.Back(m.ctx) })
		}

	case key.Matches(msg, m.keys.Refresh):
		return m, fetchCmd(func() error { return m.ctrl.Refresh(m.ctx) })
	}

	return m, nil
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Close):
		m.ctrl.CloseDetail()
		m.detail = nil
		return m, nil

	case key.Matches(msg, m.keys.Next):
		m.inputs[m.focus].Blur()
		m.focus = (m.focus + 1) % fieldCount
		return m, m.inputs[m.focus].Focus()

	case key.Matches(msg, m.keys.Submit):
		m.detail.SetForm(m.form())
		return m, submitReviewCmd(m.ctx, m.detail)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) handleSubmitted(msg reviewSubmittedMsg) Model {
	switch {
	case errors.Is(msg.err, explorer.ErrEmptyAuthor):
		m.setStatus("", msg.err)
	case msg.err != nil:
		m.setStatus("", fmt.Errorf("review not sent: %w", msg.err))
	default:
		m.setStatus("Review submitted", nil)
	}

	if msg.detail == m.detail && m.ctrl.Detail() != m.detail {
		m.detail = nil
	}
	return m
}

func (m *Model) openDetail(d *explorer.Detail) {
	m.detail = d
	m.inputs = newReviewInputs()
	m.focus = fieldAuthor

	form := d.Form()
	m.inputs[fieldAuthor].SetValue(form.UserName)
	m.inputs[fieldRating].SetValue(strconv.Itoa(form.Rating))
	m.inputs[fieldComment].SetValue(form.Comment)
	m.inputs[fieldAuthor].Focus()
}

// form собирает форму из полей ввода; пустая или неверная оценка заменяется на 5
func (m Model) form() explorer.ReviewForm {
	rating, err := strconv.Atoi(strings.TrimSpace(m.inputs[fieldRating].Value()))
	if err != nil || rating < domain.MinRating || rating > domain.MaxRating {
		rating = domain.DefaultRating
	}

	return explorer.ReviewForm{
		UserName: m.inputs[fieldAuthor].Value(),
		Rating:   rating,
		Comment:  strings.TrimSpace(m.inputs[fieldComment].Value()),
	}
}

func (m *Model) setStatus(text string, err error) {
	if err != nil {
		m.status = err.Error()
		m.isError = true
		return
	}
	m.status = text
	m.isError = false
}

func (m *Model) clampCursor() {
	n := m.markers.Len()
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View рисует интерфейс
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	state := m.ctrl.State()

	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Restauratings"))
	b.WriteString(" ")
	b.WriteString(m.theme.Subtitle.Render(m.heading(state)))
	b.WriteString("\n\n")

	if m.detail != nil {
		b.WriteString(m.detailView())
	} else {
		b.WriteString(m.markers.View(m.cursor))
	}

	b.WriteString("\n")
	b.WriteString(m.statusLine(state))
	b.WriteString(m.helpView())

	return b.String()
}

func (m Model) heading(state explorer.State) string {
	if state.Mode == explorer.ModeRestaurants {
		return fmt.Sprintf("%s restaurants (%d)",
			domain.CuisineDisplayName(state.SelectedCategory), len(state.Restaurants))
	}
	return fmt.Sprintf("Cuisine categories (%d)", len(state.Categories))
}

func (m Model) statusLine(state explorer.State) string {
	loading := state.Loading || (m.detail != nil && m.detail.Loading())

	var parts []string
	if loading {
		parts = append(parts, m.spinner.View()+" loading")
	}

	switch {
	case m.status != "" && m.isError:
		parts = append(parts, m.theme.StatusError.Render(m.status))
	case m.status != "":
		parts = append(parts, m.theme.StatusInfo.Render(m.status))
	case state.LastError != "":
		parts = append(parts, m.theme.StatusError.Render(state.LastError))
	}

	return strings.Join(parts, "  ")
}

func (m Model) detailView() string {
	r := m.detail.Restaurant()

	var b strings.Builder
	b.WriteString(markerStyle(domain.CuisineColor(r.Style)).Render("● "))
	b.WriteString(m.theme.Normal.Bold(true).Render(r.Name))
	b.WriteString("  ")
	b.WriteString(m.theme.Muted.Render(domain.CuisineDisplayName(r.Style)))
	b.WriteString("\n")
	b.WriteString(m.theme.Subtitle.Render(r.Address))
	b.WriteString("\n")

	if r.AverageRating != nil {
		b.WriteString(m.theme.Rating.Render(fmt.Sprintf("★ %.1f", *r.AverageRating)))
		b.WriteString(m.theme.Muted.Render(fmt.Sprintf(" (%d reviews)", r.TotalReviews)))
	} else {
		b.WriteString(m.theme.Muted.Render("no ratings yet"))
	}
	b.WriteString("\n\n")

	reviews := m.detail.Reviews()
	if len(reviews) == 0 {
		b.WriteString(m.theme.Muted.Render("No reviews yet"))
		b.WriteString("\n")
	}
	for i, rv := range reviews {
		if i == maxReviewsShown {
			b.WriteString(m.theme.Muted.Render(fmt.Sprintf("… and %d more", len(reviews)-maxReviewsShown)))
			b.WriteString("\n")
			break
		}
		b.WriteString(m.theme.Rating.Render(strings.Repeat("★", rv.Rating)))
		b.WriteString(" ")
		b.WriteString(rv.UserName)
		if rv.Comment != "" {
			b.WriteString(m.theme.Muted.Render(": " + rv.Comment))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	labels := [fieldCount]string{"Name", "Rating", "Comment"}
	for i, input := range m.inputs {
		label := m.theme.Label.Render(labels[i])
		if i == m.focus {
			label = m.theme.Focused.Inherit(m.theme.Label).Render(labels[i])
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, label, input.View()))
		if i < len(m.inputs)-1 {
			b.WriteString("\n")
		}
	}

	return m.theme.Overlay.Render(b.String())
}

func (m Model) helpView() string {
	bindings := m.keys.ListHelp()
	if m.detail != nil {
		bindings = m.keys.DetailHelp()
	}

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return "\n" + m.theme.Help.Render(strings.Join(parts, " • "))
}
