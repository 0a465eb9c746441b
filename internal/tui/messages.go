package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/restauratings/internal/domain"
	"github.com/restauratings/internal/explorer"
)

// fetchDoneMsg - завершился запрос контроллера
type fetchDoneMsg struct {
	err error
}

// locatedMsg - определено положение пользователя
type locatedMsg struct {
	location domain.Coordinate
}

// categoryChosenMsg - выбран маркер категории
type categoryChosenMsg struct {
	category string
}

// restaurantChosenMsg - выбран маркер ресторана
type restaurantChosenMsg struct {
	restaurant domain.Restaurant
}

// reviewsLoadedMsg - загружены отзывы открытой карточки
type reviewsLoadedMsg struct {
	detail *explorer.Detail
	err    error
}

// reviewSubmittedMsg - отправка отзыва завершилась
type reviewSubmittedMsg struct {
	detail *explorer.Detail
	err    error
}

func locateCmd(ctx context.Context, ctrl *explorer.Controller) tea.Cmd {
	return func() tea.Msg {
		return locatedMsg{location: ctrl.LocateUser(ctx)}
	}
}

func fetchCmd(fn func() error) tea.Cmd {
	return func() tea.Msg {
		return fetchDoneMsg{err: fn()}
	}
}

func openDetailCmd(ctx context.Context, d *explorer.Detail) tea.Cmd {
	return func() tea.Msg {
		return reviewsLoadedMsg{detail: d, err: d.Open(ctx)}
	}
}

func submitReviewCmd(ctx context.Context, d *explorer.Detail) tea.Cmd {
	return func() tea.Msg {
		return reviewSubmittedMsg{detail: d, err: d.Submit(ctx)}
	}
}

// waitForSelection ждёт следующего выбора маркера
func waitForSelection(selections <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-selections
	}
}
