package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/restauratings/internal/domain"
	"github.com/restauratings/internal/explorer"
	"go.uber.org/zap"
)

// Run запускает терминальный обозреватель и блокируется до выхода
func Run(ctx context.Context, api explorer.RestaurantAPI, geo explorer.Geolocator, logger *zap.Logger) error {
	m, _ := NewModel(ctx, api, geo, logger)

	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("explorer failed: %w", err)
	}

	return nil
}

// NewModel собирает модель: панель маркеров с колбэками выбора и контроллер
func NewModel(ctx context.Context, api explorer.RestaurantAPI, geo explorer.Geolocator, logger *zap.Logger) (Model, *explorer.Controller) {
	selections := make(chan tea.Msg, 1)

	markers := NewMarkerPanel(explorer.MapCallbacks{
		OnCategorySelected: func(category string) {
			sendSelection(selections, categoryChosenMsg{category: category})
		},
		OnRestaurantSelected: func(restaurant domain.Restaurant) {
			sendSelection(selections, restaurantChosenMsg{restaurant: restaurant})
		},
	}, DefaultTheme)

	ctrl := explorer.NewController(api, geo, markers, logger)

	return newModel(ctx, ctrl, markers, selections, DefaultTheme), ctrl
}

// sendSelection не блокирует Update: если предыдущий выбор ещё не обработан, новый отбрасывается
func sendSelection(selections chan<- tea.Msg, msg tea.Msg) {
	select {
	case selections <- msg:
	default:
	}
}
