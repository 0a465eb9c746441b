package tui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/restauratings/internal/domain"
	"github.com/restauratings/internal/explorer"
	"github.com/restauratings/internal/pkg/utils"
)

// Marker - точка на панели маркеров
type Marker struct {
	Label    string
	Color    string
	Position domain.Coordinate
	// Distance - расстояние от центра карты в км
	Distance float64
}

// MarkerPanel - текстовая замена карты: маркеры категорий или ресторанов
// с расстоянием от центра. Выбор маркера передаётся в колбэки
type MarkerPanel struct {
	callbacks explorer.MapCallbacks
	theme     Theme

	mu   sync.Mutex
	view explorer.MapView
}

// NewMarkerPanel создает панель с обработчиками выбора
func NewMarkerPanel(callbacks explorer.MapCallbacks, theme Theme) *MarkerPanel {
	return &MarkerPanel{
		callbacks: callbacks,
		theme:     theme,
		view:      explorer.MapView{Mode: explorer.ModeCategories, Center: domain.DefaultLocation},
	}
}

// Render сохраняет новый вид карты
func (p *MarkerPanel) Render(view explorer.MapView) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.view = view
}

// Markers возвращает маркеры текущего вида
func (p *MarkerPanel) Markers() []Marker {
	p.mu.Lock()
	view := p.view
	p.mu.Unlock()

	if view.Mode == explorer.ModeRestaurants {
		markers := make([]Marker, 0, len(view.Restaurants))
		for _, r := range view.Restaurants {
			markers = append(markers, Marker{
				Label:    r.Name,
				Color:    domain.CuisineColor(r.Style),
				Position: r.Coordinate(),
				Distance: utils.HaversineDistance(view.Center, r.Coordinate()),
			})
		}
		return markers
	}

	markers := make([]Marker, 0, len(view.Categories))
	for _, c := range view.Categories {
		markers = append(markers, Marker{
			Label:    fmt.Sprintf("%s (%d)", domain.CuisineDisplayName(c.Category), c.Count),
			Color:    domain.CuisineColor(c.Category),
			Position: c.Center,
			Distance: utils.HaversineDistance(view.Center, c.Center),
		})
	}
	return markers
}

// Len - количество маркеров
func (p *MarkerPanel) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.view.Mode == explorer.ModeRestaurants {
		return len(p.view.Restaurants)
	}
	return len(p.view.Categories)
}

// Select вызывает колбэк для маркера i. Возвращает false, если маркера нет
func (p *MarkerPanel) Select(i int) bool {
	p.mu.Lock()
	view := p.view
	p.mu.Unlock()

	switch view.Mode {
	case explorer.ModeRestaurants:
		if i < 0 || i >= len(view.Restaurants) {
			return false
		}
		if p.callbacks.OnRestaurantSelected != nil {
			p.callbacks.OnRestaurantSelected(view.Restaurants[i])
		}
	default:
		if i < 0 || i >= len(view.Categories) {
			return false
		}
		if p.callbacks.OnCategorySelected != nil {
			p.callbacks.OnCategorySelected(view.Categories[i].Category)
		}
	}
	return true
}

// View рисует панель с курсором на маркере cursor
func (p *MarkerPanel) View(cursor int) string {
	p.mu.Lock()
	center := p.view.Center
	p.mu.Unlock()

	var b strings.Builder
	b.WriteString(p.theme.Subtitle.Render(fmt.Sprintf("center %.4f, %.4f", center.Lat, center.Lng)))
	b.WriteString("\n")

	markers := p.Markers()
	if len(markers) == 0 {
		b.WriteString(p.theme.Muted.Render("no markers"))
		return p.theme.Panel.Render(b.String())
	}

	for i, m := range markers {
		line := fmt.Sprintf("%s %s  %s",
			markerStyle(m.Color).Render("●"),
			m.Label,
			p.theme.Muted.Render(utils.FormatDistance(m.Distance)))
		if i == cursor {
			line = p.theme.Selected.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		if i < len(markers)-1 {
			b.WriteString("\n")
		}
	}

	return p.theme.Panel.Render(b.String())
}
