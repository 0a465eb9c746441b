package explorer

import (
	"context"
	"sync"

	"github.com/restauratings/internal/domain"
	"go.uber.org/zap"
)

// Controller хранит состояние обозревателя: режим, выбранную категорию,
// списки и выбранный ресторан. Состояние защищено мьютексом, который не
// удерживается во время сетевых запросов.
//
// Каждый запрос получает номер поколения. Ответ устаревшего поколения
// отбрасывается и не снимает флаг загрузки более нового запроса.
type Controller struct {
	api      RestaurantAPI
	geo      Geolocator
	renderer MapRenderer
	logger   *zap.Logger

	mu         sync.Mutex
	state      State
	generation uint64
	detail     *Detail
}

// NewController создает контроллер в режиме категорий.
// geo и renderer могут быть nil
func NewController(api RestaurantAPI, geo Geolocator, renderer MapRenderer, logger *zap.Logger) *Controller {
	return &Controller{
		api:      api,
		geo:      geo,
		renderer: renderer,
		logger:   logger,
		state: State{
			Mode:         ModeCategories,
			UserLocation: domain.DefaultLocation,
			Categories:   []domain.CategorySummary{},
			Restaurants:  []domain.Restaurant{},
		},
	}
}

// State возвращает копию текущего состояния
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.state
	s.Categories = append([]domain.CategorySummary(nil), c.state.Categories...)
	s.Restaurants = append([]domain.Restaurant(nil), c.state.Restaurants...)
	if c.state.SelectedRestaurant != nil {
		r := *c.state.SelectedRestaurant
		s.SelectedRestaurant = &r
	}
	return s
}

// Detail возвращает карточку выбранного ресторана или nil
func (c *Controller) Detail() *Detail {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.detail
}

// LocateUser один раз спрашивает геолокацию; при ошибке остаётся Тель-Авив
func (c *Controller) LocateUser(ctx context.Context) domain.Coordinate {
	location := domain.DefaultLocation

	if c.geo == nil {
		c.logger.Info("Geolocation not configured, using fallback location")
	} else if loc, err := c.geo.CurrentLocation(ctx); err != nil {
		c.logger.Warn("Geolocation failed, using fallback location", zap.Error(err))
	} else {
		location = loc
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.UserLocation = location
	c.renderLocked()

	return location
}

// Load загружает все рестораны и пересчитывает категории. Режим не меняется
func (c *Controller) Load(ctx context.Context) error {
	return c.load(ctx, c.begin())
}

func (c *Controller) load(ctx context.Context, gen uint64) error {
	restaurants, err := c.api.ListRestaurants(ctx, "")
	if err != nil {
		c.fail(gen, "Failed to load restaurants", err)
		return err
	}

	categories := domain.AggregateCategories(restaurants)
	c.complete(gen, func(s *State) {
		s.Categories = categories
		s.Restaurants = []domain.Restaurant{}
	})

	return nil
}

// SelectCategory загружает рестораны категории и переключает режим
func (c *Controller) SelectCategory(ctx context.Context, category string) error {
	gen := c.begin()

	restaurants, err := c.api.ListRestaurants(ctx, category)
	if err != nil {
		c.fail(gen, "Failed to load category restaurants", err, zap.String("category", category))
		return err
	}

	c.complete(gen, func(s *State) {
		s.Restaurants = restaurants
		s.SelectedCategory = category
		s.Mode = ModeRestaurants
	})

	return nil
}

// Back возвращает к списку категорий и перезагружает его
func (c *Controller) Back(ctx context.Context) error {
	// Сброс режима и новое поколение вместе: ответ Refresh, начатого раньше, отбрасывается
	gen, _ := c.beginFor(func(s *State) bool {
		s.Mode = ModeCategories
		s.SelectedCategory = ""
		s.Restaurants = []domain.Restaurant{}
		return true
	})

	c.mu.Lock()
	c.renderLocked()
	c.mu.Unlock()

	return c.load(ctx, gen)
}

// Refresh повторяет запрос выбранной категории; без категории ничего не делает
func (c *Controller) Refresh(ctx context.Context) error {
	var category string
	gen, ok := c.beginFor(func(s *State) bool {
		category = s.SelectedCategory
		return category != ""
	})
	if !ok {
		return nil
	}

	restaurants, err := c.api.ListRestaurants(ctx, category)
	if err != nil {
		c.fail(gen, "Failed to refresh restaurants", err, zap.String("category", category))
		return err
	}

	c.complete(gen, func(s *State) {
		s.Restaurants = restaurants
	})

	return nil
}

// SelectRestaurant открывает карточку ресторана в любом режиме
func (c *Controller) SelectRestaurant(restaurant domain.Restaurant) *Detail {
	var detail *Detail
	detail = NewDetail(c.api, restaurant, func() { c.closeDetail(detail) }, c.logger)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.SelectedRestaurant = &restaurant
	c.detail = detail
	c.renderLocked()

	return detail
}

// CloseDetail закрывает карточку ресторана
func (c *Controller) CloseDetail() {
	c.closeDetail(nil)
}

// closeDetail закрывает карточку; если only задан, то только когда она ещё открыта
func (c *Controller) closeDetail(only *Detail) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if only != nil && c.detail != only {
		return
	}

	c.state.SelectedRestaurant = nil
	c.detail = nil
	c.renderLocked()
}

func (c *Controller) begin() uint64 {
	gen, _ := c.beginFor(func(*State) bool { return true })
	return gen
}

// beginFor открывает новое поколение, только если check разрешает.
// Проверка и инкремент идут под одной блокировкой.
func (c *Controller) beginFor(check func(s *State) bool) (uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !check(&c.state) {
		return 0, false
	}
	c.generation++
	c.state.Loading = true
	return c.generation, true
}

// complete применяет результат, если поколение всё ещё последнее
func (c *Controller) complete(gen uint64, apply func(s *State)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		c.logger.Debug("Discarding stale response",
			zap.Uint64("generation", gen),
			zap.Uint64("latest", c.generation))
		return false
	}

	apply(&c.state)
	c.state.Loading = false
	c.state.LastError = ""
	c.renderLocked()
	return true
}

// fail оставляет прежние данные; флаг загрузки снимается только для последнего поколения
func (c *Controller) fail(gen uint64, msg string, err error, fields ...zap.Field) {
	c.logger.Error(msg, append(fields, zap.Error(err))...)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		return
	}
	c.state.Loading = false
	c.state.LastError = err.Error()
}

func (c *Controller) renderLocked() {
	if c.renderer == nil {
		return
	}

	view := MapView{
		Mode:   c.state.Mode,
		Center: c.state.UserLocation,
	}
	if c.state.Mode == ModeCategories {
		view.Categories = append([]domain.CategorySummary(nil), c.state.Categories...)
	} else {
		view.Restaurants = append([]domain.Restaurant(nil), c.state.Restaurants...)
	}

	c.renderer.Render(view)
}
