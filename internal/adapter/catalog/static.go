package catalog

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/srgjo27/ticket_storefront/internal/core/domain"
)

type eventEntry struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Date        string `yaml:"date"`
	Location    string `yaml:"location"`
	Price       string `yaml:"price"`
	Thumbnail   string `yaml:"thumbnail"`
	Description string `yaml:"description"`
}

type catalogFile struct {
	Events []eventEntry `yaml:"events"`
}

// Static is a read-only event catalog loaded once.
type Static struct {
	events []domain.Event
	byID   map[string]int
}

func LoadFile(path string) (*Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}

	return Parse(data)
}

func Parse(data []byte) (*Static, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}

	s := &Static{byID: make(map[string]int, len(f.Events))}
	for _, e := range f.Events {
		event, err := e.toDomain()
		if err != nil {
			return nil, err
		}

		if _, dup := s.byID[event.ID]; dup {
			return nil, fmt.Errorf("duplicate event id %q", event.ID)
		}

		s.byID[event.ID] = len(s.events)
		s.events = append(s.events, event)
	}

	return s, nil
}

func (e eventEntry) toDomain() (domain.Event, error) {
	if e.ID == "" {
		return domain.Event{}, fmt.Errorf("event %q has no id", e.Title)
	}

	price, err := decimal.NewFromString(e.Price)
	if err != nil {
		return domain.Event{}, fmt.Errorf("event %s: invalid price %q: %w", e.ID, e.Price, err)
	}

	if price.IsNegative() {
		return domain.Event{}, fmt.Errorf("event %s: negative price", e.ID)
	}

	date, err := parseDate(e.Date)
	if err != nil {
		return domain.Event{}, fmt.Errorf("event %s: invalid date %q: %w", e.ID, e.Date, err)
	}

	return domain.Event{
		ID:          e.ID,
		Title:       e.Title,
		Date:        date,
		Location:    e.Location,
		Price:       price,
		Thumbnail:   e.Thumbnail,
		Description: e.Description,
	}, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}

	return time.Parse("2006-01-02", s)
}

func (s *Static) All() []domain.Event {
	out := make([]domain.Event, len(s.events))
	copy(out, s.events)
	return out
}

func (s *Static) Get(id string) (domain.Event, bool) {
	i, ok := s.byID[id]
	if !ok {
		return domain.Event{}, false
	}

	return s.events[i], true
}
