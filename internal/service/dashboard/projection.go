package dashboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/parlourease/internal/domain"
	"github.com/m04kA/parlourease/internal/realtime"
	bookingModels "github.com/m04kA/parlourease/internal/service/bookings/models"
	catalogModels "github.com/m04kA/parlourease/internal/service/catalog/models"
	"github.com/m04kA/parlourease/internal/service/dashboard/models"
)

// Projection локальная копия коллекций для панели администратора
// Каждый снимок полностью заменяет состояние, производные значения пересчитываются при чтении
type Projection struct {
	source       SnapshotSource
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger

	mu       sync.RWMutex
	services []domain.Service
	bookings []domain.Booking
	versions models.Versions

	started bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewProjection создает проекцию
// Сутки и месяц считаются в часовом поясе салона
func NewProjection(source SnapshotSource, timeProvider TimeProvider, location *time.Location, logger Logger) *Projection {
	if location == nil {
		location = time.Local
	}
	return &Projection{
		source:       source,
		timeProvider: timeProvider,
		location:     location,
		logger:       logger,
	}
}

// Start подписывается на обе коллекции
// Подписки освобождаются при отмене ctx или вызове Close
func (p *Projection) Start(ctx context.Context) error {
	p.mu.Lock()
	if p.started {
		p.mu.Unlock()
		return ErrAlreadyStarted
	}
	p.started = true
	p.mu.Unlock()

	servicesSub, err := p.source.Subscribe(domain.CollectionServices)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSubscribe, domain.CollectionServices, err)
	}
	bookingsSub, err := p.source.Subscribe(domain.CollectionBookings)
	if err != nil {
		servicesSub.Close()
		return fmt.Errorf("%w: %s: %v", ErrSubscribe, domain.CollectionBookings, err)
	}

	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	p.wg.Add(2)
	go p.consume(runCtx, servicesSub)
	go p.consume(runCtx, bookingsSub)

	p.logger.Info("dashboard: projection started")
	return nil
}

func (p *Projection) consume(ctx context.Context, sub *realtime.Subscription) {
	defer p.wg.Done()
	defer sub.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case snap, ok := <-sub.C():
			if !ok {
				p.logger.Warn("dashboard: subscription on %s closed", sub.Collection())
				return
			}
			p.Apply(snap)
		}
	}
}

// Apply заменяет состояние коллекции содержимым снимка
func (p *Projection) Apply(snap *realtime.Snapshot) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch snap.Collection {
	case domain.CollectionServices:
		if snap.Version <= p.versions.Services {
			return
		}
		p.services = snap.Services
		p.versions.Services = snap.Version
	case domain.CollectionBookings:
		if snap.Version <= p.versions.Bookings {
			return
		}
		p.bookings = snap.Bookings
		p.versions.Bookings = snap.Version
	}
}

// View строит представление на текущий момент
func (p *Projection) View() *models.DashboardResponse {
	p.mu.RLock()
	services := p.services
	bookings := p.bookings
	versions := p.versions
	p.mu.RUnlock()

	now := p.timeProvider.Now().In(p.location)
	catalog := domain.NewCatalog(services)

	resp := &models.DashboardResponse{
		Date:     now.Format(domain.DateFormat),
		Ready:    versions.Services > 0 && versions.Bookings > 0,
		Queue:    make([]models.QueueItem, 0),
		Services: make([]catalogModels.ServiceResponse, 0, len(services)),
		Versions: versions,
	}

	for i := range services {
		resp.Services = append(resp.Services, catalogModels.FromDomainService(&services[i]))
	}

	for i := range bookings {
		b := &bookings[i]
		if !domain.SameDay(now, b.AppointmentAt) {
			continue
		}
		resp.Queue = append(resp.Queue, queueItem(b, catalog, p.location))
		switch b.Status {
		case domain.StatusPending:
			resp.Counts.Pending++
		case domain.StatusInProgress:
			resp.Counts.InProgress++
		case domain.StatusCompleted:
			resp.Counts.Completed++
		}
	}

	rev := domain.AggregateRevenue(bookings, now)
	resp.Revenue = models.RevenueResponse{
		Daily:   rev.Daily,
		Monthly: rev.Monthly,
		ByMethod: models.MethodTotals{
			Cash: rev.ByMethod.Cash,
			UPI:  rev.ByMethod.UPI,
			Card: rev.ByMethod.Card,
		},
	}

	return resp
}

func queueItem(b *domain.Booking, catalog domain.Catalog, loc *time.Location) models.QueueItem {
	summary := catalog.Summarize(b.ServiceIDs)

	actions := make([]string, 0, 1)
	for _, a := range b.AvailableActions() {
		actions = append(actions, string(a))
	}

	return models.QueueItem{
		ID:           b.ID,
		CustomerName: b.CustomerName,
		Contact:      b.Contact,
		Time:         b.AppointmentAt.In(loc).Format(domain.TimeFormat),
		Services:     summary.Label,
		TotalPrice:   summary.TotalPrice,
		Status:       string(b.Status),
		Payment:      bookingModels.FromDomainPayment(b.Payment),
		Actions:      actions,
	}
}

// Close отписывается от коллекций и дожидается остановки
func (p *Projection) Close() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
		p.wg.Wait()
	}
}
