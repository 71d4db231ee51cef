package get_available_slots

import (
	"context"
	"fmt"

	"github.com/aitzhn/PS-BookingService/internal/domain"
	"github.com/aitzhn/PS-BookingService/internal/pricing"
)

// UseCase use case для получения слотов зала с признаком доступности
type UseCase struct {
	reservationRepo ReservationRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reservationRepo ReservationRepository, logger Logger) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider подменяет провайдер времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case получения доступных слотов.
// Сетка слотов статическая (45 минут, воскресенье короче), доступность
// определяется по активным бронированиям зала на эту дату.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: user=%d, room=%d, date=%s",
		req.UserID, req.RoomID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Прошедшие даты отдают пустой список, это не ошибка
	if isDateInPast(req.Date, now) {
		uc.logger.Info("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return &Response{
			Date:   req.Date,
			RoomID: req.RoomID,
			Slots:  []Slot{},
		}, nil
	}

	// 4. Генерируем сетку слотов на дату и убираем уже начавшиеся (для сегодня)
	starts := pricing.SlotsForDate(req.Date)
	starts = filterPastSlots(starts, req.Date, now)

	// 5. Получаем активные бронирования зала на эту дату
	filter := domain.RoomReservationsFilter{
		RoomID:          req.RoomID,
		StartDate:       &req.Date,
		EndDate:         &req.Date,
		IncludeInactive: false,
	}

	reservations, err := uc.reservationRepo.GetByRoomWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 6. Размечаем доступность каждого слота
	slots := markAvailability(starts, domain.SlotDurationMinutes, reservations)

	uc.logger.Info("GetAvailableSlots: generated %d slots for room=%d, date=%s",
		len(slots), req.RoomID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:   req.Date,
		RoomID: req.RoomID,
		Slots:  slots,
	}, nil
}
