package reschedule_reservation

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/aitzhn/PS-BookingService/internal/domain"
	datepriceRepo "github.com/aitzhn/PS-BookingService/internal/infra/storage/dateprice"
	reservationRepo "github.com/aitzhn/PS-BookingService/internal/infra/storage/reservation"
	"github.com/aitzhn/PS-BookingService/internal/pricing"
)

// UseCase use case переноса бронирования на другой слот.
// Базовая цена пересчитывается по новой дате; уже списанные баллы
// переносятся как фиксированное уменьшение цены. Процентные скидки
// заново не применяются - они были привязаны к моменту исходной брони.
type UseCase struct {
	reservationRepo     ReservationRepository
	datepriceRepo       DatePriceRepository
	engine              *pricing.Engine
	managers            ManagerChecker
	rescheduleNoticeDay int
	txManager           TransactionManager
	timeProvider        TimeProvider
	logger              Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	datepriceRepo DatePriceRepository,
	engine *pricing.Engine,
	managers ManagerChecker,
	rescheduleNoticeDays int,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	if rescheduleNoticeDays <= 0 {
		rescheduleNoticeDays = domain.DefaultRescheduleNoticeBusinessDays
	}
	return &UseCase{
		reservationRepo:     reservationRepo,
		datepriceRepo:       datepriceRepo,
		engine:              engine,
		managers:            managers,
		rescheduleNoticeDay: rescheduleNoticeDays,
		txManager:           txManager,
		timeProvider:        &RealTimeProvider{},
		logger:              logger,
	}
}

// WithTimeProvider подменяет провайдер времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case переноса бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleReservation: reservation=%d, user=%d, date=%s, time=%s",
		req.ReservationID, req.UserID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleReservation: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	if isDateInPast(req.Date, now) {
		uc.logger.Warn("RescheduleReservation: target date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 2. Целевое время должно попадать в сетку слотов целевой даты
	if err := validateSlotInGrid(req.Date, req.StartTime); err != nil {
		uc.logger.Warn("RescheduleReservation: slot %s is not in the grid for %s",
			req.StartTime, req.Date.Format(domain.DateFormat))
		return nil, err
	}

	// 3. Получаем бронирование
	reservation, err := uc.reservationRepo.GetByID(ctx, req.ReservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			uc.logger.Warn("RescheduleReservation: reservation id=%d not found", req.ReservationID)
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("RescheduleReservation: repository error for id=%d: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	// 4. Проверяем права доступа и окно переноса
	isOwner := reservation.UserID == req.UserID
	if !isOwner && !uc.managers.IsManager(req.UserID) {
		uc.logger.Warn("RescheduleReservation: access denied for user=%d to reservation id=%d",
			req.UserID, req.ReservationID)
		return nil, ErrAccessDenied
	}

	if !reservation.CanBeRescheduled() {
		uc.logger.Warn("RescheduleReservation: reservation id=%d cannot be rescheduled, status=%s",
			req.ReservationID, reservation.Status)
		return nil, ErrCannotReschedule
	}

	if reservation.RescheduleCount >= domain.MaxRescheduleCount {
		uc.logger.Warn("RescheduleReservation: reservation id=%d reached reschedule limit", req.ReservationID)
		return nil, ErrRescheduleLimit
	}

	// Владелец ограничен окном переноса; менеджер переносит без ограничений
	if isOwner {
		noticeDays := uc.engine.Calendar().BusinessDaysBetween(now.AddDate(0, 0, 1), reservation.Date)
		if noticeDays < uc.rescheduleNoticeDay {
			uc.logger.Warn("RescheduleReservation: reservation id=%d too close, %d business days left, need %d",
				req.ReservationID, noticeDays, uc.rescheduleNoticeDay)
			return nil, ErrRescheduleTooLate
		}
	}

	// 5. Пересчитываем цену для новой даты
	override, err := uc.lookupOverride(ctx, reservation.RoomID, req.Date)
	if err != nil {
		return nil, err
	}

	newBase := uc.engine.BasePrice(req.Date, override)
	newFinal := newBase - float64(reservation.PointsSpent)
	if newFinal < 0 {
		newFinal = 0
	}
	newFinal = round2(newFinal)
	newDiscount := round2(newBase - newFinal)

	// 6. Проверка целевого слота и перенос в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		filter := domain.RoomReservationsFilter{
			RoomID:          reservation.RoomID,
			StartDate:       &req.Date,
			EndDate:         &req.Date,
			IncludeInactive: false,
		}

		reservations, err := uc.reservationRepo.GetByRoomWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("RescheduleReservation: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		if hasOverlap(req.StartTime, reservation.DurationMinutes, reservations, reservation.ID) {
			uc.logger.Warn("RescheduleReservation: slot %s on %s is taken for room=%d",
				req.StartTime, req.Date.Format(domain.DateFormat), reservation.RoomID)
			return ErrSlotNotAvailable
		}

		if err := uc.reservationRepo.Reschedule(txCtx, reservation.ID, req.Date, req.StartTime, newBase, newFinal, newDiscount); err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			uc.logger.Error("RescheduleReservation: failed to reschedule id=%d: %v", reservation.ID, err)
			return fmt.Errorf("%w: failed to reschedule: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RescheduleReservation: successfully rescheduled id=%d to %s %s, final=%.2f",
		reservation.ID, req.Date.Format(domain.DateFormat), req.StartTime, newFinal)

	return &Response{
		ID:              reservation.ID,
		UserID:          reservation.UserID,
		RoomID:          reservation.RoomID,
		Date:            req.Date,
		StartTime:       req.StartTime,
		DurationMinutes: reservation.DurationMinutes,
		Status:          string(reservation.Status),
		BasePrice:       newBase,
		FinalPrice:      newFinal,
		DiscountTotal:   newDiscount,
		PointsSpent:     reservation.PointsSpent,
		RescheduleCount: reservation.RescheduleCount + 1,
	}, nil
}

// lookupOverride ищет точечное переопределение цены
func (uc *UseCase) lookupOverride(ctx context.Context, roomID int64, date time.Time) (*float64, error) {
	dp, err := uc.datepriceRepo.GetByRoomAndDate(ctx, roomID, date)
	if err != nil {
		if errors.Is(err, datepriceRepo.ErrDatePriceNotFound) {
			return nil, nil
		}
		uc.logger.Error("RescheduleReservation: failed to get date price for room=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: failed to get date price: %v", ErrInternal, err)
	}
	return &dp.Price, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
