package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aitzhn/PS-BookingService/internal/domain"
	datepriceRepo "github.com/aitzhn/PS-BookingService/internal/infra/storage/dateprice"
	profileClient "github.com/aitzhn/PS-BookingService/internal/integrations/profileservice"
	"github.com/aitzhn/PS-BookingService/internal/pricing"
)

// UseCase use case создания бронирования.
// Цена всегда пересчитывается на сервере - клиентской цене не доверяем.
type UseCase struct {
	reservationRepo ReservationRepository
	datepriceRepo   DatePriceRepository
	profileClient   ProfileServiceClient
	engine          *pricing.Engine
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	datepriceRepo DatePriceRepository,
	profileClient ProfileServiceClient,
	engine *pricing.Engine,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		datepriceRepo:   datepriceRepo,
		profileClient:   profileClient,
		engine:          engine,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider подменяет провайдер времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case создания бронирования.
// Проверка доступности слота и вставка выполняются в сериализуемой
// транзакции с блокировкой бронирований дня (FOR UPDATE), чтобы исключить
// двойное бронирование.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%d, room=%d, date=%s, time=%s, points=%d",
		req.UserID, req.RoomID, req.Date.Format(domain.DateFormat), req.StartTime, req.PointsToRedeem)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	if isDateInPast(req.Date, now) {
		uc.logger.Warn("CreateReservation: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 3. Время начала должно попадать в сетку слотов этой даты
	if err := validateSlotInGrid(req.Date, req.StartTime); err != nil {
		uc.logger.Warn("CreateReservation: slot %s is not in the grid for %s",
			req.StartTime, req.Date.Format(domain.DateFormat))
		return nil, err
	}

	// 4. Слот на сегодня не должен быть уже начавшимся
	if err := validateBookingTime(req.Date, req.StartTime, now); err != nil {
		uc.logger.Warn("CreateReservation: booking time validation failed: %v", err)
		return nil, err
	}

	// 5. Собираем контекст скидок по профилю лояльности
	qctx, degraded, err := uc.buildQuoteContext(ctx, req, now)
	if err != nil {
		return nil, err
	}

	// 6. Определяем базовую цену
	override, err := uc.lookupOverride(ctx, req.RoomID, req.Date)
	if err != nil {
		return nil, err
	}
	basePrice := uc.engine.BasePrice(req.Date, override)

	// 7. Пересчитываем итоговую цену на сервере
	quote, err := uc.engine.ApplyDiscounts(req.Date, basePrice, *qctx)
	if err != nil {
		uc.logger.Error("CreateReservation: discount pipeline failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	pointsSpent := spentPoints(quote)

	// 8. Проверка доступности и вставка в сериализуемой транзакции
	var result *domain.Reservation

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 8.1. Активные бронирования дня с блокировкой (FOR UPDATE)
		filter := domain.RoomReservationsFilter{
			RoomID:          req.RoomID,
			StartDate:       &req.Date,
			EndDate:         &req.Date,
			IncludeInactive: false,
		}

		reservations, err := uc.reservationRepo.GetByRoomWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		// 8.2. Проверяем, что слот свободен
		if hasOverlap(req.StartTime, domain.SlotDurationMinutes, reservations) {
			uc.logger.Warn("CreateReservation: slot %s on %s is taken for room=%d",
				req.StartTime, req.Date.Format(domain.DateFormat), req.RoomID)
			return ErrSlotNotAvailable
		}

		// 8.3. Создаем бронирование с ценовым снимком
		reservation := &domain.Reservation{
			UserID:          req.UserID,
			RoomID:          req.RoomID,
			Date:            req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: domain.SlotDurationMinutes,
			Status:          domain.StatusConfirmed,
			PaymentStatus:   domain.PaymentUnpaid,
			BasePrice:       quote.BasePrice,
			FinalPrice:      quote.FinalPrice,
			DiscountTotal:   quote.TotalDiscount,
			PointsSpent:     pointsSpent,
			Notes:           req.Notes,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	// 9. Списываем баллы после фиксации брони. Отказ профильного сервиса здесь
	// не откатывает бронь - расхождение чинится сверкой по PointsSpent.
	if pointsSpent > 0 {
		if err := uc.profileClient.RedeemPoints(ctx, req.UserID, pointsSpent, result.ID); err != nil {
			uc.logger.Error("CreateReservation: failed to redeem %d points for user=%d, reservation=%d: %v",
				pointsSpent, req.UserID, result.ID, err)
		}
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d, final=%.2f",
		result.ID, result.FinalPrice)

	return &Response{
		ID:              result.ID,
		UserID:          result.UserID,
		RoomID:          result.RoomID,
		Date:            result.Date,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		PaymentStatus:   string(result.PaymentStatus),
		BasePrice:       result.BasePrice,
		FinalPrice:      result.FinalPrice,
		DiscountTotal:   result.DiscountTotal,
		PointsSpent:     result.PointsSpent,
		Breakdown:       quote.Breakdown,
		Degraded:        degraded,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// buildQuoteContext собирает контекст скидок.
// Списание баллов требует живого профиля; без баллов недоступность
// профильного сервиса деградирует бронь до базовой цены.
func (uc *UseCase) buildQuoteContext(ctx context.Context, req *Request, now time.Time) (*pricing.QuoteContext, bool, error) {
	qctx := &pricing.QuoteContext{
		ReferenceDate:     now,
		DisableLastMinute: req.DisableLastMinute,
	}

	if req.PointsToRedeem > 0 {
		profile, err := uc.profileClient.GetLoyaltyProfile(ctx, req.UserID)
		if err != nil {
			if errors.Is(err, profileClient.ErrProfileNotFound) {
				uc.logger.Warn("CreateReservation: profile not found for user=%d", req.UserID)
				return nil, false, ErrProfileNotFound
			}
			uc.logger.Error("CreateReservation: failed to get loyalty profile for user=%d: %v", req.UserID, err)
			return nil, false, fmt.Errorf("%w: failed to get loyalty profile: %v", ErrInternal, err)
		}

		if req.PointsToRedeem > profile.LoyaltyPoints {
			uc.logger.Warn("CreateReservation: user=%d requested %d points, has %d",
				req.UserID, req.PointsToRedeem, profile.LoyaltyPoints)
			return nil, false, ErrInsufficientPoints
		}

		qctx.CompletedReservations = profile.CompletedReservations
		qctx.Referred = profile.Referred
		qctx.HasReservations = profile.HasReservations
		qctx.PointsToRedeem = req.PointsToRedeem
		return qctx, false, nil
	}

	profile, err := uc.profileClient.GetLoyaltyProfileWithGracefulDegradation(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, profileClient.ErrServiceDegraded) {
			uc.logger.Warn("CreateReservation: profile service degraded, base price for user=%d", req.UserID)
			qctx.DisableLoyalty = true
			qctx.DisableReferral = true
			return qctx, true, nil
		}
		uc.logger.Error("CreateReservation: failed to get loyalty profile for user=%d: %v", req.UserID, err)
		return nil, false, fmt.Errorf("%w: failed to get loyalty profile: %v", ErrInternal, err)
	}

	qctx.CompletedReservations = profile.CompletedReservations
	qctx.Referred = profile.Referred
	qctx.HasReservations = profile.HasReservations
	return qctx, false, nil
}

// lookupOverride ищет точечное переопределение цены
func (uc *UseCase) lookupOverride(ctx context.Context, roomID int64, date time.Time) (*float64, error) {
	dp, err := uc.datepriceRepo.GetByRoomAndDate(ctx, roomID, date)
	if err != nil {
		if errors.Is(err, datepriceRepo.ErrDatePriceNotFound) {
			return nil, nil
		}
		uc.logger.Error("CreateReservation: failed to get date price for room=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: failed to get date price: %v", ErrInternal, err)
	}
	return &dp.Price, nil
}

// spentPoints извлекает фактически списанные баллы из breakdown квоты
func spentPoints(quote *pricing.Quote) int {
	for _, d := range quote.Breakdown {
		if d.Kind == pricing.DiscountPoints {
			return d.Points
		}
	}
	return 0
}
