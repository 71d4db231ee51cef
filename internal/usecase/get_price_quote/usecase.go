package get_price_quote

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

// UseCase use case расчета стоимости бронирования с разбивкой по скидкам
type UseCase struct {
	engine        *pricing.Engine
	datepriceRepo DatePriceRepository
	profileClient ProfileServiceClient
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	engine *pricing.Engine,
	datepriceRepo DatePriceRepository,
	profileClient ProfileServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		engine:        engine,
		datepriceRepo: datepriceRepo,
		profileClient: profileClient,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// WithTimeProvider подменяет провайдер времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет расчет стоимости.
// Анонимный запрос (UserID == nil) считается только по базовой цене и
// last-minute скидке: лояльность, рефералка и баллы требуют профиля.
// Недоступность профильного сервиса деградирует расчет до базовой цены.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetPriceQuote: room=%d, date=%s, blocks=%d, points=%d",
		req.RoomID, req.Date.Format(domain.DateFormat), req.Blocks, req.PointsToRedeem)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetPriceQuote: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("GetPriceQuote: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// Праздники для незагруженного года не учитываются - сигнализируем в лог
	if !uc.engine.Calendar().KnownYear(req.Date.Year()) {
		uc.logger.Warn("GetPriceQuote: holiday table has no data for year %d", req.Date.Year())
	}

	// 3. Определяем базовую цену: точечное переопределение либо тариф по классу дня
	override, err := uc.lookupOverride(ctx, req.RoomID, req.Date)
	if err != nil {
		return nil, err
	}

	basePrice := uc.engine.BasePrice(req.Date, override)
	dayClass := uc.engine.Calendar().Classify(req.Date)

	// 4. Собираем контекст скидок
	qctx := pricing.QuoteContext{
		ReferenceDate:     now,
		Blocks:            req.Blocks,
		DisableLastMinute: req.DisableLastMinute,
	}

	if req.UserID == nil {
		// Анонимный запрос: персональные скидки недоступны
		qctx.DisableLoyalty = true
		qctx.DisableReferral = true
	} else {
		profile, err := uc.profileClient.GetLoyaltyProfileWithGracefulDegradation(ctx, *req.UserID)
		if err != nil {
			if errors.Is(err, profileClient.ErrServiceDegraded) {
				uc.logger.Warn("GetPriceQuote: profile service degraded, base price only for user=%d", *req.UserID)
				return uc.degradedResponse(req, basePrice, dayClass), nil
			}
			uc.logger.Error("GetPriceQuote: failed to get loyalty profile for user=%d: %v", *req.UserID, err)
			return nil, fmt.Errorf("%w: failed to get loyalty profile: %v", ErrInternal, err)
		}

		if req.PointsToRedeem > profile.LoyaltyPoints {
			uc.logger.Warn("GetPriceQuote: user=%d requested %d points, has %d",
				*req.UserID, req.PointsToRedeem, profile.LoyaltyPoints)
			return nil, ErrInsufficientPoints
		}

		qctx.CompletedReservations = profile.CompletedReservations
		qctx.Referred = profile.Referred
		qctx.HasReservations = profile.HasReservations
		qctx.PointsToRedeem = req.PointsToRedeem
	}

	// 5. Прогоняем пайплайн скидок
	quote, err := uc.engine.ApplyDiscounts(req.Date, basePrice, qctx)
	if err != nil {
		uc.logger.Error("GetPriceQuote: discount pipeline failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	uc.logger.Info("GetPriceQuote: room=%d, date=%s, final=%.2f (discount %.2f)",
		req.RoomID, req.Date.Format(domain.DateFormat), quote.FinalPrice, quote.TotalDiscount)

	return &Response{
		RoomID:        req.RoomID,
		Date:          req.Date,
		DayClass:      dayClass,
		BasePrice:     quote.BasePrice,
		OriginalPrice: quote.OriginalPrice,
		FinalPrice:    quote.FinalPrice,
		TotalDiscount: quote.TotalDiscount,
		Breakdown:     quote.Breakdown,
	}, nil
}

// lookupOverride ищет точечное переопределение цены.
// Отсутствие переопределения - нормальная ситуация, возвращается nil.
func (uc *UseCase) lookupOverride(ctx context.Context, roomID int64, date time.Time) (*float64, error) {
	dp, err := uc.datepriceRepo.GetByRoomAndDate(ctx, roomID, date)
	if err != nil {
		if errors.Is(err, datepriceRepo.ErrDatePriceNotFound) {
			return nil, nil
		}
		uc.logger.Error("GetPriceQuote: failed to get date price for room=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: failed to get date price: %v", ErrInternal, err)
	}
	return &dp.Price, nil
}

// degradedResponse строит ответ без скидок по базовой цене
func (uc *UseCase) degradedResponse(req *Request, basePrice float64, dayClass pricing.DayClass) *Response {
	blocks := req.Blocks
	if blocks == 0 {
		blocks = 1
	}
	original := basePrice * float64(blocks)

	return &Response{
		RoomID:        req.RoomID,
		Date:          req.Date,
		DayClass:      dayClass,
		BasePrice:     basePrice,
		OriginalPrice: original,
		FinalPrice:    original,
		TotalDiscount: 0,
		Breakdown:     []pricing.AppliedDiscount{},
		Degraded:      true,
	}
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
