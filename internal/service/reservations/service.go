package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/aitzhn/PS-BookingService/internal/domain"
	reservationRepo "github.com/aitzhn/PS-BookingService/internal/infra/storage/reservation"
	"github.com/aitzhn/PS-BookingService/internal/service/reservations/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	reservationRepo  ReservationRepository
	calendar         Calendar
	managers         ManagerChecker
	cancelNoticeDays int
	timeProvider     TimeProvider
	logger           Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	calendar Calendar,
	managers ManagerChecker,
	cancelNoticeDays int,
	logger Logger,
) *Service {
	if cancelNoticeDays <= 0 {
		cancelNoticeDays = domain.DefaultCancelNoticeBusinessDays
	}
	return &Service{
		reservationRepo:  reservationRepo,
		calendar:         calendar,
		managers:         managers,
		cancelNoticeDays: cancelNoticeDays,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// WithTimeProvider подменяет провайдер времени (для тестов)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// GetByID получает бронирование по ID
// Проверяет права доступа - пользователь может видеть только своё бронирование
// или если он является менеджером студии
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d for user=%d", id, userID)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if reservation.UserID != userID && !s.managers.IsManager(userID) {
		s.logger.Warn("GetByID: access denied for user=%d to reservation id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched reservation id=%d", id)
	return models.FromDomainReservation(reservation), nil
}

// GetUserReservations получает историю бронирований пользователя
// Пользователь видит только свою историю, менеджер - историю любого пользователя.
// Опционально фильтрует по статусу
func (s *Service) GetUserReservations(ctx context.Context, req *models.GetUserReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetUserReservations: fetching reservations for user=%d, requester=%d, status=%v",
		req.UserID, req.RequesterID, req.Status)

	// Проверяем права доступа
	if req.UserID != req.RequesterID && !s.managers.IsManager(req.RequesterID) {
		s.logger.Warn("GetUserReservations: access denied for requester=%d to user=%d history",
			req.RequesterID, req.UserID)
		return nil, ErrAccessDenied
	}

	// Конвертируем статус из строки в domain.ReservationStatus
	var domainStatus *domain.ReservationStatus
	if req.Status != nil {
		status, err := models.ToDomainReservationStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserReservations: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	reservations, err := s.reservationRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserReservations: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserReservations: successfully fetched %d reservations for user=%d",
		len(reservations), req.UserID)
	return models.FromDomainReservationList(reservations), nil
}

// GetRoomReservations получает бронирования зала с гибкой фильтрацией
// Доступно только менеджерам студии
func (s *Service) GetRoomReservations(ctx context.Context, req *models.GetRoomReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetRoomReservations: fetching reservations for room=%d, user=%d", req.RoomID, req.UserID)

	// Проверяем права доступа менеджера
	if !s.managers.IsManager(req.UserID) {
		s.logger.Warn("GetRoomReservations: user=%d is not a manager", req.UserID)
		return nil, ErrAccessDenied
	}

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetRoomReservations: invalid filter for room=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	// Получаем бронирования с фильтрацией
	reservations, err := s.reservationRepo.GetByRoomWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetRoomReservations: repository error for room=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: GetRoomReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetRoomReservations: successfully fetched %d reservations for room=%d",
		len(reservations), req.RoomID)
	return models.FromDomainReservationList(reservations), nil
}

// Cancel отменяет бронирование
// Пользователь может отменить только своё бронирование (cancelled_by_user)
// при условии, что до даты бронирования остаётся не меньше настроенного
// числа рабочих дней. Менеджер может отменить любое бронирование без
// ограничения по сроку (cancelled_by_studio).
func (s *Service) Cancel(ctx context.Context, reservationID int64, req *models.CancelReservationRequest) error {
	s.logger.Info("Cancel: cancelling reservation id=%d by user=%d", reservationID, req.UserID)

	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		s.logger.Warn("Cancel: cancellation reason too long for reservation id=%d", reservationID)
		return fmt.Errorf("%w: cancellation reason too long", ErrInvalidInput)
	}

	// Получаем бронирование
	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Проверяем, можно ли отменить бронирование
	if !reservation.CanBeCancelled() {
		s.logger.Warn("Cancel: reservation id=%d cannot be cancelled, status=%s",
			reservationID, reservation.Status)
		return ErrCannotCancel
	}

	// Определяем статус отмены в зависимости от прав доступа
	var cancelStatus domain.ReservationStatus

	if reservation.UserID == req.UserID {
		// Пользователь отменяет своё бронирование - проверяем окно отмены
		if err := s.checkCancelWindow(reservation); err != nil {
			return err
		}
		cancelStatus = domain.StatusCancelledByUser
	} else {
		// Только менеджер может отменять чужие бронирования
		if !s.managers.IsManager(req.UserID) {
			s.logger.Warn("Cancel: access denied for user=%d to cancel reservation id=%d",
				req.UserID, reservationID)
			return ErrAccessDenied
		}
		cancelStatus = domain.StatusCancelledByStudio
	}

	// Отменяем бронирование
	if err := s.reservationRepo.Cancel(ctx, reservationID, cancelStatus, req.CancellationReason); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found during cancellation", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled reservation id=%d with status=%s",
		reservationID, cancelStatus)
	return nil
}

// checkCancelWindow проверяет, что до даты бронирования остаётся не меньше
// cancelNoticeDays рабочих дней. Отсчёт начинается со дня, следующего за текущим.
func (s *Service) checkCancelWindow(reservation *domain.Reservation) error {
	now := s.timeProvider.Now()
	from := now.AddDate(0, 0, 1)

	noticeDays := s.calendar.BusinessDaysBetween(from, reservation.Date)
	if noticeDays < s.cancelNoticeDays {
		s.logger.Warn("Cancel: reservation id=%d too close, %d business days left, need %d",
			reservation.ID, noticeDays, s.cancelNoticeDays)
		return ErrCancelTooLate
	}

	return nil
}
