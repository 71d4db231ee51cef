package dateprices

import (
	"context"
	"errors"
	"fmt"

	"github.com/aitzhn/PS-BookingService/internal/domain"
	datepriceRepo "github.com/aitzhn/PS-BookingService/internal/infra/storage/dateprice"
	"github.com/aitzhn/PS-BookingService/internal/service/dateprices/models"
)

// Service сервис для управления точечными ценами.
// Все операции доступны только менеджерам студии.
type Service struct {
	datepriceRepo DatePriceRepository
	managers      ManagerChecker
	logger        Logger
}

// NewService создает новый экземпляр сервиса цен
func NewService(datepriceRepo DatePriceRepository, managers ManagerChecker, logger Logger) *Service {
	return &Service{
		datepriceRepo: datepriceRepo,
		managers:      managers,
		logger:        logger,
	}
}

// List получает переопределения цен зала за период
func (s *Service) List(ctx context.Context, req *models.ListDatePricesRequest) (*models.DatePriceListResponse, error) {
	s.logger.Info("List: fetching date prices for room=%d, period=%s to %s, user=%d",
		req.RoomID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat), req.UserID)

	if !s.managers.IsManager(req.UserID) {
		s.logger.Warn("List: user=%d is not a manager", req.UserID)
		return nil, ErrAccessDenied
	}

	if req.EndDate.Before(req.StartDate) {
		s.logger.Warn("List: invalid period for room=%d", req.RoomID)
		return nil, fmt.Errorf("%w: end date before start date", ErrInvalidInput)
	}

	prices, err := s.datepriceRepo.GetByRoomAndRange(ctx, req.RoomID, req.StartDate, req.EndDate)
	if err != nil {
		s.logger.Error("List: repository error for room=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d date prices for room=%d", len(prices), req.RoomID)
	return models.FromDomainDatePriceList(prices), nil
}

// Upsert создает или обновляет цену зала на дату
func (s *Service) Upsert(ctx context.Context, req *models.UpsertDatePriceRequest) (*models.DatePriceResponse, error) {
	s.logger.Info("Upsert: setting price=%.2f for room=%d on %s by user=%d",
		req.Price, req.RoomID, req.Date.Format(domain.DateFormat), req.UserID)

	if !s.managers.IsManager(req.UserID) {
		s.logger.Warn("Upsert: user=%d is not a manager", req.UserID)
		return nil, ErrAccessDenied
	}

	// Нулевая цена допустима (бесплатный день), отрицательная - нет
	if req.Price < 0 {
		s.logger.Warn("Upsert: negative price %.2f for room=%d", req.Price, req.RoomID)
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	dp := &domain.DatePrice{
		RoomID: req.RoomID,
		Date:   req.Date,
		Price:  req.Price,
	}

	created, err := s.datepriceRepo.Upsert(ctx, dp)
	if err != nil {
		if errors.Is(err, datepriceRepo.ErrInvalidPrice) {
			return nil, fmt.Errorf("%w: invalid price", ErrInvalidInput)
		}
		s.logger.Error("Upsert: repository error for room=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Upsert: successfully set price for room=%d on %s",
		req.RoomID, req.Date.Format(domain.DateFormat))
	return models.FromDomainDatePrice(created), nil
}

// Delete удаляет цену зала на дату, возвращая день к тарифной цене
func (s *Service) Delete(ctx context.Context, req *models.DeleteDatePriceRequest) error {
	s.logger.Info("Delete: deleting price for room=%d on %s by user=%d",
		req.RoomID, req.Date.Format(domain.DateFormat), req.UserID)

	if !s.managers.IsManager(req.UserID) {
		s.logger.Warn("Delete: user=%d is not a manager", req.UserID)
		return ErrAccessDenied
	}

	if err := s.datepriceRepo.Delete(ctx, req.RoomID, req.Date); err != nil {
		if errors.Is(err, datepriceRepo.ErrDatePriceNotFound) {
			s.logger.Warn("Delete: date price not found for room=%d on %s",
				req.RoomID, req.Date.Format(domain.DateFormat))
			return ErrDatePriceNotFound
		}
		s.logger.Error("Delete: repository error for room=%d: %v", req.RoomID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted price for room=%d on %s",
		req.RoomID, req.Date.Format(domain.DateFormat))
	return nil
}
