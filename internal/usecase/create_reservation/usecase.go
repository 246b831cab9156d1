package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/drilan/barbershop-booking/internal/domain"
	reservationRepo "github.com/drilan/barbershop-booking/internal/infra/storage/reservation"
	scheduleRepo "github.com/drilan/barbershop-booking/internal/infra/storage/schedule"
)

const (
	confirmationSubject = "Бронь подтверждена"

	// Причина компенсационной отмены при недоставленном подтверждении
	cancelReasonNotification = "confirmation notification failed"
)

// UseCase use case создания брони
// Персистентность и уведомление - единая операция: если письма-подтверждения
// не ушли, созданная бронь отменяется компенсацией и слот освобождается
type UseCase struct {
	reservationRepo ReservationRepository
	profileRepo     ProfileRepository
	scheduleRepo    ScheduleRepository
	mailer          Mailer
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger

	// ownerEmail адрес владельца из конфигурации - запасной получатель,
	// если в профиле магазина email не заполнен
	ownerEmail string
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	profileRepo ProfileRepository,
	scheduleRepo ScheduleRepository,
	mailer Mailer,
	txManager TransactionManager,
	ownerEmail string,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		profileRepo:     profileRepo,
		scheduleRepo:    scheduleRepo,
		mailer:          mailer,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
		ownerEmail:      ownerEmail,
	}
}

// Execute выполняет use case создания брони
// Проверка доступности и вставка выполняются в сериализуемой транзакции
// с блокировкой броней дня (FOR UPDATE) для предотвращения двойного бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%d, date=%s, hour=%s",
		req.UserID, req.Date.Format(domain.DateFormat), req.StartHour)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Текущее время
	now := uc.timeProvider.Now()

	// 3. Дата не в прошлом
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateReservation: date validation failed: %v", err)
		return nil, err
	}

	// 4. Профиль магазина; при ошибке чтения бронируем на запасных часах,
	// та же политика деградации, что и при построении расписания
	shopProfile, err := uc.profileRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to get shop profile, using fallback hours: %v", err)
		shopProfile = nil
	}

	var result *domain.Reservation

	// 5. Операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Переопределение расписания на дату
		override, err := uc.scheduleRepo.GetByDate(txCtx, req.Date)
		if err != nil && !errors.Is(err, scheduleRepo.ErrOverrideNotFound) {
			uc.logger.Error("CreateReservation: failed to get schedule override: %v", err)
			return fmt.Errorf("%w: failed to get schedule override: %v", ErrInternal, err)
		}

		// 5.2. Эффективные часы работы
		daySchedule := domain.ResolveDaySchedule(req.Date, override, shopProfile, domain.FallbackDaySchedule())
		if daySchedule.Closed {
			uc.logger.Warn("CreateReservation: shop is closed on %s", req.Date.Format(domain.DateFormat))
			return ErrShopClosed
		}

		// 5.3. Слот в пределах рабочих часов
		if err := validateSlotWithinHours(req.StartHour, daySchedule); err != nil {
			uc.logger.Warn("CreateReservation: slot validation failed: %v", err)
			return err
		}

		// 5.4. Активные брони дня с блокировкой (FOR UPDATE)
		reservations, err := uc.reservationRepo.GetByDate(txCtx, req.Date, false)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		// 5.5. Слот свободен
		if existing := findSlotReservation(req.StartHour, reservations); existing != nil {
			uc.logger.Warn("CreateReservation: slot %s %s already taken by reservation id=%d",
				req.Date.Format(domain.DateFormat), req.StartHour, existing.ID)
			return ErrSlotTaken
		}

		// 5.6. Создаем бронь
		created, err := uc.reservationRepo.Create(txCtx, &domain.Reservation{
			UserID:          req.UserID,
			UserEmail:       req.UserEmail,
			ReservationDate: req.Date,
			StartHour:       req.StartHour.TruncateToHour(),
			Status:          domain.StatusConfirmed,
			Notes:           req.Notes,
		})
		if err != nil {
			// Страховка на случай гонки, прошедшей мимо FOR UPDATE:
			// уникальный индекс БД возвращает конфликт
			if errors.Is(err, reservationRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateReservation: unique index rejected duplicate slot %s %s",
					req.Date.Format(domain.DateFormat), req.StartHour)
				return ErrSlotTaken
			}
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	// 6. Подтверждение владельцу и пользователю; дубликаты адресов отбрасывает mailer
	if err := uc.sendConfirmation(ctx, shopProfile, result); err != nil {
		uc.logger.Error("CreateReservation: notification failed for reservation id=%d, compensating: %v",
			result.ID, err)

		// Компенсация: бронь без подтверждения отменяется, слот освобождается
		if cancelErr := uc.reservationRepo.Cancel(ctx, result.ID, domain.StatusCancelledByShop, cancelReasonNotification); cancelErr != nil {
			uc.logger.Error("CreateReservation: compensation cancel failed for reservation id=%d: %v",
				result.ID, cancelErr)
		}

		return nil, fmt.Errorf("%w: %v", ErrNotificationFailed, err)
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)

	return &Response{
		ID:        result.ID,
		UserID:    result.UserID,
		UserEmail: result.UserEmail,
		Date:      result.ReservationDate,
		StartHour: result.StartHour,
		Status:    string(result.Status),
		Notes:     result.Notes,
		CreatedAt: result.CreatedAt,
		UpdatedAt: result.UpdatedAt,
	}, nil
}

// sendConfirmation отправляет письма о новой брони владельцу и пользователю
func (uc *UseCase) sendConfirmation(ctx context.Context, shopProfile *domain.ShopProfile, r *domain.Reservation) error {
	ownerEmail := uc.ownerEmail
	if shopProfile != nil && shopProfile.OwnerEmail != "" {
		ownerEmail = shopProfile.OwnerEmail
	}

	body := fmt.Sprintf("Бронь подтверждена: %s в %s.",
		r.ReservationDate.Format(domain.DateFormat), r.StartHour)

	return uc.mailer.Send(ctx, []string{ownerEmail, r.UserEmail}, confirmationSubject, body)
}
