package impl

import (
	"context"
	"log/slog"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/repository"
	"beacon/internal/usecase"

	"github.com/google/uuid"
)

type eventNotifier struct {
	logger   *slog.Logger
	dispatch usecase.DispatchUsecase
	userRepo repository.UserRepository
}

// NewEventNotifier creates a new event notifier instance
func NewEventNotifier(
	logger *slog.Logger,
	dispatch usecase.DispatchUsecase,
	userRepo repository.UserRepository,
) usecase.EventNotifier {
	return &eventNotifier{
		logger:   logger,
		dispatch: dispatch,
		userRepo: userRepo,
	}
}

// NotifyUser dispatches a notification to every active device of one external
// user identity. Dispatch errors are logged and swallowed: event notifications
// must never abort the flow that raised them.
func (s *eventNotifier) NotifyUser(ctx context.Context, appID uuid.UUID, externalUserID string, payload *entity.NotificationPayload) {
	result, err := s.dispatch.Dispatch(ctx, appID, payload, []string{externalUserID})
	if err != nil {
		s.logger.Error("failed to notify user",
			slog.String("app_id", appID.String()),
			slog.String("external_user_id", externalUserID),
			slog.Any("error", err),
		)

		return
	}

	s.logger.Info("user notified",
		slog.String("external_user_id", externalUserID),
		slog.String("notification_id", result.NotificationID.String()),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
	)
}

// NotifyAdmins dispatches a notification to each approved super admin. One
// dispatch per identity: a failure for one admin does not stop the rest.
func (s *eventNotifier) NotifyAdmins(ctx context.Context, appID uuid.UUID, payload *entity.NotificationPayload) {
	admins, err := s.userRepo.FindApprovedAdmins(ctx)
	if err != nil {
		s.logger.Error("failed to list approved admins",
			slog.String("app_id", appID.String()),
			slog.Any("error", err),
		)

		return
	}

	if len(admins) == 0 {
		s.logger.Warn("no approved admins to notify", slog.String("app_id", appID.String()))

		return
	}

	for _, admin := range admins {
		s.NotifyUser(ctx, appID, admin.Email, payload)
	}
}
