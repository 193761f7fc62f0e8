package service

import (
	"context"
	"fmt"

	"github.com/eventgate/checkin/internal/logger"
	"github.com/eventgate/checkin/internal/store"
)

// checkinService is the concrete implementation of CheckinService.
type checkinService struct {
	attendanceRepository store.AttendanceRepository
	logger               *logger.Logger
}

// NewCheckinService constructs a CheckinService wired to the given
// AttendanceRepository.
func NewCheckinService(attendanceRepository store.AttendanceRepository, logger *logger.Logger) CheckinService {
	return &checkinService{
		attendanceRepository: attendanceRepository,
		logger:               logger,
	}
}

// MarkAttendance records a check-in for the attendee identified by the QR
// hash.
//
// Returns ErrMissingEventHash on empty input and passes through
// store.ErrAttendeeNotFound when the hash matches no row.
func (c *checkinService) MarkAttendance(ctx context.Context, eventHash string) error {
	log := logger.FromContext(ctx)

	if eventHash == "" {
		return ErrMissingEventHash
	}

	if err := c.attendanceRepository.MarkAttended(ctx, eventHash); err != nil {
		log.Err(err).Str("eventHash", eventHash).Msg("attendance update failed")
		return fmt.Errorf("attendance update failed: %w", err)
	}

	return nil
}
