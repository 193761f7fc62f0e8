package store

import (
	"context"
	"fmt"

	"github.com/eventgate/checkin/internal/logger"
)

// attendanceRepository is the PostgreSQL-backed implementation of
// [AttendanceRepository] against the "event_attendees" table.
type attendanceRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAttendanceRepository constructs an [AttendanceRepository] backed by the
// provided database connection and logger.
func NewAttendanceRepository(db *DB, logger *logger.Logger) AttendanceRepository {
	logger.Debug().Msg("creating attendance repository")
	return &attendanceRepository{
		db:     db,
		logger: logger,
	}
}

// MarkAttended executes the single conditional UPDATE that records a
// check-in: date_time_attended = NOW(), status = 'attended' for the row
// whose hash matches.
//
// Zero affected rows means the hash is unknown and surfaces as
// [ErrAttendeeNotFound]. The query is never retried.
func (r *attendanceRepository) MarkAttended(ctx context.Context, eventAttendeeHash string) error {
	log := logger.FromContext(ctx)

	query, args, err := markAttendedQuery(eventAttendeeHash)
	if err != nil {
		log.Err(err).Str("func", "*attendanceRepository.MarkAttended").Msg("error building update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*attendanceRepository.MarkAttended").Msg("error executing attendance update")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*attendanceRepository.MarkAttended").Msg("error reading affected rows")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	if affected == 0 {
		return ErrAttendeeNotFound
	}

	return nil
}
