package store

import "github.com/eventgate/checkin/internal/logger"

// Storages aggregates every repository backed by the shared database
// connection. It is the single persistence dependency handed to the
// service layer.
type Storages struct {
	UserRepository       UserRepository
	AttendanceRepository AttendanceRepository
}

// NewStorages wires all repositories to the given database connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:       NewUserRepository(db, logger),
		AttendanceRepository: NewAttendanceRepository(db, logger),
	}
}
