package repository

// Repositories is a container for all repository instances.
//
// All repositories share one DBTX, usually the application's pgx pool.
type Repositories struct {
	Users        *UserRepository
	Properties   *PropertyRepository
	Reservations *ReservationRepository
}

// NewRepositories constructs the repository container over db.
func NewRepositories(db DBTX) *Repositories {
	return &Repositories{
		Users:        NewUserRepository(db),
		Properties:   NewPropertyRepository(db),
		Reservations: NewReservationRepository(db),
	}
}
