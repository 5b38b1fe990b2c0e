package postgres

import (
	repo "github.com/baharkarakas/church-backend/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repositories struct {
	Churches       repo.Churches
	Profiles       repo.Profiles
	Events         repo.Events
	Registrations  repo.Registrations
	Accounts       repo.Accounts
	Transactions   repo.Transactions
	PrayerRequests repo.PrayerRequests
	Testimonies    repo.Testimonies
	Volunteers     repo.Volunteers
	Liturgies      repo.Liturgies
	Credentials    repo.Credentials
	AuditLogs      repo.AuditLogs
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Churches:       &churchesRepo{pool},
		Profiles:       &profilesRepo{pool},
		Events:         &eventsRepo{pool},
		Registrations:  &registrationsRepo{pool},
		Accounts:       &accountsRepo{pool},
		Transactions:   &transactionsRepo{pool},
		PrayerRequests: &prayerRepo{pool},
		Testimonies:    &testimoniesRepo{pool},
		Volunteers:     &volunteersRepo{pool},
		Liturgies:      &liturgiesRepo{pool},
		Credentials:    &credentialsRepo{pool},
		AuditLogs:      &auditLogsRepo{pool},
	}
}
