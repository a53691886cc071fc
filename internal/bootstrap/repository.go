package bootstrap

import (
	tickInfra "github.com/muhammadchandra19/tick-data-service/internal/infrastructure/questdb/tick"
)

// Repository is the repository for the tick data service.
type Repository struct {
	TickRepository tickInfra.TickRepository
}

// registerRepository registers the repository.
func (b *Bootstrap) registerRepository() {
	b.Repository.TickRepository = tickInfra.NewRepository(b.QuestDB)
}
