package services

import (
	"log"

	"pasar/internal/ledger"
	"pasar/internal/models"
	"pasar/internal/repositories"
	"pasar/pkg/rabbitmq"
)

// SettlementService is the order state machine: one method per transition.
// Each method validates every business guard first, then applies the
// transition and its ledger effects through one atomic settlement unit, and
// finally publishes an event. No two transitions for the same order can
// interleave: the settlement store locks the order row for the whole unit.
type SettlementService struct {
	settlements repositories.SettlementRepository
	rates       ledger.Rates
	mqClient    *rabbitmq.Client
}

// NewSettlementService creates a new SettlementService.
func NewSettlementService(settlements repositories.SettlementRepository, rates ledger.Rates, mqClient *rabbitmq.Client) *SettlementService {
	return &SettlementService{
		settlements: settlements,
		rates:       rates,
		mqClient:    mqClient,
	}
}

// publish sends a settlement event after a successful commit. Failures are
// logged, never surfaced: the settlement already happened.
func (s *SettlementService) publish(event string, payload map[string]interface{}) {
	if s.mqClient == nil {
		return
	}
	if err := s.mqClient.PublishSettlementEvent(event, payload); err != nil {
		log.Printf("Warning: Failed to publish %s event: %v", event, err)
	}
}

// history appends one audit row for a transition.
func history(store repositories.SettlementStore, order *models.Order, status string) error {
	return store.AddHistory(&models.OrderHistory{
		OrderUniqueID: order.UniqueID,
		OrderStatus:   status,
		Price:         order.Amount,
	})
}
