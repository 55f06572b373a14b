package service

// Event types pushed to websocket subscribers.
const (
	EventMedicineCreated = "medicine_created"
	EventMedicineUpdated = "medicine_updated"
	EventMedicineDeleted = "medicine_deleted"
	EventSaleCreated     = "sale_created"
	EventLowStock        = "low_stock"
)

// Publisher fans events out to live clients. Publish must not block.
type Publisher interface {
	Publish(eventType string, payload interface{})
}

type nopPublisher struct{}

func (nopPublisher) Publish(string, interface{}) {}

func publisherOrNop(p Publisher) Publisher {
	if p == nil {
		return nopPublisher{}
	}
	return p
}
