package http

import (
	"time"

	"fastdelivery/internal/core/application/usecases/queries"
	"fastdelivery/internal/core/domain/model/courier"
	"fastdelivery/internal/core/domain/model/order"
	"fastdelivery/internal/core/domain/model/store"
	"fastdelivery/internal/core/ports"
)

// Request bodies.

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type createStoreRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Address  string `json:"address"`
}

type storeStatusRequest struct {
	IsOpen *bool `json:"isOpen"`
}

type createCourierRequest struct {
	Name    string `json:"name"`
	Vehicle string `json:"vehicle"`
}

type courierAvailabilityRequest struct {
	Available *bool `json:"available"`
}

type createOrderRequest struct {
	StoreID      string             `json:"storeId"`
	CustomerName string             `json:"customerName"`
	Items        []orderItemRequest `json:"items"`
}

type orderItemRequest struct {
	Name  string  `json:"name"`
	Qty   int     `json:"qty"`
	Price float64 `json:"price"`
}

type approveOrderRequest struct {
	CourierID string `json:"courierId"`
}

// Response envelopes. The shapes mirror the public API contract: list
// endpoints wrap their collection, single-entity endpoints wrap the entity
// and optionally carry a message.

type userEnvelope struct {
	User userJSON `json:"user"`
}

type storesEnvelope struct {
	Stores []storeJSON `json:"stores"`
}

type storeEnvelope struct {
	Store   storeJSON `json:"store"`
	Message string    `json:"message,omitempty"`
}

type couriersEnvelope struct {
	Couriers []courierJSON `json:"couriers"`
}

type courierEnvelope struct {
	Courier courierJSON `json:"courier"`
	Message string      `json:"message,omitempty"`
}

type ordersEnvelope struct {
	Orders []orderJSON `json:"orders"`
}

type orderEnvelope struct {
	Order   orderJSON `json:"order"`
	Message string    `json:"message,omitempty"`
}

type messageEnvelope struct {
	Message string `json:"message"`
}

type errorsEnvelope struct {
	Errors []string `json:"errors"`
}

type errorEnvelope struct {
	Error string `json:"error"`
}

// JSON entity shapes.

type userJSON struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type storeJSON struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Address   string    `json:"address"`
	IsOpen    bool      `json:"isOpen"`
	CreatedAt time.Time `json:"createdAt"`
}

type courierJSON struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Vehicle   string    `json:"vehicle"`
	Available bool      `json:"available"`
	CreatedAt time.Time `json:"createdAt"`
}

type orderItemJSON struct {
	Name  string  `json:"name"`
	Qty   int     `json:"qty"`
	Price float64 `json:"price"`
}

type orderJSON struct {
	ID           string          `json:"id"`
	StoreID      string          `json:"storeId"`
	CustomerName string          `json:"customerName"`
	Items        []orderItemJSON `json:"items"`
	Total        float64         `json:"total"`
	Status       string          `json:"status"`
	CourierID    *string         `json:"courierId"`
	CreatedAt    time.Time       `json:"createdAt"`
	DeliveredAt  *time.Time      `json:"deliveredAt"`
}

func userFromIdentity(identity ports.Identity) userJSON {
	return userJSON{
		ID:       identity.ID,
		Username: identity.Username,
		Role:     identity.Role,
	}
}

func userFromAuthResponse(resp queries.AuthenticateUserQueryResponse) userJSON {
	return userJSON{
		ID:       resp.ID.String(),
		Username: resp.Username,
		Role:     resp.Role,
	}
}

func storeFromAggregate(aggregate *store.Store) storeJSON {
	return storeJSON{
		ID:        aggregate.ID().String(),
		Name:      aggregate.Name(),
		Category:  aggregate.Category(),
		Address:   aggregate.Address(),
		IsOpen:    aggregate.IsOpen(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

func storeFromQueryResponse(resp queries.StoreResponse) storeJSON {
	return storeJSON{
		ID:        resp.ID.String(),
		Name:      resp.Name,
		Category:  resp.Category,
		Address:   resp.Address,
		IsOpen:    resp.IsOpen,
		CreatedAt: resp.CreatedAt,
	}
}

func courierFromAggregate(aggregate *courier.Courier) courierJSON {
	return courierJSON{
		ID:        aggregate.ID().String(),
		Name:      aggregate.Name(),
		Vehicle:   aggregate.Vehicle(),
		Available: aggregate.Available(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

func courierFromQueryResponse(resp queries.CourierResponse) courierJSON {
	return courierJSON{
		ID:        resp.ID.String(),
		Name:      resp.Name,
		Vehicle:   resp.Vehicle,
		Available: resp.Available,
		CreatedAt: resp.CreatedAt,
	}
}

func orderFromAggregate(aggregate *order.Order) orderJSON {
	domainItems := aggregate.Items()
	items := make([]orderItemJSON, 0, len(domainItems))
	for _, item := range domainItems {
		items = append(items, orderItemJSON{
			Name:  item.Name(),
			Qty:   item.Qty(),
			Price: item.Price(),
		})
	}

	var courierID *string
	if id := aggregate.CourierID(); id != nil {
		s := id.String()
		courierID = &s
	}

	return orderJSON{
		ID:           aggregate.ID().String(),
		StoreID:      aggregate.StoreID().String(),
		CustomerName: aggregate.CustomerName(),
		Items:        items,
		Total:        aggregate.Total(),
		Status:       aggregate.Status().String(),
		CourierID:    courierID,
		CreatedAt:    aggregate.CreatedAt(),
		DeliveredAt:  aggregate.DeliveredAt(),
	}
}

func orderFromQueryResponse(resp queries.OrderResponse) orderJSON {
	items := make([]orderItemJSON, 0, len(resp.Items))
	for _, item := range resp.Items {
		items = append(items, orderItemJSON{
			Name:  item.Name,
			Qty:   item.Qty,
			Price: item.Price,
		})
	}

	var courierID *string
	if resp.CourierID != nil {
		s := resp.CourierID.String()
		courierID = &s
	}

	return orderJSON{
		ID:           resp.ID.String(),
		StoreID:      resp.StoreID.String(),
		CustomerName: resp.CustomerName,
		Items:        items,
		Total:        resp.Total,
		Status:       resp.Status,
		CourierID:    courierID,
		CreatedAt:    resp.CreatedAt,
		DeliveredAt:  resp.DeliveredAt,
	}
}
