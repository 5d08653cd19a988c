package entity

// OrderStatus is the delivery state of an order.
type OrderStatus string

const (
	OrderStatusUnprocessed OrderStatus = "unprocessed"
	OrderStatusCooking     OrderStatus = "cooking"
	OrderStatusShipped     OrderStatus = "shipped"
	OrderStatusDelivered   OrderStatus = "delivered"
)

// ActiveOrderStatuses are the states shown in the manager order list.
var ActiveOrderStatuses = []OrderStatus{
	OrderStatusUnprocessed,
	OrderStatusCooking,
	OrderStatusShipped,
}

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusUnprocessed, OrderStatusCooking, OrderStatusShipped, OrderStatusDelivered:
		return true
	default:
		return false
	}
}

// IsActive reports whether the order still needs manager attention.
func (s OrderStatus) IsActive() bool {
	return s.IsValid() && s != OrderStatusDelivered
}

// Next returns the only status an order may move to, or false when delivered.
func (s OrderStatus) Next() (OrderStatus, bool) {
	switch s {
	case OrderStatusUnprocessed:
		return OrderStatusCooking, true
	case OrderStatusCooking:
		return OrderStatusShipped, true
	case OrderStatusShipped:
		return OrderStatusDelivered, true
	default:
		return "", false
	}
}

// CanTransitionTo reports whether next directly follows s.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	want, ok := s.Next()

	return ok && want == next
}

// PaymentType is how the customer pays the courier.
type PaymentType string

const (
	PaymentTypeCash PaymentType = "cash"
	PaymentTypeCard PaymentType = "card"
)

// IsValid checks if the PaymentType is a valid value.
func (p PaymentType) IsValid() bool {
	return p == PaymentTypeCash || p == PaymentTypeCard
}
