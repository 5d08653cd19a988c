package constants

// Event transport providers selectable through pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderKafka  = "kafka"
)

// Order event types carried on the event bus.
const (
	EventOrderCreated  = "order.created"
	EventOrderAssigned = "order.assigned"
)

// RestaurantTopicPrefix prefixes the FCM topic a restaurant tablet subscribes to.
const RestaurantTopicPrefix = "restaurant-"

// EnvDevelop is the env.env value of local development deployments.
const EnvDevelop = "develop"
