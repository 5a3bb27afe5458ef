// Package constants holds identifiers shared across layers.
package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers accepted by the pubsub.provider setting.
const (
	PubSubProviderGoogle = "google"
	PubSubProviderLocal  = "local"
)

// Firestore collection layout.
const (
	CollectionUsers            = "users"
	CollectionPendingProfiles  = "pending_profiles"
	CollectionRequests         = "requests"
	CollectionMessages         = "messages"
	CollectionNotifications    = "notifications"
	CollectionUserNotification = "user_notifications"
)

// MaxBatchWrites is the number of documents one Firestore batch may touch.
const MaxBatchWrites = 500

// MaxMulticastTokens is the number of device tokens one FCM multicast call accepts.
const MaxMulticastTokens = 500
