package ports

import "context"

// EventPublisher publishes session transitions to notify other instances
type EventPublisher interface {
	PublishLogin(ctx context.Context, subject string) error
	PublishLogout(ctx context.Context, subject string) error
}
