package domain

import "context"

// DispatcherPort is what callers use to send change alerts
type DispatcherPort interface {
	Send(ctx context.Context, recipient string, a Alert) error
}

// SenderPort puts a rendered message on the wire; tests fake this seam
type SenderPort interface {
	Send(ctx context.Context, m Message) error
}
