package ports

import "context"

// HostedService — фоновый сервис с явным жизненным циклом.
// Start не блокируется, Stop ждёт завершения работы.
type HostedService interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

// BackgroundWorker — HostedService, за завершением которого можно наблюдать.
type BackgroundWorker interface {
	HostedService
	// Done закрывается, когда рабочий цикл завершился (сам или через Stop).
	Done() <-chan struct{}
	// Err — причина завершения; nil при штатной остановке.
	Err() error
}
