//go:generate mockgen -source=../logger.go                  -destination=./mock_logger.go                  -package=mocks
//go:generate mockgen -source=../order_processor.go         -destination=./mock_order_processor.go         -package=mocks
//go:generate mockgen -source=../notification_repository.go -destination=./mock_notification_repository.go -package=mocks
//go:generate mockgen -source=../summary.go                 -destination=./mock_summary.go                 -package=mocks
//go:generate mockgen -source=../offset_store.go            -destination=./mock_offset_store.go            -package=mocks
//go:generate mockgen -source=../validator.go               -destination=./mock_validator.go               -package=mocks
//go:generate mockgen -source=../hosted_service.go          -destination=./mock_hosted_service.go          -package=mocks

package mocks
