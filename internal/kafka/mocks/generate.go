//go:generate mockgen -source=../reader.go -destination=./mock_reader.go -package=mocks

package mocks
