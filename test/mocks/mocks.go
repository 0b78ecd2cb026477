// test/mocks/mocks.go

// Package mocks contains generated mocks for the application's interfaces.
// To regenerate mocks, run `make mocks` from the root directory.
package mocks

//go:generate mockgen -source=../../internal/core/ports/erp.go -destination=erp_client_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/wms.go -destination=wms_mock.go -package=mocks
