// internal/core/domain/errors_test.go
package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nordhus/wms-sync/internal/core/domain"
)

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		transient bool
		permanent bool
	}{
		{
			name:      "transport_error_is_transient",
			err:       &domain.TransportError{Op: "GET /orders/1", Err: errors.New("connection refused")},
			transient: true,
		},
		{
			name:      "wrapped_transport_error_is_transient",
			err:       fmt.Errorf("failed to fetch order D00050: %w", &domain.TransportError{Op: "GET", Err: errors.New("timeout")}),
			transient: true,
		},
		{
			name:      "unknown_order_is_permanent",
			err:       domain.ErrUnknownOrder,
			permanent: true,
		},
		{
			name:      "wrapped_unknown_order_is_permanent",
			err:       fmt.Errorf("GET /api/v1/deliveries/00050: %w", domain.ErrUnknownOrder),
			permanent: true,
		},
		{
			name:      "commit_error_is_permanent",
			err:       &domain.CommitError{OrderNumber: "00050", Reason: "document posted"},
			permanent: true,
		},
		{
			name:      "malformed_order_number_is_permanent",
			err:       &domain.MalformedOrderNumberError{Raw: "ABC"},
			permanent: true,
		},
		{
			name:      "line_not_found_is_permanent",
			err:       &domain.OrderLineNotFoundError{OrderNumber: "00050", LineNumber: 9},
			permanent: true,
		},
		{
			name: "plain_error_is_neither",
			err:  errors.New("disk full"),
		},
		{
			name: "nil_is_neither",
			err:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.transient, domain.IsTransient(tt.err))
			assert.Equal(t, tt.permanent, domain.IsPermanent(tt.err))
		})
	}
}

func TestTransportError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := &domain.TransportError{Op: "PUT /orders/1", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "PUT /orders/1")
}

func TestCommitError_Error(t *testing.T) {
	withReason := &domain.CommitError{OrderNumber: "00050", Reason: "already invoiced"}
	assert.Contains(t, withReason.Error(), "already invoiced")

	bare := &domain.CommitError{OrderNumber: "00050"}
	assert.Contains(t, bare.Error(), "00050")
}
