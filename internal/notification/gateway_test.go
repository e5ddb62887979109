package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/project/bookcrossing/internal/entity"
	"github.com/project/bookcrossing/internal/notification/mocks"
	"github.com/project/bookcrossing/internal/usecase/repository"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"
)

var errInternal = errors.New("internal error")

var testNotification = entity.WishAvailableNotification{
	BatchID:        "0b6f3c1e",
	UserID:         3,
	RecipientName:  "Carol Reader",
	BookID:         7,
	BookTitle:      "Dune",
	RecipientEmail: "c@example.com",
}

func TestGateway_NotifyWishAvailable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		errRequire error
	}{
		{name: "queued"},
		{name: "outbox failure", errRequire: errInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			repo := mocks.NewMockOutboxRepository(ctrl)
			ctx := context.Background()

			repo.EXPECT().SendMessage(ctx, "wish_available_0b6f3c1e_7_3", repository.OutboxKindWishAvailable, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, _ repository.OutboxKind, message []byte) error {
					var got entity.WishAvailableNotification
					require.NoError(t, json.Unmarshal(message, &got))
					require.Equal(t, testNotification, got)
					return tt.errRequire
				})

			err := NewGateway(zaptest.NewLogger(t), repo).NotifyWishAvailable(ctx, testNotification)
			require.ErrorIs(t, err, tt.errRequire)
		})
	}
}

func TestWishAvailableKey(t *testing.T) {
	t.Parallel()

	other := testNotification
	other.UserID = 4

	require.Equal(t, "wish_available_0b6f3c1e_7_3", WishAvailableKey(testNotification))
	require.NotEqual(t, WishAvailableKey(testNotification), WishAvailableKey(other))
}
