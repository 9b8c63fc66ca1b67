package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"contacts/internal/domain/repository"
	mockRepo "contacts/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string { return &s }

// expectTx makes txManager run the callback against a factory that hands out the given repositories.
func expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager, userRepo repository.UserRepository, contactRepo repository.ContactRepository) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			if userRepo != nil {
				factory.EXPECT().UserRepo().Return(userRepo).Maybe()
			}
			if contactRepo != nil {
				factory.EXPECT().ContactRepo().Return(contactRepo).Maybe()
			}

			return fn(factory)
		}).
		Once()
}
