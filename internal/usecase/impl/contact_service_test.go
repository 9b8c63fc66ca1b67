package impl

import (
	"context"
	"testing"

	"contacts/config"
	deliverycontext "contacts/internal/delivery/context"
	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/repository"
	"contacts/internal/domain/service"
	mockRepo "contacts/internal/mocks/repository"
	mockSvc "contacts/internal/mocks/service"
	"contacts/internal/usecase"
	"contacts/internal/validation"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type contactServiceFixtures struct {
	service        usecase.ContactUsecase
	txManager      *mockRepo.MockTransactionManager
	contactRepo    *mockRepo.MockContactRepository
	qrCodeService  *mockSvc.MockQRCodeService
	eventPublisher *mockSvc.MockEventPublisher
}

func createTestContactService(t *testing.T) contactServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	contactRepo := mockRepo.NewMockContactRepository(t)
	qrCodeService := mockSvc.NewMockQRCodeService(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)

	service := NewContactService(ContactServiceParams{
		TxManager:      txManager,
		ContactRepo:    contactRepo,
		QRCodeService:  qrCodeService,
		EventPublisher: eventPublisher,
		Validator:      validation.New(),
		Config: &config.Config{
			Contact: &config.ContactConfig{DefaultPageSize: 1, MaxPageSize: 100},
		},
		Logger: newDiscardLogger(),
	})

	return contactServiceFixtures{
		service:        service,
		txManager:      txManager,
		contactRepo:    contactRepo,
		qrCodeService:  qrCodeService,
		eventPublisher: eventPublisher,
	}
}

func eventOf(eventType service.ContactEventType, id int64) interface{} {
	return mock.MatchedBy(func(e *service.ContactEvent) bool {
		return e.Type == eventType && e.ContactID == id && e.Username == "alice" && !e.OccurredAt.IsZero()
	})
}

var alice = &entity.User{Username: "alice", Name: "Alice"}

func TestContactService_Create(t *testing.T) {
	fx := createTestContactService(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")

	fx.contactRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(c *entity.Contact) bool {
			return c.Username == "alice" && c.FirstName == "Bob" && c.LastName == nil && *c.Email == "bob@example.com"
		})).
		Run(func(_ context.Context, c *entity.Contact) { c.ID = 7 }).
		Return(nil)
	fx.eventPublisher.EXPECT().
		PublishContactEvent(ctx, mock.MatchedBy(func(e *service.ContactEvent) bool {
			return e.Type == service.ContactCreated && e.ContactID == 7 && e.RequestID == "req-1"
		})).
		Return(nil)

	output, err := fx.service.Create(ctx, alice, &usecase.CreateContactInput{
		FirstName: "Bob",
		Email:     strPtr("bob@example.com"),
	})

	require.NoError(t, err)
	assert.Equal(t, &usecase.ContactResponse{ID: 7, FirstName: "Bob", Email: strPtr("bob@example.com")}, output)
}

func TestContactService_Create_PublishFailureIsIgnored(t *testing.T) {
	fx := createTestContactService(t)
	ctx := context.Background()

	fx.contactRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.eventPublisher.EXPECT().PublishContactEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	output, err := fx.service.Create(ctx, alice, &usecase.CreateContactInput{FirstName: "Bob"})

	require.NoError(t, err)
	assert.Equal(t, "Bob", output.FirstName)
}

func TestContactService_Create_Validation(t *testing.T) {
	fx := createTestContactService(t)

	_, err := fx.service.Create(context.Background(), alice, &usecase.CreateContactInput{
		Email: strPtr("not-an-email"),
		Phone: strPtr("012345678901234567890"),
	})

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	fields := make([]string, 0, len(validationErr.Fields))
	for _, f := range validationErr.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"first_name", "email", "phone"}, fields)
}

func TestContactService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("owned", func(t *testing.T) {
		fx := createTestContactService(t)
		fx.contactRepo.EXPECT().FindByIDAndOwner(ctx, int64(3), "alice").
			Return(&entity.Contact{ID: 3, Username: "alice", FirstName: "Bob"}, nil)

		output, err := fx.service.Get(ctx, alice, 3)

		require.NoError(t, err)
		assert.Equal(t, int64(3), output.ID)
	})

	t.Run("foreign or missing", func(t *testing.T) {
		fx := createTestContactService(t)
		fx.contactRepo.EXPECT().FindByIDAndOwner(ctx, int64(3), "alice").Return(nil, repository.ErrContactNotFound)

		_, err := fx.service.Get(ctx, alice, 3)

		assert.True(t, errors.Is(err, domainerrors.ErrContactNotFound))
	})
}

func TestContactService_Update_OnlyPresentFieldsChange(t *testing.T) {
	fx := createTestContactService(t)
	ctx := context.Background()

	txContactRepo := mockRepo.NewMockContactRepository(t)
	expectTx(t, fx.txManager, nil, txContactRepo)

	existing := &entity.Contact{
		ID:        3,
		Username:  "alice",
		FirstName: "Bob",
		LastName:  strPtr("Builder"),
		Email:     strPtr("bob@example.com"),
		Phone:     strPtr("0811"),
	}
	txContactRepo.EXPECT().FindByIDAndOwner(ctx, int64(3), "alice").Return(existing, nil)
	txContactRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(c *entity.Contact) bool {
			return c.FirstName == "Bob" && *c.LastName == "Builder" && *c.Email == "bob@example.com" && *c.Phone == "0999"
		})).
		Return(nil)
	fx.eventPublisher.EXPECT().PublishContactEvent(ctx, eventOf(service.ContactUpdated, 3)).Return(nil)

	output, err := fx.service.Update(ctx, alice, &usecase.UpdateContactInput{ID: 3, FirstName: "Bob", Phone: strPtr("0999")})

	require.NoError(t, err)
	assert.Equal(t, "0999", *output.Phone)
	assert.Equal(t, "Builder", *output.LastName)
}

func TestContactService_Update_NotOwned(t *testing.T) {
	fx := createTestContactService(t)
	ctx := context.Background()

	txContactRepo := mockRepo.NewMockContactRepository(t)
	expectTx(t, fx.txManager, nil, txContactRepo)
	txContactRepo.EXPECT().FindByIDAndOwner(ctx, int64(3), "alice").Return(nil, repository.ErrContactNotFound)

	_, err := fx.service.Update(ctx, alice, &usecase.UpdateContactInput{ID: 3, FirstName: "Bob"})

	assert.True(t, errors.Is(err, domainerrors.ErrContactNotFound))
}

func TestContactService_Update_InvalidID(t *testing.T) {
	fx := createTestContactService(t)

	_, err := fx.service.Update(context.Background(), alice, &usecase.UpdateContactInput{ID: 0, FirstName: "Bob"})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestContactService_Delete(t *testing.T) {
	fx := createTestContactService(t)
	ctx := context.Background()

	txContactRepo := mockRepo.NewMockContactRepository(t)
	expectTx(t, fx.txManager, nil, txContactRepo)

	txContactRepo.EXPECT().FindByIDAndOwner(ctx, int64(3), "alice").
		Return(&entity.Contact{ID: 3, Username: "alice", FirstName: "Bob"}, nil)
	txContactRepo.EXPECT().Delete(ctx, int64(3), "alice").Return(nil)
	fx.eventPublisher.EXPECT().PublishContactEvent(ctx, eventOf(service.ContactDeleted, 3)).Return(nil)

	output, err := fx.service.Delete(ctx, alice, 3)

	require.NoError(t, err)
	assert.Equal(t, &usecase.ContactResponse{ID: 3, FirstName: "Bob"}, output)
}

func TestContactService_Delete_NotOwned(t *testing.T) {
	fx := createTestContactService(t)
	ctx := context.Background()

	txContactRepo := mockRepo.NewMockContactRepository(t)
	expectTx(t, fx.txManager, nil, txContactRepo)
	txContactRepo.EXPECT().FindByIDAndOwner(ctx, int64(3), "alice").Return(nil, repository.ErrContactNotFound)

	_, err := fx.service.Delete(ctx, alice, 3)

	assert.True(t, errors.Is(err, domainerrors.ErrContactNotFound))
}

func TestContactService_Search_Defaults(t *testing.T) {
	fx := createTestContactService(t)
	ctx := context.Background()

	fx.contactRepo.EXPECT().Search(ctx, "alice", repository.ContactFilter{}, 0, 1).
		Return([]*entity.Contact{{ID: 1, Username: "alice", FirstName: "Al"}}, nil)
	fx.contactRepo.EXPECT().Count(ctx, "alice", repository.ContactFilter{}).Return(int64(2), nil)

	output, err := fx.service.Search(ctx, alice, &usecase.SearchContactInput{})

	require.NoError(t, err)
	require.Len(t, output.Data, 1)
	assert.Equal(t, entity.Paging{CurrentPage: 1, Size: 1, TotalPage: 2}, output.Paging)
}

func TestContactService_Search_FilterAndPage(t *testing.T) {
	fx := createTestContactService(t)
	ctx := context.Background()
	filter := repository.ContactFilter{Name: "Al", Phone: "555"}

	fx.contactRepo.EXPECT().Search(ctx, "alice", filter, 20, 10).Return([]*entity.Contact{}, nil)
	fx.contactRepo.EXPECT().Count(ctx, "alice", filter).Return(int64(21), nil)

	output, err := fx.service.Search(ctx, alice, &usecase.SearchContactInput{Name: "Al", Phone: "555", Page: 3, Size: 10})

	require.NoError(t, err)
	assert.Empty(t, output.Data)
	assert.NotNil(t, output.Data)
	assert.Equal(t, entity.Paging{CurrentPage: 3, Size: 10, TotalPage: 3}, output.Paging)
}

func TestContactService_Search_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.SearchContactInput
		field string
	}{
		{"size above max", &usecase.SearchContactInput{Size: 101}, "size"},
		{"negative size", &usecase.SearchContactInput{Size: -1}, "size"},
		{"negative page", &usecase.SearchContactInput{Page: -1}, "page"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestContactService(t)

			_, err := fx.service.Search(context.Background(), alice, tt.input)

			var validationErr *domainerrors.ValidationError
			require.True(t, errors.As(err, &validationErr))
			require.Len(t, validationErr.Fields, 1)
			assert.Equal(t, tt.field, validationErr.Fields[0].Field)
		})
	}
}

func TestContactService_QRCode(t *testing.T) {
	ctx := context.Background()
	contact := &entity.Contact{ID: 3, Username: "alice", FirstName: "Bob"}

	t.Run("rendered", func(t *testing.T) {
		fx := createTestContactService(t)
		fx.contactRepo.EXPECT().FindByIDAndOwner(ctx, int64(3), "alice").Return(contact, nil)
		fx.qrCodeService.EXPECT().GenerateContactQR(contact).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

		png, err := fx.service.QRCode(ctx, alice, 3)

		require.NoError(t, err)
		assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
	})

	t.Run("render failure", func(t *testing.T) {
		fx := createTestContactService(t)
		fx.contactRepo.EXPECT().FindByIDAndOwner(ctx, int64(3), "alice").Return(contact, nil)
		fx.qrCodeService.EXPECT().GenerateContactQR(contact).Return(nil, errors.New("too much data"))

		_, err := fx.service.QRCode(ctx, alice, 3)

		assert.True(t, errors.Is(err, domainerrors.ErrQRCodeFailed))
	})

	t.Run("not owned", func(t *testing.T) {
		fx := createTestContactService(t)
		fx.contactRepo.EXPECT().FindByIDAndOwner(ctx, int64(3), "alice").Return(nil, repository.ErrContactNotFound)

		_, err := fx.service.QRCode(ctx, alice, 3)

		assert.True(t, errors.Is(err, domainerrors.ErrContactNotFound))
	})
}
