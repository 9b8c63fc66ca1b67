package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"contacts/config"
	deliverycontext "contacts/internal/delivery/context"
	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/repository"
	"contacts/internal/domain/service"
	"contacts/internal/errors"
	"contacts/internal/usecase"
	"contacts/internal/validation"

	"go.uber.org/fx"
)

const (
	defaultSearchPage     = 1
	defaultSearchPageSize = 1
	defaultMaxPageSize    = 100
)

type contactService struct {
	txManager       repository.TransactionManager
	contactRepo     repository.ContactRepository
	qrCodeService   service.QRCodeService
	eventPublisher  service.EventPublisher
	validator       *validation.Validator
	defaultPageSize int
	maxPageSize     int
	logger          *slog.Logger
}

// ContactServiceParams holds dependencies for ContactService, injected by Fx.
type ContactServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	ContactRepo    repository.ContactRepository
	QRCodeService  service.QRCodeService
	EventPublisher service.EventPublisher
	Validator      *validation.Validator
	Config         *config.Config
	Logger         *slog.Logger
}

// NewContactService is the constructor for contactService.
func NewContactService(params ContactServiceParams) usecase.ContactUsecase {
	defaultPageSize := defaultSearchPageSize
	maxPageSize := defaultMaxPageSize
	if params.Config != nil && params.Config.Contact != nil {
		if params.Config.Contact.DefaultPageSize > 0 {
			defaultPageSize = params.Config.Contact.DefaultPageSize
		}
		if params.Config.Contact.MaxPageSize > 0 {
			maxPageSize = params.Config.Contact.MaxPageSize
		}
	}

	return &contactService{
		txManager:       params.TxManager,
		contactRepo:     params.ContactRepo,
		qrCodeService:   params.QRCodeService,
		eventPublisher:  params.EventPublisher,
		validator:       params.Validator,
		defaultPageSize: min(defaultPageSize, maxPageSize),
		maxPageSize:     maxPageSize,
		logger:          params.Logger,
	}
}

func (srv *contactService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create stores a new contact owned by user.
func (srv *contactService) Create(ctx context.Context, user *entity.User, input *usecase.CreateContactInput) (*usecase.ContactResponse, error) {
	if err := srv.validator.Validate(input); err != nil {
		return nil, err
	}

	contact := &entity.Contact{
		Username:  user.Username,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
	}

	if err := srv.contactRepo.Create(ctx, contact); err != nil {
		return nil, errors.Wrap(err, "failed to create contact")
	}

	srv.publish(ctx, service.ContactCreated, contact)

	return usecase.NewContactResponse(contact), nil
}

// Get returns one of the user's contacts.
func (srv *contactService) Get(ctx context.Context, user *entity.User, id int64) (*usecase.ContactResponse, error) {
	contact, err := findOwnedContact(ctx, srv.contactRepo, user, id)
	if err != nil {
		return nil, err
	}

	return usecase.NewContactResponse(contact), nil
}

// Update overwrites first_name and the optional fields present in input.
func (srv *contactService) Update(ctx context.Context, user *entity.User, input *usecase.UpdateContactInput) (*usecase.ContactResponse, error) {
	if err := srv.validator.Validate(input); err != nil {
		return nil, err
	}

	var updated *entity.Contact
	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		contactRepo := repoFactory.ContactRepo()

		contact, err := findOwnedContact(ctx, contactRepo, user, input.ID)
		if err != nil {
			return err
		}

		contact.FirstName = input.FirstName
		if input.LastName != nil {
			contact.LastName = input.LastName
		}
		if input.Email != nil {
			contact.Email = input.Email
		}
		if input.Phone != nil {
			contact.Phone = input.Phone
		}

		if err := contactRepo.Update(ctx, contact); err != nil {
			return errors.Wrap(err, "failed to update contact")
		}
		updated = contact

		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "failed to execute update contact transaction")
	}

	srv.publish(ctx, service.ContactUpdated, updated)

	return usecase.NewContactResponse(updated), nil
}

// Delete removes one of the user's contacts and returns what was removed.
func (srv *contactService) Delete(ctx context.Context, user *entity.User, id int64) (*usecase.ContactResponse, error) {
	var deleted *entity.Contact
	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		contactRepo := repoFactory.ContactRepo()

		contact, err := findOwnedContact(ctx, contactRepo, user, id)
		if err != nil {
			return err
		}

		if err := contactRepo.Delete(ctx, contact.ID, user.Username); err != nil {
			return errors.Wrap(err, "failed to delete contact")
		}
		deleted = contact

		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "failed to execute delete contact transaction")
	}

	srv.publish(ctx, service.ContactDeleted, deleted)

	return usecase.NewContactResponse(deleted), nil
}

// Search pages through the user's contacts matching every given criterion.
func (srv *contactService) Search(ctx context.Context, user *entity.User, input *usecase.SearchContactInput) (*usecase.SearchContactOutput, error) {
	if err := srv.validator.Validate(input); err != nil {
		return nil, err
	}

	page := input.Page
	if page == 0 {
		page = defaultSearchPage
	}
	size := input.Size
	if size == 0 {
		size = srv.defaultPageSize
	}
	if size > srv.maxPageSize {
		return nil, domainerrors.NewValidationError(domainerrors.FieldError{
			Field:   "size",
			Message: "must be less than or equal to " + strconv.Itoa(srv.maxPageSize),
		})
	}

	filter := repository.ContactFilter{
		Name:  input.Name,
		Email: input.Email,
		Phone: input.Phone,
	}

	contacts, err := srv.contactRepo.Search(ctx, user.Username, filter, entity.Offset(page, size), size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search contacts")
	}

	total, err := srv.contactRepo.Count(ctx, user.Username, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count contacts")
	}

	data := make([]*usecase.ContactResponse, 0, len(contacts))
	for _, contact := range contacts {
		data = append(data, usecase.NewContactResponse(contact))
	}

	return &usecase.SearchContactOutput{
		Data:   data,
		Paging: entity.NewPaging(page, size, total),
	}, nil
}

// QRCode renders one of the user's contacts as a vCard QR code.
func (srv *contactService) QRCode(ctx context.Context, user *entity.User, id int64) ([]byte, error) {
	contact, err := findOwnedContact(ctx, srv.contactRepo, user, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCodeService.GenerateContactQR(contact)
	if err != nil {
		srv.log(ctx).Error("Failed to generate contact QR code",
			slog.Int64("contact_id", contact.ID),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrQRCodeFailed.WrapMessage("failed to render contact")
	}

	return png, nil
}

// publish emits a change event. Failures are logged and never reach the caller.
func (srv *contactService) publish(ctx context.Context, eventType service.ContactEventType, contact *entity.Contact) {
	event := &service.ContactEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		ContactID:  contact.ID,
		Username:   contact.Username,
		OccurredAt: time.Now().UTC(),
	}

	if err := srv.eventPublisher.PublishContactEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish contact event",
			slog.String("type", string(eventType)),
			slog.Int64("contact_id", contact.ID),
			slog.Any("error", err),
		)
	}
}

func findOwnedContact(ctx context.Context, contactRepo repository.ContactRepository, user *entity.User, id int64) (*entity.Contact, error) {
	contact, err := contactRepo.FindByIDAndOwner(ctx, id, user.Username)
	if err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			return nil, domainerrors.ErrContactNotFound.WrapMessage("contact is not found")
		}

		return nil, errors.Wrap(err, "failed to find contact")
	}

	return contact, nil
}
