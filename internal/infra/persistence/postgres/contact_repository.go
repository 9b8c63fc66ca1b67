package postgres

import (
	"context"
	"strings"

	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/repository"
	"contacts/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// contactRepository implements the repository.ContactRepository interface.
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository is the constructor for contactRepository.
func NewContactRepository(db *gorm.DB) repository.ContactRepository {
	return &contactRepository{
		db: db,
	}
}

// Create persists a new contact and copies the generated values back to the entity.
func (repo *contactRepository) Create(ctx context.Context, contact *entity.Contact) error {
	contactM := fromContactDomain(contact)
	contactM.ID = 0

	if err := repo.db.WithContext(ctx).Create(contactM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrContactCreationFailed.WrapMessage("owner does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrContactCreationFailed.WrapMessage("missing required contact information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create contact")
	}

	contact.ID = contactM.ID
	contact.CreatedAt = contactM.CreatedAt
	contact.UpdatedAt = contactM.UpdatedAt

	return nil
}

// FindByIDAndOwner retrieves a contact by id, but only when username owns it.
func (repo *contactRepository) FindByIDAndOwner(ctx context.Context, id int64, username string) (*entity.Contact, error) {
	var contactM model.ContactModel
	if err := repo.db.WithContext(ctx).
		Where("id = ? AND username = ?", id, username).
		First(&contactM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContactNotFound
		}

		return nil, errors.Wrap(err, "failed to find contact by id")
	}

	return toContactDomain(&contactM), nil
}

// Update overwrites the mutable columns. Nil optional fields are stored as NULL.
func (repo *contactRepository) Update(ctx context.Context, contact *entity.Contact) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ContactModel{}).
		Where("id = ? AND username = ?", contact.ID, contact.Username).
		Updates(map[string]any{
			"first_name": contact.FirstName,
			"last_name":  contact.LastName,
			"email":      contact.Email,
			"phone":      contact.Phone,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update contact")
	}
	if result.RowsAffected == 0 {
		return repository.ErrContactNotFound
	}

	return nil
}

// Delete removes a contact owned by username.
func (repo *contactRepository) Delete(ctx context.Context, id int64, username string) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND username = ?", id, username).
		Delete(&model.ContactModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete contact")
	}
	if result.RowsAffected == 0 {
		return repository.ErrContactNotFound
	}

	return nil
}

// Search returns the owner's contacts matching filter, ordered by id.
func (repo *contactRepository) Search(ctx context.Context, username string, filter repository.ContactFilter, offset, limit int) ([]*entity.Contact, error) {
	var contactModels []*model.ContactModel

	query := repo.db.WithContext(ctx).
		Scopes(contactSearchScope(username, filter)).
		Order("id ASC").
		Offset(offset)

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&contactModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search contacts")
	}

	contacts := make([]*entity.Contact, 0, len(contactModels))
	for _, contactM := range contactModels {
		contacts = append(contacts, toContactDomain(contactM))
	}

	return contacts, nil
}

// Count returns the number of the owner's contacts matching filter.
func (repo *contactRepository) Count(ctx context.Context, username string, filter repository.ContactFilter) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ContactModel{}).
		Scopes(contactSearchScope(username, filter)).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count contacts")
	}

	return count, nil
}

// contactSearchScope restricts a query to one owner and ANDs the present criteria.
// The name criterion matches either first or last name.
func contactSearchScope(username string, filter repository.ContactFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Where("username = ?", username)

		if filter.Name != "" {
			pattern := likePattern(filter.Name)
			db = db.Where(`(first_name LIKE ? ESCAPE '\' OR last_name LIKE ? ESCAPE '\')`, pattern, pattern)
		}
		if filter.Email != "" {
			db = db.Where(`email LIKE ? ESCAPE '\'`, likePattern(filter.Email))
		}
		if filter.Phone != "" {
			db = db.Where(`phone LIKE ? ESCAPE '\'`, likePattern(filter.Phone))
		}

		return db
	}
}

//nolint:gochecknoglobals
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// likePattern builds a substring pattern with LIKE wildcards in value escaped.
func likePattern(value string) string {
	return "%" + likeEscaper.Replace(value) + "%"
}

func toContactDomain(data *model.ContactModel) *entity.Contact {
	if data == nil {
		return nil
	}

	return &entity.Contact{
		ID:        data.ID,
		Username:  data.Username,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Email:     data.Email,
		Phone:     data.Phone,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromContactDomain(data *entity.Contact) *model.ContactModel {
	if data == nil {
		return nil
	}

	return &model.ContactModel{
		ID:        data.ID,
		Username:  data.Username,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Email:     data.Email,
		Phone:     data.Phone,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
