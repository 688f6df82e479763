package postgres

import (
	"context"

	"authhub/internal/domain/entity"
	domainerrors "authhub/internal/domain/errors"
	"authhub/internal/domain/repository"
	"authhub/internal/errors"
	"authhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"gorm.io/gorm"
)

type verificationTokenRepository struct {
	db    *gorm.DB
	clock clockwork.Clock
}

// NewVerificationTokenRepository is the constructor for verificationTokenRepository.
func NewVerificationTokenRepository(db *gorm.DB, clk clockwork.Clock) repository.VerificationTokenRepository {
	return &verificationTokenRepository{db: db, clock: clk}
}

func (repo *verificationTokenRepository) CreateVerificationToken(ctx context.Context, token *entity.VerificationToken) error {
	tokenM := fromVerificationTokenDomain(token)

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		return writeError(err, domainerrors.ErrConflict, "failed to create verification token")
	}

	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// FindVerificationToken returns the token even when it is consumed or
// expired; callers decide with Usable.
func (repo *verificationTokenRepository) FindVerificationToken(ctx context.Context, purpose entity.VerificationPurpose, tokenHash string) (*entity.VerificationToken, error) {
	var tokenM model.VerificationTokenModel
	err := repo.db.WithContext(ctx).
		Where("purpose = ? AND token_hash = ?", string(purpose), tokenHash).
		First(&tokenM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVerificationTokenNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toVerificationTokenDomain(&tokenM), nil
}

func (repo *verificationTokenRepository) MarkConsumed(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VerificationTokenModel{}).
		Where("id = ? AND consumed_at IS NULL", id).
		Update("consumed_at", repo.clock.Now())
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to consume verification token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVerificationTokenNotFound
	}

	return nil
}

func (repo *verificationTokenRepository) DeleteByUserAndPurpose(ctx context.Context, userID uuid.UUID, purpose entity.VerificationPurpose) error {
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND purpose = ?", userID, string(purpose)).
		Delete(&model.VerificationTokenModel{}).Error
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// --- Mapper Functions ---

func toVerificationTokenDomain(data *model.VerificationTokenModel) *entity.VerificationToken {
	if data == nil {
		return nil
	}

	return &entity.VerificationToken{
		ID:         data.ID,
		UserID:     data.UserID,
		Purpose:    entity.VerificationPurpose(data.Purpose),
		TokenHash:  data.TokenHash,
		ExpiresAt:  data.ExpiresAt,
		ConsumedAt: data.ConsumedAt,
		CreatedAt:  data.CreatedAt,
	}
}

func fromVerificationTokenDomain(data *entity.VerificationToken) *model.VerificationTokenModel {
	if data == nil {
		return nil
	}

	return &model.VerificationTokenModel{
		ID:         data.ID,
		UserID:     data.UserID,
		Purpose:    string(data.Purpose),
		TokenHash:  data.TokenHash,
		ExpiresAt:  data.ExpiresAt,
		ConsumedAt: data.ConsumedAt,
		CreatedAt:  data.CreatedAt,
	}
}
