package postgres

import (
	"context"
	"time"

	"authhub/internal/domain/entity"
	domainerrors "authhub/internal/domain/errors"
	"authhub/internal/domain/repository"
	"authhub/internal/errors"
	"authhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type mfaRepository struct {
	db    *gorm.DB
	clock clockwork.Clock
}

// NewMFARepository is the constructor for mfaRepository.
func NewMFARepository(db *gorm.DB, clk clockwork.Clock) repository.MFARepository {
	return &mfaRepository{db: db, clock: clk}
}

// UpsertSecret stores a pending factor. Re-enrolment replaces the secret and
// factor id and resets the enabled flag.
func (repo *mfaRepository) UpsertSecret(ctx context.Context, secret *entity.MFASecret) error {
	secretM := fromMFASecretDomain(secret)

	err := repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"factor_id", "secret", "enabled", "updated_at"}),
	}).Create(secretM).Error
	if err != nil {
		return writeError(err, domainerrors.ErrConflict, "failed to store mfa secret")
	}

	secret.CreatedAt = secretM.CreatedAt
	secret.UpdatedAt = secretM.UpdatedAt

	return nil
}

func (repo *mfaRepository) FindSecret(ctx context.Context, userID uuid.UUID) (*entity.MFASecret, error) {
	var secretM model.MFASecretModel
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).First(&secretM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMFASecretNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toMFASecretDomain(&secretM), nil
}

func (repo *mfaRepository) EnableSecret(ctx context.Context, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MFASecretModel{}).
		Where("user_id = ?", userID).
		Update("enabled", true)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to enable mfa secret")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMFASecretNotFound
	}

	return nil
}

// DeleteSecret removes the factor together with its backup codes.
func (repo *mfaRepository) DeleteSecret(ctx context.Context, userID uuid.UUID) error {
	db := repo.db.WithContext(ctx)

	if err := db.Where("user_id = ?", userID).Delete(&model.BackupCodeModel{}).Error; err != nil {
		return errors.WithStack(err)
	}

	result := db.Where("user_id = ?", userID).Delete(&model.MFASecretModel{})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrMFASecretNotFound
	}

	return nil
}

func (repo *mfaRepository) ReplaceBackupCodes(ctx context.Context, userID uuid.UUID, codes []*entity.BackupCode) error {
	db := repo.db.WithContext(ctx)

	if err := db.Where("user_id = ?", userID).Delete(&model.BackupCodeModel{}).Error; err != nil {
		return errors.WithStack(err)
	}
	if len(codes) == 0 {
		return nil
	}

	codeMs := make([]*model.BackupCodeModel, 0, len(codes))
	for _, code := range codes {
		codeM := fromBackupCodeDomain(code)
		codeM.UserID = userID
		codeMs = append(codeMs, codeM)
	}

	if err := db.Create(codeMs).Error; err != nil {
		return writeError(err, domainerrors.ErrConflict, "failed to store backup codes")
	}

	for i, codeM := range codeMs {
		codes[i].ID = codeM.ID
		codes[i].UserID = userID
		codes[i].CreatedAt = codeM.CreatedAt
	}

	return nil
}

// ConsumeBackupCode flips consumed_at in a single conditional update so a
// code cannot be redeemed twice by concurrent requests.
func (repo *mfaRepository) ConsumeBackupCode(ctx context.Context, userID uuid.UUID, codeHash string) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.BackupCodeModel{}).
		Where("user_id = ? AND code_hash = ? AND consumed_at IS NULL", userID, codeHash).
		Update("consumed_at", repo.clock.Now())
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to consume backup code")
	}

	return result.RowsAffected > 0, nil
}

// --- Mapper Functions ---

func toMFASecretDomain(data *model.MFASecretModel) *entity.MFASecret {
	if data == nil {
		return nil
	}

	return &entity.MFASecret{
		UserID:    data.UserID,
		FactorID:  data.FactorID,
		Secret:    data.Secret,
		Enabled:   data.Enabled,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromMFASecretDomain(data *entity.MFASecret) *model.MFASecretModel {
	if data == nil {
		return nil
	}

	return &model.MFASecretModel{
		UserID:    data.UserID,
		FactorID:  data.FactorID,
		Secret:    data.Secret,
		Enabled:   data.Enabled,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromBackupCodeDomain(data *entity.BackupCode) *model.BackupCodeModel {
	var consumedAt *time.Time
	if data.ConsumedAt != nil {
		t := *data.ConsumedAt
		consumedAt = &t
	}

	return &model.BackupCodeModel{
		ID:         data.ID,
		UserID:     data.UserID,
		CodeHash:   data.CodeHash,
		ConsumedAt: consumedAt,
		CreatedAt:  data.CreatedAt,
	}
}
