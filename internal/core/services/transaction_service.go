package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gamepay/wallet-service/internal/apperrors"
	"github.com/gamepay/wallet-service/internal/core/domain"
	portsrepo "github.com/gamepay/wallet-service/internal/core/ports/repositories"
	portssvc "github.com/gamepay/wallet-service/internal/core/ports/services"
	"github.com/gamepay/wallet-service/internal/dto"
	"github.com/gamepay/wallet-service/internal/middleware"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	defaultMaxRetries   = 3
	defaultRetryBackoff = 50 * time.Millisecond
)

// transientPgCodes are Postgres failures worth retrying with a fresh
// transaction: serialization_failure, deadlock_detected, lock_not_available.
var transientPgCodes = map[string]struct{}{
	"40001": {},
	"40P01": {},
	"55P03": {},
}

// transactionService executes movements between wallets. Every movement is
// one database transaction: ordered row locks, balance mutations, double-entry
// legs and the status transition commit or roll back together.
type transactionService struct {
	walletRepo   portsrepo.WalletRepositoryFacade
	txnRepo      portsrepo.TransactionRepositoryFacade
	ledgerRepo   portsrepo.LedgerRepositoryFacade
	assetRepo    portsrepo.AssetTypeReader
	txManager    portsrepo.TransactionManager
	maxRetries   int
	retryBackoff time.Duration
}

// NewTransactionService creates the movement engine. maxRetries and
// retryBackoff fall back to defaults when non-positive.
func NewTransactionService(
	walletRepo portsrepo.WalletRepositoryFacade,
	txnRepo portsrepo.TransactionRepositoryFacade,
	ledgerRepo portsrepo.LedgerRepositoryFacade,
	assetRepo portsrepo.AssetTypeReader,
	txManager portsrepo.TransactionManager,
	maxRetries int,
	retryBackoff time.Duration,
) portssvc.TransactionSvcFacade {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	if retryBackoff <= 0 {
		retryBackoff = defaultRetryBackoff
	}
	return &transactionService{
		walletRepo:   walletRepo,
		txnRepo:      txnRepo,
		ledgerRepo:   ledgerRepo,
		assetRepo:    assetRepo,
		txManager:    txManager,
		maxRetries:   maxRetries,
		retryBackoff: retryBackoff,
	}
}

// Ensure transactionService implements the portssvc.TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// isTransient reports whether err is a Postgres failure that a fresh attempt
// may resolve.
func isTransient(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		_, ok := transientPgCodes[pgErr.Code]
		return ok
	}
	return false
}

// Process executes one movement end to end. Replays of an already-committed
// idempotency key return the original record without touching any balance.
func (s *transactionService) Process(ctx context.Context, txnType domain.TransactionType, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	amount, err := s.validateRequest(txnType, req)
	if err != nil {
		return nil, err
	}

	assetType, err := s.assetRepo.FindAssetTypeByCode(ctx, req.AssetType)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown asset type %q", apperrors.ErrInvalidAsset, req.AssetType)
		}
		return nil, err
	}
	if !assetType.IsActive {
		return nil, fmt.Errorf("%w: asset type %q is inactive", apperrors.ErrInvalidAsset, req.AssetType)
	}

	// Optimistic idempotency pre-check. The unique index on the key remains
	// the authority; this read only short-circuits obvious replays.
	if existing, err := s.txnRepo.FindByIdempotencyKey(ctx, req.IdempotencyKey); err == nil {
		logger.Info("Idempotent replay detected",
			slog.String("idempotency_key", req.IdempotencyKey),
			slog.String("transaction_id", existing.PublicID),
		)
		return existing, nil
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	for attempt := 1; ; attempt++ {
		txn, err := s.processOnce(ctx, txnType, req, assetType, amount)
		if err == nil {
			return txn, nil
		}
		if !isTransient(err) || attempt >= s.maxRetries {
			return nil, err
		}

		logger.Warn("Retrying movement after transient database failure",
			slog.String("idempotency_key", req.IdempotencyKey),
			slog.Int("attempt", attempt),
			slog.String("error", err.Error()),
		)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.retryBackoff * time.Duration(attempt)):
		}
	}
}

// validateRequest checks the inputs the binding layer cannot express and
// parses the amount.
func (s *transactionService) validateRequest(txnType domain.TransactionType, req dto.CreateTransactionRequest) (domain.Money, error) {
	switch txnType {
	case domain.TypeTopup, domain.TypeBonus, domain.TypeSpend:
	default:
		return domain.Money{}, fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, txnType)
	}
	if req.IdempotencyKey == "" {
		return domain.Money{}, fmt.Errorf("%w: idempotency_key is required", apperrors.ErrValidation)
	}
	if req.UserID <= 0 {
		return domain.Money{}, fmt.Errorf("%w: user_id must be positive", apperrors.ErrValidation)
	}

	amount, err := domain.NewMoneyFromString(req.Amount)
	if err != nil {
		return domain.Money{}, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	if !amount.IsPositive() {
		return domain.Money{}, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	return amount, nil
}

// movementPrincipals returns the (source, destination) principal IDs of a
// movement. The mapping is fixed: TOPUP moves treasury to user, BONUS moves
// marketing to user, SPEND moves user to revenue.
func movementPrincipals(txnType domain.TransactionType, userID int64) (int64, int64) {
	switch txnType {
	case domain.TypeTopup:
		return domain.PrincipalTreasury, userID
	case domain.TypeBonus:
		return domain.PrincipalMarketing, userID
	default:
		return userID, domain.PrincipalRevenue
	}
}

// entryDescriptions returns the (debit, credit) leg descriptions.
func entryDescriptions(txnType domain.TransactionType, userID int64) (string, string) {
	switch txnType {
	case domain.TypeTopup:
		return fmt.Sprintf("Topup funding for user %d", userID), fmt.Sprintf("Topup credited to user %d", userID)
	case domain.TypeBonus:
		return fmt.Sprintf("Bonus granted to user %d", userID), fmt.Sprintf("Bonus credited to user %d", userID)
	default:
		return fmt.Sprintf("Spend by user %d", userID), fmt.Sprintf("Revenue from user %d spend", userID)
	}
}

// processOnce runs one attempt of the movement inside a single database
// transaction.
func (s *transactionService) processOnce(ctx context.Context, txnType domain.TransactionType, req dto.CreateTransactionRequest, assetType *domain.AssetType, amount domain.Money) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = s.txManager.Rollback(ctx, tx)
	}()

	sourcePrincipal, destPrincipal := movementPrincipals(txnType, req.UserID)

	source, err := s.resolveWallet(ctx, tx, sourcePrincipal, assetType.ID)
	if err != nil {
		return nil, err
	}
	dest, err := s.resolveWallet(ctx, tx, destPrincipal, assetType.ID)
	if err != nil {
		return nil, err
	}

	// Lock both rows in ascending wallet ID order so concurrent movements
	// over the same wallet pair cannot deadlock.
	first, second := source, dest
	if second.ID < first.ID {
		first, second = second, first
	}
	lockedFirst, err := s.walletRepo.LockWallet(ctx, tx, first.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock wallet %d: %w", first.ID, err)
	}
	lockedSecond, err := s.walletRepo.LockWallet(ctx, tx, second.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock wallet %d: %w", second.ID, err)
	}
	if lockedFirst.ID == source.ID {
		source, dest = lockedFirst, lockedSecond
	} else {
		source, dest = lockedSecond, lockedFirst
	}

	created, err := s.txnRepo.CreatePending(ctx, tx, domain.Transaction{
		PublicID:       uuid.NewString(),
		IdempotencyKey: req.IdempotencyKey,
		Type:           txnType,
		UserID:         req.UserID,
		AssetTypeID:    assetType.ID,
		Amount:         amount,
		Metadata:       req.Metadata,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// A concurrent request committed this key first. The violation
			// aborted our transaction, so roll back and read the winner.
			if rbErr := s.txManager.Rollback(ctx, tx); rbErr != nil {
				return nil, rbErr
			}
			existing, readErr := s.txnRepo.FindByIdempotencyKey(ctx, req.IdempotencyKey)
			if readErr != nil {
				return nil, fmt.Errorf("failed to read transaction for replayed key %q: %w", req.IdempotencyKey, readErr)
			}
			logger.Info("Concurrent idempotent replay resolved",
				slog.String("idempotency_key", req.IdempotencyKey),
				slog.String("transaction_id", existing.PublicID),
			)
			return existing, nil
		}
		return nil, err
	}

	if !source.Balance.GreaterThanOrEqual(amount) {
		if source.IsSystem {
			return nil, fmt.Errorf("%w: system wallet %d cannot fund %s %s",
				apperrors.ErrConfiguration, source.ID, amount, assetType.Code)
		}
		return nil, &apperrors.InsufficientFundsError{Balance: source.Balance, Required: amount}
	}

	sourceBefore := source.Balance
	if err := s.walletRepo.ApplyBalanceDelta(ctx, tx, source, amount.Neg()); err != nil {
		return nil, err
	}
	destBefore := dest.Balance
	if err := s.walletRepo.ApplyBalanceDelta(ctx, tx, dest, amount); err != nil {
		return nil, err
	}

	debitDesc, creditDesc := entryDescriptions(txnType, req.UserID)
	entries := []domain.LedgerEntry{
		{
			TransactionPublicID: created.PublicID,
			WalletID:            source.ID,
			EntryType:           domain.Debit,
			Amount:              amount,
			BalanceBefore:       sourceBefore,
			BalanceAfter:        source.Balance,
			Description:         debitDesc,
		},
		{
			TransactionPublicID: created.PublicID,
			WalletID:            dest.ID,
			EntryType:           domain.Credit,
			Amount:              amount,
			BalanceBefore:       destBefore,
			BalanceAfter:        dest.Balance,
			Description:         creditDesc,
		},
	}
	if err := s.ledgerRepo.AppendEntries(ctx, tx, entries); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.txnRepo.Finalize(ctx, tx, created.ID, domain.StatusCompleted, now); err != nil {
		return nil, err
	}

	if err := s.txManager.Commit(ctx, tx); err != nil {
		return nil, err
	}

	created.Status = domain.StatusCompleted
	created.CompletedAt = &now
	logger.Info("Movement completed",
		slog.String("transaction_id", created.PublicID),
		slog.String("transaction_type", string(txnType)),
		slog.Int64("user_id", req.UserID),
		slog.String("asset_type", assetType.Code),
		slog.String("amount", amount.String()),
	)
	return created, nil
}

// resolveWallet fetches the wallet for a principal inside the open
// transaction. System wallets are seeded and must already exist; user wallets
// are created lazily.
func (s *transactionService) resolveWallet(ctx context.Context, tx pgx.Tx, principalID int64, assetTypeID int32) (*domain.Wallet, error) {
	if _, isSystem := domain.SystemKindForPrincipal(principalID); isSystem {
		wallet, err := s.walletRepo.FindWalletByPrincipalAndAssetInTx(ctx, tx, principalID, assetTypeID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: system wallet for principal %d asset %d is not seeded",
					apperrors.ErrConfiguration, principalID, assetTypeID)
			}
			return nil, err
		}
		return wallet, nil
	}
	return s.walletRepo.GetOrCreateWallet(ctx, tx, principalID, assetTypeID)
}

// GetByPublicID retrieves a transaction and its two ledger legs.
func (s *transactionService) GetByPublicID(ctx context.Context, publicID string) (*domain.Transaction, []domain.LedgerEntry, error) {
	txn, err := s.txnRepo.FindByPublicID(ctx, publicID)
	if err != nil {
		return nil, nil, err
	}
	entries, err := s.ledgerRepo.FindEntriesByTransactionPublicID(ctx, publicID)
	if err != nil {
		return nil, nil, err
	}
	return txn, entries, nil
}
