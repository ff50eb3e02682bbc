package walletservice

//go:generate mockgen -source=walletservice.go -destination=mock_walletservice.go -package=walletservice

import (
	"context"
	"errors"
	"iter"
	"time"

	"github.com/GlebRadaev/skillswap/internal/apperror"
	"github.com/GlebRadaev/skillswap/internal/config"
	"github.com/GlebRadaev/skillswap/internal/domain"
	"github.com/GlebRadaev/skillswap/internal/events"
	"github.com/GlebRadaev/skillswap/internal/metrics"
	"github.com/GlebRadaev/skillswap/internal/pg"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	CustomPackageID   = "custom"
	MinCustomCredits  = 1
	MaxCustomCredits  = 100
	customCreditPrice = 10
)

var Packages = []domain.CreditPackage{
	{ID: "5-credits", Credits: 5, Price: 49},
	{ID: "10-credits", Credits: 10, Price: 89, Popular: true},
	{ID: "25-credits", Credits: 25, Price: 199},
}

type AccountRepo interface {
	Get(ctx context.Context, userID string) (*domain.Account, error)
	Credit(ctx context.Context, userID string, amount int64) (int64, error)
	UpdateProfile(ctx context.Context, userID string, upd domain.ProfileUpdate) (*domain.Account, error)
}

type LedgerRepo interface {
	Append(ctx context.Context, t *domain.Transaction) error
	ListForUser(ctx context.Context, userID string) iter.Seq2[domain.Transaction, error]
}

type Locker interface {
	Lock(ctx context.Context, keys ...string) (func(), error)
}

type Service struct {
	accounts    AccountRepo
	ledger      LedgerRepo
	txManager   pg.TXManager
	locker      Locker
	publisher   events.Publisher
	lockTimeout time.Duration
	now         func() time.Time
}

func New(
	cfg *config.Config,
	accounts AccountRepo,
	ledger LedgerRepo,
	txManager pg.TXManager,
	locker Locker,
	publisher events.Publisher,
) *Service {
	return &Service{
		accounts:    accounts,
		ledger:      ledger,
		txManager:   txManager,
		locker:      locker,
		publisher:   publisher,
		lockTimeout: cfg.LockTimeout,
		now:         time.Now,
	}
}

func (s *Service) GetAccount(ctx context.Context, userID string) (*domain.Account, error) {
	account, err := s.accounts.Get(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get account", zap.Error(err))
		return nil, apperror.Wrap(err)
	}
	if account == nil {
		return nil, apperror.NotFound("account", userID)
	}
	return account, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID string, upd domain.ProfileUpdate) (*domain.Account, error) {
	if upd.Rating != nil && (*upd.Rating < 0 || *upd.Rating > 5) {
		return nil, apperror.Validation(apperror.ErrValidation, "rating", "Rating must be between 0 and 5")
	}
	account, err := s.accounts.UpdateProfile(ctx, userID, upd)
	if err != nil {
		return nil, apperror.Wrap(err)
	}
	if account == nil {
		return nil, apperror.NotFound("account", userID)
	}
	return account, nil
}

func (s *Service) ListPackages() []domain.CreditPackage {
	return append([]domain.CreditPackage(nil), Packages...)
}

func resolvePackage(packageID string, customCredits int64) (domain.CreditPackage, error) {
	if packageID == CustomPackageID {
		if customCredits < MinCustomCredits || customCredits > MaxCustomCredits {
			return domain.CreditPackage{}, apperror.Validation(apperror.ErrValidation, "credits", "Please select a package or enter a valid amount")
		}
		return domain.CreditPackage{ID: CustomPackageID, Credits: customCredits, Price: int(customCredits) * customCreditPrice}, nil
	}
	for _, p := range Packages {
		if p.ID == packageID {
			return p, nil
		}
	}
	if packageID == "" {
		return domain.CreditPackage{}, apperror.MissingField("packageId")
	}
	return domain.CreditPackage{}, apperror.Validation(apperror.ErrValidation, "packageId", "Unknown credit package")
}

// PurchaseCredits adds a credit bundle to the account. No payment is taken.
// The balance change and its ledger entry are stored together.
func (s *Service) PurchaseCredits(ctx context.Context, userID, packageID string, customCredits int64) (*domain.Purchase, error) {
	pkg, err := resolvePackage(packageID, customCredits)
	if err != nil {
		return nil, err
	}

	lockCtx, cancel := context.WithTimeout(ctx, s.lockTimeout)
	defer cancel()
	unlock, err := s.locker.Lock(lockCtx, userID)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apperror.Timeout("Your account is busy, please try again", err)
		}
		return nil, apperror.Wrap(err)
	}
	defer unlock()

	purchase := &domain.Purchase{
		Package: pkg,
		Transaction: domain.Transaction{
			ID:          uuid.NewString(),
			UserID:      userID,
			Kind:        domain.TransactionPurchased,
			Amount:      pkg.Credits,
			Description: "Purchased credit bundle",
			CreatedAt:   s.now().UTC(),
		},
	}
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.accounts.Get(ctx, userID)
		if err != nil {
			return err
		}
		if account == nil {
			return apperror.NotFound("account", userID)
		}
		balance, err := s.accounts.Credit(ctx, userID, pkg.Credits)
		if err != nil {
			return err
		}
		purchase.Balance = balance
		return s.ledger.Append(ctx, &purchase.Transaction)
	})
	if err != nil {
		zap.L().Error("failed to purchase credits", zap.String("userID", userID), zap.Error(err))
		return nil, apperror.Wrap(err)
	}

	metrics.CreditsMoved.WithLabelValues(string(domain.TransactionPurchased)).Add(float64(pkg.Credits))
	zap.L().Info("credits purchased", zap.String("userID", userID), zap.String("package", pkg.ID), zap.Int64("credits", pkg.Credits))
	s.publisher.Publish(ctx, events.Event{
		Type:   events.CreditsPurchased,
		UserID: userID,
		Data:   map[string]any{"package_id": pkg.ID, "credits": pkg.Credits, "balance": purchase.Balance},
	})
	return purchase, nil
}

// ListTransactions returns the user's ledger, newest first.
func (s *Service) ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	var out []domain.Transaction
	for tx, err := range s.ledger.ListForUser(ctx, userID) {
		if err != nil {
			return nil, apperror.Wrap(err)
		}
		out = append(out, tx)
	}
	return out, nil
}

// Summary reads the account and totals the ledger concurrently.
func (s *Service) Summary(ctx context.Context, userID string) (*domain.WalletSummary, error) {
	var (
		summary domain.WalletSummary
		account *domain.Account
	)
	now := s.now().UTC()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		account, err = s.accounts.Get(gctx, userID)
		return err
	})
	g.Go(func() error {
		for tx, err := range s.ledger.ListForUser(gctx, userID) {
			if err != nil {
				return err
			}
			summary.TransactionCount++
			switch tx.Kind {
			case domain.TransactionEarned:
				summary.TotalEarned += tx.Amount
			case domain.TransactionSpent:
				summary.TotalSpent += tx.Amount
			case domain.TransactionPurchased:
				summary.TotalPurchased += tx.Amount
			case domain.TransactionGifted:
				summary.TotalGifted += tx.Amount
			}
			at := tx.CreatedAt.UTC()
			if at.Year() == now.Year() && at.Month() == now.Month() {
				summary.ThisMonthCount++
			}
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("failed to build wallet summary", zap.Error(err))
		return nil, apperror.Wrap(err)
	}
	if account == nil {
		return nil, apperror.NotFound("account", userID)
	}

	summary.Balance = account.CreditBalance
	return &summary, nil
}
