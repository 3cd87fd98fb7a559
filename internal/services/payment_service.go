package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/payOSHQ/payos-lib-golang"
	"gorm.io/gorm"

	"quizmaker/internal/models/db_models"
	"quizmaker/internal/models/response_models"
	"quizmaker/internal/repositories"
	"quizmaker/pkg/utils"
)

type PayOSConfig struct {
	ClientID    string
	ApiKey      string
	ChecksumKey string
	ReturnURL   string // lands back on the app with payment=success
	CancelURL   string // lands back on the app with payment=cancel
	Currency    string
}

type PaymentServiceInterface interface {
	// CreateCheckout opens a provider checkout for unlocking one quiz and
	// records a pending transaction keyed by the provider order code.
	CreateCheckout(ctx context.Context, accountID uuid.UUID, quizID, amountMinor int64) (*response_models.CreateCheckoutResponse, error)

	// HandleWebhook verifies a provider callback and, on confirmed
	// payment, marks the transaction paid and appends the purchase row.
	// Replayed callbacks for an already-paid transaction are no-ops.
	HandleWebhook(ctx context.Context, body payos.WebhookType) error

	// ListEntitlements returns the quiz ids the account has unlocked.
	ListEntitlements(ctx context.Context, accountID uuid.UUID) ([]int64, error)
}

type PaymentService struct {
	db           *gorm.DB
	quizRepo     repositories.QuizRepository
	purchaseRepo repositories.PurchaseRepository
	accountRepo  repositories.AccountRepository
	mail         MailServiceInterface
	cfg          PayOSConfig
}

func NewPaymentService(
	db *gorm.DB,
	quizRepo repositories.QuizRepository,
	purchaseRepo repositories.PurchaseRepository,
	accountRepo repositories.AccountRepository,
	mail MailServiceInterface,
	cfg PayOSConfig,
) *PaymentService {
	return &PaymentService{
		db:           db,
		quizRepo:     quizRepo,
		purchaseRepo: purchaseRepo,
		accountRepo:  accountRepo,
		mail:         mail,
		cfg:          cfg,
	}
}

func (p *PaymentService) CreateCheckout(ctx context.Context, accountID uuid.UUID, quizID, amountMinor int64) (*response_models.CreateCheckoutResponse, error) {
	quiz, err := p.quizRepo.FindByID(ctx, quizID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if quiz == nil {
		return nil, utils.ErrQuizNotFound
	}
	if amountMinor <= 0 {
		return nil, fmt.Errorf("quiz %d is not billable (amount=%d)", quizID, amountMinor)
	}

	// Already entitled: nothing to sell.
	unlocked, err := p.purchaseRepo.Exists(ctx, accountID, quizID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if unlocked {
		return nil, utils.ErrQuizMisconfigured
	}

	// payOS wants an int64 order code; unix seconds plus a random suffix
	// keeps it unique enough and within 13 digits.
	orderCode := time.Now().Unix()%1_000_000_000 + int64(rand.Intn(9000)+1000)

	txn := &db_models.Transaction{
		AccountID:     accountID,
		QuizID:        quizID,
		AmountMinor:   amountMinor,
		Currency:      p.cfg.Currency,
		Status:        db_models.TxnStatusPending,
		Provider:      "payos",
		ProviderTxnID: fmt.Sprintf("payos:%d", orderCode),
	}
	if err := p.db.WithContext(ctx).Create(txn).Error; err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}

	if err := payos.Key(p.cfg.ClientID, p.cfg.ApiKey, p.cfg.ChecksumKey); err != nil {
		return nil, fmt.Errorf("payos client init: %w", err)
	}

	body := payos.CheckoutRequestType{
		OrderCode: orderCode,
		Amount:    int(amountMinor),
		Items: []payos.Item{{
			Name:     fmt.Sprintf("Unlock: %s", quiz.Title),
			Price:    int(amountMinor),
			Quantity: 1,
		}},
		Description: fmt.Sprintf("Quiz %d unlock", quizID),
		CancelUrl:   p.cfg.CancelURL,
		ReturnUrl:   p.cfg.ReturnURL,
	}

	resp, err := payos.CreatePaymentLink(body)
	if err != nil {
		_ = p.db.WithContext(ctx).Model(txn).Update("status", db_models.TxnStatusFailed).Error
		return nil, fmt.Errorf("payos create link: %w", err)
	}

	if meta, _ := json.Marshal(map[string]any{"payos_link": resp}); meta != nil {
		_ = p.db.WithContext(ctx).Model(txn).Update("metadata", meta).Error
	}

	return &response_models.CreateCheckoutResponse{
		OrderCode:    orderCode,
		Amount:       amountMinor,
		PaymentURL:   resp.CheckoutUrl,
		ProviderName: "payos",
	}, nil
}

func (p *PaymentService) HandleWebhook(ctx context.Context, body payos.WebhookType) error {
	if err := payos.Key(p.cfg.ClientID, p.cfg.ApiKey, p.cfg.ChecksumKey); err != nil {
		return fmt.Errorf("payos client init: %w", err)
	}

	data, err := payos.VerifyPaymentWebhookData(body)
	if err != nil {
		return fmt.Errorf("verify webhook: %w", err)
	}

	providerTxn := fmt.Sprintf("payos:%d", data.OrderCode)

	var txn db_models.Transaction
	if err := p.db.WithContext(ctx).
		Where("provider_txn_id = ?", providerTxn).
		First(&txn).Error; err != nil {
		// Ack unknown orders to stop the retry storm; keep a trace.
		log.Printf("webhook: transaction not found for order %d", data.OrderCode)
		return nil
	}

	if txn.Status == db_models.TxnStatusPaid {
		return nil
	}

	now := time.Now().Unix()
	err = p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&txn).Updates(map[string]interface{}{
			"status":  db_models.TxnStatusPaid,
			"paid_at": now,
		}).Error; err != nil {
			return err
		}
		purchase := &db_models.Purchase{
			AccountID:     txn.AccountID,
			QuizID:        txn.QuizID,
			ProviderTxnID: txn.ProviderTxnID,
			AmountMinor:   txn.AmountMinor,
		}
		return tx.Create(purchase).Error
	})
	if err != nil {
		return fmt.Errorf("finalize order %d: %w", data.OrderCode, err)
	}

	p.sendReceipt(ctx, &txn)
	return nil
}

func (p *PaymentService) ListEntitlements(ctx context.Context, accountID uuid.UUID) ([]int64, error) {
	ids, err := p.purchaseRepo.ListQuizIDsByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return ids, nil
}

func (p *PaymentService) sendReceipt(ctx context.Context, txn *db_models.Transaction) {
	account, err := p.accountRepo.FindById(ctx, txn.AccountID.String())
	if err != nil || account == nil {
		return
	}
	quiz, err := p.quizRepo.FindByID(ctx, txn.QuizID)
	if err != nil || quiz == nil {
		return
	}
	if err := p.mail.SendReceiptMail(account.Email, quiz.Title, txn.AmountMinor); err != nil {
		log.Printf("failed to send receipt for txn %s: %v", txn.ID, err)
	}
}
