package services

import (
	"context"
	"log"
	"time"

	"quizmaker/internal/models/db_models"
	"quizmaker/internal/models/request_models"
	"quizmaker/internal/models/response_models"
	"quizmaker/internal/repositories"
	"quizmaker/pkg/memcache"
	"quizmaker/pkg/utils"
)

const resetTokenTTL = 30 * time.Minute

type AccountServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error)
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
	Me(ctx context.Context, accountID string) (*response_models.AccountResponse, error)

	// RequestPasswordReset mails a single-use recovery token. It reports
	// success for unknown emails too, so the endpoint leaks nothing.
	RequestPasswordReset(ctx context.Context, email string) error

	// ResetPassword consumes a recovery token and installs the new hash.
	ResetPassword(ctx context.Context, request request_models.ForgotPasswordRequest) error

	// VerifyRecoveryToken checks a token without consuming it; the front
	// door uses this to confirm a recovery session before showing the
	// reset form.
	VerifyRecoveryToken(token string) bool
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	resetStore  mem.ResetTokenStore
	mail        MailServiceInterface
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	resetStore mem.ResetTokenStore,
	mail MailServiceInterface,
) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		resetStore:  resetStore,
		mail:        mail,
	}
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, account.Role)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.AccountLoginResponse{
		Token:   token,
		IsAdmin: account.IsAdmin(),
	}, nil
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {
	existing, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	hash, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	account := &db_models.Account{
		Name:         request.DisplayName,
		Email:        request.Email,
		PasswordHash: hash,
		Role:         db_models.RoleUser,
	}
	if err := a.accountRepo.Insert(ctx, account); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AccountService) Me(ctx context.Context, accountID string) (*response_models.AccountResponse, error) {
	account, err := a.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	return &response_models.AccountResponse{
		ID:    account.ID.String(),
		Name:  account.Name,
		Email: account.Email,
		Role:  account.Role,
	}, nil
}

func (a *AccountService) RequestPasswordReset(ctx context.Context, email string) error {
	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		// Stay silent about unknown emails.
		return nil
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return err
	}
	a.resetStore.Set(token, account.Email, resetTokenTTL)

	if err := a.mail.SendRecoveryMail(account.Email, token); err != nil {
		log.Printf("failed to send recovery mail to %s: %v", account.Email, err)
		return err
	}
	return nil
}

func (a *AccountService) ResetPassword(ctx context.Context, request request_models.ForgotPasswordRequest) error {
	// Peek before consuming so a mistyped email does not burn the token.
	email, ok := a.resetStore.Peek(request.Token)
	if !ok || email != request.Email {
		return utils.ErrInvalidResetToken
	}
	if a.resetStore.Consume(request.Token) != email {
		return utils.ErrInvalidResetToken
	}

	hash, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if err := a.accountRepo.UpdatePasswordHash(ctx, email, hash); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AccountService) VerifyRecoveryToken(token string) bool {
	_, ok := a.resetStore.Peek(token)
	return ok
}
