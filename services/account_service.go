package services

import (
	"log/slog"

	"notedesk/models"
)

// AccountService handles account business logic on behalf of the
// presentation layer. Every authenticated call resolves the session
// first; there is no shared current-account state anywhere below it.
type AccountService struct {
	repo     AccountRepository
	sessions SessionStore
	logger   *slog.Logger
}

func NewAccountService(repo AccountRepository, sessions SessionStore, logger *slog.Logger) *AccountService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AccountService{
		repo:     repo,
		sessions: sessions,
		logger:   logger,
	}
}

// SignUp registers a new account and returns its id.
func (as *AccountService) SignUp(req models.CreateAccountRequest) (int64, error) {
	id, err := as.repo.CreateAccount(req)
	if err != nil {
		return 0, err
	}

	as.logger.Info("account created", "account_id", id, "username", req.Username)
	return id, nil
}

// Login authenticates and opens a session for the account.
func (as *AccountService) Login(username, password string) (*models.Session, error) {
	accountID, err := as.repo.Login(username, password)
	if err != nil {
		return nil, err
	}

	sess, err := as.sessions.Create(accountID, username)
	if err != nil {
		return nil, err
	}

	as.logger.Info("logged in", "username", username)
	return sess, nil
}

// Logout drops the session.
func (as *AccountService) Logout(sessionID string) error {
	return as.sessions.Delete(sessionID)
}

func (as *AccountService) session(sessionID string) (*models.Session, error) {
	sess, err := as.sessions.Get(sessionID)
	if err != nil || sess == nil {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// Profile returns the account aggregate for the session's account.
func (as *AccountService) Profile(sessionID string) (*models.AccountView, error) {
	sess, err := as.session(sessionID)
	if err != nil {
		return nil, err
	}
	return as.repo.GetAccountView(sess.AccountID)
}

// UpdateProfile edits the session account's info. An empty password
// leaves the stored one unchanged.
func (as *AccountService) UpdateProfile(sessionID string, req models.UpdateAccountRequest) error {
	sess, err := as.session(sessionID)
	if err != nil {
		return err
	}

	if err := as.repo.UpdateAccount(sess.AccountID, req); err != nil {
		return err
	}

	sess.Username = req.Username
	as.logger.Info("account updated", "account_id", sess.AccountID)
	return nil
}

// VerifyPassword confirms the session account's password, e.g. before a
// destructive action.
func (as *AccountService) VerifyPassword(sessionID, password string) (bool, error) {
	sess, err := as.session(sessionID)
	if err != nil {
		return false, err
	}
	return as.repo.VerifyAccountPassword(sess.AccountID, password)
}

// DeleteAccount removes the session account and ends the session. Notes
// are orphaned, not deleted; any avatar image file is the caller's to
// clean up.
func (as *AccountService) DeleteAccount(sessionID string) error {
	sess, err := as.session(sessionID)
	if err != nil {
		return err
	}

	if err := as.repo.DeleteAccount(sess.AccountID); err != nil {
		return err
	}

	as.logger.Info("account deleted", "account_id", sess.AccountID)
	return as.sessions.Delete(sessionID)
}

// SetAvatar records which avatar image the account uses.
func (as *AccountService) SetAvatar(sessionID string, avatar models.Avatar) error {
	sess, err := as.session(sessionID)
	if err != nil {
		return err
	}
	return as.repo.SetAvatar(sess.AccountID, avatar)
}
