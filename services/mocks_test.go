package services

import (
	"github.com/stretchr/testify/mock"

	"notedesk/models"
)

// ==================== MOCKS ====================

// MockAccountRepository is a mock implementation of AccountRepository
type MockAccountRepository struct {
	mock.Mock
}

var _ AccountRepository = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) CreateAccount(req models.CreateAccountRequest) (int64, error) {
	args := m.Called(req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAccountRepository) Login(username, password string) (int64, error) {
	args := m.Called(username, password)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAccountRepository) VerifyAccountPassword(accountID int64, password string) (bool, error) {
	args := m.Called(accountID, password)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) GetAccountView(accountID int64) (*models.AccountView, error) {
	args := m.Called(accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AccountView), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccount(accountID int64, req models.UpdateAccountRequest) error {
	args := m.Called(accountID, req)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteAccount(accountID int64) error {
	args := m.Called(accountID)
	return args.Error(0)
}

func (m *MockAccountRepository) SetAvatar(accountID int64, avatar models.Avatar) error {
	args := m.Called(accountID, avatar)
	return args.Error(0)
}

// MockNoteRepository is a mock implementation of NoteRepository
type MockNoteRepository struct {
	mock.Mock
}

var _ NoteRepository = (*MockNoteRepository)(nil)

func (m *MockNoteRepository) AddNote(accountID int64, content string) (int64, error) {
	args := m.Called(accountID, content)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNoteRepository) GetNote(noteID int64) (*models.Note, error) {
	args := m.Called(noteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Note), args.Error(1)
}

func (m *MockNoteRepository) NotesByAccount(accountID int64) ([]models.Note, error) {
	args := m.Called(accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Note), args.Error(1)
}

func (m *MockNoteRepository) UpdateNote(accountID, noteID int64, content string) error {
	args := m.Called(accountID, noteID, content)
	return args.Error(0)
}

func (m *MockNoteRepository) DeleteNote(accountID, noteID int64) error {
	args := m.Called(accountID, noteID)
	return args.Error(0)
}

// MockSessionStore is a mock implementation of SessionStore
type MockSessionStore struct {
	mock.Mock
}

var _ SessionStore = (*MockSessionStore)(nil)

func (m *MockSessionStore) Create(accountID int64, username string) (*models.Session, error) {
	args := m.Called(accountID, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionStore) Get(sessionID string) (*models.Session, error) {
	args := m.Called(sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionStore) Delete(sessionID string) error {
	args := m.Called(sessionID)
	return args.Error(0)
}
