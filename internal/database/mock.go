package database

import (
	"github.com/stretchr/testify/mock"
)

type MockZenithRepository struct {
	mock.Mock
}

func (m *MockZenithRepository) Ping() error {
	args := m.Called()
	return args.Error(0)
}
func (m *MockZenithRepository) CreateAccount(params CreateAccountParams) (Account, error) {
	args := m.Called(params)
	return args.Get(0).(Account), args.Error(1)
}
func (m *MockZenithRepository) UpdateAccount(params UpdateAccountParams) (Account, error) {
	args := m.Called(params)
	return args.Get(0).(Account), args.Error(1)
}
func (m *MockZenithRepository) GetAccountById(accountId int) (Account, error) {
	args := m.Called(accountId)
	return args.Get(0).(Account), args.Error(1)
}
func (m *MockZenithRepository) GetAccountByEmail(email string) (Account, error) {
	args := m.Called(email)
	return args.Get(0).(Account), args.Error(1)
}
func (m *MockZenithRepository) ListRepositories(ownerId int) ([]Repository, error) {
	args := m.Called(ownerId)
	return args.Get(0).([]Repository), args.Error(1)
}
func (m *MockZenithRepository) CreateRepository(params CreateRepositoryParams) (Repository, error) {
	args := m.Called(params)
	return args.Get(0).(Repository), args.Error(1)
}
func (m *MockZenithRepository) GetRepositoryByExternalId(externalId string) (Repository, error) {
	args := m.Called(externalId)
	return args.Get(0).(Repository), args.Error(1)
}
func (m *MockZenithRepository) DeleteRepository(id int) error {
	args := m.Called(id)
	return args.Error(0)
}
func (m *MockZenithRepository) ListDocuments(ownerId int) ([]Document, error) {
	args := m.Called(ownerId)
	return args.Get(0).([]Document), args.Error(1)
}
func (m *MockZenithRepository) CreateDocument(params CreateDocumentParams) (Document, error) {
	args := m.Called(params)
	return args.Get(0).(Document), args.Error(1)
}
func (m *MockZenithRepository) GetDocumentByExternalId(externalId string) (Document, error) {
	args := m.Called(externalId)
	return args.Get(0).(Document), args.Error(1)
}
func (m *MockZenithRepository) DeleteDocument(id int) error {
	args := m.Called(id)
	return args.Error(0)
}
