package database

type ZenithRepository interface {
	Ping() error
	CreateAccount(params CreateAccountParams) (Account, error)
	UpdateAccount(params UpdateAccountParams) (Account, error)
	GetAccountById(accountId int) (Account, error)
	GetAccountByEmail(email string) (Account, error)
	ListRepositories(ownerId int) ([]Repository, error)
	CreateRepository(params CreateRepositoryParams) (Repository, error)
	GetRepositoryByExternalId(externalId string) (Repository, error)
	DeleteRepository(id int) error
	ListDocuments(ownerId int) ([]Document, error)
	CreateDocument(params CreateDocumentParams) (Document, error)
	GetDocumentByExternalId(externalId string) (Document, error)
	DeleteDocument(id int) error
}
